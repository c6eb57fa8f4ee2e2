package idx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewProducesUniqueSortedIDs(t *testing.T) {
	t.Parallel()

	seen := make(map[ID]struct{}, 1000)
	var prev ID
	for range 1000 {
		id := New()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}

		if prev != Zero {
			require.LessOrEqual(t, prev.String(), id.String())
		}
		prev = id
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	id := New()
	parsed, err := Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = Parse("")
	require.ErrorIs(t, err, ErrInvalid)

	_, err = Parse("not-a-ulid")
	require.ErrorIs(t, err, ErrInvalid)
}

func TestTime(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := NewAt(at)
	require.Equal(t, at.UnixMilli(), id.Time().UnixMilli())

	require.True(t, Zero.Time().IsZero())
}
