package kindlingsdk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid request has no errors", func(t *testing.T) {
		req := RegisterRequest{Email: "a@b.com", DisplayName: "Alice", Password: "Secret1"}
		require.Nil(t, req.Validate())
	})

	t.Run("empty strings are rejected, not just missing fields", func(t *testing.T) {
		req := RegisterRequest{Email: "", DisplayName: "  ", Password: ""}
		errs := req.Validate()
		require.Len(t, errs, 3)
		require.Contains(t, errs, "email")
		require.Contains(t, errs, "display_name")
		require.Contains(t, errs, "password")
	})

	t.Run("partial errors name only the bad fields", func(t *testing.T) {
		req := RegisterRequest{Email: "a@b.com", DisplayName: "", Password: "Secret1"}
		errs := req.Validate()
		require.Len(t, errs, 1)
		require.Contains(t, errs, "display_name")
	})
}

func TestLoginRequestValidate(t *testing.T) {
	t.Parallel()

	require.Nil(t, LoginRequest{Email: "a@b.com", Password: "x"}.Validate())

	errs := LoginRequest{}.Validate()
	require.Len(t, errs, 2)
}
