package kindlingsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// stubServer fakes the account endpoints well enough to exercise the
// session store without a real backend.
func stubServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	user := UserProfile{
		ID:          "01J0000000000000000000TEST",
		Email:       "a@b.com",
		DisplayName: "Alice",
		CreatedAt:   time.Now().UTC(),
	}

	mux.HandleFunc("POST /login", func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Password != "Secret1" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error:            ErrorCodeInvalidCredentials,
				ErrorDescription: "invalid email or password",
			})
			return
		}

		_ = json.NewEncoder(w).Encode(AuthResponse{User: user, Token: "stub-token"})
	})

	mux.HandleFunc("GET /members", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer stub-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: ErrorCodeInvalidToken})
			return
		}
		_ = json.NewEncoder(w).Encode([]UserProfile{user})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestSessionLoginNotifiesSubscribers(t *testing.T) {
	t.Parallel()

	srv := stubServer(t)
	session := NewSession(NewClient(srv.URL), nil)

	var got []State
	cancel := session.Subscribe(func(s State) { got = append(got, s) })
	defer cancel()

	require.False(t, session.Current().LoggedIn)

	err := session.Login(context.Background(), "a@b.com", "Secret1")
	require.NoError(t, err)

	require.Len(t, got, 1, "exactly one notification per state change")
	require.True(t, got[0].LoggedIn)
	require.Equal(t, "Alice", got[0].User.DisplayName)
	require.Equal(t, "stub-token", session.Token())
}

func TestSessionLoginFailureLeavesStateUntouched(t *testing.T) {
	t.Parallel()

	srv := stubServer(t)
	session := NewSession(NewClient(srv.URL), nil)

	notified := 0
	cancel := session.Subscribe(func(State) { notified++ })
	defer cancel()

	err := session.Login(context.Background(), "a@b.com", "wrong")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, ErrorCodeInvalidCredentials, apiErr.Code)

	require.Zero(t, notified)
	require.False(t, session.Current().LoggedIn)
	require.Empty(t, session.Token())
}

func TestSessionLogout(t *testing.T) {
	t.Parallel()

	srv := stubServer(t)
	session := NewSession(NewClient(srv.URL), nil)
	require.NoError(t, session.Login(context.Background(), "a@b.com", "Secret1"))

	var last State
	cancel := session.Subscribe(func(s State) { last = s })
	defer cancel()

	session.Logout()
	require.False(t, last.LoggedIn)
	require.Nil(t, last.User)
	require.Empty(t, session.Token())
}

func TestSessionRestoreFromStorage(t *testing.T) {
	t.Parallel()

	srv := stubServer(t)
	path := filepath.Join(t.TempDir(), "session.json")

	// First session logs in and persists.
	first := NewSession(NewClient(srv.URL), NewStorage(path))
	require.NoError(t, first.Login(context.Background(), "a@b.com", "Secret1"))

	// Second session restores at startup without re-authenticating.
	second := NewSession(NewClient(srv.URL), NewStorage(path))
	var last State
	cancel := second.Subscribe(func(s State) { last = s })
	defer cancel()

	require.True(t, second.Restore())
	require.True(t, last.LoggedIn)
	require.Equal(t, "a@b.com", last.User.Email)
	require.Equal(t, "stub-token", second.Token())

	// The restored token still works against the API.
	members, err := second.Members(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 1)
}

func TestSessionRestoreWithoutStoredState(t *testing.T) {
	t.Parallel()

	srv := stubServer(t)
	path := filepath.Join(t.TempDir(), "session.json")
	session := NewSession(NewClient(srv.URL), NewStorage(path))

	require.False(t, session.Restore())
	require.False(t, session.Current().LoggedIn)
}

func TestSessionUnsubscribe(t *testing.T) {
	t.Parallel()

	srv := stubServer(t)
	session := NewSession(NewClient(srv.URL), nil)

	notified := 0
	cancel := session.Subscribe(func(State) { notified++ })
	cancel()

	require.NoError(t, session.Login(context.Background(), "a@b.com", "Secret1"))
	require.Zero(t, notified)
}
