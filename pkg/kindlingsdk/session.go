package kindlingsdk

import (
	"context"
	"sync"
)

// State is a snapshot of the session: the logged-in flag and the
// current user projection. User is nil when logged out.
type State struct {
	LoggedIn bool
	User     *UserProfile
}

// Session is an observable client-side store of authentication state.
// Every mutation (login, logout, restore) notifies all subscribers with
// the new snapshot, which is how navigation bars and guards stay in
// sync without polling.
type Session struct {
	client  *Client
	storage *Storage // optional; nil disables persistence

	mu      sync.RWMutex
	state   State
	token   string
	subs    map[int]func(State)
	nextSub int
}

// NewSession creates a session store. storage may be nil for purely
// in-memory sessions.
func NewSession(client *Client, storage *Storage) *Session {
	return &Session{
		client:  client,
		storage: storage,
		subs:    make(map[int]func(State)),
	}
}

// Current returns the current state snapshot.
func (s *Session) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token returns the bearer token for the logged-in user, or "".
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subscribe registers an observer called on every state change. The
// returned function cancels the subscription. Observers run
// synchronously on the mutating goroutine, so exactly one notification
// is delivered per state change.
func (s *Session) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Register creates an account and establishes the session with the
// returned user and token.
func (s *Session) Register(ctx context.Context, req RegisterRequest) error {
	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return err
	}

	s.establish(resp)
	return nil
}

// Login authenticates and, on success, flips the logged-in flag and
// stores the user projection. On failure the state is left untouched
// and the error is surfaced to the caller; there are no retries.
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := s.client.Login(ctx, LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	s.establish(resp)
	return nil
}

// Logout clears the session locally. The token itself is not
// invalidated server-side and stays valid until it expires.
func (s *Session) Logout() {
	s.mu.Lock()
	s.state = State{}
	s.token = ""
	if s.storage != nil {
		_ = s.storage.Clear()
	}
	state, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(state, subs)
}

// Restore loads a previously persisted session from local storage and,
// if one exists, marks the session logged-in without re-authenticating.
// The stored token is trusted as-is; no validity check happens here.
// Returns true if a session was restored.
func (s *Session) Restore() bool {
	if s.storage == nil {
		return false
	}

	persisted, ok, err := s.storage.Load()
	if err != nil || !ok {
		return false
	}

	s.mu.Lock()
	user := persisted.User
	s.state = State{LoggedIn: true, User: &user}
	s.token = persisted.Token
	state, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(state, subs)
	return true
}

// Members lists members using the session's token.
func (s *Session) Members(ctx context.Context) ([]UserProfile, error) {
	return s.client.Members(ctx, s.Token())
}

// Member fetches a single member using the session's token.
func (s *Session) Member(ctx context.Context, id string) (*UserProfile, error) {
	return s.client.Member(ctx, s.Token(), id)
}

func (s *Session) establish(resp *AuthResponse) {
	s.mu.Lock()
	user := resp.User
	s.state = State{LoggedIn: true, User: &user}
	s.token = resp.Token
	if s.storage != nil {
		_ = s.storage.Save(PersistedSession{User: resp.User, Token: resp.Token})
	}
	state, subs := s.snapshotLocked()
	s.mu.Unlock()

	notify(state, subs)
}

// snapshotLocked copies the state and subscriber list so notifications
// run outside the lock. Callers must hold mu.
func (s *Session) snapshotLocked() (State, []func(State)) {
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	return s.state, subs
}

func notify(state State, subs []func(State)) {
	for _, fn := range subs {
		fn(state)
	}
}
