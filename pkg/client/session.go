package client

import (
	"context"
	"sync"
)

// Snapshot is the session's observable state, handed to subscribers after
// every mutation.
type Snapshot struct {
	User            *User
	Tokens          *Tokens
	IsAuthenticated bool
	IsLoading       bool
}

// Session manages authentication state around a Client: it holds the current
// user and token pair, persists them through a Store and notifies subscribers
// on every change. Construct one per client; there is no package-level
// instance. Session also acts as the client's TokenRefresher, so a 401 on any
// call triggers a refresh against the stored refresh token.
type Session struct {
	client *Client
	store  Store

	mu        sync.Mutex
	user      *User
	tokens    *Tokens
	loading   bool
	subs      map[int]func(Snapshot)
	nextSubID int
}

// NewSession wires a Session to a client and a store, and installs itself as
// the client's token refresher.
func NewSession(c *Client, store Store) *Session {
	s := &Session{
		client: c,
		store:  store,
		subs:   make(map[int]func(Snapshot)),
	}
	c.SetRefresher(s)
	return s
}

// Subscribe registers a callback invoked synchronously after every state
// change. The returned ID unsubscribes.
func (s *Session) Subscribe(fn func(Snapshot)) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	s.subs[s.nextSubID] = fn
	return s.nextSubID
}

func (s *Session) Unsubscribe(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// Current returns the session's state.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		User:            s.user,
		Tokens:          s.tokens,
		IsAuthenticated: s.user != nil && s.tokens != nil,
		IsLoading:       s.loading,
	}
}

// notifyLocked snapshots under the lock, then releases it before calling
// subscribers so they may re-enter the session.
func (s *Session) notifyLocked() {
	snap := s.snapshotLocked()
	subs := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
	s.mu.Lock()
}

// Init restores persisted state and validates it against the server. Invalid
// or expired sessions are cleared rather than reported as errors.
func (s *Session) Init(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.notifyLocked()
	s.mu.Unlock()

	state, err := s.store.Load()
	if err != nil || state == nil || state.Tokens == nil {
		s.setState(nil, nil)
		return err
	}

	s.mu.Lock()
	s.tokens = state.Tokens
	s.mu.Unlock()
	s.client.SetAccessToken(state.Tokens.AccessToken)

	user, err := s.client.Me(ctx)
	if err != nil {
		_ = s.store.Clear()
		s.client.SetAccessToken("")
		s.setState(nil, nil)
		return nil
	}

	s.setState(user, state.Tokens)
	return nil
}

// Login authenticates, loads the profile and persists the session.
func (s *Session) Login(ctx context.Context, email, password string) (*User, error) {
	s.mu.Lock()
	s.loading = true
	s.notifyLocked()
	s.mu.Unlock()

	tokens, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.setState(nil, nil)
		return nil, err
	}
	s.client.SetAccessToken(tokens.AccessToken)

	user, err := s.client.Me(ctx)
	if err != nil {
		s.client.SetAccessToken("")
		s.setState(nil, nil)
		return nil, err
	}

	s.persist(user, tokens)
	s.setState(user, tokens)
	return user, nil
}

// Register creates an account and logs it in.
func (s *Session) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if _, err := s.client.Register(ctx, req); err != nil {
		return nil, err
	}
	return s.Login(ctx, req.Email, req.Password)
}

// Logout clears the session locally. The server keeps no session state
// beyond the refresh token, which simply expires.
func (s *Session) Logout() {
	_ = s.store.Clear()
	s.client.SetAccessToken("")
	s.setState(nil, nil)
}

// Reload re-fetches the profile, e.g. after onboarding mutations.
func (s *Session) Reload(ctx context.Context) error {
	user, err := s.client.Me(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	tokens := s.tokens
	s.mu.Unlock()

	s.persist(user, tokens)
	s.setState(user, tokens)
	return nil
}

// RefreshAccessToken implements TokenRefresher: it rotates the stored refresh
// token and persists the new pair.
func (s *Session) RefreshAccessToken(ctx context.Context) (string, error) {
	s.mu.Lock()
	tokens := s.tokens
	user := s.user
	s.mu.Unlock()

	if tokens == nil || tokens.RefreshToken == "" {
		return "", &APIError{Code: CodeUnauthorized, Message: "no refresh token available"}
	}

	fresh, err := s.client.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		return "", err
	}

	s.persist(user, fresh)
	s.setState(user, fresh)
	return fresh.AccessToken, nil
}

func (s *Session) persist(user *User, tokens *Tokens) {
	_ = s.store.Save(&SessionState{User: user, Tokens: tokens})
}

func (s *Session) setState(user *User, tokens *Tokens) {
	s.mu.Lock()
	s.user = user
	s.tokens = tokens
	s.loading = false
	s.notifyLocked()
	s.mu.Unlock()
}
