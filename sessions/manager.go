package sessions

import (
	"fmt"
	"sync"

	apperrors "github.com/jrsteele09/go-blog-client/internal/errors"
	"github.com/jrsteele09/go-blog-client/localstore"
	"github.com/jrsteele09/go-blog-client/users"
	"golang.org/x/oauth2"
)

// Manager holds at most one live Session and mirrors every token change to
// durable storage under the same lock.
type Manager struct {
	store   localstore.Store
	session *Session
	mu      sync.RWMutex
}

var _ oauth2.TokenSource = (*Manager)(nil)

func NewManager(store localstore.Store) *Manager {
	return &Manager{store: store}
}

// Load restores tokens from durable storage into memory. It reports whether an
// access token was found. The user is unknown until the profile is fetched.
func (m *Manager) Load() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	access, err := m.store.Get(localstore.AccessTokenKey)
	if err != nil {
		return false, fmt.Errorf("[Manager.Load] access token: %w", err)
	}
	refresh, err := m.store.Get(localstore.RefreshTokenKey)
	if err != nil {
		return false, fmt.Errorf("[Manager.Load] refresh token: %w", err)
	}

	if access == "" && refresh == "" {
		m.session = nil
		return false, nil
	}
	m.session = &Session{AccessToken: access, RefreshToken: refresh}
	return access != "", nil
}

// Set replaces the session and writes both tokens to durable storage. Memory is
// updated even when the write fails so the running process stays signed in.
func (m *Manager) Set(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = s.clone()
	if err := m.store.Set(map[string]string{
		localstore.AccessTokenKey:  s.AccessToken,
		localstore.RefreshTokenKey: s.RefreshToken,
	}); err != nil {
		return fmt.Errorf("[Manager.Set] %w", err)
	}
	return nil
}

// SetAccessToken replaces the access token after a refresh. A non-empty refresh
// token replaces the stored one as well; empty keeps it.
func (m *Manager) SetAccessToken(access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return apperrors.ErrNoSession
	}
	values := map[string]string{localstore.AccessTokenKey: access}
	m.session.AccessToken = access
	if refresh != "" {
		m.session.RefreshToken = refresh
		values[localstore.RefreshTokenKey] = refresh
	}
	if err := m.store.Set(values); err != nil {
		return fmt.Errorf("[Manager.SetAccessToken] %w", err)
	}
	return nil
}

// SetUser records the signed-in user on the live session.
func (m *Manager) SetUser(u *users.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return apperrors.ErrNoSession
	}
	if u != nil {
		c := *u
		u = &c
	}
	m.session.User = u
	return nil
}

// Clear drops the session from memory and storage. It is safe to call repeatedly.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session = nil
	if err := m.store.Remove(localstore.AccessTokenKey, localstore.RefreshTokenKey); err != nil {
		return fmt.Errorf("[Manager.Clear] %w", err)
	}
	return nil
}

// Current returns a copy of the session, or nil when there is none.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.clone()
}

func (m *Manager) AccessToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.AccessToken
}

func (m *Manager) RefreshToken() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.RefreshToken
}

func (m *Manager) User() *users.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil || m.session.User == nil {
		return nil
	}
	u := *m.session.User
	return &u
}

// Token implements oauth2.TokenSource over the live access token. No expiry is
// set because the tokens are opaque; the server decides when they expire.
func (m *Manager) Token() (*oauth2.Token, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.session.Live() {
		return nil, apperrors.ErrNoSession
	}
	return &oauth2.Token{
		AccessToken:  m.session.AccessToken,
		RefreshToken: m.session.RefreshToken,
		TokenType:    "Bearer",
	}, nil
}
