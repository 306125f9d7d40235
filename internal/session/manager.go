package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"acconsole/internal/domain"
	"acconsole/pkg/sdk"
)

// Storage keys shared with the plugin's browser panel.
const (
	TokenKey = "adminToken"
	InfoKey  = "adminInfo"
)

var ErrNoAuthenticator = errors.New("session manager has no authenticator")

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*sdk.LoginResult, error)
}

type info struct {
	Username    string   `json:"username"`
	Permissions []string `json:"permissions"`
}

type Manager struct {
	mu      sync.RWMutex
	store   domain.LocalStorage
	auth    Authenticator
	logger  *slog.Logger
	current *domain.Session
}

func NewManager(store domain.LocalStorage, logger *slog.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// SetAuthenticator breaks the construction cycle between the manager and the
// API client, which needs the manager as its token source.
func (m *Manager) SetAuthenticator(auth Authenticator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.auth = auth
}

// Restore loads a previously persisted session. A missing or unreadable
// record leaves the operator logged out.
func (m *Manager) Restore() (*domain.Session, error) {
	token, _, err := m.store.GetItem(TokenKey)
	if err != nil {
		return nil, fmt.Errorf("error reading token: %w", err)
	}
	raw, _, err := m.store.GetItem(InfoKey)
	if err != nil {
		return nil, fmt.Errorf("error reading admin info: %w", err)
	}

	var inf info
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &inf); err != nil {
			m.logger.Warn("Discarding unreadable admin info", slog.Any("error", err))
			inf = info{}
		}
	}

	s := &domain.Session{Token: token, Username: inf.Username, Permissions: inf.Permissions}

	m.mu.Lock()
	defer m.mu.Unlock()
	if !s.Valid() {
		m.current = nil
		return nil, nil
	}
	m.current = s
	return copySession(s), nil
}

func (m *Manager) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	m.mu.RLock()
	auth := m.auth
	m.mu.RUnlock()
	if auth == nil {
		return nil, ErrNoAuthenticator
	}

	res, err := auth.Login(ctx, username, password)
	if err != nil {
		m.logger.Info("Login rejected", slog.String("username", username), slog.Any("error", err))
		return nil, err
	}

	s := &domain.Session{Token: res.Token, Username: res.Username, Permissions: res.Permissions}
	if err := m.persist(s); err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.current = s
	m.mu.Unlock()

	m.logger.Info("Operator logged in", slog.String("username", s.Username))
	return copySession(s), nil
}

// Logout drops the session locally. The backend is not contacted.
func (m *Manager) Logout() error {
	m.mu.Lock()
	prev := m.current
	m.current = nil
	m.mu.Unlock()

	if prev != nil {
		m.logger.Info("Operator logged out", slog.String("username", prev.Username))
	}
	return m.clear()
}

// Expire ends the session after the backend rejected its token.
func (m *Manager) Expire() {
	m.mu.Lock()
	prev := m.current
	m.current = nil
	m.mu.Unlock()

	if prev != nil {
		m.logger.Warn("Session rejected by backend", slog.String("username", prev.Username))
	}
	if err := m.clear(); err != nil {
		m.logger.Error("Failed to clear session storage", slog.Any("error", err))
	}
}

func (m *Manager) Current() *domain.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySession(m.current)
}

// Token implements sdk.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}

func (m *Manager) persist(s *domain.Session) error {
	raw, err := json.Marshal(info{Username: s.Username, Permissions: s.Permissions})
	if err != nil {
		return err
	}
	if err := m.store.SetItem(TokenKey, s.Token); err != nil {
		return fmt.Errorf("error saving token: %w", err)
	}
	if err := m.store.SetItem(InfoKey, string(raw)); err != nil {
		return fmt.Errorf("error saving admin info: %w", err)
	}
	return nil
}

func (m *Manager) clear() error {
	if err := m.store.RemoveItem(TokenKey); err != nil {
		return err
	}
	return m.store.RemoveItem(InfoKey)
}

func copySession(s *domain.Session) *domain.Session {
	if s == nil {
		return nil
	}
	c := *s
	c.Permissions = append([]string(nil), s.Permissions...)
	return &c
}
