// Package fakebackend is an in-memory stand-in for the plugin's web API,
// used to exercise the console end to end without a game server.
package fakebackend

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"acconsole/internal/domain"
	"acconsole/pkg/sdk"

	"github.com/google/uuid"
)

const timeLayout = "2006-01-02 15:04"

type admin struct {
	password    string
	permissions []string
}

type failure struct {
	status  int
	message string
}

// Request is a recorded call as seen by the backend.
type Request struct {
	Method string
	Path   string
	Query  string
	Body   []byte
}

type Backend struct {
	mu sync.Mutex

	admins map[string]admin
	tokens map[string]string

	announcements    []sdk.Announcement
	compensations    []sdk.Compensation
	whitelist        []sdk.WhitelistEntry
	whitelistEnabled bool
	logs             []sdk.ClaimLog

	nextID   int
	failures map[string]failure
	requests []Request
}

func New() *Backend {
	return &Backend{
		admins:   make(map[string]admin),
		tokens:   make(map[string]string),
		failures: make(map[string]failure),
	}
}

func (b *Backend) AddAdmin(username, password string, permissions ...string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(permissions) == 0 {
		permissions = []string{domain.PermAll}
	}
	b.admins[username] = admin{password: password, permissions: permissions}
}

// RevokeTokens forgets every issued token, as a plugin reload would.
func (b *Backend) RevokeTokens() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens = make(map[string]string)
}

// FailNext makes the next request matching "METHOD /api/path" answer with
// status and a success=false envelope.
func (b *Backend) FailNext(route string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[route] = failure{status: status, message: message}
}

func (b *Backend) SetWhitelistEnabled(enabled bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.whitelistEnabled = enabled
}

func (b *Backend) WhitelistEnabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.whitelistEnabled
}

func (b *Backend) AddClaimLog(playerName, playerUUID, compensationID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logs = append(b.logs, sdk.ClaimLog{
		ID:             b.newID(),
		PlayerName:     playerName,
		PlayerUUID:     playerUUID,
		CompensationID: compensationID,
		ClaimTime:      time.Now().Format(timeLayout),
	})
}

// Requests returns a copy of every request received so far.
func (b *Backend) Requests() []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Request, len(b.requests))
	copy(out, b.requests)
	return out
}

// LastRequest returns the most recent request for the given method and path.
func (b *Backend) LastRequest(method, path string) (Request, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.requests) - 1; i >= 0; i-- {
		r := b.requests[i]
		if r.Method == method && r.Path == path {
			return r, true
		}
	}
	return Request{}, false
}

func (b *Backend) newID() string {
	b.nextID++
	return strconv.Itoa(b.nextID)
}

func (b *Backend) issueToken(username string) string {
	token := uuid.NewString()
	b.tokens[token] = username
	return token
}

func (b *Backend) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", b.handleLogin)

	mux.Handle("GET /api/announcement", b.authMiddleware(http.HandlerFunc(b.handleListAnnouncements), domain.PermAnnouncement))
	mux.Handle("POST /api/announcement", b.authMiddleware(http.HandlerFunc(b.handleSaveAnnouncement), domain.PermAnnouncement))
	mux.Handle("DELETE /api/announcement", b.authMiddleware(http.HandlerFunc(b.handleDeleteAnnouncement), domain.PermAnnouncement))

	mux.Handle("GET /api/compensation", b.authMiddleware(http.HandlerFunc(b.handleListCompensations), domain.PermCompensation))
	mux.Handle("POST /api/compensation", b.authMiddleware(http.HandlerFunc(b.handleSaveCompensation), domain.PermCompensation))
	mux.Handle("DELETE /api/compensation", b.authMiddleware(http.HandlerFunc(b.handleDeleteCompensation), domain.PermCompensation))

	mux.Handle("GET /api/whitelist", b.authMiddleware(http.HandlerFunc(b.handleGetWhitelist), domain.PermWhitelist))
	mux.Handle("POST /api/whitelist", b.authMiddleware(http.HandlerFunc(b.handleWhitelistAction), domain.PermWhitelist))
	mux.Handle("DELETE /api/whitelist", b.authMiddleware(http.HandlerFunc(b.handleDeleteWhitelist), domain.PermWhitelist))

	mux.Handle("GET /api/log", b.authMiddleware(http.HandlerFunc(b.handleListLogs), domain.PermLog))

	return b.recordMiddleware(mux)
}
