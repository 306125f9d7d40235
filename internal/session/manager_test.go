package session

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"acconsole/internal/fakebackend"
	"acconsole/internal/storage"
	"acconsole/pkg/sdk"

	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) (*Manager, *storage.MemoryStore, *sdk.Client, *fakebackend.Backend) {
	t.Helper()
	backend := fakebackend.New()
	backend.AddAdmin("admin", "secret", "ac.web.announcement", "ac.web.log")
	srv := httptest.NewServer(backend.Handler())
	t.Cleanup(srv.Close)

	store := storage.NewMemoryStore()
	mgr := NewManager(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	client := sdk.NewClient(srv.URL,
		sdk.WithTokenSource(mgr),
		sdk.WithMiddleware(sdk.OnUnauthorized(mgr.Expire)),
	)
	mgr.SetAuthenticator(client)
	return mgr, store, client, backend
}

func TestLoginPersistsSession(t *testing.T) {
	mgr, store, _, _ := newManager(t)

	s, err := mgr.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	require.True(t, s.Valid())
	require.Equal(t, "admin", s.Username)

	token, ok, _ := store.GetItem(TokenKey)
	require.True(t, ok)
	require.Equal(t, s.Token, token)

	raw, ok, _ := store.GetItem(InfoKey)
	require.True(t, ok)
	require.JSONEq(t, `{"username":"admin","permissions":["ac.web.announcement","ac.web.log"]}`, raw)

	require.Equal(t, s.Token, mgr.Token())
}

func TestLoginFailureKeepsLoggedOut(t *testing.T) {
	mgr, store, _, _ := newManager(t)

	_, err := mgr.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	require.Equal(t, "密码错误", sdk.ServerMessage(err))
	require.Nil(t, mgr.Current())

	_, ok, _ := store.GetItem(TokenKey)
	require.False(t, ok)
}

func TestLoginWithoutAuthenticator(t *testing.T) {
	mgr := NewManager(storage.NewMemoryStore(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := mgr.Login(context.Background(), "admin", "secret")
	require.ErrorIs(t, err, ErrNoAuthenticator)
}

func TestRestore(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		info      string
		wantValid bool
	}{
		{name: "complete", token: "abc", info: `{"username":"admin","permissions":["ac.web.*"]}`, wantValid: true},
		{name: "missing token", info: `{"username":"admin"}`},
		{name: "missing username", token: "abc", info: `{}`},
		{name: "corrupt info", token: "abc", info: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			if tt.token != "" {
				store.SetItem(TokenKey, tt.token)
			}
			store.SetItem(InfoKey, tt.info)

			mgr := NewManager(store, slog.New(slog.NewTextHandler(io.Discard, nil)))
			s, err := mgr.Restore()
			require.NoError(t, err)
			if tt.wantValid {
				require.NotNil(t, s)
				require.Equal(t, "admin", s.Username)
				require.True(t, mgr.Current().HasPermission("ac.web.whitelist"))
			} else {
				require.Nil(t, s)
				require.Nil(t, mgr.Current())
				require.Empty(t, mgr.Token())
			}
		})
	}
}

func TestLogoutClearsStorage(t *testing.T) {
	mgr, store, _, _ := newManager(t)
	_, err := mgr.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	require.NoError(t, mgr.Logout())
	require.Nil(t, mgr.Current())

	_, ok, _ := store.GetItem(TokenKey)
	require.False(t, ok)
	_, ok, _ = store.GetItem(InfoKey)
	require.False(t, ok)
}

func TestRejectedTokenExpiresSession(t *testing.T) {
	mgr, store, client, backend := newManager(t)
	_, err := mgr.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	backend.RevokeTokens()
	_, err = client.ListAnnouncements(context.Background())
	require.ErrorIs(t, err, sdk.ErrUnauthorized)

	require.Nil(t, mgr.Current())
	_, ok, _ := store.GetItem(TokenKey)
	require.False(t, ok)
}

func TestForbiddenModuleExpiresSession(t *testing.T) {
	mgr, _, client, _ := newManager(t)
	_, err := mgr.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)

	_, err = client.GetWhitelist(context.Background())
	require.ErrorIs(t, err, sdk.ErrUnauthorized)
	require.Nil(t, mgr.Current())
}
