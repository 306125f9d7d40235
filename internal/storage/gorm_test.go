package storage

import (
	"path/filepath"
	"testing"

	"acconsole/internal/domain"

	"github.com/stretchr/testify/require"
)

var (
	_ domain.LocalStorage = (*GormStore)(nil)
	_ domain.LocalStorage = (*MemoryStore)(nil)
)

func TestGormStoreItems(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	store, err := NewGormStore(path)
	require.NoError(t, err)
	defer store.Close()

	_, ok, err := store.GetItem("adminToken")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.SetItem("adminToken", "abc"))
	require.NoError(t, store.SetItem("adminToken", "def"))

	v, ok, err := store.GetItem("adminToken")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "def", v)

	require.NoError(t, store.RemoveItem("adminToken"))
	require.NoError(t, store.RemoveItem("adminToken"))

	_, ok, err = store.GetItem("adminToken")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGormStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := NewGormStore(path)
	require.NoError(t, err)
	require.NoError(t, store.SetItem("adminInfo", `{"username":"admin"}`))
	require.NoError(t, store.Close())

	reopened, err := NewGormStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.GetItem("adminInfo")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `{"username":"admin"}`, v)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.SetItem("k", "v"))

	v, ok, _ := store.GetItem("k")
	require.True(t, ok)
	require.Equal(t, "v", v)

	require.NoError(t, store.RemoveItem("k"))
	_, ok, _ = store.GetItem("k")
	require.False(t, ok)
}
