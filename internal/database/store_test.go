package database

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLStore {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	// Single connection so every query sees the same in-memory database.
	db.SetMaxOpenConns(1)
	store, err := NewSQLStore(db)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLStoreLoadMissingKey(t *testing.T) {
	store := setupTestStore(t)

	value, err := store.Load("kana_progress")
	require.NoError(t, err)
	require.Nil(t, value)
}

func TestSQLStoreSaveAndLoad(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Save("kana_progress", []byte(`{"ka":{}}`)))

	value, err := store.Load("kana_progress")
	require.NoError(t, err)
	require.Equal(t, `{"ka":{}}`, string(value))
}

func TestSQLStoreSaveOverwrites(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Save("kana_daily_practice", []byte(`{"2026-08-27":1}`)))
	require.NoError(t, store.Save("kana_daily_practice", []byte(`{"2026-08-27":2}`)))

	value, err := store.Load("kana_daily_practice")
	require.NoError(t, err)
	require.Equal(t, `{"2026-08-27":2}`, string(value))
}

func TestSQLStoreDeleteMultipleKeys(t *testing.T) {
	store := setupTestStore(t)

	require.NoError(t, store.Save("kana_progress", []byte(`{}`)))
	require.NoError(t, store.Save("kana_word_progress", []byte(`{}`)))
	require.NoError(t, store.Delete("kana_progress", "kana_word_progress", "missing"))

	for _, key := range []string{"kana_progress", "kana_word_progress"} {
		value, err := store.Load(key)
		require.NoError(t, err)
		require.Nil(t, value)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()

	original := []byte(`{"a":1}`)
	require.NoError(t, store.Save("k", original))
	original[0] = 'X'

	value, err := store.Load("k")
	require.NoError(t, err)
	require.Equal(t, `{"a":1}`, string(value))
}
