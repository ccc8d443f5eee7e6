package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteAbsentKey(t *testing.T) {
	db := openTestDB(t)

	data, err := db.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, data, "an absent key is nil, not an error")
}

func TestSQLitePutGetOverwrite(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Put("tasks", []byte(`[{"title":"one"}]`)))

	data, err := db.Get("tasks")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"title":"one"}]`, string(data))

	require.NoError(t, db.Put("tasks", []byte(`[]`)))
	data, err = db.Get("tasks")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSQLiteDelete(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Put("settings", []byte(`{}`)))
	require.NoError(t, db.Delete("settings"))

	data, err := db.Get("settings")
	require.NoError(t, err)
	assert.Nil(t, data)

	// deleting again is fine
	require.NoError(t, db.Delete("settings"))
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Put("teams", []byte(`["a"]`)))
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	data, err := db.Get("teams")
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, string(data))
}

func TestMemoryCopiesBytes(t *testing.T) {
	m := NewMemory()

	payload := []byte("original")
	require.NoError(t, m.Put("k", payload))
	payload[0] = 'X'

	data, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(data), "stored value is isolated from the caller's slice")

	data[0] = 'Y'
	again, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "original", string(again))
}
