package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBItemRoundTrip(t *testing.T) {
	db, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	// Missing key reads as empty
	value, err := db.GetItem("dailyTodos_v1")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, db.SetItem("dailyTodos_v1", `[{"id":"a"}]`))

	value, err = db.GetItem("dailyTodos_v1")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"a"}]`, value)
}

func TestDBItemOverwrite(t *testing.T) {
	db, err := OpenPath(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.SetItem("journal_v1", "[]"))
	require.NoError(t, db.SetItem("journal_v1", `[{"id":"b"}]`))

	value, err := db.GetItem("journal_v1")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"b"}]`, value)
}

func TestDBPersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := OpenPath(path)
	require.NoError(t, err)
	require.NoError(t, db.SetItem("schedule_v1", `[{"id":"c"}]`))
	require.NoError(t, db.Close())

	db, err = OpenPath(path)
	require.NoError(t, err)
	defer db.Close()

	value, err := db.GetItem("schedule_v1")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"c"}]`, value)
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	value, err := m.GetItem("missing")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, m.SetItem("k", "v1"))
	require.NoError(t, m.SetItem("k", "v2"))

	value, err = m.GetItem("k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}
