package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsPersistence(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "scores.db"))
	require.NoError(t, err)
	defer store.Close()
	names, err := NewNameFile(filepath.Join(dir, "playername.txt"))
	require.NoError(t, err)

	r := NewRecords(store, names, nil)

	high, err := r.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high)

	name, err := r.LoadName()
	require.NoError(t, err)
	assert.Equal(t, "", name)

	require.NoError(t, r.SaveName("Ann"))
	require.NoError(t, r.SaveScore("Ann", 90))
	require.NoError(t, r.SaveScore("Ann", 40))

	high, err = r.LoadHighScore()
	require.NoError(t, err)
	assert.Equal(t, 90, high)

	name, err = r.LoadName()
	require.NoError(t, err)
	assert.Equal(t, "Ann", name)
}

func TestRecordsNameError(t *testing.T) {
	store := openTestStore(t)
	names, err := NewNameFile(t.TempDir())
	require.NoError(t, err)

	r := NewRecords(store, names, nil)
	name, err := r.LoadName()
	assert.Error(t, err)
	assert.Equal(t, "", name)
}
