package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created in nested directory")
}

func TestStoreHighScoreEmpty(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestStoreSaveAndHighScore(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []struct {
		name  string
		score int
	}{{"ann", 100}, {"bob", 250}, {"ann", 50}} {
		id, err := store.SaveScore(s.name, s.score)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 250, high)
}

func TestStoreTopScores(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 15; i++ {
		_, err := store.SaveScore("p", i*10)
		require.NoError(t, err)
	}

	scores, err := store.TopScores(5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 150, scores[0].Score)
	assert.Equal(t, 110, scores[4].Score)
	assert.Equal(t, "p", scores[0].PlayerName)
	assert.False(t, scores[0].CreatedAt.IsZero(), "created_at should be parsed")

	// Non-positive limit falls back to 10
	scores, err = store.TopScores(0)
	require.NoError(t, err)
	assert.Len(t, scores, 10)
}

func TestStorePlayerScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("ann", 30)
	require.NoError(t, err)
	_, err = store.SaveScore("bob", 90)
	require.NoError(t, err)
	_, err = store.SaveScore("ann", 70)
	require.NoError(t, err)

	scores, err := store.PlayerScores("ann", 10)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 70, scores[0].Score)
	assert.Equal(t, 30, scores[1].Score)

	scores, err = store.PlayerScores("nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("ann", 30)
	require.NoError(t, err)
	require.NoError(t, store.ClearScores())

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 0, high)
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	_, err = store.SaveScore("ann", 40)
	require.NoError(t, err)
	_, err = store.SaveScore("bob", 80)
	require.NoError(t, err)
	_, err = store.SaveScore("ann", 60)
	require.NoError(t, err)

	stats, err = store.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.GamesCount)
	assert.Equal(t, 2, stats.Players)
	assert.Equal(t, 80, stats.HighScore)
	assert.InDelta(t, 60.0, stats.AvgScore, 0.001)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("ann", 120)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 120, high)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	got, err := ExpandHome("~/.brickbreaker/scores.db")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/.brickbreaker/scores.db", got)

	got, err = ExpandHome("/abs/path.db")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path.db", got)
}
