package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttm-morphology/morphospace"
)

func TestSnapshotRoundTrip(t *testing.T) {
	space := morphospace.New()
	m := testMorpheme("كِتَاب", "ك-ت-ب", 1, 2, 3)
	m.Gloss = "book"
	m.Metadata = map[string]morphospace.MetaValue{
		"attested": morphospace.BoolValue(true),
	}
	require.NoError(t, space.Add(m))
	require.NoError(t, space.Add(testMorpheme("كَتَبَ", "ك-ت-ب", 0, 1, 1)))

	path := filepath.Join(t.TempDir(), "space.json")
	require.NoError(t, SaveSnapshot(path, space))

	loaded, err := LoadSnapshotSpace(path, morphospace.Config{})
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())

	members := loaded.Morphemes()
	assert.True(t, members[0].Equal(m), "members reload identically, in order")
	assert.Equal(t, "كَتَبَ", members[1].Form)
}

func TestSnapshotManifest(t *testing.T) {
	space := morphospace.New()
	require.NoError(t, space.Add(testMorpheme("a", "r", 0, 1, 0)))

	path := filepath.Join(t.TempDir(), "space.json")
	require.NoError(t, SaveSnapshot(path, space))

	snap, err := LoadSnapshot(path)
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snap.Version)
	assert.NotEmpty(t, snap.SavedAt)
	assert.Len(t, snap.Morphemes, 1)
}

func TestSnapshotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "space.json")

	first := morphospace.New()
	require.NoError(t, first.Add(testMorpheme("a", "r", 0, 1, 0)))
	require.NoError(t, SaveSnapshot(path, first))

	second := morphospace.New()
	require.NoError(t, second.Add(testMorpheme("b", "r", 0, 1, 0)))
	require.NoError(t, second.Add(testMorpheme("c", "r", 1, 1, 0)))
	require.NoError(t, SaveSnapshot(path, second))

	loaded, err := LoadSnapshotSpace(path, morphospace.Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Len())

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSnapshotBadVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "space.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"version": 99, "saved_at": "", "morphemes": []}`), 0o644))

	_, err := LoadSnapshot(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSnapshotVersion))
}

func TestSnapshotMissing(t *testing.T) {
	_, err := LoadSnapshot(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestSnapshotKDTreeReload(t *testing.T) {
	space := morphospace.New()
	require.NoError(t, space.Add(testMorpheme("a", "r", 1, 1, 1)))
	require.NoError(t, space.Add(testMorpheme("b", "r", 2, 2, 2)))

	path := filepath.Join(t.TempDir(), "space.json")
	require.NoError(t, SaveSnapshot(path, space))

	loaded, err := LoadSnapshotSpace(path,
		morphospace.Config{Strategy: morphospace.StrategyKDTree})
	require.NoError(t, err)

	at := loaded.AtCoordinates(2, 2, 2)
	require.Len(t, at, 1)
	assert.Equal(t, "b", at[0].Form)
}
