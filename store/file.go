package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ttm-morphology/morphospace"
)

// SnapshotVersion is the current snapshot file format version.
const SnapshotVersion = 1

// ErrSnapshotVersion is returned when a snapshot file was written by
// an incompatible format version.
var ErrSnapshotVersion = errors.New("store: unsupported snapshot version")

// Snapshot is the on-disk form of a whole space: a small manifest
// header plus every member morpheme.
type Snapshot struct {
	Version   int                    `json:"version"`
	SavedAt   string                 `json:"saved_at"`
	Morphemes []morphospace.Morpheme `json:"morphemes"`
}

// SaveSnapshot writes every member of the space to path as one JSON
// document. The write goes through a temp file in the same directory,
// so a crash never leaves a half-written snapshot behind.
func SaveSnapshot(path string, space *morphospace.MorphemeSpace) error {
	snap := Snapshot{
		Version:   SnapshotVersion,
		SavedAt:   time.Now().UTC().Format(time.RFC3339),
		Morphemes: space.Morphemes(),
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a snapshot file.
func LoadSnapshot(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	if snap.Version != SnapshotVersion {
		return Snapshot{}, fmt.Errorf("snapshot %s version %d: %w",
			path, snap.Version, ErrSnapshotVersion)
	}
	return snap, nil
}

// LoadSnapshotSpace rebuilds a space from a snapshot file.
func LoadSnapshotSpace(path string, cfg morphospace.Config) (*morphospace.MorphemeSpace, error) {
	snap, err := LoadSnapshot(path)
	if err != nil {
		return nil, err
	}
	space, err := morphospace.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	for _, m := range snap.Morphemes {
		if err := space.Add(m); err != nil {
			return nil, fmt.Errorf("load snapshot %s: %w", path, err)
		}
	}
	return space, nil
}
