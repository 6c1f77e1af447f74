// Package store persists morphemes outside the in-memory space: a
// SQLite database for incremental collections and JSON snapshot files
// for whole-space export. Both adapters round-trip morphemes through
// their JSON form, so every stored record reloads with identical
// coordinates and fields.
package store

import (
	"context"
	"errors"

	"github.com/ttm-morphology/morphospace"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("store: morpheme not found")

// Record is one stored morpheme with its storage identity.
type Record struct {
	ID       string
	Morpheme morphospace.Morpheme
}

// Store persists morphemes.
type Store interface {
	// Put stores one morpheme and returns its assigned id.
	Put(ctx context.Context, m morphospace.Morpheme) (string, error)

	// PutBatch stores morphemes in one transaction and returns their
	// ids in argument order.
	PutBatch(ctx context.Context, ms []morphospace.Morpheme) ([]string, error)

	// Get returns the record with the given id, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// All returns every record in insertion order.
	All(ctx context.Context) ([]Record, error)

	// ByRoot returns the records whose morpheme has the given root,
	// in insertion order.
	ByRoot(ctx context.Context, root string) ([]Record, error)

	// AtCoordinates returns the records at exactly the given triple,
	// in insertion order.
	AtCoordinates(ctx context.Context, c morphospace.Coordinates) ([]Record, error)

	// InRange returns the records within Euclidean distance radius of
	// center, in insertion order. A negative radius matches nothing.
	InRange(ctx context.Context, center morphospace.Coordinates, radius float64) ([]Record, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases the store's resources.
	Close() error
}

// LoadSpace builds an in-memory space from every record in the store.
func LoadSpace(ctx context.Context, s Store, cfg morphospace.Config) (*morphospace.MorphemeSpace, error) {
	records, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	space, err := morphospace.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		if err := space.Add(r.Morpheme); err != nil {
			return nil, err
		}
	}
	return space, nil
}
