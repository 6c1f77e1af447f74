package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/ttm-morphology/morphospace"
)

// SQLite is a persistent morpheme store backed by a SQLite database.
// Coordinates are stored in their own columns so lookups filter in SQL;
// the full morpheme travels in a JSON doc column, which keeps the
// round-trip exact.
type SQLite struct {
	db   *sql.DB
	path string
}

// NewSQLite opens (or creates) a SQLite store at the given path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	s := &SQLite{db: db, path: path}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("pragma failed: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS morphemes (
			id TEXT PRIMARY KEY,
			form TEXT NOT NULL,
			root TEXT NOT NULL,
			language TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			z INTEGER NOT NULL,
			doc TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_morphemes_root ON morphemes(root);
		CREATE INDEX IF NOT EXISTS idx_morphemes_coords ON morphemes(x, y, z);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("schema creation failed: %w", err)
	}
	return nil
}

const insertSQL = `INSERT INTO morphemes
	(id, form, root, language, x, y, z, doc)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const selectSQL = `SELECT id, doc FROM morphemes`

// Put stores one morpheme and returns its assigned id.
func (s *SQLite) Put(ctx context.Context, m morphospace.Morpheme) (string, error) {
	id, doc, c, err := encodeRow(m)
	if err != nil {
		return "", err
	}
	_, err = s.db.ExecContext(ctx, insertSQL,
		id, m.Form, m.Root, m.Language.Code(), c.X, c.Y, c.Z, doc)
	if err != nil {
		return "", fmt.Errorf("put %q: %w", m.Form, err)
	}
	return id, nil
}

// PutBatch stores morphemes in one transaction and returns their ids
// in argument order. No morpheme is stored if any of them fails.
func (s *SQLite) PutBatch(ctx context.Context, ms []morphospace.Morpheme) ([]string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		id, doc, c, err := encodeRow(m)
		if err != nil {
			return nil, err
		}
		if _, err := stmt.ExecContext(ctx,
			id, m.Form, m.Root, m.Language.Code(), c.X, c.Y, c.Z, doc); err != nil {
			return nil, fmt.Errorf("put %q: %w", m.Form, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *SQLite) Get(ctx context.Context, id string) (Record, error) {
	var doc string
	err := s.db.QueryRowContext(ctx,
		selectSQL+" WHERE id = ?", id).Scan(&id, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("get %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Record{}, fmt.Errorf("get %s: %w", id, err)
	}
	return decodeRow(id, doc)
}

// All returns every record in insertion order.
func (s *SQLite) All(ctx context.Context) ([]Record, error) {
	return s.query(ctx, selectSQL+" ORDER BY rowid")
}

// ByRoot returns the records with the given root, in insertion order.
func (s *SQLite) ByRoot(ctx context.Context, root string) ([]Record, error) {
	return s.query(ctx, selectSQL+" WHERE root = ? ORDER BY rowid", root)
}

// AtCoordinates returns the records at exactly the given triple, in
// insertion order.
func (s *SQLite) AtCoordinates(ctx context.Context, c morphospace.Coordinates) ([]Record, error) {
	return s.query(ctx,
		selectSQL+" WHERE x = ? AND y = ? AND z = ? ORDER BY rowid",
		c.X, c.Y, c.Z)
}

// InRange returns the records within Euclidean distance radius of
// center, in insertion order. The distance test runs in SQL on the
// squared form, so no row leaves the database unnecessarily.
func (s *SQLite) InRange(ctx context.Context, center morphospace.Coordinates, radius float64) ([]Record, error) {
	if radius < 0 {
		return nil, nil
	}
	return s.query(ctx,
		selectSQL+` WHERE
			(x - ?) * (x - ?) + (y - ?) * (y - ?) + (z - ?) * (z - ?) <= ?
			ORDER BY rowid`,
		center.X, center.X, center.Y, center.Y, center.Z, center.Z,
		radius*radius)
}

// Count returns the number of stored records.
func (s *SQLite) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM morphemes").Scan(&n)
	return n, err
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) query(ctx context.Context, q string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, err
		}
		rec, err := decodeRow(id, doc)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// encodeRow validates a morpheme and prepares its row values: a fresh
// uuid, the JSON doc, and the coordinate triple.
func encodeRow(m morphospace.Morpheme) (string, string, morphospace.Coordinates, error) {
	if err := m.Validate(); err != nil {
		return "", "", morphospace.Coordinates{}, fmt.Errorf("put %q: %w", m.Form, err)
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return "", "", morphospace.Coordinates{}, fmt.Errorf("encode %q: %w", m.Form, err)
	}
	return uuid.New().String(), string(doc), m.Coordinates(), nil
}

func decodeRow(id, doc string) (Record, error) {
	var m morphospace.Morpheme
	if err := json.Unmarshal([]byte(doc), &m); err != nil {
		return Record{}, fmt.Errorf("decode record %s: %w", id, err)
	}
	return Record{ID: id, Morpheme: m}, nil
}
