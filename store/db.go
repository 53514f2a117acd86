// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	_ "modernc.org/sqlite" // pure-Go driver registered as "sqlite"

	"github.com/katalvlaran/scissors/matrix"
)

const schema = `
CREATE TABLE IF NOT EXISTS arrays (
	name    TEXT PRIMARY KEY,
	rows    INTEGER NOT NULL,
	cols    INTEGER NOT NULL,
	payload BLOB
);`

const (
	qUpsert = `INSERT INTO arrays (name, rows, cols, payload) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET rows = excluded.rows, cols = excluded.cols, payload = excluded.payload`
	qGet    = `SELECT rows, cols, payload FROM arrays WHERE name = ?`
	qNames  = `SELECT name FROM arrays ORDER BY name`
	qDelete = `DELETE FROM arrays WHERE name = ?`
)

// DB is a SQLite-backed array store. It is safe for concurrent use.
type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the store at path. ":memory:" gives a
// private in-memory store.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	// One writer at a time; an in-memory database also lives on a single
	// connection only.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: migrate %s: %w", path, err)
	}

	return &DB{db: db}, nil
}

// Close releases the underlying database.
func (s *DB) Close() error { return s.db.Close() }

// Put stores m under name, replacing any previous array.
//
// Errors: ErrEmptyName, matrix.ErrNilMatrix, database errors.
func (s *DB) Put(ctx context.Context, name string, m matrix.Matrix) error {
	if name == "" {
		return storeErrorf("Put", name, ErrEmptyName)
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return storeErrorf("Put", name, err)
	}
	payload, err := encode(m)
	if err != nil {
		return storeErrorf("Put", name, err)
	}
	if _, err = s.db.ExecContext(ctx, qUpsert, name, m.Rows(), m.Cols(), payload); err != nil {
		return storeErrorf("Put", name, err)
	}

	return nil
}

// Get loads the array stored under name.
//
// Errors: ErrNotFound, ErrCorrupt, database errors.
func (s *DB) Get(ctx context.Context, name string) (*matrix.Dense, error) {
	var (
		rows, cols int
		payload    []byte
	)
	err := s.db.QueryRowContext(ctx, qGet, name).Scan(&rows, &cols, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storeErrorf("Get", name, ErrNotFound)
	}
	if err != nil {
		return nil, storeErrorf("Get", name, err)
	}
	m, err := decode(rows, cols, payload)
	if err != nil {
		return nil, storeErrorf("Get", name, err)
	}

	return m, nil
}

// Names lists stored array names in ascending order.
func (s *DB) Names(ctx context.Context) ([]string, error) {
	rs, err := s.db.QueryContext(ctx, qNames)
	if err != nil {
		return nil, fmt.Errorf("store: names: %w", err)
	}
	defer rs.Close()

	var names []string
	for rs.Next() {
		var name string
		if err = rs.Scan(&name); err != nil {
			return nil, fmt.Errorf("store: names: %w", err)
		}
		names = append(names, name)
	}
	if err = rs.Err(); err != nil {
		return nil, fmt.Errorf("store: names: %w", err)
	}

	return names, nil
}

// Delete removes name. Errors: ErrNotFound when nothing was stored under it.
func (s *DB) Delete(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, qDelete, name)
	if err != nil {
		return storeErrorf("Delete", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return storeErrorf("Delete", name, err)
	}
	if n == 0 {
		return storeErrorf("Delete", name, ErrNotFound)
	}

	return nil
}

// encode serializes m in gonum's mat.Dense binary format. Zero-area arrays,
// which gonum cannot represent, get an empty payload; the shape columns
// carry their dimensions.
func encode(m matrix.Matrix) ([]byte, error) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return []byte{}, nil
	}
	g, err := matrix.ToGonum(m)
	if err != nil {
		return nil, err
	}

	return g.MarshalBinary()
}

func decode(rows, cols int, payload []byte) (*matrix.Dense, error) {
	if rows == 0 || cols == 0 {
		if len(payload) != 0 {
			return nil, ErrCorrupt
		}
		return matrix.NewDense(rows, cols)
	}

	var g mat.Dense
	if err := g.UnmarshalBinary(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if r, c := g.Dims(); r != rows || c != cols {
		return nil, ErrCorrupt
	}

	// Stored arrays may legitimately carry ±Inf (e.g. converted Tanimotos).
	return matrix.FromGonum(&g, matrix.WithNoValidateNaNInf())
}
