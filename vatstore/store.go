// SPDX-License-Identifier: MIT

package vatstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/lvraster/combine"
)

const driverName = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS vat_tables (
	name       TEXT PRIMARY KEY,
	cells      INTEGER NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS vat_entries (
	table_name   TEXT NOT NULL,
	value        INTEGER NOT NULL,
	first_value  INTEGER NOT NULL,
	second_value INTEGER NOT NULL,
	cell_count   INTEGER NOT NULL,
	PRIMARY KEY (table_name, value)
);
`

// Store is a SQLite-backed table store. Safe for concurrent use.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open opens (creating if needed) the database at dsn and ensures the schema.
// dsn is a file path or any DSN accepted by modernc.org/sqlite.
func Open(ctx context.Context, dsn string, opts ...Option) (*Store, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("vatstore: open %s: %w", dsn, err)
	}
	// SQLite serializes writers; one connection also keeps ":memory:" databases
	// from splitting across pool connections.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("vatstore: create schema: %w", err)
	}

	s := &Store{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Save stores t under name, replacing any previous table with that name.
func (s *Store) Save(ctx context.Context, name string, t *combine.Table) (err error) {
	if name == "" {
		return ErrEmptyName
	}
	if t == nil {
		return ErrNilTable
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("vatstore: save %q: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = deleteTx(ctx, tx, name); err != nil {
		return fmt.Errorf("vatstore: save %q: %w", name, err)
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO vat_tables (name, cells) VALUES (?, ?)`, name, t.Total()); err != nil {
		return fmt.Errorf("vatstore: save %q: %w", name, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO vat_entries (table_name, value, first_value, second_value, cell_count) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("vatstore: save %q: %w", name, err)
	}
	defer stmt.Close()

	// Codes and pairs fit in int64: NewTable/Combine keep them ≤ pairing.MaxEncoded.
	for _, e := range t.Entries() {
		if _, err = stmt.ExecContext(ctx, name, int64(e.Value), int64(e.First), int64(e.Second), e.Count); err != nil {
			return fmt.Errorf("vatstore: save %q value %d: %w", name, e.Value, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("vatstore: save %q: %w", name, err)
	}

	s.log.Debug("vat saved", zap.String("name", name), zap.Int("entries", t.Len()), zap.Int("cells", t.Total()))

	return nil
}

// Load returns the table stored under name, or ErrNotFound.
func (s *Store) Load(ctx context.Context, name string) (*combine.Table, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var cells int
	err := s.db.QueryRowContext(ctx, `SELECT cells FROM vat_tables WHERE name = ?`, name).Scan(&cells)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("vatstore: load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("vatstore: load %q: %w", name, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT value, first_value, second_value, cell_count FROM vat_entries WHERE table_name = ? ORDER BY value`, name)
	if err != nil {
		return nil, fmt.Errorf("vatstore: load %q: %w", name, err)
	}
	defer rows.Close()

	var entries []combine.Entry
	for rows.Next() {
		var v, a, b int64
		var n int
		if err := rows.Scan(&v, &a, &b, &n); err != nil {
			return nil, fmt.Errorf("vatstore: load %q: %w", name, err)
		}
		entries = append(entries, combine.Entry{Value: uint64(v), First: uint64(a), Second: uint64(b), Count: n})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("vatstore: load %q: %w", name, err)
	}

	t, err := combine.NewTable(entries)
	if err != nil {
		return nil, fmt.Errorf("vatstore: load %q: %w", name, err)
	}
	if t.Total() != cells {
		return nil, fmt.Errorf("vatstore: load %q: cells %d != sum of counts %d: %w", name, cells, t.Total(), combine.ErrInvalidEntry)
	}

	return t, nil
}

// List returns stored table names in ascending order.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM vat_tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("vatstore: list: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("vatstore: list: %w", err)
		}
		names = append(names, n)
	}

	return names, rows.Err()
}

// Delete removes the table stored under name, or returns ErrNotFound.
func (s *Store) Delete(ctx context.Context, name string) (err error) {
	if name == "" {
		return ErrEmptyName
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("vatstore: delete %q: %w", name, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM vat_tables WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("vatstore: delete %q: %w", name, err)
	}
	if exists == 0 {
		err = fmt.Errorf("vatstore: delete %q: %w", name, ErrNotFound)
		return err
	}
	if err = deleteTx(ctx, tx, name); err != nil {
		return fmt.Errorf("vatstore: delete %q: %w", name, err)
	}

	return tx.Commit()
}

func deleteTx(ctx context.Context, tx *sql.Tx, name string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM vat_entries WHERE table_name = ?`, name); err != nil {
		return err
	}
	_, err := tx.ExecContext(ctx, `DELETE FROM vat_tables WHERE name = ?`, name)

	return err
}
