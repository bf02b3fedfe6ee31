package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS listings (
	id         TEXT PRIMARY KEY,
	category   TEXT NOT NULL DEFAULT '',
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS listings_category_idx ON listings (category COLLATE NOCASE);
CREATE TABLE IF NOT EXISTS profiles (
	id         TEXT PRIMARY KEY,
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type sqliteBackend struct {
	db *sql.DB
}

func openSQLite(ctx context.Context, dsn string) (*sqliteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer; also keeps :memory: on one connection

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	return &sqliteBackend{db: db}, nil
}

func (b *sqliteBackend) migrate(ctx context.Context) error {
	_, err := b.db.ExecContext(ctx, sqliteSchema)
	return err
}

func (b *sqliteBackend) listings(ctx context.Context, category string) ([][]byte, error) {
	var rows *sql.Rows
	var err error
	if category == "" {
		rows, err = b.db.QueryContext(ctx, `SELECT data FROM listings ORDER BY id`)
	} else {
		rows, err = b.db.QueryContext(ctx,
			`SELECT data FROM listings WHERE category = ? COLLATE NOCASE ORDER BY id`, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([][]byte, 0)
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		out = append(out, []byte(data))
	}
	return out, rows.Err()
}

func (b *sqliteBackend) listing(ctx context.Context, id string) ([]byte, error) {
	return b.document(ctx, `SELECT data FROM listings WHERE id = ?`, id)
}

func (b *sqliteBackend) upsertListing(ctx context.Context, id, category string, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO listings (id, category, data)
		 VALUES (?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET category = excluded.category, data = excluded.data,
		 updated_at = CURRENT_TIMESTAMP`,
		id, category, string(data),
	)
	return err
}

func (b *sqliteBackend) profile(ctx context.Context, id string) ([]byte, error) {
	return b.document(ctx, `SELECT data FROM profiles WHERE id = ?`, id)
}

func (b *sqliteBackend) upsertProfile(ctx context.Context, id string, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO profiles (id, data)
		 VALUES (?, ?)
		 ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		id, string(data),
	)
	return err
}

func (b *sqliteBackend) document(ctx context.Context, query, id string) ([]byte, error) {
	var data string
	err := b.db.QueryRowContext(ctx, query, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(data), nil
}

func (b *sqliteBackend) close() {
	if b.db != nil {
		_ = b.db.Close()
	}
}
