package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS listings (
	id         TEXT PRIMARY KEY,
	category   TEXT NOT NULL DEFAULT '',
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS listings_category_idx ON listings (LOWER(category));
CREATE TABLE IF NOT EXISTS profiles (
	id         TEXT PRIMARY KEY,
	data       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

type postgresBackend struct {
	pool *pgxpool.Pool
}

// connectPostgres establishes a connection pool to the database.
func connectPostgres(ctx context.Context, databaseURL string) (*postgresBackend, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &postgresBackend{pool: pool}, nil
}

func (b *postgresBackend) migrate(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, postgresSchema)
	return err
}

func (b *postgresBackend) listings(ctx context.Context, category string) ([][]byte, error) {
	var rows pgx.Rows
	var err error
	if category == "" {
		rows, err = b.pool.Query(ctx, `SELECT data FROM listings ORDER BY id`)
	} else {
		rows, err = b.pool.Query(ctx,
			`SELECT data FROM listings WHERE LOWER(category) = LOWER($1) ORDER BY id`, category)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([][]byte, 0)
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		out = append(out, data)
	}
	return out, rows.Err()
}

func (b *postgresBackend) listing(ctx context.Context, id string) ([]byte, error) {
	var data []byte
	err := b.pool.QueryRow(ctx, `SELECT data FROM listings WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (b *postgresBackend) upsertListing(ctx context.Context, id, category string, data []byte) error {
	_, err := b.pool.Exec(ctx,
		`INSERT INTO listings (id, category, data)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET category = $2, data = $3, updated_at = NOW()`,
		id, category, data,
	)
	return err
}

func (b *postgresBackend) profile(ctx context.Context, id string) ([]byte, error) {
	var data []byte
	err := b.pool.QueryRow(ctx, `SELECT data FROM profiles WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (b *postgresBackend) upsertProfile(ctx context.Context, id string, data []byte) error {
	_, err := b.pool.Exec(ctx,
		`INSERT INTO profiles (id, data)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = $2, updated_at = NOW()`,
		id, data,
	)
	return err
}

func (b *postgresBackend) close() {
	if b.pool != nil {
		b.pool.Close()
	}
}
