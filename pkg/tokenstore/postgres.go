package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

const createTokensTable = `CREATE TABLE IF NOT EXISTS persisted_tokens (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// Postgres keeps the token in the persisted_tokens table. The *sql.DB is
// expected to be opened with the "pgx" driver.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(ctx context.Context, db *sql.DB) (*Postgres, error) {
	if _, err := db.ExecContext(ctx, createTokensTable); err != nil {
		return nil, fmt.Errorf("tokenstore/postgres: can't create table, %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Load(ctx context.Context) (string, error) {
	var token string
	row := p.db.QueryRowContext(ctx, "SELECT value FROM persisted_tokens WHERE key=$1", Key)
	err := row.Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("tokenstore/postgres: row scan failed, %w", err)
	}
	return token, nil
}

func (p *Postgres) Save(ctx context.Context, token string) error {
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO persisted_tokens(key, value) VALUES($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, Key, token)
	if err != nil {
		return fmt.Errorf("tokenstore/postgres: failed upsert token, %w", err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, "DELETE FROM persisted_tokens WHERE key=$1", Key); err != nil {
		return fmt.Errorf("tokenstore/postgres: failed delete token, %w", err)
	}
	return nil
}
