//go:build integration
// +build integration

package tokenstore

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/stretchr/testify/require"
)

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("DATABASE_URI")
	if dsn == "" {
		t.Skip("DATABASE_URI is not set")
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	s, err := NewPostgres(ctx, db)
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx))

	exerciseStore(t, s)
}
