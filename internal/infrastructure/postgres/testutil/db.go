package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/client-management/internal/infrastructure/postgres"
)

// MustOpenDB abre un pool contra DATABASE_URL y aplica las migraciones.
// Sin DATABASE_URL el test se salta: son pruebas de integración.
func MustOpenDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL no definido; se omiten las pruebas de integración")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err, "parse DATABASE_URL")
	// mantener los tests estables
	cfg.MaxConns = 4

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err, "conectar a la BD")
	t.Cleanup(pool.Close)

	require.NoError(t, pool.Ping(ctx), "ping BD")
	_, err = postgres.Migrate(ctx, pool)
	require.NoError(t, err, "migrar")
	return pool
}

// TruncateAll vacía las tablas y reinicia las identidades (ids desde 1).
func TruncateAll(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, `TRUNCATE customers, contacts RESTART IDENTITY CASCADE`)
	require.NoError(t, err, "truncate")
}
