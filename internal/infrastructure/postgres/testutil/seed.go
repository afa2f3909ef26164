package testutil

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// MustInsertCustomer inserta contacto y cliente y devuelve el id del cliente.
func MustInsertCustomer(t *testing.T, db *pgxpool.Pool, name, phone, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		WITH co AS (
			INSERT INTO contacts (phone) VALUES ($2) RETURNING id
		)
		INSERT INTO customers (name, status, contact_id)
		SELECT $1, $3, co.id FROM co
		RETURNING id
	`, name, phone, status).Scan(&id)

	require.NoError(t, err)
	require.NotZero(t, id)
	return id
}

// MustCount cuenta filas de una tabla conocida.
func MustCount(t *testing.T, db *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	switch table {
	case "customers", "contacts":
	default:
		t.Fatalf("tabla desconocida: %s", table)
	}
	err := db.QueryRow(context.Background(), `SELECT count(*) FROM `+table).Scan(&n)
	require.NoError(t, err)
	return n
}
