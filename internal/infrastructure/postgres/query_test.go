package postgres

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/client-management/internal/domain/repository"
)

func TestBuildListQuery_SinFiltros(t *testing.T) {
	sql, args := buildListQuery(repository.CustomerQuery{SortBy: "id", Ascending: true, PageNumber: 1, PageSize: 10})

	assert.NotContains(t, sql, "WHERE")
	assert.Contains(t, sql, "ORDER BY cu.id ASC\n")
	assert.NotContains(t, sql, ", cu.id")
	assert.Contains(t, sql, "LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 0}, args)
}

func TestBuildListQuery_AmbosFiltros(t *testing.T) {
	sql, args := buildListQuery(repository.CustomerQuery{
		Name: "Fed", Phone: "67", SortBy: "PHONE", Ascending: false, PageNumber: 3, PageSize: 5,
	})

	assert.Contains(t, sql, "WHERE strpos(cu.name, $1) > 0 AND strpos(co.phone, $2) > 0")
	assert.Contains(t, sql, "ORDER BY co.phone DESC, cu.id DESC")
	assert.Contains(t, sql, "LIMIT $3 OFFSET $4")
	assert.Equal(t, []any{"Fed", "67", 5, 10}, args)
}

func TestBuildListQuery_SoloTelefono(t *testing.T) {
	sql, args := buildListQuery(repository.CustomerQuery{Phone: "5", SortBy: "name", Ascending: true, PageNumber: 1, PageSize: 10})

	assert.Contains(t, sql, "WHERE strpos(co.phone, $1) > 0")
	assert.NotContains(t, sql, "cu.name, $")
	assert.Contains(t, sql, "ORDER BY cu.name ASC, cu.id ASC")
	assert.Equal(t, []any{"5", 10, 0}, args)
}

func TestOrderColumn_ListaCerrada(t *testing.T) {
	assert.Equal(t, "cu.name", orderColumn("name"))
	assert.Equal(t, "cu.name", orderColumn("Name"))
	assert.Equal(t, "co.phone", orderColumn("phone"))
	assert.Equal(t, "cu.id", orderColumn("id"))
	assert.Equal(t, "cu.id", orderColumn(""))
	assert.Equal(t, "cu.id", orderColumn("name; DROP TABLE customers"))
	assert.False(t, strings.Contains(orderColumn("cu.name DESC"), "DESC"))
}

func TestMigrationVersions_Ordenadas(t *testing.T) {
	versions, err := migrationVersions()
	assert.NoError(t, err)
	assert.Equal(t, []string{"0001_create_contacts_customers", "0002_add_indexes"}, versions)
}
