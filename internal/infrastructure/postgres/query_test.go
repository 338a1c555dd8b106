package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrom/tienda-api/internal/domain/listing"
)

func TestColumn_CamelCaseASnakeCase(t *testing.T) {
	assert.Equal(t, "id", column("id"))
	assert.Equal(t, "created_at", column("createdAt"))
	assert.Equal(t, "supplier_id", column("supplierId"))
	assert.Equal(t, "name", column("name"))
}

func TestBuildListQuery_SoloDefaults(t *testing.T) {
	opts := listing.Parse("", "", "", "")
	sql, args := buildListQuery("SELECT id FROM users", opts)

	assert.Equal(t, "SELECT id FROM users ORDER BY id ASC LIMIT $1 OFFSET $2", sql)
	require.Len(t, args, 2)
	assert.Equal(t, 5, args[0])
	assert.Equal(t, 0, args[1])
}

func TestBuildListQuery_FiltrosYRango(t *testing.T) {
	opts := listing.Parse("price", "desc", "10", "20").
		WithGte("price", 500).
		WithLte("price", 900).
		WithEq("supplierId", int64(3))
	sql, args := buildListQuery("SELECT id FROM products", opts)

	assert.Equal(t,
		"SELECT id FROM products WHERE price >= $1 AND price <= $2 AND supplier_id = $3"+
			" ORDER BY price DESC LIMIT $4 OFFSET $5",
		sql)
	require.Len(t, args, 5)
	assert.Equal(t, 500, args[0])
	assert.Equal(t, 900, args[1])
	assert.Equal(t, int64(3), args[2])
	assert.Equal(t, 10, args[3])
	assert.Equal(t, 20, args[4])
}

func TestBuildListQuery_SortMayusculasRindeDesc(t *testing.T) {
	opts := listing.Parse("price", "DESC", "", "")
	sql, _ := buildListQuery("SELECT id FROM products", opts)
	assert.Contains(t, sql, "ORDER BY price DESC")
}

func TestBuildListQuery_OrdenSiempreDeWhitelist(t *testing.T) {
	// El SortBy ya pasó por la whitelist de la entidad; acá solo se
	// traduce la ortografía, nunca se interpola entrada cruda.
	opts := listing.Parse("createdAt", "asc", "", "")
	sql, _ := buildListQuery("SELECT id FROM orders", opts)
	assert.Contains(t, sql, "ORDER BY created_at ASC")
}
