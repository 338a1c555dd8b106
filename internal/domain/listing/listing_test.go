package listing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastrom/tienda-api/internal/domain/listing"
)

func TestParse_DefaultsLegados(t *testing.T) {
	o := listing.Parse("", "", "", "")
	assert.Equal(t, "id", o.SortBy)
	assert.Equal(t, listing.Asc, o.Sort)
	assert.Equal(t, 5, o.Limit)
	assert.Equal(t, 0, o.Offset)
	assert.Empty(t, o.Filters)
}

func TestParse_ValoresExplicitos(t *testing.T) {
	o := listing.Parse("name", "desc", "20", "40")
	assert.Equal(t, "name", o.SortBy)
	assert.Equal(t, listing.Desc, o.Sort)
	assert.Equal(t, 20, o.Limit)
	assert.Equal(t, 40, o.Offset)
}

func TestParse_SortEnMayusculasSeNormaliza(t *testing.T) {
	// El borde acepta DESC/Desc; la dirección almacenada debe quedar
	// canónica para que aguas abajo se renderice el ORDER BY correcto.
	o := listing.Parse("", "DESC", "", "")
	assert.Equal(t, listing.Desc, o.Sort)

	o = listing.Parse("", "Asc", "", "")
	assert.Equal(t, listing.Asc, o.Sort)
}

func TestParse_LimitAcotado(t *testing.T) {
	o := listing.Parse("", "", "9999", "")
	assert.Equal(t, listing.MaxLimit, o.Limit, "limit se acota al tope")

	o = listing.Parse("", "", "0", "")
	assert.Equal(t, listing.DefaultLimit, o.Limit, "limit no positivo vuelve al default")
}

func TestParse_OffsetNegativoVuelveAlDefault(t *testing.T) {
	o := listing.Parse("", "", "", "-3")
	assert.Equal(t, 0, o.Offset)
}

func TestWith_AcumulaFiltros(t *testing.T) {
	o := listing.Parse("", "", "", "").
		WithGte("price", 500).
		WithLte("price", 900).
		WithEq("supplierId", int64(3))

	require.Len(t, o.Filters, 3)
	assert.Equal(t, listing.Filter{Field: "price", Op: listing.OpGte, Value: 500}, o.Filters[0])
	assert.Equal(t, listing.Filter{Field: "price", Op: listing.OpLte, Value: 900}, o.Filters[1])
	assert.Equal(t, listing.Filter{Field: "supplierId", Op: listing.OpEq, Value: int64(3)}, o.Filters[2])
}
