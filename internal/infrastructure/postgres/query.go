package postgres

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/jcastrom/tienda-api/internal/domain/listing"
)

// column traduce un nombre de atributo del API (camelCase) a su columna
// (snake_case). Los nombres ya pasaron por la whitelist de la entidad en
// validación; esto es solo ortografía, no sanitización.
func column(field string) string {
	var b strings.Builder
	for _, r := range field {
		if unicode.IsUpper(r) {
			b.WriteByte('_')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sqlOp traduce el operador del filtro a SQL.
func sqlOp(op listing.Op) string {
	switch op {
	case listing.OpGte:
		return ">="
	case listing.OpLte:
		return "<="
	default:
		return "="
	}
}

// buildListQuery arma la cola de un SELECT de listado: WHERE con placeholders
// posicionales, ORDER BY sobre la columna pedida y LIMIT/OFFSET. Devuelve el
// SQL completo y los argumentos en orden.
func buildListQuery(base string, opts listing.Options) (string, []any) {
	var sb strings.Builder
	sb.WriteString(base)
	args := make([]any, 0, len(opts.Filters)+2)
	for i, f := range opts.Filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = append(args, f.Value)
		sb.WriteString(fmt.Sprintf("%s %s $%d", column(f.Field), sqlOp(f.Op), len(args)))
	}
	direction := "ASC"
	if opts.Sort == listing.Desc {
		direction = "DESC"
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY %s %s", column(opts.SortBy), direction))
	args = append(args, opts.Limit)
	sb.WriteString(fmt.Sprintf(" LIMIT $%d", len(args)))
	args = append(args, opts.Offset)
	sb.WriteString(fmt.Sprintf(" OFFSET $%d", len(args)))
	return sb.String(), args
}
