// Package listing modela los parámetros de listado (filtros, orden, paginación)
// como un objeto tipado que se construye una sola vez en el borde HTTP.
// Aguas abajo nadie vuelve a coaccionar strings del query.
package listing

import (
	"strconv"
	"strings"
)

// Direction dirección de ordenamiento.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Directions conjunto cerrado de métodos de orden aceptados.
var Directions = []string{string(Asc), string(Desc)}

// Valores por defecto del listado (idénticos al contrato legado) y tope de limit.
const (
	DefaultSortBy = "id"
	DefaultLimit  = 5
	DefaultOffset = 0
	MaxLimit      = 100
)

// Op operador de un filtro.
type Op string

const (
	OpEq  Op = "eq"
	OpGte Op = "gte"
	OpLte Op = "lte"
)

// Filter una restricción sobre un campo conocido de la entidad.
// Field siempre lo fija el código del servidor, nunca el cliente.
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

// Options parámetros de listado ya validados y con defaults aplicados.
type Options struct {
	Filters []Filter
	SortBy  string
	Sort    Direction
	Limit   int
	Offset  int
}

// Parse construye Options desde parámetros ya validados. String vacío significa
// "usar default", nunca cero ni inválido. Limit se acota a MaxLimit.
func Parse(sortBy, sort, limit, offset string) Options {
	o := Options{
		SortBy: DefaultSortBy,
		Sort:   Asc,
		Limit:  DefaultLimit,
		Offset: DefaultOffset,
	}
	if sortBy != "" {
		o.SortBy = sortBy
	}
	if sort != "" {
		// La validación del borde acepta asc/desc sin distinguir mayúsculas;
		// acá se normaliza para que la dirección aplicada coincida siempre.
		o.Sort = Direction(strings.ToLower(sort))
	}
	if limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			o.Limit = n
		}
	}
	if offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			o.Offset = n
		}
	}
	if o.Limit > MaxLimit {
		o.Limit = MaxLimit
	}
	if o.Limit <= 0 {
		o.Limit = DefaultLimit
	}
	if o.Offset < 0 {
		o.Offset = DefaultOffset
	}
	return o
}

// WithEq agrega un filtro de igualdad si el valor está presente.
func (o Options) WithEq(field string, value interface{}) Options {
	o.Filters = append(o.Filters, Filter{Field: field, Op: OpEq, Value: value})
	return o
}

// WithGte agrega una cota inferior sobre el campo.
func (o Options) WithGte(field string, value interface{}) Options {
	o.Filters = append(o.Filters, Filter{Field: field, Op: OpGte, Value: value})
	return o
}

// WithLte agrega una cota superior sobre el campo. Ambas cotas pueden
// combinarse en un rango de dos lados sobre el mismo campo.
func (o Options) WithLte(field string, value interface{}) Options {
	o.Filters = append(o.Filters, Filter{Field: field, Op: OpLte, Value: value})
	return o
}
