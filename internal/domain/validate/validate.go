// Package validate contiene los validadores puros de entrada: funciones sin
// efectos sobre texto crudo (todo llega como string desde el transporte) que
// producen fallas estructuradas {status, message}.
//
// El contrato legado reportaba un único slot de error que cada chequeo vivo
// sobrescribía, así que el cliente solo veía la ÚLTIMA falla. Result conserva
// la lista completa de violaciones y expone Last() para mantener ese
// comportamiento en el wire; quien quiera todas puede recorrer Failures.
package validate

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/jcastrom/tienda-api/internal/domain"
	"github.com/jcastrom/tienda-api/internal/domain/listing"
)

// Failure una restricción violada.
type Failure struct {
	Status  int
	Message string
}

// Result acumula todas las fallas de una validación.
type Result struct {
	Failures []Failure
}

// OK indica que no se violó ninguna restricción.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Last devuelve la última falla registrada (compatibilidad con el contrato
// legado de un solo slot de error) o nil si no hubo fallas.
func (r Result) Last() *Failure {
	if len(r.Failures) == 0 {
		return nil
	}
	return &r.Failures[len(r.Failures)-1]
}

// Err convierte Last() en un *domain.Error listo para el responder central.
func (r Result) Err() error {
	f := r.Last()
	if f == nil {
		return nil
	}
	return &domain.Error{Status: f.Status, Message: f.Message}
}

func (r *Result) add(message string) {
	r.Failures = append(r.Failures, Failure{Status: 400, Message: message})
}

// isInteger reporta si s representa un entero. El string vacío cuenta como
// entero (coacciona a cero), igual que la capa legada; los chequeos de
// presencia van aparte.
func isInteger(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return err == nil
}

// isDecimal reporta si s representa un número (entero o con decimales).
func isDecimal(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// toInt coacciona s a entero; vacío es cero. Llamar después de isInteger.
func toInt(s string) int64 {
	n, _ := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n
}

// toFloat coacciona s a número; vacío es cero. Llamar después de isDecimal.
func toFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

// Int coacciona un string ya validado a entero; vacío es cero.
// Usar solo después de que un validador aceptó el valor.
func Int(s string) int64 { return toInt(s) }


func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

// isEmail valida la gramática de una dirección de correo. Exige un punto en el
// dominio, como la librería de validación del contrato original.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	return strings.Contains(s[at+1:], ".")
}

// listQuery chequeos comunes de sortBy/sort/limit/offset contra la whitelist
// de campos de la entidad. String vacío = "no provisto", nunca inválido.
func (r *Result) listQuery(entityName string, fields []string, sortBy, sort, limit, offset string) {
	if !contains(fields, sortBy) && strings.TrimSpace(sortBy) != "" {
		r.add(entityName + " doesn't have " + sortBy + " property")
	}
	if !contains(listing.Directions, strings.ToLower(sort)) && strings.TrimSpace(sort) != "" {
		r.add("Sort method is invalid")
	}
	if !isInteger(limit) {
		r.add("Limit value must be numeric")
	}
	if !isInteger(offset) {
		r.add("Offset value must be numeric")
	}
}
