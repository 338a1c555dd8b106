package domain

import (
	"fmt"
	"net/http"
)

// Error es el error de dominio que viaja hasta el responder HTTP central:
// un status y un único mensaje legible, igual que el contrato legado
// {success:false, error:{status, message}}.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// BadRequest construye un error 400 (validación o regla de negocio).
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// BadRequestf construye un error 400 con formato.
func BadRequestf(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NotFound construye un error 404.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// NotFoundf construye un error 404 con formato.
func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized construye un error 401.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Errores fijos reutilizados por los casos de uso.
var (
	ErrEmailAlreadyExists = BadRequest("This email has been already registered")
	ErrAccountNotFound    = BadRequest("This account is not found")
	ErrPasswordIncorrect  = BadRequest("Password is incorrect")
	ErrPointInsufficient  = BadRequest("Point is not sufficient")
	ErrStockInsufficient  = BadRequest("Supplier stock is not sufficient")
)
