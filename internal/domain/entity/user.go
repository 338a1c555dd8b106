package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "ADMIN"
	RoleCustomer = "CUSTOMER"
	RoleSupplier = "SUPPLIER"
)

// Roles es el conjunto cerrado de roles aceptados en validación.
var Roles = []string{RoleAdmin, RoleCustomer, RoleSupplier}

// User representa un usuario del sistema. Point solo lo muta la operación de transferencia.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ADMIN, CUSTOMER, SUPPLIER
	Point        int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserFields nombres de atributos conocidos de User, en el orden del esquema.
// Es la whitelist usada para validar sortBy (evita inyección en el ORDER BY generado).
func UserFields() []string {
	return []string{"id", "name", "email", "password", "role", "point", "createdAt", "updatedAt"}
}
