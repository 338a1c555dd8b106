package dto

import "time"

// RegisterRequest entrada para registrar un usuario. Los campos llegan como
// texto desde el transporte; los validadores los chequean antes de coaccionar.
type RegisterRequest struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	Password       string `json:"password" form:"password"`
	RepeatPassword string `json:"repeatPassword" form:"repeatPassword"`
	Role           string `json:"role" form:"role"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UpdateUserRequest entrada para actualizar nombre y email.
type UpdateUserRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Point     int64     `json:"point"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse salida del login: token JWT más el usuario autenticado.
type LoginResponse struct {
	Token string
	User  UserResponse
}
