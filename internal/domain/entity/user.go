package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin   = "admin"   // puede cargar hojas de cálculo
	RoleAnalyst = "analyst" // solo lectura de analítica
)

// User usuario de la aplicación (gate de autenticación para la ingesta).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // "admin" | "analyst"
	Status       string // "active" | "disabled"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
