package entity

import "time"

// Product representa un producto del ledger diario.
// Code es el código de negocio asignado por el usuario en la hoja de cálculo
// (columna "ID", único, máx 50 caracteres). Name es el único campo mutable:
// una recarga de la hoja lo actualiza pero nunca cambia el Code ni borra el producto.
type Product struct {
	ID        string
	Code      string // único
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
