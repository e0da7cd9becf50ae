package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyRecord es una fila del ledger: un día calendario de un producto.
// Clave de unicidad: (ProductID, RecordDate). Las cantidades son enteros;
// los precios son decimales con 2 dígitos fraccionarios.
//
// Invariantes (se garantizan en domain/ledger y se respaldan con el constraint
// UNIQUE(product_id, record_date) en la base):
//   - ClosingInventory = OpeningInventory + ProcurementQty - SalesQty
//   - OpeningInventory del día k+1 == ClosingInventory del día k
//   - ClosingInventory puede ser negativo (sobreventa; no es un error)
type DailyRecord struct {
	ID               string
	ProductID        string
	RecordDate       time.Time // fecha calendario, sin componente horario
	OpeningInventory int64
	ProcurementQty   int64
	ProcurementPrice decimal.Decimal
	SalesQty         int64
	SalesPrice       decimal.Decimal
	ClosingInventory int64
}
