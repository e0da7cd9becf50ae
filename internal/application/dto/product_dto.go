package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// DailyRecordResponse una fila del ledger de un producto.
type DailyRecordResponse struct {
	RecordDate       string          `json:"record_date"` // YYYY-MM-DD
	OpeningInventory int64           `json:"opening_inventory"`
	ProcurementQty   int64           `json:"procurement_qty"`
	ProcurementPrice decimal.Decimal `json:"procurement_price"`
	SalesQty         int64           `json:"sales_qty"`
	SalesPrice       decimal.Decimal `json:"sales_price"`
	ClosingInventory int64           `json:"closing_inventory"`
}

// ProductLedgerResponse ledger completo de un producto, ascendente por fecha.
type ProductLedgerResponse struct {
	Product ProductResponse       `json:"product"`
	Records []DailyRecordResponse `json:"records"`
}
