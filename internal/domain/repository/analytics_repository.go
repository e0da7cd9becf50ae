package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyAggregateResult agregados de un día calendario sumados sobre todos los productos.
type DailyAggregateResult struct {
	Date             time.Time
	ProcurementQty   int64
	ProcurementValue decimal.Decimal // SUM(procurement_qty * procurement_price)
	SalesQty         int64
	SalesValue       decimal.Decimal // SUM(sales_qty * sales_price)
	ClosingUnits     int64           // SUM(closing_inventory) del día
}

// TopProductResult un producto del ranking por ingreso de ventas.
type TopProductResult struct {
	ProductID  string
	Code       string
	Name       string
	UnitsSold  int64
	SalesValue decimal.Decimal
}

// LedgerOverviewResult KPIs globales del ledger completo.
type LedgerOverviewResult struct {
	ProductCount          int64
	RecordCount           int64
	FirstDate             *time.Time // nil si el ledger está vacío
	LastDate              *time.Time
	CurrentUnits          int64 // suma del closing más reciente de cada producto
	OversoldProductDays   int64 // filas con closing_inventory < 0
	TotalProcurementValue decimal.Decimal
	TotalSalesValue       decimal.Decimal
}

// AnalyticsRepository consultas de solo lectura sobre el ledger normalizado.
// Es la única superficie que consume la capa de presentación (charts, KPIs, IA).
type AnalyticsRepository interface {
	GetDailyAggregates(ctx context.Context, startDate, endDate time.Time) ([]DailyAggregateResult, error)
	GetTopProducts(ctx context.Context, startDate, endDate time.Time, limit int) ([]TopProductResult, error)
	GetOverview(ctx context.Context) (*LedgerOverviewResult, error)
}
