package dto

import "github.com/shopspring/decimal"

// DailyAggregateDTO punto de la serie diaria para los charts.
type DailyAggregateDTO struct {
	Date             string          `json:"date"` // YYYY-MM-DD
	ProcurementQty   int64           `json:"procurement_qty"`
	ProcurementValue decimal.Decimal `json:"procurement_value"`
	SalesQty         int64           `json:"sales_qty"`
	SalesValue       decimal.Decimal `json:"sales_value"`
	ClosingUnits     int64           `json:"closing_units"`
}

// DailySeriesResponse serie diaria agregada sobre todos los productos.
type DailySeriesResponse struct {
	Start string              `json:"start"`
	End   string              `json:"end"`
	Items []DailyAggregateDTO `json:"items"`
}

// TopProductDTO un producto del ranking por ingreso.
type TopProductDTO struct {
	ProductID  string          `json:"product_id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	UnitsSold  int64           `json:"units_sold"`
	SalesValue decimal.Decimal `json:"sales_value"`
}

// TopProductsResponse ranking de productos por ingreso de ventas.
type TopProductsResponse struct {
	Items []TopProductDTO `json:"items"`
}

// DashboardSummaryDTO tarjetas KPI del dashboard.
type DashboardSummaryDTO struct {
	ProductCount          int64           `json:"product_count"`
	RecordCount           int64           `json:"record_count"`
	FirstDate             string          `json:"first_date,omitempty"` // YYYY-MM-DD, vacío si no hay datos
	LastDate              string          `json:"last_date,omitempty"`
	CurrentUnits          int64           `json:"current_units"`
	OversoldProductDays   int64           `json:"oversold_product_days"`
	TotalProcurementValue decimal.Decimal `json:"total_procurement_value"`
	TotalSalesValue       decimal.Decimal `json:"total_sales_value"`
	TopProducts           []TopProductDTO `json:"top_products"`
}
