package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre el ledger normalizado.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetDailyAggregates agrega el ledger por día calendario en [startDate, endDate].
// Los valores monetarios se calculan como qty × price por fila antes de sumar.
func (r *AnalyticsRepo) GetDailyAggregates(
	ctx context.Context,
	startDate, endDate time.Time,
) ([]repository.DailyAggregateResult, error) {
	const query = `
	SELECT
	    record_date,
	    SUM(procurement_qty)                             AS procurement_qty,
	    SUM(procurement_qty * procurement_price)         AS procurement_value,
	    SUM(sales_qty)                                   AS sales_qty,
	    SUM(sales_qty * sales_price)                     AS sales_value,
	    SUM(closing_inventory)                           AS closing_units
	FROM daily_records
	WHERE record_date BETWEEN $1 AND $2
	GROUP BY record_date
	ORDER BY record_date`

	rows, err := r.pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetDailyAggregates: %w", err)
	}
	defer rows.Close()

	var results []repository.DailyAggregateResult
	for rows.Next() {
		var row repository.DailyAggregateResult
		if err := rows.Scan(
			&row.Date,
			&row.ProcurementQty,
			&row.ProcurementValue,
			&row.SalesQty,
			&row.SalesValue,
			&row.ClosingUnits,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetDailyAggregates scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopProducts devuelve los `limit` productos con mayor ingreso de ventas en el período.
func (r *AnalyticsRepo) GetTopProducts(
	ctx context.Context,
	startDate, endDate time.Time,
	limit int,
) ([]repository.TopProductResult, error) {
	const query = `
	SELECT
	    p.id                                   AS product_id,
	    p.code,
	    p.name,
	    SUM(d.sales_qty)                       AS units_sold,
	    SUM(d.sales_qty * d.sales_price)       AS sales_value
	FROM daily_records d
	JOIN products p ON p.id = d.product_id
	WHERE d.record_date BETWEEN $1 AND $2
	GROUP BY p.id, p.code, p.name
	ORDER BY sales_value DESC
	LIMIT $3`

	rows, err := r.pool.Query(ctx, query, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(
			&row.ProductID,
			&row.Code,
			&row.Name,
			&row.UnitsSold,
			&row.SalesValue,
		); err != nil {
			return nil, fmt.Errorf("analytics.GetTopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetOverview devuelve los KPIs globales del ledger.
// CurrentUnits suma el closing de la fila más reciente de cada producto
// (DISTINCT ON, que en PostgreSQL toma la primera fila de cada grupo según el ORDER BY).
func (r *AnalyticsRepo) GetOverview(ctx context.Context) (*repository.LedgerOverviewResult, error) {
	const totalsQuery = `
	SELECT
	    COUNT(DISTINCT product_id)                                   AS product_count,
	    COUNT(*)                                                     AS record_count,
	    MIN(record_date)                                             AS first_date,
	    MAX(record_date)                                             AS last_date,
	    COUNT(*) FILTER (WHERE closing_inventory < 0)                AS oversold_product_days,
	    COALESCE(SUM(procurement_qty * procurement_price), 0)        AS total_procurement_value,
	    COALESCE(SUM(sales_qty * sales_price), 0)                    AS total_sales_value
	FROM daily_records`

	var out repository.LedgerOverviewResult
	err := r.pool.QueryRow(ctx, totalsQuery).Scan(
		&out.ProductCount,
		&out.RecordCount,
		&out.FirstDate,
		&out.LastDate,
		&out.OversoldProductDays,
		&out.TotalProcurementValue,
		&out.TotalSalesValue,
	)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetOverview: %w", err)
	}

	const currentUnitsQuery = `
	SELECT COALESCE(SUM(closing_inventory), 0)
	FROM (
	    SELECT DISTINCT ON (product_id) closing_inventory
	    FROM daily_records
	    ORDER BY product_id, record_date DESC
	) latest`

	if err := r.pool.QueryRow(ctx, currentUnitsQuery).Scan(&out.CurrentUnits); err != nil {
		return nil, fmt.Errorf("analytics.GetOverview current units: %w", err)
	}
	return &out, nil
}
