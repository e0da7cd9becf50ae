package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Crokily/aibuild-dashboard/internal/domain"
	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

var _ repository.DailyRecordRepository = (*DailyRecordRepo)(nil)

// DailyRecordRepo implementación del puerto DailyRecordRepository sobre PostgreSQL (usable con pool o tx).
type DailyRecordRepo struct {
	q Querier
}

// NewDailyRecordRepository construye el adaptador de persistencia para el ledger diario.
func NewDailyRecordRepository(q Querier) *DailyRecordRepo {
	return &DailyRecordRepo{q: q}
}

// DeleteByProduct elimina todos los registros del producto. Eliminar cero filas no es error.
func (r *DailyRecordRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM daily_records WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete daily records: %w", err)
	}
	return nil
}

// BulkInsert inserta el lote vía COPY. Un choque con UNIQUE(product_id, record_date)
// llega como domain.ErrConflict.
func (r *DailyRecordRepo) BulkInsert(records []*entity.DailyRecord) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
	}
	columns := []string{
		"id", "product_id", "record_date",
		"opening_inventory", "procurement_qty", "procurement_price",
		"sales_qty", "sales_price", "closing_inventory",
	}
	n, err := r.q.CopyFrom(context.Background(),
		pgx.Identifier{"daily_records"},
		columns,
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			rec := records[i]
			return []any{
				rec.ID, rec.ProductID, rec.RecordDate,
				rec.OpeningInventory, rec.ProcurementQty, rec.ProcurementPrice,
				rec.SalesQty, rec.SalesPrice, rec.ClosingInventory,
			}, nil
		}),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrConflict
		}
		return 0, fmt.Errorf("bulk insert daily records: %w", err)
	}
	return int(n), nil
}

// ListByProduct devuelve el ledger del producto ordenado por fecha ascendente.
func (r *DailyRecordRepo) ListByProduct(productID string) ([]*entity.DailyRecord, error) {
	query := `
		SELECT id, product_id, record_date, opening_inventory, procurement_qty,
		       procurement_price, sales_qty, sales_price, closing_inventory
		FROM daily_records WHERE product_id = $1 ORDER BY record_date`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list daily records: %w", err)
	}
	defer rows.Close()
	var list []*entity.DailyRecord
	for rows.Next() {
		var rec entity.DailyRecord
		if err := rows.Scan(
			&rec.ID, &rec.ProductID, &rec.RecordDate, &rec.OpeningInventory, &rec.ProcurementQty,
			&rec.ProcurementPrice, &rec.SalesQty, &rec.SalesPrice, &rec.ClosingInventory,
		); err != nil {
			return nil, fmt.Errorf("scan daily record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
