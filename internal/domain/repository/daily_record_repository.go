package repository

import "github.com/Crokily/aibuild-dashboard/internal/domain/entity"

// DailyRecordRepository puerto de persistencia para el ledger diario.
// Una carga reemplaza el ledger completo del producto: DeleteByProduct y luego
// BulkInsert, dentro de la misma transacción (ver ingest.TxRunner).
type DailyRecordRepository interface {
	// DeleteByProduct elimina incondicionalmente todos los registros del producto.
	DeleteByProduct(productID string) error
	// BulkInsert inserta el lote en una sola escritura. Devuelve cuántas filas insertó.
	BulkInsert(records []*entity.DailyRecord) (int, error)
	// ListByProduct devuelve el ledger del producto ordenado por fecha ascendente.
	ListByProduct(productID string) ([]*entity.DailyRecord, error)
}
