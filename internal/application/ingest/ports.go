package ingest

import (
	"context"

	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

// SheetReader decodifica el archivo subido (bytes .xlsx) a la primera hoja del
// libro. Debe devolver ErrNoData si el libro no tiene hojas o la hoja está vacía.
type SheetReader interface {
	ParseFirstSheet(content []byte) (*Sheet, error)
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el reemplazo del ledger sea
// todo-o-nada: si fn devuelve error se hace Rollback, si no, Commit una sola vez.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		recordRepo repository.DailyRecordRepository,
	) error) error
}
