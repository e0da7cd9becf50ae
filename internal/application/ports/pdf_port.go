package ports

import (
	"context"

	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
)

// LedgerPDFGenerator puerto para el reporte PDF del ledger de un producto.
type LedgerPDFGenerator interface {
	GenerateLedgerPDF(ctx context.Context, product *entity.Product, records []*entity.DailyRecord) ([]byte, error)
}
