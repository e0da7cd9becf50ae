package usecase

import (
	"context"
	"fmt"

	"github.com/Crokily/aibuild-dashboard/internal/application/ports"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

// ReportUseCase genera el reporte PDF del ledger de un producto.
type ReportUseCase struct {
	products repository.ProductRepository
	records  repository.DailyRecordRepository
	pdf      ports.LedgerPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(products repository.ProductRepository, records repository.DailyRecordRepository, pdf ports.LedgerPDFGenerator) *ReportUseCase {
	return &ReportUseCase{products: products, records: records, pdf: pdf}
}

// GenerateProductLedgerPDF arma el PDF con todas las filas del ledger del
// producto. Producto inexistente → domain.ErrNotFound.
func (uc *ReportUseCase) GenerateProductLedgerPDF(ctx context.Context, productID string) ([]byte, string, error) {
	p, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, "", err
	}
	records, err := uc.records.ListByProduct(p.ID)
	if err != nil {
		return nil, "", err
	}

	doc, err := uc.pdf.GenerateLedgerPDF(ctx, p, records)
	if err != nil {
		return nil, "", fmt.Errorf("generando PDF del ledger: %w", err)
	}
	filename := fmt.Sprintf("ledger_%s.pdf", p.Code)
	return doc, filename, nil
}
