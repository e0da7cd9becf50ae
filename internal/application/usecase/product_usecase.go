package usecase

import (
	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

// ProductUseCase lecturas del catálogo y del ledger por producto.
type ProductUseCase struct {
	products repository.ProductRepository
	records  repository.DailyRecordRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(products repository.ProductRepository, records repository.DailyRecordRepository) *ProductUseCase {
	return &ProductUseCase{products: products, records: records}
}

// List devuelve el catálogo paginado, ordenado por código.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	items, err := uc.products.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	resp := &dto.ProductListResponse{
		Items: make([]dto.ProductResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range items {
		resp.Items = append(resp.Items, *toProductResponse(p))
	}
	return resp, nil
}

// GetLedger devuelve el producto y su ledger completo en orden cronológico.
// Producto inexistente → domain.ErrNotFound (propagado desde el repositorio).
func (uc *ProductUseCase) GetLedger(productID string) (*dto.ProductLedgerResponse, error) {
	p, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	records, err := uc.records.ListByProduct(p.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ProductLedgerResponse{
		Product: *toProductResponse(p),
		Records: make([]dto.DailyRecordResponse, 0, len(records)),
	}
	for _, r := range records {
		resp.Records = append(resp.Records, dto.DailyRecordResponse{
			RecordDate:       r.RecordDate.Format(dateLayout),
			OpeningInventory: r.OpeningInventory,
			ProcurementQty:   r.ProcurementQty,
			ProcurementPrice: r.ProcurementPrice,
			SalesQty:         r.SalesQty,
			SalesPrice:       r.SalesPrice,
			ClosingInventory: r.ClosingInventory,
		})
	}
	return resp, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:        p.ID,
		Code:      p.Code,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
