package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
	"github.com/Crokily/aibuild-dashboard/internal/domain/ledger"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

// UploadUseCase orquesta la ingesta completa de una hoja de cálculo:
// gate de extensión → decodificación → validación → extracción → construcción
// del ledger → reemplazo transaccional (upsert de producto, delete de su ledger
// anterior, bulk insert del nuevo).
//
// La operación es síncrona y secuencial por producto dentro de una sola
// transacción; no hay reintentos automáticos ante conflicto.
type UploadUseCase struct {
	reader   SheetReader
	txRunner TxRunner
	now      func() time.Time // inyectable en tests; la fecha ancla de la carga
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(reader SheetReader, txRunner TxRunner) *UploadUseCase {
	return &UploadUseCase{reader: reader, txRunner: txRunner, now: time.Now}
}

// pendingProduct un producto extraído con su ledger ya construido, a la espera
// de resolver su identidad estable en la transacción.
type pendingProduct struct {
	code    string
	name    string
	records []entity.DailyRecord
}

// Execute procesa el archivo subido y devuelve el resumen de la carga.
//
// Errores posibles: ErrUnsupportedFile, ErrNoData, *ValidationError, o el error
// de la transacción (los conflictos de clave única llegan como domain.ErrConflict
// desde el repositorio). La validación es un gate estricto: ningún error de
// validación alcanza la capa de persistencia.
func (uc *UploadUseCase) Execute(ctx context.Context, filename string, content []byte) (*dto.UploadSummary, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
	default:
		return nil, ErrUnsupportedFile
	}
	if len(content) == 0 {
		return nil, ErrNoData
	}

	sheet, err := uc.reader.ParseFirstSheet(content)
	if err != nil {
		return nil, err
	}
	if err := ValidateSheet(sheet); err != nil {
		return nil, err
	}

	// La última ranura de cada producto se ancla a la fecha de la carga.
	anchor := uc.now()

	var pending []pendingProduct
	for _, row := range sheet.Rows {
		extract := ExtractRow(row)
		if len(extract.Days) == 0 {
			// Sin columnas de día reconocidas: el producto no se registra.
			continue
		}
		pending = append(pending, pendingProduct{
			code:    extract.Code,
			name:    extract.Name,
			records: ledger.Build(extract.Days, extract.Opening, anchor),
		})
	}

	summary := &dto.UploadSummary{}
	if len(pending) == 0 {
		return summary, nil
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		recordRepo repository.DailyRecordRepository,
	) error {
		// Secuencial por producto para que el delete-then-insert sea determinista.
		batch := make([]*entity.DailyRecord, 0, totalRecords(pending))
		for _, p := range pending {
			product := &entity.Product{Code: p.code, Name: p.name}
			if err := productRepo.Upsert(product); err != nil {
				return err
			}
			if err := recordRepo.DeleteByProduct(product.ID); err != nil {
				return err
			}
			for i := range p.records {
				rec := p.records[i]
				rec.ProductID = product.ID
				batch = append(batch, &rec)
			}
		}
		inserted, err := recordRepo.BulkInsert(batch)
		if err != nil {
			return err
		}
		summary.ProductsProcessed = len(pending)
		summary.RecordsCreated = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

func totalRecords(pending []pendingProduct) int {
	n := 0
	for _, p := range pending {
		n += len(p.records)
	}
	return n
}
