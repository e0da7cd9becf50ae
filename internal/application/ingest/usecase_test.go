package ingest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test: reader stub y almacenamiento en memoria con semántica
// transaccional (se trabaja sobre una copia y solo se publica en Commit).
// ──────────────────────────────────────────────────────────────────────────────

type stubReader struct {
	sheet *Sheet
	err   error
}

func (r stubReader) ParseFirstSheet([]byte) (*Sheet, error) { return r.sheet, r.err }

type memStore struct {
	products map[string]*entity.Product       // por code
	records  map[string][]*entity.DailyRecord // por productID
}

func newMemStore() *memStore {
	return &memStore{
		products: make(map[string]*entity.Product),
		records:  make(map[string][]*entity.DailyRecord),
	}
}

func (s *memStore) clone() *memStore {
	c := newMemStore()
	for code, p := range s.products {
		cp := *p
		c.products[code] = &cp
	}
	for id, recs := range s.records {
		for _, r := range recs {
			cr := *r
			c.records[id] = append(c.records[id], &cr)
		}
	}
	return c
}

type memProductRepo struct{ store *memStore }

func (r *memProductRepo) Upsert(p *entity.Product) error {
	if existing, ok := r.store.products[p.Code]; ok {
		existing.Name = p.Name
		p.ID = existing.ID
		return nil
	}
	p.ID = uuid.New().String()
	cp := *p
	r.store.products[p.Code] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	return r.store.products[code], nil
}

func (r *memProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.store.products {
		out = append(out, p)
	}
	return out, nil
}

type memRecordRepo struct {
	store      *memStore
	failInsert error
}

func (r *memRecordRepo) DeleteByProduct(productID string) error {
	delete(r.store.records, productID)
	return nil
}

func (r *memRecordRepo) BulkInsert(records []*entity.DailyRecord) (int, error) {
	if r.failInsert != nil {
		return 0, r.failInsert
	}
	for _, rec := range records {
		r.store.records[rec.ProductID] = append(r.store.records[rec.ProductID], rec)
	}
	return len(records), nil
}

func (r *memRecordRepo) ListByProduct(productID string) ([]*entity.DailyRecord, error) {
	return r.store.records[productID], nil
}

// memTxRunner ejecuta fn sobre una copia del store y publica solo si fn no falla.
type memTxRunner struct {
	store      *memStore
	failInsert error
}

func (t *memTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	recordRepo repository.DailyRecordRepository,
) error) error {
	work := t.store.clone()
	if err := fn(&memProductRepo{store: work}, &memRecordRepo{store: work, failInsert: t.failInsert}); err != nil {
		return err // rollback: el store original queda intacto
	}
	*t.store = *work
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var uploadDay = time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

func singleRowSheet() *Sheet {
	return &Sheet{
		Columns: validColumns,
		Rows:    []Row{validRow(1)},
	}
}

func newTestUseCase(store *memStore, sheet *Sheet, at time.Time) *UploadUseCase {
	uc := NewUploadUseCase(stubReader{sheet: sheet}, &memTxRunner{store: store})
	uc.now = func() time.Time { return at }
	return uc
}

func contents() []byte { return []byte("xlsx-bytes") }

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1 (escenario 1 del contrato): una fila, un día → un registro con
// opening=100, closing=120, fechado en la fecha de la carga.
func TestExecute_CargaSimple(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store, singleRowSheet(), uploadDay)

	summary, err := uc.Execute(context.Background(), "inventory.xlsx", contents())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.ProductsProcessed)
	assert.Equal(t, 1, summary.RecordsCreated)

	product := store.products["P001"]
	require.NotNil(t, product)
	assert.Equal(t, "iPhone 15", product.Name)

	recs := store.records[product.ID]
	require.Len(t, recs, 1)
	assert.Equal(t, int64(100), recs[0].OpeningInventory)
	assert.Equal(t, int64(120), recs[0].ClosingInventory)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), recs[0].RecordDate)
}

// Caso 2 (escenario 2, ley de reemplazo idempotente): la misma hoja dos veces el
// mismo día deja exactamente el mismo número de registros, no el doble.
func TestExecute_ReemplazoIdempotente(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store, singleRowSheet(), uploadDay)

	_, err := uc.Execute(context.Background(), "inventory.xlsx", contents())
	require.NoError(t, err)
	summary, err := uc.Execute(context.Background(), "inventory.xlsx", contents())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.RecordsCreated, "la segunda carga también reporta 1 creado")
	require.Len(t, store.products, 1)
	product := store.products["P001"]
	assert.Len(t, store.records[product.ID], 1, "reemplazo total: sin duplicados")
}

// Caso 3 (ley de upsert): un código existente actualiza el nombre sin crear
// una segunda fila de producto y conservando el id estable.
func TestExecute_UpsertPorCodigo(t *testing.T) {
	store := newMemStore()
	existing := &entity.Product{ID: "fixed-id", Code: "P001", Name: "Nombre viejo"}
	store.products["P001"] = existing

	uc := newTestUseCase(store, singleRowSheet(), uploadDay)
	_, err := uc.Execute(context.Background(), "inventory.xlsx", contents())
	require.NoError(t, err)

	require.Len(t, store.products, 1)
	assert.Equal(t, "fixed-id", store.products["P001"].ID)
	assert.Equal(t, "iPhone 15", store.products["P001"].Name)
}

// Caso 4: recargar en un día posterior desplaza las fechas al nuevo ancla
// (decisión documentada: las etiquetas "Day N" son relativas a la carga).
func TestExecute_RecargaEnOtroDiaDesplazaFechas(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store, singleRowSheet(), uploadDay)
	_, err := uc.Execute(context.Background(), "inventory.xlsx", contents())
	require.NoError(t, err)

	uc.now = func() time.Time { return uploadDay.AddDate(0, 0, 3) }
	_, err = uc.Execute(context.Background(), "inventory.xlsx", contents())
	require.NoError(t, err)

	recs := store.records[store.products["P001"].ID]
	require.Len(t, recs, 1)
	assert.Equal(t, time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC), recs[0].RecordDate)
}

// Caso 5: una fila sin ninguna celda de día con valor no registra el producto.
func TestExecute_FilaSinObservacionesSeOmite(t *testing.T) {
	empty := validRow(2)
	empty.Cells["ID"] = "P099"
	empty.Cells["Product Name"] = "Sin movimientos"
	for _, c := range validColumns[3:] {
		empty.Cells[c] = ""
	}
	sheet := &Sheet{Columns: validColumns, Rows: []Row{validRow(1), empty}}

	store := newMemStore()
	uc := newTestUseCase(store, sheet, uploadDay)
	summary, err := uc.Execute(context.Background(), "inventory.xlsx", contents())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.ProductsProcessed)
	assert.NotContains(t, store.products, "P099")
}

// Caso 6: si el bulk insert falla, la transacción entera se revierte:
// ni el upsert del producto ni el delete del ledger anterior sobreviven.
func TestExecute_RollbackTotal(t *testing.T) {
	store := newMemStore()
	prev := &entity.Product{ID: "pid-1", Code: "P001", Name: "Anterior"}
	store.products["P001"] = prev
	store.records["pid-1"] = []*entity.DailyRecord{{ID: "r1", ProductID: "pid-1"}}

	uc := NewUploadUseCase(stubReader{sheet: singleRowSheet()}, &memTxRunner{
		store:      store,
		failInsert: assert.AnError,
	})
	uc.now = func() time.Time { return uploadDay }

	_, err := uc.Execute(context.Background(), "inventory.xlsx", contents())
	require.ErrorIs(t, err, assert.AnError)

	assert.Equal(t, "Anterior", store.products["P001"].Name, "el upsert no debe publicarse")
	assert.Len(t, store.records["pid-1"], 1, "el delete no debe publicarse")
}

// Caso 7: gate de extensión antes de tocar el contenido.
func TestExecute_ExtensionNoSoportada(t *testing.T) {
	uc := newTestUseCase(newMemStore(), singleRowSheet(), uploadDay)
	_, err := uc.Execute(context.Background(), "reporte.pdf", contents())
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

// Caso 8 (escenario 3): buffer vacío → ErrNoData, nada se procesa.
func TestExecute_ArchivoVacio(t *testing.T) {
	store := newMemStore()
	uc := newTestUseCase(store, singleRowSheet(), uploadDay)
	_, err := uc.Execute(context.Background(), "inventory.xlsx", nil)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Empty(t, store.products)
}

// Caso 9: la validación es un gate estricto: con una sola celda inválida en la
// fila 2 no se confirma nada, tampoco la fila 1 válida (escenario 5).
func TestExecute_ValidacionRechazaTodaLaHoja(t *testing.T) {
	bad := validRow(2)
	bad.Cells["Opening Inventory"] = "-5"
	sheet := &Sheet{Columns: validColumns, Rows: []Row{validRow(1), bad}}

	store := newMemStore()
	uc := newTestUseCase(store, sheet, uploadDay)
	_, err := uc.Execute(context.Background(), "inventory.xlsx", contents())

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Details, 1)
	assert.Contains(t, vErr.Details[0], "row 2")
	assert.Empty(t, store.products, "ningún producto debe confirmarse")
}
