// Package pdf genera el reporte imprimible del ledger diario de un producto.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del producto + código  │  Fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Apertura | Compras | $ Compra | Ventas |    │
//	│         $ Venta | Cierre                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: unidades compradas / vendidas, valor total         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/Crokily/aibuild-dashboard/internal/application/ports"
	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
)

var _ ports.LedgerPDFGenerator = (*MarotoPDFGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implementa ports.LedgerPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateLedgerPDF genera el PDF del ledger y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateLedgerPDF(
	_ context.Context,
	product *entity.Product,
	records []*entity.DailyRecord,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ledger diario de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(product))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(records) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(records))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto (izq) y fecha de emisión (der).
func headerRow(product *entity.Product) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Código: "+product.Code, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("LEDGER DIARIO DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Emitido: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del ledger.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 2, align.Left),
		h("Apertura", 1, align.Right),
		h("Compras", 1, align.Right),
		h("$ Compra", 2, align.Right),
		h("Ventas", 1, align.Right),
		h("$ Venta", 2, align.Right),
		h("Cierre", 1, align.Right),
		h("", 2, align.Right),
	)
}

// tableRows: una fila por día del ledger.
func tableRows(records []*entity.DailyRecord) []core.Row {
	c := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		}))
	}
	result := make([]core.Row, 0, len(records))
	for _, rec := range records {
		result = append(result, row.New(6).Add(
			col.New(2).Add(text.New(rec.RecordDate.Format("2006-01-02"), props.Text{Size: 8, Top: 1})),
			c(fmt.Sprintf("%d", rec.OpeningInventory), 1),
			c(fmt.Sprintf("%d", rec.ProcurementQty), 1),
			c(rec.ProcurementPrice.StringFixed(2), 2),
			c(fmt.Sprintf("%d", rec.SalesQty), 1),
			c(rec.SalesPrice.StringFixed(2), 2),
			c(fmt.Sprintf("%d", rec.ClosingInventory), 1),
			col.New(2),
		))
	}
	return result
}

// totalsRow: unidades y valores acumulados del ledger completo.
func totalsRow(records []*entity.DailyRecord) core.Row {
	var boughtUnits, soldUnits int64
	boughtValue, soldValue := decimal.Zero, decimal.Zero
	for _, rec := range records {
		boughtUnits += rec.ProcurementQty
		soldUnits += rec.SalesQty
		boughtValue = boughtValue.Add(rec.ProcurementPrice.Mul(decimal.NewFromInt(rec.ProcurementQty)))
		soldValue = soldValue.Add(rec.SalesPrice.Mul(decimal.NewFromInt(rec.SalesQty)))
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Compras: %d unid. por $%s   |   Ventas: %d unid. por $%s",
				boughtUnits, boughtValue.StringFixed(2), soldUnits, soldValue.StringFixed(2),
			), props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2}),
		),
	)
}
