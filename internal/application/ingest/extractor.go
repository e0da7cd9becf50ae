package ingest

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/Crokily/aibuild-dashboard/internal/domain/ledger"
)

// Columnas base (sensibles a mayúsculas, nombres literales de la hoja).
const (
	ColID               = "ID"
	ColProductName      = "Product Name"
	ColOpeningInventory = "Opening Inventory"
)

// Patrones de columnas por día. Insensibles a mayúsculas; N es uno o más dígitos.
// El orden de las columnas en la hoja es irrelevante: el acumulador por día es
// un mapa disperso con clave entera N que luego se ordena ascendente.
var (
	reProcurementQty   = regexp.MustCompile(`(?i)^procurement qty \(day (\d+)\)$`)
	reProcurementPrice = regexp.MustCompile(`(?i)^procurement price \(day (\d+)\)$`)
	reSalesQty         = regexp.MustCompile(`(?i)^sales qty \(day (\d+)\)$`)
	reSalesPrice       = regexp.MustCompile(`(?i)^sales price \(day (\d+)\)$`)
)

// dayMeasure identifica una de las cuatro medidas de un índice de día.
type dayMeasure int

const (
	measureProcurementQty dayMeasure = iota
	measureProcurementPrice
	measureSalesQty
	measureSalesPrice
)

// matchDayColumn clasifica un nombre de columna. ok=false si no es columna de día.
func matchDayColumn(name string) (m dayMeasure, day int, ok bool) {
	for measure, re := range map[dayMeasure]*regexp.Regexp{
		measureProcurementQty:   reProcurementQty,
		measureProcurementPrice: reProcurementPrice,
		measureSalesQty:         reSalesQty,
		measureSalesPrice:       reSalesPrice,
	} {
		if groups := re.FindStringSubmatch(name); groups != nil {
			n, err := strconv.Atoi(groups[1])
			if err != nil {
				return 0, 0, false
			}
			return measure, n, true
		}
	}
	return 0, 0, false
}

// RowExtract identidad del producto más su secuencia ordenada de observaciones por día.
type RowExtract struct {
	Code    string
	Name    string
	Opening int64
	Days    []ledger.DayObservation
}

// ExtractRow convierte una fila ya validada en su RowExtract.
//
// Un índice de día presente en al menos una de las cuatro medidas se materializa
// con las medidas ausentes en cero. La coerción a cero aplica solo a columnas
// arquitectónicamente ausentes: las celdas presentes ya pasaron el gate numérico
// de ValidateSheet, así que aquí el parseo nunca rechaza entrada del usuario.
func ExtractRow(row Row) RowExtract {
	days := make(map[int]*ledger.DayObservation)

	slot := func(n int) *ledger.DayObservation {
		if obs, ok := days[n]; ok {
			return obs
		}
		obs := &ledger.DayObservation{
			Day:              n,
			ProcurementPrice: decimal.Zero,
			SalesPrice:       decimal.Zero,
		}
		days[n] = obs
		return obs
	}

	for name := range row.Cells {
		measure, n, ok := matchDayColumn(name)
		if !ok {
			continue
		}
		cell := row.Cell(name)
		if cell == "" {
			// La celda vacía no materializa la ranura: un día existe solo si
			// al menos una de sus cuatro medidas trae valor.
			continue
		}
		switch measure {
		case measureProcurementQty:
			slot(n).ProcurementQty = coerceQty(cell)
		case measureProcurementPrice:
			slot(n).ProcurementPrice = coercePrice(cell)
		case measureSalesQty:
			slot(n).SalesQty = coerceQty(cell)
		case measureSalesPrice:
			slot(n).SalesPrice = coercePrice(cell)
		}
	}

	indices := make([]int, 0, len(days))
	for n := range days {
		indices = append(indices, n)
	}
	sort.Ints(indices)

	observations := make([]ledger.DayObservation, 0, len(indices))
	for _, n := range indices {
		observations = append(observations, *days[n])
	}

	return RowExtract{
		Code:    row.Cell(ColID),
		Name:    row.Cell(ColProductName),
		Opening: coerceQty(row.Cell(ColOpeningInventory)),
		Days:    observations,
	}
}

// parseNumber intenta interpretar una celda como número decimal.
func parseNumber(cell string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// coerceQty celda → cantidad entera; celda vacía o no numérica → 0.
func coerceQty(cell string) int64 {
	d, ok := parseNumber(cell)
	if !ok {
		return 0
	}
	return d.IntPart()
}

// coercePrice celda → precio con 2 decimales; celda vacía o no numérica → 0.
func coercePrice(cell string) decimal.Decimal {
	d, ok := parseNumber(cell)
	if !ok {
		return decimal.Zero
	}
	return d.Round(2)
}
