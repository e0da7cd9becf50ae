package ingest

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ErrNoData la hoja no contiene filas de datos (o el archivo está vacío).
// El mensaje es visible al usuario, por eso está en el idioma de la hoja.
var ErrNoData = errors.New("Excel file contains no data")

// ErrUnsupportedFile extensión distinta de .xlsx/.xls.
var ErrUnsupportedFile = errors.New("unsupported file type: expected .xlsx or .xls")

// ValidationError rechazo de la hoja completa con la lista exhaustiva de fallas.
// La validación es un gate estricto: o pasa toda la hoja o no pasa nada.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spreadsheet validation failed: %d error(s)", len(e.Details))
}

// quartetColumns nombres canónicos de las cuatro columnas de un índice de día.
func quartetColumns(n int) [4]string {
	return [4]string{
		fmt.Sprintf("Procurement Qty (Day %d)", n),
		fmt.Sprintf("Procurement Price (Day %d)", n),
		fmt.Sprintf("Sales Qty (Day %d)", n),
		fmt.Sprintf("Sales Price (Day %d)", n),
	}
}

// ValidateSheet valida la hoja completa y reporta todos los problemas que puede
// detectar, no solo el primero.
//
// Orden de reglas:
//  1. ≥1 fila de datos (si falla, ErrNoData y nada más se revisa)
//  2. columnas base literales ID / Product Name / Opening Inventory
//  3. al menos un cuarteto de día completo; cuartetos parciales se enumeran
//     nombrando la columna faltante
//  4. por fila: ID y Product Name no vacíos, Opening Inventory y toda celda de
//     día reconocida deben ser números no negativos (celdas vacías de día se
//     tratan como ausentes y coercen a 0 en la extracción)
//
// Los errores estructurales (2 y 3) son terminales: si existen, las reglas por
// fila no se evalúan. Devuelve nil, ErrNoData o *ValidationError.
func ValidateSheet(s *Sheet) error {
	if len(s.Rows) == 0 {
		return ErrNoData
	}

	var details []string

	// Regla 2: columnas base.
	present := make(map[string]bool, len(s.Columns))
	for _, c := range s.Columns {
		present[c] = true
	}
	for _, required := range []string{ColID, ColProductName, ColOpeningInventory} {
		if !present[required] {
			details = append(details, fmt.Sprintf("missing required column %q", required))
		}
	}

	// Regla 3: cuartetos de día. kinds[n] marca cuál de las 4 medidas apareció para el día n.
	kinds := make(map[int]*[4]bool)
	for _, c := range s.Columns {
		measure, n, ok := matchDayColumn(c)
		if !ok {
			continue
		}
		if kinds[n] == nil {
			kinds[n] = &[4]bool{}
		}
		kinds[n][measure] = true
	}

	if len(kinds) == 0 {
		details = append(details, fmt.Sprintf(
			"no day columns found: expected %q, %q, %q and %q for at least one day",
			"Procurement Qty (Day N)", "Procurement Price (Day N)", "Sales Qty (Day N)", "Sales Price (Day N)"))
	} else {
		indices := make([]int, 0, len(kinds))
		for n := range kinds {
			indices = append(indices, n)
		}
		sort.Ints(indices)
		for _, n := range indices {
			canonical := quartetColumns(n)
			for i, seen := range kinds[n] {
				if !seen {
					details = append(details, fmt.Sprintf("incomplete column set for Day %d: missing %q", n, canonical[i]))
				}
			}
		}
	}

	// Errores estructurales: terminales, no se evalúan filas.
	if len(details) > 0 {
		return &ValidationError{Details: details}
	}

	// Regla 4: filas. Se recolectan todas las fallas de todas las filas.
	for _, row := range s.Rows {
		if row.Cell(ColID) == "" {
			details = append(details, fmt.Sprintf("row %d: column %q must not be empty", row.Number, ColID))
		}
		if row.Cell(ColProductName) == "" {
			details = append(details, fmt.Sprintf("row %d: column %q must not be empty", row.Number, ColProductName))
		}
		if !isNonNegativeNumber(row.Cell(ColOpeningInventory)) {
			details = append(details, fmt.Sprintf("row %d: column %q must be a non-negative number", row.Number, ColOpeningInventory))
		}
		for _, c := range s.Columns {
			if _, _, ok := matchDayColumn(c); !ok {
				continue
			}
			cell := row.Cell(c)
			if cell == "" {
				continue // celda ausente: coerce a 0 en la extracción
			}
			if !isNonNegativeNumber(cell) {
				details = append(details, fmt.Sprintf("row %d: column %q must be a non-negative number", row.Number, c))
			}
		}
	}

	if len(details) > 0 {
		return &ValidationError{Details: details}
	}
	return nil
}

// isNonNegativeNumber true si la celda es un número ≥ 0.
func isNonNegativeNumber(cell string) bool {
	d, ok := parseNumber(cell)
	return ok && !d.LessThan(decimal.Zero)
}
