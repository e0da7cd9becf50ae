package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// columnas de una hoja bien formada con un solo día.
var validColumns = []string{
	"ID", "Product Name", "Opening Inventory",
	"Procurement Qty (Day 1)", "Procurement Price (Day 1)",
	"Sales Qty (Day 1)", "Sales Price (Day 1)",
}

func validRow(number int) Row {
	return Row{Number: number, Cells: map[string]string{
		"ID":                        "P001",
		"Product Name":              "iPhone 15",
		"Opening Inventory":         "100",
		"Procurement Qty (Day 1)":   "50",
		"Procurement Price (Day 1)": "5000",
		"Sales Qty (Day 1)":         "30",
		"Sales Price (Day 1)":       "6500",
	}}
}

func requireValidation(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok, "debe ser *ValidationError, fue: %v", err)
	return vErr
}

// Caso 1: hoja bien formada → sin error.
func TestValidateSheet_HojaValida(t *testing.T) {
	s := &Sheet{Columns: validColumns, Rows: []Row{validRow(1)}}
	assert.NoError(t, ValidateSheet(s))
}

// Caso 2: sin filas de datos → ErrNoData y ninguna otra regla se evalúa.
func TestValidateSheet_SinFilas(t *testing.T) {
	s := &Sheet{Columns: validColumns}
	assert.ErrorIs(t, ValidateSheet(s), ErrNoData)
}

// Caso 3: faltan columnas base → se enumeran todas las faltantes por nombre.
func TestValidateSheet_ColumnasBaseFaltantes(t *testing.T) {
	s := &Sheet{
		Columns: []string{"ID", "Procurement Qty (Day 1)", "Procurement Price (Day 1)", "Sales Qty (Day 1)", "Sales Price (Day 1)"},
		Rows:    []Row{validRow(1)},
	}
	vErr := requireValidation(t, ValidateSheet(s))
	require.Len(t, vErr.Details, 2)
	assert.Contains(t, vErr.Details[0], `"Product Name"`)
	assert.Contains(t, vErr.Details[1], `"Opening Inventory"`)
}

// Caso 4: las columnas base son sensibles a mayúsculas ("id" no es "ID").
func TestValidateSheet_BaseSensibleAMayusculas(t *testing.T) {
	cols := append([]string{"id", "Product Name", "Opening Inventory"}, validColumns[3:]...)
	s := &Sheet{Columns: cols, Rows: []Row{validRow(1)}}
	vErr := requireValidation(t, ValidateSheet(s))
	assert.Contains(t, vErr.Details[0], `"ID"`)
}

// Caso 5: cuarteto incompleto → error estructural nombrando la columna faltante (escenario 6 del contrato).
func TestValidateSheet_CuartetoIncompleto(t *testing.T) {
	s := &Sheet{
		Columns: []string{"ID", "Product Name", "Opening Inventory", "Procurement Qty (Day 1)", "Sales Qty (Day 1)"},
		Rows:    []Row{validRow(1)},
	}
	vErr := requireValidation(t, ValidateSheet(s))
	require.Len(t, vErr.Details, 2)
	assert.Contains(t, vErr.Details[0], `missing "Procurement Price (Day 1)"`)
	assert.Contains(t, vErr.Details[1], `missing "Sales Price (Day 1)"`)
}

// Caso 6: sin ninguna columna de día → error estructural explícito.
func TestValidateSheet_SinColumnasDeDia(t *testing.T) {
	s := &Sheet{
		Columns: []string{"ID", "Product Name", "Opening Inventory"},
		Rows:    []Row{validRow(1)},
	}
	vErr := requireValidation(t, ValidateSheet(s))
	require.Len(t, vErr.Details, 1)
	assert.Contains(t, vErr.Details[0], "no day columns found")
}

// Caso 7: los errores estructurales son terminales; los de fila no se evalúan.
func TestValidateSheet_EstructuralesTerminales(t *testing.T) {
	bad := validRow(1)
	bad.Cells["ID"] = "" // falla de fila que NO debe reportarse
	s := &Sheet{
		Columns: []string{"ID", "Product Name", "Opening Inventory"},
		Rows:    []Row{bad},
	}
	vErr := requireValidation(t, ValidateSheet(s))
	for _, d := range vErr.Details {
		assert.NotContains(t, d, "row 1", "con errores estructurales no deben evaluarse las filas")
	}
}

// Caso 8: fallas de fila en filas distintas → todas reportadas con su número 1-based
// (ley de reporte exhaustivo).
func TestValidateSheet_ReportaTodasLasFilas(t *testing.T) {
	r1 := validRow(1)
	r1.Cells["ID"] = "   " // vacío tras trim
	r2 := validRow(2)
	r2.Cells["Opening Inventory"] = "-5"
	r3 := validRow(3)
	r3.Cells["Sales Qty (Day 1)"] = "abc"

	s := &Sheet{Columns: validColumns, Rows: []Row{r1, r2, r3}}
	vErr := requireValidation(t, ValidateSheet(s))
	require.Len(t, vErr.Details, 3)
	assert.Contains(t, vErr.Details[0], `row 1: column "ID"`)
	assert.Contains(t, vErr.Details[1], `row 2: column "Opening Inventory" must be a non-negative number`)
	assert.Contains(t, vErr.Details[2], `row 3: column "Sales Qty (Day 1)" must be a non-negative number`)
}

// Caso 9: celda de día vacía no es error (coerce a 0), pero un negativo sí lo es.
func TestValidateSheet_CeldaVaciaVsNegativa(t *testing.T) {
	ok := validRow(1)
	ok.Cells["Sales Price (Day 1)"] = ""
	s := &Sheet{Columns: validColumns, Rows: []Row{ok}}
	assert.NoError(t, ValidateSheet(s))

	bad := validRow(1)
	bad.Cells["Sales Price (Day 1)"] = "-1"
	s = &Sheet{Columns: validColumns, Rows: []Row{bad}}
	vErr := requireValidation(t, ValidateSheet(s))
	require.Len(t, vErr.Details, 1)
	assert.Contains(t, vErr.Details[0], `"Sales Price (Day 1)"`)
}

// Caso 10: Opening Inventory vacío sí es error: es la semilla del balance.
func TestValidateSheet_OpeningVacio(t *testing.T) {
	bad := validRow(1)
	bad.Cells["Opening Inventory"] = ""
	s := &Sheet{Columns: validColumns, Rows: []Row{bad}}
	vErr := requireValidation(t, ValidateSheet(s))
	require.Len(t, vErr.Details, 1)
	assert.Contains(t, vErr.Details[0], `"Opening Inventory"`)
}
