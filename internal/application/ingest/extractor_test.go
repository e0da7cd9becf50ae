package ingest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataRow(cells map[string]string) Row {
	return Row{Number: 1, Cells: cells}
}

// Caso 1: fila completa de un día → identidad + una observación con las cuatro medidas.
func TestExtractRow_FilaCompleta(t *testing.T) {
	row := dataRow(map[string]string{
		"ID":                        " P001 ",
		"Product Name":              "iPhone 15",
		"Opening Inventory":         "100",
		"Procurement Qty (Day 1)":   "50",
		"Procurement Price (Day 1)": "5000",
		"Sales Qty (Day 1)":         "30",
		"Sales Price (Day 1)":       "6500",
	})

	out := ExtractRow(row)
	assert.Equal(t, "P001", out.Code, "el código debe venir sin espacios alrededor")
	assert.Equal(t, "iPhone 15", out.Name)
	assert.Equal(t, int64(100), out.Opening)
	require.Len(t, out.Days, 1)
	assert.Equal(t, int64(50), out.Days[0].ProcurementQty)
	assert.True(t, decimal.NewFromInt(5000).Equal(out.Days[0].ProcurementPrice))
	assert.Equal(t, int64(30), out.Days[0].SalesQty)
	assert.True(t, decimal.NewFromInt(6500).Equal(out.Days[0].SalesPrice))
}

// Caso 2: los índices de día se ordenan ascendente aunque la hoja los traiga desordenados.
func TestExtractRow_OrdenaIndices(t *testing.T) {
	row := dataRow(map[string]string{
		"ID":                      "P001",
		"Product Name":            "Teclado",
		"Opening Inventory":       "10",
		"Sales Qty (Day 10)":      "3",
		"Procurement Qty (Day 2)": "5",
		"Sales Qty (Day 1)":       "1",
	})

	out := ExtractRow(row)
	require.Len(t, out.Days, 3)
	assert.Equal(t, []int{1, 2, 10}, []int{out.Days[0].Day, out.Days[1].Day, out.Days[2].Day})
}

// Caso 3: un índice presente en una sola medida se materializa con las otras tres en cero.
func TestExtractRow_MedidasAusentesEnCero(t *testing.T) {
	row := dataRow(map[string]string{
		"ID":                "P002",
		"Product Name":      "Mouse",
		"Opening Inventory": "5",
		"Sales Qty (Day 4)": "2",
	})

	out := ExtractRow(row)
	require.Len(t, out.Days, 1)
	d := out.Days[0]
	assert.Equal(t, 4, d.Day)
	assert.Equal(t, int64(0), d.ProcurementQty)
	assert.True(t, d.ProcurementPrice.IsZero())
	assert.Equal(t, int64(2), d.SalesQty)
	assert.True(t, d.SalesPrice.IsZero())
}

// Caso 4: los patrones de día son insensibles a mayúsculas.
func TestExtractRow_PatronesInsensiblesAMayusculas(t *testing.T) {
	row := dataRow(map[string]string{
		"ID":                        "P003",
		"Product Name":              "Monitor",
		"Opening Inventory":         "0",
		"PROCUREMENT QTY (DAY 1)":   "7",
		"procurement price (day 1)": "120.5",
	})

	out := ExtractRow(row)
	require.Len(t, out.Days, 1)
	assert.Equal(t, int64(7), out.Days[0].ProcurementQty)
	assert.True(t, decimal.RequireFromString("120.50").Equal(out.Days[0].ProcurementPrice))
}

// Caso 5: columnas extra desconocidas se ignoran; sin columnas de día la secuencia queda vacía.
func TestExtractRow_ColumnasDesconocidas(t *testing.T) {
	row := dataRow(map[string]string{
		"ID":                "P004",
		"Product Name":      "Cable",
		"Opening Inventory": "3",
		"Notas":             "algo",
		"Sales Qty (Day)":   "9", // sin número: no es columna de día
	})

	out := ExtractRow(row)
	assert.Empty(t, out.Days)
}

// Caso 6: celdas vacías de columnas de día presentes coercen a 0 (ausencia arquitectónica).
func TestExtractRow_CeldaVaciaCoerceACero(t *testing.T) {
	row := dataRow(map[string]string{
		"ID":                        "P005",
		"Product Name":              "Funda",
		"Opening Inventory":         "8",
		"Procurement Qty (Day 1)":   "4",
		"Procurement Price (Day 1)": "",
		"Sales Qty (Day 1)":         "",
		"Sales Price (Day 1)":       "",
	})

	out := ExtractRow(row)
	require.Len(t, out.Days, 1)
	assert.Equal(t, int64(4), out.Days[0].ProcurementQty)
	assert.Equal(t, int64(0), out.Days[0].SalesQty)
	assert.True(t, out.Days[0].SalesPrice.IsZero())
}
