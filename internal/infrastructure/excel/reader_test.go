package excel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Crokily/aibuild-dashboard/internal/application/ingest"
)

// buildWorkbook arma un .xlsx en memoria con las filas dadas en la primera hoja.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReader_ParseFirstSheet(t *testing.T) {
	r := NewReader()

	// Caso 1: hoja con encabezado y dos filas de datos.
	content := buildWorkbook(t, [][]interface{}{
		{"ID", "Product Name", "Opening Inventory", "Procurement Qty (Day 1)"},
		{"P001", "iPhone 15", 100, 50},
		{"P002", "Galaxy S24", 80, 20},
	})
	sheet, err := r.ParseFirstSheet(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Product Name", "Opening Inventory", "Procurement Qty (Day 1)"}, sheet.Columns)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, 1, sheet.Rows[0].Number)
	assert.Equal(t, "P001", sheet.Rows[0].Cell("ID"))
	assert.Equal(t, "100", sheet.Rows[0].Cell("Opening Inventory"))
	assert.Equal(t, 2, sheet.Rows[1].Number)
	assert.Equal(t, "Galaxy S24", sheet.Rows[1].Cell("Product Name"))

	// Caso 2: filas cortas se rellenan con celdas vacías.
	content = buildWorkbook(t, [][]interface{}{
		{"ID", "Product Name", "Opening Inventory"},
		{"P001"},
	})
	sheet, err = r.ParseFirstSheet(content)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 1)
	assert.Equal(t, "P001", sheet.Rows[0].Cell("ID"))
	assert.Equal(t, "", sheet.Rows[0].Cell("Product Name"))
	assert.Equal(t, "", sheet.Rows[0].Cell("Opening Inventory"))

	// Caso 3: filas completamente vacías se descartan y no cuentan en la numeración.
	content = buildWorkbook(t, [][]interface{}{
		{"ID", "Product Name", "Opening Inventory"},
		{"P001", "iPhone 15", 100},
		{"", "", ""},
		{"P002", "Galaxy S24", 80},
	})
	sheet, err = r.ParseFirstSheet(content)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, 2, sheet.Rows[1].Number)
	assert.Equal(t, "P002", sheet.Rows[1].Cell("ID"))

	// Caso 4: encabezados con espacios alrededor se normalizan.
	content = buildWorkbook(t, [][]interface{}{
		{" ID ", "Product Name "},
		{"P001", "iPhone 15"},
	})
	sheet, err = r.ParseFirstSheet(content)
	require.NoError(t, err)
	assert.Equal(t, []string{"ID", "Product Name"}, sheet.Columns)
	assert.Equal(t, "P001", sheet.Rows[0].Cell("ID"))

	// Caso 5: hoja sin filas → ErrNoData.
	f := excelize.NewFile()
	buf, werr := f.WriteToBuffer()
	require.NoError(t, werr)
	require.NoError(t, f.Close())
	_, err = r.ParseFirstSheet(buf.Bytes())
	assert.ErrorIs(t, err, ingest.ErrNoData)

	// Caso 6: bytes que no son un .xlsx → ErrUnsupportedFile.
	_, err = r.ParseFirstSheet([]byte("definitivamente no es un zip"))
	assert.ErrorIs(t, err, ingest.ErrUnsupportedFile)
}
