// Package excel decodifica libros .xlsx a la representación neutra de la ingesta.
package excel

import (
	"bytes"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Crokily/aibuild-dashboard/internal/application/ingest"
)

var _ ingest.SheetReader = (*Reader)(nil)

// Reader adaptador de excelize para el puerto ingest.SheetReader.
type Reader struct{}

// NewReader construye el decodificador.
func NewReader() *Reader {
	return &Reader{}
}

// ParseFirstSheet decodifica la primera hoja del libro.
//
// La primera fila es el encabezado y define las columnas; cada fila posterior
// se mapea columna→celda por posición. Filas completamente vacías se descartan
// y no cuentan para la numeración. Un archivo que excelize no puede abrir
// (corrupto, o un .xls binario legado) → ingest.ErrUnsupportedFile.
func (r *Reader) ParseFirstSheet(content []byte) (*ingest.Sheet, error) {
	f, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, ingest.ErrUnsupportedFile
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ingest.ErrNoData
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ingest.ErrNoData
	}
	if len(rows) == 0 {
		return nil, ingest.ErrNoData
	}

	header := rows[0]
	columns := make([]string, 0, len(header))
	for _, c := range header {
		name := strings.TrimSpace(c)
		if name == "" {
			continue
		}
		columns = append(columns, name)
	}

	sheet := &ingest.Sheet{Columns: columns}
	number := 0
	for _, raw := range rows[1:] {
		if isEmptyRow(raw) {
			continue
		}
		number++
		cells := make(map[string]string, len(columns))
		for i, c := range header {
			name := strings.TrimSpace(c)
			if name == "" {
				continue
			}
			if i < len(raw) {
				cells[name] = raw[i]
			} else {
				cells[name] = ""
			}
		}
		sheet.Rows = append(sheet.Rows, ingest.Row{Number: number, Cells: cells})
	}
	return sheet, nil
}

func isEmptyRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
