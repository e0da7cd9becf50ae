// Package ingest implementa la ingesta de hojas de cálculo: validación de la
// hoja, extracción de filas con columnas dinámicas "Day N", construcción del
// ledger y reemplazo transaccional en la base.
package ingest

import "strings"

// Row una fila de datos de la hoja, como mapa columna→celda (valores crudos en
// texto, tal como los entrega el decodificador de Excel). Number es 1-based
// contando solo filas de datos (la fila de encabezado no cuenta).
type Row struct {
	Number int
	Cells  map[string]string
}

// Cell devuelve el valor de la columna con ese nombre exacto, sin espacios
// alrededor. Columna ausente o vacía → cadena vacía.
func (r Row) Cell(name string) string {
	return strings.TrimSpace(r.Cells[name])
}

// Sheet la primera hoja del libro ya decodificada. Columns es el conjunto de
// columnas declarado por la fila de encabezado; define el esquema de toda la hoja.
type Sheet struct {
	Columns []string
	Rows    []Row
}
