// seed genera un script SQL de datos de demostración (productos + ledger diario)
// a partir de un catálogo CSV exportado en Latin-1 (ISO-8859-1).
//
// Formato del CSV (con encabezado):
//
//	code,name,opening,day,procurement_qty,procurement_price,sales_qty,sales_price
//
// Las filas de un mismo producto se agrupan y su ledger se construye con la misma
// regla de fechas de la ingesta: el día más alto se ancla a la fecha dada por
// -anchor y los anteriores retroceden un día calendario por ranura.
//
// Uso: go run ./cmd/seed [-anchor YYYY-MM-DD] [ruta/demo_products.csv]
// Escribe: internal/infrastructure/postgres/migrations/002_seed_demo.sql
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Crokily/aibuild-dashboard/internal/domain/ledger"
)

type seedProduct struct {
	code    string
	name    string
	opening int64
	days    []ledger.DayObservation
}

func main() {
	anchorFlag := flag.String("anchor", "", "fecha ancla YYYY-MM-DD (default: hoy)")
	flag.Parse()

	csvPath := "demo_products.csv"
	if flag.NArg() > 0 {
		csvPath = flag.Arg(0)
	}

	anchor := time.Now()
	if *anchorFlag != "" {
		var err error
		anchor, err = time.Parse("2006-01-02", *anchorFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Fecha ancla inválida: %v\n", err)
			os.Exit(1)
		}
	}

	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// El catálogo de demo viene de un export legacy en ISO-8859-1.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(rows) < 2 {
		fmt.Fprintln(os.Stderr, "El CSV no tiene filas de datos")
		os.Exit(1)
	}

	// Agrupar por código preservando el orden de aparición.
	byCode := make(map[string]*seedProduct)
	var order []string
	for i, row := range rows[1:] {
		if len(row) < 8 {
			fmt.Fprintf(os.Stderr, "Fila %d: se esperaban 8 columnas\n", i+2)
			os.Exit(1)
		}
		code := strings.TrimSpace(row[0])
		p, ok := byCode[code]
		if !ok {
			p = &seedProduct{
				code:    code,
				name:    strings.TrimSpace(row[1]),
				opening: mustInt(row[2], i+2),
			}
			byCode[code] = p
			order = append(order, code)
		}
		p.days = append(p.days, ledger.DayObservation{
			Day:              int(mustInt(row[3], i+2)),
			ProcurementQty:   mustInt(row[4], i+2),
			ProcurementPrice: mustDecimal(row[5], i+2),
			SalesQty:         mustInt(row[6], i+2),
			SalesPrice:       mustDecimal(row[7], i+2),
		})
	}

	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "migrations", "002_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	fmt.Fprintf(out, "-- Datos de demostración generados desde %s\n", filepath.Base(csvPath))
	fmt.Fprintf(out, "-- Fecha ancla: %s\n\n", anchor.Format("2006-01-02"))

	totalRecords := 0
	for _, code := range order {
		p := byCode[code]
		fmt.Fprintf(out, "INSERT INTO products (code, name) VALUES ('%s', '%s')\n", escapeSQL(p.code), escapeSQL(p.name))
		out.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, updated_at = now();\n")
		fmt.Fprintf(out, "DELETE FROM daily_records WHERE product_id = (SELECT id FROM products WHERE code = '%s');\n", escapeSQL(p.code))

		for _, rec := range ledger.Build(p.days, p.opening, anchor) {
			fmt.Fprintf(out,
				"INSERT INTO daily_records (product_id, record_date, opening_inventory, procurement_qty, procurement_price, sales_qty, sales_price, closing_inventory)\n"+
					"SELECT id, '%s', %d, %d, %s, %d, %s, %d FROM products WHERE code = '%s';\n",
				rec.RecordDate.Format("2006-01-02"),
				rec.OpeningInventory, rec.ProcurementQty, rec.ProcurementPrice.StringFixed(2),
				rec.SalesQty, rec.SalesPrice.StringFixed(2), rec.ClosingInventory,
				escapeSQL(p.code),
			)
			totalRecords++
		}
		out.WriteString("\n")
	}

	fmt.Printf("Generado %s: %d productos, %d registros diarios\n", outPath, len(order), totalRecords)
}

func mustInt(s string, line int) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fila %d: entero inválido %q\n", line, s)
		os.Exit(1)
	}
	return n
}

func mustDecimal(s string, line int) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Fila %d: número inválido %q\n", line, s)
		os.Exit(1)
	}
	return d
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
