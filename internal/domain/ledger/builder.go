// Package ledger contiene la lógica pura de construcción del ledger diario:
// asignación de fechas por día-ranura y encadenamiento del balance de inventario.
// No tiene dependencias de infraestructura; el persistidor resuelve los IDs después.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
)

// DayObservation es una ranura de día extraída de la hoja: las cuatro medidas
// de un índice "Day N". Day conserva la etiqueta original solo para ordenar;
// su valor absoluto no participa en la asignación de fechas.
type DayObservation struct {
	Day              int
	ProcurementQty   int64
	ProcurementPrice decimal.Decimal
	SalesQty         int64
	SalesPrice       decimal.Decimal
}

// Build convierte la secuencia ordenada de observaciones de un producto en sus
// DailyRecord, con opening como inventario inicial declarado en la hoja y anchor
// como fecha de la carga.
//
// Asignación de fechas: la última ranura recibe anchor (normalizado a medianoche)
// y cada ranura anterior retrocede un día calendario; las etiquetas "Day N" son
// puramente ordinales, así que una secuencia con huecos (Day 1, Day 3) produce
// igualmente fechas consecutivas.
//
// Balance: opening de la ranura 0 es el declarado; para k>0 el opening es el
// closing de k-1; closing = opening + compras - ventas, sin piso en cero
// (un closing negativo señala sobreventa y se conserva tal cual).
func Build(observations []DayObservation, opening int64, anchor time.Time) []entity.DailyRecord {
	n := len(observations)
	if n == 0 {
		return nil
	}

	first := midnight(anchor).AddDate(0, 0, -(n - 1))

	records := make([]entity.DailyRecord, 0, n)
	running := opening
	for k, obs := range observations {
		closing := running + obs.ProcurementQty - obs.SalesQty
		records = append(records, entity.DailyRecord{
			RecordDate:       first.AddDate(0, 0, k),
			OpeningInventory: running,
			ProcurementQty:   obs.ProcurementQty,
			ProcurementPrice: obs.ProcurementPrice,
			SalesQty:         obs.SalesQty,
			SalesPrice:       obs.SalesPrice,
			ClosingInventory: closing,
		})
		running = closing
	}
	return records
}

// midnight normaliza un instante a las 00:00:00 de su día calendario.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
