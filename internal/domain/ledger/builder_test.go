package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var anchor = time.Date(2025, 3, 15, 14, 37, 22, 0, time.UTC) // con hora: Build debe normalizar

func obs(day int, procQty, salesQty int64) DayObservation {
	return DayObservation{
		Day:              day,
		ProcurementQty:   procQty,
		ProcurementPrice: decimal.NewFromInt(100),
		SalesQty:         salesQty,
		SalesPrice:       decimal.NewFromInt(150),
	}
}

// Caso 1: un solo día → fecha ancla a medianoche, closing = opening + compras - ventas.
func TestBuild_UnSoloDia(t *testing.T) {
	records := Build([]DayObservation{obs(1, 50, 30)}, 100, anchor)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), r.RecordDate,
		"la última ranura debe recibir la fecha ancla normalizada a medianoche")
	assert.Equal(t, int64(100), r.OpeningInventory)
	assert.Equal(t, int64(120), r.ClosingInventory, "100 + 50 - 30 = 120")
}

// Caso 2: el balance se encadena día a día (opening[k+1] == closing[k]).
func TestBuild_BalanceEncadenado(t *testing.T) {
	records := Build([]DayObservation{
		obs(1, 50, 30),
		obs(2, 0, 40),
		obs(3, 10, 5),
	}, 100, anchor)
	require.Len(t, records, 3)

	assert.Equal(t, int64(100), records[0].OpeningInventory, "la ranura 0 usa el opening declarado")
	for k := 1; k < len(records); k++ {
		assert.Equal(t, records[k-1].ClosingInventory, records[k].OpeningInventory,
			"opening del día %d debe ser el closing del día %d", k+1, k)
	}
	for _, r := range records {
		assert.Equal(t, r.OpeningInventory+r.ProcurementQty-r.SalesQty, r.ClosingInventory)
	}
	assert.Equal(t, int64(85), records[2].ClosingInventory, "100+50-30=120, 120-40=80, 80+10-5=85")
}

// Caso 3: fechas contiguas ascendentes terminando en el ancla, sin huecos ni duplicados.
func TestBuild_FechasContiguas(t *testing.T) {
	records := Build([]DayObservation{obs(1, 1, 0), obs(2, 1, 0), obs(3, 1, 0), obs(4, 1, 0)}, 0, anchor)
	require.Len(t, records, 4)

	assert.Equal(t, time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), records[0].RecordDate,
		"la ranura 0 debe mapear a ancla - (n-1) días")
	for k := 1; k < len(records); k++ {
		assert.Equal(t, records[k-1].RecordDate.AddDate(0, 0, 1), records[k].RecordDate)
	}
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), records[3].RecordDate)
}

// Caso 4: las etiquetas "Day N" con huecos (Day 1, Day 3) producen igualmente
// dos fechas calendario consecutivas; la etiqueta es ordinal, no absoluta.
func TestBuild_EtiquetasConHuecos(t *testing.T) {
	records := Build([]DayObservation{obs(1, 5, 0), obs(3, 0, 2)}, 10, anchor)
	require.Len(t, records, 2)

	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), records[0].RecordDate)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), records[1].RecordDate)
	assert.Equal(t, records[0].ClosingInventory, records[1].OpeningInventory)
}

// Caso 5: sobreventa → closing negativo permitido, y el encadenamiento continúa desde el negativo.
func TestBuild_ClosingNegativo(t *testing.T) {
	records := Build([]DayObservation{obs(1, 0, 30), obs(2, 50, 0)}, 10, anchor)
	require.Len(t, records, 2)

	assert.Equal(t, int64(-20), records[0].ClosingInventory, "10 - 30 = -20, sin piso en cero")
	assert.Equal(t, int64(-20), records[1].OpeningInventory)
	assert.Equal(t, int64(30), records[1].ClosingInventory)
}

// Caso 6: sin observaciones no se genera ningún registro.
func TestBuild_SinObservaciones(t *testing.T) {
	assert.Nil(t, Build(nil, 100, anchor))
	assert.Nil(t, Build([]DayObservation{}, 100, anchor))
}
