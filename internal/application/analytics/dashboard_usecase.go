// Package analytics contiene el caso de uso del resumen KPI del dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

const (
	dashboardTopProducts = 5  // productos en el widget del dashboard
	dashboardRangeDays   = 30 // ventana del ranking
	dateLayout           = "2006-01-02"
)

// DashboardUseCase genera las tarjetas KPI a partir del ledger confirmado.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede a las
// tablas directamente; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Dos llamadas en paralelo:
//  1. GetOverview           → KPIs globales del ledger
//  2. GetTopProducts(30 d)  → TopProducts
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	rangeEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	rangeStart := rangeEnd.AddDate(0, 0, -(dashboardRangeDays - 1))

	type overviewResult struct {
		overview *repository.LedgerOverviewResult
		err      error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}

	overviewCh := make(chan overviewResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		o, err := uc.analyticsRepo.GetOverview(ctx)
		overviewCh <- overviewResult{o, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopProducts(ctx, rangeStart, rangeEnd, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()

	overview := <-overviewCh
	top := <-topCh
	if overview.err != nil {
		return nil, overview.err
	}
	if top.err != nil {
		return nil, top.err
	}

	summary := &dto.DashboardSummaryDTO{
		ProductCount:          overview.overview.ProductCount,
		RecordCount:           overview.overview.RecordCount,
		CurrentUnits:          overview.overview.CurrentUnits,
		OversoldProductDays:   overview.overview.OversoldProductDays,
		TotalProcurementValue: overview.overview.TotalProcurementValue,
		TotalSalesValue:       overview.overview.TotalSalesValue,
		TopProducts:           make([]dto.TopProductDTO, 0, len(top.rows)),
	}
	if overview.overview.FirstDate != nil {
		summary.FirstDate = overview.overview.FirstDate.Format(dateLayout)
	}
	if overview.overview.LastDate != nil {
		summary.LastDate = overview.overview.LastDate.Format(dateLayout)
	}
	for _, r := range top.rows {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:  r.ProductID,
			Code:       r.Code,
			Name:       r.Name,
			UnitsSold:  r.UnitsSold,
			SalesValue: r.SalesValue,
		})
	}
	return summary, nil
}
