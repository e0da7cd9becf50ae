package usecase

import (
	"context"
	"time"

	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/domain"
	"github.com/Crokily/aibuild-dashboard/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// AnalyticsUseCase series y rankings para los charts del dashboard.
// Consultas de solo lectura sobre el ledger ya confirmado; nunca toca la ingesta.
type AnalyticsUseCase struct {
	repo repository.AnalyticsRepository
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(repo repository.AnalyticsRepository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// GetDailySeries agrega el ledger por día calendario en [start, end].
// Las fechas llegan como YYYY-MM-DD; rango inválido → domain.ErrInvalidInput.
func (uc *AnalyticsUseCase) GetDailySeries(ctx context.Context, start, end string) (*dto.DailySeriesResponse, error) {
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}

	rows, err := uc.repo.GetDailyAggregates(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	items := make([]dto.DailyAggregateDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.DailyAggregateDTO{
			Date:             r.Date.Format(dateLayout),
			ProcurementQty:   r.ProcurementQty,
			ProcurementValue: r.ProcurementValue,
			SalesQty:         r.SalesQty,
			SalesValue:       r.SalesValue,
			ClosingUnits:     r.ClosingUnits,
		})
	}
	return &dto.DailySeriesResponse{
		Start: startDate.Format(dateLayout),
		End:   endDate.Format(dateLayout),
		Items: items,
	}, nil
}

// GetTopProducts ranking por ingreso de ventas en [start, end].
func (uc *AnalyticsUseCase) GetTopProducts(ctx context.Context, start, end string, limit int) (*dto.TopProductsResponse, error) {
	startDate, endDate, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 5
	}
	if limit > 50 {
		limit = 50
	}

	rows, err := uc.repo.GetTopProducts(ctx, startDate, endDate, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TopProductDTO, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TopProductDTO{
			ProductID:  r.ProductID,
			Code:       r.Code,
			Name:       r.Name,
			UnitsSold:  r.UnitsSold,
			SalesValue: r.SalesValue,
		})
	}
	return &dto.TopProductsResponse{Items: items}, nil
}

// parseRange interpreta start/end (YYYY-MM-DD). Vacíos → últimos 30 días.
func parseRange(start, end string) (time.Time, time.Time, error) {
	now := time.Now()
	endDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startDate := endDate.AddDate(0, 0, -29)

	var err error
	if start != "" {
		if startDate, err = time.Parse(dateLayout, start); err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if end != "" {
		if endDate, err = time.Parse(dateLayout, end); err != nil {
			return time.Time{}, time.Time{}, domain.ErrInvalidInput
		}
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return startDate, endDate, nil
}
