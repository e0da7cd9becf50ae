package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/application/usecase"
	"github.com/Crokily/aibuild-dashboard/internal/domain"
)

// AnalyticsHandler maneja los endpoints de series y rankings.
type AnalyticsHandler struct {
	uc *usecase.AnalyticsUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// GetDailySeries godoc
// @Summary      Serie diaria agregada del ledger
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio del período (YYYY-MM-DD). Default: hace 30 días."
// @Param        end    query  string  false  "Fin del período (YYYY-MM-DD). Default: hoy."
// @Success      200  {object}  dto.DailySeriesResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/daily [get]
func (h *AnalyticsHandler) GetDailySeries(c *fiber.Ctx) error {
	out, err := h.uc.GetDailySeries(c.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "rango de fechas inválido (formato YYYY-MM-DD, start ≤ end)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetTopProducts godoc
// @Summary      Ranking de productos por ingreso de ventas
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Param        limit  query  int     false  "Máx. productos (default 5, max 50)"
// @Success      200  {object}  dto.TopProductsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/analytics/top [get]
func (h *AnalyticsHandler) GetTopProducts(c *fiber.Ctx) error {
	out, err := h.uc.GetTopProducts(c.Context(), c.Query("start"), c.Query("end"), c.QueryInt("limit"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_RANGE", Message: "rango de fechas inválido (formato YYYY-MM-DD, start ≤ end)"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
