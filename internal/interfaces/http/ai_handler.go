package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/application/usecase"
)

// AIHandler comentario de negocio generado por IA.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// GetCommentary godoc
// @Summary      Comentario analítico del ledger generado por IA
// @Description  Envía el resumen KPI actual al LLM y devuelve un comentario de
//               negocio con hallazgos puntuales. Solo lectura; nunca modifica datos.
// @Tags         ai
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AICommentaryDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/ai/commentary [post]
func (h *AIHandler) GetCommentary(c *fiber.Ctx) error {
	out, err := h.uc.GenerateCommentary(c.Context())
	if err != nil {
		// Fallas del proveedor LLM (timeout, clave ausente, respuesta malformada).
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "AI_UNAVAILABLE", Message: err.Error()})
	}
	return c.JSON(out)
}
