package ports

import (
	"context"

	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
)

// LLMService puerto hacia el proveedor de lenguaje que genera el comentario de
// negocio sobre el resumen del ledger. La capa de aplicación no conoce el
// protocolo HTTP del proveedor.
type LLMService interface {
	GenerateLedgerCommentary(ctx context.Context, summary *dto.DashboardSummaryDTO) (*dto.AICommentaryDTO, error)
}
