package usecase

import (
	"context"
	"fmt"
	"time"

	appanalytics "github.com/Crokily/aibuild-dashboard/internal/application/analytics"
	"github.com/Crokily/aibuild-dashboard/internal/application/dto"
	"github.com/Crokily/aibuild-dashboard/internal/application/ports"
)

// AIUseCase orquesta el comentario analítico asistido por IA: arma el resumen
// KPI del ledger y se lo entrega al LLM. Aplica un timeout de 10 segundos en
// cada llamada para que las latencias externas no bloqueen el servidor.
type AIUseCase struct {
	llm       ports.LLMService
	dashboard *appanalytics.DashboardUseCase
}

// NewAIUseCase construye el caso de uso inyectando el puerto LLMService.
func NewAIUseCase(llm ports.LLMService, dashboard *appanalytics.DashboardUseCase) *AIUseCase {
	return &AIUseCase{llm: llm, dashboard: dashboard}
}

// GenerateCommentary produce el comentario de negocio sobre el estado actual
// del ledger. Nunca participa en la ingesta: es una superficie de solo lectura.
func (uc *AIUseCase) GenerateCommentary(ctx context.Context) (*dto.AICommentaryDTO, error) {
	summary, err := uc.dashboard.GetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen para comentario IA: %w", err)
	}

	// Timeout de 10 s: las llamadas a LLMs pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	out, err := uc.llm.GenerateLedgerCommentary(ctx, summary)
	if err != nil {
		return nil, fmt.Errorf("comentario IA: %w", err)
	}
	return out, nil
}
