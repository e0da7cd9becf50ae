package dto

import "time"

// AICommentaryDTO comentario de negocio generado por el LLM sobre el resumen del ledger.
type AICommentaryDTO struct {
	Commentary  string    `json:"commentary"`
	Highlights  []string  `json:"highlights"`
	GeneratedAt time.Time `json:"generated_at"`
}
