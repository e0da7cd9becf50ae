package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/Crokily/aibuild-dashboard/internal/application/analytics"
	"github.com/Crokily/aibuild-dashboard/internal/application/auth"
	"github.com/Crokily/aibuild-dashboard/internal/application/ingest"
	"github.com/Crokily/aibuild-dashboard/internal/application/usecase"
	"github.com/Crokily/aibuild-dashboard/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UploadUC    *ingest.UploadUseCase
	ProductUC   *usecase.ProductUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	DashboardUC *appanalytics.DashboardUseCase
	AIUC        *usecase.AIUseCase
	ReportUC    *usecase.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Upload (protegido; solo admin puede reemplazar ledgers)
	uploadHandler := NewUploadHandler(deps.UploadUC)
	protected.Post("/inventory/upload", RequireRole(entity.RoleAdmin), uploadHandler.Upload)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id/records", productHandler.GetLedger)

	// Reports (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	products.Get("/:id/report", reportHandler.GetProductLedgerPDF)

	// Analytics (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/daily", analyticsHandler.GetDailySeries)
	analyticsGroup.Get("/top", analyticsHandler.GetTopProducts)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// AI commentary (protegido)
	aiHandler := NewAIHandler(deps.AIUC)
	protected.Post("/ai/commentary", aiHandler.GetCommentary)
}
