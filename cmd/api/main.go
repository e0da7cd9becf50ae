package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/Crokily/aibuild-dashboard/internal/application/analytics"
	"github.com/Crokily/aibuild-dashboard/internal/application/auth"
	"github.com/Crokily/aibuild-dashboard/internal/application/ingest"
	"github.com/Crokily/aibuild-dashboard/internal/application/usecase"
	infraai "github.com/Crokily/aibuild-dashboard/internal/infrastructure/ai"
	"github.com/Crokily/aibuild-dashboard/internal/infrastructure/excel"
	infrapdf "github.com/Crokily/aibuild-dashboard/internal/infrastructure/pdf"
	"github.com/Crokily/aibuild-dashboard/internal/infrastructure/postgres"
	httpRouter "github.com/Crokily/aibuild-dashboard/internal/interfaces/http"
	"github.com/Crokily/aibuild-dashboard/pkg/config"
	"github.com/Crokily/aibuild-dashboard/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	recordRepo := postgres.NewDailyRecordRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	uploadUC := ingest.NewUploadUseCase(excel.NewReader(), txRunner)
	productUC := usecase.NewProductUseCase(productRepo, recordRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo)

	anthropicSvc := infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.AnthropicModel)
	aiUC := usecase.NewAIUseCase(anthropicSvc, dashboardUC)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := usecase.NewReportUseCase(productRepo, recordRepo, pdfGenerator)

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Expiration)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    20 * 1024 * 1024, // hojas de cálculo grandes
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "AIBuild Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UploadUC:    uploadUC,
		ProductUC:   productUC,
		AnalyticsUC: analyticsUC,
		DashboardUC: dashboardUC,
		AIUC:        aiUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
