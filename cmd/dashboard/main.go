package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adpilot/dashboard/internal/analysis"
	"github.com/adpilot/dashboard/internal/config"
	"github.com/adpilot/dashboard/internal/events"
	apphttp "github.com/adpilot/dashboard/internal/http"
	"github.com/adpilot/dashboard/internal/http/handlers"
	"github.com/adpilot/dashboard/internal/services"
	"github.com/adpilot/dashboard/internal/storage"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Storage: fall back to memory when the local file is unusable.
	// The dashboard keeps working for the session, it just loses durability.
	var store storage.Store
	store, err := storage.OpenSQLite(ctx, cfg.StoragePath, log)
	if err != nil {
		log.Warn("storage unavailable, running in memory", zap.Error(err))
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	// Events
	bus := events.NewBus(log)

	// Services
	campaignService := services.NewCampaignService(store, analysis.NewRandomScorer(), bus, log)
	campaignService.Hydrate(ctx)
	sessionService := services.NewSessionService(store, cfg, bus, log)
	sessionService.Hydrate(ctx)
	viewState := services.NewViewStateService(campaignService)
	abtestService := services.NewABTestService(cfg.AnalysisDelay, bus, log)
	reportService := services.NewReportService(campaignService, log)

	// Handlers
	sessionHandler := handlers.NewSessionHandler(sessionService, viewState, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, viewState, log)
	viewHandler := handlers.NewViewHandler(viewState, log)
	abtestHandler := handlers.NewABTestHandler(abtestService, log)
	reportHandler := handlers.NewReportHandler(reportService, log)
	wsHub := handlers.NewWSHub(cfg, bus, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, sessionHandler, campaignHandler, viewHandler, abtestHandler, reportHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf("%s:%s", cfg.ListenHost, cfg.APIPort)
	log.Info("starting dashboard server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
