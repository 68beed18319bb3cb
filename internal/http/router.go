package http

import (
	"time"

	"github.com/adpilot/dashboard/internal/config"
	"github.com/adpilot/dashboard/internal/http/handlers"
	"github.com/adpilot/dashboard/internal/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	sessionHandler *handlers.SessionHandler,
	campaignHandler *handlers.CampaignHandler,
	viewHandler *handlers.ViewHandler,
	abtestHandler *handlers.ABTestHandler,
	reportHandler *handlers.ReportHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/login", sessionHandler.Login)

	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMinute, time.Minute))

	// Meta (public, feeds the campaign form selects)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/objectives", metaHandler.GetObjectives)
	api.Get("/meta/age-ranges", metaHandler.GetAgeRanges)
	api.Get("/meta/genders", metaHandler.GetGenders)
	api.Get("/meta/channels", metaHandler.GetChannels)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// Session
	protected.Get("/me", sessionHandler.Me)
	protected.Post("/auth/logout", sessionHandler.Logout)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/stats", campaignHandler.GetStats)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)

	// View state
	protected.Get("/view", viewHandler.GetView)
	protected.Post("/view/select", viewHandler.SelectView)
	protected.Post("/view/form/open", viewHandler.OpenForm)
	protected.Post("/view/form/cancel", viewHandler.CancelForm)
	protected.Post("/view/campaigns/:id/view", viewHandler.ViewCampaign)
	protected.Post("/view/campaigns/:id/edit", viewHandler.EditCampaign)
	protected.Post("/view/campaigns/:id/report", viewHandler.ViewReport)

	// A/B testing
	protected.Post("/abtest/variants/:slot", abtestHandler.RegisterVariant)
	protected.Post("/abtest/run", abtestHandler.Run)
	protected.Get("/abtest", abtestHandler.Status)
	protected.Post("/abtest/reset", abtestHandler.Reset)

	// Reports
	protected.Get("/dashboard/stats", reportHandler.GetDashboardStats)
	protected.Get("/reports/:id", reportHandler.GetReport)
	protected.Get("/reports/:id/export", reportHandler.ExportCSV)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
