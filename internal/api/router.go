package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/afyakuu/platform-api/internal/api/handler"
	"github.com/afyakuu/platform-api/internal/api/middleware"
	"github.com/afyakuu/platform-api/internal/core/domain"
	"github.com/afyakuu/platform-api/internal/core/ports"
	"github.com/afyakuu/platform-api/internal/core/service"
	"github.com/afyakuu/platform-api/internal/infrastructure/queue"
	"github.com/afyakuu/platform-api/internal/session"
)

// Dependencies carries everything the router needs to assemble the service.
type Dependencies struct {
	Mongo      *mongo.Database
	Redis      *redis.Client
	Predictor  ports.PredictionClient
	Auth       ports.AuthService
	Sessions   ports.SessionStore
	Codec      *session.TokenCodec
	Cookies    *session.CookieWriter
	Assess     *service.AssessmentService
	Inventory  *service.InventoryService
	Feedback   *service.FeedbackService
	Resources  *service.ResourceService
	TestCosts  *service.TestCostService
	Cancer     *service.CancerService
	Reminders  ports.ReminderService
	Dispatcher *queue.Dispatcher
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// Layering: the edge middleware makes the coarse cookie-only decision on
// every request; the guard behind it consults the live session store and is
// the source of truth for what actually renders.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("afyakuu"))
	e.Use(middleware.Edge(deps.Codec))

	guard := middleware.NewGuard(deps.Codec, deps.Sessions)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth, deps.Cookies, deps.Codec)
	entryHandler := handler.NewEntryHandler()
	assessmentHandler := handler.NewAssessmentHandler(deps.Assess)
	inventoryHandler := handler.NewInventoryHandler(deps.Inventory)
	feedbackHandler := handler.NewFeedbackHandler(deps.Feedback)
	smsHandler := handler.NewSMSHandler(deps.Reminders, deps.Dispatcher)
	dashboardHandler := handler.NewDashboardHandler(deps.Assess, deps.Inventory, deps.Feedback)
	resourceHandler := handler.NewResourceHandler(deps.Resources)
	testCostHandler := handler.NewTestCostHandler(deps.TestCosts)
	cancerHandler := handler.NewCancerHandler(deps.Cancer)

	// --- Public pages ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"service": "afya-kuu-platform"})
	})
	e.GET("/assessment", entryHandler.Show)
	e.GET("/how-it-works", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"page": "how-it-works"})
	})

	// --- Auth (public) ---
	e.POST("/api/auth/signup", authHandler.Signup)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/logout", authHandler.Logout)

	// --- Dashboard pages: redirect semantics on failure ---
	pages := e.Group("/dashboard", guard.RequireSession(false))
	pages.GET("/doctor", dashboardHandler.Doctor, guard.RequireRole(domain.RoleDoctor, false))
	pages.GET("/admin", dashboardHandler.Admin, guard.RequireRole(domain.RoleAdmin, false))

	// --- API: blocked-access JSON on failure ---
	apiAuth := e.Group("/api", guard.RequireSession(true))
	apiAuth.GET("/auth/me", authHandler.Me)

	doctorAPI := apiAuth.Group("", guard.RequireRole(domain.RoleDoctor, true))
	doctorAPI.POST("/assessments", assessmentHandler.Assess)
	doctorAPI.GET("/patients", assessmentHandler.ListPatients)
	doctorAPI.GET("/patients/:patient_id", assessmentHandler.GetPatient)
	doctorAPI.PUT("/patients/:patient_id/follow-up", assessmentHandler.UpdateFollowUp)
	doctorAPI.POST("/sms/send", smsHandler.Send)
	doctorAPI.POST("/sms/batch", smsHandler.Enqueue)
	doctorAPI.POST("/cancer-results", cancerHandler.Record)
	doctorAPI.GET("/cancer-results", cancerHandler.List)
	doctorAPI.GET("/cancer-results/stats", cancerHandler.Stats)
	doctorAPI.PUT("/cancer-results/:id", cancerHandler.Update)
	doctorAPI.GET("/patients/:patient_id/cancer-results", cancerHandler.ForPatient)

	adminAPI := apiAuth.Group("", guard.RequireRole(domain.RoleAdmin, true))
	adminAPI.POST("/inventory", inventoryHandler.Add)
	adminAPI.PUT("/inventory/:id", inventoryHandler.Update)
	adminAPI.DELETE("/inventory/:id", inventoryHandler.Delete)
	adminAPI.POST("/feedback/:id/respond", feedbackHandler.Respond)

	// readable by both roles
	apiAuth.GET("/inventory", inventoryHandler.List)
	apiAuth.GET("/inventory/stats", inventoryHandler.Stats)
	apiAuth.POST("/feedback", feedbackHandler.Submit)
	apiAuth.GET("/feedback", feedbackHandler.List)
	apiAuth.GET("/feedback/mine", feedbackHandler.Mine)
	apiAuth.GET("/feedback/stats", feedbackHandler.Stats)
	apiAuth.POST("/feedback/:id/vote", feedbackHandler.Vote)
	apiAuth.GET("/resources", resourceHandler.List)
	apiAuth.POST("/resources", resourceHandler.Add)
	apiAuth.GET("/resources/stats", resourceHandler.Stats)
	apiAuth.GET("/resources/groups", resourceHandler.ListGroups)
	apiAuth.POST("/resources/groups", resourceHandler.AddGroup)
	apiAuth.POST("/resources/:id/download", resourceHandler.Download)
	apiAuth.GET("/test-costs", testCostHandler.List)
	apiAuth.GET("/test-costs/recommended", testCostHandler.Recommended)
	apiAuth.POST("/test-costs/quote", testCostHandler.Quote)
	apiAuth.GET("/test-costs/:key", testCostHandler.Get)
	apiAuth.GET("/staging", cancerHandler.Staging)
	apiAuth.GET("/staging/:stage", cancerHandler.StagingStage)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis, deps.Predictor)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
