package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/afyakuu/platform-api/internal/api"
	"github.com/afyakuu/platform-api/internal/core/service"
	mongodb "github.com/afyakuu/platform-api/internal/infrastructure/db/mongo"
	redisdb "github.com/afyakuu/platform-api/internal/infrastructure/db/redis"
	"github.com/afyakuu/platform-api/internal/infrastructure/prediction"
	"github.com/afyakuu/platform-api/internal/infrastructure/queue"
	"github.com/afyakuu/platform-api/internal/infrastructure/sms"
	"github.com/afyakuu/platform-api/internal/pkg/config"
	"github.com/afyakuu/platform-api/internal/session"
	"github.com/afyakuu/platform-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  10 * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:    cfg.Redis.Addr,
		DB:      cfg.Redis.DB,
		Timeout: 5 * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(db)
	patientRepo := mongodb.NewPatientRepository(db)
	inventoryRepo := mongodb.NewInventoryRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)
	resourceRepo := mongodb.NewResourceRepository(db)
	cancerRepo := mongodb.NewCancerResultRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"credentials":     authRepo.EnsureIndexes,
		"patient_records": patientRepo.EnsureIndexes,
		"cancer_results":  cancerRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	sessionStore := redisdb.NewSessionStore(rdb, logger.For("sessions"))
	patientCounter := redisdb.NewPatientCounter(rdb)
	reminderDedup := redisdb.NewReminderDedup(rdb)

	// --- External collaborators ---
	predictor := prediction.NewClient(
		cfg.Prediction.URL,
		time.Duration(cfg.Prediction.TimeoutSeconds)*time.Second,
		logger.For("prediction"),
	)
	gateway := sms.NewGateway(sms.Config{
		APIKey:   cfg.SMS.APIKey,
		Username: cfg.SMS.Username,
		SenderID: cfg.SMS.SenderID,
		BaseURL:  cfg.SMS.BaseURL,
		DemoMode: cfg.SMS.DemoMode,
	}, logger.For("sms"))

	// --- Session plumbing ---
	codec := session.NewTokenCodec(cfg.JWTSecret, session.TTL)
	cookies := session.NewCookieWriter(cfg.IsProduction())

	// --- Services ---
	authService := service.NewAuthService(authRepo, sessionStore, codec)
	assessmentService := service.NewAssessmentService(patientRepo, patientCounter, predictor, logger.For("assessments"))
	inventoryService := service.NewInventoryService(inventoryRepo, logger.For("inventory"))
	feedbackService := service.NewFeedbackService(feedbackRepo, logger.For("feedback"))
	resourceService := service.NewResourceService(resourceRepo, logger.For("resources"))
	testCostService := service.NewTestCostService()
	cancerService := service.NewCancerService(cancerRepo, logger.For("cancer-results"))
	reminderService := service.NewReminderService(gateway, reminderDedup, logger.For("reminders"))

	dispatcher := queue.NewDispatcher(cfg.ReminderWorkers, reminderService, logger.For("dispatcher"))
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Mongo:      db,
		Redis:      rdb,
		Predictor:  predictor,
		Auth:       authService,
		Sessions:   sessionStore,
		Codec:      codec,
		Cookies:    cookies,
		Assess:     assessmentService,
		Inventory:  inventoryService,
		Feedback:   feedbackService,
		Resources:  resourceService,
		TestCosts:  testCostService,
		Cancer:     cancerService,
		Reminders:  reminderService,
		Dispatcher: dispatcher,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
