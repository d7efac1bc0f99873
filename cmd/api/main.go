// Zenith API
//
// REST API for tracking daily protocols and their analytics.
//
//	@title			Zenith API
//	@version		1.0
//	@description	Track daily protocols, streaks, experience rank and monthly reports.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			protocols
//	@tag.description	Protocol definitions
//
//	@tag.name			logs
//	@tag.description	Daily protocol logs
//
//	@tag.name			analytics
//	@tag.description	Dashboard, streaks and level
//
//	@tag.name			reports
//	@tag.description	Monthly reports
//
//	@tag.name			narrative
//	@tag.description	Advisory status reports
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blaisecz/zenith/internal/api"
	"github.com/blaisecz/zenith/internal/api/handler"
	"github.com/blaisecz/zenith/internal/config"
	"github.com/blaisecz/zenith/internal/domain"
	"github.com/blaisecz/zenith/internal/langfuse"
	"github.com/blaisecz/zenith/internal/llm"
	"github.com/blaisecz/zenith/internal/logger"
	"github.com/blaisecz/zenith/internal/notify"
	"github.com/blaisecz/zenith/internal/repository"
	"github.com/blaisecz/zenith/internal/seed"
	"github.com/blaisecz/zenith/internal/service"
	"github.com/blaisecz/zenith/internal/telemetry"
)

func main() {
	// Load configuration
	cfg := config.Load()

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, File: cfg.LogFile}); err != nil {
		logger.Fatal("Failed to initialize logger", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		logger.Fatal("Failed to initialize tracing", "error", err)
	}

	// Connect to database
	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	// Auto-migrate database schema
	if err := db.AutoMigrate(&domain.User{}, &domain.Habit{}, &domain.HabitLog{}, &domain.MonthlyReport{}); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}
	logger.Info("Database migration completed")

	if cfg.Seed {
		logger.Info("Seeding database with sample data (SEED=true)")
		if err := seed.Run(db); err != nil {
			logger.Fatal("Failed to seed database", "error", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	habitRepo := repository.NewHabitRepository(db)
	logRepo := repository.NewHabitLogRepository(db)
	reportRepo := repository.NewReportRepository(db)

	langfuseCfg := langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}
	langfuseClient := langfuse.NewClient(langfuseCfg)

	systemPrompt := llm.LoadNarrativePrompt(ctx, langfuse.NewPromptClient(langfuseCfg), llm.NarrativePromptConfig{
		Name:       cfg.LangfuseNarrativePrompt,
		Label:      "production",
		CachePath:  cfg.NarrativePromptPath,
		WindowDays: service.NarrativeWindowDays,
	})

	// Initialize OpenAI client (nil if not configured)
	var narrativeLLM llm.NarrativeLLM
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAINarrativeModel, systemPrompt); client != nil {
		narrativeLLM = client
	} else {
		logger.Warn("OpenAI API key not configured, narrative endpoint will return the fallback message")
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	habitService := service.NewHabitService(habitRepo, userRepo)
	habitLogService := service.NewHabitLogService(logRepo, habitRepo, userRepo)
	dashboardService := service.NewDashboardService(userRepo, habitRepo, logRepo)
	reportService := service.NewReportService(reportRepo, userRepo, habitRepo, logRepo)
	narrativeService := service.NewNarrativeService(narrativeLLM, langfuseClient, cfg.NarrativeTimeout, userRepo, habitRepo, logRepo)
	exportService := service.NewExportService(userRepo, habitRepo, logRepo)

	// Setup router
	router := api.NewRouter(api.Handlers{
		User:      handler.NewUserHandler(userService),
		Habit:     handler.NewHabitHandler(habitService),
		HabitLog:  handler.NewHabitLogHandler(habitLogService),
		Analytics: handler.NewAnalyticsHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
		Narrative: handler.NewNarrativeHandler(narrativeService),
		Export:    handler.NewExportHandler(exportService),
	})

	// Protocol window alarms
	var signaler notify.Signaler = notify.LogSignaler{}
	if cfg.NotifyWebhookURL != "" {
		signaler = notify.MultiSignaler{signaler, notify.NewWebhookSignaler(cfg.NotifyWebhookURL, nil)}
	}
	monitor := notify.NewMonitor(habitRepo, signaler, cfg.NotifyInterval)
	monitorDone := make(chan struct{})
	go func() {
		defer close(monitorDone)
		monitor.Run(ctx)
	}()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Starting server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	<-monitorDone
	if err := langfuseClient.Flush(shutdownCtx); err != nil {
		logger.Warn("Langfuse flush failed", "error", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Warn("Tracer shutdown failed", "error", err)
	}
}
