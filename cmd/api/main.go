package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"intelligent-task-management/config"
	"intelligent-task-management/internal/httpserver"
	insightUC "intelligent-task-management/internal/insight/usecase"
	"intelligent-task-management/internal/middleware"
	predictionFile "intelligent-task-management/internal/prediction/repository/file"
	predictionUC "intelligent-task-management/internal/prediction/usecase"
	scheduleUC "intelligent-task-management/internal/schedule/usecase"
	taskUC "intelligent-task-management/internal/task/usecase"
	"intelligent-task-management/pkg/gcalendar"
	"intelligent-task-management/pkg/log"
	"intelligent-task-management/pkg/nlp"
)

// @title       Intelligent Task Management API
// @description Task understanding, trainable priority/duration prediction, pattern analytics and schedule inference.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Intelligent Task Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Model directory: %s", cfg.Models.Dir)

	// 3. Task domain
	annotator, err := nlp.NewAnnotator(cfg.NLP.CacheSize)
	if err != nil {
		logger.Error(ctx, "Failed to initialize NLP annotator: ", err)
		return
	}
	taskUsecase := taskUC.New(logger, annotator)

	// 4. Prediction domain, loading persisted models if present
	modelStore, err := predictionFile.New(logger, cfg.Models.Dir)
	if err != nil {
		logger.Error(ctx, "Failed to initialize model store: ", err)
		return
	}
	predictionUsecase, err := predictionUC.New(ctx, logger, modelStore)
	if err != nil {
		logger.Error(ctx, "Failed to initialize prediction usecase: ", err)
		return
	}

	// 5. Insight domain
	insightUsecase := insightUC.New(logger)

	// 6. Schedule domain with optional Google Calendar export
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}
	scheduleUsecase := scheduleUC.New(logger, predictionUsecase, calendarClient)

	// 7. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:                logger,
		Port:                  cfg.HTTPServer.Port,
		Mode:                  cfg.HTTPServer.Mode,
		Environment:           cfg.Environment.Name,
		Middleware:            mw,
		TaskUC:                taskUsecase,
		PredictionUC:          predictionUsecase,
		InsightUC:             insightUsecase,
		ScheduleUC:            scheduleUsecase,
		DefaultAvailableHours: cfg.Scheduler.DefaultAvailableHours,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
