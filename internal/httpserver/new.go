package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"intelligent-task-management/internal/insight"
	"intelligent-task-management/internal/middleware"
	"intelligent-task-management/internal/prediction"
	"intelligent-task-management/internal/schedule"
	"intelligent-task-management/internal/task"
	"intelligent-task-management/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	taskUC       task.UseCase
	predictionUC prediction.UseCase
	insightUC    insight.UseCase
	scheduleUC   schedule.UseCase

	defaultAvailableHours int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	TaskUC       task.UseCase
	PredictionUC prediction.UseCase
	InsightUC    insight.UseCase
	ScheduleUC   schedule.UseCase

	DefaultAvailableHours int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                     logger,
		gin:                   gin.New(),
		port:                  cfg.Port,
		mode:                  cfg.Mode,
		environment:           cfg.Environment,
		mw:                    cfg.Middleware,
		taskUC:                cfg.TaskUC,
		predictionUC:          cfg.PredictionUC,
		insightUC:             cfg.InsightUC,
		scheduleUC:            cfg.ScheduleUC,
		defaultAvailableHours: cfg.DefaultAvailableHours,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.predictionUC == nil {
		return errors.New("prediction usecase is required")
	}
	if srv.insightUC == nil {
		return errors.New("insight usecase is required")
	}
	if srv.scheduleUC == nil {
		return errors.New("schedule usecase is required")
	}
	return nil
}
