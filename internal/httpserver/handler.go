package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"intelligent-task-management/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	// Request logging is noisy in production, keep it for debugging
	// environments only.
	if srv.environment != string(model.EnvironmentProduction) {
		srv.gin.Use(srv.mw.RequestLogger())
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	srv.setupTaskDomain(ctx, api)
	srv.setupPredictionDomain(ctx, api)
	srv.setupInsightDomain(ctx, api)
	srv.setupScheduleDomain(ctx, api)

	return nil
}
