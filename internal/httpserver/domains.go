package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	insightHTTP "intelligent-task-management/internal/insight/delivery/http"
	predictionHTTP "intelligent-task-management/internal/prediction/delivery/http"
	scheduleHTTP "intelligent-task-management/internal/schedule/delivery/http"
	taskHTTP "intelligent-task-management/internal/task/delivery/http"
)

// setupTaskDomain registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Task domain registered")
}

// setupPredictionDomain registers /api/v1/predictions.
func (srv HTTPServer) setupPredictionDomain(ctx context.Context, api *gin.RouterGroup) {
	h := predictionHTTP.New(srv.l, srv.predictionUC)
	predictionHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Prediction domain registered")
}

// setupInsightDomain registers /api/v1/insights.
func (srv HTTPServer) setupInsightDomain(ctx context.Context, api *gin.RouterGroup) {
	h := insightHTTP.New(srv.l, srv.insightUC)
	insightHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Insight domain registered")
}

// setupScheduleDomain registers /api/v1/schedules.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup) {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC, srv.defaultAvailableHours)
	scheduleHTTP.RegisterRoutes(api, h, srv.mw)
	srv.l.Infof(ctx, "Schedule domain registered")
}
