package http

import (
	"intelligent-task-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Training
// endpoints share the rate limiter since they are the expensive ones.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	predictions := rg.Group("/predictions")
	{
		predictions.POST("/priority", h.PredictPriority)
		predictions.POST("/duration", h.PredictDuration)
		predictions.POST("/train/priority", mw.RateLimit(), h.TrainPriority)
		predictions.POST("/train/duration", mw.RateLimit(), h.TrainDuration)
	}
}
