package http

import (
	"intelligent-task-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	insights := rg.Group("/insights")
	{
		insights.POST("/patterns", h.Patterns)
		insights.POST("/suggestions", h.Suggestions)
		insights.POST("/productivity", h.Productivity)
		insights.POST("/trends", h.Trends)
	}
}
