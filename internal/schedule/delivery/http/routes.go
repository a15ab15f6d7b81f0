package http

import (
	"intelligent-task-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Exports
// call out to Google Calendar and share the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	schedules := rg.Group("/schedules")
	{
		schedules.POST("/suggest", h.Suggest)
		schedules.POST("/conflicts", h.Conflicts)
		schedules.POST("/export", mw.RateLimit(), h.Export)
	}
}
