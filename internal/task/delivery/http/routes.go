package http

import (
	"intelligent-task-management/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/process", mw.RateLimit(), h.Process)
		tasks.POST("/improvements", mw.RateLimit(), h.Improvements)
		tasks.POST("/similarity", mw.RateLimit(), h.Similarity)
	}
}
