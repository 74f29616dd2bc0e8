package http

import (
	"github.com/gin-gonic/gin"

	"task-extraction/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/extract", mw.RateLimit(), h.Extract)
		tasks.POST("/ingest", mw.RateLimit(), h.Ingest)
		tasks.GET("", h.List)
	}
}
