package http

import (
	"github.com/gin-gonic/gin"

	"task-extraction/internal/task"
	pkgLog "task-extraction/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	Ingest(c *gin.Context)
	List(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l pkgLog.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
