package webhook

import (
	"task-extraction/internal/task"
	pkgLog "task-extraction/pkg/log"
)

// Handler receives summary-ready notifications from upstream summarizers and
// feeds them into the task ingest use case.
type Handler struct {
	taskUC   task.UseCase
	security *SecurityValidator
	l        pkgLog.Logger
}

func NewHandler(taskUC task.UseCase, securityConfig SecurityConfig, l pkgLog.Logger) *Handler {
	return &Handler{
		taskUC:   taskUC,
		security: NewSecurityValidator(securityConfig),
		l:        l,
	}
}
