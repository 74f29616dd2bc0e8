package usecase

import (
	"time"

	"task-extraction/internal/extractor"
	"task-extraction/internal/task/repository"
	pkgLog "task-extraction/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	ext  *extractor.Extractor
	repo repository.TaskRepository
	now  func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, ext *extractor.Extractor, repo repository.TaskRepository) *implUseCase {
	return &implUseCase{
		l:    l,
		ext:  ext,
		repo: repo,
		now:  time.Now,
	}
}
