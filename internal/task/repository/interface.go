package repository

import (
	"context"
	"errors"
	"time"

	"task-extraction/internal/extractor"
)

// ErrNotFound is returned by GetByFingerprint when no record matches.
var ErrNotFound = errors.New("task not found")

// StoredTask is a task as persisted, keyed by its extraction fingerprint.
type StoredTask struct {
	ID          string
	Fingerprint string
	Title       string
	Priority    extractor.Priority
	DueAt       *time.Time
	Details     string
	SourceType  extractor.SourceType
	SourceID    string
	CreatedAt   time.Time
}

// TaskRepository is the interface for task persistence. Implementations must
// treat the fingerprint as a unique key so ingestion stays idempotent.
type TaskRepository interface {
	Insert(ctx context.Context, opt InsertTaskOptions) (StoredTask, error)
	GetByFingerprint(ctx context.Context, fingerprint string) (StoredTask, error)
	List(ctx context.Context, opt ListTasksOptions) ([]StoredTask, int, error)
}
