package repository

import (
	"time"

	"task-extraction/internal/extractor"
)

// InsertTaskOptions holds the parameters for persisting one extracted task.
type InsertTaskOptions struct {
	Fingerprint string
	Title       string
	Priority    extractor.Priority
	DueAt       *time.Time
	Details     string
	SourceType  extractor.SourceType
	SourceID    string
}

// ListTasksOptions holds filter and pagination parameters.
type ListTasksOptions struct {
	SourceType extractor.SourceType // empty means any
	SourceID   string               // empty means any
	Priority   extractor.Priority   // empty means any
	Limit      int                  // max results (default 20)
	Offset     int                  // pagination offset
}
