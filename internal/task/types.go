package task

import (
	"time"

	"task-extraction/internal/extractor"
)

// IngestInput is the input for summary ingestion.
type IngestInput struct {
	SourceType extractor.SourceType // call, space or manual
	SourceID   string               // call id, session id or caller-chosen key
	NextStep   string               // free-text next-step summary
	Outcome    string               // optional outcome text, stored as details
}

// IngestedTask is a single task after extraction and dedupe against the
// store. Duplicate marks tasks whose fingerprint already existed; those are
// returned but not inserted again.
type IngestedTask struct {
	ID          string
	Fingerprint string
	Title       string
	Priority    extractor.Priority
	DueAt       *time.Time
	Details     string
	SourceType  extractor.SourceType
	SourceID    string
	Duplicate   bool
}

// IngestOutput is the result of one ingestion run.
type IngestOutput struct {
	Tasks        []IngestedTask
	CreatedCount int
	SkippedCount int
}

// ExtractInput is the input for a dry-run extraction (no persistence).
type ExtractInput struct {
	NextStep string
}

// ExtractOutput returns the extracted tasks with their would-be fingerprints
// for a given source, without touching the store.
type ExtractOutput struct {
	Tasks []extractor.ExtractedTask
}

// ListInput filters stored tasks.
type ListInput struct {
	SourceType extractor.SourceType // optional
	SourceID   string               // optional
	Priority   extractor.Priority   // optional
	Limit      int
	Offset     int
}

// ListOutput is a page of stored tasks.
type ListOutput struct {
	Tasks  []IngestedTask
	Total  int
	Limit  int
	Offset int
}
