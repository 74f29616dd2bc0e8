package task

import (
	"context"

	"task-extraction/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Extract runs the extraction pipeline without persisting anything.
	Extract(ctx context.Context, sc model.Scope, input ExtractInput) (ExtractOutput, error)

	// Ingest extracts tasks from a summary and stores the ones whose
	// fingerprint is not yet known. Repeated ingestion of the same summary
	// is idempotent.
	Ingest(ctx context.Context, sc model.Scope, input IngestInput) (IngestOutput, error)

	// List returns stored tasks, newest ingestion first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
}
