package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"task-extraction/internal/extractor"
	"task-extraction/internal/model"
	"task-extraction/internal/task"
	"task-extraction/internal/task/repository"
)

// Ingest extracts tasks from a summary and stores the new ones. A task is
// "new" when its fingerprint is absent from the store, so running the same
// summary through Ingest any number of times creates each task exactly once.
func (uc *implUseCase) Ingest(ctx context.Context, sc model.Scope, input task.IngestInput) (task.IngestOutput, error) {
	if err := validateIngestInput(input); err != nil {
		return task.IngestOutput{}, err
	}

	uc.l.Infof(ctx, "Ingest: source=%s/%s input_length=%d request=%s",
		input.SourceType, input.SourceID, len(input.NextStep), sc.RequestID)

	extracted := uc.extractForSource(input)
	if len(extracted) == 0 {
		// Valid empty result, not an error: nothing actionable in the text.
		return task.IngestOutput{Tasks: []task.IngestedTask{}}, nil
	}

	out := task.IngestOutput{Tasks: make([]task.IngestedTask, 0, len(extracted))}

	for _, ext := range extracted {
		fingerprint := extractor.Fingerprint(input.SourceType, input.SourceID, ext.Title)

		existing, err := uc.repo.GetByFingerprint(ctx, fingerprint)
		if err == nil {
			out.Tasks = append(out.Tasks, fromStored(existing, true))
			out.SkippedCount++
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			uc.l.Errorf(ctx, "Ingest: fingerprint lookup failed for %q: %v", ext.Title, err)
			continue
		}

		stored, err := uc.repo.Insert(ctx, repository.InsertTaskOptions{
			Fingerprint: fingerprint,
			Title:       ext.Title,
			Priority:    ext.Priority,
			DueAt:       ext.DueAt,
			Details:     input.Outcome,
			SourceType:  input.SourceType,
			SourceID:    input.SourceID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "Ingest: failed to store task %q: %v", ext.Title, err)
			continue
		}

		out.Tasks = append(out.Tasks, fromStored(stored, false))
		out.CreatedCount++
	}

	uc.l.Infof(ctx, "Ingest: source=%s/%s created=%d skipped=%d",
		input.SourceType, input.SourceID, out.CreatedCount, out.SkippedCount)

	return out, nil
}

// Extract runs the pipeline without touching the store.
func (uc *implUseCase) Extract(ctx context.Context, sc model.Scope, input task.ExtractInput) (task.ExtractOutput, error) {
	if strings.TrimSpace(input.NextStep) == "" {
		return task.ExtractOutput{}, task.ErrEmptyInput
	}

	return task.ExtractOutput{
		Tasks: uc.ext.FromNextStep(input.NextStep, uc.now()),
	}, nil
}

// extractForSource routes to the summary wrapper matching the source type.
func (uc *implUseCase) extractForSource(input task.IngestInput) []extractor.ExtractedTask {
	summary := &extractor.Summary{NextStep: input.NextStep, Outcome: input.Outcome}

	switch input.SourceType {
	case extractor.SourceCall:
		return uc.ext.FromCallSummary(input.SourceID, summary, uc.now())
	case extractor.SourceSpace:
		return uc.ext.FromSpaceSummary(input.SourceID, summary, uc.now())
	default:
		return uc.ext.FromNextStep(input.NextStep, uc.now())
	}
}

func validateIngestInput(input task.IngestInput) error {
	switch input.SourceType {
	case extractor.SourceCall, extractor.SourceSpace, extractor.SourceManual:
	default:
		return fmt.Errorf("%w: %q", task.ErrInvalidSourceType, input.SourceType)
	}
	if input.SourceID == "" {
		return task.ErrMissingSourceID
	}
	if strings.TrimSpace(input.NextStep) == "" {
		return task.ErrEmptyInput
	}
	return nil
}

func fromStored(stored repository.StoredTask, duplicate bool) task.IngestedTask {
	return task.IngestedTask{
		ID:          stored.ID,
		Fingerprint: stored.Fingerprint,
		Title:       stored.Title,
		Priority:    stored.Priority,
		DueAt:       stored.DueAt,
		Details:     stored.Details,
		SourceType:  stored.SourceType,
		SourceID:    stored.SourceID,
		Duplicate:   duplicate,
	}
}
