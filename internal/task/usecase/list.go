package usecase

import (
	"context"
	"fmt"

	"task-extraction/internal/model"
	"task-extraction/internal/task"
	"task-extraction/internal/task/repository"
)

// List returns stored tasks, newest ingestion first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	stored, total, err := uc.repo.List(ctx, repository.ListTasksOptions{
		SourceType: input.SourceType,
		SourceID:   input.SourceID,
		Priority:   input.Priority,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return task.ListOutput{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	tasks := make([]task.IngestedTask, 0, len(stored))
	for _, st := range stored {
		tasks = append(tasks, fromStored(st, false))
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
