package http

import (
	"time"

	"task-extraction/internal/extractor"
	"task-extraction/internal/task"
)

// --- Request DTOs ---

type extractReq struct {
	NextStep string `json:"next_step" binding:"required"`
}

func (r extractReq) validate() error { return nil }

func (r extractReq) toInput() task.ExtractInput {
	return task.ExtractInput{NextStep: r.NextStep}
}

// ---

type summaryReq struct {
	NextStep string `json:"next_step"`
	Outcome  string `json:"outcome"`
}

type ingestReq struct {
	SourceType string     `json:"source_type" binding:"required,oneof=call space manual"`
	SourceID   string     `json:"source_id"   binding:"required"`
	Summary    summaryReq `json:"summary"     binding:"required"`
}

func (r ingestReq) validate() error { return nil }

func (r ingestReq) toInput() task.IngestInput {
	return task.IngestInput{
		SourceType: extractor.SourceType(r.SourceType),
		SourceID:   r.SourceID,
		NextStep:   r.Summary.NextStep,
		Outcome:    r.Summary.Outcome,
	}
}

// ---

type listReq struct {
	SourceType string `form:"source_type" binding:"omitempty,oneof=call space manual"`
	SourceID   string `form:"source_id"`
	Priority   string `form:"priority"    binding:"omitempty,oneof=low medium high"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		SourceType: extractor.SourceType(r.SourceType),
		SourceID:   r.SourceID,
		Priority:   extractor.Priority(r.Priority),
		Limit:      r.Limit,
		Offset:     r.Offset,
	}
}

// --- Response DTOs ---

type extractedTaskResp struct {
	Title    string     `json:"title"`
	Priority string     `json:"priority"`
	DueAt    *time.Time `json:"due_at,omitempty"`
}

type extractResp struct {
	Tasks []extractedTaskResp `json:"tasks"`
	Count int                 `json:"count"`
}

func (h *handler) newExtractResp(out task.ExtractOutput) extractResp {
	tasks := make([]extractedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = extractedTaskResp{
			Title:    t.Title,
			Priority: string(t.Priority),
			DueAt:    t.DueAt,
		}
	}
	return extractResp{Tasks: tasks, Count: len(tasks)}
}

type ingestedTaskResp struct {
	ID          string     `json:"id"`
	Fingerprint string     `json:"fingerprint"`
	Title       string     `json:"title"`
	Priority    string     `json:"priority"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	Details     string     `json:"details,omitempty"`
	SourceType  string     `json:"source_type"`
	SourceID    string     `json:"source_id"`
	Duplicate   bool       `json:"duplicate"`
}

func newIngestedTaskResp(t task.IngestedTask) ingestedTaskResp {
	return ingestedTaskResp{
		ID:          t.ID,
		Fingerprint: t.Fingerprint,
		Title:       t.Title,
		Priority:    string(t.Priority),
		DueAt:       t.DueAt,
		Details:     t.Details,
		SourceType:  string(t.SourceType),
		SourceID:    t.SourceID,
		Duplicate:   t.Duplicate,
	}
}

type ingestResp struct {
	Tasks        []ingestedTaskResp `json:"tasks"`
	CreatedCount int                `json:"created_count"`
	SkippedCount int                `json:"skipped_count"`
}

func (h *handler) newIngestResp(out task.IngestOutput) ingestResp {
	tasks := make([]ingestedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newIngestedTaskResp(t)
	}
	return ingestResp{
		Tasks:        tasks,
		CreatedCount: out.CreatedCount,
		SkippedCount: out.SkippedCount,
	}
}

type listResp struct {
	Tasks  []ingestedTaskResp `json:"tasks"`
	Total  int                `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]ingestedTaskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newIngestedTaskResp(t)
	}
	return listResp{
		Tasks:  tasks,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}
