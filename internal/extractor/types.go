package extractor

import "time"

// Priority is the urgency class assigned to an extracted task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// SourceType tags where a summary came from. It participates in the
// fingerprint, so the same title from a call and a space dedupes separately.
type SourceType string

const (
	SourceCall   SourceType = "call"
	SourceSpace  SourceType = "space"
	SourceManual SourceType = "manual"
)

// ExtractedTask is a single action item pulled out of a next-step summary.
// It has no identity of its own; callers derive one via Fingerprint when
// persisting.
type ExtractedTask struct {
	Title    string     // 6..180 chars, verbatim slice of the input
	Priority Priority   // keyword-classified, medium by default
	DueAt    *time.Time // inferred absolute due time, nil when unrecognized
	Details  string     // never set by the extractor; callers may populate
}

// Summary is the caller-owned summary shape produced by upstream
// call-transcript or chat-session summarizers.
type Summary struct {
	NextStep string `json:"next_step"`
	Outcome  string `json:"outcome"`
}
