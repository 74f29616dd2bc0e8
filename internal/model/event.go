package model

import (
	"time"

	"task-extraction/internal/extractor"
)

// SummaryEvent represents a finished-summary notification pushed by an
// upstream summarizer (call transcript or chat session).
type SummaryEvent struct {
	SourceType extractor.SourceType // call or space
	SourceID   string               // call id or session id
	NextStep   string               // free-text recommended follow-up
	Outcome    string               // summary outcome, stored as task details
	ReceivedAt time.Time            // when the webhook was received
}
