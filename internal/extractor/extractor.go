// Package extractor turns free-text "next step" summaries into structured,
// deduplicated, prioritized action items. It is deliberately rule-based:
// splitting, keyword tables and date arithmetic only, so the same input
// always yields the same tasks. Precision is favored over recall: a missed
// item is acceptable, an invented one is not.
package extractor

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Candidate and output bounds.
const (
	minTitleLen = 6
	maxTitleLen = 180
	maxTasks    = 5
)

var (
	// Bullet and list delimiters: newlines plus the markers summarizers
	// commonly emit. A run of any of them ends a candidate.
	bulletDelimiterRe = regexp.MustCompile(`[\n•\-–*]+`)

	// Numbered-list markers of the form "1. " / "12. ".
	numberedMarkerRe = regexp.MustCompile(`\d+\.\s`)
)

// Extractor converts next-step text into tasks. The location anchors due-date
// arithmetic to a fixed civil timezone; the zero-dependency pipeline holds no
// other configuration and no state between calls.
type Extractor struct {
	location *time.Location
}

// New creates an Extractor for the given IANA timezone, e.g. "Europe/Vienna".
func New(timezone string) (*Extractor, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return NewInLocation(loc), nil
}

// NewInLocation creates an Extractor anchored to loc. A nil loc falls back
// to UTC.
func NewInLocation(loc *time.Location) *Extractor {
	if loc == nil {
		loc = time.UTC
	}
	return &Extractor{location: loc}
}

// FromNextStep extracts up to five tasks from raw next-step text. now is the
// reference instant for relative date expressions; results are deterministic
// for a fixed (text, now) pair. Degenerate input yields an empty slice,
// never an error.
func (e *Extractor) FromNextStep(nextStep string, now time.Time) []ExtractedTask {
	candidates := splitCandidates(nextStep)

	tasks := make([]ExtractedTask, 0, maxTasks)
	seen := make(map[string]bool, maxTasks)

	for _, candidate := range candidates {
		if len(tasks) >= maxTasks {
			break
		}

		normalized := strings.ToLower(strings.TrimSpace(candidate))
		if seen[normalized] {
			continue
		}
		seen[normalized] = true

		tasks = append(tasks, ExtractedTask{
			Title:    candidate,
			Priority: classifyPriority(candidate),
			DueAt:    e.inferDueDate(candidate, now),
		})
	}

	return tasks
}

// FromCallSummary extracts tasks from a call summary. The callID is not used
// here; callers feed it into Fingerprint as the source id when persisting.
func (e *Extractor) FromCallSummary(callID string, summary *Summary, now time.Time) []ExtractedTask {
	if summary == nil || summary.NextStep == "" {
		return []ExtractedTask{}
	}
	return e.FromNextStep(summary.NextStep, now)
}

// FromSpaceSummary extracts tasks from a chat-session summary. Same contract
// as FromCallSummary with a different semantic source.
func (e *Extractor) FromSpaceSummary(sessionID string, summary *Summary, now time.Time) []ExtractedTask {
	if summary == nil || summary.NextStep == "" {
		return []ExtractedTask{}
	}
	return e.FromNextStep(summary.NextStep, now)
}

// splitCandidates breaks raw text into size-bounded task candidates in
// source order. When no fragment survives the bounds but the whole trimmed
// input does, the whole input becomes the single candidate, so reasonably
// sized actionable text always produces a task.
func splitCandidates(nextStep string) []string {
	text := strings.TrimSpace(strings.ReplaceAll(nextStep, "\r\n", "\n"))
	if text == "" {
		return nil
	}

	var candidates []string
	for _, fragment := range bulletDelimiterRe.Split(text, -1) {
		for _, part := range numberedMarkerRe.Split(fragment, -1) {
			part = strings.TrimSpace(part)
			if n := utf8.RuneCountInString(part); n >= minTitleLen && n <= maxTitleLen {
				candidates = append(candidates, part)
			}
		}
	}

	if len(candidates) == 0 {
		if n := utf8.RuneCountInString(text); n >= minTitleLen && n <= maxTitleLen {
			candidates = append(candidates, text)
		}
	}

	return candidates
}
