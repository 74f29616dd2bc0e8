package extractor

import "strings"

// Keyword tables for priority classification, checked in declaration order
// with case-insensitive substring matching. First table with a hit wins.
//
// Note: PriorityLow is a declared value but no table produces it. Anything
// below the medium keywords falls through to the medium default; adding
// low-priority keywords would reclassify existing summaries.
var (
	highPriorityKeywords = []string{
		"termin", "angebot", "rückruf", "sofort", "dringend", "heute",
		"asap", "wichtig", "deadline", "frist", "morgen", "urgent",
	}

	mediumPriorityKeywords = []string{
		"nachfassen", "mail", "info", "senden", "schicken",
		"kontaktieren", "prüfen", "checken", "klären", "besprechen",
	}
)

// classifyPriority assigns a priority from keyword presence. Pure function
// of the candidate text.
func classifyPriority(text string) Priority {
	lower := strings.ToLower(text)

	for _, keyword := range highPriorityKeywords {
		if strings.Contains(lower, keyword) {
			return PriorityHigh
		}
	}

	for _, keyword := range mediumPriorityKeywords {
		if strings.Contains(lower, keyword) {
			return PriorityMedium
		}
	}

	return PriorityMedium
}
