package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Default times of day for inferred due dates.
const (
	endOfDayHour   = 18 // "heute" means by end of business today
	startOfDayHour = 9  // everything else lands at the start of the day
)

// explicitDateRe matches German numeric dates: "15.3." or "15.3.2026".
var explicitDateRe = regexp.MustCompile(`(\d{1,2})\.(\d{1,2})\.?(\d{4})?`)

// datePattern maps a keyword to its resolution relative to now. now arrives
// already shifted into the extractor's location.
type datePattern struct {
	keyword string
	resolve func(now time.Time) time.Time
}

// datePatterns is evaluated in order, first match wins. The order is part of
// the contract: "übermorgen" is shadowed by the earlier "morgen" entry, so a
// summary saying übermorgen gets tomorrow's date.
var datePatterns = []datePattern{
	{"heute", func(now time.Time) time.Time { return atHour(now, 0, endOfDayHour) }},
	{"morgen", func(now time.Time) time.Time { return atHour(now, 1, startOfDayHour) }},
	{"übermorgen", func(now time.Time) time.Time { return atHour(now, 2, startOfDayHour) }},
	{"nächste woche", func(now time.Time) time.Time { return atHour(now, 7, startOfDayHour) }},
	{"montag", nextWeekday(time.Monday)},
	{"dienstag", nextWeekday(time.Tuesday)},
	{"mittwoch", nextWeekday(time.Wednesday)},
	{"donnerstag", nextWeekday(time.Thursday)},
	{"freitag", nextWeekday(time.Friday)},
}

// inferDueDate extracts an absolute due time from relative or explicit German
// date expressions in text, or nil when nothing is recognized. Callers must
// treat nil as "no due date", not "now".
func (e *Extractor) inferDueDate(text string, now time.Time) *time.Time {
	lower := strings.ToLower(text)
	base := now.In(e.location)

	for _, pattern := range datePatterns {
		if strings.Contains(lower, pattern.keyword) {
			due := pattern.resolve(base)
			return &due
		}
	}

	return e.parseExplicitDate(text, base)
}

// parseExplicitDate handles "D.M." and "D.M.YYYY", defaulting the year to the
// current one. Impossible dates (31.13.) round-trip to a different day under
// time.Date normalization and are discarded.
func (e *Extractor) parseExplicitDate(text string, base time.Time) *time.Time {
	matches := explicitDateRe.FindStringSubmatch(text)
	if matches == nil {
		return nil
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year := base.Year()
	if matches[3] != "" {
		year, _ = strconv.Atoi(matches[3])
	}

	due := time.Date(year, time.Month(month), day, startOfDayHour, 0, 0, 0, e.location)
	if due.Day() != day || int(due.Month()) != month || due.Year() != year {
		return nil
	}
	return &due
}

// atHour returns the given hour on base's day plus dayOffset, in base's
// location.
func atHour(base time.Time, dayOffset, hour int) time.Time {
	d := base.AddDate(0, 0, dayOffset)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, d.Location())
}

// nextWeekday resolves to the next strictly-future occurrence of target at
// the start-of-day hour. If base already falls on target, it rolls a full
// week forward.
func nextWeekday(target time.Weekday) func(now time.Time) time.Time {
	return func(now time.Time) time.Time {
		daysUntil := (int(target) - int(now.Weekday()) + 7) % 7
		if daysUntil == 0 {
			daysUntil = 7
		}
		return atHour(now, daysUntil, startOfDayHour)
	}
}
