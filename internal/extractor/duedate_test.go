package extractor_test

import (
	"testing"
	"time"

	"task-extraction/internal/extractor"
)

func dueAt(t *testing.T, e *extractor.Extractor, text string) *time.Time {
	t.Helper()
	tasks := e.FromNextStep(text, baseTime)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task for %q, got %d", text, len(tasks))
	}
	return tasks[0].DueAt
}

func TestDueDateKeywords(t *testing.T) {
	e := newExtractor(t)

	// baseTime is Wednesday 2026-03-04 15:30 UTC.
	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{
			name: "heute is end of business today",
			text: "Unterlagen heute senden",
			want: time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC),
		},
		{
			name: "morgen is tomorrow morning",
			text: "Rückruf morgen einplanen",
			want: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "uebermorgen is shadowed by the earlier morgen entry",
			text: "Vertrag übermorgen klären",
			want: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "naechste woche is plus seven days",
			text: "nächste Woche nachfassen",
			want: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "freitag is this week",
			text: "Angebot bis Freitag schicken",
			want: time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "montag rolls into next week",
			text: "Besprechen am Montag",
			want: time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "same weekday rolls a full week",
			text: "Kunden am Mittwoch kontaktieren",
			want: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dueAt(t, e, tt.text)
			if got == nil {
				t.Fatalf("expected due date for %q, got nil", tt.text)
			}
			if !got.Equal(tt.want) {
				t.Errorf("expected %v, got %v", tt.want, *got)
			}
		})
	}
}

func TestDueDateExplicit(t *testing.T) {
	e := newExtractor(t)

	t.Run("day and month default to current year", func(t *testing.T) {
		got := dueAt(t, e, "Angebot senden bis 15.3.")
		want := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("explicit year", func(t *testing.T) {
		got := dueAt(t, e, "Vertrag checken bis 1.2.2027")
		want := time.Date(2027, 2, 1, 9, 0, 0, 0, time.UTC)
		if got == nil || !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("invalid month is discarded", func(t *testing.T) {
		if got := dueAt(t, e, "Unterlagen senden bis 31.13."); got != nil {
			t.Errorf("expected nil for impossible date, got %v", *got)
		}
	})

	t.Run("invalid day is discarded", func(t *testing.T) {
		if got := dueAt(t, e, "Unterlagen senden bis 31.2."); got != nil {
			t.Errorf("expected nil for impossible date, got %v", *got)
		}
	})

	t.Run("no date expression", func(t *testing.T) {
		if got := dueAt(t, e, "Angebot an Kunden senden"); got != nil {
			t.Errorf("expected nil, got %v", *got)
		}
	})
}

func TestDueDateLocation(t *testing.T) {
	vienna := time.FixedZone("CET", 1*60*60)
	e := extractor.NewInLocation(vienna)

	// 23:30 UTC on March 4 is already March 5 in CET; "morgen" resolves
	// from the extractor's civil day, not the UTC one.
	lateNight := time.Date(2026, 3, 4, 23, 30, 0, 0, time.UTC)
	tasks := e.FromNextStep("Rückruf morgen einplanen", lateNight)
	if len(tasks) != 1 || tasks[0].DueAt == nil {
		t.Fatalf("expected 1 task with due date, got %+v", tasks)
	}

	want := time.Date(2026, 3, 6, 9, 0, 0, 0, vienna)
	if !tasks[0].DueAt.Equal(want) {
		t.Errorf("expected %v, got %v", want, *tasks[0].DueAt)
	}
}
