package extractor_test

import (
	"testing"

	"task-extraction/internal/extractor"
)

func TestPriorityClassification(t *testing.T) {
	e := newExtractor(t)

	tests := []struct {
		text string
		want extractor.Priority
	}{
		// High wins over medium when both keyword classes are present.
		{"Angebot senden an Kunden", extractor.PriorityHigh},
		{"Dringend zurückmelden bitte", extractor.PriorityHigh},
		{"DEADLINE nicht verpassen", extractor.PriorityHigh},
		{"Frist im Vertrag beachten", extractor.PriorityHigh},
		{"asap Unterlagen liefern", extractor.PriorityHigh},

		{"Mail an die Buchhaltung", extractor.PriorityMedium},
		{"Unterlagen nachfassen bei Huber", extractor.PriorityMedium},
		{"Zahlen checken mit Controlling", extractor.PriorityMedium},

		// No keyword at all defaults to medium; low is never produced.
		{"Blumen für das Büro bestellen", extractor.PriorityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tasks := e.FromNextStep(tt.text, baseTime)
			if len(tasks) != 1 {
				t.Fatalf("expected 1 task, got %d", len(tasks))
			}
			if tasks[0].Priority != tt.want {
				t.Errorf("expected %s, got %s", tt.want, tasks[0].Priority)
			}
		})
	}
}

func TestPriorityNeverLow(t *testing.T) {
	e := newExtractor(t)

	inputs := []string{
		"Irgendwann die Ablage sortieren",
		"- Angebot senden\n- Kaffee kaufen gehen\n- Unterlagen sortieren",
		"Vielleicht später aufräumen",
	}
	for _, input := range inputs {
		for _, task := range e.FromNextStep(input, baseTime) {
			if task.Priority == extractor.PriorityLow {
				t.Errorf("classifier produced low for %q; no table entry should yield it", task.Title)
			}
		}
	}
}
