package diary

import (
	"testing"
	"time"

	"overture/models"
)

func eventAt(id string, startSlot, endSlot int) models.TimedEvent {
	base := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return models.TimedEvent{
		ID:        id,
		StartSlot: startSlot,
		EndSlot:   endSlot,
		Start:     base.Add(time.Duration(startSlot) * time.Hour),
		End:       base.Add(time.Duration(endSlot+1) * time.Hour),
	}
}

func TestComputeLayoutConcurrency(t *testing.T) {
	tests := []struct {
		name              string
		events            []models.TimedEvent
		totalSlots        int
		wantMaxConcurrent int
		wantEvents        int
	}{
		{
			name:              "empty list",
			events:            nil,
			totalSlots:        15,
			wantMaxConcurrent: 0,
			wantEvents:        0,
		},
		{
			name:              "single all-day event",
			events:            []models.TimedEvent{eventAt("a", 0, 14)},
			totalSlots:        15,
			wantMaxConcurrent: 1,
			wantEvents:        1,
		},
		{
			name: "two overlapping one free",
			events: []models.TimedEvent{
				eventAt("a", 0, 2),
				eventAt("b", 1, 3),
				eventAt("c", 4, 4),
			},
			totalSlots:        15,
			wantMaxConcurrent: 2,
			wantEvents:        3,
		},
		{
			name: "three stacked in one slot",
			events: []models.TimedEvent{
				eventAt("a", 2, 5),
				eventAt("b", 3, 4),
				eventAt("c", 4, 6),
			},
			totalSlots:        15,
			wantMaxConcurrent: 3,
			wantEvents:        3,
		},
		{
			name: "single-slot events count in overlap",
			events: []models.TimedEvent{
				eventAt("a", 5, 5),
				eventAt("b", 5, 5),
			},
			totalSlots:        15,
			wantMaxConcurrent: 2,
			wantEvents:        2,
		},
		{
			name: "malformed events are skipped",
			events: []models.TimedEvent{
				eventAt("a", 3, 1),   // start after end
				eventAt("b", -2, 4),  // before grid
				eventAt("c", 10, 20), // past grid
				eventAt("d", 0, 2),
			},
			totalSlots:        15,
			wantMaxConcurrent: 1,
			wantEvents:        1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := ComputeLayout(tt.events, tt.totalSlots)
			if layout.MaxConcurrent != tt.wantMaxConcurrent {
				t.Errorf("MaxConcurrent = %d, want %d", layout.MaxConcurrent, tt.wantMaxConcurrent)
			}
			if len(layout.Events) != tt.wantEvents {
				t.Errorf("laid out %d events, want %d", len(layout.Events), tt.wantEvents)
			}
		})
	}
}

func TestComputeLayoutColumns(t *testing.T) {
	events := []models.TimedEvent{
		eventAt("a", 0, 2),
		eventAt("b", 1, 3),
		eventAt("c", 4, 4),
	}
	layout := ComputeLayout(events, 15)

	cols := map[string]int{}
	for _, ev := range layout.Events {
		cols[ev.ID] = ev.Column
	}
	if cols["a"] == cols["b"] {
		t.Errorf("overlapping events a and b share column %d", cols["a"])
	}
	if cols["c"] != 0 {
		t.Errorf("non-overlapping event c got column %d, want 0", cols["c"])
	}
}

func TestComputeLayoutNoOverlapProperty(t *testing.T) {
	// A deliberately messy day: nested, chained and duplicate spans.
	events := []models.TimedEvent{
		eventAt("a", 0, 6),
		eventAt("b", 1, 2),
		eventAt("c", 2, 4),
		eventAt("d", 3, 3),
		eventAt("e", 5, 9),
		eventAt("f", 5, 9),
		eventAt("g", 10, 14),
		eventAt("h", 0, 0),
	}
	layout := ComputeLayout(events, 15)

	for i := 0; i < len(layout.Events); i++ {
		for j := i + 1; j < len(layout.Events); j++ {
			a, b := layout.Events[i], layout.Events[j]
			intersects := a.StartSlot <= b.EndSlot && b.StartSlot <= a.EndSlot
			if intersects && a.Column == b.Column {
				t.Errorf("events %s and %s intersect but share column %d", a.ID, b.ID, a.Column)
			}
		}
	}

	// Minimality: distinct columns used never exceed the brute-force count.
	used := map[int]bool{}
	for _, ev := range layout.Events {
		used[ev.Column] = true
		if ev.Column < 0 || ev.Column >= layout.MaxConcurrent {
			t.Errorf("event %s column %d outside [0, %d)", ev.ID, ev.Column, layout.MaxConcurrent)
		}
	}
	if len(used) > layout.MaxConcurrent {
		t.Errorf("used %d distinct columns, max concurrent is %d", len(used), layout.MaxConcurrent)
	}
}

func TestComputeLayoutIdempotent(t *testing.T) {
	events := []models.TimedEvent{
		eventAt("a", 0, 3),
		eventAt("b", 2, 5),
		eventAt("c", 4, 8),
		eventAt("d", 1, 1),
	}

	first := ComputeLayout(events, 15)
	second := ComputeLayout(events, 15)

	if first.MaxConcurrent != second.MaxConcurrent {
		t.Fatalf("MaxConcurrent differs across runs: %d vs %d", first.MaxConcurrent, second.MaxConcurrent)
	}
	for i := range first.Events {
		if first.Events[i].Column != second.Events[i].Column {
			t.Errorf("event %s column differs across runs: %d vs %d",
				first.Events[i].ID, first.Events[i].Column, second.Events[i].Column)
		}
	}
}

func TestComputeLayoutTieBreakKeepsInsertionOrder(t *testing.T) {
	// Same start time: the earlier input should take the lower column.
	a := eventAt("first", 2, 4)
	b := eventAt("second", 2, 6)
	b.Start = a.Start

	layout := ComputeLayout([]models.TimedEvent{a, b}, 15)

	cols := map[string]int{}
	for _, ev := range layout.Events {
		cols[ev.ID] = ev.Column
	}
	if cols["first"] != 0 || cols["second"] != 1 {
		t.Errorf("columns = first:%d second:%d, want first:0 second:1", cols["first"], cols["second"])
	}
}
