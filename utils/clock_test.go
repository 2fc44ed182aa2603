package utils

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name      string
		clock     string
		want      int
		wantError bool
	}{
		{name: "morning", clock: "10:00", want: 600},
		{name: "half hour", clock: "19:30", want: 1170},
		{name: "midnight boundary", clock: "24:00", want: 1440},
		{name: "single digit hour", clock: "9:00", want: 540},
		{name: "hour out of range", clock: "25:00", wantError: true},
		{name: "minute out of range", clock: "10:75", wantError: true},
		{name: "wrong separator", clock: "10-00", wantError: true},
		{name: "empty", clock: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.clock)
			if tt.wantError {
				if !errors.Is(err, ErrInvalidClock) {
					t.Errorf("ParseClock(%q) error = %v, want ErrInvalidClock", tt.clock, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseClock(%q) error = %v", tt.clock, err)
			}
			if got != tt.want {
				t.Errorf("ParseClock(%q) = %d, want %d", tt.clock, got, tt.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(1170); got != "19:30" {
		t.Errorf("FormatClock(1170) = %q, want 19:30", got)
	}
	if got := FormatClock(600); got != "10:00" {
		t.Errorf("FormatClock(600) = %q, want 10:00", got)
	}
}

func TestSlotForMinutes(t *testing.T) {
	tests := []struct {
		name string
		mins int
		want int
	}{
		{name: "grid opens", mins: 10 * 60, want: 0},
		{name: "mid afternoon", mins: 14 * 60, want: 4},
		{name: "last slot", mins: 24 * 60, want: 14},
		{name: "before the grid", mins: 9 * 60, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotForMinutes(tt.mins); got != tt.want {
				t.Errorf("SlotForMinutes(%d) = %d, want %d", tt.mins, got, tt.want)
			}
		})
	}
}
