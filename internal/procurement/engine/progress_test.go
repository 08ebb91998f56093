package engine

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestProgress(t *testing.T) {
	start := dayPtr(2026, time.January, 1)
	end := dayPtr(2026, time.January, 11)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		today time.Time
		want  float64
	}{
		{"missing start", nil, end, day(2026, time.January, 5), 0},
		{"missing end", start, nil, day(2026, time.January, 5), 0},
		{"inverted window", end, start, day(2026, time.June, 1), 0},
		{"zero window before", dayPtr(2026, time.March, 10), dayPtr(2026, time.March, 10), day(2026, time.March, 9), 0},
		{"zero window on the day", dayPtr(2026, time.March, 10), dayPtr(2026, time.March, 10), day(2026, time.March, 10), 100},
		{"zero window after", dayPtr(2026, time.March, 10), dayPtr(2026, time.March, 10), day(2026, time.March, 11), 100},
		{"today before start", start, end, day(2025, time.December, 25), 0},
		{"today on start", start, end, day(2026, time.January, 1), 0},
		{"today on end", start, end, day(2026, time.January, 11), 100},
		{"today past end", start, end, day(2026, time.February, 1), 100},
		{"midpoint", start, end, day(2026, time.January, 6), 50},
		{"one third rounded", dayPtr(2026, time.January, 1), dayPtr(2026, time.January, 4), day(2026, time.January, 2), 33.33},
		{"two thirds rounded", dayPtr(2026, time.January, 1), dayPtr(2026, time.January, 4), day(2026, time.January, 3), 66.67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(tt.start, tt.end, tt.today)
			if got != tt.want {
				t.Fatalf("expected %.2f, got %.2f", tt.want, got)
			}
		})
	}
}

// TestProgressIgnoresTimeOfDay: comparisons run on whole civil days, so an
// afternoon timestamp on the end date still counts as reaching it.
func TestProgressIgnoresTimeOfDay(t *testing.T) {
	start := dayPtr(2026, time.January, 1)
	end := dayPtr(2026, time.January, 11)
	today := time.Date(2026, time.January, 11, 15, 30, 12, 0, time.FixedZone("BRT", -3*3600))

	if got := Progress(start, end, today); got != 100 {
		t.Fatalf("expected 100 on the end date regardless of clock time, got %.2f", got)
	}
}

func TestElapsedDays(t *testing.T) {
	start := dayPtr(2026, time.January, 1)
	end := dayPtr(2026, time.January, 11)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		today time.Time
		want  int
	}{
		{"missing dates", nil, nil, day(2026, time.January, 5), 0},
		{"before start", start, end, day(2025, time.December, 20), 0},
		{"on start", start, end, day(2026, time.January, 1), 0},
		{"mid window", start, end, day(2026, time.January, 6), 5},
		{"on end", start, end, day(2026, time.January, 11), 10},
		{"capped after end", start, end, day(2026, time.March, 1), 10},
		{"inverted window", end, start, day(2026, time.June, 1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ElapsedDays(tt.start, tt.end, tt.today)
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
