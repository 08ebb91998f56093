package engine

import (
	"math"
	"time"
)

// Progress returns how much of the schedule window has elapsed as of today,
// as a percentage in [0, 100] with two-decimal precision. All three instants
// are reduced to whole civil days before comparison.
//
// The cases are checked in this exact order because their ranges overlap at
// the boundaries:
//
//	missing date            -> 0
//	end before start        -> 0 (malformed window, defined degenerate case)
//	zero-length window      -> 100 once today reaches it, else 0
//	today at or before start-> 0
//	today at or after end   -> 100
//	otherwise               -> linear interpolation
func Progress(start, end *time.Time, today time.Time) float64 {
	if start == nil || end == nil {
		return 0
	}
	s := civilDay(*start)
	e := civilDay(*end)
	d := civilDay(today)

	switch {
	case e.Before(s):
		return 0
	case e.Equal(s):
		if !d.Before(e) {
			return 100
		}
		return 0
	case !d.After(s):
		return 0
	case !d.Before(e):
		return 100
	}

	elapsed := d.Sub(s).Hours() / 24
	window := e.Sub(s).Hours() / 24
	return math.Round(100*elapsed/window*100) / 100
}

// ElapsedDays counts whole days from the start date to today. It never goes
// negative and stops growing once the end date has passed. Zero when either
// date is absent.
func ElapsedDays(start, end *time.Time, today time.Time) int {
	if start == nil || end == nil {
		return 0
	}
	s := civilDay(*start)
	e := civilDay(*end)
	d := civilDay(today)

	if d.After(e) {
		d = e
	}
	if d.Before(s) {
		return 0
	}
	return int(d.Sub(s).Hours() / 24)
}

// civilDay drops the time-of-day and zone so date arithmetic counts calendar
// days, not 24-hour spans across zones.
func civilDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
