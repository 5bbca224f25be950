package budget

import (
	"math"
	"time"

	"tripkit/internal/model"
)

// dateLayout is the calendar-date format used throughout the stored data.
const dateLayout = "2006-01-02"

// Status classifies a trip relative to a reference day.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusPast     Status = "past"
)

// parseDay parses a YYYY-MM-DD string to local midnight.
func parseDay(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// midnight truncates a timestamp to local midnight of its calendar day.
// Comparing midnights keeps day arithmetic immune to DST offsets.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// TripDurationDays is the inclusive day count of the trip's date range:
// a trip starting and ending on the same day lasts 1 day. Unparseable
// dates yield 0, which the daily-budget math treats as "don't divide".
func TripDurationDays(t model.Trip) int {
	start, ok := parseDay(t.StartDate)
	if !ok {
		return 0
	}
	end, ok := parseDay(t.EndDate)
	if !ok {
		return 0
	}
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	return days
}

// StatusOn classifies the trip against the given reference time, usually
// time.Now(). The start bound is midnight and the end bound is the last
// millisecond of the end date, so both the first and last calendar day of
// the trip count as ongoing.
func StatusOn(t model.Trip, now time.Time) Status {
	today := midnight(now)

	start, okStart := parseDay(t.StartDate)
	end, okEnd := parseDay(t.EndDate)
	if !okStart || !okEnd {
		return StatusOngoing
	}
	endOfDay := end.Add(24*time.Hour - time.Millisecond)

	switch {
	case today.Before(start):
		return StatusUpcoming
	case today.After(endOfDay):
		return StatusPast
	default:
		return StatusOngoing
	}
}

// EnumerateDateRange lists every calendar date from start to end inclusive,
// ascending. Empty when either bound is unparseable or end precedes start.
func EnumerateDateRange(startDate, endDate string) []string {
	start, ok := parseDay(startDate)
	if !ok {
		return nil
	}
	end, ok := parseDay(endDate)
	if !ok {
		return nil
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(dateLayout))
	}
	return dates
}

// DateRangeLabel renders a human date range like "Mar 1 - Mar 5". Years are
// shown on both ends when the trip spans a year boundary, and on the end date
// whenever it falls outside the reference time's year.
func DateRangeLabel(t model.Trip, now time.Time) string {
	start, okStart := parseDay(t.StartDate)
	end, okEnd := parseDay(t.EndDate)
	if !okStart || !okEnd {
		return ""
	}

	spansYears := start.Year() != end.Year()

	startLabel := start.Format("Jan 2")
	if spansYears {
		startLabel = start.Format("Jan 2, 2006")
	}

	endLabel := end.Format("Jan 2")
	if spansYears || end.Year() != now.Year() {
		endLabel = end.Format("Jan 2, 2006")
	}

	return startLabel + " - " + endLabel
}
