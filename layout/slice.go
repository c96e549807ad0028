package layout

import (
	"time"

	"lazycal/array"
)

// Range is a half-open stretch of time [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// StartOfDay returns midnight of the day t falls on in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Days returns n consecutive midnights in loc starting with the day of from.
func Days(from time.Time, n int, loc *time.Location) []time.Time {
	first := StartOfDay(from, loc)
	days := make([]time.Time, n)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}

// SliceByDay cuts [start, end) at every midnight in loc. The pieces cover
// the span exactly. A zero-length or inverted span comes back as a single
// piece.
func SliceByDay(start, end time.Time, loc *time.Location) []Range {
	if !end.After(start) {
		return []Range{{Start: start, End: end}}
	}

	var pieces []Range
	cur := start
	for cur.Before(end) {
		next := StartOfDay(cur, loc).AddDate(0, 0, 1)
		if next.After(end) {
			next = end
		}
		pieces = append(pieces, Range{Start: cur, End: next})
		cur = next
	}
	return pieces
}

// DayIndex returns the index in days (ascending midnights, one day apart) of
// the day containing t, or -1 when t is outside all of them.
func DayIndex(days []time.Time, t time.Time) int {
	if len(days) == 0 {
		return -1
	}
	// Count the days starting at or before t.
	started := array.InsertionPoint(array.BSearch(days, t, func(day, t time.Time) int {
		if day.After(t) {
			return 1
		}
		return -1
	}))
	idx := started - 1
	if idx < 0 {
		return -1
	}
	if idx == len(days)-1 && !t.Before(days[idx].AddDate(0, 0, 1)) {
		return -1
	}
	return idx
}

// StartOfWeek returns midnight of the first day of the week containing t,
// weeks starting on first.
func StartOfWeek(t time.Time, first time.Weekday, loc *time.Location) time.Time {
	day := StartOfDay(t, loc)
	offset := (int(day.Weekday()) - int(first) + 7) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns midnight of the first day of t's month in loc.
func StartOfMonth(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
}

// PieceOn returns the part of [start, end) that SliceByDay puts on the day
// beginning at midnight day, in day's location. ok is false when the span
// does not touch that day.
func PieceOn(start, end, day time.Time) (piece Range, ok bool) {
	next := day.AddDate(0, 0, 1)
	for _, p := range SliceByDay(start, end, day.Location()) {
		if p.Start.Before(day) || !p.Start.Before(next) {
			continue
		}
		return p, true
	}
	return Range{}, false
}
