package tui

import (
	"slices"
	"time"

	"lazycal/array"
	"lazycal/config"
	"lazycal/layout"
	"lazycal/storage"
	"lazycal/tui/components"
)

// CalendarTotals adds up the time each calendar has scheduled in [from, to).
func CalendarTotals(events []storage.Event, from, to time.Time) map[string]time.Duration {
	totals := make(map[string]time.Duration)
	for _, e := range storage.EventsBetween(events, from, to) {
		if d := storage.ClampDuration(e, from, to); d > 0 {
			totals[e.Calendar()] += d
		}
	}
	return totals
}

// Scheduled is the total event time inside [from, to). Overlapping events
// count twice.
func Scheduled(events []storage.Event, from, to time.Time) time.Duration {
	var total time.Duration
	for _, d := range CalendarTotals(events, from, to) {
		total += d
	}
	return total
}

// Calendars lists the configured calendars and the ones events use, once
// each ignoring case, ordered by name. The first spelling seen wins.
func Calendars(cfg config.Config, events []storage.Event) []string {
	var names, folded []string
	add := func(name string) {
		key := array.Fold(name)
		r := array.Search(folded, key, array.StrAsc)
		if r.Found {
			return
		}
		folded = slices.Insert(folded, r.Index, key)
		names = slices.Insert(names, r.Index, name)
	}
	for _, cal := range cfg.Calendars {
		add(cal.Name)
	}
	for _, e := range events {
		add(e.Calendar())
	}
	return names
}

// Period returns the range a view shows around cursor as [from, to).
func Period(view components.ViewMode, cursor time.Time, firstWeekday time.Weekday) (time.Time, time.Time) {
	loc := cursor.Location()
	switch view {
	case components.ViewMonth:
		from := layout.StartOfMonth(cursor, loc)
		return from, from.AddDate(0, 1, 0)
	case components.ViewWeek:
		from := layout.StartOfWeek(cursor, firstWeekday, loc)
		return from, from.AddDate(0, 0, 7)
	default:
		from := layout.StartOfDay(cursor, loc)
		return from, from.AddDate(0, 0, 1)
	}
}

// Shift moves cursor by n periods of view.
func Shift(view components.ViewMode, cursor time.Time, n int) time.Time {
	switch view {
	case components.ViewMonth:
		return layout.StartOfMonth(cursor, cursor.Location()).AddDate(0, n, 0)
	case components.ViewWeek:
		return cursor.AddDate(0, 0, 7*n)
	default:
		return cursor.AddDate(0, 0, n)
	}
}

// PeriodTitle names the period a view shows.
func PeriodTitle(view components.ViewMode, from, to time.Time) string {
	switch view {
	case components.ViewMonth:
		return from.Format("January 2006")
	case components.ViewWeek:
		last := to.AddDate(0, 0, -1)
		return from.Format("Jan 2") + " - " + last.Format("Jan 2 2006")
	default:
		return from.Format("Monday, Jan 2 2006")
	}
}
