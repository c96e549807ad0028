package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"lazycal/array"
	"lazycal/storage"
)

// HeroStyles are the styles RenderHero draws with.
type HeroStyles struct {
	BorderIdle lipgloss.Style
	BorderBusy lipgloss.Style
	Time       lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
}

// RenderHero shows what is happening now and what comes next.
func RenderHero(events []storage.Event, now time.Time, width int, styles HeroStyles, formatDuration func(time.Duration) string) string {
	loc := now.Location()
	current := Current(events, now)

	var lines []string
	if len(current) == 0 {
		lines = append(lines, styles.Muted.Render("FREE"))
	}
	for _, ev := range current {
		span := ev.Start.In(loc).Format("15:04") + "-" + ev.End.In(loc).Format("15:04")
		left := styles.Muted.Render(formatDuration(ev.End.Sub(now)) + " left")
		lines = append(lines, fit(styles.Time.Render("NOW "+span)+"  "+styles.Title.Render(ev.Title())+"  "+left, width-4))
	}

	if next, ok := Next(events, now); ok {
		in := styles.Muted.Render("in " + formatDuration(next.Start.Sub(now)))
		lines = append(lines, fit("NEXT "+next.Start.In(loc).Format("Mon 15:04")+"  "+next.Title()+"  "+in, width-4))
	} else {
		lines = append(lines, styles.Muted.Render("Nothing else scheduled."))
	}

	border := styles.BorderIdle
	if len(current) > 0 {
		border = styles.BorderBusy
	}
	return border.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Current returns the events in progress at now.
func Current(events []storage.Event, now time.Time) []storage.Event {
	var out []storage.Event
	for _, ev := range storage.EventsBetween(events, now, now.Add(time.Nanosecond)) {
		if !ev.Start.After(now) && ev.End.After(now) {
			out = append(out, ev)
		}
	}
	return out
}

// Next returns the first event starting after now. events must be sorted by
// start.
func Next(events []storage.Event, now time.Time) (storage.Event, bool) {
	i := array.InsertionPoint(array.BSearchFunc(events, now, func(e storage.Event) time.Time { return e.Start },
		func(start, now time.Time) int {
			if start.After(now) {
				return 1
			}
			return -1
		}))
	if i == len(events) {
		return storage.Event{}, false
	}
	return events[i], true
}

// fit cuts a styled line to width visible columns.
func fit(line string, width int) string {
	if width <= 0 || lipgloss.Width(line) <= width {
		return line
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
