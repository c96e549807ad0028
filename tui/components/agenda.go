package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lazycal/storage"
)

// AgendaStyles are the styles RenderAgenda draws with.
type AgendaStyles struct {
	Day  lipgloss.Style
	Time lipgloss.Style
	Box  lipgloss.Style
}

// RenderAgenda lists the events of [from, to) grouped by day, with dot
// leaders up to each duration.
func RenderAgenda(events []storage.Event, from, to time.Time, width, height int, styles AgendaStyles, color func(string) string, formatDuration func(time.Duration) string) string {
	inner := width - 4
	maxLines := height - 2

	var lines []string
	for day := from; day.Before(to) && len(lines) < maxLines; day = day.AddDate(0, 0, 1) {
		next := day.AddDate(0, 0, 1)
		dayEvents := storage.EventsBetween(events, day, next)
		if len(dayEvents) == 0 {
			continue
		}
		lines = append(lines, "> "+styles.Day.Render(day.Format("Mon Jan 2")))

		for _, ev := range dayEvents {
			if len(lines) >= maxLines {
				break
			}
			span := ev.Start.In(day.Location()).Format("15:04") + "-" + ev.End.In(day.Location()).Format("15:04")
			dur := formatDuration(storage.ClampDuration(ev, day, next))

			room := inner - len(span) - len(dur) - 6
			title := runewidth.Truncate(ev.Title(), max(room, 1), "…")
			dots := strings.Repeat(".", max(0, room-runewidth.StringWidth(title)))

			titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color(ev.Calendar())))
			lines = append(lines, "  "+styles.Time.Render(span)+" "+titleStyle.Render(title)+" "+dots+" "+styles.Time.Render(dur))
		}
	}

	if len(lines) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor)).Render("No events in this period."))
	}
	return styles.Box.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}
