package components

import (
	"fmt"
	"time"

	"lazycal/layout"
	"lazycal/storage"
)

const monthDays = 42

// MonthOptions configures RenderMonth.
type MonthOptions struct {
	FirstWeekday time.Weekday
	Today        time.Time
	Width        int
	Height       int
	Color        func(calendar string) string
}

// RenderMonth draws six weeks around month's first day. Each day number is
// shaded by how much is scheduled that day, heatmap style, and lists as many
// events as the cell has room for.
func RenderMonth(events []storage.Event, month time.Time, opts MonthOptions) string {
	cellWidth := opts.Width / 7
	cellHeight := (opts.Height - 1) / 6
	if cellWidth < 3 || cellHeight < 1 {
		return ""
	}

	loc := month.Location()
	first := layout.StartOfMonth(month, loc)
	days := layout.Days(layout.StartOfWeek(first, opts.FirstWeekday, loc), monthDays, loc)
	end := days[len(days)-1].AddDate(0, 0, 1)

	perDay := make([][]storage.Event, monthDays)
	totals := make([]time.Duration, monthDays)
	var busiest time.Duration
	for _, ev := range storage.EventsBetween(events, days[0], end) {
		for _, piece := range layout.SliceByDay(ev.Start, ev.End, loc) {
			i := layout.DayIndex(days, piece.Start)
			if i == -1 {
				continue
			}
			perDay[i] = append(perDay[i], ev)
			totals[i] += piece.End.Sub(piece.Start)
			busiest = max(busiest, totals[i])
		}
	}

	c := newCanvas(cellWidth*7, 1+cellHeight*6)
	for i := 0; i < 7; i++ {
		c.text(i*cellWidth+1, 0, cellWidth-1, days[i].Format("Mon"), mutedColor)
	}

	today := layout.DayIndex(days, opts.Today)
	for i, day := range days {
		x := (i % 7) * cellWidth
		y := 1 + (i/7)*cellHeight

		fg := ""
		if day.Month() != first.Month() {
			fg = mutedColor
		}
		if i == today {
			fg = todayColor
		}
		c.fill(x, y, 3, 1, intensityColor(totals[i], busiest))
		c.text(x+1, y, 2, fmt.Sprintf("%2d", day.Day()), fg)

		lines := cellHeight - 1
		for j, ev := range perDay[i] {
			if j >= lines {
				break
			}
			if j == lines-1 && len(perDay[i]) > lines {
				c.text(x+1, y+1+j, cellWidth-1, fmt.Sprintf("+%d more", len(perDay[i])-j), mutedColor)
				break
			}
			c.text(x+1, y+1+j, cellWidth-1, ev.Title(), opts.Color(ev.Calendar()))
		}
	}
	return c.render()
}

// intensityColor buckets total relative to the busiest day.
func intensityColor(total, busiest time.Duration) string {
	intensity := 0.0
	if busiest > 0 {
		intensity = float64(total) / float64(busiest)
	}
	switch {
	case intensity == 0:
		return ""
	case intensity < 0.25:
		return "#1f3b2b"
	case intensity < 0.5:
		return "#2e5c3f"
	case intensity < 0.75:
		return "#3f7f55"
	default:
		return "#56a36d"
	}
}
