package components

import (
	"time"

	"lazycal/layout"
	"lazycal/storage"
)

const (
	gutterWidth = 6
	bannerMax   = 2
	longEvent   = 24 * time.Hour

	titleColor = "#1a1b26"
	mutedColor = "#888888"
	nowColor   = "#f7768e"
	todayColor = "#7aa2f7"
)

// GridOptions configures RenderTimeGrid.
type GridOptions struct {
	StartHour int
	EndHour   int
	Width     int
	Height    int
	Now       time.Time
	Color     func(calendar string) string
}

// RenderTimeGrid draws one column per day with an hour gutter on the left.
// events must be sorted by start. Events of a day or longer are drawn as bars
// in a strip above the hours instead of filling whole columns.
func RenderTimeGrid(events []storage.Event, days []time.Time, opts GridOptions) string {
	if len(days) == 0 || opts.Width <= gutterWidth {
		return ""
	}
	colWidth := (opts.Width - gutterWidth) / len(days)
	if colWidth < 2 {
		return ""
	}

	weekFrom := days[0]
	weekTo := days[len(days)-1].AddDate(0, 0, 1)
	var long []storage.Event
	for _, ev := range storage.EventsBetween(events, weekFrom, weekTo) {
		if ev.Duration() >= longEvent {
			long = append(long, ev)
		}
	}
	banner := min(len(long), bannerMax)

	rows := max(opts.Height-1-banner, 1)
	top := 1 + banner
	c := newCanvas(gutterWidth+colWidth*len(days), top+rows)

	drawBanner(c, long[:banner], weekFrom, weekTo, colWidth*len(days), opts.Color)
	drawHours(c, days[0], opts, top, rows)

	for i, day := range days {
		x := gutterWidth + i*colWidth
		label := day.Format("Mon 02")
		fg := ""
		if layout.StartOfDay(opts.Now, day.Location()).Equal(day) {
			fg = todayColor
		}
		c.text(x+1, 0, colWidth-1, label, fg)
		for y := 0; y < rows; y++ {
			c.text(x, top+y, 1, "│", mutedColor)
		}
		drawDay(c, events, day, x+1, top, colWidth-1, rows, opts)
	}
	return c.render()
}

func drawHours(c *canvas, day time.Time, opts GridOptions, top, rows int) {
	from := day.Add(time.Duration(opts.StartHour) * time.Hour)
	to := day.Add(time.Duration(opts.EndHour) * time.Hour)
	last := -1
	for h := opts.StartHour; h < opts.EndHour; h++ {
		t := day.Add(time.Duration(h) * time.Hour)
		row := layout.ToCells(layout.TopPercentByTime(t, from, to), rows)
		if row == last || row >= rows {
			continue
		}
		c.text(0, top+row, gutterWidth-1, t.Format("15:04"), mutedColor)
		last = row
	}
}

func drawBanner(c *canvas, long []storage.Event, from, to time.Time, width int, color func(string) string) {
	for j, ev := range long {
		pos := layout.LeftWidthByTime(ev.Start, ev.End, from, to)
		left := layout.ToCells(pos.Left, width)
		w := max(layout.ToCells(pos.Left+pos.Width, width)-left, 1)
		c.fill(gutterWidth+left, 1+j, w, 1, color(ev.Calendar()))
		c.text(gutterWidth+left, 1+j, w, ev.Title(), titleColor)
	}
	if len(long) > 0 {
		c.text(0, 1, gutterWidth-1, "all", mutedColor)
	}
}

func drawDay(c *canvas, events []storage.Event, day time.Time, x, top, width, rows int, opts GridOptions) {
	from := day.Add(time.Duration(opts.StartHour) * time.Hour)
	to := day.Add(time.Duration(opts.EndHour) * time.Hour)

	var shown []storage.Event
	var spans []layout.Span
	for _, ev := range storage.EventsBetween(events, from, to) {
		if ev.Duration() >= longEvent {
			continue
		}
		piece, ok := layout.PieceOn(ev.Start, ev.End, day)
		if !ok {
			piece = layout.Range{Start: ev.Start, End: ev.End}
		}
		shown = append(shown, ev)
		spans = append(spans, layout.Span{Start: piece.Start, End: piece.End})
	}

	for i, pl := range layout.Arrange(spans, from, to) {
		ev := shown[i]
		first, count := layout.CellSpan(layout.VerticalPosition{Top: pl.Top, Height: pl.Height}, rows)
		left := layout.ToCells(pl.Left, width)
		w := layout.ToCells(pl.Left+pl.Width, width) - left
		if w > 1 && pl.Column+1 < pl.Columns {
			w--
		}
		w = max(w, 1)

		y := top + first
		c.fill(x+left, y, w, count, opts.Color(ev.Calendar()))
		c.text(x+left, y, w, ev.Title(), titleColor)
		if count > 1 {
			loc := day.Location()
			c.text(x+left, y+1, w, ev.Start.In(loc).Format("15:04")+"-"+ev.End.In(loc).Format("15:04"), titleColor)
		}
	}

	if !opts.Now.Before(from) && opts.Now.Before(to) {
		row := min(layout.ToCells(layout.TopPercentByTime(opts.Now, from, to), rows), rows-1)
		c.hline(x, top+row, width, '─', nowColor)
	}
}
