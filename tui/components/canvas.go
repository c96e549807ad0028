package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// cell is one terminal column. A wide rune occupies its own cell and marks
// the next one with r == 0.
type cell struct {
	r  rune
	fg string
	bg string
}

// canvas is a fixed grid of cells that the time grids draw into before
// styling. Drawing outside the grid is ignored.
type canvas struct {
	w, h  int
	cells [][]cell
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: max(w, 0), h: max(h, 0)}
	c.cells = make([][]cell, c.h)
	for y := range c.cells {
		c.cells[y] = make([]cell, c.w)
		for x := range c.cells[y] {
			c.cells[y][x].r = ' '
		}
	}
	return c
}

func (c *canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.w && y < c.h
}

// fill paints the background of a rectangle and clears its text.
func (c *canvas) fill(x, y, w, h int, bg string) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			if c.inside(col, row) {
				c.cells[row][col] = cell{r: ' ', bg: bg}
			}
		}
	}
}

// text writes s at (x, y), truncated to maxWidth columns. Backgrounds under
// the text are kept.
func (c *canvas) text(x, y, maxWidth int, s, fg string) {
	if maxWidth <= 0 || y < 0 || y >= c.h {
		return
	}
	s = runewidth.Truncate(s, maxWidth, "…")
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if !c.inside(col, y) || !c.inside(col+w-1, y) {
			break
		}
		c.cells[y][col].r = r
		c.cells[y][col].fg = fg
		if w == 2 {
			c.cells[y][col+1].r = 0
			c.cells[y][col+1].fg = fg
		}
		col += w
	}
}

// hline draws r across empty cells of row y from x to x+w.
func (c *canvas) hline(x, y, w int, r rune, fg string) {
	for col := x; col < x+w; col++ {
		if !c.inside(col, y) {
			continue
		}
		if cl := &c.cells[y][col]; cl.r == ' ' && cl.bg == "" {
			cl.r = r
			cl.fg = fg
		}
	}
}

// render styles runs of equally colored cells and joins the rows.
func (c *canvas) render() string {
	rows := make([]string, c.h)
	for y, line := range c.cells {
		var b strings.Builder
		var run strings.Builder
		var fg, bg string
		flush := func() {
			if run.Len() == 0 {
				return
			}
			b.WriteString(paint(run.String(), fg, bg))
			run.Reset()
		}
		for _, cl := range line {
			if cl.fg != fg || cl.bg != bg {
				flush()
				fg, bg = cl.fg, cl.bg
			}
			if cl.r != 0 {
				run.WriteRune(cl.r)
			}
		}
		flush()
		rows[y] = b.String()
	}
	return strings.Join(rows, "\n")
}

func paint(s, fg, bg string) string {
	if fg == "" && bg == "" {
		return s
	}
	style := lipgloss.NewStyle()
	if fg != "" {
		style = style.Foreground(lipgloss.Color(fg))
	}
	if bg != "" {
		style = style.Background(lipgloss.Color(bg))
	}
	return style.Render(s)
}
