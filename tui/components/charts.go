package components

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"lazycal/array"
)

const labelWidth = 14

// ChartItem is one bar of RenderCalendarChart.
type ChartItem struct {
	Name     string
	Duration time.Duration
	Percent  float64
}

// ChartItems turns totals into bars scaled to the largest, longest first.
func ChartItems(totals map[string]time.Duration) []ChartItem {
	type keyed struct {
		fold string
		item ChartItem
	}
	var sorted []keyed
	var longest time.Duration
	for name, d := range totals {
		sorted = append(sorted, keyed{fold: array.Fold(name), item: ChartItem{Name: name, Duration: d}})
		longest = max(longest, d)
	}
	longestFirst := array.Reverse[time.Duration](array.NumAsc[time.Duration])
	slices.SortFunc(sorted, func(a, b keyed) int {
		if c := longestFirst(a.item.Duration, b.item.Duration); c != 0 {
			return c
		}
		return array.StrAsc(a.fold, b.fold)
	})

	var items []ChartItem
	for _, k := range sorted {
		it := k.item
		if longest > 0 {
			it.Percent = float64(it.Duration) / float64(longest)
		}
		items = append(items, it)
	}
	return items
}

// RenderCalendarChart draws a horizontal bar per calendar.
func RenderCalendarChart(totals map[string]time.Duration, width, height int, labelStyle, amountStyle, boxStyle lipgloss.Style, color func(string) string, formatDuration func(time.Duration) string) string {
	if len(totals) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(lipgloss.Color(mutedColor)).Render("Nothing scheduled."))
	}

	items := ChartItems(totals)
	if maxLines := height - 2; len(items) > maxLines {
		items = items[:max(maxLines, 0)]
	}

	barWidth := max(width-4-labelWidth-8, 1)
	var lines []string
	for _, it := range items {
		filled := min(max(int(float64(barWidth)*it.Percent), 0), barWidth)
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color(it.Name))).Render(strings.Repeat("█", filled))

		name := runewidth.FillRight(runewidth.Truncate(it.Name, labelWidth-1, "…"), labelWidth)
		lines = append(lines, labelStyle.Render(name)+bar+" "+amountStyle.Render(formatDuration(it.Duration)))
	}
	return boxStyle.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}
