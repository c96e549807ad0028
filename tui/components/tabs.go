package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ViewMode selects the grid shown in the main area.
type ViewMode int

const (
	ViewMonth ViewMode = iota
	ViewWeek
	ViewDay
)

var viewLabels = []string{"1 Month", "2 Week", "3 Day"}

func (v ViewMode) String() string {
	if v < 0 || int(v) >= len(viewLabels) {
		return "?"
	}
	return strings.ToLower(viewLabels[v][2:])
}

// RenderTabs renders the view switcher with title on the right.
func RenderTabs(active ViewMode, title string, width int, activeStyle, inactiveStyle lipgloss.Style) string {
	var tabs []string
	for i, label := range viewLabels {
		if ViewMode(i) == active {
			tabs = append(tabs, activeStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveStyle.Render(label))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(title)-1, 1)
	return left + strings.Repeat(" ", gap) + title
}
