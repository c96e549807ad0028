package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderLoadBar renders how much of window is scheduled.
func RenderLoadBar(scheduled, window time.Duration, label string, width int, style lipgloss.Style, formatDuration func(time.Duration) string) string {
	if window <= 0 {
		return label + ": N/A"
	}

	percent := min(float64(scheduled)/float64(window), 1.0)
	barWidth := max(width-labelWidth-12, 10)
	filled := int(float64(barWidth) * percent)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	return fmt.Sprintf("%-6s %s %3d%% %s",
		label,
		style.Render(bar),
		int(percent*100),
		formatDuration(scheduled),
	)
}

// LoadStyle colors a load bar from calm to crowded.
func LoadStyle(scheduled, window time.Duration) lipgloss.Style {
	style := lipgloss.NewStyle()
	if window <= 0 {
		return style
	}
	switch p := float64(scheduled) / float64(window); {
	case p >= 0.75:
		return style.Foreground(lipgloss.Color(nowColor))
	case p >= 0.4:
		return style.Foreground(lipgloss.Color("#e0af68"))
	default:
		return style.Foreground(lipgloss.Color("#9ece6a"))
	}
}
