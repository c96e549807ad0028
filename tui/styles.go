package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorMuted  = lipgloss.Color("#888888")
	colorAccent = lipgloss.Color("#7aa2f7")
	colorNow    = lipgloss.Color("#f7768e")

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	BorderIdle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)

	BorderBusy = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	HeroTimeStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	HeroTitleStyle = lipgloss.NewStyle().Bold(true)
	HeroMutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	TabActive   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1a1b26")).Background(colorAccent).Padding(0, 1)
	TabInactive = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	AgendaDayStyle   = lipgloss.NewStyle().Bold(true)
	AgendaTimeStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	ChartLabelStyle  = lipgloss.NewStyle()
	ChartAmountStyle = lipgloss.NewStyle().Foreground(colorMuted)

	FooterStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a"))
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorNow)
)

// FormatDurationShort formats a duration as "1h05m", or "45m" under an hour.
func FormatDurationShort(d time.Duration) string {
	minutes := int(d.Minutes())
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}
