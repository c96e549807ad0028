package tui

import (
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"

	"lazycal/layout"
	"lazycal/storage"
	"lazycal/tui/components"
)

const (
	minWidth  = 80
	minHeight = 24
	loadLines = 2
)

// renderMainView renders the main application view.
func renderMainView(m Model) string {
	width := max(m.width, minWidth)
	height := max(m.height, minHeight)
	loc := m.cursor.Location()
	events := m.visibleEvents()

	hero := components.RenderHero(events, m.now, width, components.HeroStyles{
		BorderIdle: BorderIdle,
		BorderBusy: BorderBusy,
		Time:       HeroTimeStyle,
		Title:      HeroTitleStyle,
		Muted:      HeroMutedStyle,
	}, FormatDurationShort)

	from, to := Period(m.view, m.cursor, m.firstWeekday)
	tabs := components.RenderTabs(m.view, PeriodTitle(m.view, from, to), width, TabActive, TabInactive)

	mainHeight := max(height-lipgloss.Height(hero)-lipgloss.Height(tabs)-2, 8)
	leftWidth := width * 65 / 100
	rightWidth := width - leftWidth - 1

	grid := components.GridOptions{
		StartHour: m.cfg.DayView.StartHour,
		EndHour:   m.cfg.DayView.EndHour,
		Width:     leftWidth,
		Height:    mainHeight,
		Now:       m.now,
		Color:     m.cfg.CalendarColor,
	}

	var main string
	switch m.view {
	case components.ViewMonth:
		main = components.RenderMonth(events, from, components.MonthOptions{
			FirstWeekday: m.firstWeekday,
			Today:        m.now,
			Width:        leftWidth,
			Height:       mainHeight,
			Color:        m.cfg.CalendarColor,
		})
	case components.ViewWeek:
		main = components.RenderTimeGrid(events, layout.Days(from, 7, loc), grid)
	default:
		main = components.RenderTimeGrid(events, []time.Time{from}, grid)
	}
	main = lipgloss.NewStyle().Width(leftWidth).Height(mainHeight).Render(main)

	sidebar := renderSidebar(m, events, from, to, rightWidth, mainHeight)
	contentRow := lipgloss.JoinHorizontal(lipgloss.Top, main, " ", sidebar)

	var messageLine string
	if m.message != "" {
		msgStyle := SuccessStyle
		if m.messageError {
			msgStyle = ErrorStyle
		}
		messageLine = lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Top, msgStyle.MaxWidth(width).Render(m.message))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		hero,
		tabs,
		contentRow,
		messageLine,
		renderFooter(width),
	)
}

// renderSidebar stacks the load bars, the agenda of the period and the time
// per calendar.
func renderSidebar(m Model, events []storage.Event, from, to time.Time, width, height int) string {
	dayFrom, dayTo := m.cfg.HourWindow(m.now)
	todayScheduled := Scheduled(events, dayFrom, dayTo)
	periodScheduled := Scheduled(events, from, to)
	periodWindow := time.Duration(daysIn(from, to)) * dayTo.Sub(dayFrom)

	barWidth := width - 4
	load := BoxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left,
		components.RenderLoadBar(todayScheduled, dayTo.Sub(dayFrom), "Today", barWidth,
			components.LoadStyle(todayScheduled, dayTo.Sub(dayFrom)), FormatDurationShort),
		components.RenderLoadBar(periodScheduled, periodWindow, "Shown", barWidth,
			components.LoadStyle(periodScheduled, periodWindow), FormatDurationShort),
	))

	rest := max(height-loadLines-2, 6)
	chartHeight := rest / 2
	agendaHeight := rest - chartHeight

	agenda := components.RenderAgenda(events, from, to, width, agendaHeight, components.AgendaStyles{
		Day:  AgendaDayStyle,
		Time: AgendaTimeStyle,
		Box:  BoxStyle,
	}, m.cfg.CalendarColor, FormatDurationShort)

	chart := components.RenderCalendarChart(CalendarTotals(events, from, to), width, chartHeight,
		ChartLabelStyle, ChartAmountStyle, BoxStyle, m.cfg.CalendarColor, FormatDurationShort)

	return lipgloss.JoinVertical(lipgloss.Left, load, agenda, chart)
}

// daysIn counts calendar days in [from, to), tolerating DST shifts.
func daysIn(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// renderFooter renders the footer with help text.
func renderFooter(width int) string {
	helpLine := "[1-3] Views  [h/l] Move  [t] Today  [c/v/a] Calendars  [r] Reload  [q] Quit"
	return FooterStyle.Width(width).Render(helpLine)
}
