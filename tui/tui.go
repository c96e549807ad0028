// Package tui is the interactive calendar: month, week and day grids with
// a sidebar of what is on now and where the time goes.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Launch runs the terminal UI until the user quits.
func Launch(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
