// Package tui implements the interactive run browser for rtlaunch.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run launches the run browser.
func Run() error {
	p := tea.NewProgram(
		NewModel(),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
