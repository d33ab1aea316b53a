package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rtlaunch-io/rtlaunch/internal/runlog"
)

// outcomeLabel renders a run outcome with its color.
func outcomeLabel(outcome runlog.Outcome) string {
	label := "(" + string(outcome) + ")"
	switch outcome {
	case runlog.OutcomePassed:
		return runPassedStyle.Render(label)
	case runlog.OutcomeFailed:
		return runFailedStyle.Render(label)
	case runlog.OutcomeRunning:
		return runRunningStyle.Render(label)
	default:
		return runUnknownStyle.Render(label)
	}
}

// renderStatusBar renders the bottom key-hint bar.
func (m *Model) renderStatusBar() string {
	var bindings []key.Binding
	var right string

	switch m.state {
	case stateLogView:
		bindings = []key.Binding{logViewKeys.Back, logViewKeys.PageUp, logViewKeys.Bottom, globalKeys.Quit}
		right = m.logViewer.ScrollPercent()
	default:
		bindings = []key.Binding{runListKeys.Up, runListKeys.Enter, globalKeys.Refresh, globalKeys.Quit}
	}

	var hints []string
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, keyStyle.Render(h.Key)+" "+hintStyle.Render(h.Desc))
	}
	left := " " + strings.Join(hints, "  ")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if gap < 1 {
		gap = 1
	}

	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
