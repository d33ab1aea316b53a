package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// LogViewer renders one run's log in a scrolling viewport, appending
// followed output as it arrives.
type LogViewer struct {
	item     runItem
	viewport viewport.Model
	content  strings.Builder
	width    int
	height   int
}

// NewLogViewer creates an empty log viewer.
func NewLogViewer() *LogViewer {
	return &LogViewer{
		viewport: viewport.New(80, 24),
	}
}

// SetSize updates dimensions. The header occupies three lines.
func (l *LogViewer) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.viewport.Width = width
	vpHeight := height - 3
	if vpHeight < 1 {
		vpHeight = 1
	}
	l.viewport.Height = vpHeight
}

// Open loads a log's current content and jumps to the bottom.
func (l *LogViewer) Open(item runItem, content string) {
	l.item = item
	l.content.Reset()
	l.content.WriteString(sanitize(content))
	l.viewport.SetContent(l.content.String())
	l.viewport.GotoBottom()
}

// Append adds followed output, keeping the viewport pinned to the bottom
// when it already was.
func (l *LogViewer) Append(chunk []byte) {
	atBottom := l.viewport.AtBottom()
	l.content.WriteString(sanitize(string(chunk)))
	l.viewport.SetContent(l.content.String())
	if atBottom {
		l.viewport.GotoBottom()
	}
}

// LineUp scrolls up one line.
func (l *LogViewer) LineUp() { l.viewport.LineUp(1) }

// LineDown scrolls down one line.
func (l *LogViewer) LineDown() { l.viewport.LineDown(1) }

// PageUp scrolls up half a page.
func (l *LogViewer) PageUp() { l.viewport.HalfViewUp() }

// PageDown scrolls down half a page.
func (l *LogViewer) PageDown() { l.viewport.HalfViewDown() }

// GotoBottom jumps to the end of the log.
func (l *LogViewer) GotoBottom() { l.viewport.GotoBottom() }

// View renders the header and viewport.
func (l *LogViewer) View() string {
	header := headerStyle.Render(l.item.run.Descriptor()) + "  " + outcomeLabel(l.item.outcome)
	pathLine := lipgloss.NewStyle().Foreground(colorDim).Render(l.item.run.LogPath)
	rule := lipgloss.NewStyle().Foreground(colorDim).Render(strings.Repeat("─", l.width))

	return header + "\n" + pathLine + "\n" + rule + "\n" + l.viewport.View()
}

// ScrollPercent reports the viewport position for the status bar.
func (l *LogViewer) ScrollPercent() string {
	return fmt.Sprintf("%3.f%%", l.viewport.ScrollPercent()*100)
}

// sanitize strips terminal escape sequences the driver may emit; the log is
// rendered as plain text inside the viewport.
func sanitize(s string) string {
	return strings.ReplaceAll(ansi.Strip(s), "\r", "")
}
