package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RunList renders the recorded runs with their scanned outcomes.
type RunList struct {
	items         []runItem
	selectedIndex int
	scrollOffset  int
	width         int
	height        int
	loaded        bool
}

// NewRunList creates an empty run list.
func NewRunList() *RunList {
	return &RunList{}
}

// SetSize updates dimensions.
func (r *RunList) SetSize(width, height int) {
	r.width = width
	r.height = height
}

// SetItems replaces the run list, clamping the cursor.
func (r *RunList) SetItems(items []runItem) {
	r.items = items
	r.loaded = true
	if r.selectedIndex >= len(items) {
		r.selectedIndex = len(items) - 1
	}
	if r.selectedIndex < 0 {
		r.selectedIndex = 0
	}
}

// Selected returns the run under the cursor, or false when the list is empty.
func (r *RunList) Selected() (runItem, bool) {
	if r.selectedIndex < 0 || r.selectedIndex >= len(r.items) {
		return runItem{}, false
	}
	return r.items[r.selectedIndex], true
}

// MoveUp moves the cursor up.
func (r *RunList) MoveUp() {
	if r.selectedIndex > 0 {
		r.selectedIndex--
		r.ensureVisible()
	}
}

// MoveDown moves the cursor down.
func (r *RunList) MoveDown() {
	if r.selectedIndex < len(r.items)-1 {
		r.selectedIndex++
		r.ensureVisible()
	}
}

func (r *RunList) ensureVisible() {
	if r.selectedIndex < r.scrollOffset {
		r.scrollOffset = r.selectedIndex
	}
	if r.selectedIndex >= r.scrollOffset+r.height {
		r.scrollOffset = r.selectedIndex - r.height + 1
	}
}

// View renders the run list.
func (r *RunList) View() string {
	if !r.loaded {
		return lipgloss.NewStyle().Foreground(colorDim).Width(r.width).Align(lipgloss.Center).
			Render("\nLoading runs...")
	}

	if len(r.items) == 0 {
		return lipgloss.NewStyle().Foreground(colorDim).Width(r.width).Align(lipgloss.Center).
			Render("\nNo runs recorded. Start one with 'rtlaunch launch'.")
	}

	var lines []string
	end := r.scrollOffset + r.height
	if end > len(r.items) {
		end = len(r.items)
	}

	for i := r.scrollOffset; i < end; i++ {
		line := r.formatItem(r.items[i])
		if i == r.selectedIndex {
			line = selectedItemStyle.Width(r.width).Render(line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}

	// Scroll indicators
	if r.scrollOffset > 0 {
		lines = append([]string{lipgloss.NewStyle().Foreground(colorDim).Render("  ▲ more")}, lines...)
	}
	if end < len(r.items) {
		lines = append(lines, lipgloss.NewStyle().Foreground(colorDim).Render("  ▼ more"))
	}

	return strings.Join(lines, "\n")
}

func (r *RunList) formatItem(item runItem) string {
	startTime := item.run.StartedAt
	if len(startTime) >= 16 {
		startTime = startTime[:10] + " " + startTime[11:16]
	}

	return fmt.Sprintf("%s — %s %s",
		lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render(item.run.Descriptor()),
		lipgloss.NewStyle().Foreground(colorDim).Render(startTime),
		outcomeLabel(item.outcome),
	)
}
