package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rtlaunch-io/rtlaunch/internal/runlog"
)

// refreshInterval drives periodic rescans of run outcomes.
const refreshInterval = 5 * time.Second

type viewState int

const (
	stateRunList viewState = iota
	stateLogView
)

// Model is the root TUI model: a run list and a log detail view with live
// follow. Strictly read-only; it never starts or stops driver processes.
type Model struct {
	state     viewState
	runList   *RunList
	logViewer *LogViewer

	followCancel context.CancelFunc
	followCh     <-chan []byte

	width  int
	height int
	err    error
}

// NewModel creates the root model.
func NewModel() *Model {
	return &Model{
		runList:   NewRunList(),
		logViewer: NewLogViewer(),
	}
}

// Init loads the run list and starts the refresh ticker.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(loadRuns, refreshTick())
}

// loadRuns reads all run records and scans their outcomes.
func loadRuns() tea.Msg {
	runs, err := runlog.ListRuns()
	if err != nil {
		return errMsg{err}
	}

	items := make([]runItem, 0, len(runs))
	for _, run := range runs {
		items = append(items, runItem{run: run, outcome: runlog.Scan(run)})
	}
	return runsLoadedMsg{items}
}

// openLog reads a run's log for the detail view.
func openLog(item runItem) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(item.run.LogPath)
		if err != nil {
			return errMsg{err}
		}
		return logOpenedMsg{item: item, content: string(data), size: int64(len(data))}
	}
}

// waitForChunk delivers the next followed chunk.
func waitForChunk(ch <-chan []byte) tea.Cmd {
	return func() tea.Msg {
		chunk, ok := <-ch
		if !ok {
			return followStoppedMsg{}
		}
		return logChunkMsg{chunk}
	}
}

func refreshTick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// One line each for the title and the status bar.
		m.runList.SetSize(msg.Width, msg.Height-2)
		m.logViewer.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case runsLoadedMsg:
		m.runList.SetItems(msg.items)
		return m, nil

	case logOpenedMsg:
		m.state = stateLogView
		m.logViewer.Open(msg.item, msg.content)
		return m, m.startFollow(msg.item.run.LogPath, msg.size)

	case logChunkMsg:
		m.logViewer.Append(msg.chunk)
		if m.followCh != nil {
			return m, waitForChunk(m.followCh)
		}
		return m, nil

	case followStoppedMsg:
		m.followCh = nil
		return m, nil

	case refreshTickMsg:
		if m.state == stateRunList {
			return m, tea.Batch(loadRuns, refreshTick())
		}
		return m, refreshTick()

	case errMsg:
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// startFollow begins streaming appends to the open log.
func (m *Model) startFollow(path string, offset int64) tea.Cmd {
	m.stopFollow()

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := runlog.Follow(ctx, path, offset)
	if err != nil {
		cancel()
		m.err = err
		return nil
	}

	m.followCancel = cancel
	m.followCh = ch
	return waitForChunk(ch)
}

// stopFollow cancels any active follow.
func (m *Model) stopFollow() {
	if m.followCancel != nil {
		m.followCancel()
		m.followCancel = nil
	}
	m.followCh = nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keyMatches(msg, globalKeys.Quit) {
		m.stopFollow()
		return m, tea.Quit
	}

	switch m.state {
	case stateLogView:
		switch {
		case keyMatches(msg, logViewKeys.Back):
			m.stopFollow()
			m.state = stateRunList
			return m, loadRuns
		case keyMatches(msg, logViewKeys.PageUp):
			m.logViewer.PageUp()
		case keyMatches(msg, logViewKeys.PageDown):
			m.logViewer.PageDown()
		case keyMatches(msg, logViewKeys.Bottom):
			m.logViewer.GotoBottom()
		case keyMatches(msg, runListKeys.Up):
			m.logViewer.LineUp()
		case keyMatches(msg, runListKeys.Down):
			m.logViewer.LineDown()
		}

	default:
		switch {
		case keyMatches(msg, runListKeys.Up):
			m.runList.MoveUp()
		case keyMatches(msg, runListKeys.Down):
			m.runList.MoveDown()
		case keyMatches(msg, globalKeys.Refresh):
			return m, loadRuns
		case keyMatches(msg, runListKeys.Enter):
			if item, ok := m.runList.Selected(); ok {
				return m, openLog(item)
			}
		}
	}

	return m, nil
}

// View renders the full screen: title, content, status bar.
func (m *Model) View() string {
	title := headerStyle.Render(" rtlaunch — regression test runs")
	if m.err != nil {
		title += "  " + runFailedStyle.Render(m.err.Error())
	}

	var content string
	switch m.state {
	case stateLogView:
		content = m.logViewer.View()
	default:
		content = m.runList.View()
	}

	return title + "\n" + content + "\n" + m.renderStatusBar()
}
