package tui

import (
	"time"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
	"github.com/rtlaunch-io/rtlaunch/internal/runlog"
)

// runItem pairs a run record with its scanned outcome.
type runItem struct {
	run     *models.Run
	outcome runlog.Outcome
}

// runsLoadedMsg carries a fresh run list.
type runsLoadedMsg struct {
	items []runItem
}

// logOpenedMsg carries a log's current content when the detail view opens.
type logOpenedMsg struct {
	item    runItem
	content string
	size    int64
}

// logChunkMsg carries bytes appended to the followed log.
type logChunkMsg struct {
	chunk []byte
}

// followStoppedMsg signals that the follow channel closed.
type followStoppedMsg struct{}

// refreshTickMsg drives periodic outcome rescans of the run list.
type refreshTickMsg time.Time

// errMsg carries a background error to the model.
type errMsg struct {
	err error
}
