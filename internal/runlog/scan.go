package runlog

import (
	"bufio"
	"os"
	"strings"
	"syscall"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

// SuccessMarker is the line the driver prints when the full suite passes.
const SuccessMarker = "REGRESSION TEST WAS SUCCESSFUL"

// Outcome is the point-in-time state of a run, derived entirely from the
// log file and the recorded PID. The launcher itself never reports one.
type Outcome string

// Run outcomes.
const (
	OutcomeRunning Outcome = "running"
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeUnknown Outcome = "unknown"
)

// Scan inspects a run's log for the driver's success marker and probes the
// recorded PID. It never blocks on the driver.
func Scan(run *models.Run) Outcome {
	found, err := logContains(run.LogPath, SuccessMarker)
	if err != nil {
		return OutcomeUnknown
	}
	if found {
		return OutcomePassed
	}
	if pidAlive(run.PID) {
		return OutcomeRunning
	}
	return OutcomeFailed
}

// logContains reports whether any line of the file contains marker.
func logContains(path, marker string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	// Driver logs can carry very long build lines.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), marker) {
			return true, nil
		}
	}
	return false, scanner.Err()
}

// pidAlive probes a PID with signal 0. EPERM still means the process
// exists, just owned by someone else.
func pidAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	err := syscall.Kill(pid, 0)
	return err == nil || err == syscall.EPERM
}
