// Package runlog persists run records and inspects driver log files. The
// launcher writes a record once per launch and never touches it again; all
// status is derived after the fact from the log file and the PID.
package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rtlaunch-io/rtlaunch/internal/config"
	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

// SaveRun writes a run record to runs/<id>.yaml.
func SaveRun(run *models.Run) error {
	if err := config.EnsureGlobalRunsDir(); err != nil {
		return fmt.Errorf("failed to ensure runs dir: %w", err)
	}

	dir, err := config.GlobalRunsDir()
	if err != nil {
		return err
	}
	return config.SaveYAML(filepath.Join(dir, run.RunID+".yaml"), run)
}

// LoadRun reads a run record by its exact ID.
func LoadRun(runID string) (*models.Run, error) {
	dir, err := config.GlobalRunsDir()
	if err != nil {
		return nil, err
	}

	var run models.Run
	if err := config.LoadYAML(filepath.Join(dir, runID+".yaml"), &run); err != nil {
		return nil, fmt.Errorf("run %s not found: %w", runID, err)
	}
	return &run, nil
}

// ListRuns reads all run records, newest first.
func ListRuns() ([]*models.Run, error) {
	dir, err := config.GlobalRunsDir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []*models.Run
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}

		var run models.Run
		if err := config.LoadYAML(filepath.Join(dir, e.Name()), &run); err != nil {
			continue
		}
		runs = append(runs, &run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].StartedAt > runs[j].StartedAt
	})

	return runs, nil
}

// FindRun resolves a possibly-abbreviated run ID. A prefix is accepted as
// long as it matches exactly one record.
func FindRun(id string) (*models.Run, error) {
	if run, err := LoadRun(id); err == nil {
		return run, nil
	}

	runs, err := ListRuns()
	if err != nil {
		return nil, err
	}

	var match *models.Run
	for _, run := range runs {
		if strings.HasPrefix(run.RunID, id) {
			if match != nil {
				return nil, fmt.Errorf("run ID %q is ambiguous", id)
			}
			match = run
		}
	}
	if match == nil {
		return nil, fmt.Errorf("no run matching %q", id)
	}
	return match, nil
}
