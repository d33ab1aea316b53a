package models

import "fmt"

// Run records a single launch of the regression-test driver. One YAML file
// per run lives under ~/.rtlaunch/runs/. The record is written once, right
// after the driver detaches; the launcher never updates it afterwards.
type Run struct {
	RunID      string     `yaml:"run_id"`
	Invocation Invocation `yaml:"invocation"`
	PID        int        `yaml:"pid"`
	WorkDir    string     `yaml:"work_dir"`
	LogPath    string     `yaml:"log_path"`
	StartedAt  string     `yaml:"started_at"`
}

// Descriptor renders the run parameters in the short form used in list
// output, e.g. "dtc/dtc-develop @ cheyenne/intel".
func (r *Run) Descriptor() string {
	return fmt.Sprintf("%s/%s @ %s/%s",
		r.Invocation.Fork, r.Invocation.Branch, r.Invocation.Site, r.Invocation.Compiler)
}
