// Package launcher prepares the cluster environment and starts the external
// regression-test driver detached from the terminal.
package launcher

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

// Request carries everything needed to start one driver run. Build it with
// NewRequest so the invocation has been resolved against the matrix.
type Request struct {
	Invocation     models.Invocation
	Driver         string // resolved relative to WorkDir unless absolute
	WorkDir        string
	LogDir         string // empty = WorkDir
	LogPrefix      string
	Modules        []string
	ProfileScripts []string
}

// NewRequest resolves an invocation against the matrix and fills in the
// site's environment (modules, profile scripts, working directory).
func NewRequest(m *models.Matrix, inv models.Invocation) (Request, error) {
	resolved, err := m.Resolve(inv)
	if err != nil {
		return Request{}, err
	}

	site := m.Sites[resolved.Site]
	return Request{
		Invocation:     resolved,
		Driver:         m.Driver,
		WorkDir:        site.WorkDir,
		LogDir:         m.LogDir,
		LogPrefix:      m.LogPrefix,
		Modules:        site.Modules,
		ProfileScripts: site.ProfileScripts,
	}, nil
}

// DriverPath returns the absolute path of the driver executable.
func (r Request) DriverPath() string {
	if filepath.IsAbs(r.Driver) {
		return r.Driver
	}
	return filepath.Join(r.WorkDir, r.Driver)
}

// logDir returns the directory log files are written to.
func (r Request) logDir() string {
	if r.LogDir != "" {
		return r.LogDir
	}
	return r.WorkDir
}

// LogPath returns the full log path for a launch at time t.
func (r Request) LogPath(t time.Time) string {
	return filepath.Join(r.logDir(), LogFileName(r.LogPrefix, r.Invocation, t))
}

// CommandLine renders the full bash command the child will run: environment
// prelude, then exec of the driver. Exec replaces the shell so the recorded
// PID is the driver itself.
func (r Request) CommandLine() string {
	cmd := "exec " + shellQuote(r.DriverPath())
	for _, a := range DriverArgs(r.Invocation) {
		cmd += " " + shellQuote(a)
	}
	return ShellPrelude(r.ProfileScripts, r.Modules) + "; " + cmd
}

// Launch runs the preflight checks and, if they all pass, starts the driver
// detached: new session, no controlling terminal, stdout and stderr bound
// to the timestamped log file, stdin from /dev/null. It records the PID,
// releases the process handle and returns immediately; the child's fate is
// outside the launcher's responsibility.
func Launch(req Request) (*models.Run, error) {
	if err := Preflight(req); err != nil {
		return nil, err
	}

	now := time.Now()
	logPath := req.LogPath(now)

	// Truncates on a same-second timestamp collision.
	logFile, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file %s: %w", logPath, err)
	}
	defer logFile.Close()

	devNull, err := os.Open(os.DevNull)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	cmd := newDriverCmd(req, logFile, devNull)

	log.Printf("[launch] starting driver, logging to %s", logPath)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start driver: %w", err)
	}

	pid := cmd.Process.Pid
	// Detach: no Wait, no exit status. The child outlives the launcher.
	if err := cmd.Process.Release(); err != nil {
		return nil, fmt.Errorf("failed to release driver process: %w", err)
	}

	log.Printf("[launch] driver detached (pid %d)", pid)

	return &models.Run{
		RunID:      uuid.NewString(),
		Invocation: req.Invocation,
		PID:        pid,
		WorkDir:    req.WorkDir,
		LogPath:    logPath,
		StartedAt:  now.UTC().Format(time.RFC3339),
	}, nil
}

// newDriverCmd builds the detached driver command. The new session (setsid)
// severs the controlling terminal, so the child survives shell exit and
// terminal hangup.
func newDriverCmd(req Request, logFile, stdin *os.File) *exec.Cmd {
	cmd := exec.Command("bash", "-lc", req.CommandLine())
	cmd.Dir = req.WorkDir
	cmd.Stdin = stdin
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd
}

// Preflight verifies the environment the driver needs, tracing each step.
// The first failure aborts the launch; nothing is spawned.
func Preflight(req Request) error {
	for _, script := range req.ProfileScripts {
		log.Printf("[preflight] profile script %s", script)
		if _, err := os.Stat(script); err != nil {
			return fmt.Errorf("profile script %s: %w", script, err)
		}
	}

	log.Printf("[preflight] working directory %s", req.WorkDir)
	info, err := os.Stat(req.WorkDir)
	if err != nil {
		return fmt.Errorf("working directory %s: %w", req.WorkDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("working directory %s is not a directory", req.WorkDir)
	}

	driver := req.DriverPath()
	log.Printf("[preflight] driver %s", driver)
	if _, err := os.Stat(driver); err != nil {
		return fmt.Errorf("driver %s: %w", driver, err)
	}

	if dir := req.logDir(); dir != req.WorkDir {
		log.Printf("[preflight] log directory %s", dir)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("log directory %s: %w", dir, err)
		}
	}

	// Module loads only resolve inside a login shell, so they are verified
	// by running the prelude itself.
	if len(req.Modules) > 0 || len(req.ProfileScripts) > 0 {
		prelude := ShellPrelude(req.ProfileScripts, req.Modules)
		log.Printf("[preflight] %s", prelude)
		check := exec.Command("bash", "-lc", prelude)
		if out, err := check.CombinedOutput(); err != nil {
			return fmt.Errorf("environment check failed: %w\n%s", err, strings.TrimSpace(string(out)))
		}
	}

	return nil
}
