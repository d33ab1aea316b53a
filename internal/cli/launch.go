package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rtlaunch-io/rtlaunch/internal/config"
	"github.com/rtlaunch-io/rtlaunch/internal/launcher"
	"github.com/rtlaunch-io/rtlaunch/internal/models"
	"github.com/rtlaunch-io/rtlaunch/internal/runlog"
)

var (
	launchFork     string
	launchBranch   string
	launchSite     string
	launchCompiler string
	launchRTConfig string
	launchProject  string
	launchEmail    string
	launchDryRun   bool
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Start the regression-test driver detached from the terminal",
	Long: `Start the regression-test driver for a fork/branch/site/compiler
combination from the configured matrix.

The launcher verifies profile scripts, module loads and the working
directory, then starts the driver in its own session with stdout and
stderr redirected to a timestamped log file. It returns immediately and
never reports the driver's exit status.`,
	RunE: runLaunch,
}

func init() {
	launchCmd.Flags().StringVarP(&launchFork, "fork", "f", "", "fork to test (default from settings)")
	launchCmd.Flags().StringVarP(&launchBranch, "branch", "b", "", "branch to test")
	launchCmd.Flags().StringVarP(&launchSite, "site", "s", "", "site/cluster to run on (default from settings)")
	launchCmd.Flags().StringVarP(&launchCompiler, "compiler", "c", "", "compiler toolchain (default per site)")
	launchCmd.Flags().StringVarP(&launchRTConfig, "rtconfig", "r", "", "regression-test config file (default per site and compiler)")
	launchCmd.Flags().StringVarP(&launchProject, "project", "p", "", "accounting project (default per site)")
	launchCmd.Flags().StringVarP(&launchEmail, "email", "e", "", "completion-email recipient passed to the driver (default from settings)")
	launchCmd.Flags().BoolVar(&launchDryRun, "dry-run", false, "print the composed command and log name without launching")
	_ = launchCmd.MarkFlagRequired("branch")
}

func runLaunch(cmd *cobra.Command, args []string) error {
	matrix, err := config.LoadMatrix()
	if err != nil {
		return fmt.Errorf("failed to load matrix: %w", err)
	}
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	fork := launchFork
	if fork == "" {
		fork = settings.Defaults.Fork
	}
	site := launchSite
	if site == "" {
		site = settings.Defaults.Site
	}
	email := launchEmail
	if email == "" && settings.Notify.Enabled {
		email = settings.Notify.Email
	}

	req, err := launcher.NewRequest(matrix, models.Invocation{
		Fork:     fork,
		Branch:   launchBranch,
		Site:     site,
		Compiler: launchCompiler,
		RTConfig: launchRTConfig,
		Project:  launchProject,
		Email:    email,
	})
	if err != nil {
		return err
	}

	if launchDryRun {
		fmt.Println(styleLabel.Render("workdir: ") + styleValue.Render(req.WorkDir))
		fmt.Println(styleLabel.Render("command: ") + styleCommand.Render(req.CommandLine()))
		fmt.Println(styleLabel.Render("log:     ") + styleValue.Render(req.LogPath(time.Now())))
		return nil
	}

	run, err := launcher.Launch(req)
	if err != nil {
		return err
	}

	if err := runlog.SaveRun(run); err != nil {
		// The driver is already detached; a bookkeeping failure must not
		// look like a failed launch.
		fmt.Println(styleWarning.Render(fmt.Sprintf("warning: failed to record run: %v", err)))
	}

	fmt.Println(styleSuccess.Render(fmt.Sprintf("Driver detached (pid %d).", run.PID)))
	fmt.Println(styleLabel.Render("  Run: ") + styleValue.Render(run.RunID))
	fmt.Println(styleLabel.Render("  Log: ") + styleValue.Render(run.LogPath))
	fmt.Println(styleHint.Render(fmt.Sprintf("Check progress with 'rtlaunch status %s'", shortID(run.RunID))))
	return nil
}

// shortID abbreviates a run ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
