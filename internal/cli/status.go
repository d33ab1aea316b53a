package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtlaunch-io/rtlaunch/internal/runlog"
)

var statusCmd = &cobra.Command{
	Use:   "status [run-id]",
	Short: "Show the outcome of a recorded run",
	Long: `Inspect a run's log file for the driver's success marker and probe
its PID. Without an argument the most recent run is used.

The launcher has no live view of the driver; this is an after-the-fact
scan of the log file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	run, err := resolveRunArg(args)
	if err != nil {
		return err
	}

	outcome := runlog.Scan(run)

	fmt.Println(styleCommand.Render(run.Descriptor()) + "  " + outcomeBadge(outcome))
	fmt.Println(styleLabel.Render("  Run:     ") + styleValue.Render(run.RunID))
	fmt.Println(styleLabel.Render("  Started: ") + styleValue.Render(run.StartedAt))
	fmt.Println(styleLabel.Render("  PID:     ") + styleValue.Render(fmt.Sprintf("%d", run.PID)))
	fmt.Println(styleLabel.Render("  Log:     ") + styleValue.Render(run.LogPath))

	if outcome == runlog.OutcomeFailed {
		fmt.Println(styleHint.Render(fmt.Sprintf("Inspect the log with 'rtlaunch logs %s'", shortID(run.RunID))))
	}
	return nil
}
