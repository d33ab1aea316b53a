package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rtlaunch-io/rtlaunch/internal/runlog"
)

var runsCmd = &cobra.Command{
	Use:     "runs",
	Aliases: []string{"ls"},
	Short:   "List recorded driver runs",
	RunE:    runRuns,
}

func runRuns(cmd *cobra.Command, args []string) error {
	runs, err := runlog.ListRuns()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded. Start one with 'rtlaunch launch'.")
		return nil
	}

	for _, run := range runs {
		outcome := runlog.Scan(run)

		startTime := run.StartedAt
		if len(startTime) >= 16 {
			startTime = startTime[:10] + " " + startTime[11:16]
		}

		fmt.Printf("  %s  %s  %s  %s\n",
			styleValue.Render(shortID(run.RunID)),
			outcomeBadge(outcome),
			styleCommand.Render(run.Descriptor()),
			styleLabel.Render(startTime),
		)
	}

	return nil
}

func outcomeBadge(outcome runlog.Outcome) string {
	badge := "(" + string(outcome) + ")"
	switch outcome {
	case runlog.OutcomePassed:
		return badgePassed.Render(badge)
	case runlog.OutcomeFailed:
		return badgeFailed.Render(badge)
	case runlog.OutcomeRunning:
		return badgeRunning.Render(badge)
	default:
		return badgeUnknown.Render(badge)
	}
}
