package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
	"github.com/rtlaunch-io/rtlaunch/internal/runlog"
)

var logsFollow bool

var logsCmd = &cobra.Command{
	Use:   "logs [run-id]",
	Short: "Print a run's driver log",
	Long: `Print the log file of a recorded run. Without an argument the most
recent run is used. With --follow, appended output is streamed until
interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "", false, "stream appended log output")
}

func runLogs(cmd *cobra.Command, args []string) error {
	run, err := resolveRunArg(args)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(run.LogPath)
	if err != nil {
		return fmt.Errorf("log not found: %w", err)
	}
	os.Stdout.Write(data)

	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	chunks, err := runlog.Follow(ctx, run.LogPath, int64(len(data)))
	if err != nil {
		return err
	}
	for chunk := range chunks {
		os.Stdout.Write(chunk)
	}
	return nil
}

// resolveRunArg returns the run named by args, or the most recent one.
func resolveRunArg(args []string) (*models.Run, error) {
	if len(args) > 0 {
		return runlog.FindRun(args[0])
	}

	runs, err := runlog.ListRuns()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, fmt.Errorf("no runs recorded")
	}
	return runs[0], nil
}
