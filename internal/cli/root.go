// Package cli implements the rtlaunch CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rtlaunch",
	Short: "Launch weather-model regression tests on HPC clusters",
	Long: `Rtlaunch prepares the cluster environment and starts the external
regression-test driver detached from the terminal, with its output
captured in a timestamped log file. Once detached, the driver runs
unsupervised; use 'rtlaunch status' and 'rtlaunch logs' to inspect it.`,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configureCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd)
}
