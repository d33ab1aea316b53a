package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rtlaunch-io/rtlaunch/internal/config"
	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the initial rtlaunch configuration",
	Long: `Write the initial rtlaunch configuration under ~/.rtlaunch/.

This will:
  1. Create the ~/.rtlaunch/ directory
  2. Write the default launch matrix to config.yaml
  3. Prompt for default fork and site, written to settings.yaml

Edit config.yaml afterwards to adjust forks, sites, modules and working
directories for your clusters.`,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	matrixPath, err := config.GlobalMatrixFile()
	if err != nil {
		return err
	}
	if config.FileExists(matrixPath) {
		return fmt.Errorf("already configured (%s exists). Edit it or run 'rtlaunch configure'", matrixPath)
	}

	matrix := models.NewDefaultMatrix()
	settings := models.NewSettings()

	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("Default fork [%s]: ", settings.Defaults.Fork)
	fork, _ := reader.ReadString('\n')
	if fork = strings.TrimSpace(fork); fork != "" {
		settings.Defaults.Fork = fork
	}

	fmt.Printf("Default site [%s]: ", settings.Defaults.Site)
	site, _ := reader.ReadString('\n')
	if site = strings.TrimSpace(site); site != "" {
		settings.Defaults.Site = site
	}

	if err := config.SaveMatrix(matrix); err != nil {
		return fmt.Errorf("failed to write matrix: %w", err)
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	fmt.Println(styleSuccess.Render("\nrtlaunch configured."))
	fmt.Println(styleLabel.Render("  Matrix:   ") + styleValue.Render(matrixPath))
	fmt.Println("\nNext steps:")
	fmt.Println("  - Review the matrix with 'rtlaunch matrix'")
	fmt.Println("  - Start a run with 'rtlaunch launch -b <branch>'")
	return nil
}
