package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rtlaunch-io/rtlaunch/internal/config"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Show the configured forks, sites and compilers",
	RunE:  runMatrix,
}

func runMatrix(cmd *cobra.Command, args []string) error {
	matrix, err := config.LoadMatrix()
	if err != nil {
		return fmt.Errorf("failed to load matrix: %w", err)
	}

	fmt.Println(styleCommand.Render("Forks"))
	for _, name := range sortedKeys(matrix.Forks) {
		fork := matrix.Forks[name]
		fmt.Printf("  %s %s\n", styleValue.Render(name), styleLabel.Render(fork.URL))
		fmt.Printf("    %s %s\n", styleLabel.Render("branches:"), strings.Join(fork.Branches, ", "))
	}

	fmt.Println()
	fmt.Println(styleCommand.Render("Sites"))
	for _, name := range sortedKeys(matrix.Sites) {
		site := matrix.Sites[name]
		fmt.Printf("  %s\n", styleValue.Render(name))
		fmt.Printf("    %s %s %s\n", styleLabel.Render("compilers:"),
			strings.Join(site.Compilers, ", "),
			styleHint.Render("(default "+site.DefaultCompiler+")"))
		fmt.Printf("    %s %s\n", styleLabel.Render("project:  "), site.DefaultProject)
		fmt.Printf("    %s %s\n", styleLabel.Render("workdir:  "), site.WorkDir)
		if len(site.Modules) > 0 {
			fmt.Printf("    %s %s\n", styleLabel.Render("modules:  "), strings.Join(site.Modules, ", "))
		}
	}

	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
