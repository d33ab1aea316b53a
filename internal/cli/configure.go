package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rtlaunch-io/rtlaunch/internal/config"
)

var configureCmd = &cobra.Command{
	Use:     "configure",
	Aliases: []string{"config"},
	Short:   "Configure launch defaults",
	Long: `Configure launch defaults interactively.

This modifies the default fork and site used when 'rtlaunch launch' is
invoked without -f or -s, and the completion-email recipient forwarded
to the driver. Press Enter to keep the current value.

The matrix itself (forks, sites, compilers, modules) lives in
~/.rtlaunch/config.yaml and is edited directly.`,
	RunE: runConfigure,
}

func runConfigure(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	matrix, err := config.LoadMatrix()
	if err != nil {
		return fmt.Errorf("failed to load matrix: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	fmt.Printf("Default fork [%s]: ", settings.Defaults.Fork)
	fork, _ := reader.ReadString('\n')
	if fork = strings.TrimSpace(fork); fork != "" && fork != settings.Defaults.Fork {
		if _, ok := matrix.Forks[fork]; !ok {
			return fmt.Errorf("unknown fork %q (see 'rtlaunch matrix')", fork)
		}
		settings.Defaults.Fork = fork
		changed = true
	}

	fmt.Printf("Default site [%s]: ", settings.Defaults.Site)
	site, _ := reader.ReadString('\n')
	if site = strings.TrimSpace(site); site != "" && site != settings.Defaults.Site {
		if _, ok := matrix.Sites[site]; !ok {
			return fmt.Errorf("unknown site %q (see 'rtlaunch matrix')", site)
		}
		settings.Defaults.Site = site
		changed = true
	}

	fmt.Println("\nNotification settings:")

	notifyEnabled := promptYesNoWithCurrent(reader, "Email the driver's completion report?", settings.Notify.Enabled)
	if notifyEnabled != settings.Notify.Enabled {
		settings.Notify.Enabled = notifyEnabled
		changed = true
	}

	if settings.Notify.Enabled {
		fmt.Printf("  Recipient [%s]: ", settings.Notify.Email)
		email, _ := reader.ReadString('\n')
		if email = strings.TrimSpace(email); email != "" && email != settings.Notify.Email {
			settings.Notify.Email = email
			changed = true
		}
	}

	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Println("\nLaunch defaults updated.")
	return nil
}

// promptYesNoWithCurrent prompts for a yes/no value showing the current value.
func promptYesNoWithCurrent(reader *bufio.Reader, prompt string, current bool) bool {
	currentStr := "no"
	if current {
		currentStr = "yes"
	}

	fmt.Printf("  %s [%s]: ", prompt, currentStr)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return current
	}
	return response == "y" || response == "yes"
}
