package launcher

import (
	"strings"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

// ShellPrelude builds the bash fragment that reproduces the historical
// launcher environment: abort on the first failure, source each profile
// script, load each environment module. The prelude runs through a login
// shell so the `module` shell function is defined.
func ShellPrelude(profileScripts, modules []string) string {
	parts := []string{"set -e"}
	for _, s := range profileScripts {
		parts = append(parts, "source "+shellQuote(s))
	}
	for _, m := range modules {
		parts = append(parts, "module load "+shellQuote(m))
	}
	return strings.Join(parts, "; ")
}

// DriverArgs builds the driver's argument list from a resolved invocation.
// The -r, -p and -e flags are optional to the driver and omitted when
// unset; the driver then applies its own defaults.
func DriverArgs(inv models.Invocation) []string {
	args := []string{"-f", inv.Fork, "-b", inv.Branch}
	if inv.RTConfig != "" {
		args = append(args, "-r", inv.RTConfig)
	}
	if inv.Project != "" {
		args = append(args, "-p", inv.Project)
	}
	if inv.Email != "" {
		args = append(args, "-e", inv.Email)
	}
	return append(args, "-s", inv.Site, "-c", inv.Compiler)
}

// shellQuote single-quotes s for safe interpolation into a bash command.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}
