// Package main is the entry point for the rtlaunch CLI.
package main

import (
	"os"

	"github.com/rtlaunch-io/rtlaunch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
