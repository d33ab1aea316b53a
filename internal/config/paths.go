// Package config handles configuration loading, saving, and path management.
package config

import (
	"os"
	"path/filepath"
)

const (
	// GlobalDirName is the name of the global rtlaunch directory.
	GlobalDirName = ".rtlaunch"

	// RunsDirName is the name of the run-record directory.
	RunsDirName = "runs"
)

// File names
const (
	MatrixFileName   = "config.yaml"
	SettingsFileName = "settings.yaml"
)

// GlobalDir returns the path to the global rtlaunch directory (~/.rtlaunch/).
func GlobalDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, GlobalDirName), nil
}

// GlobalMatrixFile returns the path to the config.yaml file.
func GlobalMatrixFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, MatrixFileName), nil
}

// GlobalSettingsFile returns the path to the settings.yaml file.
func GlobalSettingsFile() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFileName), nil
}

// GlobalRunsDir returns the path to the run-record directory.
func GlobalRunsDir() (string, error) {
	dir, err := GlobalDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, RunsDirName), nil
}

// EnsureGlobalDir creates the global rtlaunch directory if it doesn't exist.
func EnsureGlobalDir() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// EnsureGlobalRunsDir creates the run-record directory if it doesn't exist.
func EnsureGlobalRunsDir() error {
	dir, err := GlobalRunsDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}
