package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// YAML persistence for the rtlaunch files (matrix, settings, run records).
// Everything is small enough that whole-file read/write keeps the launcher
// free of partial-state handling.

// LoadYAML decodes the YAML file at path into v.
func LoadYAML(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// SaveYAML encodes v and writes it to path, creating parent directories as
// needed. Matrix, settings and run records hold nothing secret, so plain
// 0644/0755 modes apply.
func SaveYAML(path string, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadYAMLOrDefault returns the decoded file when present, otherwise the
// value from defaultFn. This is what lets 'rtlaunch launch' work with the
// shipped matrix before 'rtlaunch init' has ever been run.
func LoadYAMLOrDefault[T any](path string, defaultFn func() *T) (*T, error) {
	if !FileExists(path) {
		return defaultFn(), nil
	}

	v := new(T)
	if err := LoadYAML(path, v); err != nil {
		return nil, err
	}
	return v, nil
}
