package config

import (
	"fmt"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

// LoadMatrix loads the launch matrix, falling back to the shipped defaults
// when no config.yaml has been written yet.
func LoadMatrix() (*models.Matrix, error) {
	path, err := GlobalMatrixFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewDefaultMatrix)
}

// SaveMatrix writes the launch matrix to config.yaml.
func SaveMatrix(m *models.Matrix) error {
	path, err := GlobalMatrixFile()
	if err != nil {
		return err
	}
	if err := EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to ensure global dir: %w", err)
	}
	return SaveYAML(path, m)
}
