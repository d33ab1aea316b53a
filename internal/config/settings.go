package config

import (
	"fmt"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

// LoadSettings loads global settings, creating defaults if none exist.
func LoadSettings() (*models.Settings, error) {
	path, err := GlobalSettingsFile()
	if err != nil {
		return nil, err
	}
	return LoadYAMLOrDefault(path, models.NewSettings)
}

// SaveSettings writes global settings to settings.yaml.
func SaveSettings(s *models.Settings) error {
	path, err := GlobalSettingsFile()
	if err != nil {
		return err
	}
	if err := EnsureGlobalDir(); err != nil {
		return fmt.Errorf("failed to ensure global dir: %w", err)
	}
	return SaveYAML(path, s)
}
