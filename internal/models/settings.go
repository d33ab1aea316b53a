package models

// DefaultsConfig holds defaults applied when launch flags are omitted.
type DefaultsConfig struct {
	Fork string `yaml:"fork"`
	Site string `yaml:"site"`
}

// NotifyConfig holds the completion-email recipient passed through to the
// driver. The driver does the mailing; the launcher only forwards the
// address. Disabled means the driver falls back to its own default
// recipient.
type NotifyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Email   string `yaml:"email,omitempty"`
}

// Settings represents global application settings.
// This corresponds to ~/.rtlaunch/settings.yaml.
type Settings struct {
	Version  int            `yaml:"version"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Notify   NotifyConfig   `yaml:"notify"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Defaults: DefaultsConfig{
			Fork: "dtc",
			Site: "hera",
		},
		Notify: NotifyConfig{
			Enabled: false,
		},
	}
}
