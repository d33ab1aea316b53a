// Package models defines the data structures persisted by rtlaunch.
package models

import "fmt"

// Fork describes a source repository variant whose branches may be tested.
type Fork struct {
	URL      string   `yaml:"url"`
	Branches []string `yaml:"branches"`
}

// Site describes one HPC cluster the driver can target.
type Site struct {
	Compilers       []string          `yaml:"compilers"`
	DefaultCompiler string            `yaml:"default_compiler"`
	DefaultProject  string            `yaml:"default_project"`
	DefaultRTConfig map[string]string `yaml:"default_rtconfig"` // keyed by compiler
	Modules         []string          `yaml:"modules"`
	ProfileScripts  []string          `yaml:"profile_scripts"`
	WorkDir         string            `yaml:"work_dir"`
}

// Invocation is one resolved launch request: every field validated against
// the matrix, defaults filled in.
type Invocation struct {
	Fork     string `yaml:"fork"`
	Branch   string `yaml:"branch"`
	Site     string `yaml:"site"`
	Compiler string `yaml:"compiler"`
	RTConfig string `yaml:"rtconfig,omitempty"`
	Project  string `yaml:"project,omitempty"`
	Email    string `yaml:"email,omitempty"`
}

// Matrix is the configured launch space: which forks and branches may be
// tested on which sites with which compilers.
// This corresponds to ~/.rtlaunch/config.yaml.
type Matrix struct {
	Version   int              `yaml:"version"`
	Driver    string           `yaml:"driver"`
	LogDir    string           `yaml:"log_dir,omitempty"` // empty = site work dir
	LogPrefix string           `yaml:"log_prefix"`
	Forks     map[string]*Fork `yaml:"forks"`
	Sites     map[string]*Site `yaml:"sites"`
}

// Resolve validates an invocation against the matrix and fills in site
// defaults for compiler, project and regression-test config. The matrix is
// never mutated.
func (m *Matrix) Resolve(inv Invocation) (Invocation, error) {
	fork, ok := m.Forks[inv.Fork]
	if !ok {
		return Invocation{}, fmt.Errorf("unknown fork %q", inv.Fork)
	}
	if !contains(fork.Branches, inv.Branch) {
		return Invocation{}, fmt.Errorf("branch %q is not configured for fork %q", inv.Branch, inv.Fork)
	}

	site, ok := m.Sites[inv.Site]
	if !ok {
		return Invocation{}, fmt.Errorf("unknown site %q", inv.Site)
	}

	if inv.Compiler == "" {
		inv.Compiler = site.DefaultCompiler
	}
	if !contains(site.Compilers, inv.Compiler) {
		return Invocation{}, fmt.Errorf("compiler %q is not available on site %q", inv.Compiler, inv.Site)
	}

	if inv.Project == "" {
		inv.Project = site.DefaultProject
	}
	if inv.RTConfig == "" {
		inv.RTConfig = site.DefaultRTConfig[inv.Compiler]
	}

	return inv, nil
}

// NewDefaultMatrix returns the launch matrix rtlaunch ships with.
func NewDefaultMatrix() *Matrix {
	return &Matrix{
		Version:   1,
		Driver:    "autoregtest.py",
		LogPrefix: "autoregtest",
		Forks: map[string]*Fork{
			"dtc": {
				URL:      "https://github.com/NCAR/ufs-weather-model",
				Branches: []string{"dtc/develop"},
			},
			"emc": {
				URL:      "https://github.com/ufs-community/ufs-weather-model",
				Branches: []string{"develop"},
			},
		},
		Sites: map[string]*Site{
			"cheyenne": {
				Compilers:       []string{"intel", "gnu"},
				DefaultCompiler: "intel",
				DefaultProject:  "P48503002",
				DefaultRTConfig: map[string]string{
					"intel": "rt.conf",
					"gnu":   "rt_gnu.conf",
				},
				Modules:        []string{"python/3.7.9"},
				ProfileScripts: []string{"/etc/profile.d/modules.sh"},
				WorkDir:        "/glade/scratch/autoregtest",
			},
			"hera": {
				Compilers:       []string{"intel"},
				DefaultCompiler: "intel",
				DefaultProject:  "gmtb",
				DefaultRTConfig: map[string]string{
					"intel": "rt.conf",
				},
				Modules:        []string{"python/3.7.5"},
				ProfileScripts: []string{"/etc/profile.d/modules.sh"},
				WorkDir:        "/scratch1/autoregtest",
			},
		},
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
