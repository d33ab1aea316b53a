package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/rtlaunch-io/rtlaunch/internal/models"
)

func TestSaveLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "matrix.yaml")

	in := models.NewDefaultMatrix()
	if err := SaveYAML(path, in); err != nil {
		t.Fatalf("SaveYAML() returned error: %v", err)
	}

	var out models.Matrix
	if err := LoadYAML(path, &out); err != nil {
		t.Fatalf("LoadYAML() returned error: %v", err)
	}

	if out.Driver != in.Driver || out.LogPrefix != in.LogPrefix {
		t.Errorf("round-trip changed driver/prefix: %+v", out)
	}
	if len(out.Forks) != len(in.Forks) || len(out.Sites) != len(in.Sites) {
		t.Errorf("round-trip changed matrix size: %d forks, %d sites", len(out.Forks), len(out.Sites))
	}
	if got := out.Sites["cheyenne"].DefaultRTConfig["gnu"]; got != "rt_gnu.conf" {
		t.Errorf("cheyenne gnu rtconfig = %q, want %q", got, "rt_gnu.conf")
	}
}

func TestLoadYAMLMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yaml")

	var out models.Matrix
	err := LoadYAML(path, &out)
	if err == nil {
		t.Fatal("LoadYAML() on a missing file succeeded, want error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("LoadYAML() error %q does not name the file", err)
	}
}

func TestLoadYAMLOrDefault(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.yaml")

	got, err := LoadYAMLOrDefault(missing, models.NewDefaultMatrix)
	if err != nil {
		t.Fatalf("LoadYAMLOrDefault() returned error: %v", err)
	}
	if _, ok := got.Forks["emc"]; !ok {
		t.Error("default matrix missing emc fork")
	}
}

func TestLoadMatrixDefaultsWhenUnconfigured(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	matrix, err := LoadMatrix()
	if err != nil {
		t.Fatalf("LoadMatrix() returned error: %v", err)
	}
	if _, ok := matrix.Sites["hera"]; !ok {
		t.Error("default matrix missing hera site")
	}
}

func TestSaveMatrixRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	in := models.NewDefaultMatrix()
	in.LogPrefix = "rt"
	if err := SaveMatrix(in); err != nil {
		t.Fatalf("SaveMatrix() returned error: %v", err)
	}

	out, err := LoadMatrix()
	if err != nil {
		t.Fatalf("LoadMatrix() returned error: %v", err)
	}
	if out.LogPrefix != "rt" {
		t.Errorf("LogPrefix = %q, want %q", out.LogPrefix, "rt")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	in := models.NewSettings()
	in.Defaults.Site = "cheyenne"
	in.Notify.Enabled = true
	in.Notify.Email = "ops@example.org"
	if err := SaveSettings(in); err != nil {
		t.Fatalf("SaveSettings() returned error: %v", err)
	}

	out, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() returned error: %v", err)
	}
	if out.Defaults.Site != "cheyenne" {
		t.Errorf("Defaults.Site = %q, want %q", out.Defaults.Site, "cheyenne")
	}
	if !out.Notify.Enabled || out.Notify.Email != "ops@example.org" {
		t.Errorf("Notify = %+v, want enabled with ops@example.org", out.Notify)
	}
}
