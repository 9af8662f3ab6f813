package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg GameConfig
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults diverge from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero step", func(c *GameConfig) { c.Simulation.Step = 0 }},
		{"negative step", func(c *GameConfig) { c.Simulation.Step = -0.05 }},
		{"inverted horizontal bounds", func(c *GameConfig) { c.Bounds.Right = c.Bounds.Left }},
		{"inverted vertical bounds", func(c *GameConfig) { c.Bounds.Top = c.Bounds.Bottom }},
		{"zero ball width", func(c *GameConfig) { c.Ball.HalfWidth = 0 }},
		{"inverted arc angles", func(c *GameConfig) { c.Bounce.AngleEnd = c.Bounce.AngleStart }},
		{"zero angle rate", func(c *GameConfig) { c.Bounce.AngleRate = 0 }},
		{"zero drop step", func(c *GameConfig) { c.Fall.DropStep = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if cfg.Validate() == nil {
				t.Error("Validate() should reject this config")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := Default()
	custom.Bounds.Top = 20
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if cfg.Bounds.Top != 20 {
		t.Errorf("Bounds.Top = %v, expected 20", cfg.Bounds.Top)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with a missing custom path should fail")
	}
}

func TestLoadInvalidCustomConfigFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	bad := Default()
	bad.Simulation.Step = -1
	data, err := yaml.Marshal(bad)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load should reject an invalid custom config")
	}
}
