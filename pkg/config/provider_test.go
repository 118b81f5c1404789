package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestYAMLProviderLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
http:
  listen_addr: 127.0.0.1
  port: 3000
catalog:
  source: embedded
psychrometrics:
  pressure: 101325
  specific_heat: 1.02
generator:
  seed: 42
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	provider := NewYAMLProvider(path)
	defer provider.Close()

	cfg, err := provider.LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTP.ListenAddr != "127.0.0.1" || cfg.HTTP.Port != 3000 {
		t.Errorf("unexpected HTTP config: %+v", cfg.HTTP)
	}
	if cfg.Catalog.Source != "embedded" {
		t.Errorf("catalog source = %q, expected embedded", cfg.Catalog.Source)
	}
	if cfg.Psychrometrics.Pressure != 101325 || cfg.Psychrometrics.SpecificHeat != 1.02 {
		t.Errorf("unexpected psychrometrics config: %+v", cfg.Psychrometrics)
	}
	if cfg.Generator.Seed != 42 {
		t.Errorf("generator seed = %d, expected 42", cfg.Generator.Seed)
	}
	if !provider.IsReadOnly() {
		t.Error("YAML provider should be read-only")
	}
}

func TestYAMLProviderMissingFile(t *testing.T) {
	provider := NewYAMLProvider(filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := provider.LoadConfig(); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestYAMLProviderDefaultsAreZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  port: 8080\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := NewYAMLProvider(path).LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Unset sections stay zero; the app layer applies defaults.
	if cfg.Psychrometrics.Pressure != 0 || cfg.Generator.Seed != 0 {
		t.Errorf("expected zero defaults, got %+v", cfg)
	}
}
