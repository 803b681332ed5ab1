package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "custom.yaml")

	content := `
playback:
  delay_ms: 100
theme:
  monochrome: true
storage:
  db: /tmp/alt.db
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Playback.DelayMS != 100 {
		t.Errorf("DelayMS = %d, want 100", cfg.Playback.DelayMS)
	}
	if !cfg.Theme.Monochrome {
		t.Error("Monochrome = false, want true")
	}
	if cfg.Storage.DB != "/tmp/alt.db" {
		t.Errorf("DB = %q, want /tmp/alt.db", cfg.Storage.DB)
	}
}

func TestLoadPartialCustomKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "partial.yaml")

	if err := os.WriteFile(path, []byte("theme:\n  monochrome: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !cfg.Theme.Monochrome {
		t.Error("Monochrome = false, want true")
	}
	if cfg.Playback.DelayMS != 250 {
		t.Errorf("DelayMS = %d, want default 250", cfg.Playback.DelayMS)
	}
	if cfg.Storage.DB != "~/.t2048/scores.db" {
		t.Errorf("DB = %q, want default path", cfg.Storage.DB)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load("/nonexistent/t2048.yaml"); err == nil {
		t.Error("Load() with missing custom path should fail")
	}
}

func TestLoadInvalidCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "broken.yaml")

	if err := os.WriteFile(path, []byte("playback: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() with invalid YAML should fail")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded default %+v diverges from Default() %+v", cfg, Default())
	}
}
