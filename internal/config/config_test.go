package config

import (
	"os"
	"path/filepath"
	"testing"

	"tuikit/internal/widget"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `{"radio_color": "red", "console_height": 10}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RadioColor != "red" || cfg.ConsoleHeight != 10 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.CheckKind != "large" {
		t.Errorf("unset check_kind %q, want default", cfg.CheckKind)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeConfig(t, `{"radio_color": `)
	if _, err := Load(path); err == nil {
		t.Fatal("want error for malformed JSON")
	}
}

func TestLoad_UnknownKind(t *testing.T) {
	path := writeConfig(t, `{"check_kind": "huge"}`)
	if _, err := Load(path); err == nil {
		t.Fatal("want error for unknown check_kind")
	}
}

func TestKindResolution(t *testing.T) {
	cfg := Default()
	cfg.CheckKind = "ascii"
	cfg.RadioKind = "pointer"
	if cfg.CheckboxKind() != widget.CheckASCII {
		t.Errorf("CheckboxKind() = %v", cfg.CheckboxKind())
	}
	if cfg.RadioButtonKind() != widget.RadioPointer {
		t.Errorf("RadioButtonKind() = %v", cfg.RadioButtonKind())
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/custom.json")
	if Path() != "/tmp/custom.json" {
		t.Errorf("Path() = %q", Path())
	}
}
