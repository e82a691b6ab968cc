package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Frontend.Binary != "clang" {
		t.Errorf("expected default frontend binary clang, got %q", cfg.Frontend.Binary)
	}
	if !cfg.Parse.Macros {
		t.Error("macro pass should be enabled by default")
	}
	if cfg.Output.DefaultFormat != "yaml" {
		t.Errorf("expected default format yaml, got %q", cfg.Output.DefaultFormat)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `frontend:
  binary: clang-18
  extra_args: ["--target=arm-none-eabi"]
parse:
  include_paths: ["include"]
  defines: ["STM32F4"]
  macro_prefixes: ["GPIO_"]
output:
  default_format: json
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Frontend.Binary != "clang-18" {
		t.Errorf("expected clang-18, got %q", cfg.Frontend.Binary)
	}
	if len(cfg.Frontend.ExtraArgs) != 1 {
		t.Errorf("extra args not loaded: %v", cfg.Frontend.ExtraArgs)
	}
	if len(cfg.Parse.IncludePaths) != 1 || cfg.Parse.IncludePaths[0] != "include" {
		t.Errorf("include paths not loaded: %v", cfg.Parse.IncludePaths)
	}
	if cfg.Output.DefaultFormat != "json" {
		t.Errorf("expected json, got %q", cfg.Output.DefaultFormat)
	}
	// Unset fields fall back to defaults.
	if !cfg.Parse.Macros {
		t.Error("macros default should survive a partial config")
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should yield defaults: %v", err)
	}
	if cfg.Frontend.Binary != "clang" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPathInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("frontend: [broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected parse error for malformed YAML")
	}
}

func TestLoadFromPathInvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output:\n  default_format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromPath(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestFindConfigDirWalksUp(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ConfigDirName)
	if err := os.Mkdir(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "drivers")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	found, err := FindConfigDir(nested)
	if err != nil {
		t.Fatalf("FindConfigDir failed: %v", err)
	}
	if found != configDir {
		t.Errorf("expected %q, got %q", configDir, found)
	}
}

func TestFindConfigDirNotFound(t *testing.T) {
	_, err := FindConfigDir(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoadWithoutConfigReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Frontend.Binary != "clang" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestMergePrecedence(t *testing.T) {
	loaded := &Config{
		Frontend: FrontendConfig{Binary: "clang-18"},
		Parse:    ParseConfig{Defines: []string{"DEBUG"}},
	}

	merged := Merge(loaded, DefaultConfig())

	if merged.Frontend.Binary != "clang-18" {
		t.Errorf("loaded binary should win, got %q", merged.Frontend.Binary)
	}
	if len(merged.Parse.Defines) != 1 || merged.Parse.Defines[0] != "DEBUG" {
		t.Errorf("loaded defines should win, got %v", merged.Parse.Defines)
	}
	if merged.Output.DefaultFormat != "yaml" {
		t.Errorf("unset format should fall back to default, got %q", merged.Output.DefaultFormat)
	}
	if !merged.Parse.Macros {
		t.Error("macros default should win when the key is unset")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frontend.Binary = ""
	if err := Validate(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty binary should fail validation, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Output.DefaultFormat = "toml"
	if err := Validate(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("unknown format should fail validation, got %v", err)
	}

	cfg = DefaultConfig()
	cfg.Parse.IncludePaths = []string{"include", ""}
	if err := Validate(cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("empty include path should fail validation, got %v", err)
	}
}

func TestIsValidFormat(t *testing.T) {
	for _, format := range ValidFormats {
		if !IsValidFormat(format) {
			t.Errorf("%q should be valid", format)
		}
	}
	if IsValidFormat("xml") {
		t.Error("xml should not be valid")
	}
}
