package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harrison/scrub/internal/models"
)

// TestDefaultConfig verifies default configuration values
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Recursive != false {
		t.Errorf("Recursive = %v, want false", cfg.Recursive)
	}
	if cfg.DryRun != false {
		t.Errorf("DryRun = %v, want false", cfg.DryRun)
	}
	if cfg.Replacement != "_" {
		t.Errorf("Replacement = %q, want %q", cfg.Replacement, "_")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
	if cfg.LogDir != "" {
		t.Errorf("LogDir = %q, want empty", cfg.LogDir)
	}
}

// TestLoadConfigValidFile tests loading a valid YAML config file
func TestLoadConfigValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `recursive: true
dry_run: true
replacement: "-"
log_level: debug
log_dir: /tmp/scrub-logs
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if !cfg.Recursive {
		t.Error("Recursive = false, want true")
	}
	if !cfg.DryRun {
		t.Error("DryRun = false, want true")
	}
	if cfg.Replacement != "-" {
		t.Errorf("Replacement = %q, want %q", cfg.Replacement, "-")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
	if cfg.LogDir != "/tmp/scrub-logs" {
		t.Errorf("LogDir = %q, want %q", cfg.LogDir, "/tmp/scrub-logs")
	}
}

// TestLoadConfigFileNotExists tests fallback to defaults when file doesn't exist
func TestLoadConfigFileNotExists(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig() should not error on missing file, got: %v", err)
	}

	if cfg.Replacement != "_" {
		t.Errorf("Replacement = %q, want %q (default)", cfg.Replacement, "_")
	}
}

// TestLoadConfigMalformedFile tests error handling for invalid YAML
func TestLoadConfigMalformedFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("recursive: [not a bool"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Fatal("LoadConfig() expected error for malformed YAML, got nil")
	}
}

// TestLoadConfigFromDir tests the .scrub/config.yaml convention
func TestLoadConfigFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configDir := filepath.Join(tmpDir, ".scrub")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}
	configContent := "replacement: \"+\"\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfigFromDir(tmpDir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir() error = %v", err)
	}
	if cfg.Replacement != "+" {
		t.Errorf("Replacement = %q, want %q", cfg.Replacement, "+")
	}
}

// TestMergeWithFlags verifies flags take precedence over file values
func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Replacement = "-"
	cfg.LogLevel = "warn"

	recursive := true
	replacement := "+"

	cfg.MergeWithFlags(&recursive, nil, &replacement, nil, nil)

	if !cfg.Recursive {
		t.Error("Recursive = false, want true (flag override)")
	}
	if cfg.DryRun {
		t.Error("DryRun = true, want false (no flag, keep file value)")
	}
	if cfg.Replacement != "+" {
		t.Errorf("Replacement = %q, want %q (flag override)", cfg.Replacement, "+")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want %q (no flag, keep file value)", cfg.LogLevel, "warn")
	}
}

// TestValidate covers replacement and log level validation
func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		replacement string
		logLevel    string
		wantErr     bool
	}{
		{name: "valid defaults", replacement: "_", logLevel: "info", wantErr: false},
		{name: "valid dash", replacement: "-", logLevel: "trace", wantErr: false},
		{name: "path separator replacement", replacement: "/", logLevel: "info", wantErr: true},
		{name: "backslash replacement", replacement: `\`, logLevel: "info", wantErr: true},
		{name: "multi-character replacement", replacement: "ab", logLevel: "info", wantErr: true},
		{name: "empty replacement", replacement: "", logLevel: "info", wantErr: true},
		{name: "invalid log level", replacement: "_", logLevel: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Replacement = tt.replacement
			cfg.LogLevel = tt.logLevel

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

// TestOptions verifies the option bundle built from a config
func TestOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Recursive = true
	cfg.DryRun = true
	cfg.Replacement = "-"

	opts := cfg.Options()

	want := models.Options{Recursive: true, DryRun: true, Replacement: '-'}
	if opts != want {
		t.Errorf("Options() = %+v, want %+v", opts, want)
	}
}
