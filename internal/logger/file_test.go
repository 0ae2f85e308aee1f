package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/scrub/internal/models"
)

func TestNewFileLoggerCreatesRunFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(dir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer fl.Close()

	if fl.RunID() == "" {
		t.Error("RunID should not be empty")
	}

	base := filepath.Base(fl.Path())
	if !strings.HasPrefix(base, "run-") || !strings.HasSuffix(base, ".log") {
		t.Errorf("unexpected run file name: %s", base)
	}
	if !strings.Contains(base, fl.RunID()) {
		t.Errorf("run file name %s should contain run id %s", base, fl.RunID())
	}

	if _, err := os.Stat(fl.Path()); err != nil {
		t.Errorf("run file should exist: %v", err)
	}
}

func TestFileLoggerWritesMessages(t *testing.T) {
	dir := t.TempDir()

	fl, err := NewFileLogger(dir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	fl.LogInfo("Changing 'a b' to 'a_b'")
	fl.LogDebug("filtered out")
	fl.LogError("Rename failed for 'x': boom")
	if err := fl.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("reading run log: %v", err)
	}
	content := string(data)

	if !strings.Contains(content, "Run "+fl.RunID()+" started") {
		t.Errorf("log missing run header:\n%s", content)
	}
	if !strings.Contains(content, "Changing 'a b' to 'a_b'") {
		t.Errorf("log missing info message:\n%s", content)
	}
	if !strings.Contains(content, "Rename failed for 'x': boom") {
		t.Errorf("log missing error message:\n%s", content)
	}
	if strings.Contains(content, "filtered out") {
		t.Errorf("debug message should be filtered at info level:\n%s", content)
	}
}

func TestFileLoggerLatestSymlink(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileLogger(dir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	first.Close()

	second, err := NewFileLogger(dir, "info")
	if err != nil {
		t.Fatalf("second NewFileLogger failed: %v", err)
	}
	second.Close()

	target, err := os.Readlink(filepath.Join(dir, "latest.log"))
	if err != nil {
		t.Skipf("symlinks unsupported here: %v", err)
	}
	if target != filepath.Base(second.Path()) {
		t.Errorf("latest.log points to %s, want %s", target, filepath.Base(second.Path()))
	}
}

func TestFileLoggerSummary(t *testing.T) {
	dir := t.TempDir()

	fl, err := NewFileLogger(dir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	fl.LogSummary(models.RunStats{Total: 3, Renamed: 2, Skipped: 1})
	fl.Close()

	data, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("reading run log: %v", err)
	}
	content := string(data)

	for _, want := range []string{"=== Run Summary ===", "Entries processed: 3", "Renamed: 2", "Skipped: 1", "Failed: 0"} {
		if !strings.Contains(content, want) {
			t.Errorf("summary missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "Would rename") {
		t.Errorf("summary should omit 'Would rename' when zero:\n%s", content)
	}
}

func TestFileLoggerCloseIdempotent(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "info")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	if err := fl.Close(); err != nil {
		t.Errorf("first Close failed: %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	// Logging after close must not panic.
	fl.LogInfo("ignored")
}

func TestMultiLoggerFanOut(t *testing.T) {
	dir := t.TempDir()
	fl, err := NewFileLogger(dir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	ml := NewMultiLogger(NewNoOpLogger(), nil, fl)
	ml.LogInfo("fanned out")
	ml.LogSummary(models.RunStats{Total: 1, Renamed: 1})
	fl.Close()

	data, err := os.ReadFile(fl.Path())
	if err != nil {
		t.Fatalf("reading run log: %v", err)
	}
	if !strings.Contains(string(data), "fanned out") {
		t.Errorf("multi logger should forward to file logger:\n%s", data)
	}
	if !strings.Contains(string(data), "Entries processed: 1") {
		t.Errorf("multi logger should forward summary:\n%s", data)
	}
}
