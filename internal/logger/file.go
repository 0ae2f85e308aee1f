package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/scrub/internal/models"
)

// FileLogger logs run events to timestamped files in a log directory and
// maintains a latest.log symlink pointing to the most recent run. Each
// run gets a unique id so overlapping runs in the same second never
// share a file. It is thread-safe and supports log level filtering.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	runID    string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger writing to logDir. The directory is
// created if needed, a run-YYYYMMDD-HHMMSS-<id>.log file is opened, and
// the latest.log symlink is updated to point at it.
func NewFileLogger(logDir, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.NewString()[:8]
	timestamp := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", timestamp, runID))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	// Symlink failures are non-fatal: some filesystems don't support them.
	_ = os.Symlink(filepath.Base(runFile), symlinkPath)

	fl := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		runID:    runID,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.write("INFO", fmt.Sprintf("Run %s started", runID))
	return fl, nil
}

// RunID returns the unique identifier of this run.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// Path returns the path of the run log file.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// Close closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.runLog == nil {
		return nil
	}
	err := fl.runLog.Close()
	fl.runLog = nil
	return err
}

// write appends one formatted line to the run log if the level passes
// the filter. Format matches the console logger's plain output.
func (fl *FileLogger) write(level, message string) {
	if logLevelToInt(strings.ToLower(level)) < logLevelToInt(fl.logLevel) {
		return
	}

	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.runLog == nil {
		return
	}

	line := fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message)
	fl.runLog.WriteString(line)
}

// LogTrace logs a trace-level message.
func (fl *FileLogger) LogTrace(message string) {
	fl.write("TRACE", message)
}

// LogDebug logs a debug-level message.
func (fl *FileLogger) LogDebug(message string) {
	fl.write("DEBUG", message)
}

// LogInfo logs an info-level message.
func (fl *FileLogger) LogInfo(message string) {
	fl.write("INFO", message)
}

// LogWarn logs a warning-level message.
func (fl *FileLogger) LogWarn(message string) {
	fl.write("WARN", message)
}

// LogError logs an error-level message.
func (fl *FileLogger) LogError(message string) {
	fl.write("ERROR", message)
}

// LogSummary logs the run summary counts.
func (fl *FileLogger) LogSummary(stats models.RunStats) {
	fl.write("INFO", "=== Run Summary ===")
	fl.write("INFO", fmt.Sprintf("Entries processed: %d", stats.Total))
	fl.write("INFO", fmt.Sprintf("Renamed: %d", stats.Renamed))
	if stats.WouldRename > 0 {
		fl.write("INFO", fmt.Sprintf("Would rename: %d", stats.WouldRename))
	}
	fl.write("INFO", fmt.Sprintf("Skipped: %d", stats.Skipped))
	fl.write("INFO", fmt.Sprintf("Failed: %d", stats.Failed))
}
