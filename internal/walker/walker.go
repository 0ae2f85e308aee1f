// Package walker applies the rename protocol to individual paths and,
// in recursive mode, to whole directory trees.
//
// Traversal is depth-first and bottom-up: every child is processed
// before its parent directory is renamed, so children are always
// addressed through the parent's original path. Symbolic links are
// renamed as leaves but never followed, which rules out cycles.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/scrub/internal/models"
	"github.com/harrison/scrub/internal/sanitize"
)

// Logger is the leveled logging surface the walker reports through.
// logger.ConsoleLogger, logger.FileLogger, and logger.MultiLogger all
// satisfy it.
type Logger interface {
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
}

// Walker processes paths according to an immutable option bundle and
// accumulates per-run statistics. It is strictly sequential; there is no
// shared mutable state beyond the stats it owns.
type Walker struct {
	opts  models.Options
	san   *sanitize.Sanitizer
	log   Logger
	stats models.RunStats
}

// New creates a Walker for one run.
func New(opts models.Options, log Logger) *Walker {
	return &Walker{
		opts: opts,
		san:  sanitize.New(opts.Replacement),
		log:  log,
	}
}

// Stats returns the accumulated statistics for the run so far.
func (w *Walker) Stats() models.RunStats {
	return w.stats
}

// Process sanitizes one target. In recursive mode directory trees are
// traversed bottom-up; otherwise the target is handled as a single
// entry. It returns the target's final path (the original path when the
// rename was skipped or failed).
func (w *Walker) Process(path string) string {
	if w.opts.Recursive {
		return w.processTree(path)
	}
	return w.renameEntry(path)
}

// processTree recursively sanitizes path. Non-directories and symbolic
// links (even links to directories) fall back to the single-entry
// protocol; the directory itself is renamed only after all of its
// children have been processed.
func (w *Walker) processTree(path string) string {
	info, err := os.Lstat(path)
	if err != nil || !info.IsDir() {
		return w.renameEntry(path)
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		w.log.LogError(fmt.Sprintf("Cannot list directory '%s': %v", path, err))
		w.stats.Record(models.ActionFailed)
		return path
	}

	w.log.LogDebug(fmt.Sprintf("Descending into '%s' (%d entries)", path, len(entries)))

	// os.ReadDir returns entries sorted by name, which keeps the
	// processing order deterministic across filesystems.
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		// DirEntry type bits come from Lstat, so a symlink to a
		// directory is not IsDir and is treated as a leaf.
		if entry.IsDir() {
			w.processTree(child)
		} else {
			w.renameEntry(child)
		}
	}

	return w.renameEntry(path)
}

// renameEntry computes the sanitized name for one entry and runs the
// rename protocol on it. Trailing separators are dropped first so that
// "dir/" and "dir" name the same entry; shell completion routinely
// appends one, and the sanitized name never carries it.
func (w *Walker) renameEntry(oldPath string) string {
	oldPath = trimTrailingSeparators(oldPath)
	newPath := w.san.Clean(oldPath)
	result := w.applyRename(oldPath, newPath)
	w.stats.Record(result.Action)
	return result.FinalPath()
}

// applyRename runs the rename protocol: no-op, missing-source, and
// target-exists checks, then the rename itself (or a log line under
// dry-run). Every skip is informational; a failed rename is logged,
// counted, and left behind so the run can continue.
func (w *Walker) applyRename(oldPath, newPath string) models.RenameResult {
	result := models.RenameResult{OldPath: oldPath, NewPath: newPath}

	switch {
	case oldPath == newPath:
		w.log.LogInfo(fmt.Sprintf("Old name and new name are the same for '%s'.  Not changing", oldPath))
		result.Action = models.ActionSkippedNoop
		return result
	case !pathExists(oldPath):
		w.log.LogWarn(fmt.Sprintf("Old file name '%s' does not exist.  Skipping", oldPath))
		result.Action = models.ActionSkippedMissing
		return result
	case pathExists(newPath):
		w.log.LogWarn(fmt.Sprintf("New file name '%s' already exists!  Skipping", newPath))
		result.Action = models.ActionSkippedExists
		return result
	}

	if w.opts.DryRun {
		w.log.LogInfo(fmt.Sprintf("Would change '%s' to '%s'", oldPath, newPath))
		result.Action = models.ActionWouldRename
		return result
	}

	w.log.LogInfo(fmt.Sprintf("Changing '%s' to '%s'", oldPath, newPath))
	if err := os.Rename(oldPath, newPath); err != nil {
		w.log.LogError(fmt.Sprintf("Rename failed for '%s': %v", oldPath, err))
		result.Action = models.ActionFailed
		return result
	}

	result.Action = models.ActionRenamed
	return result
}

func trimTrailingSeparators(path string) string {
	if path == "" || path == "/" {
		return path
	}
	trimmed := strings.TrimRight(path, "/")
	if trimmed == "" {
		return "/"
	}
	return trimmed
}

// pathExists reports whether the path itself exists. Lstat keeps
// dangling symlinks visible: a link is an entry in its own right and is
// renamed, not resolved.
func pathExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
