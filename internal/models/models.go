// Package models defines the shared value types threaded through a scrub
// run: the immutable option bundle, the per-entry rename outcome, and the
// aggregate run statistics.
package models

import (
	"fmt"
	"unicode/utf8"
)

// DefaultReplacement is the character substituted for each unsafe
// character when no override is given.
const DefaultReplacement = '_'

// Options is the immutable per-run configuration passed into the core.
// It is constructed once from CLI input and never mutated during a
// traversal.
type Options struct {
	// Recursive enables bottom-up traversal of directory trees
	Recursive bool

	// DryRun logs rename decisions without mutating the filesystem
	DryRun bool

	// Replacement is the character substituted for unsafe characters
	Replacement rune
}

// ActionType identifies the outcome of processing a single path.
type ActionType string

const (
	// ActionRenamed means the rename was performed on disk
	ActionRenamed ActionType = "renamed"

	// ActionWouldRename means the rename was simulated under dry-run
	ActionWouldRename ActionType = "would-rename"

	// ActionSkippedNoop means the sanitized name equals the original
	ActionSkippedNoop ActionType = "skipped-noop"

	// ActionSkippedMissing means the source path does not exist
	ActionSkippedMissing ActionType = "skipped-missing"

	// ActionSkippedExists means a different entry already occupies the target name
	ActionSkippedExists ActionType = "skipped-exists"

	// ActionFailed means the rename (or a directory listing) failed
	ActionFailed ActionType = "failed"
)

// RenameResult describes the outcome of the rename protocol for one path.
// Results are logged, never persisted.
type RenameResult struct {
	OldPath string
	NewPath string
	Action  ActionType
}

// FinalPath returns the path the entry is known by after the protocol
// ran: the new path when the rename happened (or would happen), the old
// path for every skip and failure.
func (r RenameResult) FinalPath() string {
	switch r.Action {
	case ActionRenamed, ActionWouldRename, ActionSkippedNoop:
		return r.NewPath
	default:
		return r.OldPath
	}
}

// RunStats aggregates per-entry outcomes across one run.
type RunStats struct {
	Total       int
	Renamed     int
	WouldRename int
	Skipped     int
	Failed      int
}

// Record tallies one processed entry.
func (s *RunStats) Record(action ActionType) {
	s.Total++
	switch action {
	case ActionRenamed:
		s.Renamed++
	case ActionWouldRename:
		s.WouldRename++
	case ActionSkippedNoop, ActionSkippedMissing, ActionSkippedExists:
		s.Skipped++
	case ActionFailed:
		s.Failed++
	}
}

// HasFailures reports whether any entry failed hard. Skips are not
// failures.
func (s RunStats) HasFailures() bool {
	return s.Failed > 0
}

// ValidateReplacement parses a replacement-character option value.
// The value must be exactly one character and must not be a path
// separator.
func ValidateReplacement(s string) (rune, error) {
	if s == "" {
		return 0, fmt.Errorf("replacement character cannot be empty")
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("replacement character must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '/' || r == '\\' {
		return 0, fmt.Errorf("replacement character %q is not allowed", s)
	}
	return r, nil
}
