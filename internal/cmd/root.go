// Package cmd wires the scrub CLI: flag parsing, configuration merge,
// logger setup, and the per-target rename runs.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/scrub/internal/config"
	"github.com/harrison/scrub/internal/display"
	"github.com/harrison/scrub/internal/filelock"
	"github.com/harrison/scrub/internal/logger"
	"github.com/harrison/scrub/internal/walker"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for scrub
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrub [flags] PATH...",
		Short: "Rename files and directories to safe names",
		Long: `Scrub renames files and directories so their names contain only
safe characters. Whitespace and shell-hostile punctuation are replaced
with a substitution character, runs of replacements are collapsed, and
file extensions are preserved.

Each PATH is renamed in place. With --recursive, directories are
descended depth-first and every entry inside is renamed as well;
children are always renamed before their parent so paths stay valid
throughout the run.

Configuration is loaded from .scrub/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Rename a single file
  scrub "August Gold Q&A Audio.m4a.wav"

  # Preview without touching anything
  scrub --dry-run "dir one"

  # Rename a whole tree
  scrub --recursive "dir one"

  # Use a dash instead of the default underscore
  scrub -c - "take 1.wav"`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE:    runScrub,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().BoolP("recursive", "r", false, "Descend into directories and rename their contents")
	cmd.Flags().BoolP("dry-run", "n", false, "Show what would be renamed without renaming")
	cmd.Flags().StringP("replacement", "c", "", "Substitution character (default: _)")
	cmd.Flags().String("config", "", "Path to config file (default: .scrub/config.yaml)")
	cmd.Flags().String("log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().String("log-dir", "", "Directory for run log files")
	cmd.Flags().Bool("verbose", false, "Show detailed progress (same as --log-level debug)")
	cmd.Flags().Bool("no-lock", false, "Skip per-target run locking")

	return cmd
}

// runScrub implements the root command logic
func runScrub(cmd *cobra.Command, args []string) error {
	// Load configuration from file
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Get flag values
	recursiveFlag, _ := cmd.Flags().GetBool("recursive")
	dryRunFlag, _ := cmd.Flags().GetBool("dry-run")
	replacementFlag, _ := cmd.Flags().GetString("replacement")
	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	logDirFlag, _ := cmd.Flags().GetString("log-dir")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noLock, _ := cmd.Flags().GetBool("no-lock")

	// Build flag pointers for merge (only explicitly set values)
	var recursivePtr, dryRunPtr *bool
	if cmd.Flags().Changed("recursive") {
		recursivePtr = &recursiveFlag
	}
	if cmd.Flags().Changed("dry-run") {
		dryRunPtr = &dryRunFlag
	}

	var replacementPtr, logLevelPtr, logDirPtr *string
	if cmd.Flags().Changed("replacement") {
		replacementPtr = &replacementFlag
	}
	if cmd.Flags().Changed("log-level") {
		logLevelPtr = &logLevelFlag
	} else if verbose {
		debugLevel := "debug"
		logLevelPtr = &debugLevel
	}
	if cmd.Flags().Changed("log-dir") {
		logDirPtr = &logDirFlag
	}

	// Merge CLI flags with config (flags take precedence)
	cfg.MergeWithFlags(recursivePtr, dryRunPtr, replacementPtr, logLevelPtr, logDirPtr)

	// Validate merged configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Filter out arguments with no name of their own to rename
	targets, ignored := filterTargets(args)
	if len(ignored) > 0 {
		display.WarnIgnoredArgs(ignored).Display(cmd.ErrOrStderr())
	}
	if len(targets) == 0 {
		return fmt.Errorf("no files or directories specified")
	}

	// Set up logging: console always, file log when a log dir is set
	var log logger.Logger
	consoleLog := logger.NewConsoleLogger(cmd.OutOrStdout(), cfg.LogLevel)
	log = consoleLog

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to set up file logging: %w", err)
		}
		defer fileLog.Close()
		log = logger.NewMultiLogger(consoleLog, fileLog)
	}

	opts := cfg.Options()
	w := walker.New(opts, log)

	var progress *display.ProgressIndicator
	if len(targets) > 1 {
		progress = display.NewProgressIndicator(cmd.OutOrStdout(), len(targets))
		progress.Start()
	}

	lockFailures := 0
	for _, target := range targets {
		if progress != nil {
			progress.Step(target)
		}

		// Advisory lock so two runs don't race on the same tree.
		// Dry runs touch nothing, so they skip locking entirely.
		if !opts.DryRun && !noLock {
			lock, err := filelock.ForTarget(target)
			if err != nil {
				log.LogError(fmt.Sprintf("Cannot lock '%s': %v", target, err))
				lockFailures++
				continue
			}

			acquired, err := lock.TryLock()
			if err != nil {
				log.LogError(fmt.Sprintf("Cannot lock '%s': %v", target, err))
				lockFailures++
				continue
			}
			if !acquired {
				log.LogError(fmt.Sprintf("Another run is processing '%s'.  Skipping", target))
				lockFailures++
				continue
			}

			w.Process(target)
			if err := lock.Unlock(); err != nil {
				log.LogWarn(fmt.Sprintf("Cannot release lock for '%s': %v", target, err))
			}
			continue
		}

		w.Process(target)
	}

	if progress != nil {
		progress.Complete()
	}

	stats := w.Stats()
	log.LogSummary(stats)

	failures := stats.Failed + lockFailures
	if failures > 0 {
		return fmt.Errorf("completed with %d failure(s)", failures)
	}
	return nil
}

// filterTargets splits arguments into renameable targets and ignored
// entries. "." and ".." only name a position in the tree, not an entry
// that can be renamed.
func filterTargets(args []string) (targets, ignored []string) {
	for _, arg := range args {
		trimmed := strings.TrimRight(arg, "/")
		if trimmed == "" {
			trimmed = arg
		}
		if trimmed == "." || trimmed == ".." {
			ignored = append(ignored, arg)
			continue
		}
		targets = append(targets, arg)
	}
	return targets, ignored
}
