package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/htmlcheck/internal/checker"
	"github.com/nao1215/htmlcheck/internal/config"
	"github.com/nao1215/htmlcheck/internal/input"
	"github.com/nao1215/htmlcheck/internal/log"
	"github.com/nao1215/htmlcheck/internal/reference"
	"github.com/nao1215/htmlcheck/internal/report"
	"github.com/spf13/cobra"
)

// stdinName is the target value that reads the document from stdin.
const stdinName = "-"

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file...]",
		Short: "Analyze HTML files against the reference layout",
		Long: `Check analyzes one or more HTML documents against the reference layout.

For each input it computes:
- a textual similarity ratio against the reference document
- a structural checklist (DOCTYPE, Bootstrap links, grid elements, CSS)
- a heuristic AI-writing likelihood score with triggered indicators

Examples:
  # Analyze a single file
  htmlcheck check submission.html

  # Analyze several files at once
  htmlcheck check a.html b.html c.html

  # Read the document from stdin
  cat submission.html | htmlcheck check -

  # Grade against a custom reference layout
  htmlcheck check --reference layout.html submission.html

  # Output JSON or Markdown
  htmlcheck check --json submission.html
  htmlcheck check --markdown -o report.md submission.html

Configuration file (.htmlcheck) example:
  reference: layouts/assignment3.html
  maxInputSize: 1048576`,
		Args: cobra.ArbitraryArgs,
		RunE: runCheckCmd,
	}

	// Analysis flags
	cmd.Flags().StringP("reference", "r", "",
		"Path to a replacement reference document (default: embedded layout)")
	cmd.Flags().Int64P("max-input-size", "s", config.DefaultMaxInputSize,
		"Maximum input size in bytes")
	cmd.Flags().IntP("concurrency", "b", config.DefaultConcurrency,
		"Number of inputs analyzed in parallel")

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .htmlcheck in current dir, home dir, or XDG config dir)")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runCheckCmd executes the check command.
func runCheckCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runCheck(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the optional
// configuration file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ReferenceFile, err = cmd.Flags().GetString("reference")
	if err != nil {
		return nil, err
	}

	cfg.MaxInputSize, err = cmd.Flags().GetInt64("max-input-size")
	if err != nil {
		return nil, err
	}

	cfg.Concurrency, err = cmd.Flags().GetInt("concurrency")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Targets = args

	// Load settings from the config file.
	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently skip when no file is found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		file.Apply(cfg)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	return cfg, nil
}

// runCheck executes the analysis for all configured targets.
func runCheck(ctx context.Context, stdin io.Reader, stdout io.Writer, cfg *config.Config, logger *slog.Logger) error {
	// Resolve the reference document
	referenceText := reference.Default()
	if cfg.ReferenceFile != "" {
		var err error
		referenceText, err = reference.Load(cfg.ReferenceFile)
		if err != nil {
			return err
		}
		logger.Info("using reference document", "path", cfg.ReferenceFile)
	}

	// Read all inputs up front so blank or unreadable submissions are
	// rejected before any analysis runs
	reader := input.NewReader(input.WithMaxSize(cfg.MaxInputSize))
	inputs := make([]checker.Input, 0, len(cfg.Targets))
	stdinUsed := false
	for _, target := range cfg.Targets {
		if target == stdinName {
			if stdinUsed {
				return errors.New(`stdin ("-") can only be specified once`)
			}
			stdinUsed = true

			text, err := reader.Read(stdin)
			if err != nil {
				return fmt.Errorf("stdin: %w", err)
			}
			inputs = append(inputs, checker.Input{Name: "stdin", Text: text})
			continue
		}

		text, err := reader.ReadFile(target)
		if err != nil {
			return err
		}
		inputs = append(inputs, checker.Input{Name: target, Text: text})
	}

	logger.Info("starting analysis",
		"inputs", len(inputs),
		"concurrency", cfg.Concurrency,
	)

	chk := checker.New(referenceText, checker.WithLogger(logger))
	batch := checker.NewBatch(chk,
		checker.WithConcurrency(cfg.Concurrency),
		checker.WithBatchLogger(logger),
	)

	reports, err := batch.Run(ctx, inputs)
	if err != nil {
		return err
	}

	writer, cleanup, err := newReportWriter(stdout, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	for _, r := range reports {
		if _, err := writer.Write(r); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}
	return nil
}

// newReportWriter builds the report writer selected by the configuration.
// The returned cleanup closes the report file when one was opened.
func newReportWriter(stdout io.Writer, cfg *config.Config) (report.Writer, func(), error) {
	out := stdout
	cleanup := func() {}

	if cfg.ReportFile != "" {
		if dir := filepath.Dir(cfg.ReportFile); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, nil, fmt.Errorf("failed to create report directory: %w", err)
			}
		}

		f, err := os.Create(cfg.ReportFile) //nolint:gosec // User-provided report path is intentional
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create report file: %w", err)
		}
		out = f
		cleanup = func() {
			_ = f.Close()
		}
	}

	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint()), cleanup, nil
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out), cleanup, nil
	default:
		return report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose)), cleanup, nil
	}
}
