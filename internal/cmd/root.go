package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/catr/internal/config"
	"github.com/harrison/catr/internal/display"
	"github.com/harrison/catr/internal/executor"
	"github.com/harrison/catr/internal/logger"
	"github.com/harrison/catr/internal/models"
	"github.com/harrison/catr/internal/render"
	"github.com/harrison/catr/internal/source"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// rootOptions holds the values bound to the root command's flags.
type rootOptions struct {
	number         bool
	numberNonblank bool
	configPath     string
	logLevel       string
	logDir         string
}

// NewRootCommand creates and returns the root cobra command for catr
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "catr [FILE]...",
		Short: "Concatenate files to standard output, optionally numbering lines",
		Long: `catr prints each FILE to standard output in order. With no FILE, or
when FILE is -, it reads standard input.

Line numbers continue across files: the first line of the second file is
numbered one after the last numbered line of the first.

A file that cannot be opened or read is reported on standard error and
skipped; the remaining files are still printed and the exit status is 0.

Defaults can be set in $CATR_HOME/config.yaml (or .catr/config.yaml):

  mode: number-nonblank   # plain | number | number-nonblank
  log_level: warn
  log_dir: ""`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		// Errors are printed once by main.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flag errors above still print usage; failures from here on do not.
			cmd.SilenceUsage = true
			return runCat(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.number, "number", "n", false, "Number lines")
	cmd.Flags().BoolVarP(&opts.numberNonblank, "number-nonblank", "b", false, "Number nonblank lines")
	cmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file (default $CATR_HOME/config.yaml or .catr/config.yaml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logDir, "log-dir", "", "Write a run log into this directory")

	return cmd
}

// runCat resolves configuration, wires the loggers and runs the orchestrator.
func runCat(cmd *cobra.Command, args []string, opts *rootOptions) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	runID := uuid.NewString()

	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	loggers := []executor.Logger{consoleLog}

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel, runID)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		loggers = append(loggers, fileLog)
		consoleLog.LogDebug(fmt.Sprintf("Run log: %s", fileLog.Path()))
	}

	orch := executor.NewOrchestrator(
		source.NewResolver(cmd.InOrStdin()),
		render.NewWriter(cmd.OutOrStdout()),
		display.NewReporter(cmd.ErrOrStderr()),
		&multiLogger{loggers: loggers},
		runID,
	)

	_, err = orch.Execute(models.Invocation{
		Files: args,
		Mode:  cfg.NumberingMode(),
	})
	return err
}

// loadConfig reads the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config file: %w", err)
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if len(cfg.UnknownKeys) > 0 {
		display.WarnUnknownConfigKeys(path, cfg.UnknownKeys).Display(cmd.ErrOrStderr())
	}

	flags := cmd.Flags()

	var mode *models.Mode
	if flags.Changed("number") || flags.Changed("number-nonblank") {
		m, err := models.ModeFromFlags(opts.number, opts.numberNonblank)
		if err != nil {
			return nil, err
		}
		mode = &m
	}

	var logLevel, logDir *string
	if flags.Changed("log-level") {
		logLevel = &opts.logLevel
	}
	if flags.Changed("log-dir") {
		logDir = &opts.logDir
	}

	cfg.MergeWithFlags(mode, logLevel, logDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
