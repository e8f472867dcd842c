// Package commands implements the CLI commands for wr-ai.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/woicw/wr-ai/cmd"
	"github.com/woicw/wr-ai/internal/config"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/logging"
	"github.com/woicw/wr-ai/internal/ui"
)

// debugEnv raises verbosity when no -v flag is given: 1 or true for debug,
// 2 for trace.
const debugEnv = config.EnvPrefix + "_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// cfg is the loaded configuration; configLoadErr is reported lazily so that
// `config set` can repair a broken file.
var (
	cfg           *config.Config
	configLoadErr error
)

// logCloser closes the --log-file handle after the command runs.
var logCloser io.Closer

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: <config dir>/wr-ai/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("wr-ai version {{.Version}}\n")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "wr-ai",
	Short: "Merge shared AI assistant configuration into your project",
	Long: `wr-ai fetches a shared configuration repository and merges the
commands, skills, agents, hooks, MCP servers, and LSP servers you pick into
the project's .claude directory.

Merges never delete anything: files you select overwrite their local
copies, and everything else under .claude is left alone.`,
	Example: `  # Point wr-ai at your team's repository
  wr-ai set github acme/ai-config

  # Pick items interactively
  wr-ai init

  # Add specific items
  wr-ai add review skill:pdf mcp:github

  See Also: wr-ai list, wr-ai update`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeLogFile()
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("--quiet and --verbose are mutually exclusive"),
			"Use one of -q or -v")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Valid formats: text, json")
	}

	closeLogFile()
	logger, closer, err := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		File:   logFile,
	})
	if err != nil {
		return errors.NewUserError(err, "Check that the log file path is writable")
	}
	logCloser = closer

	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

func closeLogFile() {
	if logCloser != nil {
		_ = logCloser.Close()
		logCloser = nil
	}
}

// checkConfig surfaces config load errors for commands that need config.
func checkConfig(cmd *cobra.Command) error {
	if configLoadErr == nil {
		return nil
	}
	switch cmd.Name() {
	case "help", "version", "gen-doc", "clear", "doctor":
		return nil
	}
	if cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config") {
		return nil
	}
	return errors.NewConfigError(configLoadErr)
}

// currentConfig returns the loaded configuration or defaults.
func currentConfig() *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}

// newStore returns the config store behind --config.
func newStore() *config.FileStore {
	return config.NewFileStore(configPath)
}

// interruptContext returns a context cancelled on Ctrl+C.
func interruptContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt)
}

// out returns where user-facing output goes; --quiet discards it.
func out(cmd *cobra.Command) io.Writer {
	if quiet {
		return io.Discard
	}
	return cmd.OutOrStdout()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ReportError prints err for the user and returns the process exit code.
// Cancellation prints a short note and exits cleanly.
func ReportError(w io.Writer, err error) int {
	if errors.Is(err, errors.ErrCancelled) {
		fmt.Fprintln(w, ui.Info("Cancelled"))
		return errors.ExitCode(err)
	}

	fmt.Fprintln(w, ui.Error(err.Error()))

	var notFound *errors.NotFoundError
	if errors.As(err, &notFound) {
		if hint := notFound.Hint(); hint != "" {
			fmt.Fprintln(w, hint)
		}
	}
	for _, detail := range errors.GetAllDetails(err) {
		fmt.Fprintln(w, ui.Hint(detail))
	}
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintln(w, ui.Hint(exitErr.Suggestion))
	}
	return errors.ExitCode(err)
}
