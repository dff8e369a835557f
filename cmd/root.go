package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/trendarr/config"
	"github.com/s0up4200/trendarr/filter"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	filters *filter.Manager

	// Command flags
	filterExpr string
	preset     string
	jsonOutput bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "trendarr",
	Short: "Replay and inspect trending movie state",
	Long: `trendarr drives the trending movies state through its action log.

Actions (fetch request, success, load more, failure) are read from JSON-lines
logs, dispatched through the store one at a time and the resulting state is
printed, optionally narrowed down with a filter expression.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print state as JSON")

	// Add subcommands
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger and filter presets
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, cmd.ErrOrStderr())

	if cmd.Flags().Changed("json") && jsonOutput {
		cfg.Output.Format = "json"
	}

	filters = filter.NewManager(
		filter.WithCompiler(filter.NewCompiler(filter.WithCache(cfg.Filter.CacheSize))),
	)
	if err := filters.RegisterFilters(cfg.Filter.PresetExpressions()); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}
	if names := filters.ListFilters(); len(names) > 0 {
		logger.Debug().Strs("presets", names).Msg("Registered filter presets")
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).Level(level).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
