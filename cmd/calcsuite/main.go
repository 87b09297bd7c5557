package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Starties/calculators/internal/config"
	"github.com/Starties/calculators/internal/logger"
	"github.com/Starties/calculators/internal/tui"
)

var (
	configFile string
	logLevel   string

	// cfg is loaded once before any command runs
	cfg *config.Config
)

// errSyntax makes the process exit non-zero after a sentinel result has
// already been printed.
var errSyntax = errors.New("syntax error")

var rootCmd = &cobra.Command{
	Use:   "calcsuite",
	Short: "Scientific and programmer calculators for the terminal",
	Long: `Calcsuite is a private, offline calculator suite:

- SC-30XII Standard: scientific calculator with trig, logs and fractions
- Bitwise Commander: base conversion and bitwise operations

Run without arguments to pick a calculator from the catalog.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context(), tui.ViewCatalog)
	},
}

var scientificCmd = &cobra.Command{
	Use:   "scientific",
	Short: "Open the scientific calculator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context(), tui.ViewScientific)
	},
}

var programmerCmd = &cobra.Command{
	Use:   "programmer",
	Short: "Open the programmer calculator",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context(), tui.ViewProgrammer)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file (JSON), defaults to "+config.GetConfigPath())
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, none")

	rootCmd.AddCommand(scientificCmd, programmerCmd, evalCmd, convertCmd, replCmd, modelsCmd, keysCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errSyntax) {
			fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		}
		os.Exit(1)
	}
}

func configPath() string {
	if configFile != "" {
		return configFile
	}
	return config.GetConfigPath()
}

// setup loads the configuration and installs the global logger
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	// Environment variables override the file, flags override both.
	if envLevel := strings.TrimSpace(os.Getenv("CALCSUITE_LOG_LEVEL")); envLevel != "" {
		cfg.LogLevel = envLevel
	}
	if envPath := strings.TrimSpace(os.Getenv("CALCSUITE_LOG_PATH")); envPath != "" {
		cfg.LogPath = envPath
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if err := logger.Init(logger.ParseLevel(cfg.LogLevel), cfg.LogPath); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	slog.SetDefault(slog.New(logger.NewSlogHandler(logger.Global())))

	logger.Info("calcsuite %s starting", cmd.Name())
	logger.Debug("Configuration loaded: path=%s angle=%s precision=%d base=%s log_level=%s",
		configPath(), cfg.AngleMode, cfg.Precision, cfg.DefaultBase, cfg.LogLevel)
	return nil
}

func teardown() {
	if err := logger.Global().Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close logger: %v\n", err)
	}
}

func runTUI(ctx context.Context, start tui.View) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("the interactive calculators need a terminal; try 'calcsuite eval' or 'calcsuite repl'")
	}
	return tui.Run(ctx, tui.Options{
		Config:     cfg,
		ConfigPath: configPath(),
		Start:      start,
		AltScreen:  true,
	})
}
