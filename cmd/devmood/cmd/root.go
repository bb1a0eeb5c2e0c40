package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iiroan/devmood/internal/config"
	"github.com/iiroan/devmood/internal/prefs"
	"github.com/iiroan/devmood/internal/ui"
)

var (
	verbose     bool
	quiet       bool
	noColor     bool
	cfgFile     string
	storeDriver string
	logFile     string
	logger      *log.Logger
	cfg         *config.Config
	store       *prefs.Store
)

var rootCmd = &cobra.Command{
	Use:   "devmood",
	Short: "A mood board for developers",
	Long: `devmood shows dev jokes, coding playlists, the weather, and code
snippets on a full-screen terminal board.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if err := config.LoadEnv(); err != nil {
			logger.Warn("could not load .env", "error", err)
		}

		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		loadConfig()
		openStore(commandContext(cmd))
		applyUISettings(commandContext(cmd))
		setupLogger()

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		closeStore()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runBoard(commandContext(cmd))
		}
		return cmd.Help()
	},
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, huh.ErrUserAborted) {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("✗ "+err.Error()))
	}
	closeStore()
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: <config dir>/devmood/devmood.yaml)")
	rootCmd.PersistentFlags().StringVar(&storeDriver, "store", "", "Preference storage driver (file, sqlite, memory)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs here while the board is open")

	rootCmd.AddCommand(jokeCmd)
	rootCmd.AddCommand(playlistCmd)
	rootCmd.AddCommand(weatherCmd)
	rootCmd.AddCommand(snippetCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func loadConfig() {
	var err error
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	if storeDriver != "" {
		cfg.Storage.Driver = strings.ToLower(storeDriver)
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}
}

func currentConfig() *config.Config {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return cfg
}

// openStore falls back to process memory when the configured backend cannot
// be opened, so changes still apply for the rest of the session.
func openStore(ctx context.Context) {
	if store != nil {
		return
	}
	c := currentConfig()

	path, err := c.StorePath()
	if err != nil && c.Storage.Driver != prefs.DriverMemory {
		logger.Debug("no preference path, keeping preferences in memory", "error", err)
		store = prefs.NewStore(prefs.NewMemoryBackend(), logger)
		return
	}

	backend, err := prefs.Open(ctx, prefs.Options{Driver: c.Storage.Driver, Path: path})
	if err != nil {
		logger.Debug("preference storage unavailable, keeping preferences in memory", "driver", c.Storage.Driver, "error", err)
		backend = prefs.NewMemoryBackend()
	}
	store = prefs.NewStore(backend, logger)
}

func currentStore(ctx context.Context) *prefs.Store {
	openStore(ctx)
	return store
}

func closeStore() {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Debug("closing preference store", "error", err)
	}
	store = nil
}

// watchPath returns the file to watch for external preference edits, or ""
// when the backend has nothing on disk.
func watchPath() string {
	c := currentConfig()
	if !c.Storage.Watch || c.Storage.Driver == prefs.DriverMemory {
		return ""
	}
	path, err := c.StorePath()
	if err != nil || path == ":memory:" || strings.HasPrefix(path, "file::memory:") {
		return ""
	}
	return path
}

func applyUISettings(ctx context.Context) {
	p := currentStore(ctx).Load(ctx)
	ui.ApplyPreferences(p, colorDisabled())
}

func colorDisabled() bool {
	return noColor || os.Getenv("NO_COLOR") != ""
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !colorDisabled() {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			TimeFormat: time.Kitchen,
		})
	}
	logger.SetLevel(level)
	logger.SetReportTimestamp(verbose)
	logger.SetStyles(styles)
}

// redirectLogs points the logger at --log-file, or discards output, while
// the alt screen is active. The returned func restores stderr.
func redirectLogs() func() {
	var out io.Writer = io.Discard
	var f *os.File
	if logFile != "" {
		var err error
		f, err = os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Warn("could not open log file", "path", logFile, "error", err)
		} else {
			out = f
		}
	}
	logger.SetOutput(out)

	return func() {
		logger.SetOutput(os.Stderr)
		if f != nil {
			_ = f.Close()
		}
	}
}
