package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/yourusername/center-window/internal/config"
	"github.com/yourusername/center-window/internal/dialog"
	"github.com/yourusername/center-window/internal/logging"
	"github.com/yourusername/center-window/internal/output"
	"github.com/yourusername/center-window/internal/platform"
	"github.com/yourusername/center-window/internal/session"
	"github.com/yourusername/center-window/internal/window"
)

var (
	configPath   string
	dialogKind   string
	pollInterval time.Duration
	dryRun       bool
	jsonOutput   bool
	noColor      bool
	debugMode    bool

	// cfg is the effective configuration, set by loadConfig
	cfg *config.Config

	// Color functions
	errorColor = color.New(color.FgRed, color.Bold)
	infoColor  = color.New(color.FgCyan)
	keyColor   = color.New(color.FgYellow)
)

// rootCmd runs the interactive centering loop
var rootCmd = &cobra.Command{
	Use:   "center-window",
	Short: "Center a window on its monitor by clicking it",
	Long: `center-window asks you to click a window, confirms its title, and moves it
to the middle of the work area of the monitor it is on.

The visible frame is centered, not the window rectangle, so drop shadows and
invisible resize borders do not push the window off-center. The prompt comes
back after every attempt; cancel it to quit.`,
	Version:           "0.1.0",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := platform.New()
		if err != nil {
			printError(err.Error())
			return err
		}

		prompter, err := dialog.New(cfg.Settings.Dialog, dialog.Options{
			Caption: cfg.Settings.Caption,
			Topmost: cfg.Settings.Topmost,
		})
		if err != nil {
			printError(err.Error())
			return err
		}

		// Last-error reads and message boxes must stay on one OS thread.
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		logging.Info().
			Str("dialog", cfg.Settings.Dialog).
			Str("pollInterval", cfg.Settings.PollInterval.String()).
			Bool("dryRun", cfg.Settings.DryRun).
			Msg("starting")

		s := session.New(backend, prompter, session.Options{
			PollInterval: cfg.Settings.PollInterval.Std(),
			DryRun:       cfg.Settings.DryRun,
		})
		if err := s.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("session ended")
			printError(err.Error())
			return err
		}
		return nil
	},
}

// inspectCmd reports geometry for a clicked window without moving it
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the frames and target position of a clicked window",
	Long: `Waits for a click, then prints the monitor work area, the visible (extended
frame) and logical (window rect) frames of the foreground window, the shadow
padding between them, and where centering would move it. Nothing is moved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := platform.New()
		if err != nil {
			printError(err.Error())
			return err
		}

		runtime.LockOSThread()
		defer runtime.UnlockOSThread()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if !jsonOutput {
			infoColor.Println("Click the window to inspect...")
		}

		h, err := window.Acquire(ctx, backend, cfg.Settings.PollInterval.Std())
		if err != nil {
			printError(fmt.Sprintf("Failed to get window: %v", err))
			return err
		}

		title, err := window.Title(backend, h)
		if err != nil {
			printError(fmt.Sprintf("Failed to get title: %v", err))
			return err
		}

		result, err := window.Center(ctx, backend, h, window.CenterOpts{DryRun: true})
		if err != nil {
			printError(fmt.Sprintf("Failed to resolve geometry: %v", err))
			return err
		}

		in := output.Inspection{Title: title, Result: result}
		if jsonOutput {
			return output.PrintJSON(os.Stdout, in)
		}

		output.PrintWindowDetail(os.Stdout, in)
		fmt.Println()
		output.PrintGeometryTable(os.Stdout, in)
		return nil
	},
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long:  `Prints the configuration after defaults, the config file and flags are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if jsonOutput {
			return output.PrintJSON(os.Stdout, cfg)
		}

		data, err := cfg.Marshal()
		if err != nil {
			printError(fmt.Sprintf("Failed to render config: %v", err))
			return err
		}
		keyColor.Print("# ")
		fmt.Println(resolvedConfigPath())
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: "+config.GetConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&dialogKind, "dialog", "", "Prompt style: messagebox or console")
	rootCmd.PersistentFlags().DurationVar(&pollInterval, "poll-interval", 0, "Mouse button sampling interval")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Compute positions but do not move windows")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	inspectCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	configCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)

	// Disable color if requested
	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the exit code. The log file is closed
// before returning since os.Exit skips deferred calls.
func run(args []string) int {
	defer logging.Close()

	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

// Helper functions

// loadConfig reads the config file, applies flag overrides and starts logging.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		printError(err.Error())
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dialog") {
		loaded.Settings.Dialog = dialogKind
	}
	if flags.Changed("poll-interval") {
		loaded.Settings.PollInterval = config.Duration(pollInterval)
	}
	if flags.Changed("dry-run") {
		loaded.Settings.DryRun = dryRun
	}
	if err := loaded.Validate(); err != nil {
		printError(err.Error())
		return err
	}
	cfg = loaded

	if err := logging.Init(cfg.Logging.File); err != nil {
		// Not fatal: the loop works without a log file.
		printError(fmt.Sprintf("Failed to open log file: %v", err))
	}
	if err := logging.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}
	if debugMode {
		logging.SetDebug(true)
	}
	return nil
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigPath()
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, "Error:", msg)
	} else {
		errorColor.Fprint(os.Stderr, "✗ Error: ")
		fmt.Fprintln(os.Stderr, msg)
	}
}
