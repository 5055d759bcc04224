package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bigtick/bigtick/internal/config"
	"github.com/bigtick/bigtick/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configPath string
	verbose    bool
	refresh    time.Duration
	noSound    bool
	noNotify   bool
	noDate     bool

	rootCmd = &cobra.Command{
		Use:   "bigtick",
		Short: "A big-digit terminal clock with countdown and stopwatch modes.",
		Long: `bigtick turns the terminal into an oversized clock. It can show the
time of day, count down to zero with a desktop notification and alarm beep,
or run as a stopwatch. Keys inside: space pauses, r resets, c/d/s switch
modes, q quits.`,
		Run: func(cmd *cobra.Command, args []string) {
			runClock(cmd, "", 0)
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr; the TUI owns stdout.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the config file")
	rootCmd.PersistentFlags().DurationVar(&refresh, "refresh", 0, "Refresh interval (e.g. 100ms); overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&noSound, "no-sound", false, "Disable the alarm beep")
	rootCmd.PersistentFlags().BoolVar(&noNotify, "no-notify", false, "Disable the desktop notification")
	rootCmd.PersistentFlags().BoolVar(&noDate, "no-date", false, "Hide the date line in clock mode")

	rootCmd.AddCommand(downCmd)
	rootCmd.AddCommand(upCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var downCmd = &cobra.Command{
	Use:   "down DURATION",
	Short: "Count down from DURATION and fire the alarm at zero",
	Long:  "Count down from DURATION (e.g. 25m, 1h30m, 90s). At zero the alarm fires once: a desktop notification plus a beep, and the digits flash.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target, err := time.ParseDuration(args[0])
		if err != nil {
			logrus.Fatalf("Invalid countdown duration %q: expected something like 25m or 1h30m", args[0])
		}
		runClock(cmd, "countdown", target)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Run a stopwatch counting up from zero",
	Run: func(cmd *cobra.Command, args []string) {
		runClock(cmd, "stopwatch", 0)
	},
}

// runClock assembles the configuration from file and flags, validates it,
// and hands over to the event loop.
func runClock(cmd *cobra.Command, mode string, target time.Duration) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logrus.Fatal(err)
	}

	// Flags override file values.
	if mode != "" {
		cfg.Mode = mode
	}
	if target > 0 {
		cfg.Target = config.Duration(target)
	}
	if cmd.Flags().Changed("refresh") || cmd.InheritedFlags().Changed("refresh") {
		cfg.RefreshInterval = config.Duration(refresh)
	}
	if noSound {
		cfg.Sound = false
	}
	if noNotify {
		cfg.Notify = false
	}
	if noDate {
		cfg.ShowDate = false
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	if err := tui.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "bigtick: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
