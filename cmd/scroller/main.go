// scroller is an endless tile scroller for the terminal.
//
// Usage:
//
//	scroller list              - List configured scenes
//	scroller play <scene>      - Scroll a scene
//	scroller menu              - Pick scenes interactively
//	scroller serve             - Start SSH server for remote viewing
//	scroller runs <scene>      - Show the longest runs of a scene
//	scroller stats             - Show totals for every scene
//	scroller config            - Show or dump the scene configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible variant picks
//	--db <path>        - Set database path (default: ~/.scroller/runs.db)
//	--config <path>    - Use a custom scene config YAML
//	--speed <preset>   - Speed preset: slow, normal, fast, fixed
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-scroller/internal/config"
	"github.com/vovakirdan/tui-scroller/internal/scene"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagSpeed    string
	flagLogFile  string
	flagLogLevel string

	// Set by the root pre-run hook.
	scenesConfig config.ScrollerConfig
	configSource string
	speedPreset  config.SpeedPreset
	logger       *log.Logger
	logCloser    io.Closer
)

func main() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeLog()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scroller",
	Short: "Scroller - endless tile strips in your terminal",
	Long: `Scroller renders endless scrolling scenes in the terminal. Three tiles
are recycled forever: when one leaves the screen it is re-created past
the leading tile, optionally with a new look.

Available commands:
  list     - Show all configured scenes
  play     - Scroll a specific scene
  menu     - Interactive scene picker
  serve    - Start SSH server for remote viewing
  runs     - Longest runs of a scene
  stats    - Totals for every scene
  config   - Show where scenes are loaded from

Examples:
  scroller list
  scroller play skyline
  scroller play river --speed fast
  scroller menu --config ./my-scenes.yaml
  scroller serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.scroller/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom scene config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSpeed, "speed", "", "Speed preset: slow, normal, fast, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the scene config and registers every scene before a command runs.
func setup(cmd *cobra.Command, _ []string) error {
	if err := openLog(cmd); err != nil {
		return err
	}

	preset, err := config.ParseSpeedPreset(flagSpeed)
	if err != nil {
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	scenesConfig, configSource, speedPreset = cfg, source, preset
	logger.Debug("scene config loaded", "source", source, "scenes", len(cfg.Scenes))

	return scene.Register(cfg, scene.WithPreset(preset))
}

// openLog creates the command logger. Interactive commands own the terminal,
// so they only log when --log-file is given.
func openLog(cmd *cobra.Command) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = io.Discard
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out, logCloser = f, f
	case cmd.Name() == serveCmd.Name():
		out = os.Stderr
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "scroller",
		Level:           level,
	})
	return nil
}

func closeLog() {
	if logCloser != nil {
		logCloser.Close()
		logCloser = nil
	}
}
