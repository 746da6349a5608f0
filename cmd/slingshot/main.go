// slingshot is a drag-to-launch target game.
//
// Usage:
//
//	slingshot                - Open the game window
//	slingshot play           - Same as above
//	slingshot config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Config file (default: search ~/.slingshot, ./configs, embedded)
//	--seed <value>     - RNG seed for reproducible target placement
//	--width, --height  - Override the window size
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/slingshot"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagWidth    int
	flagHeight   int
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slingshot",
	Short: "Drag the handle, launch the projectile, hit every target",
	Long: `Slingshot is a small drag-to-launch target game.

Pull the handle away from the projectile and let go to launch it in the
opposite direction. Hit every target to stop the clock; the reset button
starts a new session.

Examples:
  slingshot
  slingshot --seed 42 --width 1280 --height 720
  slingshot play --script ./testdata/clear.json --exit
  slingshot config`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = from config, else time based)")
	rootCmd.PersistentFlags().IntVar(&flagWidth, "width", 0, "Window width (0 = from config)")
	rootCmd.PersistentFlags().IntVar(&flagHeight, "height", 0, "Window height (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Bare "slingshot" plays, so it takes the play flags too.
	addPlayFlags(rootCmd)
	addPlayFlags(playCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger for the requested level.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "slingshot",
		Level:           level,
	}), nil
}

// loadConfig loads the config and applies the global flag overrides.
func loadConfig() (slingshot.Config, error) {
	cfg, err := slingshot.LoadConfig(flagConfig)
	if err != nil {
		return slingshot.Config{}, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if flagWidth > 0 {
		cfg.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Height = flagHeight
	}
	return cfg, cfg.Validate()
}
