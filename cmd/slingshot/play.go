package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/slingshot"
)

var (
	flagScript string
	flagExit   bool
	flagFPS    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	Long: `Open the game window and play.

An input script replays pointer steps (press, move, release, click, drag,
wait, reset) from a JSON file, one event per frame:

  {"steps": [
    {"action": "drag", "fromX": 480, "fromY": 460, "toX": 470, "toY": 560, "frames": 20},
    {"action": "wait", "frames": 120}
  ]}

Examples:
  slingshot play
  slingshot play --fps
  slingshot play --script ./clear.json --exit`,
	RunE: runPlay,
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagScript, "script", "", "Replay a JSON input script")
	cmd.Flags().BoolVar(&flagExit, "exit", false, "Exit once the script has finished")
	cmd.Flags().BoolVar(&flagFPS, "fps", false, "Show FPS and TPS")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagFPS {
		cfg.ShowFPS = true
	}

	stage, err := slingshot.NewStage(cfg, slingshot.Options{Logger: logger})
	if err != nil {
		return err
	}

	if flagScript != "" {
		data, err := os.ReadFile(flagScript)
		if err != nil {
			return fmt.Errorf("failed to read script %s: %w", flagScript, err)
		}
		runner, err := slingshot.LoadScript(data)
		if err != nil {
			return err
		}
		stage.SetScript(runner, flagExit)
		logger.Info("replaying script", "path", flagScript)
	}

	return slingshot.Run(stage)
}
