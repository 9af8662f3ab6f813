package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/avoronkov/colorwalls/internal/config"
	"github.com/avoronkov/colorwalls/internal/core"
	"github.com/avoronkov/colorwalls/internal/game"
	"github.com/avoronkov/colorwalls/internal/platform/tui"
)

var (
	flagConfig    string
	flagTimeScale float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game session in the current terminal.

Controls:
  Space/Up/W - Bounce
  R          - Restart (after game over)
  G          - Give up
  + / -      - Speed up / slow down the simulation
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  colorwalls play
  colorwalls play --seed 42
  colorwalls play --time-scale 0.5
  colorwalls play --config ./my-walls.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().Float64Var(&flagTimeScale, "time-scale", 1.0, "Simulation speed multiplier")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
		TimeScale: flagTimeScale,
		Seed:      flagSeed,
	}

	g := game.New(gameCfg)
	if runErr := tui.Run(g, cfg); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
