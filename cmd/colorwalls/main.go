// colorwalls is a terminal arcade game about bouncing a colored ball
// between two colored walls. The ball may only land on a wall segment of
// its own color.
//
// Usage:
//
//	colorwalls play          - Play in the local terminal
//	colorwalls serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set render frame rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorwalls",
	Short: "Color Walls - Match the ball to the wall",
	Long: `Color Walls is a terminal arcade game. A ball bounces between a
left and a right wall, both divided into colored segments. Each bounce
must land the ball on a segment of its own color; any other landing ends
the game.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play

Examples:
  colorwalls play
  colorwalls play --config ./my-walls.yaml
  colorwalls play --seed 42
  colorwalls serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
