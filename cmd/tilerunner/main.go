// tilerunner is a terminal side-scrolling platformer.
//
// Usage:
//
//	tilerunner play      - Play in the local terminal
//	tilerunner serve     - Start SSH server for remote play
//	tilerunner scores    - Show the best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 90)
//	--seed <value>  - Set RNG seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.tilerunner/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilerunner",
	Short: "Tile Runner - a terminal platformer",
	Long: `Tile Runner is a side-scrolling platformer played directly in your
terminal. Run right, jump over pits, grab crates, dodge patrols and
reach the gate at the end of each procedurally generated level.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  tilerunner play
  tilerunner play --difficulty hard
  tilerunner play --seed 42
  tilerunner serve --ssh :2222
  tilerunner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 90, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilerunner/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
