package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akarpov/tilerunner/internal/config"
	"github.com/akarpov/tilerunner/internal/core"
	"github.com/akarpov/tilerunner/internal/platform/tui"
	"github.com/akarpov/tilerunner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a play session in the local terminal.

Controls:
  Left/A     - Run left
  Right/D    - Run right
  Space/W/Up - Jump
  P/Esc      - Pause
  R          - Restart from level 1
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Fewer and shorter pits, fewer patrols
  normal - Default tuning
  hard   - Denser pits and patrols
  fixed  - No difficulty progression across levels

Examples:
  tilerunner play
  tilerunner play --difficulty easy
  tilerunner play --seed 42
  tilerunner play --config ./my-tuning.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard, fixed)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&cfg, preset)
	}

	// Terminal size for the initial viewport; resizes follow live.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ViewportW: width,
		ViewportH: height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}

	runErr := tui.Run(cfg, rt, store)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
