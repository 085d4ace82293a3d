package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-kokaton/internal/assets"
	"github.com/vovakirdan/tui-kokaton/internal/config"
	"github.com/vovakirdan/tui-kokaton/internal/core"
	"github.com/vovakirdan/tui-kokaton/internal/games/kokaton"
	"github.com/vovakirdan/tui-kokaton/internal/platform/gui"
	"github.com/vovakirdan/tui-kokaton/internal/platform/tui"
)

var (
	flagGUI  bool
	flagHold int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Fight Kokaton",
	Long: `Start a game of Fight Kokaton.

Controls:
  Arrows/WASD  - Move (diagonals allowed)
  Space        - Fire (one projectile at a time)
  Q/Esc        - Quit

The game ends on the first contact with a hazard. The final frame stays
on screen for a moment, then the program exits.

In the terminal a key counts as held for --hold ticks after it was last
pressed; the window frontend (--gui) reads the real key state.

Examples:
  kokaton play
  kokaton play --gui
  kokaton play --seed 42
  kokaton play --hold 15 --fps 30
  kokaton play --config ./my-kokaton.yaml --sprites ./my-sprites.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagGUI, "gui", false, "Play in a window instead of the terminal")
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a terminal key press counts as held")
}

func runPlay(_ *cobra.Command, _ []string) {
	game := mustLoadGame()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
	game.Reset(cfg)
	logger.Info("game started", "seed", seed, "hazards", len(game.Hazards()), "gui", flagGUI)

	var (
		state core.GameState
		err   error
	)
	if flagGUI {
		state, err = gui.Run(game, gui.NewOptions(game.Config().Loop))
	} else {
		state, err = tui.Run(game, cfg, tui.NewOptions(game.Config().Loop, flagHold))
	}
	if err != nil {
		logger.Error("error running game", "error", err)
		os.Exit(1)
	}

	logger.Info("game ended", "score", state.Score, "frames", state.Frame, "reason", tui.EndReason(state))
}

// mustLoadGame loads the config and sprites and builds a game.
// Any failure here is fatal.
func mustLoadGame() *kokaton.Game {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load game config", "error", err)
	}
	logger.Debug("game config loaded", "source", source)

	sprites, spriteSource, err := assets.Load(flagSprites)
	if err != nil {
		logger.Fatal("cannot load sprites", "error", err)
	}
	logger.Debug("sprites loaded", "source", spriteSource)

	game, err := kokaton.New(cfg, sprites)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}
	return game
}
