// kokaton is Fight Kokaton, a single-screen shooter for the terminal.
//
// Usage:
//
//	kokaton play             - Play in the terminal
//	kokaton play --gui       - Play in a window
//	kokaton serve            - Start SSH server for remote play
//	kokaton sprites          - Validate and list the sprite catalog
//
// Global flags:
//
//	--fps <rate>         - Set terminal tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom game config YAML
//	--sprites <path>     - Use a custom sprite catalog YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagSprites  string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kokaton",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kokaton",
	Short: "Fight Kokaton - dodge and shoot bouncing bombs",
	Long: `Fight Kokaton is a single-screen shooter. Move the player around the
play area, shoot the bouncing hazards for points and avoid touching them:
the first contact ends the game.

Available commands:
  play     - Play in the terminal (or a window with --gui)
  serve    - Start SSH server for remote play
  sprites  - Validate and list the sprite catalog

Examples:
  kokaton play
  kokaton play --gui
  kokaton play --seed 42 --config ./configs/kokaton.yaml
  kokaton serve --ssh :2222`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Terminal tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite catalog YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(spritesCmd)
}
