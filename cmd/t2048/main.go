// t2048 is a terminal 2048 with deterministic, replayable games.
//
// Usage:
//
//	t2048 play                 - Play in the terminal
//	t2048 play --record <f>    - Record applied moves to a file
//	t2048 play --playback <f>  - Replay a recorded game
//	t2048 scores               - Show recorded results
//	t2048 serve                - Serve games over SSH
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible games (0 = time-based)
//	--db <path>      - Results database path (default from config)
//	--config <path>  - Custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/t2048/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 in your terminal, with recordable and replayable games",
	Long: `t2048 is a terminal 2048 where every game is reproducible: the same
seed fed the same moves always produces the same board.

Games can be recorded to a move log and replayed later, either watched
in the terminal or verified headlessly.

Examples:
  t2048 play
  t2048 play --seed 42 --record game.log
  t2048 play --seed 42 --playback game.log
  t2048 play --seed 42 --playback game.log --record check.log
  t2048 scores
  t2048 serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to results database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective configuration, honoring --config.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// dbPath returns the results database path, --db overriding config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DB
}
