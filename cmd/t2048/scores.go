package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show recorded results",
	Long: `Display the best recorded games.

Opens an interactive scoreboard in a terminal and falls back to plain
text when the output is piped or --plain is given.

Examples:
  t2048 scores
  t2048 scores --plain
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print results as plain text")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearResults(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All results cleared.")
		return
	}

	if flagPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(store)
		return
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores prints the top results as a plain table.
func printScores(store *storage.Store) {
	results, err := store.TopResults(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - t2048")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Run 't2048 play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %s\n", "Rank", "Score", "Turns", "Max", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-5s  %s\n", "----", "-----", "-----", "---", "---", "----")

	// Print results
	for i, r := range results {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-5s  %s\n", i+1, r.Score, r.Turns, r.MaxTile, r.Outcome, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Best: %d  Avg: %.0f  Best tile: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestTile)
	}
}
