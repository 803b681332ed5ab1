package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/platform/batch"
	"github.com/vovakirdan/t2048/internal/platform/tui"
	"github.com/vovakirdan/t2048/internal/replay"
	"github.com/vovakirdan/t2048/internal/storage"
)

var (
	flagRecord     string
	flagPlayback   string
	flagDelay      int
	flagMonochrome bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the terminal.

Controls:
  W/A/S/D, arrows, HJKL  - Slide tiles
  R                      - Restart (after the game ends)
  Q/Esc/Ctrl+C           - Quit

Recording writes one line per applied move; quitting is never
recorded. Replaying a log needs the seed of the original game.
With --record and --playback together the game runs headlessly:
the log is replayed at full speed and re-recorded, so the two
files can be compared byte for byte.

Examples:
  t2048 play
  t2048 play --seed 42 --record game.log
  t2048 play --seed 42 --playback game.log
  t2048 play --seed 42 --playback game.log --delay 50
  t2048 play --seed 42 --playback game.log --record check.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record applied moves to this file")
	playCmd.Flags().StringVar(&flagPlayback, "playback", "", "Replay moves from this file")
	playCmd.Flags().IntVar(&flagDelay, "delay", 0, "Pause between replayed moves in milliseconds (default from config)")
	playCmd.Flags().BoolVar(&flagMonochrome, "monochrome", false, "Disable colored tiles")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()

	delay := time.Duration(cfg.Playback.DelayMS) * time.Millisecond
	if cmd.Flags().Changed("delay") {
		delay = time.Duration(flagDelay) * time.Millisecond
	}
	if delay < 0 {
		delay = 0
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var player *replay.Player
	if flagPlayback != "" {
		f, err := os.Open(flagPlayback)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening playback file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		player = replay.NewPlayer(f)

		if flagSeed == 0 {
			fmt.Fprintln(os.Stderr, "Warning: replaying without --seed, the game will diverge from the log")
		}
	}

	var recorder *replay.Recorder
	if flagRecord != "" {
		f, err := os.Create(flagRecord)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating record file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		recorder = replay.NewRecorder(f)
	}

	// Record and playback together run headlessly.
	if player != nil && recorder != nil {
		logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "t2048"})
		sum, err := batch.Run(game.New(seed), player, recorder, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printExitLine(sum.Status, sum.Score, sum.Turns, sum.MaxTile)
		return
	}

	// Terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open result storage. Replayed games are not persisted.
	var store *storage.Store
	if player == nil {
		var err error
		store, err = storage.Open(dbPath(cfg))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
			store = nil
		}
	}

	snap, runErr := tui.Run(tui.Options{
		Store:      store,
		Seed:       seed,
		ScreenW:    width,
		ScreenH:    height,
		Recorder:   recorder,
		Player:     player,
		Delay:      delay,
		Monochrome: flagMonochrome || cfg.Theme.Monochrome,
	})

	// The saved result is already in, so this includes the game that
	// just ended.
	highScore := 0
	if store != nil {
		if h, err := store.HighScore(); err == nil {
			highScore = h
		}
		store.Close() //nolint:errcheck // Best-effort close on exit
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	status := snap.Status
	if status == game.StatusPlaying {
		// The program can only end from a playing state by the user
		// closing the session, which counts as quitting.
		status = game.StatusQuit
	}
	printExitLine(status, snap.Score, snap.Turns, snap.MaxTile)

	if highScore > 0 {
		fmt.Printf("High score: %d\n", highScore)
	}

	if recorder != nil && recorder.Moves() > 0 {
		fmt.Printf("Recorded %d moves. Replay with: t2048 play --seed %d --playback %s\n",
			recorder.Moves(), snap.Seed, flagRecord)
	}
}

// printExitLine prints the end-of-game summary.
func printExitLine(status game.Status, score, turns, maxTile int) {
	fmt.Printf("You %s after scoring %d points in %d turns, with largest tile %d\n",
		status, score, turns, maxTile)
}
