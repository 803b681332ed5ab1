// Package batch drives games headlessly from recorded logs.
//
// A batch run replays a log against a fresh game as fast as the moves
// apply, with no terminal and no throttling. Re-recording a replay of
// the same seed must reproduce the log byte for byte; that property is
// what makes recorded games portable test fixtures.
package batch

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/t2048/internal/game"
	"github.com/vovakirdan/t2048/internal/replay"
)

// Summary describes a finished headless run.
type Summary struct {
	Score   int
	Turns   int
	MaxTile int
	Status  game.Status
}

// Run feeds g moves from src until the game reaches a terminal state.
// Applied moves are written to rec when it is non-nil. Moves that do
// not apply are skipped, and a recorded score that disagrees with the
// game is reported through logger but never stops the run.
func Run(g *game.Game, src *replay.Player, rec *replay.Recorder, logger *log.Logger) (Summary, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	for g.Status() == game.StatusPlaying {
		if g.CheckLost() {
			break
		}

		key, want := src.Next()
		if key == game.KeyQuit {
			g.Apply(game.KeyQuit)
			break
		}

		if !g.Apply(key) {
			if _, ok := key.Direction(); ok {
				logger.Warn("recorded move did not apply", "turn", g.Turns(), "key", string(rune(key)))
			} else {
				logger.Warn("skipping unknown key", "key", string(rune(key)))
			}
			continue
		}

		if rec != nil {
			if err := rec.Record(key, g.Score()); err != nil {
				return summarize(g), err
			}
		}

		if want >= 0 && want != g.Score() {
			logger.Warn("recorded score diverges", "turn", g.Turns(), "recorded", want, "game", g.Score())
		}
	}

	sum := summarize(g)
	logger.Info("replay finished",
		"status", sum.Status,
		"score", sum.Score,
		"turns", sum.Turns,
		"max_tile", sum.MaxTile,
	)
	return sum, nil
}

func summarize(g *game.Game) Summary {
	return Summary{
		Score:   g.Score(),
		Turns:   g.Turns(),
		MaxTile: g.MaxTile(),
		Status:  g.Status(),
	}
}
