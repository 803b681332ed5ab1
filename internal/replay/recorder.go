// Package replay records move logs and plays them back.
//
// A log is a plain text stream with one line per applied move in the
// form "key:score", where key is the single input character and score
// is the running total after the move. The key drives playback; the
// score is carried so a replay can be checked against the original
// run. Quitting is never recorded, so a log that simply ends reads as
// the player walking away.
package replay

import (
	"fmt"
	"io"

	"github.com/vovakirdan/t2048/internal/game"
)

// Recorder appends one log line per applied move to an output stream.
type Recorder struct {
	w     io.Writer
	moves int
}

// NewRecorder returns a Recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Record writes the line for key and the total score after the move.
func (r *Recorder) Record(key game.Key, score int) error {
	if _, err := fmt.Fprintf(r.w, "%c:%d\n", key, score); err != nil {
		return fmt.Errorf("replay: cannot record move: %w", err)
	}
	r.moves++
	return nil
}

// Moves reports how many moves have been recorded so far.
func (r *Recorder) Moves() int {
	return r.moves
}
