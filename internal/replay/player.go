package replay

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/vovakirdan/t2048/internal/game"
)

// Player reads moves back from a recorded log.
//
// Damaged logs degrade instead of failing: a line without a score
// still yields its key, with the score reported as -1. A blank line
// or the end of the log ends the run with a forced quit, so playback
// always reaches a terminal state.
type Player struct {
	sc   *bufio.Scanner
	done bool
}

// NewPlayer returns a Player reading the log from r.
func NewPlayer(r io.Reader) *Player {
	return &Player{sc: bufio.NewScanner(r)}
}

// Next returns the next recorded key and the score noted after it, or
// -1 when the line carries none. Once the log is exhausted Next keeps
// returning game.KeyQuit.
func (p *Player) Next() (game.Key, int) {
	if p.done {
		return game.KeyQuit, -1
	}
	if !p.sc.Scan() {
		p.done = true
		return game.KeyQuit, -1
	}

	line := p.sc.Text()
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i == len(line) {
		p.done = true
		return game.KeyQuit, -1
	}

	key := game.Key(line[i])
	score := -1
	if rest, ok := strings.CutPrefix(line[i+1:], ":"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(rest)); err == nil {
			score = n
		}
	}
	return key, score
}

// Done reports whether the log has been exhausted.
func (p *Player) Done() bool {
	return p.done
}
