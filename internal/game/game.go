package game

import (
	"errors"
	"math/rand"
)

// Key is a canonical single-byte input: 'w', 'a', 's', 'd' move, 'q'
// quits. Replay logs store keys in this form regardless of how they
// were typed.
type Key byte

const (
	KeyUp    Key = 'w'
	KeyLeft  Key = 'a'
	KeyDown  Key = 's'
	KeyRight Key = 'd'
	KeyQuit  Key = 'q'
)

// Direction returns the move direction for a key and whether the key is
// a move key at all.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Status is the lifecycle state of a game.
type Status int

const (
	StatusPlaying Status = iota
	StatusLost
	StatusQuit
)

// String returns the label used in exit reports and stored results.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLost:
		return "lost"
	case StatusQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// ErrBoardFull is returned by placeTile when no empty cell remains.
var ErrBoardFull = errors.New("game: board full")

// Game holds a single 2048 session: the board, the score, the turn
// counter, and the RNG stream that drives tile spawns.
type Game struct {
	board  Board
	score  int
	turns  int
	status Status
	seed   int64
	rng    *rand.Rand
}

// New creates a game from the given seed and spawns the two opening
// tiles. Equal seeds fed equal key sequences produce identical games.
func New(seed int64) *Game {
	g := &Game{seed: seed, rng: rand.New(rand.NewSource(seed))}

	g.placeTile() //nolint:errcheck // 16 empty cells, cannot fail
	g.placeTile() //nolint:errcheck
	return g
}

// placeTile spawns a tile in a random empty cell: exponent 1 (tile 2)
// nine times out of ten, exponent 2 (tile 4) otherwise. The cell draw
// always precedes the value draw so the RNG stream stays stable for
// replays.
func (g *Game) placeTile() error {
	empties := g.board.EmptyCount()
	if empties == 0 {
		return ErrBoardFull
	}

	target := g.rng.Intn(empties)
	value := 1
	if g.rng.Intn(10) == 0 {
		value = 2
	}

	n := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if g.board[y][x] != 0 {
				continue
			}
			if n == target {
				g.board[y][x] = value
				return nil
			}
			n++
		}
	}
	return ErrBoardFull
}

// Apply processes one input key and reports whether it was accepted as
// a move. A move key is accepted only when it changes the board; an
// accepted move bumps the score and turn counter and spawns a new tile.
// KeyQuit ends the game. Unknown keys, rejected moves, and any input to
// a finished game leave the state untouched.
func (g *Game) Apply(key Key) bool {
	if g.status != StatusPlaying {
		return false
	}
	if key == KeyQuit {
		g.status = StatusQuit
		return false
	}

	dir, ok := key.Direction()
	if !ok {
		return false
	}

	next, gained, changed := Slide(g.board, dir)
	if !changed {
		return false
	}

	g.board = next
	g.score += gained
	g.turns++

	// Spawning only fails when the move left no empty cell.
	if err := g.placeTile(); err != nil {
		g.status = StatusLost
	}
	return true
}

// CheckLost probes all four directions on a copy of the board and marks
// the game lost when none of them would change it. Reports whether the
// game is lost.
func (g *Game) CheckLost() bool {
	if g.status != StatusPlaying {
		return g.status == StatusLost
	}
	for _, dir := range directions {
		if WouldMove(g.board, dir) {
			return false
		}
	}
	g.status = StatusLost
	return true
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// Score returns the accumulated score.
func (g *Game) Score() int {
	return g.score
}

// Turns returns the number of accepted moves so far.
func (g *Game) Turns() int {
	return g.turns
}

// Status returns the current lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Seed returns the seed the game was created with.
func (g *Game) Seed() int64 {
	return g.seed
}

// MaxTile returns the largest tile face value on the board.
func (g *Game) MaxTile() int {
	return g.board.MaxTile()
}
