package game

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// directions lists all moves, in the order loss detection probes them.
var directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// deflate shifts all tiles of a row toward index 0, preserving their
// order. The second return reports whether anything moved.
func deflate(row [BoardSize]int) ([BoardSize]int, bool) {
	var out [BoardSize]int
	w := 0
	for _, v := range row {
		if v != 0 {
			out[w] = v
			w++
		}
	}
	return out, out != row
}

// combine merges adjacent equal tiles in a single left-to-right sweep.
// A merged cell is zeroed in place instead of re-packed, so a tile
// produced by one merge can never merge again within the same move.
// Returns the row, the score gained, and whether any merge happened.
func combine(row [BoardSize]int) ([BoardSize]int, int, bool) {
	score := 0
	merged := false
	for x := 1; x < BoardSize; x++ {
		if row[x] != 0 && row[x] == row[x-1] {
			row[x-1]++
			row[x] = 0
			score += 1 << row[x-1]
			merged = true
		}
	}
	return row, score, merged
}

// resolveLine slides one row fully to the left: pack, merge once, then
// pack again to close the gaps merging opened.
func resolveLine(row [BoardSize]int) ([BoardSize]int, int, bool) {
	out, moved := deflate(row)
	out, score, merged := combine(out)
	out, closed := deflate(out)
	return out, score, moved || merged || closed
}

// rotations returns how many clockwise quarter turns align the given
// direction with a leftward move.
func rotations(dir Direction) int {
	switch dir {
	case DirDown:
		return 1
	case DirRight:
		return 2
	case DirUp:
		return 3
	default:
		return 0
	}
}

// Slide performs a move in the given direction: the board is rotated so
// the move runs leftward, every row is resolved, and the rotation is
// undone. Returns the new board, the score gained, and whether the
// board changed.
func Slide(b Board, dir Direction) (Board, int, bool) {
	k := rotations(dir)
	for range k {
		b = b.RotateClockwise()
	}

	score := 0
	changed := false
	for y := range BoardSize {
		row, gained, ch := resolveLine(b[y])
		b[y] = row
		score += gained
		changed = changed || ch
	}

	for range (4 - k) % 4 {
		b = b.RotateClockwise()
	}
	return b, score, changed
}

// WouldMove reports whether sliding in the given direction would change
// the board.
func WouldMove(b Board, dir Direction) bool {
	_, _, changed := Slide(b, dir)
	return changed
}
