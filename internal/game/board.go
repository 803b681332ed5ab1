// Package game implements the 2048 sliding-tile engine: the board, the
// move resolution, the spawn policy, and the turn state machine.
//
// Cells store tile exponents, not face values: a cell holding v
// represents the tile 2^v, and zero means the cell is empty. Boards are
// plain value types, so assignment copies the whole grid and speculative
// moves never touch live state.
package game

// BoardSize is the board dimension.
const BoardSize = 4

// Board is a 4x4 grid of tile exponents.
type Board [BoardSize][BoardSize]int

// RotateClockwise returns the board rotated 90 degrees clockwise.
func (b Board) RotateClockwise() Board {
	var out Board
	for y := range BoardSize {
		for x := range BoardSize {
			out[y][x] = b[BoardSize-1-x][y]
		}
	}
	return out
}

// EmptyCount returns the number of empty cells.
func (b Board) EmptyCount() int {
	count := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] == 0 {
				count++
			}
		}
	}
	return count
}

// MaxTile returns the largest tile face value on the board,
// or 0 if the board is empty.
func (b Board) MaxTile() int {
	maxExp := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if b[y][x] > maxExp {
				maxExp = b[y][x]
			}
		}
	}
	if maxExp == 0 {
		return 0
	}
	return 1 << maxExp
}
