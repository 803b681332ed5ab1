package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	cellWidth  = 7 // interior width of a cell plus its left border
	cellHeight = 2 // interior height of a cell plus its top border
	hudHeight  = 2
)

// tileColors is the palette the board cycles through, indexed by
// exponent modulo 6.
var tileColors = [6]core.Color{
	core.ColorRed,
	core.ColorGreen,
	core.ColorYellow,
	core.ColorBlue,
	core.ColorMagenta,
	core.ColorCyan,
}

// brightTileColors holds the bright variants used for exponents below 6.
var brightTileColors = [6]core.Color{
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
}

// tileColor returns the display color for a tile exponent.
func tileColor(exp int) core.Color {
	if exp < 6 {
		return brightTileColors[exp%6]
	}
	return tileColors[exp%6]
}

// Render draws the game view: HUD, grid, tiles, and the game-over
// overlay when the game is lost. The board is centered horizontally.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border

	boardX := (dst.Width() - boardW) / 2
	if boardX < 0 {
		boardX = 0
	}
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)

	if g.status == StatusLost {
		g.renderGameOver(dst, boardX, boardY, boardW, boardH)
	}
}

// renderHUD draws the score line above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	left := fmt.Sprintf("Score: %6d  Turns: %4d", g.score, g.turns)
	dst.DrawText(boardX, 0, left)

	right := fmt.Sprintf("Max: %d", g.board.MaxTile())
	rightX := boardX + boardW - len(right)
	if rightX < boardX+len(left)+2 {
		rightX = boardX + len(left) + 2
	}
	dst.DrawText(rightX, 0, right)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Draw grid borders
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			// Draw horizontal line to the right
			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			// Draw vertical line down
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for y := range BoardSize {
		for x := range BoardSize {
			exp := g.board[y][x]

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			if exp == 0 {
				dst.SetColored(cellX+(cellWidth-1)/2, cellY, '·', core.ColorGray)
				continue
			}

			// Center the face value in the cell
			valStr := strconv.Itoa(1 << exp)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(exp))
		}
	}
}

// renderGameOver draws the loss overlay on top of the board.
func (g *Game) renderGameOver(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
	drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press q to quit")
}

// drawOverlay draws a centered boxed text overlay.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(boxX, boxY, boxW, boxH)

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawTextColored(x, boxY+1+i, line, core.ColorWhite)
	}
}
