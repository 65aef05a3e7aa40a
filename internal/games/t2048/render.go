package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/twenty48/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// tileColors maps tile values to display colors. Larger tiles use colorMax.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorYellow,
	8:    core.ColorOrange,
	16:   core.ColorRed,
	32:   core.ColorBrightRed,
	64:   core.ColorMagenta,
	128:  core.ColorBrightYellow,
	256:  core.ColorGreen,
	512:  core.ColorBrightGreen,
	1024: core.ColorCyan,
	2048: core.ColorBrightMagenta,
}

const (
	colorMax   = core.ColorBrightCyan
	colorFresh = core.ColorBrightWhite
	colorGrid  = core.ColorGray
)

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	if c, ok := tileColors[value]; ok {
		return c
	}
	return colorMax
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardW := Size*cellWidth + 1  // +1 for right border
	boardH := Size*cellHeight + 1 // +1 for bottom border
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, highest tile, moves and play time.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	maxStr := fmt.Sprintf("Max: %d", HighestTileValue(g.board))
	dst.DrawText(boardX, 1, maxStr)

	timeStr := FormatDuration(g.ElapsedSeconds())
	infoStr := fmt.Sprintf("Moves: %d  %s", g.moves, timeStr)
	infoX := max(boardX+boardW-len(infoStr), boardX+len(maxStr)+1)
	dst.DrawText(infoX, 1, infoStr)

	if g.blocked {
		hint := "Can't move that way"
		dst.DrawTextColored(boardX+(boardW-len(hint))/2, 2, hint, core.ColorGray)
	}
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Draw grid borders
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == Size:
				corner = '┐'
			case y == Size && x == 0:
				corner = '└'
			case y == Size && x == Size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == Size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == Size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, colorGrid)

			// Horizontal line to the right
			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetColored(px+i, py, '─', colorGrid)
				}
			}

			// Vertical line down
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetColored(px, py+i, '│', colorGrid)
				}
			}
		}
	}

	for _, c := range g.board.Cells() {
		if !c.Occupied {
			continue
		}

		cellX := boardX + c.Col*cellWidth + 1
		cellY := boardY + c.Row*cellHeight + 1

		valStr := formatTile(c.Tile.Value)
		padLeft := max((cellWidth-1-len(valStr))/2, 0)

		color := TileColor(c.Tile.Value)
		if g.fresh[c.Tile.ID] {
			color = colorFresh
		}
		dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
	}
}

// formatTile shortens values that do not fit a 4-character cell.
func formatTile(v int) string {
	s := strconv.Itoa(v)
	if len(s) <= cellWidth-1 {
		return s
	}
	return strconv.Itoa(v/1024) + "K"
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch {
	case g.paused:
		g.drawOverlay(dst, board, "PAUSED", "Press P to resume")
	case g.gameOver:
		maxStr := fmt.Sprintf("Max tile: %d", HighestTileValue(g.board))
		g.drawOverlay(dst, board, "GAME OVER", maxStr, "Press R to restart")
	case g.celebrating:
		g.drawOverlay(dst, board, fmt.Sprintf("You reached %d!", g.winTile), "Move to keep going")
	}
}

// drawOverlay draws a boxed text overlay centered on area.
func (g *Game) drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := area.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	centerX, _ := box.Center()
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// FormatDuration renders seconds as m:ss.
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
