package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/t2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 4 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1  // +1 for right border
	boardH = BoardSize*cellHeight + 1 // +1 for bottom border

	// Minimum size: board + HUD + status line, one column of margin.
	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 1
)

// Render draws the current frame to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX)
	renderGrid(dst, boardX, boardY)
	renderFrame(dst, g.Frame(), boardX, boardY)
	g.renderStatus(dst, boardX, boardY+boardH)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and best tile.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorTile2048)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	best := fmt.Sprintf("Best: %d", MaxTile(g.board))
	dst.DrawText(boardX+boardW-len(best), 1, best)

	info := fmt.Sprintf("Target %d  Moves %d", g.cfg.Target, g.moves)
	dst.DrawTextColor(boardX+(boardW-len(info))/2, 2, info, core.ColorGray)
}

// renderGrid draws the 4x4 cell borders.
func renderGrid(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

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
			dst.SetColor(px, py, corner, core.ColorGray)

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// tileRect returns the screen area of a tile at fractional cell coordinates.
func tileRect(boardX, boardY int, row, col float64) core.Rect {
	return core.Rect{
		X: boardX + 1 + core.RoundToInt(col*cellWidth),
		Y: boardY + 1 + core.RoundToInt(row*cellHeight),
		W: cellWidth - 1,
		H: cellHeight - 1,
	}
}

// renderFrame draws every visible sprite in order.
func renderFrame(dst *core.Screen, f Frame, boardX, boardY int) {
	for _, s := range f.Sprites {
		if !s.Visible() {
			continue
		}
		drawSprite(dst, s, boardX, boardY)
	}
}

// drawSprite draws one tile. Faint sprites show only a dim value; pulsing
// sprites spill over the surrounding grid lines.
func drawSprite(dst *core.Screen, s Sprite, boardX, boardY int) {
	r := tileRect(boardX, boardY, s.Row, s.Col)
	label := strconv.Itoa(s.Value)

	if s.Opacity < 0.5 {
		dst.DrawTextColor(r.X+(r.W-len(label))/2, r.Y+r.H/2, label, core.ColorDim)
		return
	}

	if s.Scale >= 1.1 {
		r = r.Grow(1, 1)
	}

	color := core.TileColor(s.Value)
	dst.DrawRect(r, ' ', color)
	dst.DrawTextColor(r.X+max((r.W-len(label))/2, 0), r.Y+r.H/2, label, color)
}

// renderStatus draws the line under the board.
func (g *Game) renderStatus(dst *core.Screen, boardX, y int) {
	var msg string
	switch g.state {
	case core.StateWon:
		msg = "You win! R: new game"
	case core.StateLost:
		msg = "No moves left. R: new game"
	default:
		if g.hasPending {
			msg = "next: " + g.pending.String()
		}
	}
	if msg == "" {
		return
	}
	dst.DrawTextColor(boardX+(boardW-len(msg))/2, y, msg, core.ColorGray)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	cx, cy := core.NewRect(boardX, boardY, boardW, boardH).Center()

	switch g.state {
	case core.StateWon:
		dst.DrawPanel(cx, cy, core.ColorBannerWin,
			fmt.Sprintf("%d reached!", g.cfg.Target),
			fmt.Sprintf("Score: %d", g.score),
			"Press R to restart")
	case core.StateLost:
		dst.DrawPanel(cx, cy, core.ColorBannerLose,
			"GAME OVER",
			fmt.Sprintf("Max tile: %d", MaxTile(g.board)),
			"Press R to restart")
	}
}
