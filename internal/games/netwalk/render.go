package netwalk

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/netwalk/internal/core"
	"github.com/vovakirdan/netwalk/internal/games/netwalk/core"
)

// Tile markers drawn over the pipe glyph.
const (
	serverRune   = '■'
	terminalRune = '●'
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.err != nil && g.size.Cells() == 0 {
		dst.DrawTextCentered(g.screenH/2-1, "Could not start board")
		dst.DrawTextCentered(g.screenH/2, g.err.Error())
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.size.Width*tileWidth + 2 // +2 for frame
	boardH := g.size.Height + 2
	frame := platformcore.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	g.renderHUD(dst, frame)
	g.renderBoard(dst, frame)
	g.renderOverlays(dst, frame)

	dst.DrawTextCentered(frame.Bottom()+1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d for a %s board",
		g.size.Width*tileWidth+2, g.size.Height+hudHeight+3, g.size))
}

// renderHUD draws level, size, moves, time and power info.
func (g *Game) renderHUD(dst *platformcore.Screen, frame platformcore.Rect) {
	title := g.Title()
	if g.mode == ModeCampaign {
		if lvl := GetLevel(g.levelIndex); lvl != nil {
			title = fmt.Sprintf("NetWalk - Level %d/%d: %s", g.levelIndex+1, LevelCount(), lvl.Name)
		}
	}
	dst.DrawTextCentered(0, title)

	powered, total := 0, g.size.Cells()
	//nolint:errcheck // no board means nothing to count
	g.sess.View(func(b *core.Board) {
		b.IsSolved()
		powered = b.PoweredCount()
	})

	left := fmt.Sprintf("Score: %d  Moves: %d", g.score, g.moves)
	right := fmt.Sprintf("Time: %s  Power: %d/%d", formatElapsed(g.elapsed), powered, total)
	dst.DrawText(frame.X, 1, left)
	rightX := platformcore.Clamp(frame.Right()-len(right), frame.X+len(left)+1, g.screenW-len(right))
	dst.DrawTextColored(rightX, 1, right, platformcore.ColorCyan)

	seed := g.boardSeed
	if len(seed) > 16 {
		seed = seed[:16] + "…"
	}
	dst.DrawTextCentered(2, fmt.Sprintf("%s  seed %s", g.size, seed))
}

// renderBoard draws the frame and every tile, three columns per tile.
func (g *Game) renderBoard(dst *platformcore.Screen, frame platformcore.Rect) {
	frameColor := platformcore.ColorGray
	if g.solved {
		frameColor = platformcore.ColorGreen
	}
	dst.DrawBox(frame, frameColor)

	//nolint:errcheck // no board means an empty frame
	g.sess.View(func(b *core.Board) {
		b.IsSolved()
		for y := 0; y < g.size.Height; y++ {
			for x := 0; x < g.size.Width; x++ {
				tile, _ := b.Tile(core.P(x, y))
				px := frame.X + 1 + x*tileWidth
				py := frame.Y + 1 + y
				g.renderTile(dst, px, py, tile, core.P(x, y) == g.cursor)
			}
		}
	})
}

// renderTile draws one tile: an arm to the left, the glyph, an arm to the
// right.
func (g *Game) renderTile(dst *platformcore.Screen, px, py int, t core.Tile, selected bool) {
	pipe := platformcore.ColorGray
	if t.Powered {
		pipe = platformcore.ColorGreen
	}

	left, right := ' ', ' '
	if t.Connections.Has(core.Left) {
		left = '─'
	}
	if t.Connections.Has(core.Right) {
		right = '─'
	}

	center, centerColor := core.Glyph(t.Connections), pipe
	switch t.Kind {
	case core.KindServer:
		center, centerColor = serverRune, platformcore.ColorYellow
	case core.KindTerminal:
		center, centerColor = terminalRune, platformcore.ColorBlue
		if t.Powered {
			centerColor = platformcore.ColorBrightGreen
		}
	}

	if selected && !g.solved {
		pipe, centerColor = platformcore.ColorCursor, platformcore.ColorCursor
	}

	dst.SetColored(px, py, left, pipe)
	dst.SetColored(px+1, py, center, centerColor)
	dst.SetColored(px+2, py, right, pipe)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *platformcore.Screen, frame platformcore.Rect) {
	if g.paused {
		g.drawOverlay(dst, frame, "PAUSED", "Press P to resume")
		return
	}

	if g.levelCleared {
		done := fmt.Sprintf("Network online in %s!", formatElapsed(g.elapsed))
		if lvl := GetLevel(g.levelIndex + 1); lvl != nil {
			g.drawOverlay(dst, frame, done, fmt.Sprintf("Next: Level %d (%s)", lvl.ID, lvl.Size()))
		} else {
			g.drawOverlay(dst, frame, done, "Final level complete!")
		}
		return
	}

	if g.won {
		if g.mode == ModeCampaign {
			g.drawOverlay(dst, frame, "CAMPAIGN COMPLETE!", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
		} else {
			stats := fmt.Sprintf("%d moves, %s", g.moves, formatElapsed(g.elapsed))
			g.drawOverlay(dst, frame, "SOLVED!", stats, "Press R for a new board")
		}
		return
	}

	if g.gameOver {
		g.drawOverlay(dst, frame, "GAME OVER", "Press R to restart")
	}
}

// drawOverlay draws a text box centered on the board.
func (g *Game) drawOverlay(dst *platformcore.Screen, frame platformcore.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}

	box := frame.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, platformcore.ColorWhite)

	centerX, _ := box.Center()
	for i, line := range lines {
		x := centerX - len([]rune(line))/2
		dst.DrawTextColored(x, box.Y+1+i, line, platformcore.ColorBrightYellow)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | X/Space: Rotate | Z: Back-rotate | N: New | P: Pause | Q: Quit"
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
