package game

import (
	"fmt"

	"github.com/vovakirdan/blockdrop/internal/core"
)

const (
	cellCols  = 2 // Terminal columns per arena cell
	hudHeight = 1
)

// Layout describes where the arena lands on a terminal screen.
type Layout struct {
	Box      core.Rect // Border box around the arena
	TooSmall bool
}

// LayoutFor computes the arena placement for a screen of the given size.
func (g *Game) LayoutFor(screenW, screenH int) Layout {
	boxW := g.arena.Width()*cellCols + 2
	boxH := g.arena.Height() + 2
	if screenW < boxW || screenH < boxH+hudHeight {
		return Layout{TooSmall: true}
	}
	return Layout{
		Box: core.NewRect((screenW-boxW)/2, hudHeight, boxW, boxH),
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	layout := g.LayoutFor(dst.Width(), dst.Height())
	if layout.TooSmall {
		renderOverlay(dst, core.ColorDefault, "Window too small", "Resize to continue")
		return
	}

	box := layout.Box
	dst.DrawTextColored(box.X, 0, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	dst.DrawBox(box, core.ColorGray)

	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	if g.status == StatusGameOver {
		dst.DrawRect(inner, '▓', core.ColorGray)
		renderOverlay(dst, core.ColorWhite, "GAME OVER", fmt.Sprintf("Score: %d", g.score), "Esc to quit")
		return
	}

	for y := range g.arena.Height() {
		for x := range g.arena.Width() {
			if v := g.arena.Cell(x, y); v != 0 {
				drawCell(dst, inner, x, y, v)
			}
		}
	}

	for y, row := range g.player.Matrix {
		for x, v := range row {
			if v != 0 {
				drawCell(dst, inner, g.player.Pos.X+x, g.player.Pos.Y+y, v)
			}
		}
	}
}

func drawCell(dst *core.Screen, inner core.Rect, x, y, v int) {
	sx := inner.X + x*cellCols
	sy := inner.Y + y
	if !inner.Contains(sx, sy) {
		return
	}
	c := core.BlockColor(v)
	for i := range cellCols {
		dst.SetColored(sx+i, sy, '█', c)
	}
}

// renderOverlay draws a centered box with one line of text per argument.
func renderOverlay(dst *core.Screen, c core.Color, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
