package gfx

import (
	"github.com/vovakirdan/blockdrop/internal/core"
)

const (
	scoreStripHeight = 20
	buttonGap        = 4
	minButtonHeight  = 40
)

// Button is an on-screen control that injects one action when pressed.
// Its icon is drawn from the action: a triangle for moves, a curved arrow for rotations.
type Button struct {
	Action core.Action
	Bounds core.Rect
}

// buttonOrder is the left-to-right button row.
var buttonOrder = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionSoftDrop,
	core.ActionRotateCCW,
	core.ActionRotateCW,
}

// Layout is the logical pixel geometry of the canvas.
// The score strip sits on top, the arena in the middle and the buttons below.
type Layout struct {
	CellSize int
	Score    core.Rect
	Board    core.Rect
	Buttons  []Button
	Width    int
	Height   int
}

// NewLayout sizes the canvas for an arena of the given cells.
func NewLayout(arenaW, arenaH, cellSize int) Layout {
	cellSize = max(cellSize, 1)
	width := arenaW * cellSize
	board := core.NewRect(0, scoreStripHeight, width, arenaH*cellSize)

	buttonH := max(cellSize*2, minButtonHeight)
	row := core.NewRect(0, board.Bottom()+buttonGap, width, buttonH)

	return Layout{
		CellSize: cellSize,
		Score:    core.NewRect(0, 0, width, scoreStripHeight),
		Board:    board,
		Buttons:  layoutButtons(row),
		Width:    width,
		Height:   row.Bottom() + buttonGap,
	}
}

// layoutButtons splits row into equal slots separated by buttonGap.
func layoutButtons(row core.Rect) []Button {
	n := len(buttonOrder)
	slot := (row.W - buttonGap*(n+1)) / n
	slot = max(slot, 1)

	buttons := make([]Button, n)
	for i, a := range buttonOrder {
		x := row.X + buttonGap + i*(slot+buttonGap)
		buttons[i] = Button{
			Action: a,
			Bounds: core.NewRect(x, row.Y, slot, row.H),
		}
	}
	return buttons
}

// ButtonAt returns the action of the button under (x, y), or ActionNone.
func (l Layout) ButtonAt(x, y int) core.Action {
	for _, b := range l.Buttons {
		if b.Bounds.Contains(x, y) {
			return b.Action
		}
	}
	return core.ActionNone
}

// CellRect returns the pixel rectangle of arena cell (x, y).
func (l Layout) CellRect(x, y int) core.Rect {
	return core.NewRect(l.Board.X+x*l.CellSize, l.Board.Y+y*l.CellSize, l.CellSize, l.CellSize)
}
