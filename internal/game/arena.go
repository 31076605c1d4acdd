package game

// Arena is the playfield grid. Row 0 is the top.
// Cells hold 0 (empty) or the color index of the piece that landed there.
type Arena struct {
	width  int
	height int
	rows   [][]int
}

// NewArena creates an empty arena of the given size.
func NewArena(width, height int) *Arena {
	a := &Arena{
		width:  width,
		height: height,
		rows:   make([][]int, height),
	}
	for y := range a.rows {
		a.rows[y] = make([]int, width)
	}
	return a
}

// Width returns the arena width in cells.
func (a *Arena) Width() int {
	return a.width
}

// Height returns the arena height in cells.
func (a *Arena) Height() int {
	return a.height
}

// Cell returns the value at (x, y), or 0 outside the arena.
func (a *Arena) Cell(x, y int) int {
	if !a.inBounds(x, y) {
		return 0
	}
	return a.rows[y][x]
}

// SetCell writes a value at (x, y). Out-of-bounds writes are ignored.
func (a *Arena) SetCell(x, y, value int) {
	if !a.inBounds(x, y) {
		return
	}
	a.rows[y][x] = value
}

// Rows returns a deep copy of the grid.
func (a *Arena) Rows() [][]int {
	out := make([][]int, len(a.rows))
	for y, row := range a.rows {
		out[y] = make([]int, len(row))
		copy(out[y], row)
	}
	return out
}

func (a *Arena) inBounds(x, y int) bool {
	return x >= 0 && x < a.width && y >= 0 && y < a.height
}

// Collide reports whether the player's piece overlaps an occupied cell or
// sticks out of the arena on any side.
func (a *Arena) Collide(p *Player) bool {
	for y, row := range p.Matrix {
		for x, v := range row {
			if v == 0 {
				continue
			}
			ax, ay := p.Pos.X+x, p.Pos.Y+y
			if !a.inBounds(ax, ay) || a.rows[ay][ax] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge writes the player's piece into the grid at its current position.
// The caller must have checked Collide first.
func (a *Arena) Merge(p *Player) {
	for y, row := range p.Matrix {
		for x, v := range row {
			if v != 0 {
				a.SetCell(p.Pos.X+x, p.Pos.Y+y, v)
			}
		}
	}
}

// Sweep removes every full row, inserting an empty row at the top for each,
// and returns how many rows were removed. Rows are scanned bottom-up and a
// row index is re-examined after a removal since the row above moved into it.
func (a *Arena) Sweep() int {
	cleared := 0
	for y := a.height - 1; y >= 0; y-- {
		if !a.rowFull(y) {
			continue
		}

		row := a.rows[y]
		clear(row)
		copy(a.rows[1:y+1], a.rows[:y])
		a.rows[0] = row

		cleared++
		y++
	}
	return cleared
}

func (a *Arena) rowFull(y int) bool {
	for _, v := range a.rows[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Clear empties the whole grid.
func (a *Arena) Clear() {
	for _, row := range a.rows {
		clear(row)
	}
}
