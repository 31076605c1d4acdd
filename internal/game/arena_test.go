package game

import "testing"

func fillRow(a *Arena, y, value int) {
	for x := range a.Width() {
		a.SetCell(x, y, value)
	}
}

func TestCollideBounds(t *testing.T) {
	a := NewArena(10, 20)
	tests := []struct {
		name string
		kind PieceKind
		x, y int
		want bool
	}{
		{"inside", PieceO, 0, 0, false},
		{"left wall", PieceO, -1, 0, true},
		{"right wall", PieceO, 9, 0, true},
		{"right edge fits", PieceO, 8, 0, false},
		{"floor", PieceO, 0, 19, true},
		{"above the top", PieceO, 0, -1, true},
		{"empty column may hang out", PieceI, -1, 0, false},
		{"empty bottom row may hang out", PieceS, 0, 18, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Player{Kind: tt.kind, Matrix: CreatePiece(tt.kind), Pos: Point{X: tt.x, Y: tt.y}}
			if got := a.Collide(p); got != tt.want {
				t.Errorf("Collide at (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMergeThenCollide(t *testing.T) {
	a := NewArena(10, 20)
	p := &Player{Kind: PieceO, Matrix: CreatePiece(PieceO), Pos: Point{X: 4, Y: 18}}

	if a.Collide(p) {
		t.Fatal("piece should fit before merge")
	}
	a.Merge(p)
	if !a.Collide(p) {
		t.Error("piece should collide with its own merged cells")
	}

	for _, c := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		if v := a.Cell(c.X, c.Y); v != 2 {
			t.Errorf("cell (%d,%d) = %d, want 2", c.X, c.Y, v)
		}
	}
	if v := a.Cell(3, 19); v != 0 {
		t.Errorf("cell (3,19) = %d, want 0", v)
	}
}

func TestSweep(t *testing.T) {
	t.Run("single row", func(t *testing.T) {
		a := NewArena(4, 4)
		a.SetCell(0, 2, 3)
		fillRow(a, 3, 1)

		if got := a.Sweep(); got != 1 {
			t.Fatalf("Sweep() = %d, want 1", got)
		}
		if a.Cell(0, 3) != 3 {
			t.Error("row above the cleared row should have moved down")
		}
		for x := range 4 {
			if a.Cell(x, 0) != 0 {
				t.Error("top row should be empty")
			}
		}
	})

	t.Run("two adjacent rows", func(t *testing.T) {
		a := NewArena(4, 4)
		a.SetCell(1, 1, 2)
		fillRow(a, 2, 1)
		fillRow(a, 3, 1)

		if got := a.Sweep(); got != 2 {
			t.Fatalf("Sweep() = %d, want 2", got)
		}
		if a.Cell(1, 3) != 2 {
			t.Errorf("cell (1,3) = %d, want 2", a.Cell(1, 3))
		}
	})

	t.Run("separated rows", func(t *testing.T) {
		a := NewArena(4, 4)
		a.SetCell(3, 0, 4)
		fillRow(a, 1, 1)
		a.SetCell(0, 2, 3)
		fillRow(a, 3, 1)

		if got := a.Sweep(); got != 2 {
			t.Fatalf("Sweep() = %d, want 2", got)
		}
		want := [][]int{
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 4},
			{3, 0, 0, 0},
		}
		got := a.Rows()
		for y := range want {
			for x := range want[y] {
				if got[y][x] != want[y][x] {
					t.Fatalf("rows = %v, want %v", got, want)
				}
			}
		}
	})

	t.Run("four rows", func(t *testing.T) {
		a := NewArena(4, 4)
		for y := range 4 {
			fillRow(a, y, 5)
		}
		if got := a.Sweep(); got != 4 {
			t.Fatalf("Sweep() = %d, want 4", got)
		}
		for y := range 4 {
			for x := range 4 {
				if a.Cell(x, y) != 0 {
					t.Fatalf("cell (%d,%d) not empty after full sweep", x, y)
				}
			}
		}
	})

	t.Run("nothing to clear", func(t *testing.T) {
		a := NewArena(4, 4)
		a.SetCell(0, 3, 1)
		if got := a.Sweep(); got != 0 {
			t.Errorf("Sweep() = %d, want 0", got)
		}
	})
}

func TestRowsIsACopy(t *testing.T) {
	a := NewArena(4, 4)
	rows := a.Rows()
	rows[0][0] = 7
	if a.Cell(0, 0) != 0 {
		t.Error("modifying Rows() result changed the arena")
	}
}
