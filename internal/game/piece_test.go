package game

import "testing"

func TestCreatePieceReturnsIndependentCopies(t *testing.T) {
	for _, r := range SpawnOrder {
		kind := PieceKind(r)
		a := CreatePiece(kind)
		if a == nil {
			t.Fatalf("CreatePiece(%s) returned nil", kind)
		}
		Rotate(a, 1)
		a[0][0] = 9

		b := CreatePiece(kind)
		if !b.Equal(catalog[kind]) {
			t.Errorf("%s: catalog entry was modified through a created piece", kind)
		}
	}
}

func TestCreatePieceUnknownKind(t *testing.T) {
	if m := CreatePiece(PieceKind('X')); m != nil {
		t.Errorf("expected nil for unknown kind, got %v", m)
	}
}

func TestCatalogColorIndices(t *testing.T) {
	want := map[PieceKind]int{
		PieceT: 1, PieceO: 2, PieceL: 3, PieceJ: 4, PieceI: 5, PieceS: 6, PieceZ: 7,
	}
	for kind, color := range want {
		m := CreatePiece(kind)
		if len(m) != m.Width() {
			t.Errorf("%s: matrix is not square (%dx%d)", kind, m.Width(), len(m))
		}
		count := 0
		for _, row := range m {
			for _, v := range row {
				switch v {
				case 0:
				case color:
					count++
				default:
					t.Errorf("%s: unexpected cell value %d", kind, v)
				}
			}
		}
		if count != 4 {
			t.Errorf("%s: expected 4 cells, got %d", kind, count)
		}
	}
}

func TestRotateT(t *testing.T) {
	tests := []struct {
		name string
		dir  int
		want Matrix
	}{
		{"clockwise", 1, Matrix{{0, 1, 0}, {1, 1, 0}, {0, 1, 0}}},
		{"counter-clockwise", -1, Matrix{{0, 1, 0}, {0, 1, 1}, {0, 1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := CreatePiece(PieceT)
			Rotate(m, tt.dir)
			if !m.Equal(tt.want) {
				t.Errorf("got %v, want %v", m, tt.want)
			}
		})
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, r := range SpawnOrder {
		kind := PieceKind(r)
		for _, dir := range []int{1, -1} {
			m := CreatePiece(kind)
			for range 4 {
				Rotate(m, dir)
			}
			if !m.Equal(catalog[kind]) {
				t.Errorf("%s dir=%d: four rotations changed the shape: %v", kind, dir, m)
			}
		}
	}
}

func TestRotateInverse(t *testing.T) {
	for _, r := range SpawnOrder {
		kind := PieceKind(r)
		m := CreatePiece(kind)
		Rotate(m, 1)
		Rotate(m, -1)
		if !m.Equal(catalog[kind]) {
			t.Errorf("%s: clockwise then counter-clockwise changed the shape", kind)
		}
	}
}

func TestKickOffsets(t *testing.T) {
	tests := []struct {
		width int
		want  []int
	}{
		{1, []int{1}},
		{2, []int{1}},
		{3, []int{1, -2, 3}},
		{4, []int{1, -2, 3}},
		{5, []int{1, -2, 3, -4, 5}},
	}

	for _, tt := range tests {
		got := kickOffsets(tt.width)
		if len(got) != len(tt.want) {
			t.Errorf("width %d: got %v, want %v", tt.width, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("width %d: got %v, want %v", tt.width, got, tt.want)
				break
			}
		}
		if len(got) > tt.width {
			t.Errorf("width %d: %d offsets exceed the width", tt.width, len(got))
		}
	}
}
