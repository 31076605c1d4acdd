// Package game implements the falling-block playfield: piece catalog,
// collision, rotation with kick search, merge and row sweep, driven by a
// fixed-tick loop with a drop counter.
package game

// PieceKind identifies one of the seven tetrominoes.
type PieceKind byte

const (
	PieceI PieceKind = 'I'
	PieceO PieceKind = 'O'
	PieceT PieceKind = 'T'
	PieceS PieceKind = 'S'
	PieceZ PieceKind = 'Z'
	PieceJ PieceKind = 'J'
	PieceL PieceKind = 'L'
)

// SpawnOrder lists the kinds the spawner picks from, uniformly.
const SpawnOrder = "ILJOTSZ"

// String returns the piece letter.
func (k PieceKind) String() string {
	return string(rune(k))
}

// Matrix is a square piece shape. Cells hold 0 (empty) or the piece color index.
type Matrix [][]int

// catalog holds the template shapes. Never hand these out directly:
// rotation works in place.
var catalog = map[PieceKind]Matrix{
	PieceT: {
		{0, 0, 0},
		{1, 1, 1},
		{0, 1, 0},
	},
	PieceO: {
		{2, 2},
		{2, 2},
	},
	PieceL: {
		{0, 3, 0},
		{0, 3, 0},
		{0, 3, 3},
	},
	PieceJ: {
		{0, 4, 0},
		{0, 4, 0},
		{4, 4, 0},
	},
	PieceI: {
		{0, 5, 0, 0},
		{0, 5, 0, 0},
		{0, 5, 0, 0},
		{0, 5, 0, 0},
	},
	PieceS: {
		{0, 6, 6},
		{6, 6, 0},
		{0, 0, 0},
	},
	PieceZ: {
		{7, 7, 0},
		{0, 7, 7},
		{0, 0, 0},
	},
}

// CreatePiece returns a fresh copy of the shape for kind.
// Each call allocates, so callers may rotate the result freely.
// Returns nil for an unknown kind.
func CreatePiece(kind PieceKind) Matrix {
	tmpl, ok := catalog[kind]
	if !ok {
		return nil
	}
	return tmpl.Clone()
}

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for y, row := range m {
		out[y] = make([]int, len(row))
		copy(out[y], row)
	}
	return out
}

// Width returns the number of columns (the size of the first row).
func (m Matrix) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Equal reports whether two matrices hold the same cells.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate turns a square matrix 90 degrees in place.
// dir > 0 rotates clockwise, dir < 0 counter-clockwise.
func Rotate(m Matrix, dir int) {
	for y := range m {
		for x := 0; x < y; x++ {
			m[x][y], m[y][x] = m[y][x], m[x][y]
		}
	}

	if dir > 0 {
		for _, row := range m {
			reverse(row)
		}
		return
	}
	for i, j := 0, len(m)-1; i < j; i, j = i+1, j-1 {
		m[i], m[j] = m[j], m[i]
	}
}

func reverse(row []int) {
	for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
		row[i], row[j] = row[j], row[i]
	}
}
