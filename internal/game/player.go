package game

// Point is a position in arena cells.
type Point struct {
	X, Y int
}

// Player is the active piece: an owned shape matrix and its top-left offset.
type Player struct {
	Kind   PieceKind
	Matrix Matrix
	Pos    Point
}
