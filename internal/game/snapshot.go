package game

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Seed         int64
	Score        int
	RowsCleared  int
	PiecesLocked int
	Status       Status
	DropCounter  time.Duration
	Piece        PieceKind
	PieceX       int
	PieceY       int
	Matrix       Matrix
	Arena        [][]int
}

// Snapshot returns a deep copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Seed:         g.seed,
		Score:        g.score,
		RowsCleared:  g.rowsCleared,
		PiecesLocked: g.piecesLocked,
		Status:       g.status,
		DropCounter:  g.dropCounter,
		Piece:        g.player.Kind,
		PieceX:       g.player.Pos.X,
		PieceY:       g.player.Pos.Y,
		Matrix:       g.player.Matrix.Clone(),
		Arena:        g.arena.Rows(),
	}
}
