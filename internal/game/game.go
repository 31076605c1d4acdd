package game

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/blockdrop/internal/config"
	"github.com/vovakirdan/blockdrop/internal/core"
)

// Status is the lifecycle state of a game. GameOver is terminal.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
)

func (s Status) String() string {
	if s == StatusGameOver {
		return "game_over"
	}
	return "running"
}

// Rules are the fixed parameters of one game.
type Rules struct {
	Width        int
	Height       int
	DropInterval time.Duration
	PointsPerRow int
}

// DefaultRules returns the classic 10x20 board with a 500ms drop.
func DefaultRules() Rules {
	return Rules{
		Width:        10,
		Height:       20,
		DropInterval: 500 * time.Millisecond,
		PointsPerRow: 10,
	}
}

// RulesFromConfig extracts the game rules from a loaded configuration.
func RulesFromConfig(cfg config.Config) Rules {
	return Rules{
		Width:        cfg.Arena.Width,
		Height:       cfg.Arena.Height,
		DropInterval: cfg.Gravity.DropInterval(),
		PointsPerRow: cfg.Scoring.PointsPerRow,
	}
}

// tickEvents collects what happened during the current Step.
type tickEvents struct {
	locked  bool
	cleared int
	ended   bool
}

// Game is a single-player falling-block game.
// It is not safe for concurrent use; the owning frontend drives it from one goroutine.
type Game struct {
	rules Rules
	rng   *rand.Rand
	seed  int64

	tick        uint64
	tickDur     time.Duration
	dropCounter time.Duration

	arena  *Arena
	player Player
	status Status

	score        int
	rowsCleared  int
	piecesLocked int

	events tickEvents
}

// New creates a game with the given rules, ready to play with seed 0.
// Call Reset to choose the seed and tick rate.
func New(rules Rules) *Game {
	g := &Game{rules: rules}
	g.Reset(core.DefaultConfig())
	return g
}

// Reset starts a fresh game: empty arena, zero score, a newly spawned piece.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.tickDur = cfg.TickDuration()
	g.dropCounter = 0
	g.arena = NewArena(g.rules.Width, g.rules.Height)
	g.status = StatusRunning
	g.score = 0
	g.rowsCleared = 0
	g.piecesLocked = 0
	g.events = tickEvents{}
	g.resetPlayer()
}

// Step advances the game by one tick: the frame's actions are applied in
// order, then gravity drops the piece once the drop interval has elapsed.
// A finished game is frozen and Step returns its final state.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.status == StatusGameOver {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.events = tickEvents{}

	for _, a := range in.Actions {
		g.Apply(a)
	}

	if g.status == StatusRunning {
		g.dropCounter += g.tickDur
		if g.dropCounter > g.rules.DropInterval {
			g.DropPlayer()
		}
	}

	return core.StepResult{
		State:   g.State(),
		Locked:  g.events.locked,
		Cleared: g.events.cleared,
		Ended:   g.events.ended,
	}
}

// Apply performs a single gameplay action. Non-gameplay actions are ignored.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionLeft:
		g.MovePlayer(-1)
	case core.ActionRight:
		g.MovePlayer(1)
	case core.ActionSoftDrop:
		g.DropPlayer()
	case core.ActionRotateCCW:
		g.RotatePlayer(-1)
	case core.ActionRotateCW:
		g.RotatePlayer(1)
	}
}

// MovePlayer shifts the piece horizontally by dir cells, reverting if blocked.
func (g *Game) MovePlayer(dir int) {
	if g.status == StatusGameOver {
		return
	}
	g.player.Pos.X += dir
	if g.arena.Collide(&g.player) {
		g.player.Pos.X -= dir
	}
}

// RotatePlayer rotates the piece clockwise (dir > 0) or counter-clockwise
// (dir < 0). A blocked rotation is kicked sideways; if no kick fits, the
// piece is rotated back and keeps its original column.
func (g *Game) RotatePlayer(dir int) {
	if g.status == StatusGameOver || dir == 0 {
		return
	}

	startX := g.player.Pos.X
	Rotate(g.player.Matrix, dir)
	if !g.arena.Collide(&g.player) {
		return
	}

	for _, offset := range kickOffsets(g.player.Matrix.Width()) {
		g.player.Pos.X += offset
		if !g.arena.Collide(&g.player) {
			return
		}
	}

	Rotate(g.player.Matrix, -dir)
	g.player.Pos.X = startX
}

// DropPlayer moves the piece down one row. A blocked piece is merged into
// the arena, the next piece spawns and full rows are swept.
// The gravity counter restarts after every drop.
func (g *Game) DropPlayer() {
	if g.status == StatusGameOver {
		return
	}

	g.player.Pos.Y++
	if g.arena.Collide(&g.player) {
		g.player.Pos.Y--
		g.lock()
	}
	g.dropCounter = 0
}

func (g *Game) lock() {
	g.arena.Merge(&g.player)
	g.piecesLocked++
	g.events.locked = true

	g.resetPlayer()
	if g.status == StatusGameOver {
		return
	}

	rows := g.arena.Sweep()
	if rows == 0 {
		return
	}
	g.rowsCleared += rows
	g.score += rows * g.rules.PointsPerRow
	g.events.cleared += rows
}

// resetPlayer spawns a uniformly random piece centered at the top.
// If it does not fit, the game is over.
func (g *Game) resetPlayer() {
	kind := PieceKind(SpawnOrder[g.rng.Intn(len(SpawnOrder))])
	m := CreatePiece(kind)

	g.player = Player{
		Kind:   kind,
		Matrix: m,
		Pos:    Point{X: g.arena.Width()/2 - m.Width()/2, Y: 0},
	}

	if g.arena.Collide(&g.player) {
		g.status = StatusGameOver
		g.events.ended = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusGameOver,
	}
}

// Status returns the lifecycle state.
func (g *Game) Status() Status {
	return g.status
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Tick returns the number of simulated ticks.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Seed returns the seed the game was last reset with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

// Arena returns the playfield. Callers must treat it as read-only.
func (g *Game) Arena() *Arena {
	return g.arena
}

// Player returns a copy of the active piece.
func (g *Game) Player() Player {
	p := g.player
	p.Matrix = p.Matrix.Clone()
	return p
}
