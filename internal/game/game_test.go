package game

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/blockdrop/internal/core"
)

func smallRules() Rules {
	return Rules{Width: 4, Height: 8, DropInterval: 500 * time.Millisecond, PointsPerRow: 10}
}

func newGame(rules Rules, seed int64) *Game {
	g := New(rules)
	g.Reset(core.RuntimeConfig{TickRate: 60, Seed: seed})
	return g
}

func place(g *Game, kind PieceKind, x, y int) {
	g.player = Player{Kind: kind, Matrix: CreatePiece(kind), Pos: Point{X: x, Y: y}}
}

func TestSpawnIsCentered(t *testing.T) {
	g := newGame(DefaultRules(), 7)
	p := g.Player()
	want := g.arena.Width()/2 - p.Matrix.Width()/2
	if p.Pos.X != want || p.Pos.Y != 0 {
		t.Errorf("spawn at (%d,%d), want (%d,0)", p.Pos.X, p.Pos.Y, want)
	}
	if !strings.ContainsRune(SpawnOrder, rune(p.Kind)) {
		t.Errorf("unexpected piece kind %q", p.Kind)
	}
}

func TestMovePlayer(t *testing.T) {
	g := newGame(DefaultRules(), 1)
	place(g, PieceO, 0, 0)

	g.MovePlayer(-1)
	if g.player.Pos.X != 0 {
		t.Errorf("move into left wall: X = %d, want 0", g.player.Pos.X)
	}

	g.MovePlayer(1)
	g.MovePlayer(-1)
	if g.player.Pos.X != 0 {
		t.Errorf("right then left: X = %d, want 0", g.player.Pos.X)
	}

	place(g, PieceO, 8, 0)
	g.MovePlayer(1)
	if g.player.Pos.X != 8 {
		t.Errorf("move into right wall: X = %d, want 8", g.player.Pos.X)
	}
}

func TestRotateKicksOffWall(t *testing.T) {
	g := newGame(DefaultRules(), 1)
	place(g, PieceI, -1, 0)

	g.RotatePlayer(1)

	if g.player.Pos.X != 0 {
		t.Errorf("X after kick = %d, want 0", g.player.Pos.X)
	}
	want := CreatePiece(PieceI)
	Rotate(want, 1)
	if !g.player.Matrix.Equal(want) {
		t.Errorf("matrix = %v, want rotated I %v", g.player.Matrix, want)
	}
	if g.arena.Collide(&g.player) {
		t.Error("kicked piece overlaps the arena")
	}
}

func TestRotateFailedKickLeavesPieceUnchanged(t *testing.T) {
	g := newGame(smallRules(), 1)
	for y := range 4 {
		for x := 1; x < 4; x++ {
			g.arena.SetCell(x, y+4, 1)
		}
	}
	place(g, PieceI, -1, 4)
	before := g.Snapshot()

	g.RotatePlayer(1)
	g.RotatePlayer(-1)

	after := g.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("blocked rotation changed state:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestDropLocksAndSweeps(t *testing.T) {
	g := newGame(smallRules(), 3)
	for _, y := range []int{6, 7} {
		g.arena.SetCell(0, y, 1)
		g.arena.SetCell(1, y, 1)
	}
	place(g, PieceO, 2, 6)
	g.dropCounter = 100 * time.Millisecond

	g.DropPlayer()

	if g.score != 20 {
		t.Errorf("score = %d, want 20", g.score)
	}
	if g.rowsCleared != 2 || g.piecesLocked != 1 {
		t.Errorf("rowsCleared=%d piecesLocked=%d, want 2 and 1", g.rowsCleared, g.piecesLocked)
	}
	for _, row := range g.arena.Rows() {
		for _, v := range row {
			if v != 0 {
				t.Fatalf("arena not empty after clearing: %v", g.arena.Rows())
			}
		}
	}
	if g.dropCounter != 0 {
		t.Errorf("dropCounter = %v, want 0", g.dropCounter)
	}
	if g.status != StatusRunning {
		t.Error("game should still be running")
	}
}

func TestLockClearsSingleBottomRow(t *testing.T) {
	g := newGame(DefaultRules(), 3)
	w, h := g.arena.Width(), g.arena.Height()
	for x := range w - 1 {
		g.arena.SetCell(x, h-1, 1)
	}
	// Vertical I in the last column, resting on the floor.
	place(g, PieceI, w-2, h-4)

	if g.Score() != 0 {
		t.Fatalf("score before lock = %d, want 0", g.Score())
	}
	g.DropPlayer()

	if g.Score() != 10 {
		t.Errorf("score = %d, want 10", g.Score())
	}
	if g.rowsCleared != 1 || g.piecesLocked != 1 {
		t.Errorf("rowsCleared = %d, piecesLocked = %d, want 1 and 1", g.rowsCleared, g.piecesLocked)
	}
	if g.Status() != StatusRunning {
		t.Errorf("status = %v, want running", g.Status())
	}
	for x := range w {
		if v := g.arena.Cell(x, 0); v != 0 {
			t.Errorf("top row cell %d = %d, want empty", x, v)
		}
	}
	// The three I cells above the cleared row shift down by one.
	for y := h - 3; y < h; y++ {
		for x := range w {
			want := 0
			if x == w-1 {
				want = 5
			}
			if v := g.arena.Cell(x, y); v != want {
				t.Errorf("cell (%d,%d) = %d, want %d", x, y, v, want)
			}
		}
	}
}

func TestDropWithoutLandingMovesDown(t *testing.T) {
	g := newGame(DefaultRules(), 3)
	place(g, PieceO, 4, 0)
	g.DropPlayer()
	if g.player.Pos.Y != 1 {
		t.Errorf("Y = %d, want 1", g.player.Pos.Y)
	}
	if g.piecesLocked != 0 {
		t.Error("free drop should not lock")
	}
}

func TestSpawnGameOver(t *testing.T) {
	g := newGame(DefaultRules(), 5)
	for y := range 4 {
		fillRow(g.arena, y, 1)
	}
	g.resetPlayer()

	if g.Status() != StatusGameOver {
		t.Fatal("spawning into occupied cells should end the game")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
}

func TestGameOverSkipsSweep(t *testing.T) {
	g := newGame(smallRules(), 9)
	// Full top rows block any spawn and would be swept if the sweep ran.
	for y := range 4 {
		fillRow(g.arena, y, 2)
	}
	g.arena.SetCell(2, 7, 1)
	g.arena.SetCell(3, 7, 1)
	place(g, PieceO, 0, 6)

	g.DropPlayer()

	if g.Status() != StatusGameOver {
		t.Fatal("expected game over on spawn")
	}
	if g.score != 0 || g.rowsCleared != 0 {
		t.Errorf("score=%d rows=%d, want no sweep after game over", g.score, g.rowsCleared)
	}
	if g.arena.Cell(0, 0) != 2 {
		t.Error("full rows should remain once the game is over")
	}
}

func TestGravityFollowsDropInterval(t *testing.T) {
	g := newGame(DefaultRules(), 11)
	empty := core.NewInputFrame()

	// 30 ticks at 60 Hz are just under 500ms.
	for range 30 {
		g.Step(empty)
	}
	if g.player.Pos.Y != 0 {
		t.Fatalf("piece dropped early: Y = %d", g.player.Pos.Y)
	}

	g.Step(empty)
	if g.player.Pos.Y != 1 {
		t.Errorf("piece did not drop after interval: Y = %d", g.player.Pos.Y)
	}
	if g.dropCounter != 0 {
		t.Errorf("dropCounter = %v, want 0", g.dropCounter)
	}
}

func TestSoftDropResetsGravity(t *testing.T) {
	g := newGame(DefaultRules(), 11)
	empty := core.NewInputFrame()
	for range 20 {
		g.Step(empty)
	}

	in := core.NewInputFrame()
	in.Set(core.ActionSoftDrop)
	g.Step(in)
	if g.player.Pos.Y != 1 {
		t.Fatalf("soft drop: Y = %d, want 1", g.player.Pos.Y)
	}

	for range 29 {
		g.Step(empty)
	}
	if g.player.Pos.Y != 1 {
		t.Errorf("gravity should restart after a soft drop: Y = %d", g.player.Pos.Y)
	}
}

func TestStepAppliesActionsInOrder(t *testing.T) {
	g := newGame(DefaultRules(), 2)
	place(g, PieceO, 4, 0)

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionLeft)
	in.Set(core.ActionRight)
	in.Set(core.ActionQuit)
	g.Step(in)

	if g.player.Pos.X != 3 {
		t.Errorf("X = %d, want 3", g.player.Pos.X)
	}
}

// runUntilOver soft-drops every tick until the game ends.
func runUntilOver(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	in := core.NewInputFrame()
	in.Set(core.ActionSoftDrop)
	for range 100000 {
		res := g.Step(in)
		if res.State.GameOver {
			return res
		}
	}
	t.Fatal("game did not end")
	return core.StepResult{}
}

func TestStepReportsEvents(t *testing.T) {
	g := newGame(DefaultRules(), 4)
	in := core.NewInputFrame()
	in.Set(core.ActionSoftDrop)

	locked := false
	for range 100 {
		if g.Step(in).Locked {
			locked = true
			break
		}
	}
	if !locked {
		t.Error("expected a lock event while soft dropping")
	}

	res := runUntilOver(t, g)
	if !res.Ended {
		t.Error("the tick that ends the game should report Ended")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := newGame(DefaultRules(), 21)
	runUntilOver(t, g)
	before := g.Snapshot()

	in := core.NewInputFrame()
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionSoftDrop, core.ActionRotateCW, core.ActionRotateCCW} {
		in.Set(a)
	}
	for range 100 {
		res := g.Step(in)
		if res.Locked || res.Cleared != 0 || res.Ended {
			t.Fatalf("frozen game reported events: %+v", res)
		}
	}
	g.MovePlayer(1)
	g.RotatePlayer(1)
	g.DropPlayer()

	if after := g.Snapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("state changed after game over:\nbefore %+v\nafter  %+v", before, after)
	}
}

func randomFrame(rng *rand.Rand) core.InputFrame {
	in := core.NewInputFrame()
	if rng.Intn(3) == 0 {
		in.Set(core.Action(1 + rng.Intn(5)))
	}
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := newGame(DefaultRules(), 12345)
	g2 := newGame(DefaultRules(), 12345)
	inputs := rand.New(rand.NewSource(99))

	for range 5000 {
		in := randomFrame(inputs)
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); !reflect.DeepEqual(s1, s2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", s1, s2)
	}
}

func TestPlayInvariants(t *testing.T) {
	g := newGame(DefaultRules(), 77)
	inputs := rand.New(rand.NewSource(78))
	lastScore := 0

	for range 20000 {
		res := g.Step(randomFrame(inputs))

		if res.State.Score < lastScore {
			t.Fatalf("score decreased: %d -> %d", lastScore, res.State.Score)
		}
		if (res.State.Score-lastScore)%10 != 0 {
			t.Fatalf("score changed by %d, not a multiple of 10", res.State.Score-lastScore)
		}
		lastScore = res.State.Score

		for _, row := range g.arena.Rows() {
			if len(row) != 10 {
				t.Fatalf("row length %d, want 10", len(row))
			}
			for _, v := range row {
				if v < 0 || v > 7 {
					t.Fatalf("cell value %d out of range", v)
				}
			}
		}
		if res.State.GameOver {
			break
		}
		if g.arena.Collide(&g.player) {
			t.Fatal("active piece overlaps the arena while running")
		}
	}
}

func TestRenderShowsScoreAndPiece(t *testing.T) {
	g := newGame(DefaultRules(), 8)
	g.score = 40
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "Score: 40") {
		t.Error("render should include the score")
	}
	if !strings.ContainsRune(out, '█') {
		t.Error("render should draw the active piece")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(DefaultRules(), 8)
	scr := core.NewScreen(40, 12)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Window too small") {
		t.Error("expected the too-small message")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newGame(DefaultRules(), 8)
	runUntilOver(t, g)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	out := scr.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("expected the game over overlay")
	}
	if !strings.ContainsRune(out, '▓') {
		t.Error("expected the game over fill")
	}
}
