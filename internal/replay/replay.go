// Package replay journals game sessions as a seed plus an action log and
// re-simulates them headlessly.
package replay

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/game"
)

// ErrMismatch is returned by Verify when a re-simulation diverges from the journal.
var ErrMismatch = errors.New("replay: re-simulation does not match the recording")

// Event is one action applied on a given tick.
type Event struct {
	Tick   uint64
	Action core.Action
}

// Recording is a finished session.
type Recording struct {
	ID           int64
	Frontend     string
	Seed         int64
	TickRate     int
	Rules        game.Rules
	FinalTick    uint64
	Score        int
	RowsCleared  int
	PiecesLocked int
	GameOver     bool
	Events       []Event
	CreatedAt    time.Time
}

// Recorder captures the actions a frontend feeds into a game.
type Recorder struct {
	frontend string
	tickRate int
	events   []Event
}

// NewRecorder creates a recorder for one session.
func NewRecorder(frontend string, tickRate int) *Recorder {
	return &Recorder{frontend: frontend, tickRate: tickRate}
}

// Step records the frame's gameplay actions and advances g.
// Frames sent to a finished game are not recorded since they have no effect.
func (r *Recorder) Step(g *game.Game, in core.InputFrame) core.StepResult {
	if g.Status() == game.StatusRunning {
		tick := g.Tick() + 1
		for _, a := range in.Actions {
			if a.IsGameplay() {
				r.events = append(r.events, Event{Tick: tick, Action: a})
			}
		}
	}
	return g.Step(in)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Finish builds the recording of g's session.
func (r *Recorder) Finish(g *game.Game) Recording {
	snap := g.Snapshot()
	events := make([]Event, len(r.events))
	copy(events, r.events)

	return Recording{
		Frontend:     r.frontend,
		Seed:         snap.Seed,
		TickRate:     r.tickRate,
		Rules:        g.Rules(),
		FinalTick:    snap.Tick,
		Score:        snap.Score,
		RowsCleared:  snap.RowsCleared,
		PiecesLocked: snap.PiecesLocked,
		GameOver:     snap.Status == game.StatusGameOver,
		Events:       events,
	}
}

// Run re-simulates a recording and returns the final snapshot.
func Run(rec Recording) (game.Snapshot, error) {
	if rec.Rules.Width < 4 || rec.Rules.Height < 4 {
		return game.Snapshot{}, fmt.Errorf("replay: invalid arena %dx%d", rec.Rules.Width, rec.Rules.Height)
	}
	if rec.Rules.DropInterval <= 0 {
		return game.Snapshot{}, fmt.Errorf("replay: invalid drop interval %v", rec.Rules.DropInterval)
	}

	for i, ev := range rec.Events {
		if ev.Tick == 0 || (i > 0 && ev.Tick < rec.Events[i-1].Tick) {
			return game.Snapshot{}, fmt.Errorf("replay: events out of order at index %d", i)
		}
	}

	g := game.New(rec.Rules)
	g.Reset(core.RuntimeConfig{Seed: rec.Seed, TickRate: rec.TickRate})

	next := 0
	for g.Tick() < rec.FinalTick && g.Status() == game.StatusRunning {
		tick := g.Tick() + 1
		frame := core.NewInputFrame()
		for next < len(rec.Events) && rec.Events[next].Tick == tick {
			frame.Set(rec.Events[next].Action)
			next++
		}
		g.Step(frame)
	}

	if next < len(rec.Events) {
		return game.Snapshot{}, fmt.Errorf("replay: %d events after the final tick", len(rec.Events)-next)
	}

	return g.Snapshot(), nil
}

// Verify re-simulates rec and checks the outcome matches what was journaled.
func Verify(rec Recording) (game.Snapshot, error) {
	snap, err := Run(rec)
	if err != nil {
		return snap, err
	}

	switch {
	case snap.Tick != rec.FinalTick:
		return snap, fmt.Errorf("%w: tick %d, recorded %d", ErrMismatch, snap.Tick, rec.FinalTick)
	case snap.Score != rec.Score:
		return snap, fmt.Errorf("%w: score %d, recorded %d", ErrMismatch, snap.Score, rec.Score)
	case snap.RowsCleared != rec.RowsCleared:
		return snap, fmt.Errorf("%w: rows %d, recorded %d", ErrMismatch, snap.RowsCleared, rec.RowsCleared)
	case snap.PiecesLocked != rec.PiecesLocked:
		return snap, fmt.Errorf("%w: pieces %d, recorded %d", ErrMismatch, snap.PiecesLocked, rec.PiecesLocked)
	case (snap.Status == game.StatusGameOver) != rec.GameOver:
		return snap, fmt.Errorf("%w: game over %v, recorded %v", ErrMismatch, snap.Status == game.StatusGameOver, rec.GameOver)
	}
	return snap, nil
}
