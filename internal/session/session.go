// Package session ties one game to its journal and sound cues.
// Every frontend drives a Session from its own update loop.
package session

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/game"
	"github.com/vovakirdan/blockdrop/internal/replay"
)

// Cues receives game events that have a sound.
type Cues interface {
	LineClear(rows int)
	GameOver()
}

// Silent is a Cues that plays nothing.
type Silent struct{}

func (Silent) LineClear(int) {}
func (Silent) GameOver()     {}

// Options configure a new session.
type Options struct {
	Frontend string // Recorded with the journal entry
	Rules    game.Rules
	Runtime  core.RuntimeConfig // Seed 0 picks a time-based seed
	Journal  replay.Journal     // Optional
	Cues     Cues               // Optional
	Logger   *log.Logger        // Optional
}

// Session is a single game plus its recorder. Not safe for concurrent use.
type Session struct {
	game     *game.Game
	recorder *replay.Recorder
	journal  replay.Journal
	cues     Cues
	logger   *log.Logger
	runtime  core.RuntimeConfig
	finished bool
}

// New starts a session with a freshly reset game.
func New(opts Options) *Session {
	rc := opts.Runtime
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	if rc.TickRate <= 0 {
		rc.TickRate = core.DefaultConfig().TickRate
	}

	cues := opts.Cues
	if cues == nil {
		cues = Silent{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := game.New(opts.Rules)
	g.Reset(rc)

	return &Session{
		game:     g,
		recorder: replay.NewRecorder(opts.Frontend, rc.TickRate),
		journal:  opts.Journal,
		cues:     cues,
		logger:   logger,
		runtime:  rc,
	}
}

// Game returns the session's game for rendering.
func (s *Session) Game() *game.Game {
	return s.game
}

// TickDuration returns the wall-clock interval between ticks.
func (s *Session) TickDuration() time.Duration {
	return s.runtime.TickDuration()
}

// Step advances the game one tick, recording the frame and playing cues.
// The session is journaled as soon as the game ends.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	res := s.recorder.Step(s.game, in)
	if res.Cleared > 0 {
		s.cues.LineClear(res.Cleared)
	}
	if res.Ended {
		s.cues.GameOver()
		s.logger.Info("game over", "score", res.State.Score, "tick", s.game.Tick())
		s.Finish()
	}
	return res
}

// Finish journals the session once. Later calls do nothing.
// Sessions that never ticked are not journaled.
func (s *Session) Finish() {
	if s.finished {
		return
	}
	s.finished = true

	if s.journal == nil || s.game.Tick() == 0 {
		return
	}

	rec := s.recorder.Finish(s.game)
	id, err := replay.Save(s.journal, rec)
	if err != nil {
		s.logger.Warn("could not journal session", "error", err)
		return
	}
	s.logger.Debug("session journaled", "id", id, "events", len(rec.Events), "score", rec.Score)
}

// Finished reports whether Finish has run.
func (s *Session) Finished() bool {
	return s.finished
}
