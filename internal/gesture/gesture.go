// Package gesture turns raw touch strokes into game actions.
package gesture

import (
	"time"

	"github.com/vovakirdan/blockdrop/internal/config"
	"github.com/vovakirdan/blockdrop/internal/core"
)

// Thresholds bound what counts as a swipe or a tap.
type Thresholds struct {
	Swipe      int           // Minimum travel in pixels for a swipe
	TapMaxTime time.Duration // A tap must end before this
	TapMaxMove int           // A tap must stay within this many pixels on each axis
}

// DefaultThresholds returns 40px swipes and 250ms/15px taps.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Swipe:      40,
		TapMaxTime: 250 * time.Millisecond,
		TapMaxMove: 15,
	}
}

// ThresholdsFromConfig reads the touch section of the configuration.
func ThresholdsFromConfig(cfg config.TouchConfig) Thresholds {
	return Thresholds{
		Swipe:      cfg.SwipeThreshold,
		TapMaxTime: cfg.TapMaxDuration(),
		TapMaxMove: cfg.TapMaxMove,
	}
}

// Classify maps a finished stroke to an action. dx and dy are the total
// travel in pixels (positive dy points down) and dt is the touch duration.
//
// Horizontal swipes move, a downward swipe soft-drops and a short still
// touch rotates clockwise. Upward swipes and anything else yield ActionNone.
func Classify(dx, dy int, dt time.Duration, th Thresholds) core.Action {
	adx, ady := core.Abs(dx), core.Abs(dy)

	switch {
	case adx > ady && adx > th.Swipe:
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	case ady > adx && dy > th.Swipe:
		return core.ActionSoftDrop
	case dt < th.TapMaxTime && adx < th.TapMaxMove && ady < th.TapMaxMove:
		return core.ActionRotateCW
	}
	return core.ActionNone
}

// Stroke tracks one touch from press to release.
type Stroke struct {
	startX, startY int
	startAt        time.Time
	active         bool
}

// Begin records the touch start.
func (s *Stroke) Begin(x, y int, at time.Time) {
	s.startX, s.startY = x, y
	s.startAt = at
	s.active = true
}

// End finishes the stroke at (x, y) and classifies it.
// Ending a stroke that never began yields ActionNone.
func (s *Stroke) End(x, y int, at time.Time, th Thresholds) core.Action {
	if !s.active {
		return core.ActionNone
	}
	s.active = false
	return Classify(x-s.startX, y-s.startY, at.Sub(s.startAt), th)
}
