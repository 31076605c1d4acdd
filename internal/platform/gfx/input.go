package gfx

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/gesture"
)

// Held arrow keys repeat after repeatDelay ticks, then every repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 3
)

var keyBindings = []struct {
	key    ebiten.Key
	action core.Action
	repeat bool
}{
	{ebiten.KeyArrowLeft, core.ActionLeft, true},
	{ebiten.KeyArrowRight, core.ActionRight, true},
	{ebiten.KeyArrowDown, core.ActionSoftDrop, true},
	{ebiten.KeyQ, core.ActionRotateCCW, false},
	{ebiten.KeyW, core.ActionRotateCW, false},
}

// keyFires reports whether a key held for d ticks triggers its action this tick.
func keyFires(d int, repeat bool) bool {
	if d == 1 {
		return true
	}
	return repeat && d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

type touchStroke struct {
	id     ebiten.TouchID
	stroke gesture.Stroke
}

// Input polls keyboard, mouse and touch state once per tick.
type Input struct {
	thresholds gesture.Thresholds
	now        func() time.Time
	pressed    []ebiten.TouchID
	strokes    []touchStroke
}

// NewInput creates an input poller using the given gesture thresholds.
func NewInput(th gesture.Thresholds) *Input {
	return &Input{
		thresholds: th,
		now:        time.Now,
	}
}

// Poll appends this tick's actions to frame.
// It reports true when the player asked to quit.
func (in *Input) Poll(frame *core.InputFrame, l Layout) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}

	for _, b := range keyBindings {
		if keyFires(inpututil.KeyPressDuration(b.key), b.repeat) {
			frame.Set(b.action)
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		frame.Set(l.ButtonAt(ebiten.CursorPosition()))
	}

	in.pollTouches(frame, l)
	return false
}

// pollTouches starts a stroke for every new touch outside the buttons and
// classifies the strokes that ended this tick.
func (in *Input) pollTouches(frame *core.InputFrame, l Layout) {
	now := in.now()

	in.pressed = inpututil.AppendJustPressedTouchIDs(in.pressed[:0])
	for _, id := range in.pressed {
		x, y := ebiten.TouchPosition(id)
		if a := l.ButtonAt(x, y); a != core.ActionNone {
			frame.Set(a)
			continue
		}
		ts := touchStroke{id: id}
		ts.stroke.Begin(x, y, now)
		in.strokes = append(in.strokes, ts)
	}

	in.strokes = slices.DeleteFunc(in.strokes, func(ts touchStroke) bool {
		if !inpututil.IsTouchJustReleased(ts.id) {
			return false
		}
		x, y := inpututil.TouchPositionInPreviousTick(ts.id)
		frame.Set(ts.stroke.End(x, y, now, in.thresholds))
		return true
	})
}
