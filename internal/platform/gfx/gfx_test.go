package gfx

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockdrop/internal/config"
	"github.com/vovakirdan/blockdrop/internal/core"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#FF0D72")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x0d, 0x72, 0xff}, c)

	_, err = ParseHex("red")
	assert.Error(t, err)
}

func TestNewPaletteFromDefaults(t *testing.T) {
	cfg := config.Default()

	p, err := NewPalette(cfg.Display.Background, cfg.Palette)
	require.NoError(t, err)

	for i := 1; i <= core.BlockColorCount; i++ {
		want, err := ParseHex(cfg.Palette[i-1])
		require.NoError(t, err)
		assert.Equal(t, want, p.Block(i))
	}
	assert.Equal(t, chromeGray, p.Block(0))
	assert.Equal(t, chromeGray, p.Block(8))
}

func TestNewPaletteRejectsShortPalette(t *testing.T) {
	_, err := NewPalette("#000000", []string{"#ffffff"})
	assert.Error(t, err)
}

func TestLayoutGeometry(t *testing.T) {
	l := NewLayout(10, 20, 24)

	assert.Equal(t, 240, l.Width)
	assert.Equal(t, core.NewRect(0, scoreStripHeight, 240, 480), l.Board)
	assert.Equal(t, core.NewRect(0, scoreStripHeight, 24, 24), l.CellRect(0, 0))
	assert.Equal(t, core.NewRect(9*24, scoreStripHeight+19*24, 24, 24), l.CellRect(9, 19))

	require.Len(t, l.Buttons, 5)
	for i, b := range l.Buttons {
		assert.Greater(t, b.Bounds.Y, l.Board.Bottom()-1, "button %d overlaps the board", i)
		assert.LessOrEqual(t, b.Bounds.Right(), l.Width)
		assert.LessOrEqual(t, b.Bounds.Bottom(), l.Height)
		if i > 0 {
			assert.Greater(t, b.Bounds.X, l.Buttons[i-1].Bounds.Right()-1, "buttons %d and %d overlap", i-1, i)
		}
	}
}

func TestButtonAt(t *testing.T) {
	l := NewLayout(10, 20, 24)

	want := []core.Action{
		core.ActionLeft,
		core.ActionRight,
		core.ActionSoftDrop,
		core.ActionRotateCCW,
		core.ActionRotateCW,
	}
	for i, b := range l.Buttons {
		cx, cy := b.Bounds.Center()
		assert.Equal(t, want[i], l.ButtonAt(cx, cy), b.Action.String())
	}

	assert.Equal(t, core.ActionNone, l.ButtonAt(10, 100), "inside the board")
	assert.Equal(t, core.ActionNone, l.ButtonAt(-1, -1))
}

func TestKeyFires(t *testing.T) {
	tests := []struct {
		name   string
		d      int
		repeat bool
		want   bool
	}{
		{"not pressed", 0, true, false},
		{"first tick", 1, false, true},
		{"held without repeat", repeatDelay, false, false},
		{"held before delay", repeatDelay - 1, true, false},
		{"repeat starts", repeatDelay, true, true},
		{"between repeats", repeatDelay + 1, true, false},
		{"next repeat", repeatDelay + repeatInterval, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyFires(tt.d, tt.repeat))
		})
	}
}

func TestArrowTrianglePointsAlongMove(t *testing.T) {
	const cx, cy, r = 50, 40, 10

	tests := []struct {
		action core.Action
		tipX   float32
		tipY   float32
	}{
		{core.ActionLeft, cx - r, cy},
		{core.ActionRight, cx + r, cy},
		{core.ActionSoftDrop, cx, cy + r},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			tri, ok := arrowTriangle(tt.action, cx, cy, r)
			require.True(t, ok)
			assert.Equal(t, point{tt.tipX, tt.tipY}, tri[0])
			for _, p := range tri {
				assert.LessOrEqual(t, math.Abs(float64(p.X-cx)), float64(r))
				assert.LessOrEqual(t, math.Abs(float64(p.Y-cy)), float64(r))
			}
		})
	}

	_, ok := arrowTriangle(core.ActionRotateCW, cx, cy, r)
	assert.False(t, ok, "rotations are drawn as arcs")
}

func TestRotationArcHeads(t *testing.T) {
	const cx, cy, r = 50, 40, 10

	cw, ok := arcFor(core.ActionRotateCW)
	require.True(t, ok)
	ccw, ok := arcFor(core.ActionRotateCCW)
	require.True(t, ok)
	_, ok = arcFor(core.ActionLeft)
	assert.False(t, ok)

	assert.True(t, cw.clockwise)
	assert.False(t, ccw.clockwise)
	assert.InDelta(t, 1.5*math.Pi, cw.end-cw.start, 1e-9)
	assert.InDelta(t, 1.5*math.Pi, ccw.start-ccw.end, 1e-9)

	// Clockwise from twelve o'clock ends at nine o'clock heading up.
	head := cw.head(cx, cy, r)
	assert.InDelta(t, cx-r, head[0].X, 1e-3)
	assert.Less(t, head[0].Y, float32(cy))

	// Counter-clockwise ends at three o'clock, also heading up.
	head = ccw.head(cx, cy, r)
	assert.InDelta(t, cx+r, head[0].X, 1e-3)
	assert.Less(t, head[0].Y, float32(cy))
}

func TestEveryButtonHasAnIcon(t *testing.T) {
	for _, b := range NewLayout(10, 20, 24).Buttons {
		_, tri := arrowTriangle(b.Action, 0, 0, 1)
		_, arc := arcFor(b.Action)
		assert.True(t, tri != arc, "%s needs exactly one icon", b.Action)
	}
}

func TestGameOverBanner(t *testing.T) {
	assert.Empty(t, gameOverBanner(120, true), "the block image is shown alone")

	banner := gameOverBanner(120, false)
	assert.Contains(t, banner, "GAME OVER")
	assert.Contains(t, banner, "Score: 120")
}
