package gfx

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockdrop/internal/core"
)

// iconScale is the icon radius as a fraction of the shorter button side.
const iconScale = 0.3

type point struct{ X, Y float32 }

// arrowTriangle returns the filled triangle for a move button,
// tip first. ok is false for actions drawn as rotation arrows.
func arrowTriangle(a core.Action, cx, cy, r float32) (tri [3]point, ok bool) {
	const base = 0.6
	switch a {
	case core.ActionLeft:
		return [3]point{{cx - r, cy}, {cx + r*base, cy - r}, {cx + r*base, cy + r}}, true
	case core.ActionRight:
		return [3]point{{cx + r, cy}, {cx - r*base, cy - r}, {cx - r*base, cy + r}}, true
	case core.ActionSoftDrop:
		return [3]point{{cx, cy + r}, {cx - r, cy - r*base}, {cx + r, cy - r*base}}, true
	}
	return tri, false
}

// rotationArc describes a three-quarter arc starting at twelve o'clock
// and turning in the direction of the rotation.
type rotationArc struct {
	start, end float64
	clockwise  bool
}

func arcFor(a core.Action) (rotationArc, bool) {
	const top, sweep = -math.Pi / 2, 1.5 * math.Pi
	switch a {
	case core.ActionRotateCW:
		return rotationArc{start: top, end: top + sweep, clockwise: true}, true
	case core.ActionRotateCCW:
		return rotationArc{start: top, end: top - sweep, clockwise: false}, true
	}
	return rotationArc{}, false
}

// head returns the arrowhead at the arc's end, tip first, pointing along the direction of travel.
func (arc rotationArc) head(cx, cy, r float32) [3]point {
	e := arc.end
	ex, ey := cx+r*float32(math.Cos(e)), cy+r*float32(math.Sin(e))
	tx, ty := float32(-math.Sin(e)), float32(math.Cos(e))
	if !arc.clockwise {
		tx, ty = -tx, -ty
	}
	nx, ny := float32(math.Cos(e)), float32(math.Sin(e))
	h := r * 0.45
	return [3]point{
		{ex + tx*h, ey + ty*h},
		{ex + nx*h, ey + ny*h},
		{ex - nx*h, ey - ny*h},
	}
}

// drawIcon draws the action's symbol centered in r.
func drawIcon(dst *ebiten.Image, a core.Action, r core.Rect, c color.Color) {
	x, y := r.Center()
	cx, cy := float32(x), float32(y)
	radius := float32(min(r.W, r.H)) * iconScale

	if tri, ok := arrowTriangle(a, cx, cy, radius); ok {
		fillTriangle(dst, tri, c)
		return
	}
	arc, ok := arcFor(a)
	if !ok {
		return
	}

	dir := vector.CounterClockwise
	if arc.clockwise {
		dir = vector.Clockwise
	}
	var path vector.Path
	path.MoveTo(cx+radius*float32(math.Cos(arc.start)), cy+radius*float32(math.Sin(arc.start)))
	path.Arc(cx, cy, radius, float32(arc.start), float32(arc.end), dir)

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.StrokePath(dst, &path, &vector.StrokeOptions{Width: radius * 0.3}, op)
	fillTriangle(dst, arc.head(cx, cy, radius), c)
}

func fillTriangle(dst *ebiten.Image, tri [3]point, c color.Color) {
	var path vector.Path
	path.MoveTo(tri[0].X, tri[0].Y)
	path.LineTo(tri[1].X, tri[1].Y)
	path.LineTo(tri[2].X, tri[2].Y)
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(c)
	vector.FillPath(dst, &path, nil, op)
}
