package gfx

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	scoreFontSize  = 14
	bannerFontSize = 18
	bannerSpacing  = 1.4
)

// newFaceSource parses the bundled Go Regular font.
func newFaceSource() (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gfx: load font: %w", err)
	}
	return src, nil
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, s, face, op)
}

// drawCentered draws multi-line s centered on (cx, cy).
func drawCentered(dst *ebiten.Image, s string, face *text.GoTextFace, cx, cy float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = face.Size * bannerSpacing
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(dst, s, face, op)
}
