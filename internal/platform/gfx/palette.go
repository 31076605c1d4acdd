package gfx

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/blockdrop/internal/core"
)

// Palette holds the resolved canvas colors.
type Palette struct {
	Background color.RGBA
	Blocks     [core.BlockColorCount]color.RGBA
}

var (
	chromeGray = color.RGBA{0x80, 0x80, 0x80, 0xff}
	buttonFill = color.RGBA{0x2a, 0x2a, 0x2a, 0xff}
)

// ParseHex converts a #rrggbb string to an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("gfx: parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// NewPalette resolves the background and the seven block colors.
func NewPalette(background string, blocks []string) (Palette, error) {
	var p Palette
	if len(blocks) != core.BlockColorCount {
		return p, fmt.Errorf("gfx: palette needs %d colors, got %d", core.BlockColorCount, len(blocks))
	}

	bg, err := ParseHex(background)
	if err != nil {
		return p, err
	}
	p.Background = bg

	for i, hex := range blocks {
		c, err := ParseHex(hex)
		if err != nil {
			return p, err
		}
		p.Blocks[i] = c
	}
	return p, nil
}

// Block returns the color for an arena cell value (1-7).
func (p Palette) Block(v int) color.RGBA {
	c := core.BlockColor(v)
	if !c.IsBlock() {
		return chromeGray
	}
	return p.Blocks[int(c)-1]
}
