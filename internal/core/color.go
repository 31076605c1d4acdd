package core

// Color identifies how a screen cell is painted.
// Values 1-7 are block colors and index the configured palette directly,
// so an arena cell value can be used as a Color without translation.
type Color uint8

// Non-block colors used for chrome (borders, HUD, overlays).
const (
	ColorDefault Color = 0
	ColorGray    Color = 101
	ColorWhite   Color = 102
	ColorDim     Color = 103
)

// BlockColorCount is the number of palette-backed block colors.
const BlockColorCount = 7

// BlockColor returns the Color for a piece color index (1-7).
// Out-of-range indices map to ColorDefault.
func BlockColor(index int) Color {
	if index < 1 || index > BlockColorCount {
		return ColorDefault
	}
	return Color(index)
}

// IsBlock reports whether c is one of the palette-backed block colors.
func (c Color) IsBlock() bool {
	return c >= 1 && c <= BlockColorCount
}
