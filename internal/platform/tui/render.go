package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockdrop/internal/core"
)

// Theme maps core.Color to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// NewTheme builds a theme from the seven palette entries (hex colors).
// A nil renderer uses the default lipgloss renderer for stdout.
func NewTheme(r *lipgloss.Renderer, palette []string) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	t := Theme{
		core.ColorDefault: r.NewStyle(),
		core.ColorGray:    r.NewStyle().Foreground(lipgloss.Color("245")),
		core.ColorWhite:   r.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
		core.ColorDim:     r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for i, hex := range palette {
		c := core.BlockColor(i + 1)
		if !c.IsBlock() {
			break
		}
		t[c] = r.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return t
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := theme[startColor]
			if !ok {
				style = theme[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
