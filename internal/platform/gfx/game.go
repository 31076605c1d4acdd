// Package gfx is the windowed canvas frontend built on ebiten.
// It draws the arena in pixels and adds on-screen buttons and touch gestures.
package gfx

import (
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/blockdrop/internal/config"
	"github.com/vovakirdan/blockdrop/internal/core"
	"github.com/vovakirdan/blockdrop/internal/gesture"
	"github.com/vovakirdan/blockdrop/internal/session"
)

// Options configure the canvas frontend.
type Options struct {
	Arena      config.ArenaConfig
	Display    config.DisplayConfig
	Palette    []string
	Thresholds gesture.Thresholds
	TickRate   int
	Scale      float64     // Window pixels per logical pixel; 0 means 2
	Logger     *log.Logger // Optional
}

// Game adapts a session to ebiten.Game.
type Game struct {
	session *session.Session
	layout  Layout
	palette Palette
	tile    *ebiten.Image
	input   *Input
	frame   core.InputFrame
	logger  *log.Logger

	scoreFace  *text.GoTextFace
	bannerFace *text.GoTextFace
}

// NewGame prepares the canvas for a session.
// A block image that fails to load is logged and replaced by solid colors.
func NewGame(s *session.Session, opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	palette, err := NewPalette(opts.Display.Background, opts.Palette)
	if err != nil {
		return nil, err
	}

	src, err := newFaceSource()
	if err != nil {
		return nil, err
	}

	g := &Game{
		session:    s,
		layout:     NewLayout(opts.Arena.Width, opts.Arena.Height, opts.Display.CellSize),
		palette:    palette,
		input:      NewInput(opts.Thresholds),
		logger:     logger,
		scoreFace:  &text.GoTextFace{Source: src, Size: scoreFontSize},
		bannerFace: &text.GoTextFace{Source: src, Size: bannerFontSize},
	}

	if path := opts.Display.BlockImage; path != "" {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			logger.Warn("block image unavailable, using solid colors", "path", path, "error", err)
		} else {
			g.tile = img
		}
	}
	return g, nil
}

// Update polls input and advances the session by one tick (ebiten.Game).
func (g *Game) Update() error {
	if g.input.Poll(&g.frame, g.layout) {
		g.session.Finish()
		return ebiten.Termination
	}

	if !g.session.Game().State().GameOver {
		g.session.Step(g.frame)
	}
	g.frame.Clear()
	return nil
}

// Draw paints the current state (ebiten.Game).
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.palette.Background)

	st := g.session.Game()
	score := st.Score()

	if st.State().GameOver {
		g.drawGameOver(screen, score)
		return
	}

	arena := st.Arena()
	for y := range arena.Height() {
		for x := range arena.Width() {
			if v := arena.Cell(x, y); v != 0 {
				g.drawBlock(screen, g.layout.CellRect(x, y), v)
			}
		}
	}

	p := st.Player()
	for y, row := range p.Matrix {
		for x, v := range row {
			if v == 0 {
				continue
			}
			ax, ay := p.Pos.X+x, p.Pos.Y+y
			if ay < 0 {
				continue
			}
			g.drawBlock(screen, g.layout.CellRect(ax, ay), v)
		}
	}

	b := g.layout.Board
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, chromeGray, false)

	drawText(screen, fmt.Sprintf("Score: %d", score), g.scoreFace, 4, 2, color.White)
	g.drawButtons(screen)
}

// Layout returns the fixed logical size; ebiten scales it to the window (ebiten.Game).
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width, g.layout.Height
}

func (g *Game) drawBlock(screen *ebiten.Image, r core.Rect, v int) {
	if g.tile != nil {
		drawStretched(screen, g.tile, r)
		return
	}
	fillRect(screen, r, g.palette.Block(v))
}

func (g *Game) drawButtons(screen *ebiten.Image) {
	for _, b := range g.layout.Buttons {
		fillRect(screen, b.Bounds, buttonFill)
		r := b.Bounds
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, chromeGray, false)
		drawIcon(screen, b.Action, r, color.White)
	}
}

// gameOverBanner is the text shown over the solid game-over fill.
// It is empty when the block image covers the canvas.
func gameOverBanner(score int, hasImage bool) string {
	if hasImage {
		return ""
	}
	return fmt.Sprintf("GAME OVER\nScore: %d\nEsc to quit", score)
}

// drawGameOver shows the block image stretched over the whole canvas,
// or the background color with a banner when no image is loaded.
func (g *Game) drawGameOver(screen *ebiten.Image, score int) {
	full := core.NewRect(0, 0, g.layout.Width, g.layout.Height)
	if g.tile != nil {
		drawStretched(screen, g.tile, full)
	} else {
		fillRect(screen, full, g.palette.Background)
	}

	if banner := gameOverBanner(score, g.tile != nil); banner != "" {
		cx, cy := full.Center()
		drawCentered(screen, banner, g.bannerFace, float64(cx), float64(cy), color.White)
	}
}

func fillRect(dst *ebiten.Image, r core.Rect, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// drawStretched scales img to cover r exactly.
func drawStretched(dst, img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	dst.DrawImage(img, op)
}

// Run opens the window and plays the session until the player quits or closes it.
// The session is journaled when the window closes.
func Run(s *session.Session, opts Options) error {
	g, err := NewGame(s, opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 2
	}
	tps := opts.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}

	ebiten.SetWindowSize(int(float64(g.layout.Width)*scale), int(float64(g.layout.Height)*scale))
	ebiten.SetWindowTitle("blockdrop")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)

	err = ebiten.RunGame(g)
	s.Finish()
	if err != nil {
		return fmt.Errorf("gfx: run window: %w", err)
	}
	return nil
}
