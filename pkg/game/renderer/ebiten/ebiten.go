// Package ebiten provides an Ebiten-based graphical front-end for the bar.
package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leonelquinteros/gotext"

	engineinput "crossbar/pkg/engine/input"
	"crossbar/pkg/game/config"
	"crossbar/pkg/game/renderer"
	"crossbar/pkg/game/session"
)

// New creates a new Ebiten renderer from the active configuration.
func New() *EbitenRenderer {
	cfg := config.Current()
	return &EbitenRenderer{
		windowWidth:  windowWidth,
		windowHeight: windowHeight,
		scale:        cfg.UI.Scale,
		background:   cfg.UI.Background,
		pads:         &gamepads{},
	}
}

// Pads is the gamepad source to build the session over.
func (e *EbitenRenderer) Pads() engineinput.PadSource {
	return e.pads
}

// Run opens the window and drives s from Ebiten's update loop until the
// window is closed or Ctrl+C is pressed.
func (e *EbitenRenderer) Run(s *session.Session) error {
	if err := e.loadFonts(); err != nil {
		return err
	}
	e.session = s

	if e.background {
		cats := s.Model().Categories()
		icons := make([]string, len(cats))
		for i, c := range cats {
			icons[i] = renderer.IconGlyph(c.Icon)
		}
		e.initFloatingTiles(e.windowWidth, e.windowHeight, icons)
	}

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(gotext.Get("Crossbar"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// RunGame returns nil when Update returns ebiten.Termination.
	return ebiten.RunGame(e)
}

// Draw renders one frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	now := time.Now()
	screen.Fill(colorBackground)

	if e.background {
		_, itemFace, _, _ := e.faces()
		e.drawFloatingTilesBackground(screen, itemFace, now)
	}

	v := renderer.Build(e.session, now)
	e.drawHeader(screen, v)
	e.drawBar(screen, v, now)
	if !v.Enabled {
		e.drawGate(screen, now)
	}
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
