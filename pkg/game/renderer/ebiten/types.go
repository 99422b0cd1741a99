package ebiten

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"crossbar/pkg/game/session"
)

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	session *session.Session

	// Window dimensions, updated by Layout
	windowWidth  int
	windowHeight int

	// UI scale (adjustable with =/-), persisted as ui.scale
	scale float64

	// Drift category glyphs behind the bar
	background bool

	// Font sources for text rendering
	monoFontSource     *text.GoTextFaceSource // Monospace font for glyphs
	sansFontSource     *text.GoTextFaceSource // Sans-serif font for labels
	sansBoldFontSource *text.GoTextFaceSource // Sans-serif bold for the focused label

	// Cached font faces (recreated when the scale changes)
	cachedScale     float64
	cachedGlyphFace *text.GoTextFace
	cachedItemFace  *text.GoTextFace
	cachedSansFace  *text.GoTextFace
	cachedBoldFace  *text.GoTextFace

	// Pads currently reported by Ebiten, sampled once per Update
	pads *gamepads

	// Keys that went down this tick
	justPressed []ebiten.Key

	// Highlight and scroll animation state
	categorySlide slide
	itemSlide     slide
	widthSlide    slide

	// Flag to track if we've logged window opening
	windowOpenedLogged bool

	// Background glyph band
	floatingTiles      []floatingTile
	floatingTilesMutex sync.RWMutex
}

// floatingTile is one glyph of the background band.
type floatingTile struct {
	x     float64
	baseY float64
	speed float64 // horizontal drift per tick
	bob   float64 // vertical sine amplitude
	phase float64
	icon  string
	color color.Color
	alpha float64
}

var _ ebiten.Game = (*EbitenRenderer)(nil)
