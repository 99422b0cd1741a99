package ebiten

import (
	"image/color"
	"math"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/zyedidia/generic"

	"crossbar/pkg/game/renderer"
)

// Backdrop tints, all a few shades off colorBackground.
var tileTints = []color.Color{
	color.RGBA{40, 40, 60, 255},
	color.RGBA{50, 50, 70, 255},
	color.RGBA{55, 45, 55, 255},
	color.RGBA{35, 50, 55, 255},
}

const (
	minTiles     = 24
	extraTiles   = 16
	maxTileSpeed = 0.9 // pixels per tick, horizontal
	tileBobCycle = 6 * time.Second
)

// initFloatingTiles seeds the glyph band behind the bar. Tiles drift
// sideways and bob on a slow sine, clustered around the category row.
func (e *EbitenRenderer) initFloatingTiles(screenWidth, screenHeight int, icons []string) {
	if screenWidth <= 0 || screenHeight <= 0 {
		return
	}
	if len(icons) == 0 {
		icons = []string{renderer.IconFallback}
	}

	rowY := float64(screenHeight) * categoryRowY
	tiles := make([]floatingTile, minTiles+rand.IntN(extraTiles+1))
	for i := range tiles {
		band := rand.NormFloat64() * float64(screenHeight) / 4
		tiles[i] = floatingTile{
			x:     rand.Float64() * float64(screenWidth),
			baseY: generic.Clamp(rowY+band, 0, float64(screenHeight)),
			speed: (0.2 + rand.Float64()*0.8) * maxTileSpeed,
			bob:   8 + rand.Float64()*24,
			phase: rand.Float64() * 2 * math.Pi,
			icon:  icons[i%len(icons)],
			color: tileTints[rand.IntN(len(tileTints))],
			alpha: 0.3 + rand.Float64()*0.5,
		}
	}

	e.floatingTilesMutex.Lock()
	e.floatingTiles = tiles
	e.floatingTilesMutex.Unlock()
}

// updateFloatingTiles advances every tile one tick, wrapping at the right edge.
func (e *EbitenRenderer) updateFloatingTiles(screenWidth, screenHeight int) {
	if screenWidth <= 0 {
		return
	}
	w := float64(screenWidth)

	e.floatingTilesMutex.Lock()
	defer e.floatingTilesMutex.Unlock()
	for i := range e.floatingTiles {
		t := &e.floatingTiles[i]
		t.x = math.Mod(t.x+t.speed, w)
	}
}

// drawFloatingTilesBackground draws the glyph band behind the bar.
func (e *EbitenRenderer) drawFloatingTilesBackground(screen *ebiten.Image, face *text.GoTextFace, now time.Time) {
	e.floatingTilesMutex.RLock()
	defer e.floatingTilesMutex.RUnlock()

	cycle := 2 * math.Pi * float64(now.UnixMilli()%tileBobCycle.Milliseconds()) / float64(tileBobCycle.Milliseconds())
	for _, t := range e.floatingTiles {
		w, h := text.Measure(t.icon, face, 0)
		if w <= 0 || h <= 0 {
			continue
		}
		y := t.baseY + t.bob*math.Sin(cycle+t.phase)
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.x-w/2, y-h/2)
		op.ColorScale.ScaleWithColor(applyAlpha(t.color, t.alpha))
		text.Draw(screen, t.icon, face, op)
	}
}
