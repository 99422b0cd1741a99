package ebiten

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/leonelquinteros/gotext"

	"crossbar/pkg/game/nav"
	"crossbar/pkg/game/renderer"
)

// appendRoundedRect adds a rounded rectangle to the path. (x, y) is top-left; w, h are size; r is corner radius.
// Uses clockwise arcs so the path winds correctly for fill.
func appendRoundedRect(p *vector.Path, x, y, w, h, r float32) {
	appendRoundedRectDir(p, x, y, w, h, r, vector.Clockwise)
}

// appendRoundedRectDir adds a rounded rectangle with the given winding direction.
// CounterClockwise creates a hole when combined with an outer clockwise rect.
func appendRoundedRectDir(p *vector.Path, x, y, w, h, r float32, dir vector.Direction) {
	if r <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x, y+h)
		p.LineTo(x+w, y+h)
		p.LineTo(x+w, y)
		p.Close()
		return
	}
	r = min(r, w/2, h/2)
	halfPi := float32(math.Pi / 2)
	pi := float32(math.Pi)
	p.MoveTo(x+r, y)
	p.LineTo(x+w-r, y)
	p.Arc(x+w-r, y+r, r, 3*halfPi, 0, dir)
	p.LineTo(x+w, y+h-r)
	p.Arc(x+w-r, y+h-r, r, 0, halfPi, dir)
	p.LineTo(x+r, y+h)
	p.Arc(x+r, y+h-r, r, halfPi, pi, dir)
	p.LineTo(x, y+r)
	p.Arc(x+r, y+r, r, pi, 3*halfPi, dir)
	p.Close()
}

// drawRoundedRectWithShadow draws a rounded rectangle with drop shadow, fill, and border.
// Shadow color is derived from borderColor (darkened to ~15% brightness).
func drawRoundedRectWithShadow(screen *ebiten.Image, x, y, w, h, cornerRadius, borderWidth float32, bgColor, borderColor color.Color) {
	const shadowSpread = 8
	bor, bog, bob, _ := borderColor.RGBA()
	shadowR := max(uint8((bor>>8)*15/255), 8)
	shadowG := max(uint8((bog>>8)*15/255), 8)
	shadowB := max(uint8((bob>>8)*15/255), 8)

	var path vector.Path
	for i := shadowSpread; i >= 1; i-- {
		ringAlpha := min(uint8(12+i*8), 55)
		path.Reset()
		appendRoundedRect(&path,
			x-float32(i), y-float32(i),
			w+float32(i*2), h+float32(i*2),
			cornerRadius+float32(i))
		appendRoundedRectDir(&path,
			x-float32(i-1), y-float32(i-1),
			w+float32((i-1)*2), h+float32((i-1)*2),
			cornerRadius+float32(i-1), vector.CounterClockwise)
		drawOpts := &vector.DrawPathOptions{AntiAlias: true}
		drawOpts.ColorScale.ScaleWithColor(color.RGBA{shadowR, shadowG, shadowB, ringAlpha})
		vector.FillPath(screen, &path, nil, drawOpts)
	}

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	drawOpts := &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(bgColor)
	vector.FillPath(screen, &path, nil, drawOpts)

	path.Reset()
	appendRoundedRect(&path, x, y, w, h, cornerRadius)
	strokeOpts := &vector.StrokeOptions{Width: borderWidth, MiterLimit: 10}
	drawOpts = &vector.DrawPathOptions{AntiAlias: true}
	drawOpts.ColorScale.ScaleWithColor(borderColor)
	vector.StrokePath(screen, &path, strokeOpts, drawOpts)
}

// itemY places item offset off (relative to the focused item) in the column.
// Items from the focused one down sit below the category row; earlier items
// stack above it. The mapping is continuous so scrolling animates smoothly.
func itemY(off, focusY, aboveY, spacing float64) float64 {
	switch {
	case off >= 0:
		return focusY + off*spacing
	case off >= -1:
		return aboveY + (off+1)*(focusY-aboveY)
	default:
		return aboveY + (off+1)*spacing
	}
}

// drawBar draws the category row, the item column and the highlight.
func (e *EbitenRenderer) drawBar(screen *ebiten.Image, v renderer.View, now time.Time) {
	glyphFace, itemFace, sans, bold := e.faces()
	sc := e.scale
	w, h := float64(e.windowWidth), float64(e.windowHeight)

	rowY := h * categoryRowY
	focusX := w * categoryX
	spacing := itemSpacing * sc
	focusY := rowY + glyphFace.Size + itemGap*sc
	aboveY := rowY - spacing
	labelX := focusX + itemFace.Size

	e.categorySlide.retarget(float64(v.Category), now)
	e.itemSlide.retarget(float64(v.Item), now)
	catPos := e.categorySlide.value(now)
	itemPos := e.itemSlide.value(now)

	// Highlight box, sized to whatever has focus.
	var hx, hy, hw, hh float64
	pad := highlightPadding * sc
	switch {
	case v.Axis == nav.AxisCategoryRow && v.Category < len(v.Categories):
		c := v.Categories[v.Category]
		cw := max(textWidth(c.Glyph, glyphFace), textWidth(c.Label, sans))
		hw, hh = cw+2*pad, glyphFace.Size+sans.Size+6*sc+2*pad
		hx, hy = focusX-hw/2, rowY-pad
	case v.Axis == nav.AxisItemColumn && v.Item < len(v.Items):
		it := v.Items[v.Item]
		hw = itemFace.Size + textWidth(it.Label, bold) + 2*pad
		hh = itemFace.Size + 2*pad
		hx, hy = focusX-itemFace.Size/2-pad, focusY-pad
	}
	if hw > 0 {
		e.widthSlide.retarget(hw, now)
		hw = e.widthSlide.value(now)
		drawRoundedRectWithShadow(screen, float32(hx), float32(hy), float32(hw), float32(hh),
			float32(highlightRadius*sc), float32(2*sc), colorPanelBackground, colorAction)
	}

	for i, c := range v.Categories {
		cx := focusX + (float64(i)-catPos)*categorySpacing*sc
		if cx < -categorySpacing*sc || cx > w+categorySpacing*sc {
			continue
		}
		col := colorSubtle
		if i == v.Category {
			col = colorTextSelected
			drawCenteredText(screen, c.Label, cx, rowY+glyphFace.Size+6*sc, colorText, sans)
		}
		drawCenteredText(screen, c.Glyph, cx, rowY, col, glyphFace)
	}

	if v.Status != "" {
		drawColoredText(screen, v.Status, labelX, focusY+(itemFace.Size-sans.Size)/2, pulsing(colorStatus, now), sans)
		return
	}

	for j, it := range v.Items {
		y := itemY(float64(j)-itemPos, focusY, aboveY, spacing)
		if y < -spacing || y > h {
			continue
		}
		focused := j == v.Item && v.Axis == nav.AxisItemColumn
		col, face := colorSubtle, sans
		if focused {
			col, face = colorTextSelected, bold
		} else if v.Axis == nav.AxisItemColumn {
			col = colorText
		}
		drawCenteredText(screen, it.Glyph, focusX, y, col, itemFace)
		drawColoredText(screen, it.Label, labelX, y+(itemFace.Size-face.Size)/2, col, face)
	}

	if v.Axis == nav.AxisItemColumn {
		e.drawDetails(screen, v.Details, labelX, focusY+itemFace.Size+pad, sans)
	}
}

// drawDetails lists the focused item's description under its label.
func (e *EbitenRenderer) drawDetails(screen *ebiten.Image, lines []string, x, y float64, face *text.GoTextFace) {
	lineHeight := face.Size + 4*e.scale
	for i, line := range lines {
		drawColoredText(screen, line, x, y+float64(i)*lineHeight, colorSubtle, face)
	}
}

// drawHeader shows the controller indicator top-left and the clock top-right.
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, v renderer.View) {
	_, _, sans, _ := e.faces()
	m := headerMargin * e.scale
	col := colorNoController
	if v.Connected {
		col = colorController
	}
	drawColoredText(screen, v.Controller, m, m, col, sans)
	drawRightText(screen, v.Clock, float64(e.windowWidth)-m, m, colorText, sans)
}

// drawGate prompts for the press that enables the menu.
func (e *EbitenRenderer) drawGate(screen *ebiten.Image, now time.Time) {
	_, _, _, bold := e.faces()
	drawCenteredText(screen, gotext.Get("Press any key"), float64(e.windowWidth)/2, float64(e.windowHeight)*0.75, pulsing(colorStatus, now), bold)
}
