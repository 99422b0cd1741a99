package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts.
func (e *EbitenRenderer) loadFonts() error {
	var err error
	if e.monoFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF)); err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	if e.sansFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF)); err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	if e.sansBoldFontSource, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF)); err != nil {
		return fmt.Errorf("load bold font: %w", err)
	}
	return nil
}

// faces returns the cached faces, rebuilding them when the scale changed.
func (e *EbitenRenderer) faces() (glyph, item, sans, bold *text.GoTextFace) {
	if e.cachedGlyphFace == nil || e.cachedScale != e.scale {
		e.cachedScale = e.scale
		e.cachedGlyphFace = &text.GoTextFace{Source: e.monoFontSource, Size: baseGlyphSize * e.scale}
		e.cachedItemFace = &text.GoTextFace{Source: e.monoFontSource, Size: baseItemSize * e.scale}
		e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: baseFontSize * e.scale}
		e.cachedBoldFace = &text.GoTextFace{Source: e.sansBoldFontSource, Size: baseFontSize * e.scale}
	}
	return e.cachedGlyphFace, e.cachedItemFace, e.cachedSansFace, e.cachedBoldFace
}

// invalidateFontCache clears cached font faces (call when the scale changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedGlyphFace = nil
	e.cachedItemFace = nil
	e.cachedSansFace = nil
	e.cachedBoldFace = nil
}
