package ebiten

import (
	"image/color"
	"time"
)

// Color palette for the bar
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorTextSelected    = color.RGBA{255, 255, 255, 255}
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple, highlight border
	colorStatus          = color.RGBA{255, 220, 100, 255} // Yellow for loading / empty
	colorController      = color.RGBA{100, 255, 150, 255} // Green when a pad is connected
	colorNoController    = color.RGBA{255, 120, 120, 255} // Red when none is
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Window and scale limits
const (
	windowWidth  = 1280
	windowHeight = 720

	minScale  = 0.5
	maxScale  = 3.0
	scaleStep = 0.1

	baseGlyphSize = 40.0 // category glyphs at scale 1
	baseItemSize  = 26.0 // item glyphs
	baseFontSize  = 16.0 // labels and header
)

// Layout in unscaled pixels
const (
	categoryRowY     = 0.28 // fraction of height
	categoryX        = 0.22 // fraction of width for the focused category
	categorySpacing  = 150.0
	itemSpacing      = 64.0
	itemGap          = 80.0 // between the category row and the focused item
	highlightPadding = 10.0
	highlightRadius  = 10.0
	headerMargin     = 16.0
)

const highlightAnimDuration = 150 * time.Millisecond
