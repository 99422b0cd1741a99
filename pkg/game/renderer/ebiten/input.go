package ebiten

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/zyedidia/generic"

	engineinput "crossbar/pkg/engine/input"
	"crossbar/pkg/game/config"
)

// keyCodes names the keys the bar reacts to. Their actions come from the
// shared binding table.
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeyK:           "k",
	ebiten.KeyJ:           "j",
	ebiten.KeyH:           "h",
	ebiten.KeyL:           "l",
	ebiten.KeyW:           "w",
	ebiten.KeyS:           "s",
	ebiten.KeyA:           "a",
	ebiten.KeyD:           "d",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeyEscape:      "escape",
	ebiten.KeyBackspace:   "backspace",
	ebiten.KeyQ:           "q",
	ebiten.KeyE:           "e",
}

// Update handles input and animation (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	e.justPressed = inpututil.AppendJustPressedKeys(e.justPressed[:0])
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	for _, k := range e.justPressed {
		if ctrl && k == ebiten.KeyC {
			log.Printf("quit requested")
			return ebiten.Termination
		}
	}

	e.handleZoom()

	e.pads.sample()
	e.session.Frame()
	if !ctrl {
		e.handleKeys()
	}

	if e.background {
		e.updateFloatingTiles(e.windowWidth, e.windowHeight)
	}
	return nil
}

// handleKeys applies one action per key-down. Held keys do not repeat.
func (e *EbitenRenderer) handleKeys() {
	for _, k := range e.justPressed {
		if code, ok := keyCodes[k]; ok {
			e.session.HandleEvent(engineinput.RawInput{Device: engineinput.DeviceKeyboard, Code: code})
		}
	}
}

// handleZoom handles =/-/0 for UI scale adjustment
func (e *EbitenRenderer) handleZoom() {
	for _, k := range e.justPressed {
		switch k {
		case ebiten.KeyEqual, ebiten.KeyNumpadAdd:
			e.setScale(e.scale + scaleStep)
		case ebiten.KeyMinus, ebiten.KeyNumpadSubtract:
			e.setScale(e.scale - scaleStep)
		case ebiten.KeyDigit0, ebiten.KeyNumpad0:
			e.setScale(1)
		}
	}
}

func (e *EbitenRenderer) setScale(scale float64) {
	scale = generic.Clamp(math.Round(scale*10)/10, minScale, maxScale)
	if scale == e.scale {
		return
	}
	e.scale = scale
	e.invalidateFontCache()
	e.saveZoomPreference()
}

// saveZoomPreference saves the current scale to preferences
func (e *EbitenRenderer) saveZoomPreference() {
	cfg := config.Current()
	if err := cfg.SetScale(e.scale); err != nil {
		// Not critical; the scale still applies for this run
		fmt.Fprintf(os.Stderr, "Warning: could not save preferences: %v\n", err)
	}
}

// gamepads samples Ebiten's connected gamepads once per tick. It is the
// device source the session polls.
type gamepads struct {
	ids  []ebiten.GamepadID
	pads []*engineinput.PadState
}

func (g *gamepads) sample() {
	g.ids = ebiten.AppendGamepadIDs(g.ids[:0])
	g.pads = g.pads[:0]
	for _, id := range g.ids {
		g.pads = append(g.pads, readPad(id))
	}
}

// Pads returns the pads seen by the last sample, in connection order.
func (g *gamepads) Pads() []*engineinput.PadState {
	return g.pads
}

// readPad reads one gamepad in standard layout order. Pads without a
// standard mapping report raw indices, which match it on most XInput-style
// controllers.
func readPad(id ebiten.GamepadID) *engineinput.PadState {
	p := &engineinput.PadState{Name: ebiten.GamepadName(id)}
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		p.Buttons = make([]bool, engineinput.StandardButtonCount)
		for i := range p.Buttons {
			p.Buttons[i] = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButton(i))
		}
		p.Axes = []float64{
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		return p
	}

	p.Buttons = make([]bool, ebiten.GamepadButtonCount(id))
	for i := range p.Buttons {
		p.Buttons[i] = ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(i))
	}
	// Axes: 0 = X (left = -1, right = +1), 1 = Y (up = -1, down = +1)
	if ebiten.GamepadAxisCount(id) >= 2 {
		p.Axes = []float64{ebiten.GamepadAxisValue(id, 0), ebiten.GamepadAxisValue(id, 1)}
	}
	return p
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
