// Package renderer holds what the front-ends share: the Renderer interface and
// the View a frame is drawn from.
package renderer

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/leonelquinteros/gotext"

	"crossbar/pkg/engine/input"
	"crossbar/pkg/game/menu"
	"crossbar/pkg/game/nav"
	"crossbar/pkg/game/session"
)

const (
	NoController = "No Controller"
	Loading      = "Loading..."
	NoItems      = "No items"

	// IconFallback stands in for icons without a glyph.
	IconFallback = "•"
)

// glyphs stay within WGL4 so the Go fonts and most terminal fonts cover them.
var glyphs = map[string]string{
	"users":              "☺",
	"poweroff":           "■",
	"user-create":        "+",
	"user-login":         "☺",
	"settings":           "☼",
	"update":             "↑",
	"game-settings":      "☼",
	"video-settings":     "☼",
	"music-settings":     "☼",
	"chat-settings":      "☼",
	"system-settings":    "☼",
	"theme-settings":     "☼",
	"accessory-settings": "☼",
	"display-settings":   "☼",
	"sound-settings":     "☼",
	"security-settings":  "☼",
	"remote-settings":    "☼",
	"network-settings":   "☼",
	"photo":              "□",
	"gallery":            "□",
	"music":              "♫",
	"plain-folder":       "▬",
	"video":              "►",
	"tv":                 "▬",
	"game":               "♦",
	"network":            "↔",
	"psn":                "♠",
	"friends":            "☻",
}

// IconGlyph returns the glyph drawn for icon.
func IconGlyph(icon string) string {
	if g, ok := glyphs[icon]; ok {
		return g
	}
	return IconFallback
}

// ControllerName shortens a device name to the part before its first "(",
// which is where drivers append vendor and product ids.
func ControllerName(pad *input.PadState) string {
	if pad == nil {
		return gotext.Get(NoController)
	}
	name, _, _ := strings.Cut(pad.Name, "(")
	name = strings.TrimSpace(name)
	if name == "" {
		return "Controller"
	}
	return name
}

// ClockText formats t as D/M H:MM.
func ClockText(t time.Time) string {
	return fmt.Sprintf("%d/%d %d:%02d", t.Day(), int(t.Month()), t.Hour(), t.Minute())
}

// CategoryView is one entry of the category row.
type CategoryView struct {
	ID    string
	Label string
	Glyph string
}

// ItemView is one entry of the item column.
type ItemView struct {
	Label string
	Glyph string
}

// View is everything a front-end needs to draw one frame.
type View struct {
	Categories []CategoryView
	Category   int
	Axis       nav.Axis

	Items   []ItemView
	Item    int
	Status  string   // Loading or NoItems when the column is empty
	Details []string // lines describing the focused item

	Controller string
	Connected  bool
	Clock      string
	Enabled    bool
}

// translate looks up static menu text in the active catalog.
var translate = func(s string) string { return gotext.Get(s, []any{}...) } // no vars: plain catalog lookup

// Build snapshots s into a View.
func Build(s *session.Session, now time.Time) View {
	model := s.Model()
	st := s.State()
	cats := model.Categories()
	pad := s.Pad()

	v := View{
		Categories: make([]CategoryView, len(cats)),
		Category:   st.Category,
		Axis:       st.Axis,
		Item:       st.Item,
		Controller: ControllerName(pad),
		Connected:  pad != nil,
		Clock:      ClockText(now),
		Enabled:    s.Enabled(),
	}
	for i, c := range cats {
		v.Categories[i] = CategoryView{ID: c.ID, Label: translate(c.Label), Glyph: IconGlyph(c.Icon)}
	}
	if st.Category < 0 || st.Category >= len(cats) {
		return v
	}

	cat := cats[st.Category]
	v.Items = make([]ItemView, len(cat.Items))
	for i, it := range cat.Items {
		icon := it.Icon
		if icon == "" {
			icon = cat.Icon
		}
		label := it.Label
		if !it.External {
			label = translate(label)
		}
		v.Items[i] = ItemView{Label: label, Glyph: IconGlyph(icon)}
	}
	v.Status = Status(cat, model.FetchStatus())
	if st.Item >= 0 && st.Item < len(cat.Items) {
		v.Details = Details(cat.Items[st.Item])
	}
	return v
}

// Status returns the placeholder shown in place of an empty column.
func Status(cat menu.Category, fetch menu.FetchStatus) string {
	if len(cat.Items) > 0 {
		return ""
	}
	if cat.Dynamic && fetch == menu.FetchPending {
		return gotext.Get(Loading)
	}
	return gotext.Get(NoItems)
}

// Details returns the description lines for an item with media.
func Details(it menu.Item) []string {
	if it.Media == nil {
		return nil
	}
	var lines []string
	if it.Media.Description != "" {
		lines = append(lines, it.Media.Description)
	}
	if it.Media.Rating > 0 {
		lines = append(lines, gotext.Get("Rating %s", humanize.FtoaWithDigits(it.Media.Rating, 2)))
	}
	if it.Media.Metacritic != nil {
		lines = append(lines, gotext.Get("Metacritic %d", *it.Media.Metacritic))
	}
	return lines
}
