package tui

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
	"github.com/mattn/go-runewidth"

	"crossbar/pkg/engine/input"
	"crossbar/pkg/engine/terminal"
	"crossbar/pkg/game/nav"
	"crossbar/pkg/game/renderer"
	"crossbar/pkg/game/session"
)

// RefreshInterval is how often the screen is redrawn without input, so the
// clock, the controller indicator and the loading state stay current.
const RefreshInterval = 250 * time.Millisecond

const (
	cursor     = "► "
	noCursor   = "  "
	separator  = "  "
	headerRows = 4 // status line, blank, category row, blank
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in  *os.File
	out io.Writer

	colorCategory         color.Style
	colorCategorySelected color.Style
	colorItem             color.Style
	colorItemSelected     color.Style
	colorSubtle           color.Style
	colorStatus           color.Style
	colorController       color.Style
}

// New creates a new TUI renderer reading keys from in and drawing to out.
func New(in *os.File, out io.Writer) *TUIRenderer {
	t := &TUIRenderer{in: in, out: out}
	t.Init()
	return t
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorCategory = color.Style{color.FgGray}
	t.colorCategorySelected = color.Style{color.FgWhite, color.OpBold}
	t.colorItem = color.Style{color.FgWhite}
	t.colorItemSelected = color.Style{color.FgCyan, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray}
	t.colorStatus = color.Style{color.FgYellow}
	t.colorController = color.Style{color.FgGreen}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleCategory:
		return t.colorCategory.Sprint(text)
	case renderer.StyleCategorySelected:
		return t.colorCategorySelected.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleItemSelected:
		return t.colorItemSelected.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleStatus:
		return t.colorStatus.Sprint(text)
	case renderer.StyleController:
		return t.colorController.Sprint(text)
	default:
		return text
	}
}

// Run puts the terminal in raw mode and feeds key presses to s until Ctrl+C
// or end of input.
func (t *TUIRenderer) Run(s *session.Session) error {
	keys, err := input.OpenKeyReader(t.in)
	if err != nil {
		return err
	}
	defer keys.Close()

	terminal.HideCursor(t.out)
	defer terminal.ShowCursor(t.out)
	defer terminal.Clear(t.out)

	codes := make(chan string)
	readErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			code, err := keys.ReadKey()
			if err != nil {
				readErr <- err
				return
			}
			select {
			case codes <- code:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(RefreshInterval)
	defer ticker.Stop()

	t.draw(s)
	for {
		select {
		case code := <-codes:
			if code == input.QuitCode {
				log.Printf("quit requested")
				return nil
			}
			s.HandleKey(code)
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read key: %w", err)
		case <-ticker.C:
		}
		t.draw(s)
	}
}

func (t *TUIRenderer) draw(s *session.Session) {
	width, height := terminal.GetSize(t.in)
	terminal.Clear(t.out)
	fmt.Fprint(t.out, t.Render(renderer.Build(s, time.Now()), width, height))
}

// Render lays out v in a width by height terminal. Lines are separated with
// CRLF since the terminal is in raw mode.
func (t *TUIRenderer) Render(v renderer.View, width, height int) string {
	var lines []string

	// Status line: controller left, clock right.
	clock := runewidth.Truncate(v.Clock, width, "")
	left := terminal.Pad(v.Controller, width-runewidth.StringWidth(clock))
	lines = append(lines, t.StyleText(left, renderer.StyleController)+t.StyleText(clock, renderer.StyleSubtle), "")
	lines = append(lines, t.categoryRow(v, width), "")

	if !v.Enabled {
		lines = append(lines, t.StyleText(terminal.Truncate(gotext.Get("Press any key"), width), renderer.StyleStatus))
		return strings.Join(lines, "\r\n")
	}

	details := make([]string, 0, len(v.Details))
	for _, d := range v.Details {
		details = append(details, t.StyleText(terminal.Truncate(d, width), renderer.StyleSubtle))
	}

	rows := height - headerRows
	if len(details) > 0 {
		rows -= len(details) + 1
	}
	if rows < 1 {
		rows = 1
	}

	if v.Status != "" {
		lines = append(lines, t.StyleText(terminal.Truncate(noCursor+v.Status, width), renderer.StyleStatus))
	} else {
		lines = append(lines, t.itemColumn(v, width, rows)...)
	}
	if len(details) > 0 && v.Axis == nav.AxisItemColumn {
		lines = append(lines, "")
		lines = append(lines, details...)
	}
	return strings.Join(lines, "\r\n")
}

// categoryRow renders the visible window of categories, scrolled so the
// selected one is on screen.
func (t *TUIRenderer) categoryRow(v renderer.View, width int) string {
	cells := make([]string, len(v.Categories))
	for i, c := range v.Categories {
		cells[i] = c.Glyph + " " + c.Label
	}
	start, end := window(cells, v.Category, width)

	var sb strings.Builder
	for i := start; i < end; i++ {
		if i > start {
			sb.WriteString(separator)
		}
		style := renderer.StyleCategory
		if i == v.Category {
			style = renderer.StyleCategorySelected
		}
		sb.WriteString(t.StyleText(cells[i], style))
	}
	return sb.String()
}

// window returns the range of cells, starting as far left as possible, that
// fits width and includes sel.
func window(cells []string, sel, width int) (start, end int) {
	if len(cells) == 0 {
		return 0, 0
	}
	used := func(from, to int) int {
		w := 0
		for i := from; i <= to; i++ {
			w += runewidth.StringWidth(cells[i])
		}
		return w + (to-from)*runewidth.StringWidth(separator)
	}
	for start < sel && used(start, sel) > width {
		start++
	}
	end = sel + 1
	for end < len(cells) && used(start, end) <= width {
		end++
	}
	return start, end
}

func (t *TUIRenderer) itemColumn(v renderer.View, width, rows int) []string {
	first := 0
	if v.Item >= rows {
		first = v.Item - rows + 1
	}
	last := min(first+rows, len(v.Items))

	lines := make([]string, 0, last-first)
	for i := first; i < last; i++ {
		it := v.Items[i]
		text := it.Glyph + " " + it.Label
		if i == v.Item && v.Axis == nav.AxisItemColumn {
			lines = append(lines, t.StyleText(terminal.Truncate(cursor+text, width), renderer.StyleItemSelected))
			continue
		}
		lines = append(lines, t.StyleText(terminal.Truncate(noCursor+text, width), renderer.StyleItem))
	}
	return lines
}
