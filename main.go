package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"

	"crossbar/pkg/engine/terminal"
	"crossbar/pkg/game/config"
	"crossbar/pkg/game/cue"
	"crossbar/pkg/game/library"
	"crossbar/pkg/game/menu"
	"crossbar/pkg/game/renderer"
	ebitenrenderer "crossbar/pkg/game/renderer/ebiten"
	"crossbar/pkg/game/renderer/tui"
	"crossbar/pkg/game/session"
	"crossbar/pkg/game/sound"
)

var (
	colorTitle  = color.Style{color.FgWhite, color.OpBold}
	colorSubtle = color.Style{color.FgGray}
	colorDenied = color.Style{color.FgRed, color.OpBold}
)

func initGettext(cfg *config.Config) {
	gotext.Configure(cfg.Locale.Dir, cfg.Locale.Lang, "default")
}

// openLog sends the standard logger to the configured file so it never
// draws over the terminal front-end.
func openLog(cfg *config.Config) (io.Closer, error) {
	path, err := cfg.LogPath()
	if err != nil {
		return nil, fmt.Errorf("log path: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// printGame writes one library entry to w.
func printGame(w io.Writer, g *library.Game) {
	fmt.Fprintf(w, "%s %s\n", colorTitle.Sprint(g.Name), colorSubtle.Sprintf("#%d", g.ID))
	items := library.ToItems([]library.Game{*g})
	for _, line := range renderer.Details(items[0]) {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if g.Released != nil {
		fmt.Fprintf(w, "  %s\n", gotext.Get("Released %s", *g.Released))
	}
}

// runSearch prints the games whose name contains query, or fuzzy
// suggestions when none does.
func runSearch(ctx context.Context, w io.Writer, src *library.Source, query string) error {
	resp, err := src.Search(ctx, query, 1)
	if err != nil {
		return err
	}
	if resp.Count == 0 {
		fmt.Fprintln(w, colorDenied.Sprint(gotext.Get("No games match %q", query)))
		hints, err := src.Suggest(ctx, query, 5)
		if err != nil {
			return err
		}
		if len(hints) > 0 {
			fmt.Fprintf(w, "%s %s\n", gotext.Get("Did you mean:"), strings.Join(hints, ", "))
		}
		return nil
	}

	fmt.Fprintln(w, colorSubtle.Sprint(gotext.Get("%s matching games", humanize.Comma(int64(resp.Count)))))
	for i := range resp.Results {
		printGame(w, &resp.Results[i])
	}
	return nil
}

// printKeys writes the key help listing.
func printKeys(w io.Writer) {
	for _, l := range renderer.Bindings() {
		fmt.Fprintf(w, "%s %s\n", colorTitle.Sprint(terminal.Pad(l.Label, 14)), l.Keys)
	}
}

// runDetails prints a single game by id.
func runDetails(ctx context.Context, w io.Writer, src *library.Source, arg string) error {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("game id %q: %w", arg, err)
	}
	g, err := src.Details(ctx, id)
	if err != nil {
		return err
	}
	printGame(w, g)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	rendererName := flag.String("renderer", "", "front-end: ebiten or tui (overrides config)")
	libraryPath := flag.String("library", "", "games.json path or http(s) URL (overrides config)")
	logFile := flag.String("log-file", "", "log file (overrides config)")
	search := flag.String("search", "", "print library games whose name contains the query and exit")
	gameID := flag.String("game", "", "print one library game by id and exit")
	keys := flag.Bool("keys", false, "print the key bindings and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	cfg.Override(*rendererName, *libraryPath, *logFile)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration:\n%v\n", err)
		return 2
	}
	config.Set(cfg)
	initGettext(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	src := library.NewSource(cfg.Library.Path, nil)

	switch {
	case *keys:
		printKeys(os.Stdout)
		return 0
	case *search != "":
		if err := runSearch(ctx, os.Stdout, src, *search); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	case *gameID != "":
		if err := runDetails(ctx, os.Stdout, src, *gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	logCloser, err := openLog(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; logging to stderr\n", err)
	} else {
		defer logCloser.Close()
	}

	model, err := menu.New(menu.DefaultCategories())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	initial := model.IndexOf(cfg.InitialCategory)
	if initial < 0 {
		log.Printf("unknown initial category %q, starting at the first", cfg.InitialCategory)
		initial = 0
	}

	opts := session.Options{
		Deadzone:        cfg.Input.Deadzone,
		RepeatDelay:     cfg.RepeatDelay(),
		RepeatRate:      cfg.RepeatRate(),
		InitialCategory: initial,
		Gated:           cfg.Input.BootGate,
	}
	if cfg.Sound.Enabled {
		player := sound.NewPlayer(cfg.Sound.Dir, nil)
		go player.PreloadAfter(ctx)
		opts.Cues = cue.NewAsync(player, cue.DefaultQueueSize)
	}

	var r renderer.Renderer
	switch cfg.Renderer {
	case config.RendererTUI:
		r = tui.New(os.Stdin, os.Stdout)
	default:
		e := ebitenrenderer.New()
		opts.Pads = e.Pads()
		r = e
	}

	s := session.New(model, opts)
	defer s.Close()
	s.Mount()
	s.LoadDynamic(func(ctx context.Context) ([]menu.Item, error) {
		return src.Items(ctx, cfg.Library.PageSize)
	})
	log.Printf("starting %s front-end, library %s", cfg.Renderer, src.Location())

	if err := r.Run(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
