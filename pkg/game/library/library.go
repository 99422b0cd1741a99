// Package library reads the game catalog that extends the dynamic "Game"
// category. The catalog is a single games.json document, read from disk or
// over HTTP, and paged or searched in memory.
package library

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"crossbar/pkg/game/menu"
)

const (
	// DefaultPageSize is the page size used to populate the menu.
	DefaultPageSize = 15
	// SearchPageSize is the fixed page size of Search.
	SearchPageSize = 20
)

// ErrNotFound is returned by Details for an unknown game id.
var ErrNotFound = errors.New("game not found")

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Platform struct {
	Platform struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"platform"`
}

type Screenshot struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
}

// Game is one catalog entry.
type Game struct {
	ID              int          `json:"id"`
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	BackgroundImage *string      `json:"background_image"`
	Released        *string      `json:"released"`
	Rating          float64      `json:"rating"`
	Metacritic      *int         `json:"metacritic"`
	Playtime        int          `json:"playtime"`
	Genres          []Genre      `json:"genres"`
	Platforms       []Platform   `json:"platforms"`
	Screenshots     []Screenshot `json:"short_screenshots"`
}

// GamesResponse is the catalog document and the shape of every page.
type GamesResponse struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []Game  `json:"results"`
}

// Source reads the catalog from a file path or an http(s) URL. The document
// is re-read on every call.
type Source struct {
	location string
	client   *http.Client
}

// NewSource returns a Source for location. A nil client means
// http.DefaultClient.
func NewSource(location string, client *http.Client) *Source {
	if client == nil {
		client = http.DefaultClient
	}
	return &Source{location: location, client: client}
}

// Location returns the path or URL the source reads.
func (s *Source) Location() string { return s.location }

// Fetch returns the 1-based page of the catalog. Count, Next and Previous
// are passed through from the document.
func (s *Source) Fetch(ctx context.Context, page, pageSize int) (*GamesResponse, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch games: %w", err)
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	doc.Results = paginate(doc.Results, page, pageSize)
	return doc, nil
}

// Search returns the 1-based page of games whose name contains query,
// ignoring case. Count is the number of matches across all pages.
func (s *Source) Search(ctx context.Context, query string, page int) (*GamesResponse, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("search games: %w", err)
	}
	q := strings.ToLower(query)
	var matched []Game
	for _, g := range doc.Results {
		if strings.Contains(strings.ToLower(g.Name), q) {
			matched = append(matched, g)
		}
	}
	doc.Count = len(matched)
	doc.Results = paginate(matched, page, SearchPageSize)
	return doc, nil
}

// Suggest ranks catalog names by fuzzy similarity to query, best first, and
// returns at most limit of them. It backs "did you mean" hints when Search
// finds nothing.
func (s *Source) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest games: %w", err)
	}
	if limit <= 0 {
		limit = 5
	}
	names := make([]string, len(doc.Results))
	for i, g := range doc.Results {
		names[i] = g.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(query, names)
	sort.Sort(ranks)
	out := make([]string, 0, limit)
	for _, r := range ranks {
		if len(out) == limit {
			break
		}
		out = append(out, r.Target)
	}
	return out, nil
}

// Details returns the game with the given id, or ErrNotFound.
func (s *Source) Details(ctx context.Context, id int) (*Game, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("game details: %w", err)
	}
	for i := range doc.Results {
		if doc.Results[i].ID == id {
			return &doc.Results[i], nil
		}
	}
	return nil, fmt.Errorf("game %d: %w", id, ErrNotFound)
}

// Items fetches the first page and converts it to menu items. It is the fetch
// used for the dynamic category.
func (s *Source) Items(ctx context.Context, pageSize int) ([]menu.Item, error) {
	resp, err := s.Fetch(ctx, 1, pageSize)
	if err != nil {
		return nil, err
	}
	return ToItems(resp.Results), nil
}

func (s *Source) load(ctx context.Context) (*GamesResponse, error) {
	raw, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	var doc GamesResponse
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.location, err)
	}
	return &doc, nil
}

func (s *Source) read(ctx context.Context) ([]byte, error) {
	if !strings.HasPrefix(s.location, "http://") && !strings.HasPrefix(s.location, "https://") {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return os.ReadFile(s.location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", s.location, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

func paginate(games []Game, page, size int) []Game {
	if page < 1 {
		page = 1
	}
	if size <= 0 || page > len(games)/size+1 {
		return []Game{}
	}
	start := (page - 1) * size
	if start >= len(games) {
		return []Game{}
	}
	end := min(start+size, len(games))
	return games[start:end]
}

// ToItems converts games into entries for the dynamic category.
func ToItems(games []Game) []menu.Item {
	items := make([]menu.Item, 0, len(games))
	for _, g := range games {
		media := &menu.Media{
			Description: describe(g.Genres),
			Rating:      g.Rating,
			Metacritic:  g.Metacritic,
		}
		if g.BackgroundImage != nil {
			media.Image = *g.BackgroundImage
		}
		items = append(items, menu.Item{
			ID:    strconv.Itoa(g.ID),
			Label: g.Name,
			Icon:  "game",
			Media: media,
		})
	}
	return items
}

// describe joins the first two genre names, or falls back to "Game".
func describe(genres []Genre) string {
	names := make([]string, 0, 2)
	for _, g := range genres {
		if len(names) == 2 {
			break
		}
		names = append(names, g.Name)
	}
	if len(names) == 0 {
		return "Game"
	}
	return strings.Join(names, ", ")
}
