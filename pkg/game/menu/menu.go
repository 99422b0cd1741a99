// Package menu holds the category/item model shown by the cross-media bar.
package menu

import (
	"errors"
	"sync"

	"github.com/zyedidia/generic/mapset"
)

var (
	// ErrNoCategories is returned when a model is built without categories.
	ErrNoCategories = errors.New("menu: at least one category is required")
	// ErrNoDynamicCategory is returned when appending to a model that has no
	// dynamic category.
	ErrNoDynamicCategory = errors.New("menu: no dynamic category")
	// ErrAlreadyExtended is returned by a second AppendDynamic in one session.
	ErrAlreadyExtended = errors.New("menu: dynamic category already extended")
)

// Media is optional display data for an item. The navigation core never
// interprets it.
type Media struct {
	Description string
	Image       string // URL or path; empty means use the fallback thumbnail
	Rating      float64
	Metacritic  *int
}

// Item is a single selectable entry in a category.
type Item struct {
	ID    string
	Label string
	Icon  string // empty means inherit the category icon
	Media *Media

	// External is set on entries appended from the external source. Their
	// labels are catalog names and are shown verbatim.
	External bool
}

// Category is one column of the bar.
type Category struct {
	ID      string
	Label   string
	Icon    string
	Items   []Item
	Dynamic bool // items are appended once from an external source
}

// FetchStatus tracks the external fetch for the dynamic category. It exists
// for the loading indicator only; navigation ignores it.
type FetchStatus int

const (
	FetchIdle FetchStatus = iota
	FetchPending
	FetchDone
	FetchFailed
)

// Model is the ordered, non-empty list of categories. The only mutation is a
// single append to the dynamic category; readers always see either the
// static list or the static list plus the appended entries.
type Model struct {
	mu         sync.RWMutex
	categories []Category
	dynamic    int
	extended   bool
	fetch      FetchStatus
}

// New copies categories into a model. The first category flagged Dynamic
// becomes the extensible one.
func New(categories []Category) (*Model, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	m := &Model{categories: make([]Category, len(categories)), dynamic: -1}
	for i, c := range categories {
		c.Items = append([]Item(nil), c.Items...)
		m.categories[i] = c
		if c.Dynamic && m.dynamic < 0 {
			m.dynamic = i
		}
	}
	return m, nil
}

// Len returns the number of categories.
func (m *Model) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.categories)
}

// Category returns the category at index i.
func (m *Model) Category(i int) (Category, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.categories) {
		return Category{}, false
	}
	return m.categories[i], true
}

// Categories returns a snapshot of all categories.
func (m *Model) Categories() []Category {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]Category(nil), m.categories...)
}

// ItemCount returns the number of items in category i, or 0 if i is out of range.
func (m *Model) ItemCount(i int) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.categories) {
		return 0
	}
	return len(m.categories[i].Items)
}

// Item returns item j of category i.
func (m *Model) Item(i, j int) (Item, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i < 0 || i >= len(m.categories) {
		return Item{}, false
	}
	items := m.categories[i].Items
	if j < 0 || j >= len(items) {
		return Item{}, false
	}
	return items[j], true
}

// IndexOf returns the index of the category with the given ID, or -1.
func (m *Model) IndexOf(id string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i, c := range m.categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// DynamicIndex returns the index of the dynamic category, or -1.
func (m *Model) DynamicIndex() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dynamic
}

// AppendDynamic appends items after the dynamic category's existing entries.
// Items whose ID is already present are skipped. It returns how many were
// added. Only the first call in a model's lifetime is accepted.
func (m *Model) AppendDynamic(items []Item) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dynamic < 0 {
		return 0, ErrNoDynamicCategory
	}
	if m.extended {
		return 0, ErrAlreadyExtended
	}
	m.extended = true

	cat := &m.categories[m.dynamic]
	seen := mapset.New[string]()
	for _, it := range cat.Items {
		seen.Put(it.ID)
	}

	// Build a fresh slice so snapshots handed out earlier never alias it.
	merged := make([]Item, len(cat.Items), len(cat.Items)+len(items))
	copy(merged, cat.Items)
	for _, it := range items {
		if seen.Has(it.ID) {
			continue
		}
		seen.Put(it.ID)
		it.External = true
		merged = append(merged, it)
	}
	added := len(merged) - len(cat.Items)
	cat.Items = merged
	return added, nil
}

// SetFetchStatus records the state of the external fetch.
func (m *Model) SetFetchStatus(s FetchStatus) {
	m.mu.Lock()
	m.fetch = s
	m.mu.Unlock()
}

// FetchStatus returns the state of the external fetch.
func (m *Model) FetchStatus() FetchStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.fetch
}
