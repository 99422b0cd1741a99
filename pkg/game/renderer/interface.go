package renderer

import (
	"crossbar/pkg/game/session"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCategory
	StyleCategorySelected
	StyleItem
	StyleItemSelected
	StyleSubtle
	StyleStatus
	StyleController
)

// Renderer is a front-end that presents a session and feeds it input.
// Implementations include the Ebiten window and the terminal.
type Renderer interface {
	// Run blocks until the user quits, returning nil in that case. The
	// caller mounts and closes s.
	Run(s *session.Session) error
}
