// Package ui renders search results for the CLI: a plain-text renderer for
// non-TTY output (pipes, CI) and an interactive bubbletea REPL for TTY
// sessions.
package ui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Result is one ranked page returned by a query, shaped for display — a
// thin projection of search.PageSearchResult plus the query that produced
// it, so a renderer never needs to import the search package directly.
type Result struct {
	// Hash is the page's content hash.
	Hash string
	// Score is the page's relevance score (always 1.0 for an exact-phrase
	// match).
	Score float64
	// Positions are the zero-based word positions the match occurred at,
	// used to show roughly where in the page the hit landed.
	Positions []uint32
}

// QueryOutcome is the full result of a single query, ready for rendering.
type QueryOutcome struct {
	Query      string
	Exact      bool
	Unfiltered int
	Results    []Result
}

// Renderer displays query outcomes to the user. PlainRenderer implements it
// for non-interactive output; the TUI program drives its own bubbletea loop
// instead of going through this interface, since it owns the full screen.
type Renderer interface {
	Render(outcome QueryOutcome) error
}

// Config configures a renderer.
type Config struct {
	// Output is the writer results are rendered to.
	Output io.Writer
	// NoColor disables ANSI styling regardless of TTY detection.
	NoColor bool
	// Limit caps how many results are rendered. Zero means unlimited.
	Limit int
}

// IsTTY reports whether w is a terminal the interactive renderer can use.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DetectNoColor reports whether the NO_COLOR environment variable is set,
// per the https://no-color.org convention.
func DetectNoColor() bool {
	_, set := os.LookupEnv("NO_COLOR")
	return set
}
