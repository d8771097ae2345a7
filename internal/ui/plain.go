package ui

import (
	"fmt"
	"io"
)

// PlainRenderer prints query outcomes as plain text — one line per result,
// suitable for piping or CI output where the interactive TUI would garble
// the terminal.
type PlainRenderer struct {
	out     io.Writer
	noColor bool
	limit   int
}

// NewPlainRenderer creates a plain text renderer.
func NewPlainRenderer(cfg Config) *PlainRenderer {
	return &PlainRenderer{
		out:     cfg.Output,
		noColor: cfg.NoColor,
		limit:   cfg.Limit,
	}
}

var _ Renderer = (*PlainRenderer)(nil)

// Render implements Renderer.
func (r *PlainRenderer) Render(outcome QueryOutcome) error {
	styles := GetStyles(r.noColor)

	kind := "fuzzy"
	if outcome.Exact {
		kind = "exact"
	}
	fmt.Fprintf(r.out, "%s  %s (%d candidate pages, %d shown)\n",
		styles.Header.Render(fmt.Sprintf("%q", outcome.Query)),
		styles.Dim.Render(kind),
		outcome.Unfiltered,
		resultsShown(outcome.Results, r.limit),
	)

	results := outcome.Results
	if r.limit > 0 && len(results) > r.limit {
		results = results[:r.limit]
	}

	for i, res := range results {
		fmt.Fprintf(r.out, "%3d. %s  %s\n",
			i+1,
			res.Hash,
			styles.Score.Render(fmt.Sprintf("score=%.4f", res.Score)),
		)
		if len(res.Positions) > 0 {
			fmt.Fprintf(r.out, "     %s %v\n", styles.Label.Render("positions:"), res.Positions)
		}
	}

	if len(outcome.Results) == 0 {
		fmt.Fprintln(r.out, styles.Warning.Render("no matches"))
	}
	return nil
}

func resultsShown(results []Result, limit int) int {
	if limit > 0 && len(results) > limit {
		return limit
	}
	return len(results)
}
