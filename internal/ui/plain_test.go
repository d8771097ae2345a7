package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlainRenderer_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlainRenderer(Config{Output: &buf, NoColor: true})

	if err := r.Render(QueryOutcome{Query: "zzz", Unfiltered: 0}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "no matches") {
		t.Errorf("expected 'no matches', got %q", buf.String())
	}
}

func TestPlainRenderer_Results(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlainRenderer(Config{Output: &buf, NoColor: true})

	outcome := QueryOutcome{
		Query:      "cat dog",
		Exact:      true,
		Unfiltered: 2,
		Results: []Result{
			{Hash: "page-a", Score: 1.0, Positions: []uint32{3, 4}},
			{Hash: "page-b", Score: 1.0, Positions: []uint32{0, 1}},
		},
	}
	if err := r.Render(outcome); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"page-a", "page-b", "exact", "2 candidate"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestPlainRenderer_LimitTruncates(t *testing.T) {
	var buf bytes.Buffer
	r := NewPlainRenderer(Config{Output: &buf, NoColor: true, Limit: 1})

	outcome := QueryOutcome{
		Query:      "x",
		Unfiltered: 2,
		Results: []Result{
			{Hash: "page-a", Score: 0.9},
			{Hash: "page-b", Score: 0.5},
		},
	}
	if err := r.Render(outcome); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "page-b") {
		t.Errorf("limit=1 should not render page-b, got %q", out)
	}
	if !strings.Contains(out, "page-a") {
		t.Errorf("expected page-a in output, got %q", out)
	}
}
