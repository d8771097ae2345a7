package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestReplModel_TabTogglesMode(t *testing.T) {
	m := replModel{styles: NoColorStyles()}
	if m.exact {
		t.Fatal("should start in fuzzy mode")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(replModel)
	if !m.exact {
		t.Error("tab should switch to exact mode")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(replModel)
	if m.exact {
		t.Error("tab should switch back to fuzzy mode")
	}
}

func TestReplModel_EnterRunsQuery(t *testing.T) {
	m := replModel{styles: NoColorStyles()}
	m.input.SetValue("cats")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter with non-empty input should produce a query command")
	}
}

func TestReplModel_QueryResultUpdatesLast(t *testing.T) {
	m := replModel{styles: NoColorStyles()}
	outcome := QueryOutcome{Query: "cats", Unfiltered: 3}

	next, _ := m.Update(queryResultMsg{outcome: outcome})
	m = next.(replModel)
	if m.last == nil || m.last.Query != "cats" {
		t.Errorf("expected last outcome to be set, got %+v", m.last)
	}
}

func TestReplModel_EscQuits(t *testing.T) {
	m := replModel{styles: NoColorStyles()}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a quit command")
	}
}
