package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// QueryFunc runs one query against a live index and returns its outcome. It
// is supplied by the CLI layer so this package never imports the search
// engine directly.
type QueryFunc func(query string, exact bool) (QueryOutcome, error)

// replModel is the bubbletea model backing the interactive query REPL: a
// single input line, the latest outcome rendered below it, and a toggle
// between exact-phrase and fuzzy search modes.
type replModel struct {
	input   textinput.Model
	styles  Styles
	query   QueryFunc
	exact   bool
	last    *QueryOutcome
	err     error
	width   int
	quitted bool
}

// NewInteractiveProgram returns a bubbletea program running the query REPL.
// Press Tab to switch between fuzzy and exact-phrase mode, Enter to search,
// Ctrl+C or Esc to quit.
func NewInteractiveProgram(cfg Config, query QueryFunc) *tea.Program {
	ti := textinput.New()
	ti.Placeholder = "search..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	styles := GetStyles(cfg.NoColor || DetectNoColor())

	m := replModel{
		input:  ti,
		styles: styles,
		query:  query,
	}

	var opts []tea.ProgramOption
	if f, ok := cfg.Output.(*os.File); ok {
		opts = append(opts, tea.WithOutput(f))
	}
	return tea.NewProgram(m, opts...)
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

type queryResultMsg struct {
	outcome QueryOutcome
	err     error
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case queryResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.last = nil
		} else {
			m.err = nil
			m.last = &msg.outcome
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitted = true
			return m, tea.Quit
		case tea.KeyTab:
			m.exact = !m.exact
			return m, nil
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			return m, m.runQuery(text)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) runQuery(text string) tea.Cmd {
	exact := m.exact
	q := m.query
	return func() tea.Msg {
		outcome, err := q(text, exact)
		return queryResultMsg{outcome: outcome, err: err}
	}
}

func (m replModel) View() string {
	var b strings.Builder

	mode := "fuzzy"
	if m.exact {
		mode = "exact"
	}
	fmt.Fprintf(&b, "%s %s\n\n", m.styles.Header.Render("sitequery"), m.styles.Dim.Render("["+mode+", tab to switch]"))
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(m.styles.Error.Render(m.err.Error()))
	case m.last != nil:
		b.WriteString(m.renderOutcome(*m.last))
	default:
		b.WriteString(m.styles.Dim.Render("type a query and press enter"))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.Dim.Render("enter: search · tab: toggle mode · esc: quit"))
	return b.String()
}

func (m replModel) renderOutcome(outcome QueryOutcome) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", m.styles.Label.Render(fmt.Sprintf("%d candidate pages", outcome.Unfiltered)))
	if len(outcome.Results) == 0 {
		b.WriteString(m.styles.Warning.Render("no matches"))
		return b.String()
	}
	for i, res := range outcome.Results {
		if i >= 10 {
			fmt.Fprintf(&b, m.styles.Dim.Render("… %d more")+"\n", len(outcome.Results)-10)
			break
		}
		fmt.Fprintf(&b, "%s  %s\n",
			lipgloss.NewStyle().Bold(true).Render(res.Hash),
			m.styles.Score.Render(fmt.Sprintf("%.4f", res.Score)),
		)
	}
	return b.String()
}
