package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/handydiet/internal/plan"
)

// searchState holds the dish search input and its last results.
type searchState struct {
	input   textinput.Model
	query   string
	results []plan.Match
	cursor  int
}

func newSearchState() searchState {
	ti := textinput.New()
	ti.Placeholder = "Cerca piatti..."
	ti.CharLimit = 100
	ti.Prompt = "/ "
	return searchState{input: ti}
}

func (s *searchState) focus() tea.Cmd {
	s.input.SetValue(s.query)
	s.input.CursorEnd()
	return s.input.Focus()
}

// handleSearchInput handles keyboard input while typing a query.
func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.search.query = strings.TrimSpace(m.search.input.Value())
		m.search.results = plan.Search(m.snapshot.Dataset, m.search.query)
		m.search.cursor = 0
		m.search.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.search.input.Blur()
		if m.search.query == "" {
			m.currentView = ViewDay
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search.input, cmd = m.search.input.Update(msg)
	return m, cmd
}

// handleSearchKey processes keyboard input over the result list.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.search.results)
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.search.cursor < n-1 {
			m.search.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.search.cursor > 0 {
			m.search.cursor--
		}
	case key.Matches(msg, m.keys.Top):
		m.search.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.search.cursor = max(n-1, 0)
	case key.Matches(msg, m.keys.Confirm):
		if n == 0 {
			return m, nil
		}
		m.jumpTo(m.search.results[m.search.cursor])
	}
	return m, nil
}

// jumpTo shows the day and meal of a search hit in the day view.
func (m *Model) jumpTo(match plan.Match) {
	for i, d := range m.days {
		if d == match.Day {
			m.dayIdx = i
			break
		}
	}
	m.cursor = 0
	m.focusMeal(match.MealType)
	m.currentView = ViewDay
	m.updateShoppingViewport()
}

// renderSearch renders the query line and the results.
func (m Model) renderSearch() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	height := m.contentHeight()
	width := m.width - 2

	var lines []string
	lines = append(lines, m.search.input.View(), "")

	focus := 0
	switch {
	case m.search.query == "":
		lines = append(lines, styles.MutedText.Render("Scrivi il nome di un piatto e premi invio."))
	case len(m.search.results) == 0:
		lines = append(lines, styles.MutedText.Render(fmt.Sprintf("Nessun risultato per %q.", m.search.query)))
	default:
		for i, r := range m.search.results {
			kind := ""
			if r.Kind == plan.KindAlternative {
				kind = " (alternativa)"
			}
			text := truncate(fmt.Sprintf("%s · %s · %s%s", r.Day, r.MealType, r.DishName, kind), width-2)
			if i == m.search.cursor && !m.search.input.Focused() {
				focus = len(lines)
				lines = append(lines, m.theme.Styles().Selected.Render(padRight("› "+text, width)))
				continue
			}
			lines = append(lines, styles.Text.Render("  "+text))
		}
	}

	title := "Cerca"
	if n := len(m.search.results); n > 0 {
		title = fmt.Sprintf("Cerca: %d risultati", n)
	}
	return m.renderTitledBox(title, strings.Join(window(lines, focus, height-2), "\n"), m.width, height, true)
}
