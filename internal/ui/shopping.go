package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/handydiet/internal/plan"
	"github.com/five82/handydiet/internal/prefs"
	"github.com/five82/handydiet/internal/shopping"
)

func (m *Model) initShoppingViewport() {
	m.shoppingViewport = viewport.New(max(m.width-4, 1), max(m.contentHeight()-2, 1))
	m.shoppingViewport.Style = lipgloss.NewStyle()
}

// shoppingList builds the list for the current scope. The day scope follows
// the day shown in the day view.
func (m Model) shoppingList() plan.ShoppingList {
	day := m.currentDay()
	if m.prefs.ShoppingScope == prefs.ScopeWeek {
		day = ""
	}
	return plan.Shopping(m.snapshot.Dataset, m.overrides.State(), day, m.prefs.Grouped)
}

// updateShoppingViewport re-renders the list into the viewport. Overrides
// change the list, so every mutation calls this.
func (m *Model) updateShoppingViewport() {
	if !m.ready || !m.snapshot.Ready() {
		return
	}
	if m.shoppingViewport.Width == 0 {
		m.initShoppingViewport()
	}
	m.shoppingViewport.Width = max(m.width-4, 1)
	m.shoppingViewport.Height = max(m.contentHeight()-2, 1)
	m.shoppingViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(m.theme.FocusBg))
	m.shoppingViewport.SetContent(m.renderShoppingContent(m.shoppingList(), m.width-4))
}

func (m Model) renderShoppingContent(list plan.ShoppingList, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	if len(list.Items) == 0 {
		return styles.MutedText.Render("Nessun ingrediente.")
	}

	nameWidth := 0
	for _, it := range list.Items {
		nameWidth = max(nameWidth, lipgloss.Width(it.Name))
	}
	nameWidth = min(nameWidth, max(width/2, 12))

	line := func(it shopping.Item) string {
		name := padRight(truncate(it.Name, nameWidth), nameWidth)
		return styles.Text.Render("  "+name+"  ") + styles.WarningText.Render(it.Quantity)
	}

	var lines []string
	if list.Buckets == nil {
		for _, it := range list.Items {
			lines = append(lines, line(it))
		}
		return strings.Join(lines, "\n")
	}
	for i, bucket := range list.Buckets {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, styles.AccentText.Bold(true).Render(fmt.Sprintf("%s (%d)", bucket.Category, len(bucket.Items))))
		for _, it := range bucket.Items {
			lines = append(lines, line(it))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) shoppingTitle() string {
	list := m.shoppingList()
	scope := "settimana"
	if !list.Week() {
		scope = list.Day
	}
	return fmt.Sprintf("Lista spesa: %s (%d voci, %d ingredienti)", scope, len(list.Items), list.Entries)
}

// renderShopping renders the shopping list view.
func (m Model) renderShopping() string {
	return m.renderTitledBox(m.shoppingTitle(), m.shoppingViewport.View(), m.width, m.contentHeight(), true)
}

// handleShoppingKey processes keyboard input for the shopping view.
func (m Model) handleShoppingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ToggleScope):
		if m.prefs.ShoppingScope == prefs.ScopeWeek {
			m.prefs.ShoppingScope = prefs.ScopeDay
		} else {
			m.prefs.ShoppingScope = prefs.ScopeWeek
		}
		m.savePrefs()
		m.updateShoppingViewport()
		m.shoppingViewport.GotoTop()
	case key.Matches(msg, m.keys.ToggleGrouped):
		m.prefs.Grouped = !m.prefs.Grouped
		m.savePrefs()
		m.updateShoppingViewport()
		m.shoppingViewport.GotoTop()
	case key.Matches(msg, m.keys.PrevDay):
		m.moveDay(-1)
	case key.Matches(msg, m.keys.NextDay):
		m.moveDay(1)
	case key.Matches(msg, m.keys.Down):
		m.shoppingViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Up):
		m.shoppingViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Top):
		m.shoppingViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.shoppingViewport.GotoBottom()
	}
	return m, nil
}
