package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/handydiet/internal/plan"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

const modalWidth = 56

// altChosenMsg carries a choice made in the alternatives picker.
type altChosenMsg struct {
	day, mealType string
	dishID        string
	altID         string
	promote       bool
}

// swapChosenMsg carries the target day picked for a meal swap.
type swapChosenMsg struct {
	mealType string
	day      string
	target   string
}

type pickerItem struct {
	id     string
	label  string
	detail string
	active bool
}

// picker is a single-choice list. choose builds the command sent when an
// item is confirmed; promote is set when the promote key was used.
type picker struct {
	title      string
	hint       string
	items      []pickerItem
	cursor     int
	canPromote bool
	choose     func(item pickerItem, promote bool) tea.Cmd
}

func newAlternativesPicker(day, mealType string, eff plan.Effective) picker {
	items := make([]pickerItem, 0, len(eff.Alternatives))
	for _, alt := range eff.Alternatives {
		label := alt.Name
		if alt.ID == plan.OriginalID(eff.Raw.ID) {
			label += " (originale)"
		}
		items = append(items, pickerItem{
			id:     alt.ID,
			label:  label,
			detail: alt.QuantityFromName,
			active: alt.ID == eff.SelectedID,
		})
	}
	dishID := eff.Raw.ID
	return picker{
		title:      "Alternative per: " + eff.Dish.Name,
		hint:       "enter scegli · p promuovi a principale · esc chiudi",
		items:      items,
		canPromote: true,
		choose: func(item pickerItem, promote bool) tea.Cmd {
			return func() tea.Msg {
				return altChosenMsg{day: day, mealType: mealType, dishID: dishID, altID: item.id, promote: promote}
			}
		},
	}
}

// newSwapPicker lists every day except the current one. The day whose dishes
// currently fill the slot is marked active.
func newSwapPicker(day, mealType, partner string, days []string) picker {
	items := make([]pickerItem, 0, len(days))
	for _, d := range days {
		if d == day {
			continue
		}
		items = append(items, pickerItem{id: d, label: "Scambia con " + d, active: d == partner})
	}
	return picker{
		title: "Scambia " + mealType + " di " + day,
		hint:  "enter scambia · esc chiudi",
		items: items,
		choose: func(item pickerItem, _ bool) tea.Cmd {
			return func() tea.Msg {
				return swapChosenMsg{mealType: mealType, day: day, target: item.id}
			}
		},
	}
}

func (p picker) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Escape), key.Matches(keyMsg, keys.Quit):
		return p, nil, true
	case key.Matches(keyMsg, keys.Down):
		if p.cursor < len(p.items)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, keys.Confirm):
		if len(p.items) == 0 {
			return p, nil, true
		}
		return p, p.choose(p.items[p.cursor], false), true
	case p.canPromote && key.Matches(keyMsg, keys.Promote):
		if len(p.items) == 0 {
			return p, nil, true
		}
		return p, p.choose(p.items[p.cursor], true), true
	}
	return p, nil, false
}

func (p picker) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render(truncate(p.title, modalWidth-6)))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", modalWidth-6)))
	b.WriteString("\n\n")

	if len(p.items) == 0 {
		b.WriteString(styles.MutedText.Render("Nessuna scelta disponibile."))
		b.WriteString("\n")
	}
	for i, item := range p.items {
		mark := "  "
		if item.active {
			mark = "● "
		}
		line := truncate(mark+item.label, modalWidth-8)
		if i == p.cursor {
			line = styles.Selected.Render(padRight("› "+line, modalWidth-6))
		} else {
			line = styles.Text.Render("  " + line)
		}
		b.WriteString(line)
		b.WriteString("\n")
		if d := strings.TrimSpace(item.detail); d != "" {
			b.WriteString(styles.MutedText.Render("    " + truncate(d, modalWidth-10)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(p.hint))
	return placeModal(theme, width, height, b.String())
}

// textModal shows read-only text; any key closes it.
type textModal struct {
	title string
	body  string
}

func (t textModal) Update(msg tea.Msg, _ keyMap) (Modal, tea.Cmd, bool) {
	_, isKey := msg.(tea.KeyMsg)
	return t, nil, isKey
}

func (t textModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	content := styles.Text.Bold(true).Render(truncate(t.title, modalWidth-6)) + "\n" +
		styles.FaintText.Render(strings.Repeat("─", modalWidth-6)) + "\n\n" +
		styles.Text.Width(modalWidth-6).Render(t.body)
	return placeModal(theme, width, height, content)
}

// placeModal centers content in a rounded box over the screen.
func placeModal(theme Theme, width, height int, content string) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Accent)).
		Padding(1, 2).
		Width(modalWidth)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
