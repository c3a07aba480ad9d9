package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/handydiet/internal/plan"
)

// dishRow is one cursor stop of the day view. dish is nil for a meal slot
// that resolved to no dishes, which can happen after a swap.
type dishRow struct {
	slot plan.Slot
	dish *plan.Effective
}

func (m Model) currentDay() string {
	if m.dayIdx < 0 || m.dayIdx >= len(m.days) {
		return ""
	}
	return m.days[m.dayIdx]
}

func (m Model) dayView() plan.DayView {
	return plan.Day(m.snapshot.Dataset, m.overrides.State(), m.currentDay())
}

func rowsFor(view plan.DayView) []dishRow {
	var rows []dishRow
	for _, slot := range view.Meals {
		if len(slot.Dishes) == 0 {
			rows = append(rows, dishRow{slot: slot})
			continue
		}
		for i := range slot.Dishes {
			rows = append(rows, dishRow{slot: slot, dish: &slot.Dishes[i]})
		}
	}
	return rows
}

// selectedRow returns the row under the cursor.
func (m Model) selectedRow() (dishRow, bool) {
	rows := rowsFor(m.dayView())
	if len(rows) == 0 {
		return dishRow{}, false
	}
	idx := min(max(m.cursor, 0), len(rows)-1)
	return rows[idx], true
}

// moveDay steps delta days with wrap-around, keeping the cursor on the same
// meal type when the new day has it.
func (m *Model) moveDay(delta int) {
	if len(m.days) == 0 {
		return
	}
	mealType := ""
	if row, ok := m.selectedRow(); ok {
		mealType = row.slot.MealType
	}
	n := len(m.days)
	m.dayIdx = ((m.dayIdx+delta)%n + n) % n
	m.focusMeal(mealType)
	m.updateShoppingViewport()
}

// focusMeal places the cursor on the first row of mealType, or clamps it.
func (m *Model) focusMeal(mealType string) {
	rows := rowsFor(m.dayView())
	for i, row := range rows {
		if row.slot.MealType == mealType {
			m.cursor = i
			return
		}
	}
	m.cursor = min(m.cursor, max(len(rows)-1, 0))
}

// handleDayKey processes keyboard input for the day view.
func (m Model) handleDayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := rowsFor(m.dayView())

	switch {
	case key.Matches(msg, m.keys.PrevDay):
		m.moveDay(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextDay):
		m.moveDay(1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = max(len(rows)-1, 0)
		return m, nil
	case key.Matches(msg, m.keys.ResetDay):
		day := m.currentDay()
		if err := m.overrides.ResetDay(day); err != nil {
			return m, m.persistFailed(err)
		}
		m.updateShoppingViewport()
		return m, m.notify("Scelte del giorno resettate", toastWarning)
	}

	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	day := m.currentDay()

	switch {
	case key.Matches(msg, m.keys.SwapMeal):
		partner := m.overrides.EffectiveDay(day, row.slot.MealType)
		m.modal = newSwapPicker(day, row.slot.MealType, partner, m.days)
		return m, nil

	case key.Matches(msg, m.keys.ResetSwap):
		if err := m.overrides.ResetSwap(row.slot.MealType, day); err != nil {
			return m, m.persistFailed(err)
		}
		m.updateShoppingViewport()
		return m, m.notify(fmt.Sprintf("Pasto %q ripristinato", row.slot.MealType), toastWarning)
	}

	if row.dish == nil {
		return m, nil
	}
	eff := *row.dish

	switch {
	case key.Matches(msg, m.keys.Alternatives):
		if len(eff.Alternatives) == 0 {
			return m, m.notify("Nessuna alternativa per "+eff.Dish.Name, toastInfo)
		}
		m.modal = newAlternativesPicker(day, row.slot.MealType, eff)
		return m, nil

	case key.Matches(msg, m.keys.Notes):
		if strings.TrimSpace(eff.Dish.Notes) == "" {
			return m, m.notify("Nessuna nota per "+eff.Dish.Name, toastInfo)
		}
		m.modal = textModal{title: "Note: " + eff.Dish.Name, body: eff.Dish.Notes}
		return m, nil

	case key.Matches(msg, m.keys.ResetSelection):
		if !eff.Substituted {
			return m, nil
		}
		if err := m.overrides.Select(day, row.slot.MealType, eff.Raw.ID, ""); err != nil {
			return m, m.persistFailed(err)
		}
		m.updateShoppingViewport()
		return m, m.notify("Ripristinato", toastWarning)

	case key.Matches(msg, m.keys.Demote):
		if !eff.Promoted {
			return m, nil
		}
		if err := m.overrides.Demote(eff.Raw.ID); err != nil {
			return m, m.persistFailed(err)
		}
		m.updateShoppingViewport()
		return m, m.notify("Piatto principale ripristinato", toastWarning)
	}

	return m, nil
}

// applyAlternative stores the choice made in the alternatives picker.
func (m *Model) applyAlternative(msg altChosenMsg) tea.Cmd {
	var (
		err  error
		text string
	)
	switch {
	case !msg.promote:
		err = m.overrides.Select(msg.day, msg.mealType, msg.dishID, msg.altID)
		text = "Alternativa applicata"
	case msg.altID == plan.OriginalID(msg.dishID):
		err = m.overrides.Demote(msg.dishID)
		text = "Piatto principale ripristinato"
	default:
		err = m.overrides.Promote(msg.dishID, msg.altID)
		text = "Alternativa promossa a principale"
	}
	if err != nil {
		return m.persistFailed(err)
	}
	m.updateShoppingViewport()
	return m.notify(text, toastSuccess)
}

// applySwap stores the day chosen in the swap picker.
func (m *Model) applySwap(msg swapChosenMsg) tea.Cmd {
	if err := m.overrides.Swap(msg.mealType, msg.day, msg.target); err != nil {
		return m.persistFailed(err)
	}
	m.updateShoppingViewport()
	return m.notify(fmt.Sprintf("Pasto %q scambiato: %s ⇄ %s", msg.mealType, msg.day, msg.target), toastInfo)
}

// renderDay renders the meal list and, on wide terminals, the detail pane.
func (m Model) renderDay() string {
	view := m.dayView()
	rows := rowsFor(view)
	height := m.contentHeight()
	title := fmt.Sprintf("%s (%d/%d)", view.Name, m.dayIdx+1, len(m.days))

	if m.width < LayoutCompactWidth {
		content := m.renderMealList(rows, m.width-2, height-2)
		return m.renderTitledBox(title, content, m.width, height, true)
	}

	detailWidth := int(float64(m.width) * detailPaneRatio)
	listWidth := m.width - detailWidth
	list := m.renderTitledBox(title, m.renderMealList(rows, listWidth-2, height-2), listWidth, height, true)

	detailTitle := "Dettaglio"
	detail := m.theme.Styles().MutedText.Render("Nessun piatto selezionato.")
	if len(rows) > 0 {
		row := rows[min(max(m.cursor, 0), len(rows)-1)]
		if row.dish != nil {
			detailTitle = row.dish.Dish.Name
			detail = m.renderDishDetail(*row.dish, detailWidth-4)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		list,
		m.renderTitledBox(detailTitle, detail, detailWidth, height, false))
}

// renderMealList renders the day's meals, one line per dish, windowed so
// the cursor stays visible.
func (m Model) renderMealList(rows []dishRow, width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	if len(rows) == 0 {
		return styles.MutedText.Render("Nessun pasto per questo giorno.")
	}

	var lines []string
	focus := 0
	lastMeal := ""
	for i, row := range rows {
		if row.slot.MealType != lastMeal {
			if lastMeal != "" {
				lines = append(lines, "")
			}
			header := styles.AccentText.Bold(true).Render(row.slot.MealType)
			if row.slot.Swapped() {
				header += " " + styles.BadgeStyle(BadgeSwapped).Render("da "+row.slot.SourceDay)
			}
			lines = append(lines, header)
			lastMeal = row.slot.MealType
		}
		if i == m.cursor {
			focus = len(lines)
		}
		lines = append(lines, m.renderDishLine(row, i == m.cursor, width))
	}
	return strings.Join(window(lines, focus, height), "\n")
}

func (m Model) renderDishLine(row dishRow, selected bool, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	marker := "  "
	if selected {
		marker = "› "
	}
	if row.dish == nil {
		return styles.FaintText.Render(marker + "(nessun piatto)")
	}

	eff := row.dish
	var badges []string
	if eff.Substituted {
		badges = append(badges, styles.BadgeStyle(BadgeSubstituted).Render("sostituito"))
	}
	if eff.Promoted {
		badges = append(badges, styles.BadgeStyle(BadgePromoted).Render("promosso"))
	}
	if len(eff.Alternatives) > 0 && !eff.Substituted {
		badges = append(badges, styles.FaintText.Render(fmt.Sprintf("+%d", len(eff.Alternatives))))
	}
	suffix := strings.Join(badges, " ")

	name := eff.Dish.Name
	if q := strings.TrimSpace(eff.Dish.QuantityFromName); q != "" {
		name += " · " + q
	}
	nameWidth := max(width-lipgloss.Width(marker)-lipgloss.Width(suffix)-1, 8)
	text := truncate(name, nameWidth)

	if selected {
		sel := lipgloss.NewStyle().
			Background(lipgloss.Color(m.theme.SelectionBg)).
			Foreground(lipgloss.Color(m.theme.SelectionText))
		return sel.Render(padRight(marker+text, width-lipgloss.Width(suffix)-1)) + " " + suffix
	}
	return styles.Text.Render(marker+text) + " " + suffix
}

// renderDishDetail renders ingredients, notes and alternatives of the
// effective dish.
func (m Model) renderDishDetail(eff plan.Effective, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	var b strings.Builder

	if q := strings.TrimSpace(eff.Dish.QuantityFromName); q != "" {
		b.WriteString(styles.MutedText.Render(q))
		b.WriteString("\n")
	}
	if eff.Substituted {
		b.WriteString(styles.InfoText.Render("Sostituisce: " + eff.Raw.Name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Ingredienti"))
	b.WriteString("\n")
	if len(eff.Dish.Ingredients) == 0 {
		b.WriteString(styles.FaintText.Render("  nessuno"))
		b.WriteString("\n")
	}
	for _, ing := range eff.Dish.Ingredients {
		line := "  " + ing.Name
		if q := strings.TrimSpace(ing.Quantity); q != "" {
			line += "  " + q
		}
		b.WriteString(styles.Text.Render(truncate(line, width)))
		b.WriteString("\n")
	}

	if notes := strings.TrimSpace(eff.Dish.Notes); notes != "" {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Note"))
		b.WriteString("\n")
		b.WriteString(styles.Text.Width(width).Render(notes))
		b.WriteString("\n")
	}

	if len(eff.Alternatives) > 0 {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render("Alternative"))
		b.WriteString("\n")
		for _, alt := range eff.Alternatives {
			mark := "  "
			if alt.ID == eff.SelectedID {
				mark = "● "
			}
			b.WriteString(styles.Text.Render(truncate(mark+alt.Name, width)))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
