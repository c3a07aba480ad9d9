package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/handydiet/internal/prefs"
	"github.com/five82/handydiet/internal/state"
)

// renderHeader renders the status bar: logo, load state, current day and
// override counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("handydiet", styles.Logo)}

	switch m.snapshot.Phase {
	case state.Loading:
		parts = append(parts, bg.Render("Caricamento piano...", styles.WarningText.Bold(true)))
	case state.Failed:
		parts = append(parts, bg.Render("● ERRORE", styles.DangerText))
	default:
		parts = append(parts, bg.Render(fmt.Sprintf("● %d giorni", len(m.days)), styles.SuccessText))
		if day := m.currentDay(); day != "" {
			parts = append(parts,
				bg.Render("Giorno:", styles.MutedText)+bg.Spaces(1)+
					bg.Render(fmt.Sprintf("%s (%d/%d)", day, m.dayIdx+1, len(m.days)), styles.Text))
		}
		st := m.overrides.State()
		if n := countSelections(st.Selections[m.currentDay()]); n > 0 {
			parts = append(parts, bg.Render(fmt.Sprintf("Sostituzioni: %d", n), styles.InfoText))
		}
		if n := len(st.Promotions); n > 0 && m.width >= LayoutCompactWidth {
			parts = append(parts, bg.Render(fmt.Sprintf("Promossi: %d", n), styles.MutedText))
		}
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  ") + sep)
}

func countSelections(day map[string]map[string]string) int {
	n := 0
	for _, dishes := range day {
		n += len(dishes)
	}
	return n
}

// renderCommandBar renders the command hints for the current view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case !m.snapshot.Ready():
		commands = []cmd{{"q", "Esci"}}
	case m.currentView == ViewShopping:
		scope := "Giorno"
		if m.prefs.ShoppingScope == prefs.ScopeWeek {
			scope = "Settimana"
		}
		grouped := "Elenco"
		if m.prefs.Grouped {
			grouped = "Categorie"
		}
		commands = []cmd{
			{"w", scope},
			{"c", grouped},
			{"h/l", "Giorno"},
			{"j/k", "Scorri"},
			{"esc", "Indietro"},
			{"?", "Altro"},
		}
	case m.currentView == ViewSearch:
		commands = []cmd{
			{"/", "Nuova ricerca"},
			{"j/k", "Risultati"},
			{"enter", "Vai al giorno"},
			{"esc", "Indietro"},
		}
	default:
		commands = []cmd{
			{"h/l", "Giorno"},
			{"j/k", "Piatto"},
			{"enter", "Alternative"},
			{"n", "Note"},
			{"s", "Scambia"},
			{"L", "Spesa"},
			{"/", "Cerca"},
			{"?", "Altro"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderLoading renders the content area while the fetch is in flight.
func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	text := styles.WarningText.Render("Caricamento del piano in corso...")
	if m.source != "" {
		text += "\n" + styles.MutedText.Render("Sorgente: "+truncateMiddle(m.source, m.width-14))
	}
	return m.renderTitledBox("Piano", text, m.width, m.contentHeight(), false)
}

// renderLoadError renders the terminal load failure. The session has no
// retry; the user restarts the viewer.
func (m Model) renderLoadError() string {
	styles := m.theme.Styles()
	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Impossibile caricare il piano."))
	b.WriteString("\n\n")
	if m.snapshot.Err != nil {
		b.WriteString(styles.Text.Render(truncate(m.snapshot.Err.Error(), m.width-6)))
		b.WriteString("\n")
	}
	if m.source != "" {
		b.WriteString(styles.MutedText.Render("Sorgente: " + truncateMiddle(m.source, m.width-14)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Premi q per uscire."))
	return m.renderTitledBox("Errore", b.String(), m.width, m.contentHeight(), true)
}
