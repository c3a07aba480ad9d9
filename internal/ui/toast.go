package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

type toastVariant int

const (
	toastInfo toastVariant = iota
	toastSuccess
	toastWarning
	toastDanger
)

// toastDuration is how long a confirmation stays on the status line.
const toastDuration = 4 * time.Second

// toast is the transient message on the status line. seq identifies the
// latest one so an older expiry never clears a newer message.
type toast struct {
	text    string
	variant toastVariant
	seq     int
}

type toastExpiredMsg struct{ seq int }

// notify shows text on the status line and schedules its removal.
func (m *Model) notify(text string, variant toastVariant) tea.Cmd {
	m.toast.seq++
	m.toast.text = text
	m.toast.variant = variant
	seq := m.toast.seq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// persistFailed reports a storage write that did not go through. The
// override store has already rolled back its in-memory state.
func (m *Model) persistFailed(err error) tea.Cmd {
	m.logger.Error("persist overrides", zap.Error(err))
	return m.notify("Salvataggio fallito: "+err.Error(), toastDanger)
}

// renderStatusLine renders the toast, or the short help when idle.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	if m.prompt.active {
		return styles.Footer.Width(m.width).Render(m.prompt.view(styles, bg))
	}

	if m.toast.text == "" {
		var hints []string
		for _, b := range m.keys.ShortHelp() {
			hints = append(hints, bg.Render(b.Help().Key, styles.AccentText)+bg.Sep(":")+bg.Render(b.Help().Desc, styles.MutedText))
		}
		return styles.Footer.Width(m.width).Render(bg.Join(hints, "  "))
	}

	var style lipgloss.Style
	switch m.toast.variant {
	case toastSuccess:
		style = styles.SuccessText
	case toastWarning:
		style = styles.WarningText
	case toastDanger:
		style = styles.DangerText
	default:
		style = styles.InfoText
	}
	return styles.Footer.Width(m.width).Render(bg.Render(truncate(m.toast.text, m.width-2), style))
}
