package ui

import (
	"errors"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/handydiet/internal/overrides"
)

// defaultExportFile is the proposed file name for export and import.
const defaultExportFile = "selezioni_dieta.json"

type promptKind int

const (
	promptExport promptKind = iota
	promptImport
)

// promptState is the one-line file path input on the status line.
type promptState struct {
	active bool
	kind   promptKind
	input  textinput.Model
}

// transferDoneMsg reports the outcome of an export or import.
type transferDoneMsg struct {
	text    string
	variant toastVariant
	refresh bool
}

func newPromptState() promptState {
	ti := textinput.New()
	ti.CharLimit = 512
	return promptState{input: ti}
}

func (p *promptState) open(kind promptKind, value string) tea.Cmd {
	p.active = true
	p.kind = kind
	if kind == promptExport {
		p.input.Prompt = "Esporta in: "
	} else {
		p.input.Prompt = "Importa da: "
	}
	p.input.SetValue(value)
	p.input.CursorEnd()
	return p.input.Focus()
}

func (p *promptState) close() {
	p.active = false
	p.input.Blur()
}

func (p promptState) view(styles Styles, bg BgStyle) string {
	return p.input.View() + bg.Spaces(2) + bg.Render("enter conferma · esc annulla", styles.FaintText)
}

// handlePromptKey handles keyboard input while the path prompt is open.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.prompt.close()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		path := strings.TrimSpace(m.prompt.input.Value())
		kind := m.prompt.kind
		m.prompt.close()
		if path == "" {
			return m, nil
		}
		if kind == promptExport {
			return m, exportCmd(m.overrides, path)
		}
		return m, importCmd(m.overrides, path)
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}

// exportCmd writes the selections layer to path.
func exportCmd(store *overrides.Store, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := store.ExportSelections()
		if err == nil {
			err = os.WriteFile(path, data, 0o644)
		}
		if err != nil {
			return transferDoneMsg{text: "Export fallito: " + err.Error(), variant: toastDanger}
		}
		return transferDoneMsg{text: "Esportato file selezioni", variant: toastInfo}
	}
}

// importCmd replaces the selections layer with the contents of path. A
// rejected file leaves the current selections untouched.
func importCmd(store *overrides.Store, path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err == nil {
			err = store.ImportSelections(data)
		}
		if err != nil {
			msg := err.Error()
			if errors.Is(err, os.ErrNotExist) {
				msg = "file non trovato: " + path
			}
			return transferDoneMsg{text: "Import fallito: " + msg, variant: toastDanger}
		}
		return transferDoneMsg{text: "Selezioni importate", variant: toastSuccess, refresh: true}
	}
}
