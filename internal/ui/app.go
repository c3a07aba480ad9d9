package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/handydiet/internal/kv"
	"github.com/five82/handydiet/internal/overrides"
	"github.com/five82/handydiet/internal/prefs"
	"github.com/five82/handydiet/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewDay View = iota
	ViewShopping
	ViewSearch
)

// Options configures the UI.
type Options struct {
	Context context.Context
	// Load performs the one-shot dataset fetch and settles Data.
	Load      func(context.Context) error
	Data      *state.Store
	Overrides *overrides.Store
	Logger    *zap.Logger
	Prefs     prefs.Prefs
	PrefsPath string
	// Source is the dataset address shown while loading.
	Source string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	load      func(context.Context) error
	data      *state.Store
	overrides *overrides.Store
	logger    *zap.Logger
	prefs     prefs.Prefs
	prefsPath string
	source    string

	// UI state
	keys        keyMap
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot state.Snapshot
	days     []string
	dayIdx   int
	cursor   int

	shoppingViewport viewport.Model
	search           searchState
	prompt           promptState

	// Overlays
	modal    Modal
	showHelp bool
	toast    toast
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	data := opts.Data
	if data == nil {
		data = &state.Store{}
	}
	store := opts.Overrides
	if store == nil {
		store = overrides.Load(kv.NewMemory(), logger)
	}
	userPrefs := opts.Prefs
	if userPrefs == (prefs.Prefs{}) {
		userPrefs = prefs.Default()
	}

	m := Model{
		ctx:         ctx,
		load:        opts.Load,
		data:        data,
		overrides:   store,
		logger:      logger,
		prefs:       userPrefs,
		prefsPath:   opts.PrefsPath,
		source:      opts.Source,
		keys:        DefaultKeyMap(),
		theme:       GetTheme(userPrefs.Theme),
		currentView: ViewDay,
		search:      newSearchState(),
		prompt:      newPromptState(),
	}
	m.applySnapshot(data.Snapshot())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadCmd(m.ctx, m.load)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initShoppingViewport()
		}
		m.ready = true
		m.updateShoppingViewport()
		return m, nil

	case loadedMsg:
		m.applySnapshot(m.data.Snapshot())
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast.text = ""
		}
		return m, nil

	case altChosenMsg:
		return m, m.applyAlternative(msg)

	case swapChosenMsg:
		return m, m.applySwap(msg)

	case transferDoneMsg:
		if msg.refresh {
			m.updateShoppingViewport()
		}
		return m, m.notify(msg.text, msg.variant)
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Caricamento..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if !snap.Ready() {
		if snap.Phase == state.Failed {
			m.logger.Warn("dataset unavailable", zap.Error(snap.Err))
		}
		return
	}
	m.days = snap.Dataset.DayNames()
	m.dayIdx = 0
	m.cursor = 0
	m.updateShoppingViewport()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		next, cmd, closed := m.modal.Update(msg, m.keys)
		if closed {
			m.modal = nil
		} else {
			m.modal = next
		}
		return m, cmd
	}

	if m.prompt.active {
		return m.handlePromptKey(msg)
	}

	// Nothing but quitting works until the plan is loaded.
	if !m.snapshot.Ready() {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	if m.currentView == ViewSearch && m.search.input.Focused() {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		m.updateShoppingViewport()
		return m, nil

	case key.Matches(msg, m.keys.ViewShopping):
		m.currentView = ViewShopping
		m.updateShoppingViewport()
		m.shoppingViewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.ViewSearch):
		m.currentView = ViewSearch
		return m, m.search.focus()

	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewDay
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.prompt.open(promptExport, defaultExportFile)

	case key.Matches(msg, m.keys.Import):
		return m, m.prompt.open(promptImport, defaultExportFile)
	}

	switch m.currentView {
	case ViewShopping:
		return m.handleShoppingKey(msg)
	case ViewSearch:
		return m.handleSearchKey(msg)
	default:
		return m.handleDayKey(msg)
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.logger.Warn("save prefs", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())

	return b.String()
}

// contentHeight is the space left below the header, the command bar and
// the status line.
func (m Model) contentHeight() int {
	return max(m.height-3, 3)
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.snapshot.Phase {
	case state.Loading:
		return m.renderLoading()
	case state.Failed:
		return m.renderLoadError()
	}
	if len(m.days) == 0 {
		return m.renderTitledBox("Piano", m.theme.Styles().MutedText.Render("Nessun giorno nel piano."), m.width, m.contentHeight(), false)
	}

	switch m.currentView {
	case ViewShopping:
		return m.renderShopping()
	case ViewSearch:
		return m.renderSearch()
	default:
		return m.renderDay()
	}
}

// Messages

type loadedMsg struct{}

// Commands

func loadCmd(ctx context.Context, load func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if load != nil {
			// The outcome, error included, lands in state.Store.
			_ = load(ctx)
		}
		return loadedMsg{}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
