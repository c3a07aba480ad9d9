package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the viewer.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Confirm    key.Binding

	// View switching
	ViewShopping key.Binding
	ViewSearch   key.Binding

	// Navigation
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	PrevDay key.Binding
	NextDay key.Binding

	// Dish actions
	Alternatives   key.Binding
	Notes          key.Binding
	ResetSelection key.Binding
	Promote        key.Binding
	Demote         key.Binding

	// Meal and day actions
	SwapMeal  key.Binding
	ResetSwap key.Binding
	ResetDay  key.Binding
	Export    key.Binding
	Import    key.Binding

	// Shopping list
	ToggleScope   key.Binding
	ToggleGrouped key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Esci"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Aiuto"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cambia tema"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Torna al giorno"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Conferma"),
		),

		ViewShopping: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Lista spesa"),
		),
		ViewSearch: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Cerca piatti"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Su"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Giù"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Inizio"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Fine"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "Giorno precedente"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "Giorno successivo"),
		),

		Alternatives: key.NewBinding(
			key.WithKeys("enter", "a"),
			key.WithHelp("enter/a", "Alternative"),
		),
		Notes: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "Note"),
		),
		ResetSelection: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Ripristina piatto"),
		),
		Promote: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "Promuovi a principale"),
		),
		Demote: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "Ripristina principale"),
		),

		SwapMeal: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "Scambia pasto"),
		),
		ResetSwap: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "Ripristina pasto"),
		),
		ResetDay: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "Reset giorno"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Esporta selezioni"),
		),
		Import: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "Importa selezioni"),
		),

		ToggleScope: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "Giorno/Settimana"),
		),
		ToggleGrouped: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "Raggruppa per categoria"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom, k.PrevDay, k.NextDay},
		{k.Alternatives, k.Notes, k.ResetSelection, k.Promote, k.Demote},
		{k.SwapMeal, k.ResetSwap, k.ResetDay},
		{k.ViewShopping, k.ToggleScope, k.ToggleGrouped, k.ViewSearch},
		{k.Export, k.Import, k.CycleTheme, k.Help, k.Quit},
	}
}
