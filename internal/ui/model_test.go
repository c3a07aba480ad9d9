package ui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/handydiet/internal/diet"
	"github.com/five82/handydiet/internal/kv"
	"github.com/five82/handydiet/internal/overrides"
	"github.com/five82/handydiet/internal/prefs"
	"github.com/five82/handydiet/internal/state"
)

func testPlan() diet.Dataset {
	return diet.Dataset{Days: []diet.Day{
		{Name: "Lunedì", Meals: []diet.Meal{
			{Type: "Pranzo", Dishes: []diet.Dish{
				{ID: "p1", Name: "Pasta al pomodoro", Notes: "al dente",
					Ingredients: []diet.Ingredient{{Name: "Pasta", Quantity: "80 g"}},
					Alternatives: []diet.Dish{
						{ID: "p1a", Name: "Riso in bianco", Ingredients: []diet.Ingredient{{Name: "Riso", Quantity: "70 g"}}},
						{ID: "p1b", Name: "Farro", Ingredients: []diet.Ingredient{{Name: "Farro", Quantity: "70 g"}}},
					}},
				{ID: "s1", Name: "Insalata", Ingredients: []diet.Ingredient{{Name: "Lattuga", Quantity: "q.b."}}},
			}},
			{Type: "Colazione", Dishes: []diet.Dish{
				{ID: "b1", Name: "Yogurt", Ingredients: []diet.Ingredient{{Name: "Yogurt", Quantity: "150 g"}}},
			}},
		}},
		{Name: "Martedì", Meals: []diet.Meal{
			{Type: "Pranzo", Dishes: []diet.Dish{{ID: "t1", Name: "Lenticchie"}}},
		}},
		{Name: "Mercoledì", Meals: []diet.Meal{
			{Type: "Cena", Dishes: []diet.Dish{{ID: "w1", Name: "Orata"}}},
		}},
	}}
}

type fixture struct {
	model     Model
	overrides *overrides.Store
	prefsPath string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	data := &state.Store{}
	data.Settle(testPlan(), nil)
	store := overrides.Load(kv.NewMemory(), nil)
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	m := New(Options{Data: data, Overrides: store, PrefsPath: prefsPath})
	f := &fixture{model: m, overrides: store, prefsPath: prefsPath}
	f.send(t, tea.WindowSizeMsg{Width: 120, Height: 40})
	return f
}

// send feeds msg to the model and returns the resulting command.
func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	f.model = m
	return cmd
}

// press sends each key in turn. Single characters become rune keys.
func (f *fixture) press(t *testing.T, keys ...string) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		cmd = f.send(t, keyMsg(k))
	}
	return cmd
}

// confirm presses enter in a picker and delivers the resulting message.
func (f *fixture) confirm(t *testing.T, k string) {
	t.Helper()
	cmd := f.press(t, k)
	if cmd == nil {
		t.Fatalf("%q produced no command", k)
	}
	f.send(t, cmd())
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func TestLoadingIgnoresKeysUntilSettled(t *testing.T) {
	data := &state.Store{}
	loads := 0
	m := New(Options{Data: data, Load: func(context.Context) error {
		loads++
		data.Settle(testPlan(), nil)
		return nil
	}})
	f := &fixture{model: m}
	f.send(t, tea.WindowSizeMsg{Width: 80, Height: 24})

	if !strings.Contains(f.model.View(), "Caricamento del piano") {
		t.Fatalf("loading view missing:\n%s", f.model.View())
	}
	f.press(t, "l")
	if f.model.dayIdx != 0 {
		t.Fatal("navigation should be ignored while loading")
	}

	f.send(t, f.model.Init()())
	if loads != 1 {
		t.Fatalf("load called %d times, want 1", loads)
	}
	if !f.model.snapshot.Ready() || len(f.model.days) != 3 {
		t.Fatalf("after load: phase %v, days %v", f.model.snapshot.Phase, f.model.days)
	}
}

func TestLoadFailureIsTerminal(t *testing.T) {
	data := &state.Store{}
	data.Settle(diet.Dataset{}, errors.New("api /api/diet returned status 500: Failed to load diet data"))
	f := &fixture{model: New(Options{Data: data})}
	f.send(t, tea.WindowSizeMsg{Width: 120, Height: 30})

	view := f.model.View()
	if !strings.Contains(view, "Impossibile caricare il piano") || !strings.Contains(view, "Failed to load diet data") {
		t.Fatalf("load error view missing message:\n%s", view)
	}
	if cmd := f.press(t, "L"); cmd != nil || f.model.currentView != ViewDay {
		t.Fatal("views should stay closed after a failed load")
	}
	if cmd := f.press(t, "q"); cmd == nil {
		t.Fatal("q should quit after a failed load")
	}
}

func TestDayNavigationWraps(t *testing.T) {
	f := newFixture(t)

	f.press(t, "h")
	if got := f.model.currentDay(); got != "Mercoledì" {
		t.Fatalf("prev from first day = %q, want Mercoledì", got)
	}
	f.press(t, "l")
	if got := f.model.currentDay(); got != "Lunedì" {
		t.Fatalf("next from last day = %q, want Lunedì", got)
	}
}

func TestDayNavigationKeepsMealType(t *testing.T) {
	f := newFixture(t)

	// Rows: Colazione/b1, Pranzo/p1, Pranzo/s1.
	f.press(t, "j")
	f.press(t, "right")
	row, ok := f.model.selectedRow()
	if !ok || row.slot.MealType != "Pranzo" || row.dish.Dish.ID != "t1" {
		t.Fatalf("row after moving to Martedì = %#v", row)
	}
}

func TestSelectAlternative(t *testing.T) {
	f := newFixture(t)

	f.press(t, "j", "enter")
	if _, ok := f.model.modal.(picker); !ok {
		t.Fatalf("modal = %T, want picker", f.model.modal)
	}
	f.press(t, "j")
	f.confirm(t, "enter")

	if f.model.modal != nil {
		t.Fatal("picker should close after a choice")
	}
	alt, ok := f.overrides.Selection("Lunedì", "Pranzo", "p1")
	if !ok || alt != "p1b" {
		t.Fatalf("selection = %q, %v; want p1b", alt, ok)
	}
	if f.model.toast.text != "Alternativa applicata" {
		t.Fatalf("toast = %q", f.model.toast.text)
	}
	row, _ := f.model.selectedRow()
	if !row.dish.Substituted || row.dish.Dish.ID != "p1b" {
		t.Fatalf("effective dish = %#v", row.dish)
	}

	f.press(t, "r")
	if _, ok := f.overrides.Selection("Lunedì", "Pranzo", "p1"); ok {
		t.Fatal("r should clear the selection")
	}
	if f.model.toast.text != "Ripristinato" {
		t.Fatalf("toast = %q", f.model.toast.text)
	}
}

func TestPromoteAndDemote(t *testing.T) {
	f := newFixture(t)

	f.press(t, "j", "enter")
	f.confirm(t, "p")
	if alt, ok := f.overrides.Promoted("p1"); !ok || alt != "p1a" {
		t.Fatalf("promotion = %q, %v; want p1a", alt, ok)
	}
	row, _ := f.model.selectedRow()
	if !row.dish.Promoted || row.dish.Dish.ID != "p1a" {
		t.Fatalf("effective dish = %#v", row.dish)
	}

	f.press(t, "D")
	if _, ok := f.overrides.Promoted("p1"); ok {
		t.Fatal("D should demote")
	}
}

func TestPromoteOriginalDemotes(t *testing.T) {
	f := newFixture(t)
	if err := f.overrides.Promote("p1", "p1b"); err != nil {
		t.Fatal(err)
	}

	// Alternatives after promotion: orig:p1, p1a.
	f.press(t, "j", "enter")
	f.confirm(t, "p")
	if _, ok := f.overrides.Promoted("p1"); ok {
		t.Fatal("promoting the original should demote")
	}
	if f.model.toast.text != "Piatto principale ripristinato" {
		t.Fatalf("toast = %q", f.model.toast.text)
	}
}

func TestSwapPickerExcludesCurrentDay(t *testing.T) {
	f := newFixture(t)

	f.press(t, "j", "s")
	p, ok := f.model.modal.(picker)
	if !ok {
		t.Fatalf("modal = %T, want picker", f.model.modal)
	}
	if len(p.items) != 2 || p.items[0].id != "Martedì" || p.items[1].id != "Mercoledì" {
		t.Fatalf("swap targets = %#v", p.items)
	}
	if p.items[0].active || p.items[1].active {
		t.Fatalf("unswapped slot marks a target active: %#v", p.items)
	}
	f.confirm(t, "enter")

	if got := f.overrides.EffectiveDay("Lunedì", "Pranzo"); got != "Martedì" {
		t.Fatalf("EffectiveDay = %q, want Martedì", got)
	}
	if want := `Pasto "Pranzo" scambiato: Lunedì ⇄ Martedì`; f.model.toast.text != want {
		t.Fatalf("toast = %q, want %q", f.model.toast.text, want)
	}

	f.press(t, "s")
	p, ok = f.model.modal.(picker)
	if !ok {
		t.Fatalf("modal = %T, want picker", f.model.modal)
	}
	if !p.items[0].active || p.items[1].active {
		t.Fatalf("swapped slot should mark Martedì active: %#v", p.items)
	}
	f.press(t, "esc")

	f.press(t, "S")
	if got := f.overrides.EffectiveDay("Lunedì", "Pranzo"); got != "Lunedì" {
		t.Fatalf("after reset EffectiveDay = %q, want Lunedì", got)
	}
}

func TestResetDay(t *testing.T) {
	f := newFixture(t)
	if err := f.overrides.Select("Lunedì", "Pranzo", "p1", "p1a"); err != nil {
		t.Fatal(err)
	}
	f.press(t, "R")
	if _, ok := f.overrides.Selection("Lunedì", "Pranzo", "p1"); ok {
		t.Fatal("R should clear the day's selections")
	}
	if f.model.toast.text != "Scelte del giorno resettate" {
		t.Fatalf("toast = %q", f.model.toast.text)
	}
}

func TestNotesModal(t *testing.T) {
	f := newFixture(t)

	f.press(t, "n")
	if f.model.modal != nil {
		t.Fatal("Yogurt has no notes")
	}
	f.press(t, "j", "n")
	if _, ok := f.model.modal.(textModal); !ok {
		t.Fatalf("modal = %T, want textModal", f.model.modal)
	}
	if !strings.Contains(f.model.View(), "al dente") {
		t.Fatal("notes not rendered")
	}
	f.press(t, "x")
	if f.model.modal != nil {
		t.Fatal("any key should close the notes")
	}
}

func TestShoppingScopePersists(t *testing.T) {
	f := newFixture(t)

	f.press(t, "L")
	if f.model.currentView != ViewShopping {
		t.Fatalf("view = %v, want shopping", f.model.currentView)
	}
	if got := f.model.shoppingTitle(); got != "Lista spesa: Lunedì (3 voci, 3 ingredienti)" {
		t.Fatalf("title = %q", got)
	}

	f.press(t, "w")
	if got := f.model.shoppingTitle(); got != "Lista spesa: settimana (3 voci, 3 ingredienti)" {
		t.Fatalf("week title = %q", got)
	}
	f.press(t, "c")
	saved := prefs.Load(f.prefsPath)
	if saved.ShoppingScope != prefs.ScopeWeek || saved.Grouped {
		t.Fatalf("saved prefs = %#v", saved)
	}

	f.press(t, "esc")
	if f.model.currentView != ViewDay {
		t.Fatalf("esc view = %v, want day", f.model.currentView)
	}
}

func TestShoppingFollowsSelections(t *testing.T) {
	f := newFixture(t)
	f.press(t, "j", "enter")
	f.confirm(t, "enter")

	list := f.model.shoppingList()
	for _, it := range list.Items {
		if it.Name == "Pasta" {
			t.Fatal("substituted dish ingredients should not be listed")
		}
	}
	found := false
	for _, it := range list.Items {
		if it.Name == "Riso" && it.Quantity == "70.00 g" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Riso missing from %#v", list.Items)
	}
}

func TestSearchJumpsToDay(t *testing.T) {
	f := newFixture(t)

	f.press(t, "/")
	if !f.model.search.input.Focused() {
		t.Fatal("search input should be focused")
	}
	f.press(t, "lent", "enter")
	if len(f.model.search.results) != 1 {
		t.Fatalf("results = %#v", f.model.search.results)
	}
	f.press(t, "enter")
	if f.model.currentView != ViewDay || f.model.currentDay() != "Martedì" {
		t.Fatalf("jump landed on %v/%q", f.model.currentView, f.model.currentDay())
	}
	row, _ := f.model.selectedRow()
	if row.slot.MealType != "Pranzo" {
		t.Fatalf("cursor meal = %q, want Pranzo", row.slot.MealType)
	}
}

func TestSearchInputSwallowsShortcuts(t *testing.T) {
	f := newFixture(t)
	f.press(t, "/", "q", "L")
	if f.model.currentView != ViewSearch {
		t.Fatalf("view = %v, want search", f.model.currentView)
	}
	if got := f.model.search.input.Value(); got != "qL" {
		t.Fatalf("input = %q, want qL", got)
	}
}

func TestExportImport(t *testing.T) {
	f := newFixture(t)
	if err := f.overrides.Select("Lunedì", "Pranzo", "p1", "p1a"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), defaultExportFile)

	msg := exportCmd(f.overrides, path)()
	done, ok := msg.(transferDoneMsg)
	if !ok || done.variant == toastDanger {
		t.Fatalf("export = %#v", msg)
	}
	f.send(t, done)
	if f.model.toast.text != "Esportato file selezioni" {
		t.Fatalf("toast = %q", f.model.toast.text)
	}

	if err := f.overrides.ResetDay("Lunedì"); err != nil {
		t.Fatal(err)
	}
	done = importCmd(f.overrides, path)().(transferDoneMsg)
	if done.text != "Selezioni importate" {
		t.Fatalf("import = %#v", done)
	}
	if alt, ok := f.overrides.Selection("Lunedì", "Pranzo", "p1"); !ok || alt != "p1a" {
		t.Fatalf("imported selection = %q, %v", alt, ok)
	}
}

func TestImportRejectsInvalidFile(t *testing.T) {
	f := newFixture(t)
	if err := f.overrides.Select("Lunedì", "Pranzo", "p1", "p1a"); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"Lunedì": ["p1a"]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	done := importCmd(f.overrides, path)().(transferDoneMsg)
	if done.variant != toastDanger || !strings.HasPrefix(done.text, "Import fallito: ") {
		t.Fatalf("import = %#v", done)
	}
	if alt, ok := f.overrides.Selection("Lunedì", "Pranzo", "p1"); !ok || alt != "p1a" {
		t.Fatalf("selection after rejected import = %q, %v", alt, ok)
	}

	done = importCmd(f.overrides, filepath.Join(t.TempDir(), "missing.json"))().(transferDoneMsg)
	if !strings.Contains(done.text, "file non trovato") {
		t.Fatalf("missing file import = %q", done.text)
	}
}

func TestExportPrompt(t *testing.T) {
	f := newFixture(t)

	f.press(t, "e")
	if !f.model.prompt.active || f.model.prompt.input.Value() != defaultExportFile {
		t.Fatalf("prompt = active %v value %q", f.model.prompt.active, f.model.prompt.input.Value())
	}
	f.press(t, "esc")
	if f.model.prompt.active {
		t.Fatal("esc should close the prompt")
	}
}

func TestToastExpiryKeepsNewerMessage(t *testing.T) {
	f := newFixture(t)
	f.model.notify("primo", toastInfo)
	old := f.model.toast.seq
	f.model.notify("secondo", toastInfo)

	f.send(t, toastExpiredMsg{seq: old})
	if f.model.toast.text != "secondo" {
		t.Fatalf("toast = %q, want secondo", f.model.toast.text)
	}
	f.send(t, toastExpiredMsg{seq: f.model.toast.seq})
	if f.model.toast.text != "" {
		t.Fatalf("toast = %q, want cleared", f.model.toast.text)
	}
}

func TestThemeCyclePersists(t *testing.T) {
	f := newFixture(t)
	f.press(t, "T")
	if f.model.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", f.model.theme.Name)
	}
	if got := prefs.Load(f.prefsPath).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q", got)
	}
}

func TestViewRendersDay(t *testing.T) {
	f := newFixture(t)
	view := f.model.View()
	for _, want := range []string{"handydiet", "Lunedì (1/3)", "Colazione", "Pranzo", "Pasta al pomodoro", "Ingredienti"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 20})
	if strings.Contains(f.model.View(), "Ingredienti") {
		t.Fatal("narrow layout should hide the detail pane")
	}
}
