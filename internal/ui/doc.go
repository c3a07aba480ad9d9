// Package ui provides the terminal meal-plan viewer for handydiet.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model owns all view state; Update handles
// key presses and command results, View renders with lipgloss. The package
// is a thin caller of the core: meal slots come from plan.Day, the shopping
// list from plan.Shopping, and every user choice is written through
// overrides.Store before the next render.
//
// # Package Structure
//
//   - app.go: Model, Options, Init/Update/View and the Run entry point
//   - day.go: day view rows, dish actions, and the detail pane
//   - shopping.go: shopping list viewport with day/week scope and grouping
//   - search.go: dish search input and result navigation
//   - prompt.go: export/import path prompt and its file commands
//   - modal.go: alternatives picker, swap picker and notes dialog
//   - header.go: status header, command bar, loading and load-error screens
//   - toast.go: transient confirmations on the status line
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go, style_helpers.go, layout.go: colors, styles and boxes
//
// # Loading
//
// Init runs Options.Load once. The outcome is read back from state.Store:
// while loading only quitting works, and a failed load is shown as a
// terminal message until the user quits.
//
// # Views
//
//   - Day: meals in canonical order with their effective dishes. Substituted
//     and promoted dishes carry badges; swapped meals show the source day.
//   - Shopping: aggregated ingredients for the shown day or the whole week,
//     optionally grouped by category.
//   - Search: case-insensitive match over main dishes and alternatives.
//
// # Preferences
//
// Theme, shopping scope and grouping are saved to the prefs file whenever
// they change.
package ui
