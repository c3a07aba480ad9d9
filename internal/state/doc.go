// Package state holds the result of the session's single dataset load.
//
// # Overview
//
// The viewer fetches the weekly plan once, from a Bubble Tea command running
// on its own goroutine, while the render loop reads the result. Store is the
// meeting point: the fetch calls Settle exactly once and the UI calls
// Snapshot on every render.
//
//	Fetch command:                 UI:
//	┌──────────────────┐          ┌──────────────────┐
//	│ client.FetchDiet │          │                  │
//	│        ↓         │          │                  │
//	│ store.Settle()   │─────────→│ store.Snapshot() │
//	│   (once)         │ (mutex)  │        ↓         │
//	└──────────────────┘          │   render view    │
//	                              └──────────────────┘
//
// # Phases
//
//	Loading → Ready    dataset available, Snapshot().Dataset is populated
//	Loading → Failed   Snapshot().Err is the terminal load error
//
// There is no transition out of Ready or Failed. A failed load is shown as a
// persistent message and is never retried; Settle returns false for every
// call after the first.
//
// # Copying
//
// Snapshot copies the day and meal slices so a caller cannot reorder the
// stored plan. Dish values are shared because nothing mutates them.
//
// The zero Store is ready to use and reports Loading.
package state
