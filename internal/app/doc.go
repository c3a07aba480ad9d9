// Package app provides the orchestration layer for handydiet.
//
// # Overview
//
// This package wires together configuration, logging, override storage, the
// dataset client and the UI. It is the composition root shared by every
// command: the interactive viewer, the dataset server and the headless
// commands that print a shopping list, search dishes or move selections in
// and out of storage.
//
// # Architecture
//
// Open performs the common initialization:
//
//  1. Load settings from ~/.config/handydiet/config.toml
//  2. Build a zap logger (stderr, or the log file while the TUI runs)
//  3. Open the configured key-value backend (file, sqlite or memory)
//  4. Load the override layers from it, tolerating missing or corrupt data
//  5. Create the HTTP client for the dataset server
//
// # Components
//
//   - app.go: Session, Open, RunTUI and RunServe
//   - load.go: the single dataset fetch that settles state.Store
//   - headless.go: shopping, search, export, import and reset-day commands
//   - logger.go: zap logger construction
//
// # Data Flow
//
//	┌──────────────┐
//	│   Open()     │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read handydiet config
//	       ├─────> NewLogger()          JSON logs
//	       ├─────> kv.Open()            Override storage
//	       ├─────> overrides.Load()     Selections, swaps, promotions
//	       └─────> dietapi.NewClient()  Dataset client
//
//	RunTUI:   ui.Run() ──> Session.Load() ──> state.Store.Settle()
//	RunServe: server.New() ──> server.Run()  (blocks until cancelled)
//
// # Loading
//
// The dataset is fetched exactly once per session. Session.Load returns the
// settled outcome on later calls, so a failed fetch stays failed until the
// program is restarted. There is no polling and no retry.
//
// # Error Handling
//
// Initialization errors are returned to main and printed to stderr. Storage
// problems found while loading overrides are logged at debug level and the
// affected layer starts empty. Write failures during a mutation are returned
// to the caller and leave the previous state in place.
package app
