// Package diet defines the weekly plan dataset served at /api/diet.
//
// The dataset is a JSON object of days, each an object of meal types, each a
// list of dishes. Object key order carries meaning (days are in calendar
// order), so Dataset implements its own JSON codec instead of relying on Go
// maps. DecodeYAML accepts the same shape for hand-authored plans.
//
// A Dataset is loaded once per session and never mutated; user choices live
// in the overrides package.
package diet
