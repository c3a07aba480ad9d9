// Package plan resolves the dish shown in every meal slot.
//
// Resolution is a pure function of the dataset and an overrides.State:
//
//  1. Swaps pick the day a (day, meal type) slot takes its dish list from.
//  2. Promotions replace a dish's main with one of its alternatives, and the
//     original main becomes the alternative "orig:<id>".
//  3. Selections pick an alternative for the slot, keyed by the requesting
//     day. A selection equal to the promoted id, or naming an id the dish
//     no longer offers, falls back to the main.
//
// Every lookup is total. Stale ids degrade to the main dish instead of
// failing.
package plan
