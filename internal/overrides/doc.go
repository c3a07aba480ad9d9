// Package overrides holds the user's changes to the weekly plan.
//
// There are three independent layers:
//
//	Selections  day -> meal type -> dish id -> alternative id
//	Swaps       meal type -> day -> partner day (symmetric)
//	Promotions  dish id -> alternative id shown as the main dish
//
// The plain map types carry the pure operations and can be used directly in
// tests or by the resolver. Store wraps a State, loads it from a kv.Store at
// startup and writes the affected layer back after every mutation.
//
// # Persistence
//
// Each layer is stored as JSON under its own key (SelectionsKey, SwapsKey,
// PromotionsKey). Loading is forgiving: a missing key, unparsable JSON or a
// value of the wrong shape yields an empty layer, and nested entries of the
// wrong shape are dropped one by one. Swap pairs that are not mirrored on
// both sides are dropped so the involution holds after load.
//
// Import is strict. ImportSelections accepts only a JSON object of the
// selections shape and otherwise returns an error wrapping ErrInvalidImport
// without touching the store. Only selections are imported or exported.
package overrides
