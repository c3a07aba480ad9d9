// Package shopping builds the shopping list for a day or the whole week.
//
// # Quantities
//
// ParseQuantity reads a leading number (decimal comma or dot) and an optional
// word unit. Entries in g, gr or grammi are summable; everything else, such as
// "1 porzione", "10 ml" or "q.b.", is kept as the raw string.
//
// # Aggregation
//
// Aggregate groups ingredients by trimmed name. An item's display is the gram
// sum formatted as "%.2f g" followed by its non-summable strings joined with
// " + ". When the gram sum is zero the raw gram strings are shown in its place,
// so {"0 g", "q.b."} reads "0 g + q.b.". Items are sorted by name with Italian
// collation.
//
// # Categories
//
// Categorize lowercases the name and walks a fixed rule list, returning the
// first category with a matching keyword. Keywords are mostly stems, so
// singular and plural forms agree. The rules are checked from preserves,
// condiments and drinks through dairy, bread, cereals, eggs, fish, meat and
// nuts to vegetables, herbs, legumes and fruit, so "tonno sott'olio" is a
// preserve and "fagiolini" a vegetable rather than a legume.
//
// A rule may name exceptions it leaves to later rules, which sends "erba
// cipollina" and "noce moscata" to Erbe e spezie. Names that match nothing
// fall in Altro. Group buckets items by category in CategoryOrder, which is
// the display order, not the matching order.
package shopping
