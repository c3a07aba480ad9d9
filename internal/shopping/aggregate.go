package shopping

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/five82/handydiet/internal/diet"
)

// Item is one shopping list line. Entries keeps every raw quantity that was
// merged into it, in input order.
type Item struct {
	Name     string   `json:"name"`
	Quantity string   `json:"quantity"`
	Entries  []string `json:"entries"`
}

// Bucket is a category group of the shopping list.
type Bucket struct {
	Category string `json:"category"`
	Items    []Item `json:"items"`
}

// Collation is the language used to order item names.
var Collation = language.Italian

type group struct {
	name        string
	entries     []string
	nonSummable []string
	// gramEntries keeps the raw gram strings for a sum of zero.
	gramEntries []string
	grams       float64
}

// Aggregate merges the ingredients of dishes into a shopping list sorted by
// name. Names are grouped after trimming and are case-sensitive. Gram
// quantities are summed; every other quantity is kept verbatim.
func Aggregate(dishes []diet.Dish) []Item {
	var order []string
	groups := make(map[string]*group)
	for _, d := range dishes {
		for _, ing := range d.Ingredients {
			key := strings.TrimSpace(ing.Name)
			g, ok := groups[key]
			if !ok {
				g = &group{name: key}
				groups[key] = g
				order = append(order, key)
			}
			g.entries = append(g.entries, ing.Quantity)
			if q := ParseQuantity(ing.Quantity); q.IsGrams() {
				g.grams += q.Value
				g.gramEntries = append(g.gramEntries, ing.Quantity)
			} else if strings.TrimSpace(ing.Quantity) != "" {
				g.nonSummable = append(g.nonSummable, ing.Quantity)
			}
		}
	}

	items := make([]Item, 0, len(order))
	for _, key := range order {
		g := groups[key]
		items = append(items, Item{Name: g.name, Quantity: g.display(), Entries: g.entries})
	}
	sortItems(items)
	return items
}

func (g *group) display() string {
	var parts []string
	if g.grams > 0 {
		parts = append(parts, fmt.Sprintf("%.2f g", g.grams))
	} else {
		parts = append(parts, g.gramEntries...)
	}
	parts = append(parts, g.nonSummable...)
	if len(parts) == 0 {
		for _, e := range g.entries {
			if strings.TrimSpace(e) != "" {
				parts = append(parts, e)
			}
		}
	}
	return strings.Join(parts, " + ")
}

// Group buckets items by category. Buckets follow CategoryOrder, then any
// category unknown to it in first-seen order. A nil categorize uses Categorize.
func Group(items []Item, categorize func(string) string) []Bucket {
	if categorize == nil {
		categorize = Categorize
	}
	var seen []string
	byCategory := make(map[string][]Item)
	for _, it := range items {
		cat := categorize(it.Name)
		if _, ok := byCategory[cat]; !ok {
			seen = append(seen, cat)
		}
		byCategory[cat] = append(byCategory[cat], it)
	}

	buckets := make([]Bucket, 0, len(byCategory))
	emit := func(cat string) {
		list := byCategory[cat]
		sortItems(list)
		buckets = append(buckets, Bucket{Category: cat, Items: list})
	}
	for _, cat := range CategoryOrder {
		if _, ok := byCategory[cat]; ok {
			emit(cat)
		}
	}
	for _, cat := range seen {
		if !slices.Contains(CategoryOrder, cat) {
			emit(cat)
		}
	}
	return buckets
}

// EntryCount returns the number of raw ingredient entries behind items.
func EntryCount(items []Item) int {
	n := 0
	for _, it := range items {
		n += len(it.Entries)
	}
	return n
}

func sortItems(items []Item) {
	col := collate.New(Collation)
	slices.SortStableFunc(items, func(a, b Item) int {
		return col.CompareString(a.Name, b.Name)
	})
}
