package plan

import (
	"github.com/five82/handydiet/internal/diet"
	"github.com/five82/handydiet/internal/overrides"
	"github.com/five82/handydiet/internal/shopping"
)

// ShoppingList is the aggregated list for one day or the whole week.
type ShoppingList struct {
	// Day is empty for the weekly list.
	Day     string
	Items   []shopping.Item
	Buckets []shopping.Bucket
	// Entries counts the raw ingredient lines merged into Items.
	Entries int
}

// Week reports whether the list covers every day.
func (l ShoppingList) Week() bool {
	return l.Day == ""
}

// Shopping aggregates the ingredients of the effective dishes of day, or of
// the whole week when day is empty. Buckets are filled only when grouped.
func Shopping(data diet.Dataset, st overrides.State, day string, grouped bool) ShoppingList {
	var dishes []diet.Dish
	if day == "" {
		dishes = UsedDishesWeek(data, st)
	} else {
		dishes = UsedDishes(data, st, day)
	}
	list := ShoppingList{Day: day, Items: shopping.Aggregate(dishes)}
	list.Entries = shopping.EntryCount(list.Items)
	if grouped {
		list.Buckets = shopping.Group(list.Items, nil)
	}
	return list
}
