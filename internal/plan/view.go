package plan

import (
	"github.com/five82/handydiet/internal/diet"
	"github.com/five82/handydiet/internal/overrides"
)

// Slot is one resolved meal of a day.
type Slot struct {
	Day      string
	MealType string
	// SourceDay is the day the dishes come from; it differs from Day when
	// the meal type is swapped.
	SourceDay string
	Dishes    []Effective
}

// Swapped reports whether the slot shows another day's dishes.
func (s Slot) Swapped() bool {
	return s.SourceDay != s.Day
}

// DayView is a fully resolved day in canonical meal order.
type DayView struct {
	Name  string
	Meals []Slot
}

// Meal resolves the (day, mealType) slot. The dish list comes from the
// effective day under swaps; each dish is resolved with the requesting
// day's selections.
func Meal(data diet.Dataset, st overrides.State, day, mealType string) Slot {
	source := st.Swaps.EffectiveDay(day, mealType)
	dishes := data.Dishes(source, mealType)
	slot := Slot{Day: day, MealType: mealType, SourceDay: source}
	if len(dishes) > 0 {
		slot.Dishes = make([]Effective, 0, len(dishes))
	}
	for _, d := range dishes {
		slot.Dishes = append(slot.Dishes, ResolveDish(day, mealType, d, st))
	}
	return slot
}

// Day resolves every meal slot of day. An unknown day yields an empty view.
func Day(data diet.Dataset, st overrides.State, day string) DayView {
	view := DayView{Name: day}
	d, ok := data.Day(day)
	if !ok {
		return view
	}
	for _, mealType := range d.MealTypes() {
		view.Meals = append(view.Meals, Meal(data, st, day, mealType))
	}
	return view
}

// Week resolves every day in calendar order.
func Week(data diet.Dataset, st overrides.State) []DayView {
	views := make([]DayView, 0, len(data.Days))
	for _, name := range data.DayNames() {
		views = append(views, Day(data, st, name))
	}
	return views
}

// UsedDishes returns the effective dishes of day, in slot order.
func UsedDishes(data diet.Dataset, st overrides.State, day string) []diet.Dish {
	return collect(Day(data, st, day))
}

// UsedDishesWeek returns the effective dishes of every day.
func UsedDishesWeek(data diet.Dataset, st overrides.State) []diet.Dish {
	var out []diet.Dish
	for _, view := range Week(data, st) {
		out = append(out, collect(view)...)
	}
	return out
}

func collect(view DayView) []diet.Dish {
	var out []diet.Dish
	for _, slot := range view.Meals {
		for _, eff := range slot.Dishes {
			out = append(out, eff.Dish)
		}
	}
	return out
}
