package diet

import "slices"

// MealOrder is the canonical presentation order for meal types.
var MealOrder = []string{
	"Colazione",
	"Tra colazione e pranzo",
	"Pranzo",
	"Tra pranzo e cena",
	"Cena",
	"Dopo cena",
}

// Ingredient is a single shopping entry of a dish.
type Ingredient struct {
	Name     string `json:"name" yaml:"name"`
	Quantity string `json:"quantity" yaml:"quantity"`
}

// Dish mirrors a dish entry of the dataset. Alternatives are flat: an
// alternative's own Alternatives field is ignored by every consumer.
type Dish struct {
	ID               string       `json:"id" yaml:"id"`
	Name             string       `json:"name" yaml:"name"`
	QuantityFromName string       `json:"quantityFromName,omitempty" yaml:"quantityFromName,omitempty"`
	Notes            string       `json:"notes,omitempty" yaml:"notes,omitempty"`
	Ingredients      []Ingredient `json:"ingredients,omitempty" yaml:"ingredients,omitempty"`
	Alternatives     []Dish       `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

// Alternative returns the alternative with the given id.
func (d Dish) Alternative(id string) (Dish, bool) {
	for _, alt := range d.Alternatives {
		if alt.ID == id {
			return alt, true
		}
	}
	return Dish{}, false
}

// Meal is one meal-type slot of a day.
type Meal struct {
	Type   string
	Dishes []Dish
}

// Day groups the meals of one calendar day in dataset order.
type Day struct {
	Name  string
	Meals []Meal
}

// Meal returns the slot for mealType.
func (d Day) Meal(mealType string) (Meal, bool) {
	for _, m := range d.Meals {
		if m.Type == mealType {
			return m, true
		}
	}
	return Meal{}, false
}

// MealTypes returns the day's meal types in canonical order followed by
// unrecognized types in encountered order.
func (d Day) MealTypes() []string {
	types := make([]string, 0, len(d.Meals))
	for _, m := range d.Meals {
		types = append(types, m.Type)
	}
	return OrderMealTypes(types)
}

// Dataset is the immutable weekly plan. Days keep their calendar order.
type Dataset struct {
	Days []Day
}

// DayNames lists the days in calendar order.
func (d Dataset) DayNames() []string {
	names := make([]string, 0, len(d.Days))
	for _, day := range d.Days {
		names = append(names, day.Name)
	}
	return names
}

// Day returns the named day.
func (d Dataset) Day(name string) (Day, bool) {
	for _, day := range d.Days {
		if day.Name == name {
			return day, true
		}
	}
	return Day{}, false
}

// Dishes returns the dish list of (day, mealType), or nil when either is missing.
func (d Dataset) Dishes(day, mealType string) []Dish {
	dd, ok := d.Day(day)
	if !ok {
		return nil
	}
	meal, ok := dd.Meal(mealType)
	if !ok {
		return nil
	}
	return meal.Dishes
}

// OrderMealTypes sorts meal types by MealOrder, appending unknown ones in the
// order given. Duplicates are collapsed.
func OrderMealTypes(types []string) []string {
	ordered := make([]string, 0, len(types))
	for _, known := range MealOrder {
		if slices.Contains(types, known) {
			ordered = append(ordered, known)
		}
	}
	for _, t := range types {
		if !slices.Contains(MealOrder, t) && !slices.Contains(ordered, t) {
			ordered = append(ordered, t)
		}
	}
	return ordered
}
