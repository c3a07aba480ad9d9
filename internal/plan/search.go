package plan

import (
	"strings"

	"github.com/five82/handydiet/internal/diet"
)

// Match kinds.
const (
	KindMain        = "main"
	KindAlternative = "alternative"
)

// Match is a search hit.
type Match struct {
	Day      string `json:"day"`
	MealType string `json:"mealType"`
	DishName string `json:"dishName"`
	Kind     string `json:"kind"`
}

// Search returns every dish and alternative whose raw name contains query,
// ignoring case. Overrides are not consulted. A blank query matches nothing.
func Search(data diet.Dataset, query string) []Match {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return nil
	}
	var out []Match
	for _, day := range data.Days {
		for _, mealType := range day.MealTypes() {
			meal, _ := day.Meal(mealType)
			for _, dish := range meal.Dishes {
				if strings.Contains(strings.ToLower(dish.Name), needle) {
					out = append(out, Match{Day: day.Name, MealType: mealType, DishName: dish.Name, Kind: KindMain})
				}
				for _, alt := range dish.Alternatives {
					if strings.Contains(strings.ToLower(alt.Name), needle) {
						out = append(out, Match{Day: day.Name, MealType: mealType, DishName: alt.Name, Kind: KindAlternative})
					}
				}
			}
		}
	}
	return out
}
