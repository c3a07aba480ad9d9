package plan

import (
	"github.com/five82/handydiet/internal/diet"
	"github.com/five82/handydiet/internal/overrides"
)

// Promoted is a dish after promotion resolution.
type Promoted struct {
	Main         diet.Dish
	Alternatives []diet.Dish
	// PromotedID is the alternative id shown as Main, or "" when the raw
	// dish is in effect.
	PromotedID string
}

// OriginalID returns the id of the synthesized alternative standing for a
// promoted dish's original main.
func OriginalID(dishID string) string {
	return overrides.OriginalPrefix + dishID
}

// ResolvePromotion applies promotions to dish. A promotion naming an
// alternative the dish no longer has is ignored.
func ResolvePromotion(dish diet.Dish, promotions overrides.Promotions) Promoted {
	raw := Promoted{Main: dish, Alternatives: dish.Alternatives}
	altID, ok := promotions.Promoted(dish.ID)
	if !ok {
		return raw
	}
	promoted, ok := dish.Alternative(altID)
	if !ok {
		return raw
	}

	original := dish
	original.ID = OriginalID(dish.ID)
	original.Alternatives = nil

	alts := make([]diet.Dish, 0, len(dish.Alternatives))
	alts = append(alts, original)
	for _, alt := range dish.Alternatives {
		if alt.ID != altID {
			alts = append(alts, alt)
		}
	}
	return Promoted{Main: promoted, Alternatives: alts, PromotedID: altID}
}

// Effective is the dish shown in a meal slot.
type Effective struct {
	// Raw is the dataset entry.
	Raw diet.Dish
	// Dish is what the user sees after promotion and selection.
	Dish diet.Dish
	// Alternatives are the choices offered after promotion.
	Alternatives []diet.Dish
	PromotedID   string
	// SelectedID is the applied selection, "" when Dish is the main.
	SelectedID  string
	Substituted bool
	Promoted    bool
}

// ResolveDish resolves dish for the (day, mealType) slot. Selections are
// read with the requesting day as key. A selection equal to the promoted
// alternative, or naming a missing alternative, falls back to the main.
func ResolveDish(day, mealType string, dish diet.Dish, st overrides.State) Effective {
	p := ResolvePromotion(dish, st.Promotions)
	eff := Effective{
		Raw:          dish,
		Dish:         p.Main,
		Alternatives: p.Alternatives,
		PromotedID:   p.PromotedID,
		Promoted:     p.PromotedID != "",
	}

	selected, ok := st.Selections.Get(day, mealType, dish.ID)
	if !ok || selected == "" || selected == p.PromotedID {
		return eff
	}
	for _, alt := range p.Alternatives {
		if alt.ID == selected {
			eff.Dish = alt
			eff.SelectedID = selected
			eff.Substituted = true
			break
		}
	}
	return eff
}
