package overrides

// Selections maps day -> meal type -> dish id -> chosen alternative id.
type Selections map[string]map[string]map[string]string

// Swaps maps meal type -> day -> partner day. Every meal type's map is an
// involution: m[a] == b implies m[b] == a, and no day maps to itself.
type Swaps map[string]map[string]string

// Promotions maps dish id -> the alternative id shown as the main dish.
type Promotions map[string]string

// OriginalPrefix prefixes the id of the synthesized alternative that stands
// for a promoted dish's original main.
const OriginalPrefix = "orig:"

// Get returns the alternative chosen for dishID in (day, mealType).
func (s Selections) Get(day, mealType, dishID string) (string, bool) {
	alt, ok := s[day][mealType][dishID]
	return alt, ok
}

// Set records altID for dishID. An empty altID deletes the entry and prunes
// any intermediate map left empty. s must be non-nil when altID is set.
func (s Selections) Set(day, mealType, dishID, altID string) {
	if altID == "" {
		meals := s[day]
		dishes := meals[mealType]
		delete(dishes, dishID)
		if len(dishes) == 0 {
			delete(meals, mealType)
		}
		if len(meals) == 0 {
			delete(s, day)
		}
		return
	}
	meals := s[day]
	if meals == nil {
		meals = make(map[string]map[string]string)
		s[day] = meals
	}
	dishes := meals[mealType]
	if dishes == nil {
		dishes = make(map[string]string)
		meals[mealType] = dishes
	}
	dishes[dishID] = altID
}

// ResetDay removes every selection made for day.
func (s Selections) ResetDay(day string) {
	delete(s, day)
}

// ClearAlternative removes every selection of dishID that points at altID,
// whatever the day or meal type.
func (s Selections) ClearAlternative(dishID, altID string) {
	for day, meals := range s {
		for mealType, dishes := range meals {
			if dishes[dishID] == altID {
				s.Set(day, mealType, dishID, "")
			}
		}
	}
}

// Clone returns a deep copy. Empty nested maps are kept.
func (s Selections) Clone() Selections {
	if s == nil {
		return nil
	}
	out := make(Selections, len(s))
	for day, meals := range s {
		if meals == nil {
			out[day] = nil
			continue
		}
		m := make(map[string]map[string]string, len(meals))
		for mealType, dishes := range meals {
			if dishes == nil {
				m[mealType] = nil
				continue
			}
			d := make(map[string]string, len(dishes))
			for id, alt := range dishes {
				d[id] = alt
			}
			m[mealType] = d
		}
		out[day] = m
	}
	return out
}

// EffectiveDay returns the day whose dishes fill (day, mealType): the swap
// partner when one exists, otherwise day itself.
func (s Swaps) EffectiveDay(day, mealType string) string {
	if partner, ok := s[mealType][day]; ok && partner != "" {
		return partner
	}
	return day
}

// Swap pairs a and b for mealType. Existing partners of either day are
// unpaired first. Swapping a day with itself resets it.
func (s Swaps) Swap(mealType, a, b string) {
	s.Reset(mealType, a)
	if a == b {
		return
	}
	s.Reset(mealType, b)
	pairs := s[mealType]
	if pairs == nil {
		pairs = make(map[string]string)
		s[mealType] = pairs
	}
	pairs[a] = b
	pairs[b] = a
}

// Reset removes the pair day belongs to for mealType, pruning an empty
// meal type.
func (s Swaps) Reset(mealType, day string) {
	pairs, ok := s[mealType]
	if !ok {
		return
	}
	if partner, ok := pairs[day]; ok {
		delete(pairs, day)
		if pairs[partner] == day {
			delete(pairs, partner)
		}
	}
	if len(pairs) == 0 {
		delete(s, mealType)
	}
}

// Clone returns a deep copy.
func (s Swaps) Clone() Swaps {
	if s == nil {
		return nil
	}
	out := make(Swaps, len(s))
	for mealType, pairs := range s {
		m := make(map[string]string, len(pairs))
		for a, b := range pairs {
			m[a] = b
		}
		out[mealType] = m
	}
	return out
}

// Promoted returns the alternative promoted for dishID.
func (p Promotions) Promoted(dishID string) (string, bool) {
	alt, ok := p[dishID]
	if alt == "" {
		return "", false
	}
	return alt, ok
}

// Clone returns a copy.
func (p Promotions) Clone() Promotions {
	if p == nil {
		return nil
	}
	out := make(Promotions, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// State bundles the three override layers.
type State struct {
	Selections Selections
	Swaps      Swaps
	Promotions Promotions
}

// NewState returns a State with empty, writable layers.
func NewState() State {
	return State{
		Selections: make(Selections),
		Swaps:      make(Swaps),
		Promotions: make(Promotions),
	}
}

// Promote makes altID the main dish for dishID and drops selections of that
// dish that now point at the default.
func (s State) Promote(dishID, altID string) {
	if altID == "" {
		s.Demote(dishID)
		return
	}
	s.Promotions[dishID] = altID
	s.Selections.ClearAlternative(dishID, altID)
}

// Demote reverts dishID to its original main dish.
func (s State) Demote(dishID string) {
	delete(s.Promotions, dishID)
}

// Clone returns a deep copy of every layer.
func (s State) Clone() State {
	return State{
		Selections: s.Selections.Clone(),
		Swaps:      s.Swaps.Clone(),
		Promotions: s.Promotions.Clone(),
	}
}
