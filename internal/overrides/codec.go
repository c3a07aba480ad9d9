package overrides

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidImport reports an import payload that is not a selections object.
var ErrInvalidImport = errors.New("invalid selections file")

// decodeObject unmarshals data into a map of raw values. It fails unless the
// top-level value is a JSON object.
func decodeObject(data []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("expected a JSON object")
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func decodeString(raw json.RawMessage) (string, bool) {
	var s string
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// decodeSelectionsLenient keeps every well-formed entry and drops the rest.
func decodeSelectionsLenient(data []byte) (Selections, int, error) {
	top, err := decodeObject(data)
	if err != nil {
		return make(Selections), 0, err
	}
	out := make(Selections)
	dropped := 0
	for day, rawMeals := range top {
		meals, err := decodeObject(rawMeals)
		if err != nil {
			dropped++
			continue
		}
		for mealType, rawDishes := range meals {
			dishes, err := decodeObject(rawDishes)
			if err != nil {
				dropped++
				continue
			}
			for dishID, rawAlt := range dishes {
				alt, ok := decodeString(rawAlt)
				if !ok || alt == "" {
					dropped++
					continue
				}
				out.Set(day, mealType, dishID, alt)
			}
		}
	}
	return out, dropped, nil
}

// decodeSwapsLenient keeps only consistent pairs.
func decodeSwapsLenient(data []byte) (Swaps, int, error) {
	top, err := decodeObject(data)
	if err != nil {
		return make(Swaps), 0, err
	}
	out := make(Swaps)
	dropped := 0
	for mealType, rawPairs := range top {
		fields, err := decodeObject(rawPairs)
		if err != nil {
			dropped++
			continue
		}
		pairs := make(map[string]string, len(fields))
		for day, rawPartner := range fields {
			partner, ok := decodeString(rawPartner)
			if !ok || partner == "" || partner == day {
				dropped++
				continue
			}
			pairs[day] = partner
		}
		for a, b := range pairs {
			if pairs[b] != a {
				dropped++
				continue
			}
			if _, done := out[mealType][a]; done {
				continue
			}
			out.Swap(mealType, a, b)
		}
	}
	return out, dropped, nil
}

func decodePromotionsLenient(data []byte) (Promotions, int, error) {
	top, err := decodeObject(data)
	if err != nil {
		return make(Promotions), 0, err
	}
	out := make(Promotions, len(top))
	dropped := 0
	for dishID, rawAlt := range top {
		alt, ok := decodeString(rawAlt)
		if !ok || alt == "" {
			dropped++
			continue
		}
		out[dishID] = alt
	}
	return out, dropped, nil
}

// DecodeSelections strictly parses an import payload. The top-level value
// must be an object of day objects of meal objects of string ids.
func DecodeSelections(data []byte) (Selections, error) {
	top, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	out := make(Selections, len(top))
	for day, rawMeals := range top {
		meals, err := decodeObject(rawMeals)
		if err != nil {
			return nil, fmt.Errorf("%w: day %q: %v", ErrInvalidImport, day, err)
		}
		dayMap := make(map[string]map[string]string, len(meals))
		for mealType, rawDishes := range meals {
			dishes, err := decodeObject(rawDishes)
			if err != nil {
				return nil, fmt.Errorf("%w: %s/%s: %v", ErrInvalidImport, day, mealType, err)
			}
			mealMap := make(map[string]string, len(dishes))
			for dishID, rawAlt := range dishes {
				alt, ok := decodeString(rawAlt)
				if !ok {
					return nil, fmt.Errorf("%w: %s/%s/%s: expected a string", ErrInvalidImport, day, mealType, dishID)
				}
				mealMap[dishID] = alt
			}
			dayMap[mealType] = mealMap
		}
		out[day] = dayMap
	}
	return out, nil
}

// EncodeSelections renders sel as two-space indented JSON. A nil value
// encodes as an empty object.
func EncodeSelections(sel Selections) ([]byte, error) {
	if sel == nil {
		sel = Selections{}
	}
	data, err := json.MarshalIndent(sel, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode selections: %w", err)
	}
	return data, nil
}
