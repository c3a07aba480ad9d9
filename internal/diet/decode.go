package diet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidDataset marks data that does not have the day → meal → [dish] shape.
var ErrInvalidDataset = errors.New("invalid diet dataset")

// UnmarshalJSON formats a numeric quantity in its shortest decimal form and
// treats any other non-string quantity as empty.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     string          `json:"name"`
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Name = raw.Name
	i.Quantity = ""
	if len(raw.Quantity) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw.Quantity, &s); err == nil {
		i.Quantity = s
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw.Quantity, &f); err == nil {
		i.Quantity = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return nil
}

// UnmarshalJSON decodes the dataset preserving day and meal-type key order.
func (d *Dataset) UnmarshalJSON(data []byte) error {
	var days []Day
	err := decodeObject(data, func(dayName string, dayRaw json.RawMessage) error {
		for _, existing := range days {
			if existing.Name == dayName {
				return fmt.Errorf("%w: duplicate day %q", ErrInvalidDataset, dayName)
			}
		}
		day := Day{Name: dayName}
		err := decodeObject(dayRaw, func(mealType string, mealRaw json.RawMessage) error {
			if _, dup := day.Meal(mealType); dup {
				return fmt.Errorf("%w: day %q: duplicate meal %q", ErrInvalidDataset, dayName, mealType)
			}
			var dishes []Dish
			if err := json.Unmarshal(mealRaw, &dishes); err != nil {
				return fmt.Errorf("%w: day %q meal %q: %v", ErrInvalidDataset, dayName, mealType, err)
			}
			if dishes == nil {
				return fmt.Errorf("%w: day %q meal %q: expected a list of dishes", ErrInvalidDataset, dayName, mealType)
			}
			day.Meals = append(day.Meals, Meal{Type: mealType, Dishes: dishes})
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrInvalidDataset) {
				return err
			}
			return fmt.Errorf("%w: day %q: %v", ErrInvalidDataset, dayName, err)
		}
		days = append(days, day)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidDataset) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	d.Days = days
	return nil
}

// MarshalJSON encodes the dataset as nested objects in dataset order.
func (d Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, day := range d.Days {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, day.Name); err != nil {
			return nil, err
		}
		buf.WriteByte('{')
		for j, meal := range day.Meals {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeKey(&buf, meal.Type); err != nil {
				return nil, err
			}
			dishes := meal.Dishes
			if dishes == nil {
				dishes = []Dish{}
			}
			encoded, err := json.Marshal(dishes)
			if err != nil {
				return nil, err
			}
			buf.Write(encoded)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeKey(buf *bytes.Buffer, key string) error {
	encoded, err := json.Marshal(key)
	if err != nil {
		return err
	}
	buf.Write(encoded)
	buf.WriteByte(':')
	return nil
}

// decodeObject walks a JSON object in key order.
func decodeObject(data []byte, fn func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected an object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}
		if err := fn(key, value); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after top-level object")
	}
	return nil
}

// DecodeJSON parses a JSON dataset.
func DecodeJSON(data []byte) (Dataset, error) {
	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		if errors.Is(err, ErrInvalidDataset) {
			return Dataset{}, err
		}
		return Dataset{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	return d, nil
}

// DecodeYAML parses a YAML-authored dataset using mapping order as calendar order.
func DecodeYAML(data []byte) (Dataset, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Dataset{}, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return Dataset{}, fmt.Errorf("%w: empty document", ErrInvalidDataset)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Dataset{}, fmt.Errorf("%w: expected a mapping of days", ErrInvalidDataset)
	}

	var out Dataset
	for i := 0; i+1 < len(root.Content); i += 2 {
		dayName, dayNode := root.Content[i].Value, root.Content[i+1]
		if _, dup := out.Day(dayName); dup {
			return Dataset{}, fmt.Errorf("%w: duplicate day %q", ErrInvalidDataset, dayName)
		}
		if dayNode.Kind != yaml.MappingNode {
			return Dataset{}, fmt.Errorf("%w: day %q: expected a mapping of meals", ErrInvalidDataset, dayName)
		}
		day := Day{Name: dayName}
		for j := 0; j+1 < len(dayNode.Content); j += 2 {
			mealType, mealNode := dayNode.Content[j].Value, dayNode.Content[j+1]
			if _, dup := day.Meal(mealType); dup {
				return Dataset{}, fmt.Errorf("%w: day %q: duplicate meal %q", ErrInvalidDataset, dayName, mealType)
			}
			if mealNode.Kind != yaml.SequenceNode {
				return Dataset{}, fmt.Errorf("%w: day %q meal %q: expected a list of dishes", ErrInvalidDataset, dayName, mealType)
			}
			dishes := make([]Dish, 0, len(mealNode.Content))
			if err := mealNode.Decode(&dishes); err != nil {
				return Dataset{}, fmt.Errorf("%w: day %q meal %q: %v", ErrInvalidDataset, dayName, mealType, err)
			}
			day.Meals = append(day.Meals, Meal{Type: mealType, Dishes: dishes})
		}
		out.Days = append(out.Days, day)
	}
	return out, nil
}

// Load reads a dataset file, choosing the decoder by extension (.yaml/.yml or JSON).
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return DecodeJSON(data)
	}
}
