package diet

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleJSON = `{
  "Lunedì": {
    "Pranzo": [{"id": "l-p-1", "name": "Pasta al pomodoro", "quantityFromName": "80 g",
      "ingredients": [{"name": "Pasta", "quantity": "80 g"}, {"name": "Sale", "quantity": 5}],
      "alternatives": [{"id": "l-p-1-a", "name": "Riso in bianco"}]}],
    "Colazione": [{"id": "l-c-1", "name": "Yogurt"}],
    "Spuntino notturno": []
  },
  "Martedì": {
    "Cena": [{"id": "m-c-1", "name": "Orata al forno", "notes": "al cartoccio"}]
  }
}`

func TestDecodeJSON_PreservesOrder(t *testing.T) {
	d, err := DecodeJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("DecodeJSON returned error: %v", err)
	}

	if diff := cmp.Diff([]string{"Lunedì", "Martedì"}, d.DayNames()); diff != "" {
		t.Fatalf("DayNames mismatch (-want +got):\n%s", diff)
	}

	mon, ok := d.Day("Lunedì")
	if !ok {
		t.Fatalf("Day(Lunedì) not found")
	}
	var raw []string
	for _, m := range mon.Meals {
		raw = append(raw, m.Type)
	}
	if diff := cmp.Diff([]string{"Pranzo", "Colazione", "Spuntino notturno"}, raw); diff != "" {
		t.Fatalf("meal order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Colazione", "Pranzo", "Spuntino notturno"}, mon.MealTypes()); diff != "" {
		t.Fatalf("MealTypes mismatch (-want +got):\n%s", diff)
	}

	dishes := d.Dishes("Lunedì", "Pranzo")
	if len(dishes) != 1 || dishes[0].ID != "l-p-1" {
		t.Fatalf("Dishes(Lunedì, Pranzo) = %#v, want one dish l-p-1", dishes)
	}
	if got := dishes[0].Ingredients[1].Quantity; got != "5" {
		t.Fatalf("numeric quantity = %q, want %q", got, "5")
	}
	if alt, ok := dishes[0].Alternative("l-p-1-a"); !ok || alt.Name != "Riso in bianco" {
		t.Fatalf("Alternative(l-p-1-a) = %#v, %v", alt, ok)
	}
	if d.Dishes("Domenica", "Pranzo") != nil {
		t.Fatalf("Dishes for missing day should be nil")
	}
}

func TestIngredient_UnmarshalQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`{"name": "Pasta", "quantity": "80 g"}`, "80 g"},
		{`{"name": "Pasta", "quantity": 150}`, "150"},
		{`{"name": "Olio", "quantity": 12.5}`, "12.5"},
		{`{"name": "Sale", "quantity": null}`, ""},
		{`{"name": "Sale", "quantity": true}`, ""},
		{`{"name": "Sale", "quantity": ["q.b."]}`, ""},
		{`{"name": "Sale"}`, ""},
	}
	for _, c := range cases {
		var ing Ingredient
		if err := json.Unmarshal([]byte(c.in), &ing); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", c.in, err)
		}
		if ing.Quantity != c.want {
			t.Errorf("Unmarshal(%s).Quantity = %q, want %q", c.in, ing.Quantity, c.want)
		}
	}
}

func TestDecodeJSON_RejectsWrongShapes(t *testing.T) {
	cases := map[string]string{
		"array":         `[]`,
		"day_not_obj":   `{"Lunedì": []}`,
		"meal_not_list": `{"Lunedì": {"Pranzo": {"id": "x"}}}`,
		"meal_null":     `{"Lunedì": {"Pranzo": null}}`,
		"dish_string":   `{"Lunedì": {"Pranzo": ["pasta"]}}`,
		"duplicate_day": `{"Lunedì": {}, "Lunedì": {}}`,
		"malformed":     `{"Lunedì": `,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeJSON([]byte(input))
			if err == nil {
				t.Fatalf("DecodeJSON(%s) returned nil error", input)
			}
			if !errors.Is(err, ErrInvalidDataset) {
				t.Fatalf("DecodeJSON error = %v, want ErrInvalidDataset", err)
			}
		})
	}
}

func TestMarshalJSON_RoundTripsOrder(t *testing.T) {
	d, err := DecodeJSON([]byte(sampleJSON))
	if err != nil {
		t.Fatalf("DecodeJSON returned error: %v", err)
	}
	encoded, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	again, err := DecodeJSON(encoded)
	if err != nil {
		t.Fatalf("DecodeJSON(encoded) returned error: %v", err)
	}
	if diff := cmp.Diff(d, again); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeYAML(t *testing.T) {
	input := `
Martedì:
  Cena:
    - id: m-c-1
      name: Orata al forno
      ingredients:
        - name: Orata
          quantity: 200 g
Lunedì:
  Colazione:
    - id: l-c-1
      name: Yogurt
`
	d, err := DecodeYAML([]byte(input))
	if err != nil {
		t.Fatalf("DecodeYAML returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Martedì", "Lunedì"}, d.DayNames()); diff != "" {
		t.Fatalf("DayNames mismatch (-want +got):\n%s", diff)
	}
	dishes := d.Dishes("Martedì", "Cena")
	if len(dishes) != 1 || dishes[0].Ingredients[0].Quantity != "200 g" {
		t.Fatalf("Dishes(Martedì, Cena) = %#v", dishes)
	}

	if _, err := DecodeYAML([]byte("- a\n- b\n")); !errors.Is(err, ErrInvalidDataset) {
		t.Fatalf("DecodeYAML(sequence) error = %v, want ErrInvalidDataset", err)
	}
}

func TestLoad_PicksDecoderByExtension(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "diet.json")
	yamlPath := filepath.Join(dir, "diet.yml")
	if err := os.WriteFile(jsonPath, []byte(sampleJSON), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(yamlPath, []byte("Lunedì:\n  Pranzo: []\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if d, err := Load(jsonPath); err != nil || len(d.Days) != 2 {
		t.Fatalf("Load(json) = %d days, %v; want 2 days", len(d.Days), err)
	}
	if d, err := Load(yamlPath); err != nil || len(d.Days) != 1 {
		t.Fatalf("Load(yaml) = %d days, %v; want 1 day", len(d.Days), err)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatalf("Load(missing) returned nil error")
	}
}

func TestOrderMealTypes(t *testing.T) {
	got := OrderMealTypes([]string{"Merenda", "Cena", "Colazione", "Merenda", "Brunch"})
	want := []string{"Colazione", "Cena", "Merenda", "Brunch"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("OrderMealTypes mismatch (-want +got):\n%s", diff)
	}
}
