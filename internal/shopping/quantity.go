package shopping

import (
	"regexp"
	"strconv"
	"strings"
)

// Quantity is a parsed free-text amount. When Numeric is false, Unit holds
// the original text unchanged.
type Quantity struct {
	Value   float64
	Numeric bool
	Unit    string
}

var quantityPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?|\.\d+)\s*([\p{L}\p{N}_]+)?`)

var gramUnits = map[string]bool{
	"g":      true,
	"gr":     true,
	"grammi": true,
}

// ParseQuantity reads a leading number and optional unit word from s.
// "1,5 porzioni" yields {1.5, true, "porzioni"}; "q.b." yields {0, false, "q.b."}.
func ParseQuantity(s string) Quantity {
	if strings.TrimSpace(s) == "" {
		return Quantity{}
	}
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	m := quantityPattern.FindStringSubmatch(normalized)
	if m == nil {
		return Quantity{Unit: s}
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Quantity{Unit: s}
	}
	return Quantity{Value: value, Numeric: true, Unit: strings.ToLower(m[2])}
}

// IsGrams reports whether q can be summed as grams.
func (q Quantity) IsGrams() bool {
	return q.Numeric && gramUnits[q.Unit]
}
