package product

import "strings"

// VariationGroup is one variation dimension of a product-creation request:
// an attribute plus the values (with stock) chosen for it.
type VariationGroup struct {
	AttributeID string           `json:"attributeId"`
	Values      []VariationValue `json:"values"`
}

// VariationValue is one chosen value of a variation group.
type VariationValue struct {
	Value string `json:"value"`
	Stock int    `json:"stock"`
}

// chosenValue is one attribute/value pair inside a combination, prior to
// resolution against the configured attribute options.
type chosenValue struct {
	attributeID string
	value       string
}

// combination is one tuple of the cartesian product across all variation
// groups. Each combination becomes one concrete product row.
type combination struct {
	values []chosenValue
	stock  int
}

// expandCombinations enumerates the full cartesian product of the groups'
// values, group 0 varying slowest. A combination's stock is the stock of the
// value chosen in the last (innermost) group — not an aggregate across
// groups. That matches the behavior tenants already rely on.
func expandCombinations(groups []VariationGroup) []combination {
	if len(groups) == 0 {
		return nil
	}
	var out []combination
	current := make([]chosenValue, len(groups))
	var walk func(depth, stock int)
	walk = func(depth, stock int) {
		if depth == len(groups) {
			values := make([]chosenValue, len(groups))
			copy(values, current)
			out = append(out, combination{values: values, stock: stock})
			return
		}
		for _, v := range groups[depth].Values {
			current[depth] = chosenValue{attributeID: groups[depth].AttributeID, value: v.Value}
			walk(depth+1, v.Stock)
		}
	}
	walk(0, 0)
	return out
}

// codigo derives the combination's product code: the base code with every
// chosen value appended, e.g. PROD-1 + [M, Red] -> PROD-1-M-Red.
func (c combination) codigo(base string) string {
	parts := make([]string, 0, len(c.values)+1)
	parts = append(parts, base)
	for _, v := range c.values {
		parts = append(parts, v.value)
	}
	return strings.Join(parts, "-")
}
