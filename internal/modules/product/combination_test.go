package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandCombinationsEmpty(t *testing.T) {
	assert.Nil(t, expandCombinations(nil))
	assert.Nil(t, expandCombinations([]VariationGroup{}))
}

func TestExpandCombinationsSingleGroupSingleValue(t *testing.T) {
	combos := expandCombinations([]VariationGroup{
		{AttributeID: "attr-1", Values: []VariationValue{{Value: "M", Stock: 5}}},
	})
	assert.Len(t, combos, 1)
	assert.Equal(t, "M", combos[0].values[0].value)
	assert.Equal(t, "attr-1", combos[0].values[0].attributeID)
	assert.Equal(t, 5, combos[0].stock)
	assert.Equal(t, "PROD-1-M", combos[0].codigo("PROD-1"))
}

func TestExpandCombinationsCartesianProduct(t *testing.T) {
	combos := expandCombinations([]VariationGroup{
		{AttributeID: "size", Values: []VariationValue{
			{Value: "M", Stock: 1}, {Value: "G", Stock: 2},
		}},
		{AttributeID: "color", Values: []VariationValue{
			{Value: "Red", Stock: 10}, {Value: "Blue", Stock: 20}, {Value: "Black", Stock: 30},
		}},
	})
	assert.Len(t, combos, 6)

	// Group 0 varies slowest.
	codigos := make([]string, len(combos))
	for i, c := range combos {
		codigos[i] = c.codigo("P")
	}
	assert.Equal(t, []string{
		"P-M-Red", "P-M-Blue", "P-M-Black",
		"P-G-Red", "P-G-Blue", "P-G-Black",
	}, codigos)
}

func TestExpandCombinationsStockFromLastGroup(t *testing.T) {
	combos := expandCombinations([]VariationGroup{
		{AttributeID: "size", Values: []VariationValue{
			{Value: "M", Stock: 99}, {Value: "G", Stock: 77},
		}},
		{AttributeID: "color", Values: []VariationValue{
			{Value: "Red", Stock: 10}, {Value: "Blue", Stock: 20},
		}},
	})
	// Stock always comes from the innermost group's chosen value; the first
	// group's stock values never surface.
	stocks := make([]int, len(combos))
	for i, c := range combos {
		stocks[i] = c.stock
	}
	assert.Equal(t, []int{10, 20, 10, 20}, stocks)
}

func TestExpandCombinationsThreeGroups(t *testing.T) {
	combos := expandCombinations([]VariationGroup{
		{AttributeID: "a", Values: []VariationValue{{Value: "1"}, {Value: "2"}}},
		{AttributeID: "b", Values: []VariationValue{{Value: "x"}, {Value: "y"}}},
		{AttributeID: "c", Values: []VariationValue{{Value: "k"}}},
	})
	assert.Len(t, combos, 4)
	assert.Equal(t, "B-1-x-k", combos[0].codigo("B"))
	assert.Equal(t, "B-2-y-k", combos[3].codigo("B"))
}
