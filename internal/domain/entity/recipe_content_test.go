package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortIngredients_StableByOrderIndex(t *testing.T) {
	items := []*Ingredient{
		{Name: "c", OrderIndex: 3},
		{Name: "a1", OrderIndex: 1},
		{Name: "z", OrderIndex: 0},
		{Name: "a2", OrderIndex: 1},
	}

	SortIngredients(items)

	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"z", "a1", "a2", "c"}, names)
}

func TestSortInstructions_GapsAllowed(t *testing.T) {
	items := []*Instruction{
		{StepNumber: 10, InstructionText: "serve"},
		{StepNumber: 2, InstructionText: "boil"},
		{StepNumber: 5, InstructionText: "season"},
	}

	SortInstructions(items)

	assert.Equal(t, 2, items[0].StepNumber)
	assert.Equal(t, 5, items[1].StepNumber)
	assert.Equal(t, 10, items[2].StepNumber)
}

func TestSortNutritionBenefits_Empty(t *testing.T) {
	var items []*NutritionBenefit
	assert.NotPanics(t, func() { SortNutritionBenefits(items) })
}
