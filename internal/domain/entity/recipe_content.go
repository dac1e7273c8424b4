package entity

import (
	"cmp"
	"slices"

	"github.com/google/uuid"
)

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	ID         uuid.UUID `json:"id"`
	RecipeID   uuid.UUID `json:"recipe_id"`
	Name       string    `json:"name"`
	Quantity   *string   `json:"quantity"`
	OrderIndex int       `json:"order_index"`
}

// Instruction is one numbered preparation step.
type Instruction struct {
	ID              uuid.UUID `json:"id"`
	RecipeID        uuid.UUID `json:"recipe_id"`
	StepNumber      int       `json:"step_number"`
	InstructionText string    `json:"instruction_text"`
}

// NutritionBenefit describes a health benefit, grouped by a free-text ingredient label.
type NutritionBenefit struct {
	ID             uuid.UUID `json:"id"`
	RecipeID       uuid.UUID `json:"recipe_id"`
	IngredientName string    `json:"ingredient_name"`
	BenefitText    string    `json:"benefit_text"`
	OrderIndex     int       `json:"order_index"`
}

// IngredientInput is the create or patch payload of an ingredient.
type IngredientInput struct {
	Name       *string `json:"name"`
	Quantity   *string `json:"quantity"`
	OrderIndex *int    `json:"order_index"`
}

// InstructionInput is the create or patch payload of an instruction.
type InstructionInput struct {
	StepNumber      *int    `json:"step_number"`
	InstructionText *string `json:"instruction_text"`
}

// NutritionBenefitInput is the create or patch payload of a nutrition benefit.
type NutritionBenefitInput struct {
	IngredientName *string `json:"ingredient_name"`
	BenefitText    *string `json:"benefit_text"`
	OrderIndex     *int    `json:"order_index"`
}

// SortIngredients orders ingredients by OrderIndex, keeping ties in their original order.
func SortIngredients(items []*Ingredient) {
	slices.SortStableFunc(items, func(a, b *Ingredient) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
}

// SortInstructions orders instructions by StepNumber, keeping ties in their original order.
func SortInstructions(items []*Instruction) {
	slices.SortStableFunc(items, func(a, b *Instruction) int {
		return cmp.Compare(a.StepNumber, b.StepNumber)
	})
}

// SortNutritionBenefits orders benefits by OrderIndex, keeping ties in their original order.
func SortNutritionBenefits(items []*NutritionBenefit) {
	slices.SortStableFunc(items, func(a, b *NutritionBenefit) int {
		return cmp.Compare(a.OrderIndex, b.OrderIndex)
	})
}
