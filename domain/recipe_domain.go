package domain

import (
	"errors"

	"tastebook/entities"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	CreateRecipeRequest struct {
		Name                 string   `json:"name" validate:"required"`
		Description          string   `json:"description"`
		RecipeCategory       string   `json:"recipe_category"`
		Keywords             string   `json:"keywords"` // comma-separated free text
		IngredientQuantities []string `json:"ingredient_quantities"`
		IngredientParts      []string `json:"ingredient_parts"`
		Instructions         string   `json:"instructions"` // one step per line
		Images               []string `json:"images"`
		RecipeServings       int      `json:"recipe_servings" validate:"omitempty,min=1"`
		RecipeYield          string   `json:"recipe_yield"`
		PrepTimeMinutes      int      `json:"prep_time_minutes" validate:"min=0"`
		CookTimeMinutes      int      `json:"cook_time_minutes" validate:"min=0"`
	}

	RecipeDetail struct {
		Recipe   entities.Recipe    `json:"recipe"`
		Reviews  []*entities.Review `json:"reviews"`
		Bookmark *entities.Bookmark `json:"bookmark,omitempty"`
	}

	RecipeListResponse struct {
		Recipes []entities.Recipe `json:"recipes"`
		Total   int               `json:"total"`
	}
)
