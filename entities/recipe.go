package entities

type Recipe struct {
	RecipeID                   int64    `json:"recipe_id"`
	Name                       string   `json:"name"`
	Description                string   `json:"description"`
	AuthorID                   string   `json:"author_id"`
	AuthorName                 string   `json:"author_name"`
	RecipeCategory             string   `json:"recipe_category"`
	Keywords                   []string `json:"keywords"`
	RecipeIngredientQuantities []string `json:"recipe_ingredient_quantities"`
	RecipeIngredientParts      []string `json:"recipe_ingredient_parts"`
	RecipeInstructions         []string `json:"recipe_instructions"`
	Images                     []string `json:"images"`
	AggregatedRating           float64  `json:"aggregated_rating"`
	ReviewCount                int      `json:"review_count"`
	Calories                   float64  `json:"calories"`
	FatContent                 float64  `json:"fat_content"`
	SaturatedFatContent        float64  `json:"saturated_fat_content"`
	CholesterolContent         float64  `json:"cholesterol_content"`
	SodiumContent              float64  `json:"sodium_content"`
	CarbohydrateContent        float64  `json:"carbohydrate_content"`
	FiberContent               float64  `json:"fiber_content"`
	SugarContent               float64  `json:"sugar_content"`
	ProteinContent             float64  `json:"protein_content"`
	RecipeServings             int      `json:"recipe_servings"`
	RecipeYield                string   `json:"recipe_yield"`
	PrepTime                   string   `json:"prep_time"` // ISO-8601 duration, e.g. "PT1H30M"
	CookTime                   string   `json:"cook_time"`
	TotalTime                  string   `json:"total_time"`
	DatePublished              string   `json:"date_published"`
}
