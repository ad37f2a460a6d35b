package recipe

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tastebook/entities"
)

var (
	nonTextPattern    = regexp.MustCompile(`[^\w\s,.\-]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// SanitizeText trims, replaces anything outside word characters,
// whitespace, commas, periods and hyphens with a space, then collapses
// whitespace runs. Applied to names and descriptions on ingestion.
func SanitizeText(s string) string {
	s = nonTextPattern.ReplaceAllString(s, " ")
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ParseDelimitedField normalizes a field that may arrive as a real list, a
// JSON-array-looking string, a semicolon list, a comma list or a single
// scalar. Best-effort: a single value containing a literal comma still
// splits.
func ParseDelimitedField(value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := strings.TrimSpace(fmt.Sprint(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return nil
		}
		if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
			var items []interface{}
			if err := json.Unmarshal([]byte(s), &items); err == nil {
				return ParseDelimitedField(items)
			}
		}
		sep := ""
		switch {
		case strings.Contains(s, ";"):
			sep = ";"
		case strings.Contains(s, ","):
			sep = ","
		default:
			return []string{s}
		}
		parts := strings.Split(s, sep)
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return []string{strings.TrimSpace(fmt.Sprint(v))}
	}
}

// rawRecipe accepts the loosely typed persisted form: numeric fields may be
// numbers or strings, list fields any of the delimited variants.
type rawRecipe struct {
	RecipeID                   interface{} `json:"recipe_id"`
	Name                       string      `json:"name"`
	Description                string      `json:"description"`
	AuthorID                   interface{} `json:"author_id"`
	AuthorName                 string      `json:"author_name"`
	RecipeCategory             string      `json:"recipe_category"`
	Keywords                   interface{} `json:"keywords"`
	RecipeIngredientQuantities interface{} `json:"recipe_ingredient_quantities"`
	RecipeIngredientParts      interface{} `json:"recipe_ingredient_parts"`
	RecipeInstructions         interface{} `json:"recipe_instructions"`
	Images                     interface{} `json:"images"`
	AggregatedRating           interface{} `json:"aggregated_rating"`
	ReviewCount                interface{} `json:"review_count"`
	Calories                   float64     `json:"calories"`
	FatContent                 float64     `json:"fat_content"`
	SaturatedFatContent        float64     `json:"saturated_fat_content"`
	CholesterolContent         float64     `json:"cholesterol_content"`
	SodiumContent              float64     `json:"sodium_content"`
	CarbohydrateContent        float64     `json:"carbohydrate_content"`
	FiberContent               float64     `json:"fiber_content"`
	SugarContent               float64     `json:"sugar_content"`
	ProteinContent             float64     `json:"protein_content"`
	RecipeServings             int         `json:"recipe_servings"`
	RecipeYield                string      `json:"recipe_yield"`
	PrepTime                   string      `json:"prep_time"`
	CookTime                   string      `json:"cook_time"`
	TotalTime                  string      `json:"total_time"`
	DatePublished              string      `json:"date_published"`
}

func coerceFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func coerceString(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		// dataset author ids come through as numbers
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func (r rawRecipe) toEntity() *entities.Recipe {
	return &entities.Recipe{
		RecipeID:                   int64(coerceFloat(r.RecipeID)),
		Name:                       SanitizeText(r.Name),
		Description:                SanitizeText(r.Description),
		AuthorID:                   coerceString(r.AuthorID),
		AuthorName:                 r.AuthorName,
		RecipeCategory:             r.RecipeCategory,
		Keywords:                   ParseDelimitedField(r.Keywords),
		RecipeIngredientQuantities: ParseDelimitedField(r.RecipeIngredientQuantities),
		RecipeIngredientParts:      ParseDelimitedField(r.RecipeIngredientParts),
		RecipeInstructions:         ParseDelimitedField(r.RecipeInstructions),
		Images:                     ParseDelimitedField(r.Images),
		AggregatedRating:           coerceFloat(r.AggregatedRating),
		ReviewCount:                int(coerceFloat(r.ReviewCount)),
		Calories:                   r.Calories,
		FatContent:                 r.FatContent,
		SaturatedFatContent:        r.SaturatedFatContent,
		CholesterolContent:         r.CholesterolContent,
		SodiumContent:              r.SodiumContent,
		CarbohydrateContent:        r.CarbohydrateContent,
		FiberContent:               r.FiberContent,
		SugarContent:               r.SugarContent,
		ProteinContent:             r.ProteinContent,
		RecipeServings:             r.RecipeServings,
		RecipeYield:                r.RecipeYield,
		PrepTime:                   r.PrepTime,
		CookTime:                   r.CookTime,
		TotalTime:                  r.TotalTime,
		DatePublished:              r.DatePublished,
	}
}

// DecodeCollection ingests a persisted recipe document, sanitizing text
// fields and normalizing delimited lists. Records that fail to decode as a
// whole fail the document; per-field oddities degrade to zero values.
func DecodeCollection(data []byte) ([]*entities.Recipe, error) {
	var raws []rawRecipe
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	recipes := make([]*entities.Recipe, 0, len(raws))
	for _, raw := range raws {
		recipes = append(recipes, raw.toEntity())
	}
	return recipes, nil
}
