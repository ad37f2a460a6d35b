package recipe

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sort"
	"strings"
	"time"

	"tastebook/domain"
	"tastebook/entities"
	"tastebook/pkg/storage"
)

type (
	RecipeRepository interface {
		Load(ctx context.Context) error
		All(ctx context.Context) []*entities.Recipe
		GetByID(ctx context.Context, id int64) (*entities.Recipe, error)
		GetRandom(ctx context.Context, count int) []*entities.Recipe
		GetTopRated(ctx context.Context, count int) []*entities.Recipe
		GetRecent(ctx context.Context, count int) []*entities.Recipe
		GetTrending(ctx context.Context, count int) []*entities.Recipe
		GetByCategory(ctx context.Context, category string, count int) []*entities.Recipe
		Create(ctx context.Context, req domain.CreateRecipeRequest, authorID, authorName string) (*entities.Recipe, error)
	}

	recipeRepository struct {
		db *storage.Database
	}
)

func NewRecipeRepository(db *storage.Database) RecipeRepository {
	return &recipeRepository{db: db}
}

// Load hydrates the recipe collection from the document store, falling back
// to the bundled seed dataset when the document is missing or malformed.
func (r *recipeRepository) Load(ctx context.Context) error {
	data, err := r.db.LoadDocument(ctx, storage.DocumentRecipes)
	if err != nil {
		if !errors.Is(err, storage.ErrDocumentNotFound) {
			return err
		}
		data = []byte(storage.SeedRecipesJSON)
	}

	recipes, err := DecodeCollection(data)
	if err != nil {
		log.Printf("recipes document malformed, falling back to seed data: %v", err)
		recipes, err = DecodeCollection([]byte(storage.SeedRecipesJSON))
		if err != nil {
			return err
		}
	}

	r.db.Lock()
	r.db.Recipes = recipes
	r.db.Unlock()
	return nil
}

// All returns a snapshot of the collection in its current order. Entries
// are immutable once published, so the snapshot is safe to read without
// holding the lock.
func (r *recipeRepository) All(_ context.Context) []*entities.Recipe {
	r.db.RLock()
	defer r.db.RUnlock()
	out := make([]*entities.Recipe, len(r.db.Recipes))
	copy(out, r.db.Recipes)
	return out
}

func (r *recipeRepository) GetByID(_ context.Context, id int64) (*entities.Recipe, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for _, rec := range r.db.Recipes {
		if rec.RecipeID == id {
			return rec, nil
		}
	}
	return nil, domain.ErrRecipeNotFound
}

func (r *recipeRepository) GetRandom(ctx context.Context, count int) []*entities.Recipe {
	all := r.All(ctx)
	rand.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	if count > 0 && count < len(all) {
		all = all[:count]
	}
	return all
}

func (r *recipeRepository) GetTopRated(ctx context.Context, count int) []*entities.Recipe {
	all := r.All(ctx)
	rated := make([]*entities.Recipe, 0, len(all))
	for _, rec := range all {
		if rec.AggregatedRating > 0 {
			rated = append(rated, rec)
		}
	}
	sort.SliceStable(rated, func(i, j int) bool {
		return rated[i].AggregatedRating > rated[j].AggregatedRating
	})
	return limit(rated, count)
}

func (r *recipeRepository) GetRecent(ctx context.Context, count int) []*entities.Recipe {
	return limit(r.All(ctx), count)
}

func (r *recipeRepository) GetTrending(ctx context.Context, count int) []*entities.Recipe {
	all := r.All(ctx)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ReviewCount > all[j].ReviewCount
	})
	return limit(all, count)
}

func (r *recipeRepository) GetByCategory(ctx context.Context, category string, count int) []*entities.Recipe {
	needle := strings.ToLower(strings.TrimSpace(category))
	if needle == "" {
		return nil
	}
	var matches []*entities.Recipe
	for _, rec := range r.All(ctx) {
		if matchesCategory(rec, needle) {
			matches = append(matches, rec)
		}
	}
	return limit(matches, count)
}

func matchesCategory(rec *entities.Recipe, needle string) bool {
	if strings.Contains(strings.ToLower(rec.RecipeCategory), needle) {
		return true
	}
	for _, kw := range rec.Keywords {
		if strings.Contains(strings.ToLower(kw), needle) {
			return true
		}
	}
	return false
}

func (r *recipeRepository) Create(ctx context.Context, req domain.CreateRecipeRequest, authorID, authorName string) (*entities.Recipe, error) {
	r.db.Lock()
	defer r.db.Unlock()

	var maxID int64
	for _, rec := range r.db.Recipes {
		if rec.RecipeID > maxID {
			maxID = rec.RecipeID
		}
	}

	rec := &entities.Recipe{
		RecipeID:                   maxID + 1,
		Name:                       SanitizeText(req.Name),
		Description:                SanitizeText(req.Description),
		AuthorID:                   authorID,
		AuthorName:                 authorName,
		RecipeCategory:             req.RecipeCategory,
		Keywords:                   splitAndTrim(req.Keywords, ","),
		RecipeIngredientQuantities: req.IngredientQuantities,
		RecipeIngredientParts:      req.IngredientParts,
		RecipeInstructions:         splitAndTrim(req.Instructions, "\n"),
		Images:                     req.Images,
		RecipeServings:             req.RecipeServings,
		RecipeYield:                req.RecipeYield,
		PrepTime:                   fmt.Sprintf("PT%dM", req.PrepTimeMinutes),
		CookTime:                   fmt.Sprintf("PT%dM", req.CookTimeMinutes),
		TotalTime:                  fmt.Sprintf("PT%dM", req.PrepTimeMinutes+req.CookTimeMinutes),
		DatePublished:              time.Now().UTC().Format(time.RFC3339),
	}

	// New recipes are prepended: the collection's head is "most recent".
	old := r.db.Recipes
	updated := make([]*entities.Recipe, 0, len(old)+1)
	updated = append(updated, rec)
	updated = append(updated, old...)
	r.db.Recipes = updated

	if err := r.db.SaveDocument(ctx, storage.DocumentRecipes, r.db.Recipes); err != nil {
		r.db.Recipes = old
		return nil, err
	}
	return rec, nil
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func limit(recipes []*entities.Recipe, count int) []*entities.Recipe {
	if count > 0 && count < len(recipes) {
		return recipes[:count]
	}
	return recipes
}
