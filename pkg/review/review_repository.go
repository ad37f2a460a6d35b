package review

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"tastebook/entities"
	"tastebook/pkg/storage"
)

type (
	ReviewRepository interface {
		Load(ctx context.Context) error
		Add(ctx context.Context, review *entities.Review) error
		GetForRecipe(ctx context.Context, recipeID int64) []*entities.Review
	}

	reviewRepository struct {
		db *storage.Database

		// lastID guards the time-based review ids against collisions;
		// mutated only under the database write lock.
		lastID int64
	}
)

func NewReviewRepository(db *storage.Database) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Load(ctx context.Context) error {
	data, err := r.db.LoadDocument(ctx, storage.DocumentReviews)
	if err != nil {
		if !errors.Is(err, storage.ErrDocumentNotFound) {
			return err
		}
		data = []byte(storage.SeedReviewsJSON)
	}

	var reviews []*entities.Review
	if err := json.Unmarshal(data, &reviews); err != nil {
		log.Printf("reviews document malformed, falling back to seed data: %v", err)
		if err := json.Unmarshal([]byte(storage.SeedReviewsJSON), &reviews); err != nil {
			return err
		}
	}

	r.db.Lock()
	r.db.Reviews = reviews
	for _, rv := range reviews {
		if rv.ReviewID > r.lastID {
			r.lastID = rv.ReviewID
		}
	}
	// Derived rating fields follow the review collection wherever it
	// came from.
	r.db.RecomputeAggregates()
	r.db.Unlock()
	return nil
}

// Add stamps and prepends the review, recomputes the recipe's aggregate
// rating and persists both collections as one atomic step. On a failed
// write the in-memory state is restored unchanged.
func (r *reviewRepository) Add(ctx context.Context, review *entities.Review) error {
	r.db.Lock()
	defer r.db.Unlock()

	now := time.Now()
	review.ReviewID = r.nextID(now)
	review.DateSubmitted = now
	review.DateModified = now

	oldReviews := r.db.Reviews
	oldRecipes := r.db.Recipes

	updated := make([]*entities.Review, 0, len(oldReviews)+1)
	updated = append(updated, review)
	updated = append(updated, oldReviews...)
	r.db.Reviews = updated

	// Recompute swaps the affected recipe for a fresh copy, so keeping the
	// old slice is enough to roll back.
	recipesCopy := make([]*entities.Recipe, len(oldRecipes))
	copy(recipesCopy, oldRecipes)
	r.db.Recipes = recipesCopy
	r.db.RecomputeRecipeAggregates(review.RecipeID)

	if err := r.db.SaveDocument(ctx, storage.DocumentReviews, r.db.Reviews); err != nil {
		r.db.Reviews = oldReviews
		r.db.Recipes = oldRecipes
		return err
	}
	if err := r.db.SaveDocument(ctx, storage.DocumentRecipes, r.db.Recipes); err != nil {
		r.db.Reviews = oldReviews
		r.db.Recipes = oldRecipes
		return err
	}
	return nil
}

// nextID issues a nanosecond timestamp token, bumped past the last issued
// id so rapid submissions cannot collide.
func (r *reviewRepository) nextID(now time.Time) int64 {
	id := now.UnixNano()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id
	return id
}

func (r *reviewRepository) GetForRecipe(_ context.Context, recipeID int64) []*entities.Review {
	r.db.RLock()
	defer r.db.RUnlock()
	var out []*entities.Review
	for _, rv := range r.db.Reviews {
		if rv.RecipeID == recipeID {
			out = append(out, rv)
		}
	}
	return out
}
