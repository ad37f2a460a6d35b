package storage

import (
	"context"
	"encoding/json"
	"sync"

	"tastebook/entities"
)

// Database is the single shared in-memory state of the application. It is
// constructed once at startup, hydrated from the document store, and passed
// by reference to every repository. The embedded RWMutex is the transaction
// boundary: compound mutations (review insert + aggregate recompute, folder
// delete + bookmark cascade, bookmark upsert) run under the write lock so
// they appear atomic to readers.
//
// Published *entities.Recipe values are treated as immutable; the aggregate
// recompute swaps in fresh copies instead of mutating in place, so readers
// holding a snapshot of the slice never see a half-updated recipe.
type Database struct {
	sync.RWMutex

	store DocumentStore

	Recipes   []*entities.Recipe
	Reviews   []*entities.Review
	Folders   []*entities.Folder
	Bookmarks []*entities.Bookmark
	Users     []*entities.User
}

func NewDatabase(store DocumentStore) *Database {
	return &Database{store: store}
}

// LoadDocument reads one raw collection from the backing store.
func (db *Database) LoadDocument(ctx context.Context, key string) ([]byte, error) {
	return db.store.Load(ctx, key)
}

// SaveDocument marshals and writes one collection. Callers are expected to
// hold the write lock and to roll their in-memory changes back when an
// error comes back (failure means "state unchanged").
func (db *Database) SaveDocument(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return db.store.Save(ctx, key, data)
}

// RecomputeAggregates rebuilds every recipe's review count and aggregated
// rating from the review collection. A recipe with no reviews keeps its
// previously known rating (seed value or an earlier review-derived one).
// Caller must hold the write lock.
func (db *Database) RecomputeAggregates() {
	sums := make(map[int64]int, len(db.Reviews))
	counts := make(map[int64]int, len(db.Reviews))
	for _, rv := range db.Reviews {
		sums[rv.RecipeID] += rv.Rating
		counts[rv.RecipeID]++
	}
	for i, r := range db.Recipes {
		count := counts[r.RecipeID]
		if count == 0 {
			if r.ReviewCount != 0 {
				updated := *r
				updated.ReviewCount = 0
				db.Recipes[i] = &updated
			}
			continue
		}
		updated := *r
		updated.ReviewCount = count
		updated.AggregatedRating = float64(sums[r.RecipeID]) / float64(count)
		db.Recipes[i] = &updated
	}
}

// RecomputeRecipeAggregates is the single-recipe path used after a review
// insert. It produces the same result for that recipe as a full
// RecomputeAggregates pass. Caller must hold the write lock.
func (db *Database) RecomputeRecipeAggregates(recipeID int64) {
	sum, count := 0, 0
	for _, rv := range db.Reviews {
		if rv.RecipeID == recipeID {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return
	}
	for i, r := range db.Recipes {
		if r.RecipeID == recipeID {
			updated := *r
			updated.ReviewCount = count
			updated.AggregatedRating = float64(sum) / float64(count)
			db.Recipes[i] = &updated
			return
		}
	}
}
