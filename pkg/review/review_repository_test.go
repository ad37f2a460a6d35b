package review_test

import (
	"context"
	"errors"
	"testing"

	"tastebook/entities"
	"tastebook/pkg/recipe"
	"tastebook/pkg/review"
	"tastebook/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t *testing.T) (*storage.Database, review.ReviewRepository) {
	t.Helper()
	db := storage.NewDatabase(storage.NewMemoryStore())
	ctx := context.Background()
	require.NoError(t, recipe.NewRecipeRepository(db).Load(ctx))
	repo := review.NewReviewRepository(db)
	require.NoError(t, repo.Load(ctx))
	return db, repo
}

type failingStore struct {
	storage.DocumentStore
}

func (s *failingStore) Save(_ context.Context, _ string, _ []byte) error {
	return errors.New("disk full")
}

func findRecipe(t *testing.T, db *storage.Database, id int64) *entities.Recipe {
	t.Helper()
	db.RLock()
	defer db.RUnlock()
	for _, r := range db.Recipes {
		if r.RecipeID == id {
			return r
		}
	}
	t.Fatalf("recipe %d not in collection", id)
	return nil
}

func TestLoadRecomputesAggregatesFromReviews(t *testing.T) {
	db, _ := newTestDatabase(t)

	// Recipe 38 has two seed reviews, 5 and 4.
	r := findRecipe(t, db, 38)
	assert.Equal(t, 2, r.ReviewCount)
	assert.InDelta(t, 4.5, r.AggregatedRating, 1e-9)

	// Recipe 45 ships with a nonzero rating but no seed reviews: the count
	// resets, the known rating stays.
	r = findRecipe(t, db, 45)
	assert.Equal(t, 0, r.ReviewCount)
	assert.InDelta(t, 3.8, r.AggregatedRating, 1e-9)
}

func TestAddReviewUpdatesAggregate(t *testing.T) {
	db, repo := newTestDatabase(t)
	ctx := context.Background()

	// Recipe 47 starts with no reviews at all.
	require.Zero(t, findRecipe(t, db, 47).ReviewCount)

	require.NoError(t, repo.Add(ctx, &entities.Review{
		RecipeID: 47, AuthorID: "u1", AuthorName: "A", Rating: 4, Review: "Solid weeknight curry.",
	}))
	require.NoError(t, repo.Add(ctx, &entities.Review{
		RecipeID: 47, AuthorID: "u2", AuthorName: "B", Rating: 2, Review: "Too spicy for us.",
	}))

	r := findRecipe(t, db, 47)
	assert.Equal(t, 2, r.ReviewCount)
	assert.InDelta(t, 3.0, r.AggregatedRating, 1e-9)

	reviews := repo.GetForRecipe(ctx, 47)
	require.Len(t, reviews, 2)
	// Newest first.
	assert.Equal(t, "u2", reviews[0].AuthorID)
	assert.Equal(t, "u1", reviews[1].AuthorID)
}

func TestAddReviewStampsIdsAndDates(t *testing.T) {
	_, repo := newTestDatabase(t)
	ctx := context.Background()

	first := &entities.Review{RecipeID: 39, AuthorID: "u1", Rating: 5, Review: "Great."}
	second := &entities.Review{RecipeID: 39, AuthorID: "u2", Rating: 4, Review: "Good."}
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	assert.NotZero(t, first.ReviewID)
	assert.Greater(t, second.ReviewID, first.ReviewID)
	assert.False(t, first.DateSubmitted.IsZero())
	assert.Equal(t, first.DateSubmitted, first.DateModified)
}

func TestAddReviewRollsBackOnSaveFailure(t *testing.T) {
	db := storage.NewDatabase(&failingStore{DocumentStore: storage.NewMemoryStore()})
	ctx := context.Background()
	require.NoError(t, recipe.NewRecipeRepository(db).Load(ctx))
	repo := review.NewReviewRepository(db)
	require.NoError(t, repo.Load(ctx))

	before := findRecipe(t, db, 47)
	err := repo.Add(ctx, &entities.Review{RecipeID: 47, AuthorID: "u", Rating: 5, Review: "Doomed."})
	require.Error(t, err)

	assert.Empty(t, repo.GetForRecipe(ctx, 47))
	after := findRecipe(t, db, 47)
	assert.Equal(t, before.ReviewCount, after.ReviewCount)
	assert.Equal(t, before.AggregatedRating, after.AggregatedRating)
}

func TestGetForRecipeUnknownRecipe(t *testing.T) {
	_, repo := newTestDatabase(t)
	assert.Empty(t, repo.GetForRecipe(context.Background(), 99999))
}
