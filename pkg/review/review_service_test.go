package review_test

import (
	"context"
	"testing"

	"tastebook/domain"
	"tastebook/entities"
	"tastebook/pkg/review"
	"tastebook/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewRejectsUnknownRecipe(t *testing.T) {
	db := storage.NewDatabase(storage.NewMemoryStore())
	db.Recipes = []*entities.Recipe{{RecipeID: 1, Name: "Toast"}}
	svc := review.NewReviewService(review.NewReviewRepository(db), db)

	_, err := svc.AddReview(context.Background(), domain.AddReviewRequest{
		RecipeID: 2, Rating: 5, Review: "Phantom recipe.",
	}, "u1", "User One")
	assert.ErrorIs(t, err, domain.ErrReviewedRecipeNotFound)
}

func TestAddReviewStampsAuthor(t *testing.T) {
	db := storage.NewDatabase(storage.NewMemoryStore())
	db.Recipes = []*entities.Recipe{{RecipeID: 1, Name: "Toast"}}
	svc := review.NewReviewService(review.NewReviewRepository(db), db)

	rv, err := svc.AddReview(context.Background(), domain.AddReviewRequest{
		RecipeID: 1, Rating: 4, Review: "Crunchy.",
	}, "u1", "User One")
	require.NoError(t, err)
	assert.Equal(t, "u1", rv.AuthorID)
	assert.Equal(t, "User One", rv.AuthorName)
	assert.NotZero(t, rv.ReviewID)
}
