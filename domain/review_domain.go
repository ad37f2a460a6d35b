package domain

import "errors"

var (
	MessageSuccessAddReview  = "review submitted successfully"
	MessageSuccessGetReviews = "success get reviews"

	MessageFailedAddReview  = "failed to submit review"
	MessageFailedGetReviews = "failed to get reviews"

	ErrReviewedRecipeNotFound = errors.New("reviewed recipe not found")
)

type (
	AddReviewRequest struct {
		RecipeID int64  `json:"recipe_id" validate:"required"`
		Rating   int    `json:"rating" validate:"required,min=1,max=5"`
		Review   string `json:"review" validate:"required"`
	}
)
