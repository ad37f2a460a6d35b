package review

import (
	"context"

	"tastebook/domain"
	"tastebook/entities"
	"tastebook/pkg/storage"
)

type (
	ReviewService interface {
		AddReview(ctx context.Context, req domain.AddReviewRequest, userID, userName string) (*entities.Review, error)
		GetForRecipe(ctx context.Context, recipeID int64) []*entities.Review
	}

	reviewService struct {
		reviewRepository ReviewRepository
		db               *storage.Database
	}
)

func NewReviewService(reviewRepository ReviewRepository, db *storage.Database) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		db:               db,
	}
}

func (s *reviewService) AddReview(ctx context.Context, req domain.AddReviewRequest, userID, userName string) (*entities.Review, error) {
	if !s.recipeExists(req.RecipeID) {
		return nil, domain.ErrReviewedRecipeNotFound
	}

	review := &entities.Review{
		RecipeID:   req.RecipeID,
		AuthorID:   userID,
		AuthorName: userName,
		Rating:     req.Rating,
		Review:     req.Review,
	}
	if err := s.reviewRepository.Add(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) recipeExists(recipeID int64) bool {
	s.db.RLock()
	defer s.db.RUnlock()
	for _, rec := range s.db.Recipes {
		if rec.RecipeID == recipeID {
			return true
		}
	}
	return false
}

func (s *reviewService) GetForRecipe(ctx context.Context, recipeID int64) []*entities.Review {
	return s.reviewRepository.GetForRecipe(ctx, recipeID)
}
