package recipe

import (
	"context"
	"errors"

	"tastebook/domain"
	"tastebook/entities"
	"tastebook/pkg/bookmark"
	"tastebook/pkg/review"
)

type (
	RecipeService interface {
		GetRecipeDetail(ctx context.Context, recipeID int64, userID string) (domain.RecipeDetail, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID, userName string) (*entities.Recipe, error)
		GetRandom(ctx context.Context, count int) []*entities.Recipe
		GetTopRated(ctx context.Context, count int) []*entities.Recipe
		GetRecent(ctx context.Context, count int) []*entities.Recipe
		GetTrending(ctx context.Context, count int) []*entities.Recipe
		GetByCategory(ctx context.Context, category string, count int) []*entities.Recipe
	}

	recipeService struct {
		recipeRepository   RecipeRepository
		reviewRepository   review.ReviewRepository
		bookmarkRepository bookmark.BookmarkRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, reviewRepository review.ReviewRepository, bookmarkRepository bookmark.BookmarkRepository) RecipeService {
	return &recipeService{
		recipeRepository:   recipeRepository,
		reviewRepository:   reviewRepository,
		bookmarkRepository: bookmarkRepository,
	}
}

// GetRecipeDetail joins the recipe with its reviews and, when a user is
// present, their bookmark. The bookmark is a display join only; bookmarks
// are stored in their own collection.
func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID int64, userID string) (domain.RecipeDetail, error) {
	rec, err := s.recipeRepository.GetByID(ctx, recipeID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	detail := domain.RecipeDetail{
		Recipe:  *rec,
		Reviews: s.reviewRepository.GetForRecipe(ctx, recipeID),
	}

	if userID != "" {
		bm, err := s.bookmarkRepository.GetByRecipeID(ctx, userID, recipeID)
		if err != nil && !errors.Is(err, domain.ErrBookmarkNotFound) {
			return domain.RecipeDetail{}, err
		}
		detail.Bookmark = bm
	}

	return detail, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID, userName string) (*entities.Recipe, error) {
	return s.recipeRepository.Create(ctx, req, userID, userName)
}

func (s *recipeService) GetRandom(ctx context.Context, count int) []*entities.Recipe {
	return s.recipeRepository.GetRandom(ctx, count)
}

func (s *recipeService) GetTopRated(ctx context.Context, count int) []*entities.Recipe {
	return s.recipeRepository.GetTopRated(ctx, count)
}

func (s *recipeService) GetRecent(ctx context.Context, count int) []*entities.Recipe {
	return s.recipeRepository.GetRecent(ctx, count)
}

func (s *recipeService) GetTrending(ctx context.Context, count int) []*entities.Recipe {
	return s.recipeRepository.GetTrending(ctx, count)
}

func (s *recipeService) GetByCategory(ctx context.Context, category string, count int) []*entities.Recipe {
	return s.recipeRepository.GetByCategory(ctx, category, count)
}
