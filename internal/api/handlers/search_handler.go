package handlers

import (
	"tastebook/domain"
	"tastebook/entities"
	"tastebook/internal/api/presenters"
	"tastebook/pkg/search"

	"github.com/gofiber/fiber/v2"
)

type (
	SearchHandler interface {
		Search(c *fiber.Ctx) error
		Suggest(c *fiber.Ctx) error
	}

	searchHandler struct {
		searchService search.SearchService
	}
)

func NewSearchHandler(searchService search.SearchService) SearchHandler {
	return &searchHandler{searchService: searchService}
}

func (h *searchHandler) Search(c *fiber.Ctx) error {
	query := c.Query("q")

	matches := h.searchService.Search(c.Context(), query)

	res := domain.SearchResponse{
		Recipes: make([]entities.Recipe, 0, len(matches)),
		Total:   len(matches),
	}
	for _, r := range matches {
		res.Recipes = append(res.Recipes, *r)
	}

	// Only offer alternative spellings when the query came back empty.
	if len(matches) == 0 && query != "" {
		res.Suggestions = h.searchService.SuggestSimilarTerms(c.Context(), query)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearch)
}

func (h *searchHandler) Suggest(c *fiber.Ctx) error {
	query := c.Query("q")

	res := h.searchService.SuggestSimilarTerms(c.Context(), query)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearch)
}
