package handlers

import (
	"errors"
	"strconv"

	"tastebook/domain"
	"tastebook/internal/api/presenters"
	"tastebook/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const defaultListCount = 10

type (
	RecipeHandler interface {
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		GetRandom(c *fiber.Ctx) error
		GetTopRated(c *fiber.Ctx) error
		GetRecent(c *fiber.Ctx) error
		GetTrending(c *fiber.Ctx) error
		GetByCategory(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	userID, _ := c.Locals("user_id").(string)

	res, err := h.recipeService.GetRecipeDetail(c.Context(), recipeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userName, _ := c.Locals("name").(string)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, userID, userName)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) GetRandom(c *fiber.Ctx) error {
	res := h.recipeService.GetRandom(c.Context(), queryCount(c))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetTopRated(c *fiber.Ctx) error {
	res := h.recipeService.GetTopRated(c.Context(), queryCount(c))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecent(c *fiber.Ctx) error {
	res := h.recipeService.GetRecent(c.Context(), queryCount(c))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetTrending(c *fiber.Ctx) error {
	res := h.recipeService.GetTrending(c.Context(), queryCount(c))
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	// Category listing returns all matches unless a positive count caps it.
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count < 0 {
		count = 0
	}

	res := h.recipeService.GetByCategory(c.Context(), category, count)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func queryCount(c *fiber.Ctx) int {
	count, err := strconv.Atoi(c.Query("count"))
	if err != nil || count <= 0 {
		return defaultListCount
	}
	return count
}
