package handlers

import (
	"errors"
	"strconv"

	"tastebook/domain"
	"tastebook/internal/api/presenters"
	"tastebook/pkg/review"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	ReviewHandler interface {
		AddReview(c *fiber.Ctx) error
		GetForRecipe(c *fiber.Ctx) error
	}

	reviewHandler struct {
		reviewService review.ReviewService
		validator     *validator.Validate
	}
)

func NewReviewHandler(reviewService review.ReviewService, validator *validator.Validate) ReviewHandler {
	return &reviewHandler{
		reviewService: reviewService,
		validator:     validator,
	}
}

func (h *reviewHandler) AddReview(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userName, _ := c.Locals("name").(string)
	req := new(domain.AddReviewRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReview, err)
	}

	res, err := h.reviewService.AddReview(c.Context(), *req, userID, userName)
	if err != nil {
		if errors.Is(err, domain.ErrReviewedRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddReview, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddReview, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddReview)
}

func (h *reviewHandler) GetForRecipe(c *fiber.Ctx) error {
	recipeID, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetReviews, err)
	}

	res := h.reviewService.GetForRecipe(c.Context(), recipeID)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetReviews)
}
