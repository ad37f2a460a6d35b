package handlers

import (
	"errors"

	"tastebook/domain"
	"tastebook/internal/api/presenters"
	"tastebook/pkg/bookmark"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BookmarkHandler interface {
		CreateFolder(c *fiber.Ctx) error
		UpdateFolder(c *fiber.Ctx) error
		DeleteFolder(c *fiber.Ctx) error
		GetFolders(c *fiber.Ctx) error
		GetFolderBookmarks(c *fiber.Ctx) error
		AddBookmark(c *fiber.Ctx) error
		UpdateBookmark(c *fiber.Ctx) error
		RemoveBookmark(c *fiber.Ctx) error
	}

	bookmarkHandler struct {
		bookmarkService bookmark.BookmarkService
		validator       *validator.Validate
	}
)

func NewBookmarkHandler(bookmarkService bookmark.BookmarkService, validator *validator.Validate) BookmarkHandler {
	return &bookmarkHandler{
		bookmarkService: bookmarkService,
		validator:       validator,
	}
}

func (h *bookmarkHandler) CreateFolder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateFolderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFolder, err)
	}

	res, err := h.bookmarkService.CreateFolder(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateFolder, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateFolder)
}

func (h *bookmarkHandler) UpdateFolder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	folderID := c.Params("id")
	req := new(domain.UpdateFolderRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFolder, err)
	}

	if err := h.bookmarkService.UpdateFolder(c.Context(), folderID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateFolder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateFolder)
}

func (h *bookmarkHandler) DeleteFolder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	folderID := c.Params("id")

	if err := h.bookmarkService.DeleteFolder(c.Context(), folderID, userID); err != nil {
		if errors.Is(err, domain.ErrFolderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteFolder, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteFolder, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteFolder)
}

func (h *bookmarkHandler) GetFolders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res := h.bookmarkService.GetUserFolders(c.Context(), userID)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetFolders)
}

func (h *bookmarkHandler) GetFolderBookmarks(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	folderID := c.Params("id")

	res := h.bookmarkService.GetBookmarksByFolder(c.Context(), folderID, userID)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBookmarks)
}

func (h *bookmarkHandler) AddBookmark(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddBookmarkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBookmark, err)
	}

	res, err := h.bookmarkService.AddBookmark(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrFolderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedAddBookmark, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddBookmark, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddBookmark)
}

func (h *bookmarkHandler) UpdateBookmark(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bookmarkID := c.Params("id")
	req := new(domain.UpdateBookmarkRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBookmark, err)
	}

	if err := h.bookmarkService.UpdateBookmark(c.Context(), bookmarkID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) || errors.Is(err, domain.ErrFolderNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateBookmark, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateBookmark, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateBookmark)
}

func (h *bookmarkHandler) RemoveBookmark(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	bookmarkID := c.Params("id")

	if err := h.bookmarkService.RemoveBookmark(c.Context(), bookmarkID, userID); err != nil {
		if errors.Is(err, domain.ErrBookmarkNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRemoveBookmark, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveBookmark, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveBookmark)
}
