package domain

import "errors"

var (
	MessageSuccessCreateFolder   = "folder created successfully"
	MessageSuccessUpdateFolder   = "folder updated successfully"
	MessageSuccessDeleteFolder   = "folder deleted successfully"
	MessageSuccessGetFolders     = "success get folders"
	MessageSuccessAddBookmark    = "recipe bookmarked successfully"
	MessageSuccessUpdateBookmark = "bookmark updated successfully"
	MessageSuccessRemoveBookmark = "bookmark removed successfully"
	MessageSuccessGetBookmarks   = "success get bookmarks"

	MessageFailedCreateFolder   = "failed to create folder"
	MessageFailedUpdateFolder   = "failed to update folder"
	MessageFailedDeleteFolder   = "failed to delete folder"
	MessageFailedGetFolders     = "failed to get folders"
	MessageFailedAddBookmark    = "failed to bookmark recipe"
	MessageFailedUpdateBookmark = "failed to update bookmark"
	MessageFailedRemoveBookmark = "failed to remove bookmark"
	MessageFailedGetBookmarks   = "failed to get bookmarks"

	ErrFolderNotFound   = errors.New("folder not found")
	ErrBookmarkNotFound = errors.New("bookmark not found")
)

type (
	CreateFolderRequest struct {
		Name  string `json:"name" validate:"required"`
		Color string `json:"color"`
		Icon  string `json:"icon"`
	}

	UpdateFolderRequest struct {
		Name  string `json:"name" validate:"omitempty"`
		Color string `json:"color" validate:"omitempty"`
		Icon  string `json:"icon" validate:"omitempty"`
	}

	AddBookmarkRequest struct {
		RecipeID int64  `json:"recipe_id" validate:"required"`
		FolderID string `json:"folder_id" validate:"required"`
		Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
	}

	UpdateBookmarkRequest struct {
		FolderID string `json:"folder_id" validate:"omitempty"`
		Rating   int    `json:"rating" validate:"omitempty,min=1,max=5"`
	}
)
