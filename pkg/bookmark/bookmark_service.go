package bookmark

import (
	"context"

	"tastebook/domain"
	"tastebook/entities"
)

// Default folders seeded for every new user.
var defaultFolders = []struct {
	name  string
	color string
	icon  string
}{
	{"Favorites", "#e74c3c", "heart"},
	{"Try Later", "#3498db", "clock"},
}

type (
	BookmarkService interface {
		CreateFolder(ctx context.Context, req domain.CreateFolderRequest, userID string) (*entities.Folder, error)
		UpdateFolder(ctx context.Context, folderID string, req domain.UpdateFolderRequest, userID string) error
		DeleteFolder(ctx context.Context, folderID, userID string) error
		GetUserFolders(ctx context.Context, userID string) []*entities.Folder
		EnsureDefaultFolders(ctx context.Context, userID string) error

		AddBookmark(ctx context.Context, req domain.AddBookmarkRequest, userID string) (*entities.Bookmark, error)
		UpdateBookmark(ctx context.Context, bookmarkID string, req domain.UpdateBookmarkRequest, userID string) error
		RemoveBookmark(ctx context.Context, bookmarkID, userID string) error
		GetBookmarksByFolder(ctx context.Context, folderID, userID string) []*entities.Bookmark
		GetBookmarkByRecipeID(ctx context.Context, recipeID int64, userID string) (*entities.Bookmark, error)
	}

	bookmarkService struct {
		bookmarkRepository BookmarkRepository
	}
)

func NewBookmarkService(bookmarkRepository BookmarkRepository) BookmarkService {
	return &bookmarkService{bookmarkRepository: bookmarkRepository}
}

func (s *bookmarkService) CreateFolder(ctx context.Context, req domain.CreateFolderRequest, userID string) (*entities.Folder, error) {
	if userID == "" {
		return nil, domain.ErrUserNotAllowed
	}
	folder := &entities.Folder{
		UserID: userID,
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
	}
	if err := s.bookmarkRepository.CreateFolder(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *bookmarkService) UpdateFolder(ctx context.Context, folderID string, req domain.UpdateFolderRequest, userID string) error {
	if userID == "" {
		return domain.ErrUserNotAllowed
	}
	if _, err := s.bookmarkRepository.GetFolderByID(ctx, userID, folderID); err != nil {
		return err
	}
	return s.bookmarkRepository.UpdateFolder(ctx, userID, folderID, req)
}

func (s *bookmarkService) DeleteFolder(ctx context.Context, folderID, userID string) error {
	if userID == "" {
		return domain.ErrUserNotAllowed
	}
	if _, err := s.bookmarkRepository.GetFolderByID(ctx, userID, folderID); err != nil {
		return err
	}
	return s.bookmarkRepository.DeleteFolder(ctx, userID, folderID)
}

func (s *bookmarkService) GetUserFolders(ctx context.Context, userID string) []*entities.Folder {
	if userID == "" {
		return nil
	}
	return s.bookmarkRepository.GetUserFolders(ctx, userID)
}

// EnsureDefaultFolders seeds "Favorites" and "Try Later" for a user that
// has no folders yet. Called on registration.
func (s *bookmarkService) EnsureDefaultFolders(ctx context.Context, userID string) error {
	if userID == "" {
		return nil
	}
	if len(s.bookmarkRepository.GetUserFolders(ctx, userID)) > 0 {
		return nil
	}
	for _, def := range defaultFolders {
		folder := &entities.Folder{
			UserID: userID,
			Name:   def.name,
			Color:  def.color,
			Icon:   def.icon,
		}
		if err := s.bookmarkRepository.CreateFolder(ctx, folder); err != nil {
			return err
		}
	}
	return nil
}

// AddBookmark delegates the folder-existence check to the repository, which
// performs it inside the same critical section as the insert.
func (s *bookmarkService) AddBookmark(ctx context.Context, req domain.AddBookmarkRequest, userID string) (*entities.Bookmark, error) {
	if userID == "" {
		return nil, domain.ErrUserNotAllowed
	}
	return s.bookmarkRepository.UpsertBookmark(ctx, userID, req.RecipeID, req.FolderID, req.Rating)
}

func (s *bookmarkService) UpdateBookmark(ctx context.Context, bookmarkID string, req domain.UpdateBookmarkRequest, userID string) error {
	if userID == "" {
		return domain.ErrUserNotAllowed
	}
	return s.bookmarkRepository.UpdateBookmark(ctx, userID, bookmarkID, req)
}

func (s *bookmarkService) RemoveBookmark(ctx context.Context, bookmarkID, userID string) error {
	if userID == "" {
		return domain.ErrUserNotAllowed
	}
	return s.bookmarkRepository.RemoveBookmark(ctx, userID, bookmarkID)
}

func (s *bookmarkService) GetBookmarksByFolder(ctx context.Context, folderID, userID string) []*entities.Bookmark {
	if userID == "" {
		return nil
	}
	return s.bookmarkRepository.GetBookmarksByFolder(ctx, userID, folderID)
}

func (s *bookmarkService) GetBookmarkByRecipeID(ctx context.Context, recipeID int64, userID string) (*entities.Bookmark, error) {
	if userID == "" {
		return nil, domain.ErrBookmarkNotFound
	}
	return s.bookmarkRepository.GetByRecipeID(ctx, userID, recipeID)
}
