package bookmark

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"tastebook/domain"
	"tastebook/entities"
	"tastebook/pkg/storage"

	"github.com/google/uuid"
)

type (
	BookmarkRepository interface {
		Load(ctx context.Context) error

		CreateFolder(ctx context.Context, folder *entities.Folder) error
		UpdateFolder(ctx context.Context, userID, folderID string, patch domain.UpdateFolderRequest) error
		DeleteFolder(ctx context.Context, userID, folderID string) error
		GetUserFolders(ctx context.Context, userID string) []*entities.Folder
		GetFolderByID(ctx context.Context, userID, folderID string) (*entities.Folder, error)

		UpsertBookmark(ctx context.Context, userID string, recipeID int64, folderID string, rating int) (*entities.Bookmark, error)
		UpdateBookmark(ctx context.Context, userID, bookmarkID string, patch domain.UpdateBookmarkRequest) error
		RemoveBookmark(ctx context.Context, userID, bookmarkID string) error
		GetBookmarksByFolder(ctx context.Context, userID, folderID string) []*entities.Bookmark
		GetByRecipeID(ctx context.Context, userID string, recipeID int64) (*entities.Bookmark, error)
	}

	bookmarkRepository struct {
		db *storage.Database

		// byUserRecipe makes the one-bookmark-per-(user,recipe) check O(1).
		// Rebuilt on load, maintained under the database write lock.
		byUserRecipe map[string]*entities.Bookmark
	}
)

func NewBookmarkRepository(db *storage.Database) BookmarkRepository {
	return &bookmarkRepository{
		db:           db,
		byUserRecipe: make(map[string]*entities.Bookmark),
	}
}

func bookmarkKey(userID string, recipeID int64) string {
	return fmt.Sprintf("%s|%d", userID, recipeID)
}

func (r *bookmarkRepository) Load(ctx context.Context) error {
	folders, err := loadCollection[entities.Folder](ctx, r.db, storage.DocumentFolders)
	if err != nil {
		return err
	}
	bookmarks, err := loadCollection[entities.Bookmark](ctx, r.db, storage.DocumentBookmarks)
	if err != nil {
		return err
	}

	r.db.Lock()
	r.db.Folders = folders
	r.db.Bookmarks = bookmarks
	r.rebuildIndex()
	r.db.Unlock()
	return nil
}

func loadCollection[T any](ctx context.Context, db *storage.Database, key string) ([]*T, error) {
	data, err := db.LoadDocument(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrDocumentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var items []*T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("%s document malformed, starting empty: %v", key, err)
		return nil, nil
	}
	return items, nil
}

// rebuildIndex assumes the write lock is held.
func (r *bookmarkRepository) rebuildIndex() {
	r.byUserRecipe = make(map[string]*entities.Bookmark, len(r.db.Bookmarks))
	for _, bm := range r.db.Bookmarks {
		r.byUserRecipe[bookmarkKey(bm.UserID, bm.RecipeID)] = bm
	}
}

func (r *bookmarkRepository) CreateFolder(ctx context.Context, folder *entities.Folder) error {
	r.db.Lock()
	defer r.db.Unlock()

	folder.ID = uuid.NewString()
	folder.CreatedAt = time.Now()

	old := r.db.Folders
	r.db.Folders = append(append([]*entities.Folder{}, old...), folder)
	if err := r.db.SaveDocument(ctx, storage.DocumentFolders, r.db.Folders); err != nil {
		r.db.Folders = old
		return err
	}
	return nil
}

// UpdateFolder merges the provided fields. An unknown folder id is a silent
// no-op; callers check existence first.
func (r *bookmarkRepository) UpdateFolder(ctx context.Context, userID, folderID string, patch domain.UpdateFolderRequest) error {
	r.db.Lock()
	defer r.db.Unlock()

	old := r.db.Folders
	updated := make([]*entities.Folder, len(old))
	copy(updated, old)

	found := false
	for i, f := range updated {
		if f.ID == folderID && f.UserID == userID {
			merged := *f
			if patch.Name != "" {
				merged.Name = patch.Name
			}
			if patch.Color != "" {
				merged.Color = patch.Color
			}
			if patch.Icon != "" {
				merged.Icon = patch.Icon
			}
			updated[i] = &merged
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	r.db.Folders = updated
	if err := r.db.SaveDocument(ctx, storage.DocumentFolders, r.db.Folders); err != nil {
		r.db.Folders = old
		return err
	}
	return nil
}

// DeleteFolder removes the folder and cascades to every bookmark inside it.
// Both collections change under one hold of the write lock, so no reader
// ever observes a bookmark pointing at a deleted folder.
func (r *bookmarkRepository) DeleteFolder(ctx context.Context, userID, folderID string) error {
	r.db.Lock()
	defer r.db.Unlock()

	oldFolders := r.db.Folders
	oldBookmarks := r.db.Bookmarks

	folders := make([]*entities.Folder, 0, len(oldFolders))
	for _, f := range oldFolders {
		if f.ID == folderID && f.UserID == userID {
			continue
		}
		folders = append(folders, f)
	}

	bookmarks := make([]*entities.Bookmark, 0, len(oldBookmarks))
	for _, bm := range oldBookmarks {
		if bm.FolderID == folderID && bm.UserID == userID {
			continue
		}
		bookmarks = append(bookmarks, bm)
	}

	r.db.Folders = folders
	r.db.Bookmarks = bookmarks

	if err := r.db.SaveDocument(ctx, storage.DocumentFolders, r.db.Folders); err != nil {
		r.db.Folders = oldFolders
		r.db.Bookmarks = oldBookmarks
		return err
	}
	if err := r.db.SaveDocument(ctx, storage.DocumentBookmarks, r.db.Bookmarks); err != nil {
		r.db.Folders = oldFolders
		r.db.Bookmarks = oldBookmarks
		return err
	}
	r.rebuildIndex()
	return nil
}

func (r *bookmarkRepository) GetUserFolders(_ context.Context, userID string) []*entities.Folder {
	r.db.RLock()
	defer r.db.RUnlock()
	var out []*entities.Folder
	for _, f := range r.db.Folders {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out
}

func (r *bookmarkRepository) GetFolderByID(_ context.Context, userID, folderID string) (*entities.Folder, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	for _, f := range r.db.Folders {
		if f.ID == folderID && f.UserID == userID {
			return f, nil
		}
	}
	return nil, domain.ErrFolderNotFound
}

// folderExists assumes the caller holds at least the read lock.
func (r *bookmarkRepository) folderExists(userID, folderID string) bool {
	for _, f := range r.db.Folders {
		if f.ID == folderID && f.UserID == userID {
			return true
		}
	}
	return false
}

// UpsertBookmark enforces the at-most-one-bookmark-per-(user,recipe)
// invariant: a second call for the same pair updates the existing record's
// folder and rating in place instead of inserting a duplicate. The target
// folder is verified under the same lock hold as the write, so a concurrent
// DeleteFolder can never leave a bookmark pointing at a deleted folder.
func (r *bookmarkRepository) UpsertBookmark(ctx context.Context, userID string, recipeID int64, folderID string, rating int) (*entities.Bookmark, error) {
	r.db.Lock()
	defer r.db.Unlock()

	if !r.folderExists(userID, folderID) {
		return nil, domain.ErrFolderNotFound
	}

	old := r.db.Bookmarks
	key := bookmarkKey(userID, recipeID)

	if existing, ok := r.byUserRecipe[key]; ok {
		merged := *existing
		merged.FolderID = folderID
		if rating != 0 {
			merged.Rating = rating
		}

		updated := make([]*entities.Bookmark, len(old))
		copy(updated, old)
		for i, bm := range updated {
			if bm.ID == existing.ID {
				updated[i] = &merged
				break
			}
		}
		r.db.Bookmarks = updated
		if err := r.db.SaveDocument(ctx, storage.DocumentBookmarks, r.db.Bookmarks); err != nil {
			r.db.Bookmarks = old
			return nil, err
		}
		r.byUserRecipe[key] = &merged
		return &merged, nil
	}

	bm := &entities.Bookmark{
		ID:        uuid.NewString(),
		UserID:    userID,
		RecipeID:  recipeID,
		FolderID:  folderID,
		Rating:    rating,
		CreatedAt: time.Now(),
	}
	r.db.Bookmarks = append(append([]*entities.Bookmark{}, old...), bm)
	if err := r.db.SaveDocument(ctx, storage.DocumentBookmarks, r.db.Bookmarks); err != nil {
		r.db.Bookmarks = old
		return nil, err
	}
	r.byUserRecipe[key] = bm
	return bm, nil
}

func (r *bookmarkRepository) UpdateBookmark(ctx context.Context, userID, bookmarkID string, patch domain.UpdateBookmarkRequest) error {
	r.db.Lock()
	defer r.db.Unlock()

	if patch.FolderID != "" && !r.folderExists(userID, patch.FolderID) {
		return domain.ErrFolderNotFound
	}

	old := r.db.Bookmarks
	updated := make([]*entities.Bookmark, len(old))
	copy(updated, old)

	for i, bm := range updated {
		if bm.ID == bookmarkID && bm.UserID == userID {
			merged := *bm
			if patch.FolderID != "" {
				merged.FolderID = patch.FolderID
			}
			if patch.Rating != 0 {
				merged.Rating = patch.Rating
			}
			updated[i] = &merged
			r.db.Bookmarks = updated
			if err := r.db.SaveDocument(ctx, storage.DocumentBookmarks, r.db.Bookmarks); err != nil {
				r.db.Bookmarks = old
				return err
			}
			r.byUserRecipe[bookmarkKey(merged.UserID, merged.RecipeID)] = &merged
			return nil
		}
	}
	return domain.ErrBookmarkNotFound
}

func (r *bookmarkRepository) RemoveBookmark(ctx context.Context, userID, bookmarkID string) error {
	r.db.Lock()
	defer r.db.Unlock()

	old := r.db.Bookmarks
	updated := make([]*entities.Bookmark, 0, len(old))
	var removed *entities.Bookmark
	for _, bm := range old {
		if bm.ID == bookmarkID && bm.UserID == userID {
			removed = bm
			continue
		}
		updated = append(updated, bm)
	}
	if removed == nil {
		return domain.ErrBookmarkNotFound
	}

	r.db.Bookmarks = updated
	if err := r.db.SaveDocument(ctx, storage.DocumentBookmarks, r.db.Bookmarks); err != nil {
		r.db.Bookmarks = old
		return err
	}
	delete(r.byUserRecipe, bookmarkKey(removed.UserID, removed.RecipeID))
	return nil
}

func (r *bookmarkRepository) GetBookmarksByFolder(_ context.Context, userID, folderID string) []*entities.Bookmark {
	r.db.RLock()
	defer r.db.RUnlock()
	var out []*entities.Bookmark
	for _, bm := range r.db.Bookmarks {
		if bm.FolderID == folderID && bm.UserID == userID {
			out = append(out, bm)
		}
	}
	return out
}

func (r *bookmarkRepository) GetByRecipeID(_ context.Context, userID string, recipeID int64) (*entities.Bookmark, error) {
	r.db.RLock()
	defer r.db.RUnlock()
	if bm, ok := r.byUserRecipe[bookmarkKey(userID, recipeID)]; ok {
		return bm, nil
	}
	return nil, domain.ErrBookmarkNotFound
}
