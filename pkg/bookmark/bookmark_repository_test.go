package bookmark

import (
	"context"
	"errors"
	"sync"
	"testing"

	"tastebook/domain"
	"tastebook/entities"
	"tastebook/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) BookmarkRepository {
	t.Helper()
	repo := NewBookmarkRepository(storage.NewDatabase(storage.NewMemoryStore()))
	require.NoError(t, repo.Load(context.Background()))
	return repo
}

func mustCreateFolder(t *testing.T, repo BookmarkRepository, userID, name string) *entities.Folder {
	t.Helper()
	folder := &entities.Folder{UserID: userID, Name: name}
	require.NoError(t, repo.CreateFolder(context.Background(), folder))
	require.NotEmpty(t, folder.ID)
	return folder
}

type failingStore struct {
	storage.DocumentStore
}

func (s *failingStore) Save(_ context.Context, _ string, _ []byte) error {
	return errors.New("disk full")
}

func TestFolderLifecycle(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	created := mustCreateFolder(t, repo, "u1", "Weeknight")
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetFolderByID(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weeknight", got.Name)

	require.NoError(t, repo.UpdateFolder(ctx, "u1", created.ID, domain.UpdateFolderRequest{Name: "Weekend", Color: "#222222"}))
	got, err = repo.GetFolderByID(ctx, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Weekend", got.Name)
	assert.Equal(t, "#222222", got.Color)

	require.NoError(t, repo.DeleteFolder(ctx, "u1", created.ID))
	_, err = repo.GetFolderByID(ctx, "u1", created.ID)
	assert.ErrorIs(t, err, domain.ErrFolderNotFound)
}

func TestUpdateFolderUnknownIDIsANoOp(t *testing.T) {
	repo := newTestRepository(t)
	assert.NoError(t, repo.UpdateFolder(context.Background(), "u1", "missing", domain.UpdateFolderRequest{Name: "x"}))
}

func TestFoldersAreScopedToUser(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	mine := mustCreateFolder(t, repo, "u1", "Mine")
	mustCreateFolder(t, repo, "u2", "Theirs")

	assert.Len(t, repo.GetUserFolders(ctx, "u1"), 1)
	assert.Len(t, repo.GetUserFolders(ctx, "u2"), 1)

	// Another user cannot see or touch my folder.
	_, err := repo.GetFolderByID(ctx, "u2", mine.ID)
	assert.ErrorIs(t, err, domain.ErrFolderNotFound)
}

func TestUpsertBookmarkMovesInsteadOfDuplicating(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	folderA := mustCreateFolder(t, repo, "u1", "A")
	folderB := mustCreateFolder(t, repo, "u1", "B")

	first, err := repo.UpsertBookmark(ctx, "u1", 41, folderA.ID, 5)
	require.NoError(t, err)

	// Bookmarking the same recipe again moves it; no second record appears.
	second, err := repo.UpsertBookmark(ctx, "u1", 41, folderB.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, folderB.ID, second.FolderID)
	assert.Equal(t, 2, second.Rating)

	assert.Empty(t, repo.GetBookmarksByFolder(ctx, "u1", folderA.ID))
	assert.Len(t, repo.GetBookmarksByFolder(ctx, "u1", folderB.ID), 1)
}

func TestUpsertBookmarkKeepsRatingWhenOmitted(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	folderA := mustCreateFolder(t, repo, "u1", "A")
	folderB := mustCreateFolder(t, repo, "u1", "B")

	_, err := repo.UpsertBookmark(ctx, "u1", 41, folderA.ID, 4)
	require.NoError(t, err)
	moved, err := repo.UpsertBookmark(ctx, "u1", 41, folderB.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, moved.Rating)
}

func TestSameRecipeDifferentUsers(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	f1 := mustCreateFolder(t, repo, "u1", "Mine")
	f2 := mustCreateFolder(t, repo, "u2", "Theirs")

	_, err := repo.UpsertBookmark(ctx, "u1", 41, f1.ID, 5)
	require.NoError(t, err)
	_, err = repo.UpsertBookmark(ctx, "u2", 41, f2.ID, 3)
	require.NoError(t, err)

	mine, err := repo.GetByRecipeID(ctx, "u1", 41)
	require.NoError(t, err)
	theirs, err := repo.GetByRecipeID(ctx, "u2", 41)
	require.NoError(t, err)
	assert.NotEqual(t, mine.ID, theirs.ID)
	assert.Equal(t, 5, mine.Rating)
	assert.Equal(t, 3, theirs.Rating)
}

func TestUpsertBookmarkRequiresExistingFolder(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.UpsertBookmark(ctx, "u1", 41, "missing", 3)
	assert.ErrorIs(t, err, domain.ErrFolderNotFound)

	// Moving an existing bookmark also needs a live target folder.
	folder := mustCreateFolder(t, repo, "u1", "A")
	bm, err := repo.UpsertBookmark(ctx, "u1", 41, folder.ID, 3)
	require.NoError(t, err)
	assert.ErrorIs(t,
		repo.UpdateBookmark(ctx, "u1", bm.ID, domain.UpdateBookmarkRequest{FolderID: "missing"}),
		domain.ErrFolderNotFound)

	// Another user's folder does not count.
	theirs := mustCreateFolder(t, repo, "u2", "Theirs")
	_, err = repo.UpsertBookmark(ctx, "u1", 44, theirs.ID, 0)
	assert.ErrorIs(t, err, domain.ErrFolderNotFound)
}

func TestConcurrentUpsertAndDeleteFolderNeverOrphans(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		folder := mustCreateFolder(t, repo, "u1", "Transient")
		recipeID := int64(i)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = repo.UpsertBookmark(ctx, "u1", recipeID, folder.ID, 0)
		}()
		go func() {
			defer wg.Done()
			_ = repo.DeleteFolder(ctx, "u1", folder.ID)
		}()
		wg.Wait()

		// Either the insert won and the cascade removed it, or the delete
		// won and the insert was refused. Both ways the folder is gone and
		// nothing can reference it.
		_, err := repo.GetFolderByID(ctx, "u1", folder.ID)
		require.ErrorIs(t, err, domain.ErrFolderNotFound)
		assert.Empty(t, repo.GetBookmarksByFolder(ctx, "u1", folder.ID))
		_, err = repo.GetByRecipeID(ctx, "u1", recipeID)
		assert.ErrorIs(t, err, domain.ErrBookmarkNotFound)
	}
}

func TestDeleteFolderCascadesToBookmarks(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	doomed := mustCreateFolder(t, repo, "u1", "Doomed")
	kept := mustCreateFolder(t, repo, "u1", "Kept")

	_, err := repo.UpsertBookmark(ctx, "u1", 41, doomed.ID, 5)
	require.NoError(t, err)
	_, err = repo.UpsertBookmark(ctx, "u1", 44, doomed.ID, 0)
	require.NoError(t, err)
	surviving, err := repo.UpsertBookmark(ctx, "u1", 52, kept.ID, 4)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteFolder(ctx, "u1", doomed.ID))

	// Bookmarks in the deleted folder are gone, index included.
	_, err = repo.GetByRecipeID(ctx, "u1", 41)
	assert.ErrorIs(t, err, domain.ErrBookmarkNotFound)
	_, err = repo.GetByRecipeID(ctx, "u1", 44)
	assert.ErrorIs(t, err, domain.ErrBookmarkNotFound)

	// The other folder is untouched.
	got, err := repo.GetByRecipeID(ctx, "u1", 52)
	require.NoError(t, err)
	assert.Equal(t, surviving.ID, got.ID)
}

func TestUpdateAndRemoveBookmark(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	folderA := mustCreateFolder(t, repo, "u1", "A")
	folderB := mustCreateFolder(t, repo, "u1", "B")

	bm, err := repo.UpsertBookmark(ctx, "u1", 41, folderA.ID, 0)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateBookmark(ctx, "u1", bm.ID, domain.UpdateBookmarkRequest{FolderID: folderB.ID, Rating: 3}))
	got, err := repo.GetByRecipeID(ctx, "u1", 41)
	require.NoError(t, err)
	assert.Equal(t, folderB.ID, got.FolderID)
	assert.Equal(t, 3, got.Rating)

	assert.ErrorIs(t, repo.UpdateBookmark(ctx, "u1", "missing", domain.UpdateBookmarkRequest{}), domain.ErrBookmarkNotFound)
	assert.ErrorIs(t, repo.UpdateBookmark(ctx, "u2", bm.ID, domain.UpdateBookmarkRequest{}), domain.ErrBookmarkNotFound)

	require.NoError(t, repo.RemoveBookmark(ctx, "u1", bm.ID))
	_, err = repo.GetByRecipeID(ctx, "u1", 41)
	assert.ErrorIs(t, err, domain.ErrBookmarkNotFound)
	assert.ErrorIs(t, repo.RemoveBookmark(ctx, "u1", bm.ID), domain.ErrBookmarkNotFound)
}

func TestCreateFolderRollsBackOnSaveFailure(t *testing.T) {
	repo := NewBookmarkRepository(storage.NewDatabase(&failingStore{DocumentStore: storage.NewMemoryStore()}))
	require.NoError(t, repo.Load(context.Background()))

	err := repo.CreateFolder(context.Background(), &entities.Folder{UserID: "u1", Name: "Doomed"})
	require.Error(t, err)
	assert.Empty(t, repo.GetUserFolders(context.Background(), "u1"))
}

func TestLoadSurvivesMalformedDocuments(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, storage.DocumentFolders, []byte(`{broken`)))

	repo := NewBookmarkRepository(storage.NewDatabase(store))
	require.NoError(t, repo.Load(ctx))
	assert.Empty(t, repo.GetUserFolders(ctx, "u1"))
}
