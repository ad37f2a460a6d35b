package recipe

import (
	"context"
	"errors"
	"testing"

	"tastebook/domain"
	"tastebook/pkg/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (RecipeRepository, *storage.Database) {
	t.Helper()
	db := storage.NewDatabase(storage.NewMemoryStore())
	repo := NewRecipeRepository(db)
	require.NoError(t, repo.Load(context.Background()))
	return repo, db
}

// failingStore accepts loads but refuses writes, for rollback tests.
type failingStore struct {
	storage.DocumentStore
}

func (s *failingStore) Save(_ context.Context, _ string, _ []byte) error {
	return errors.New("disk full")
}

func TestLoadFallsBackToSeedData(t *testing.T) {
	repo, _ := newTestRepository(t)

	all := repo.All(context.Background())
	require.Len(t, all, 8)
	assert.Equal(t, int64(38), all[0].RecipeID)
	assert.Equal(t, "Low-Fat Berry Blue Frozen Dessert", all[0].Name)

	// Seed lists arrive in mixed formats and all normalize to slices.
	assert.Equal(t, []string{"Dessert", "Low Protein", "Low Cholesterol", "Healthy"}, all[0].Keywords)
	assert.Equal(t, []string{"blueberries", "granulated sugar", "vanilla yogurt", "lemon juice"}, all[0].RecipeIngredientParts)
	assert.Len(t, all[0].Images, 2)
}

func TestLoadPrefersPersistedDocument(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, storage.DocumentRecipes, []byte(`[{"recipe_id": 99, "name": "Only One"}]`)))

	db := storage.NewDatabase(store)
	repo := NewRecipeRepository(db)
	require.NoError(t, repo.Load(ctx))

	all := repo.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, int64(99), all[0].RecipeID)
}

func TestGetByID(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	rec, err := repo.GetByID(ctx, 41)
	require.NoError(t, err)
	assert.Equal(t, "Chocolate Fudge Cake", rec.Name)

	_, err = repo.GetByID(ctx, 12345)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestGetTopRated(t *testing.T) {
	repo, _ := newTestRepository(t)

	top := repo.GetTopRated(context.Background(), 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Chocolate Fudge Cake", top[0].Name)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].AggregatedRating, top[i].AggregatedRating)
	}
	// Unrated recipes never appear, whatever the count.
	for _, rec := range repo.GetTopRated(context.Background(), 100) {
		assert.Greater(t, rec.AggregatedRating, 0.0)
	}
}

func TestGetTrending(t *testing.T) {
	repo, _ := newTestRepository(t)

	trending := repo.GetTrending(context.Background(), 2)
	require.Len(t, trending, 2)
	assert.GreaterOrEqual(t, trending[0].ReviewCount, trending[1].ReviewCount)
}

func TestGetRandomRespectsCount(t *testing.T) {
	repo, _ := newTestRepository(t)

	assert.Len(t, repo.GetRandom(context.Background(), 3), 3)
	assert.Len(t, repo.GetRandom(context.Background(), 0), 8)
	assert.Len(t, repo.GetRandom(context.Background(), 100), 8)
}

func TestGetByCategory(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	byCategory := repo.GetByCategory(ctx, "dessert", 0)
	// "Frozen Desserts" and "Dessert" categories plus the keyword match.
	require.NotEmpty(t, byCategory)
	for _, rec := range byCategory {
		assert.True(t, matchesCategory(rec, "dessert"), "recipe %d", rec.RecipeID)
	}

	byKeyword := repo.GetByCategory(ctx, "asian", 0)
	require.Len(t, byKeyword, 2) // Biryani and Thai Green Curry via keywords

	assert.Nil(t, repo.GetByCategory(ctx, "  ", 0))
	assert.Empty(t, repo.GetByCategory(ctx, "molecular gastronomy", 0))
}

func TestCreateRecipe(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	req := domain.CreateRecipeRequest{
		Name:            "Midnight <script>Snack</script>",
		Description:     "Quick & easy!",
		RecipeCategory:  "Snacks",
		Keywords:        "Quick, Late Night",
		IngredientParts: []string{"bread", "cheese"},
		Instructions:    "Toast the bread.\nMelt the cheese.\n",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 10,
	}

	rec, err := repo.Create(ctx, req, "user-1", "Night Owl")
	require.NoError(t, err)

	// Ids continue past the highest seed id.
	assert.Equal(t, int64(57), rec.RecipeID)
	assert.Equal(t, "Midnight script Snack script", rec.Name)
	assert.Equal(t, "Quick easy", rec.Description)
	assert.Equal(t, []string{"Quick", "Late Night"}, rec.Keywords)
	assert.Equal(t, []string{"Toast the bread.", "Melt the cheese."}, rec.RecipeInstructions)
	assert.Equal(t, "PT5M", rec.PrepTime)
	assert.Equal(t, "PT10M", rec.CookTime)
	assert.Equal(t, "PT15M", rec.TotalTime)
	assert.Equal(t, "user-1", rec.AuthorID)
	assert.Equal(t, "Night Owl", rec.AuthorName)

	// New recipes go to the head of the collection.
	all := repo.All(ctx)
	require.Len(t, all, 9)
	assert.Equal(t, rec.RecipeID, all[0].RecipeID)
}

func TestCreateRecipeRollsBackOnSaveFailure(t *testing.T) {
	db := storage.NewDatabase(&failingStore{DocumentStore: storage.NewMemoryStore()})
	repo := NewRecipeRepository(db)
	require.NoError(t, repo.Load(context.Background()))

	before := repo.All(context.Background())
	_, err := repo.Create(context.Background(), domain.CreateRecipeRequest{Name: "Doomed"}, "u", "U")
	require.Error(t, err)
	assert.Equal(t, before, repo.All(context.Background()))
}
