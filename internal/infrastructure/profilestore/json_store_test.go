package profilestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrio/pantrio/internal/domain/profile"
	"github.com/pantrio/pantrio/internal/domain/recipe"
	apperrors "github.com/pantrio/pantrio/pkg/errors"
	"github.com/pantrio/pantrio/pkg/logger"
)

func newTempStore(t *testing.T) *JSONStore {
	t.Helper()
	dir := t.TempDir()
	return NewJSONStore(
		filepath.Join(dir, "profile.json"),
		filepath.Join(dir, "feedback.json"),
		logger.NewNop(),
	)
}

func TestLoadProfileMissingFile(t *testing.T) {
	store := newTempStore(t)

	prof, err := store.LoadProfile(context.Background())
	require.NoError(t, err)
	assert.True(t, prof.IsEmpty())
}

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)

	curry, err := recipe.NewRecipe("tofu-curry", "Tofu Curry", []string{"tofu", "rice"})
	require.NoError(t, err)
	curry.SetCuisine(recipe.CuisineThai)

	prof := profile.NewProfile()
	require.True(t, prof.Like(curry))
	require.True(t, prof.Dislike(mustRecipe(t, "beef-tacos", "beef")))

	require.NoError(t, store.SaveProfile(ctx, prof))

	loaded, err := store.LoadProfile(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"tofu-curry"}, loaded.LikedRecipes())
	assert.Equal(t, []string{"beef-tacos"}, loaded.DislikedRecipes())
	assert.True(t, loaded.FavoriteIngredients().Contains("tofu"))
	assert.True(t, loaded.PrefersCuisine(recipe.CuisineThai))
}

func TestLoadLedgerMissingFile(t *testing.T) {
	store := newTempStore(t)

	ledger, err := store.LoadLedger(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger.Records())
}

func TestLedgerRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTempStore(t)

	ledger := profile.NewLedger()
	ledger.RecordLike("pancakes", false)
	ledger.RecordLike("pancakes", false)
	ledger.RecordDislike("beef-tacos", false)

	require.NoError(t, store.SaveLedger(ctx, ledger))

	loaded, err := store.LoadLedger(ctx)
	require.NoError(t, err)

	assert.Equal(t, profile.FeedbackCounts{Likes: 2}, loaded.Counts("pancakes"))
	assert.Equal(t, profile.FeedbackCounts{Dislikes: 1}, loaded.Counts("beef-tacos"))
	require.Len(t, loaded.Records(), 3)
	assert.Equal(t, ledger.Records()[0].ID, loaded.Records()[0].ID)
}

func TestLoadLedgerSkipsCorruptRecords(t *testing.T) {
	dir := t.TempDir()
	feedbackPath := filepath.Join(dir, "feedback.json")
	content := `{
  "recipes": {"pancakes": {"likes": 1, "dislikes": 0}},
  "records": [
    {"id": "not-a-uuid", "recipe_id": "pancakes", "kind": "like", "created_at": "2026-08-25T10:00:00Z"},
    {"id": "7f9c24e5-2f89-4a1d-9c6b-3b8f1de0a111", "recipe_id": "pancakes", "kind": "like", "created_at": "2026-08-25T10:01:00Z"}
  ]
}`
	require.NoError(t, os.WriteFile(feedbackPath, []byte(content), 0o644))

	store := NewJSONStore(filepath.Join(dir, "profile.json"), feedbackPath, logger.NewNop())
	ledger, err := store.LoadLedger(context.Background())
	require.NoError(t, err)

	assert.Len(t, ledger.Records(), 1)
	assert.Equal(t, profile.FeedbackCounts{Likes: 1}, ledger.Counts("pancakes"))
}

func TestLoadProfileCorruptFile(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.json")
	require.NoError(t, os.WriteFile(profilePath, []byte("{not json"), 0o644))

	store := NewJSONStore(profilePath, filepath.Join(dir, "feedback.json"), logger.NewNop())
	_, err := store.LoadProfile(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeStorageError))
}

func TestSaveProfileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewJSONStore(
		filepath.Join(dir, "profile.json"),
		filepath.Join(dir, "feedback.json"),
		logger.NewNop(),
	)

	require.NoError(t, store.SaveProfile(context.Background(), profile.NewProfile()))
	_, err := os.Stat(filepath.Join(dir, "profile.json"))
	assert.NoError(t, err)
}

func mustRecipe(t *testing.T, id string, ingredients ...string) *recipe.Recipe {
	t.Helper()
	r, err := recipe.NewRecipe(id, id, ingredients)
	require.NoError(t, err)
	return r
}
