package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrio/pantrio/internal/domain/recipe"
	apperrors "github.com/pantrio/pantrio/pkg/errors"
	"github.com/pantrio/pantrio/pkg/logger"
)

const fixtureJSON = `{
  "recipes": [
    {
      "id": "pancakes",
      "name": "Pancakes",
      "ingredients": ["egg", "flour", "milk"],
      "dietary_tags": ["vegetarian", "low_carb_nonsense"],
      "cuisine": "american",
      "difficulty": "easy",
      "cook_time_minutes": 20,
      "servings": 4,
      "nutrition": {"calories": 350, "protein_g": 9.5}
    },
    {
      "id": "tofu-curry",
      "name": "Tofu Curry",
      "ingredients": ["tofu", "rice"],
      "cuisine": "klingon"
    }
  ]
}`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recipes.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestJSONSourceLoad(t *testing.T) {
	ctx := context.Background()
	source := NewJSONSource(writeFixture(t, fixtureJSON), logger.NewNop())

	ds, err := source.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())

	pancakes, err := ds.ByID("pancakes")
	require.NoError(t, err)
	assert.Equal(t, "Pancakes", pancakes.Name())
	assert.Equal(t, []string{"egg", "flour", "milk"}, pancakes.Ingredients())
	// The unknown tag is dropped, the known one kept.
	assert.Equal(t, []recipe.DietaryTag{recipe.DietaryTagVegetarian}, pancakes.DietaryTags())
	assert.Equal(t, recipe.CuisineAmerican, pancakes.Cuisine())
	assert.Equal(t, recipe.DifficultyEasy, pancakes.Difficulty())
	assert.Equal(t, 4, pancakes.Servings())
	require.NotNil(t, pancakes.Nutrition())
	assert.Equal(t, 350, pancakes.Nutrition().Calories)

	curry, err := ds.ByID("tofu-curry")
	require.NoError(t, err)
	assert.Equal(t, recipe.CuisineOther, curry.Cuisine())
}

func TestJSONSourceLoadMissingFile(t *testing.T) {
	source := NewJSONSource(filepath.Join(t.TempDir(), "absent.json"), logger.NewNop())

	_, err := source.Load(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.CodeDatasetNotFound))
}

func TestJSONSourceLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"InvalidJSON", `{"recipes": [`},
		{"RecipeWithoutIngredients", `{"recipes": [{"id": "empty", "name": "Empty", "ingredients": []}]}`},
		{"DuplicateIDs", `{"recipes": [
			{"id": "pancakes", "name": "A", "ingredients": ["egg"]},
			{"id": "pancakes", "name": "B", "ingredients": ["flour"]}
		]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewJSONSource(writeFixture(t, tt.content), logger.NewNop())
			_, err := source.Load(context.Background())
			require.Error(t, err)
			assert.True(t, apperrors.IsCode(err, apperrors.CodeStorageError))
		})
	}
}
