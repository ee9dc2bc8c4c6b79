package recipe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// RecipeTestSuite provides a test suite for the Recipe entity
type RecipeTestSuite struct {
	suite.Suite
}

func (suite *RecipeTestSuite) TestRecipeCreation() {
	suite.Run("ValidRecipe_ShouldCreateSuccessfully", func() {
		r, err := NewRecipe("pancakes", "Pancakes", []string{"Egg", " Flour ", "milk"})

		require.NoError(suite.T(), err)
		require.NotNil(suite.T(), r)

		assert.Equal(suite.T(), "pancakes", r.ID())
		assert.Equal(suite.T(), "Pancakes", r.Name())
		assert.Equal(suite.T(), []string{"egg", "flour", "milk"}, r.Ingredients())
		assert.Equal(suite.T(), 3, r.RequiredCount())
	})

	suite.Run("EmptyID_ShouldReturnError", func() {
		r, err := NewRecipe("  ", "Pancakes", []string{"egg"})

		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrEmptyID, err)
	})

	suite.Run("EmptyName_ShouldReturnError", func() {
		r, err := NewRecipe("pancakes", "", []string{"egg"})

		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrEmptyName, err)
	})

	suite.Run("NoIngredients_ShouldReturnError", func() {
		r, err := NewRecipe("pancakes", "Pancakes", []string{"  ", ""})

		assert.Nil(suite.T(), r)
		assert.Equal(suite.T(), ErrNoIngredients, err)
	})

	suite.Run("DuplicateIngredients_ShouldDeduplicate", func() {
		r, err := NewRecipe("omelette", "Omelette", []string{"egg", "EGG", "butter", "egg "})

		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), []string{"egg", "butter"}, r.Ingredients())
		assert.Equal(suite.T(), 2, r.RequiredCount())
	})
}

func (suite *RecipeTestSuite) TestRecipeAttributes() {
	r, err := NewRecipe("risotto", "Mushroom Risotto", []string{"rice", "mushroom"})
	require.NoError(suite.T(), err)

	suite.Run("DefaultsAreNeutral", func() {
		assert.Equal(suite.T(), CuisineOther, r.Cuisine())
		assert.Equal(suite.T(), DifficultyMedium, r.Difficulty())
		assert.Nil(suite.T(), r.Nutrition())
	})

	suite.Run("NegativeCookTime_ShouldReturnError", func() {
		assert.Equal(suite.T(), ErrNegativeCookTime, r.SetCookTime(-time.Minute))
	})

	suite.Run("ZeroServings_ShouldReturnError", func() {
		assert.Equal(suite.T(), ErrInvalidServings, r.SetServings(0))
	})

	suite.Run("NutritionCopyIsDetached", func() {
		require.NoError(suite.T(), r.SetNutrition(NutritionFacts{Calories: 500}))
		facts := r.Nutrition()
		facts.Calories = 1
		assert.Equal(suite.T(), 500, r.Nutrition().Calories)
	})

	suite.Run("InvalidNutrition_ShouldReturnError", func() {
		assert.Error(suite.T(), r.SetNutrition(NutritionFacts{Calories: -1}))
	})
}

func (suite *RecipeTestSuite) TestDietaryTags() {
	r, err := NewRecipe("tofu-curry", "Tofu Curry", []string{"tofu", "rice"})
	require.NoError(suite.T(), err)
	r.AddDietaryTag(DietaryTagVegan)
	r.AddDietaryTag(DietaryTagGlutenFree)

	suite.Run("TagsAreSorted", func() {
		assert.Equal(suite.T(), []DietaryTag{DietaryTagGlutenFree, DietaryTagVegan}, r.DietaryTags())
	})

	suite.Run("VeganSatisfiesVegetarianFilter", func() {
		assert.True(suite.T(), r.SatisfiesDiet(DietaryTagVegan))
		assert.True(suite.T(), r.SatisfiesDiet(DietaryTagVegetarian))
	})

	suite.Run("VegetarianDoesNotSatisfyVeganFilter", func() {
		veggie, err := NewRecipe("pancakes", "Pancakes", []string{"egg", "flour", "milk"})
		require.NoError(suite.T(), err)
		veggie.AddDietaryTag(DietaryTagVegetarian)

		assert.False(suite.T(), veggie.SatisfiesDiet(DietaryTagVegan))
	})

	suite.Run("UntaggedRecipe_SatisfiesNothing", func() {
		plain, err := NewRecipe("carbonara", "Carbonara", []string{"pasta", "egg"})
		require.NoError(suite.T(), err)

		assert.False(suite.T(), plain.SatisfiesDiet(DietaryTagVegan))
		assert.False(suite.T(), plain.SatisfiesDiet(DietaryTagVegetarian))
	})
}

func (suite *RecipeTestSuite) TestMatchScore() {
	pancakes, err := NewRecipe("pancakes", "Pancakes", []string{"egg", "flour", "milk"})
	require.NoError(suite.T(), err)

	suite.Run("PartialOverlap", func() {
		score := pancakes.MatchScore(NewIngredientSet([]string{"egg", "flour"}))
		assert.InDelta(suite.T(), 2.0/3.0, score, 1e-9)
	})

	suite.Run("FullOverlap", func() {
		score := pancakes.MatchScore(NewIngredientSet([]string{"milk", "egg", "flour", "sugar"}))
		assert.Equal(suite.T(), 1.0, score)
	})

	suite.Run("NoOverlap", func() {
		score := pancakes.MatchScore(NewIngredientSet([]string{"tofu"}))
		assert.Equal(suite.T(), 0.0, score)
	})

	suite.Run("CaseInsensitive", func() {
		score := pancakes.MatchScore(NewIngredientSet([]string{"EGG", " Milk "}))
		assert.InDelta(suite.T(), 2.0/3.0, score, 1e-9)
	})
}

func (suite *RecipeTestSuite) TestSimilarity() {
	carbonara, err := NewRecipe("carbonara", "Carbonara", []string{"pasta", "egg", "bacon"})
	require.NoError(suite.T(), err)
	cacio, err := NewRecipe("cacio-e-pepe", "Cacio e Pepe", []string{"pasta", "pecorino", "black pepper"})
	require.NoError(suite.T(), err)

	suite.Run("SharedIngredientGivesJaccard", func() {
		// 1 shared of 5 distinct ingredients.
		assert.InDelta(suite.T(), 1.0/5.0, carbonara.Similarity(cacio), 1e-9)
	})

	suite.Run("Symmetric", func() {
		assert.Equal(suite.T(), carbonara.Similarity(cacio), cacio.Similarity(carbonara))
	})

	suite.Run("IdenticalSetsScoreOne", func() {
		assert.Equal(suite.T(), 1.0, carbonara.Similarity(carbonara))
	})
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}
