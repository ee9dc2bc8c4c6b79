// Package testutils provides test data factories for consistent test data generation
package testutils

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/pantrio/pantrio/internal/domain/recipe"
)

// ingredientPool keeps generated recipes overlapping enough to produce
// non-trivial match scores.
var ingredientPool = []string{
	"egg", "flour", "milk", "butter", "sugar", "salt", "pepper",
	"olive oil", "garlic", "onion", "tomato", "rice", "pasta",
	"chicken", "beef", "tofu", "lettuce", "cucumber", "lemon",
	"parmesan", "basil", "coconut milk", "curry paste", "chickpeas",
}

// RecipeFactory provides methods to create test recipes
type RecipeFactory struct {
	faker *gofakeit.Faker
	seq   int
}

// NewRecipeFactory creates a new recipe factory with seeded faker
func NewRecipeFactory(seed int64) *RecipeFactory {
	return &RecipeFactory{faker: gofakeit.New(seed)}
}

// Recipe generates a random valid recipe
func (f *RecipeFactory) Recipe() *recipe.Recipe {
	f.seq++
	id := fmt.Sprintf("%s-%d", f.faker.Word(), f.seq)

	count := f.faker.Number(2, 6)
	ingredients := make([]string, 0, count)
	for len(ingredients) < count {
		candidate := ingredientPool[f.faker.Number(0, len(ingredientPool)-1)]
		ingredients = append(ingredients, candidate)
	}

	r := MustRecipe(id, f.faker.Dinner(), ingredients)
	if f.faker.Bool() {
		r.AddDietaryTag(recipe.DietaryTagVegetarian)
	}
	r.SetCuisine(recipe.CuisineAmerican)
	_ = r.SetCookTime(time.Duration(f.faker.Number(10, 90)) * time.Minute)
	_ = r.SetServings(f.faker.Number(1, 8))
	return r
}

// Recipes generates n random valid recipes with distinct ids
func (f *RecipeFactory) Recipes(n int) []*recipe.Recipe {
	out := make([]*recipe.Recipe, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.Recipe())
	}
	return out
}

// MustRecipe builds a recipe and panics on validation failure. For test
// fixtures only.
func MustRecipe(id, name string, ingredients []string) *recipe.Recipe {
	r, err := recipe.NewRecipe(id, name, ingredients)
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid fixture recipe %q: %v", id, err))
	}
	return r
}

// MustDataset builds a dataset and panics on validation failure
func MustDataset(recipes ...*recipe.Recipe) *recipe.Dataset {
	ds, err := recipe.NewDataset(recipes)
	if err != nil {
		panic(fmt.Sprintf("testutils: invalid fixture dataset: %v", err))
	}
	return ds
}

// FixtureDataset returns the small, well-known dataset most tests rank
// against. Pancakes requires egg, flour and milk so the canonical
// {egg, flour} query scores 2/3.
func FixtureDataset() *recipe.Dataset {
	pancakes := MustRecipe("pancakes", "Pancakes", []string{"egg", "flour", "milk"})
	pancakes.AddDietaryTag(recipe.DietaryTagVegetarian)
	pancakes.SetCuisine(recipe.CuisineAmerican)
	pancakes.SetDifficulty(recipe.DifficultyEasy)

	omelette := MustRecipe("omelette", "Omelette", []string{"egg", "butter"})
	omelette.AddDietaryTag(recipe.DietaryTagVegetarian)
	omelette.AddDietaryTag(recipe.DietaryTagGlutenFree)
	omelette.SetCuisine(recipe.CuisineFrench)
	omelette.SetDifficulty(recipe.DifficultyEasy)

	carbonara := MustRecipe("carbonara", "Spaghetti Carbonara", []string{"pasta", "egg", "bacon", "parmesan"})
	carbonara.SetCuisine(recipe.CuisineItalian)
	carbonara.SetDifficulty(recipe.DifficultyMedium)

	curry := MustRecipe("tofu-curry", "Tofu Curry", []string{"tofu", "rice", "coconut milk", "curry paste"})
	curry.AddDietaryTag(recipe.DietaryTagVegan)
	curry.AddDietaryTag(recipe.DietaryTagGlutenFree)
	curry.SetCuisine(recipe.CuisineThai)
	curry.SetDifficulty(recipe.DifficultyMedium)

	salad := MustRecipe("garden-salad", "Garden Salad", []string{"lettuce", "cucumber", "tomato", "olive oil"})
	salad.AddDietaryTag(recipe.DietaryTagVegan)
	salad.AddDietaryTag(recipe.DietaryTagGlutenFree)
	salad.SetCuisine(recipe.CuisineMediterranean)
	salad.SetDifficulty(recipe.DifficultyEasy)

	return MustDataset(pancakes, omelette, carbonara, curry, salad)
}
