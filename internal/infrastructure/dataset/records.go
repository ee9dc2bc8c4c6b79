// Package dataset provides the recipe dataset sources: a JSON flat file
// and a single-file SQLite database, both loading into the same
// immutable domain dataset.
package dataset

import (
	"fmt"
	"time"

	"github.com/pantrio/pantrio/internal/domain/recipe"
)

// recipeRecord is the on-disk JSON shape of one recipe
type recipeRecord struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Ingredients     []string         `json:"ingredients"`
	DietaryTags     []string         `json:"dietary_tags,omitempty"`
	Cuisine         string           `json:"cuisine,omitempty"`
	Difficulty      string           `json:"difficulty,omitempty"`
	CookTimeMinutes int              `json:"cook_time_minutes,omitempty"`
	Servings        int              `json:"servings,omitempty"`
	Instructions    string           `json:"instructions,omitempty"`
	Nutrition       *nutritionRecord `json:"nutrition,omitempty"`
}

type nutritionRecord struct {
	Calories      int     `json:"calories"`
	Protein       float64 `json:"protein_g"`
	Carbohydrates float64 `json:"carbohydrates_g"`
	Fat           float64 `json:"fat_g"`
	Fiber         float64 `json:"fiber_g"`
	Sugar         float64 `json:"sugar_g"`
	Sodium        float64 `json:"sodium_mg"`
}

// datasetFile is the top-level JSON document
type datasetFile struct {
	Recipes []recipeRecord `json:"recipes"`
}

// buildRecipe maps a raw record onto the domain entity. Unknown dietary
// tags are dropped; unknown cuisines fall back to "other" and unknown
// difficulties to the entity default.
func buildRecipe(record recipeRecord) (*recipe.Recipe, error) {
	r, err := recipe.NewRecipe(record.ID, record.Name, record.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("recipe %q: %w", record.ID, err)
	}

	for _, raw := range record.DietaryTags {
		if tag, ok := recipe.ParseDietaryTag(raw); ok {
			r.AddDietaryTag(tag)
		}
	}
	if cuisine, ok := recipe.ParseCuisine(record.Cuisine); ok {
		r.SetCuisine(cuisine)
	}
	if difficulty, ok := recipe.ParseDifficulty(record.Difficulty); ok {
		r.SetDifficulty(difficulty)
	}
	if record.CookTimeMinutes > 0 {
		if err := r.SetCookTime(time.Duration(record.CookTimeMinutes) * time.Minute); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", record.ID, err)
		}
	}
	if record.Servings > 0 {
		if err := r.SetServings(record.Servings); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", record.ID, err)
		}
	}
	r.SetInstructions(record.Instructions)
	if record.Nutrition != nil {
		facts := recipe.NutritionFacts{
			Calories:      record.Nutrition.Calories,
			Protein:       record.Nutrition.Protein,
			Carbohydrates: record.Nutrition.Carbohydrates,
			Fat:           record.Nutrition.Fat,
			Fiber:         record.Nutrition.Fiber,
			Sugar:         record.Nutrition.Sugar,
			Sodium:        record.Nutrition.Sodium,
		}
		if err := r.SetNutrition(facts); err != nil {
			return nil, fmt.Errorf("recipe %q: %w", record.ID, err)
		}
	}

	return r, nil
}

func buildDataset(records []recipeRecord) (*recipe.Dataset, error) {
	recipes := make([]*recipe.Recipe, 0, len(records))
	for _, record := range records {
		r, err := buildRecipe(record)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, r)
	}
	return recipe.NewDataset(recipes)
}
