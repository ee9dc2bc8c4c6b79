// Package recipe contains the core domain logic for recipe matching.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"sort"
	"time"
)

// Recipe represents a single recipe from the dataset. It is immutable
// once constructed; mutating setters exist only for the loading phase
// and validate their inputs.
type Recipe struct {
	id   string
	name string

	// Required ingredients, normalized. The ordered slice preserves
	// dataset order for display; the set drives matching.
	ingredients   []string
	ingredientSet IngredientSet

	tags map[DietaryTag]struct{}

	cuisine    CuisineType
	difficulty DifficultyLevel
	cookTime   time.Duration
	servings   int

	instructions string
	nutrition    *NutritionFacts
}

// NewRecipe creates a new Recipe with validation. Ingredient tokens are
// normalized and deduplicated; dataset order of first occurrence is kept.
func NewRecipe(id, name string, ingredients []string) (*Recipe, error) {
	if Normalize(id) == "" {
		return nil, ErrEmptyID
	}
	if Normalize(name) == "" {
		return nil, ErrEmptyName
	}

	set := make(IngredientSet, len(ingredients))
	ordered := make([]string, 0, len(ingredients))
	for _, raw := range ingredients {
		n := Normalize(raw)
		if n == "" {
			continue
		}
		if _, seen := set[n]; seen {
			continue
		}
		set[n] = struct{}{}
		ordered = append(ordered, n)
	}
	if len(ordered) == 0 {
		return nil, ErrNoIngredients
	}

	return &Recipe{
		id:            Normalize(id),
		name:          name,
		ingredients:   ordered,
		ingredientSet: set,
		tags:          make(map[DietaryTag]struct{}),
		cuisine:       CuisineOther,
		difficulty:    DifficultyMedium,
	}, nil
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() string {
	return r.id
}

// Name returns the recipe's display name
func (r *Recipe) Name() string {
	return r.name
}

// Ingredients returns a copy of the required ingredient list
func (r *Recipe) Ingredients() []string {
	out := make([]string, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// RequiredCount returns the number of distinct required ingredients
func (r *Recipe) RequiredCount() int {
	return len(r.ingredientSet)
}

// Requires reports whether the recipe requires the given ingredient
func (r *Recipe) Requires(ingredient string) bool {
	return r.ingredientSet.Contains(ingredient)
}

// AddDietaryTag tags the recipe with a dietary classification
func (r *Recipe) AddDietaryTag(tag DietaryTag) {
	r.tags[tag] = struct{}{}
}

// DietaryTags returns the recipe's dietary tags in lexical order
func (r *Recipe) DietaryTags() []DietaryTag {
	out := make([]DietaryTag, 0, len(r.tags))
	for tag := range r.tags {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SatisfiesDiet reports whether any of the recipe's tags satisfies the
// requested dietary filter.
func (r *Recipe) SatisfiesDiet(filter DietaryTag) bool {
	for tag := range r.tags {
		if tag.Satisfies(filter) {
			return true
		}
	}
	return false
}

// SetCuisine sets the recipe's cuisine
func (r *Recipe) SetCuisine(cuisine CuisineType) {
	r.cuisine = cuisine
}

// Cuisine returns the recipe's cuisine
func (r *Recipe) Cuisine() CuisineType {
	return r.cuisine
}

// SetDifficulty sets the recipe's difficulty level
func (r *Recipe) SetDifficulty(difficulty DifficultyLevel) {
	r.difficulty = difficulty
}

// Difficulty returns the recipe's difficulty level
func (r *Recipe) Difficulty() DifficultyLevel {
	return r.difficulty
}

// SetCookTime sets the total cooking time
func (r *Recipe) SetCookTime(d time.Duration) error {
	if d < 0 {
		return ErrNegativeCookTime
	}
	r.cookTime = d
	return nil
}

// CookTime returns the total cooking time
func (r *Recipe) CookTime() time.Duration {
	return r.cookTime
}

// SetServings sets the number of servings
func (r *Recipe) SetServings(servings int) error {
	if servings <= 0 {
		return ErrInvalidServings
	}
	r.servings = servings
	return nil
}

// Servings returns the number of servings
func (r *Recipe) Servings() int {
	return r.servings
}

// SetInstructions sets the preparation instructions
func (r *Recipe) SetInstructions(instructions string) {
	r.instructions = instructions
}

// Instructions returns the preparation instructions
func (r *Recipe) Instructions() string {
	return r.instructions
}

// SetNutrition attaches nutrition facts after validating them
func (r *Recipe) SetNutrition(n NutritionFacts) error {
	if err := n.Validate(); err != nil {
		return err
	}
	facts := n
	r.nutrition = &facts
	return nil
}

// Nutrition returns the nutrition facts, or nil when unknown
func (r *Recipe) Nutrition() *NutritionFacts {
	if r.nutrition == nil {
		return nil
	}
	facts := *r.nutrition
	return &facts
}

// MatchScore returns the fraction of required ingredients present in the
// available set. The result is always in [0,1].
func (r *Recipe) MatchScore(available IngredientSet) float64 {
	if len(r.ingredientSet) == 0 {
		return 0
	}
	hits := r.ingredientSet.IntersectionSize(available)
	return float64(hits) / float64(len(r.ingredientSet))
}

// Similarity returns the Jaccard similarity between this recipe's
// required ingredients and another's.
func (r *Recipe) Similarity(other *Recipe) float64 {
	union := len(r.ingredientSet) + len(other.ingredientSet)
	hits := r.ingredientSet.IntersectionSize(other.ingredientSet)
	union -= hits
	if union == 0 {
		return 0
	}
	return float64(hits) / float64(union)
}
