package recipe

import (
	"errors"
	"sort"
	"strings"
)

// Value Objects - Immutable objects that describe aspects of the domain

// Normalize canonicalizes an ingredient or tag token: lowercase, trimmed.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IngredientSet is a case-insensitive set of ingredient names.
type IngredientSet map[string]struct{}

// NewIngredientSet builds a set from raw tokens, normalizing each and
// dropping empties.
func NewIngredientSet(raw []string) IngredientSet {
	set := make(IngredientSet, len(raw))
	for _, item := range raw {
		if n := Normalize(item); n != "" {
			set[n] = struct{}{}
		}
	}
	return set
}

// Contains reports whether the set holds the (normalized) ingredient.
func (s IngredientSet) Contains(ingredient string) bool {
	_, ok := s[Normalize(ingredient)]
	return ok
}

// Len returns the number of distinct ingredients.
func (s IngredientSet) Len() int {
	return len(s)
}

// IntersectionSize counts ingredients present in both sets.
func (s IngredientSet) IntersectionSize(other IngredientSet) int {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	count := 0
	for item := range small {
		if _, ok := large[item]; ok {
			count++
		}
	}
	return count
}

// Sorted returns the set members in lexical order.
func (s IngredientSet) Sorted() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// DietaryTag represents a dietary classification of a recipe
type DietaryTag string

const (
	DietaryTagVegan       DietaryTag = "vegan"
	DietaryTagVegetarian  DietaryTag = "vegetarian"
	DietaryTagPescatarian DietaryTag = "pescatarian"
	DietaryTagGlutenFree  DietaryTag = "gluten-free"
	DietaryTagDairyFree   DietaryTag = "dairy-free"
	DietaryTagNutFree     DietaryTag = "nut-free"
)

// ParseDietaryTag maps a raw filter value to a known tag. The boolean is
// false for unknown values; callers treat those as "matches nothing"
// rather than as an error.
func ParseDietaryTag(raw string) (DietaryTag, bool) {
	switch strings.ReplaceAll(Normalize(raw), "_", "-") {
	case "vegan":
		return DietaryTagVegan, true
	case "vegetarian", "veggie":
		return DietaryTagVegetarian, true
	case "pescatarian":
		return DietaryTagPescatarian, true
	case "gluten-free", "glutenfree":
		return DietaryTagGlutenFree, true
	case "dairy-free", "dairyfree":
		return DietaryTagDairyFree, true
	case "nut-free", "nutfree":
		return DietaryTagNutFree, true
	default:
		return "", false
	}
}

// Satisfies reports whether a recipe carrying this tag satisfies the
// requested filter. Vegan recipes satisfy a vegetarian filter; the
// converse does not hold.
func (t DietaryTag) Satisfies(filter DietaryTag) bool {
	if t == filter {
		return true
	}
	return filter == DietaryTagVegetarian && t == DietaryTagVegan
}

// CuisineType represents different cuisine types
type CuisineType string

const (
	CuisineItalian       CuisineType = "italian"
	CuisineFrench        CuisineType = "french"
	CuisineChinese       CuisineType = "chinese"
	CuisineJapanese      CuisineType = "japanese"
	CuisineIndian        CuisineType = "indian"
	CuisineMexican       CuisineType = "mexican"
	CuisineAmerican      CuisineType = "american"
	CuisineMediterranean CuisineType = "mediterranean"
	CuisineThai          CuisineType = "thai"
	CuisineTurkish       CuisineType = "turkish"
	CuisineOther         CuisineType = "other"
)

// ParseCuisine maps a raw filter value to a known cuisine type.
func ParseCuisine(raw string) (CuisineType, bool) {
	switch CuisineType(Normalize(raw)) {
	case CuisineItalian, CuisineFrench, CuisineChinese, CuisineJapanese,
		CuisineIndian, CuisineMexican, CuisineAmerican, CuisineMediterranean,
		CuisineThai, CuisineTurkish, CuisineOther:
		return CuisineType(Normalize(raw)), true
	default:
		return "", false
	}
}

// DifficultyLevel represents recipe difficulty
type DifficultyLevel string

const (
	DifficultyEasy   DifficultyLevel = "easy"
	DifficultyMedium DifficultyLevel = "medium"
	DifficultyHard   DifficultyLevel = "hard"
	DifficultyExpert DifficultyLevel = "expert"
)

// ParseDifficulty maps a raw skill value to a difficulty level. Common
// skill-level synonyms are folded in.
func ParseDifficulty(raw string) (DifficultyLevel, bool) {
	switch Normalize(raw) {
	case "easy", "beginner":
		return DifficultyEasy, true
	case "medium", "intermediate":
		return DifficultyMedium, true
	case "hard", "advanced":
		return DifficultyHard, true
	case "expert":
		return DifficultyExpert, true
	default:
		return "", false
	}
}

// NutritionFacts contains nutritional information per serving
type NutritionFacts struct {
	Calories      int
	Protein       float64 // in grams
	Carbohydrates float64 // in grams
	Fat           float64 // in grams
	Fiber         float64 // in grams
	Sugar         float64 // in grams
	Sodium        float64 // in milligrams
}

// Validate validates the nutrition facts
func (n NutritionFacts) Validate() error {
	if n.Calories < 0 {
		return errors.New("calories cannot be negative")
	}
	if n.Protein < 0 || n.Carbohydrates < 0 || n.Fat < 0 ||
		n.Fiber < 0 || n.Sugar < 0 || n.Sodium < 0 {
		return errors.New("nutrition values cannot be negative")
	}
	return nil
}
