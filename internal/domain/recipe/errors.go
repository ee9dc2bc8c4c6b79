package recipe

import "errors"

// Domain errors for recipe and dataset operations

var (
	// Entity validation errors
	ErrEmptyID          = errors.New("recipe id is required")
	ErrEmptyName        = errors.New("recipe name is required")
	ErrNoIngredients    = errors.New("recipe must require at least one ingredient")
	ErrInvalidServings  = errors.New("servings must be greater than 0")
	ErrNegativeCookTime = errors.New("cook time cannot be negative")

	// Dataset errors
	ErrDuplicateRecipeID = errors.New("duplicate recipe id in dataset")
	ErrRecipeNotFound    = errors.New("recipe not found")
)
