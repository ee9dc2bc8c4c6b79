// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"

	"github.com/pantrio/pantrio/internal/domain/profile"
)

// RecommendService defines the recipe matching use cases.
// This is the primary port the CLI commands drive.
type RecommendService interface {
	// Rank scores every eligible recipe against the query's available
	// ingredients and returns the ranked, truncated result list.
	Rank(ctx context.Context, query RecommendationQuery) ([]RecommendationResult, error)

	// RankPersonalized is Rank with profile boosts applied. Reported
	// scores are renormalized to stay within [0,1].
	RankPersonalized(ctx context.Context, prof *profile.Profile, query RecommendationQuery) ([]RecommendationResult, error)

	// RecommendFromProfile ranks recipes by average ingredient
	// similarity to the profile's liked recipes.
	RecommendFromProfile(ctx context.Context, prof *profile.Profile, limit int) ([]RecommendationResult, error)

	// SimilarTo ranks other recipes by ingredient similarity to a seed
	// recipe.
	SimilarTo(ctx context.Context, recipeID string, limit int) ([]RecommendationResult, error)
}

// RecommendationQuery carries the user's available ingredients and
// optional eligibility filters. Zero-valued filters are inactive.
type RecommendationQuery struct {
	Ingredients []string
	Diet        string
	Cuisine     string
	Skill       string
	Limit       int
}

// RecommendationResult is one ranked recipe with its match score
type RecommendationResult struct {
	RecipeID string
	Name     string
	Score    float64
}
