// Package recommend provides the application layer for recipe matching.
// This implements the use cases defined in the inbound ports.
package recommend

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/pantrio/pantrio/internal/domain/profile"
	"github.com/pantrio/pantrio/internal/domain/recipe"
	"github.com/pantrio/pantrio/internal/ports/inbound"
)

// DefaultLimit caps result lists when the query does not set one.
const DefaultLimit = 100

// Profile boost factors applied by RankPersonalized and
// RecommendFromProfile.
const (
	likedBoost             = 1.5
	dislikedPenalty        = 0.2
	favoriteIngredientStep = 0.1
	preferredCuisineBoost  = 1.3
)

// Service implements the recommendation use cases over an immutable
// dataset.
type Service struct {
	dataset *recipe.Dataset
	logger  *zap.Logger
}

// NewService creates a new recommendation service
func NewService(dataset *recipe.Dataset, logger *zap.Logger) inbound.RecommendService {
	return &Service{
		dataset: dataset,
		logger:  logger.Named("recommend-service"),
	}
}

// eligibility holds the parsed query filters. ok is false when any
// filter value is unknown, which matches nothing by definition.
type eligibility struct {
	diet       *recipe.DietaryTag
	cuisine    *recipe.CuisineType
	difficulty *recipe.DifficultyLevel
	ok         bool
}

func parseFilters(query inbound.RecommendationQuery) eligibility {
	e := eligibility{ok: true}
	if query.Diet != "" {
		tag, ok := recipe.ParseDietaryTag(query.Diet)
		if !ok {
			e.ok = false
			return e
		}
		e.diet = &tag
	}
	if query.Cuisine != "" {
		cuisine, ok := recipe.ParseCuisine(query.Cuisine)
		if !ok {
			e.ok = false
			return e
		}
		e.cuisine = &cuisine
	}
	if query.Skill != "" {
		difficulty, ok := recipe.ParseDifficulty(query.Skill)
		if !ok {
			e.ok = false
			return e
		}
		e.difficulty = &difficulty
	}
	return e
}

func (e eligibility) admits(r *recipe.Recipe) bool {
	if e.diet != nil && !r.SatisfiesDiet(*e.diet) {
		return false
	}
	if e.cuisine != nil && r.Cuisine() != *e.cuisine {
		return false
	}
	if e.difficulty != nil && r.Difficulty() != *e.difficulty {
		return false
	}
	return true
}

// Rank scores every eligible recipe by ingredient overlap. An empty
// ingredient set or an unknown filter value yields an empty result, not
// an error.
func (s *Service) Rank(ctx context.Context, query inbound.RecommendationQuery) ([]inbound.RecommendationResult, error) {
	available := recipe.NewIngredientSet(query.Ingredients)
	if available.Len() == 0 {
		s.logger.Debug("empty ingredient set, nothing to match")
		return nil, nil
	}

	filters := parseFilters(query)
	if !filters.ok {
		s.logger.Debug("unknown filter value, matching nothing",
			zap.String("diet", query.Diet),
			zap.String("cuisine", query.Cuisine),
			zap.String("skill", query.Skill),
		)
		return nil, nil
	}

	var results []inbound.RecommendationResult
	for _, r := range s.dataset.All() {
		if !filters.admits(r) {
			continue
		}
		score := r.MatchScore(available)
		if score == 0 {
			continue
		}
		results = append(results, inbound.RecommendationResult{
			RecipeID: r.ID(),
			Name:     r.Name(),
			Score:    score,
		})
	}

	s.logger.Info("ranked recipes",
		zap.Int("candidates", s.dataset.Len()),
		zap.Int("matches", len(results)),
	)

	return truncate(rank(results), limitOrDefault(query.Limit)), nil
}

// RankPersonalized applies profile boosts on top of the base match
// score. Adjusted scores are renormalized by the best adjusted score so
// the reported values remain within [0,1].
func (s *Service) RankPersonalized(ctx context.Context, prof *profile.Profile, query inbound.RecommendationQuery) ([]inbound.RecommendationResult, error) {
	available := recipe.NewIngredientSet(query.Ingredients)
	if available.Len() == 0 {
		return nil, nil
	}

	filters := parseFilters(query)
	if !filters.ok {
		return nil, nil
	}

	var results []inbound.RecommendationResult
	for _, r := range s.dataset.All() {
		if !filters.admits(r) {
			continue
		}
		base := r.MatchScore(available)
		if base == 0 {
			continue
		}
		results = append(results, inbound.RecommendationResult{
			RecipeID: r.ID(),
			Name:     r.Name(),
			Score:    base * boostFor(prof, r),
		})
	}

	return truncate(rank(normalize(results)), limitOrDefault(query.Limit)), nil
}

// RecommendFromProfile ranks recipes by their average ingredient
// similarity to the profile's liked recipes, boosted by the remaining
// profile preferences. Already-liked recipes are excluded.
func (s *Service) RecommendFromProfile(ctx context.Context, prof *profile.Profile, limit int) ([]inbound.RecommendationResult, error) {
	liked := make([]*recipe.Recipe, 0, len(prof.LikedRecipes()))
	for _, id := range prof.LikedRecipes() {
		r, err := s.dataset.ByID(id)
		if err != nil {
			// Liked recipe no longer in the dataset; skip it.
			continue
		}
		liked = append(liked, r)
	}
	if len(liked) == 0 {
		s.logger.Debug("no liked recipes in dataset, nothing to recommend")
		return nil, nil
	}

	var results []inbound.RecommendationResult
	for _, r := range s.dataset.All() {
		if prof.IsLiked(r.ID()) {
			continue
		}
		var total float64
		for _, seed := range liked {
			total += r.Similarity(seed)
		}
		score := total / float64(len(liked))
		if score == 0 {
			continue
		}
		results = append(results, inbound.RecommendationResult{
			RecipeID: r.ID(),
			Name:     r.Name(),
			Score:    score * boostFor(prof, r),
		})
	}

	return truncate(rank(normalize(results)), limitOrDefault(limit)), nil
}

// SimilarTo ranks other recipes by ingredient similarity to the seed.
func (s *Service) SimilarTo(ctx context.Context, recipeID string, limit int) ([]inbound.RecommendationResult, error) {
	seed, err := s.dataset.ByID(recipeID)
	if err != nil {
		return nil, err
	}

	var results []inbound.RecommendationResult
	for _, r := range s.dataset.All() {
		if r.ID() == seed.ID() {
			continue
		}
		score := r.Similarity(seed)
		if score == 0 {
			continue
		}
		results = append(results, inbound.RecommendationResult{
			RecipeID: r.ID(),
			Name:     r.Name(),
			Score:    score,
		})
	}

	return truncate(rank(results), limitOrDefault(limit)), nil
}

// boostFor computes the profile multiplier for a recipe: liked x1.5,
// disliked x0.2, +10% per favorite ingredient the recipe requires, and
// x1.3 for a preferred cuisine.
func boostFor(prof *profile.Profile, r *recipe.Recipe) float64 {
	boost := 1.0
	if prof.IsLiked(r.ID()) {
		boost *= likedBoost
	} else if prof.IsDisliked(r.ID()) {
		boost *= dislikedPenalty
	}
	favorites := prof.FavoriteIngredients()
	if shared := favorites.IntersectionSize(recipe.NewIngredientSet(r.Ingredients())); shared > 0 {
		boost *= 1.0 + favoriteIngredientStep*float64(shared)
	}
	if prof.PrefersCuisine(r.Cuisine()) {
		boost *= preferredCuisineBoost
	}
	return boost
}

// rank orders results by descending score, ties broken by ascending
// recipe id for determinism.
func rank(results []inbound.RecommendationResult) []inbound.RecommendationResult {
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].RecipeID < results[j].RecipeID
	})
	return results
}

// normalize rescales scores by the maximum so boosted values fall back
// into [0,1]. Relative order is unchanged.
func normalize(results []inbound.RecommendationResult) []inbound.RecommendationResult {
	var max float64
	for _, res := range results {
		if res.Score > max {
			max = res.Score
		}
	}
	if max <= 0 {
		return results
	}
	for i := range results {
		results[i].Score /= max
	}
	return results
}

func truncate(results []inbound.RecommendationResult, limit int) []inbound.RecommendationResult {
	if len(results) > limit {
		return results[:limit]
	}
	return results
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
