// Package profile contains the user preference domain model used for
// personalized recommendations.
package profile

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/pantrio/pantrio/internal/domain/recipe"
)

// Profile captures a user's accumulated preferences. Liked and disliked
// sets are kept disjoint; liking a recipe folds its ingredients and
// cuisine into the favorite sets.
type Profile struct {
	favoriteIngredients recipe.IngredientSet
	likedRecipes        []string
	dislikedRecipes     []string
	preferredCuisines   map[recipe.CuisineType]struct{}
}

// NewProfile creates an empty profile
func NewProfile() *Profile {
	return &Profile{
		favoriteIngredients: make(recipe.IngredientSet),
		preferredCuisines:   make(map[recipe.CuisineType]struct{}),
	}
}

// Restore rebuilds a profile from persisted state
func Restore(favorites, liked, disliked []string, cuisines []string) *Profile {
	p := NewProfile()
	p.favoriteIngredients = recipe.NewIngredientSet(favorites)
	for _, id := range liked {
		if n := recipe.Normalize(id); n != "" && !p.IsLiked(n) {
			p.likedRecipes = append(p.likedRecipes, n)
		}
	}
	for _, id := range disliked {
		n := recipe.Normalize(id)
		if n != "" && !p.IsLiked(n) && !p.IsDisliked(n) {
			p.dislikedRecipes = append(p.dislikedRecipes, n)
		}
	}
	for _, c := range cuisines {
		if parsed, ok := recipe.ParseCuisine(c); ok {
			p.preferredCuisines[parsed] = struct{}{}
		}
	}
	return p
}

// Like records a positive preference for the recipe. A standing dislike
// is withdrawn first. Returns false when the recipe was already liked.
func (p *Profile) Like(r *recipe.Recipe) bool {
	if p.IsLiked(r.ID()) {
		return false
	}
	p.dislikedRecipes = remove(p.dislikedRecipes, r.ID())
	p.likedRecipes = append(p.likedRecipes, r.ID())
	for _, ing := range r.Ingredients() {
		p.favoriteIngredients[ing] = struct{}{}
	}
	p.preferredCuisines[r.Cuisine()] = struct{}{}
	return true
}

// Dislike records a negative preference for the recipe. A standing like
// is withdrawn first. Returns false when the recipe was already disliked.
func (p *Profile) Dislike(r *recipe.Recipe) bool {
	if p.IsDisliked(r.ID()) {
		return false
	}
	p.likedRecipes = remove(p.likedRecipes, r.ID())
	p.dislikedRecipes = append(p.dislikedRecipes, r.ID())
	return true
}

// IsLiked reports whether the recipe id is in the liked set
func (p *Profile) IsLiked(id string) bool {
	return contains(p.likedRecipes, recipe.Normalize(id))
}

// IsDisliked reports whether the recipe id is in the disliked set
func (p *Profile) IsDisliked(id string) bool {
	return contains(p.dislikedRecipes, recipe.Normalize(id))
}

// LikedRecipes returns liked recipe ids in like order (oldest first)
func (p *Profile) LikedRecipes() []string {
	out := make([]string, len(p.likedRecipes))
	copy(out, p.likedRecipes)
	return out
}

// DislikedRecipes returns disliked recipe ids in dislike order
func (p *Profile) DislikedRecipes() []string {
	out := make([]string, len(p.dislikedRecipes))
	copy(out, p.dislikedRecipes)
	return out
}

// FavoriteIngredients returns the favorite ingredient set
func (p *Profile) FavoriteIngredients() recipe.IngredientSet {
	out := make(recipe.IngredientSet, len(p.favoriteIngredients))
	for ing := range p.favoriteIngredients {
		out[ing] = struct{}{}
	}
	return out
}

// PreferredCuisines returns the preferred cuisines, sorted
func (p *Profile) PreferredCuisines() []recipe.CuisineType {
	out := make([]recipe.CuisineType, 0, len(p.preferredCuisines))
	for c := range p.preferredCuisines {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PrefersCuisine reports whether the cuisine is preferred
func (p *Profile) PrefersCuisine(c recipe.CuisineType) bool {
	_, ok := p.preferredCuisines[c]
	return ok
}

// IsEmpty reports whether the profile has no recorded preferences
func (p *Profile) IsEmpty() bool {
	return len(p.likedRecipes) == 0 && len(p.dislikedRecipes) == 0 &&
		len(p.favoriteIngredients) == 0
}

func contains(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// FeedbackKind distinguishes like and dislike ledger entries
type FeedbackKind string

const (
	FeedbackLike    FeedbackKind = "like"
	FeedbackDislike FeedbackKind = "dislike"
)

// FeedbackRecord is a single ledger entry
type FeedbackRecord struct {
	ID        uuid.UUID
	RecipeID  string
	Kind      FeedbackKind
	CreatedAt time.Time
}

// FeedbackCounts aggregates likes and dislikes for one recipe
type FeedbackCounts struct {
	Likes    int
	Dislikes int
}

// Ledger tracks per-recipe feedback counters plus an append-only record
// trail of mutations.
type Ledger struct {
	counts  map[string]FeedbackCounts
	records []FeedbackRecord
}

// NewLedger creates an empty ledger
func NewLedger() *Ledger {
	return &Ledger{counts: make(map[string]FeedbackCounts)}
}

// RestoreLedger rebuilds a ledger from persisted state
func RestoreLedger(counts map[string]FeedbackCounts, records []FeedbackRecord) *Ledger {
	l := NewLedger()
	for id, c := range counts {
		l.counts[recipe.Normalize(id)] = c
	}
	l.records = append(l.records, records...)
	return l
}

// RecordLike increments the like counter. When the like replaces a
// standing dislike, the dislike counter is decremented, never below zero.
func (l *Ledger) RecordLike(recipeID string, replacesDislike bool) FeedbackRecord {
	id := recipe.Normalize(recipeID)
	c := l.counts[id]
	c.Likes++
	if replacesDislike && c.Dislikes > 0 {
		c.Dislikes--
	}
	l.counts[id] = c
	return l.append(id, FeedbackLike)
}

// RecordDislike increments the dislike counter, mirroring RecordLike.
func (l *Ledger) RecordDislike(recipeID string, replacesLike bool) FeedbackRecord {
	id := recipe.Normalize(recipeID)
	c := l.counts[id]
	c.Dislikes++
	if replacesLike && c.Likes > 0 {
		c.Likes--
	}
	l.counts[id] = c
	return l.append(id, FeedbackDislike)
}

// Counts returns the counters for a recipe
func (l *Ledger) Counts(recipeID string) FeedbackCounts {
	return l.counts[recipe.Normalize(recipeID)]
}

// AllCounts returns a copy of every per-recipe counter
func (l *Ledger) AllCounts() map[string]FeedbackCounts {
	out := make(map[string]FeedbackCounts, len(l.counts))
	for id, c := range l.counts {
		out[id] = c
	}
	return out
}

// Records returns the record trail, oldest first
func (l *Ledger) Records() []FeedbackRecord {
	out := make([]FeedbackRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) append(recipeID string, kind FeedbackKind) FeedbackRecord {
	rec := FeedbackRecord{
		ID:        uuid.New(),
		RecipeID:  recipeID,
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
	}
	l.records = append(l.records, rec)
	return rec
}
