// Package profilestore persists the user profile and feedback ledger as
// JSON flat files. Missing files mean an empty profile, never an error.
package profilestore

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pantrio/pantrio/internal/domain/profile"
	apperrors "github.com/pantrio/pantrio/pkg/errors"
)

// JSONStore reads and writes the profile and feedback files.
type JSONStore struct {
	profilePath  string
	feedbackPath string
	logger       *zap.Logger
}

// NewJSONStore creates a JSON-backed profile store
func NewJSONStore(profilePath, feedbackPath string, logger *zap.Logger) *JSONStore {
	return &JSONStore{
		profilePath:  profilePath,
		feedbackPath: feedbackPath,
		logger:       logger.Named("profile-store"),
	}
}

// profileDocument is the on-disk profile shape
type profileDocument struct {
	FavoriteIngredients []string `json:"favorite_ingredients"`
	LikedRecipes        []string `json:"liked_recipes"`
	DislikedRecipes     []string `json:"disliked_recipes"`
	PreferredCuisines   []string `json:"preferred_cuisines"`
}

// feedbackDocument is the on-disk ledger shape
type feedbackDocument struct {
	Recipes map[string]countsDocument `json:"recipes"`
	Records []recordDocument          `json:"records"`
}

type countsDocument struct {
	Likes    int `json:"likes"`
	Dislikes int `json:"dislikes"`
}

type recordDocument struct {
	ID        string    `json:"id"`
	RecipeID  string    `json:"recipe_id"`
	Kind      string    `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// LoadProfile reads the profile file, returning an empty profile when
// the file does not exist yet.
func (s *JSONStore) LoadProfile(ctx context.Context) (*profile.Profile, error) {
	var doc profileDocument
	found, err := s.readJSON(s.profilePath, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return profile.NewProfile(), nil
	}

	cuisines := make([]string, len(doc.PreferredCuisines))
	copy(cuisines, doc.PreferredCuisines)
	return profile.Restore(doc.FavoriteIngredients, doc.LikedRecipes, doc.DislikedRecipes, cuisines), nil
}

// SaveProfile writes the profile file
func (s *JSONStore) SaveProfile(ctx context.Context, prof *profile.Profile) error {
	doc := profileDocument{
		FavoriteIngredients: prof.FavoriteIngredients().Sorted(),
		LikedRecipes:        prof.LikedRecipes(),
		DislikedRecipes:     prof.DislikedRecipes(),
	}
	for _, c := range prof.PreferredCuisines() {
		doc.PreferredCuisines = append(doc.PreferredCuisines, string(c))
	}
	return s.writeJSON(s.profilePath, doc)
}

// LoadLedger reads the feedback file, returning an empty ledger when
// the file does not exist yet.
func (s *JSONStore) LoadLedger(ctx context.Context) (*profile.Ledger, error) {
	var doc feedbackDocument
	found, err := s.readJSON(s.feedbackPath, &doc)
	if err != nil {
		return nil, err
	}
	if !found {
		return profile.NewLedger(), nil
	}

	counts := make(map[string]profile.FeedbackCounts, len(doc.Recipes))
	for id, c := range doc.Recipes {
		counts[id] = profile.FeedbackCounts{Likes: c.Likes, Dislikes: c.Dislikes}
	}
	records := make([]profile.FeedbackRecord, 0, len(doc.Records))
	for _, rec := range doc.Records {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			// Corrupt record ids are dropped rather than failing the load.
			s.logger.Warn("skipping feedback record with invalid id",
				zap.String("id", rec.ID),
			)
			continue
		}
		records = append(records, profile.FeedbackRecord{
			ID:        id,
			RecipeID:  rec.RecipeID,
			Kind:      profile.FeedbackKind(rec.Kind),
			CreatedAt: rec.CreatedAt,
		})
	}
	return profile.RestoreLedger(counts, records), nil
}

// SaveLedger writes the feedback file
func (s *JSONStore) SaveLedger(ctx context.Context, ledger *profile.Ledger) error {
	doc := feedbackDocument{
		Recipes: make(map[string]countsDocument),
	}
	for id, c := range ledger.AllCounts() {
		doc.Recipes[id] = countsDocument{Likes: c.Likes, Dislikes: c.Dislikes}
	}
	for _, rec := range ledger.Records() {
		doc.Records = append(doc.Records, recordDocument{
			ID:        rec.ID.String(),
			RecipeID:  rec.RecipeID,
			Kind:      string(rec.Kind),
			CreatedAt: rec.CreatedAt,
		})
	}
	return s.writeJSON(s.feedbackPath, doc)
}

func (s *JSONStore) readJSON(path string, out interface{}) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, apperrors.NewStorageError("read "+filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, apperrors.NewStorageError("parse "+filepath.Base(path), err)
	}
	return true, nil
}

func (s *JSONStore) writeJSON(path string, doc interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return apperrors.NewStorageError("create data directory", err)
		}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.NewStorageError("encode "+filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.NewStorageError("write "+filepath.Base(path), err)
	}
	return nil
}
