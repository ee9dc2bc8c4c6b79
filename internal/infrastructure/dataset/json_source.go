package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/pantrio/pantrio/internal/domain/recipe"
	apperrors "github.com/pantrio/pantrio/pkg/errors"
)

// JSONSource loads the recipe dataset from a read-only JSON flat file.
type JSONSource struct {
	path   string
	logger *zap.Logger
}

// NewJSONSource creates a JSON dataset source
func NewJSONSource(path string, logger *zap.Logger) *JSONSource {
	return &JSONSource{
		path:   path,
		logger: logger.Named("dataset-json"),
	}
}

// Load reads and parses the dataset file. A missing file is fatal for
// the caller and reported with a dedicated error code.
func (s *JSONSource) Load(ctx context.Context) (*recipe.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewDatasetNotFoundError(s.path)
		}
		return nil, apperrors.NewStorageError("read dataset file", err)
	}

	var file datasetFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, apperrors.NewStorageError("parse dataset file", err)
	}

	ds, err := buildDataset(file.Recipes)
	if err != nil {
		return nil, apperrors.NewStorageError("build dataset", err)
	}

	s.logger.Info("loaded recipe dataset",
		zap.String("path", s.path),
		zap.Int("recipes", ds.Len()),
	)
	return ds, nil
}
