package dataset

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pantrio/pantrio/internal/domain/recipe"
	apperrors "github.com/pantrio/pantrio/pkg/errors"
)

// SQLiteSource loads and stores the recipe dataset in a single-file
// SQLite database. It implements both RecipeSource and RecipeSink; the
// sink side is used by `dataset seed` to import the JSON file.
type SQLiteSource struct {
	db     *gorm.DB
	path   string
	logger *zap.Logger
}

// OpenSQLite opens (or creates) the SQLite dataset file and runs
// auto-migration.
func OpenSQLite(path string, logger *zap.Logger) (*SQLiteSource, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, apperrors.NewStorageError("open sqlite database", err)
	}

	if err := db.AutoMigrate(&RecipeModel{}, &RecipeIngredientModel{}, &RecipeTagModel{}); err != nil {
		return nil, apperrors.NewStorageError("migrate sqlite database", err)
	}

	return &SQLiteSource{
		db:     db,
		path:   path,
		logger: logger.Named("dataset-sqlite"),
	}, nil
}

// OpenSQLiteExisting opens the SQLite dataset for reading and fails
// with a dataset-not-found error when the file does not exist yet.
func OpenSQLiteExisting(path string, logger *zap.Logger) (*SQLiteSource, error) {
	if path != ":memory:" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NewDatasetNotFoundError(path)
		}
	}
	return OpenSQLite(path, logger)
}

// Load reads all recipes from the database into an immutable dataset.
func (s *SQLiteSource) Load(ctx context.Context) (*recipe.Dataset, error) {
	var models []RecipeModel
	err := s.db.WithContext(ctx).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Tags").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.NewStorageError("query recipes", err)
	}

	records := make([]recipeRecord, 0, len(models))
	for _, model := range models {
		records = append(records, toRecord(model))
	}
	ds, err := buildDataset(records)
	if err != nil {
		return nil, apperrors.NewStorageError("build dataset", err)
	}

	s.logger.Info("loaded recipe dataset",
		zap.String("path", s.path),
		zap.Int("recipes", ds.Len()),
	)
	return ds, nil
}

// Store replaces the database contents with the given dataset.
func (s *SQLiteSource) Store(ctx context.Context, ds *recipe.Dataset) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&RecipeTagModel{}, &RecipeIngredientModel{}, &RecipeModel{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		for _, r := range ds.All() {
			model := toModel(r)
			if err := tx.Create(&model).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.NewStorageError("store dataset", err)
	}

	s.logger.Info("stored recipe dataset",
		zap.String("path", s.path),
		zap.Int("recipes", ds.Len()),
	)
	return nil
}
