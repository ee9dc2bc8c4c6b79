package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "Pantrio", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.True(t, cfg.IsDevelopment())

	assert.Equal(t, SourceJSON, cfg.Dataset.Source)
	assert.Equal(t, "data/recipes.json", cfg.Dataset.JSONPath)
	assert.Equal(t, "data/profile.json", cfg.Profile.Path)
	assert.Equal(t, 100, cfg.Recommend.Limit)

	assert.Equal(t, 5, cfg.Train.Folds)
	assert.Equal(t, 0.2, cfg.Train.TestFraction)
	assert.Equal(t, []int{100, 200}, cfg.Train.ForestSizes)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
dataset:
  source: sqlite
  sqlite_path: /tmp/recipes.db
recommend:
  limit: 25
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, SourceSQLite, cfg.Dataset.Source)
	assert.Equal(t, "/tmp/recipes.db", cfg.Dataset.SQLitePath)
	assert.Equal(t, 25, cfg.Recommend.Limit)
	// Untouched sections keep their defaults.
	assert.Equal(t, "data/profile.json", cfg.Profile.Path)
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dataset: ["), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Dataset:   DatasetConfig{Source: SourceJSON, JSONPath: "data/recipes.json"},
			Recommend: RecommendConfig{Limit: 10},
			Train:     TrainConfig{Folds: 5, TestFraction: 0.2},
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("UnknownSource", func(t *testing.T) {
		cfg := base()
		cfg.Dataset.Source = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("SQLiteRequiresPath", func(t *testing.T) {
		cfg := base()
		cfg.Dataset.Source = SourceSQLite
		assert.Error(t, cfg.Validate())
	})

	t.Run("LimitTooSmall", func(t *testing.T) {
		cfg := base()
		cfg.Recommend.Limit = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("BadTestFraction", func(t *testing.T) {
		cfg := base()
		cfg.Train.TestFraction = 1.5
		assert.Error(t, cfg.Validate())
	})
}
