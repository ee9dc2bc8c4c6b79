// Command pantrio is the recipe recommender CLI: it matches available
// ingredients against a recipe dataset and also hosts the model
// training entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pantrio/pantrio/internal/domain/recipe"
	"github.com/pantrio/pantrio/internal/infrastructure/config"
	"github.com/pantrio/pantrio/internal/infrastructure/dataset"
	"github.com/pantrio/pantrio/internal/infrastructure/profilestore"
	"github.com/pantrio/pantrio/internal/ports/outbound"
	apperrors "github.com/pantrio/pantrio/pkg/errors"
	"github.com/pantrio/pantrio/pkg/logger"
)

var (
	cfgFile    string
	logLevel   string
	sourceFlag string
)

// app holds the per-invocation wiring built in the persistent pre-run.
var app struct {
	cfg    *config.Config
	logger *zap.Logger
}

var rootCmd = &cobra.Command{
	Use:   "pantrio",
	Short: "Recipe recommendations from the ingredients you have",
	Long: `Pantrio matches the ingredients you have on hand against a recipe
dataset and returns ranked suggestions, optionally filtered by diet,
cuisine and skill level. It also ships a Random Forest trainer for
tabular classification datasets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.App.LogLevel = logLevel
		}
		if sourceFlag != "" {
			cfg.Dataset.Source = sourceFlag
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		log, err := logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.IsDevelopment(),
		})
		if err != nil {
			return err
		}

		app.cfg = cfg
		app.logger = log
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ., ./config, /etc/pantrio)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "dataset backend: json or sqlite")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			os.Exit(appErr.ExitCode())
		}
		os.Exit(1)
	}
}

// loadDataset loads the recipe dataset from the configured backend.
func loadDataset(ctx context.Context) (*recipe.Dataset, error) {
	switch app.cfg.Dataset.Source {
	case config.SourceSQLite:
		src, err := dataset.OpenSQLiteExisting(app.cfg.Dataset.SQLitePath, app.logger)
		if err != nil {
			return nil, err
		}
		return src.Load(ctx)
	default:
		return dataset.NewJSONSource(app.cfg.Dataset.JSONPath, app.logger).Load(ctx)
	}
}

func newProfileStore() outbound.ProfileStore {
	return profilestore.NewJSONStore(app.cfg.Profile.Path, app.cfg.Profile.FeedbackPath, app.logger)
}

// splitIngredients accepts both space-separated args and comma-separated
// lists ("egg,flour milk" works either way).
func splitIngredients(args []string) []string {
	var out []string
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
