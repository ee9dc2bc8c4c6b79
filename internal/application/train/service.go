// Package train provides the model training use case. The classifier,
// cross-validation and metric computations are delegated to the golearn
// library; this layer orchestrates the grid search and assembles the
// report.
package train

import (
	"context"
	"math"
	"os"
	"sort"

	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/ensemble"
	"github.com/sjwhitworth/golearn/evaluation"
	"go.uber.org/zap"

	apperrors "github.com/pantrio/pantrio/pkg/errors"

	"github.com/pantrio/pantrio/internal/ports/inbound"
)

// Defaults mirroring the usual supervised-learning setup: 5-fold CV,
// 80/20 train/test split, forests of 100 and 200 trees.
const (
	DefaultFolds        = 5
	DefaultTestFraction = 0.2
)

// DefaultForestSizes are the grid-search candidates for forest size
var DefaultForestSizes = []int{100, 200}

// Service implements the trainer use case
type Service struct {
	logger *zap.Logger
}

// NewService creates a new trainer service
func NewService(logger *zap.Logger) inbound.TrainerService {
	return &Service{logger: logger.Named("trainer-service")}
}

// Train loads the CSV dataset, grid-searches Random Forest
// hyperparameters by cross-validated accuracy, refits the best model and
// evaluates it on the held-out split.
func (s *Service) Train(ctx context.Context, cmd inbound.TrainCommand) (*inbound.TrainingReport, error) {
	cmd = withDefaults(cmd)
	if err := validate(cmd); err != nil {
		return nil, err
	}

	if _, err := os.Stat(cmd.DataPath); os.IsNotExist(err) {
		return nil, apperrors.NewDatasetNotFoundError(cmd.DataPath)
	}

	instances, err := base.ParseCSVToInstances(cmd.DataPath, true)
	if err != nil {
		return nil, apperrors.NewTrainingError("dataset parsing", err)
	}

	featureCount := len(base.NonClassAttributes(instances))
	_, rows := instances.Size()
	s.logger.Info("loaded training data",
		zap.String("path", cmd.DataPath),
		zap.Int("rows", rows),
		zap.Int("features", featureCount),
	)

	trainData, testData := base.InstancesTrainTestSplit(instances, cmd.TestFraction)

	best, err := s.gridSearch(ctx, trainData, cmd, featureCount)
	if err != nil {
		return nil, err
	}

	// Refit the winning configuration on the full training split.
	forest := ensemble.NewRandomForest(best.forestSize, best.features)
	if err := forest.Fit(trainData); err != nil {
		return nil, apperrors.NewTrainingError("final fit", err)
	}
	predictions, err := forest.Predict(testData)
	if err != nil {
		return nil, apperrors.NewTrainingError("prediction", err)
	}
	confusion, err := evaluation.GetConfusionMatrix(testData, predictions)
	if err != nil {
		return nil, apperrors.NewTrainingError("evaluation", err)
	}

	report := &inbound.TrainingReport{
		DataPath:       cmd.DataPath,
		Rows:           rows,
		FeatureCount:   featureCount,
		BestForestSize: best.forestSize,
		BestFeatures:   best.features,
		CVAccuracy:     best.cvAccuracy,
		CVVariance:     best.cvVariance,
		TestAccuracy:   evaluation.GetAccuracy(confusion),
		ClassMetrics:   classMetrics(confusion),
		Summary:        evaluation.GetSummary(confusion),
	}

	s.logger.Info("training complete",
		zap.Int("forest_size", report.BestForestSize),
		zap.Int("features_per_split", report.BestFeatures),
		zap.Float64("cv_accuracy", report.CVAccuracy),
		zap.Float64("test_accuracy", report.TestAccuracy),
	)

	return report, nil
}

type candidate struct {
	forestSize int
	features   int
	cvAccuracy float64
	cvVariance float64
}

// gridSearch evaluates every forest size against every feature-subset
// size by k-fold cross-validation and returns the configuration with the
// best mean accuracy.
func (s *Service) gridSearch(ctx context.Context, trainData base.FixedDataGrid, cmd inbound.TrainCommand, featureCount int) (candidate, error) {
	best := candidate{cvAccuracy: -1}
	for _, size := range cmd.ForestSizes {
		for _, features := range featureGrid(featureCount) {
			if err := ctx.Err(); err != nil {
				return candidate{}, apperrors.NewTrainingError("grid search", err)
			}
			forest := ensemble.NewRandomForest(size, features)
			confusions, err := evaluation.GenerateCrossFoldValidationConfusionMatrices(trainData, forest, cmd.Folds)
			if err != nil {
				return candidate{}, apperrors.NewTrainingError("cross-validation", err)
			}
			mean, variance := evaluation.GetCrossValidatedMetric(confusions, evaluation.GetAccuracy)
			s.logger.Debug("grid search candidate",
				zap.Int("forest_size", size),
				zap.Int("features_per_split", features),
				zap.Float64("cv_accuracy", mean),
			)
			if mean > best.cvAccuracy {
				best = candidate{forestSize: size, features: features, cvAccuracy: mean, cvVariance: variance}
			}
		}
	}
	if best.cvAccuracy < 0 {
		return candidate{}, apperrors.NewTrainingError("grid search", nil)
	}
	return best, nil
}

// featureGrid returns the feature-subset sizes to try: sqrt(p), p/2 and
// p, deduplicated and at least 1.
func featureGrid(featureCount int) []int {
	raw := []int{
		int(math.Round(math.Sqrt(float64(featureCount)))),
		featureCount / 2,
		featureCount,
	}
	seen := make(map[int]struct{})
	var grid []int
	for _, n := range raw {
		if n < 1 {
			n = 1
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		grid = append(grid, n)
	}
	sort.Ints(grid)
	return grid
}

func classMetrics(confusion map[string]map[string]int) []inbound.ClassMetrics {
	classes := make([]string, 0, len(confusion))
	for class := range confusion {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	metrics := make([]inbound.ClassMetrics, 0, len(classes))
	for _, class := range classes {
		metrics = append(metrics, inbound.ClassMetrics{
			Class:     class,
			Precision: evaluation.GetPrecision(class, confusion),
			Recall:    evaluation.GetRecall(class, confusion),
			F1:        evaluation.GetF1Score(class, confusion),
		})
	}
	return metrics
}

func withDefaults(cmd inbound.TrainCommand) inbound.TrainCommand {
	if cmd.Folds == 0 {
		cmd.Folds = DefaultFolds
	}
	if cmd.TestFraction == 0 {
		cmd.TestFraction = DefaultTestFraction
	}
	if len(cmd.ForestSizes) == 0 {
		cmd.ForestSizes = append([]int(nil), DefaultForestSizes...)
	}
	return cmd
}

func validate(cmd inbound.TrainCommand) error {
	if cmd.DataPath == "" {
		return apperrors.NewValidationError("training data path is required")
	}
	if cmd.Folds < 2 {
		return apperrors.NewValidationError("cross-validation needs at least 2 folds")
	}
	if cmd.TestFraction <= 0 || cmd.TestFraction >= 1 {
		return apperrors.NewValidationError("test fraction must be in (0,1)")
	}
	for _, size := range cmd.ForestSizes {
		if size < 1 {
			return apperrors.NewValidationError("forest sizes must be positive")
		}
	}
	return nil
}
