package inbound

import "context"

// TrainerService defines the model training use case. The heavy lifting
// (classifier, cross-validation) is delegated to an external ML library;
// this port only orchestrates and reports.
type TrainerService interface {
	Train(ctx context.Context, cmd TrainCommand) (*TrainingReport, error)
}

// TrainCommand configures a training run
type TrainCommand struct {
	DataPath     string
	Folds        int
	TestFraction float64
	ForestSizes  []int
}

// ClassMetrics holds per-class evaluation results
type ClassMetrics struct {
	Class     string
	Precision float64
	Recall    float64
	F1        float64
}

// TrainingReport summarizes a completed training run
type TrainingReport struct {
	DataPath       string
	Rows           int
	FeatureCount   int
	BestForestSize int
	BestFeatures   int
	CVAccuracy     float64
	CVVariance     float64
	TestAccuracy   float64
	ClassMetrics   []ClassMetrics
	Summary        string
}
