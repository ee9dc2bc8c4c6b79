package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantrio/pantrio/internal/application/train"
	"github.com/pantrio/pantrio/internal/ports/inbound"
)

var (
	trainData         string
	trainFolds        int
	trainTestFraction float64
	trainForestSizes  []int
)

// trainCmd runs the Random Forest training pipeline
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train and evaluate a Random Forest on a tabular CSV dataset",
	Long: `Train a Random Forest classifier on a CSV dataset whose last column is
the class label. Hyperparameters are grid-searched by cross-validated
accuracy; the report covers CV accuracy, held-out test accuracy, the
confusion matrix and per-class precision/recall/F1.`,
	Args: cobra.NoArgs,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainData, "data", "", "CSV dataset path (default: configured train.data_path)")
	trainCmd.Flags().IntVar(&trainFolds, "folds", 0, "cross-validation folds")
	trainCmd.Flags().Float64Var(&trainTestFraction, "test-fraction", 0, "held-out test fraction")
	trainCmd.Flags().IntSliceVar(&trainForestSizes, "trees", nil, "forest sizes to grid-search")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, args []string) error {
	trainCfg := app.cfg.Train

	trainCommand := inbound.TrainCommand{
		DataPath:     trainCfg.DataPath,
		Folds:        trainCfg.Folds,
		TestFraction: trainCfg.TestFraction,
		ForestSizes:  trainCfg.ForestSizes,
	}
	if trainData != "" {
		trainCommand.DataPath = trainData
	}
	if trainFolds > 0 {
		trainCommand.Folds = trainFolds
	}
	if trainTestFraction > 0 {
		trainCommand.TestFraction = trainTestFraction
	}
	if len(trainForestSizes) > 0 {
		trainCommand.ForestSizes = trainForestSizes
	}

	service := train.NewService(app.logger)
	report, err := service.Train(cmd.Context(), trainCommand)
	if err != nil {
		return err
	}

	fmt.Print(train.FormatReport(report))
	return nil
}
