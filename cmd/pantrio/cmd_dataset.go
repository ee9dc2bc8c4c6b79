package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pantrio/pantrio/internal/infrastructure/dataset"
)

var seedFrom string

// datasetCmd groups dataset maintenance subcommands
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Inspect and maintain the recipe dataset",
}

// datasetInfoCmd summarizes the configured dataset
var datasetInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Summarize the recipe dataset",
	Args:  cobra.NoArgs,
	RunE:  runDatasetInfo,
}

// datasetSeedCmd imports the JSON dataset into the SQLite backend
var datasetSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import the JSON dataset into the SQLite backend",
	Args:  cobra.NoArgs,
	RunE:  runDatasetSeed,
}

func init() {
	datasetSeedCmd.Flags().StringVar(&seedFrom, "from", "", "JSON file to import (default: configured dataset.json_path)")
	datasetCmd.AddCommand(datasetInfoCmd)
	datasetCmd.AddCommand(datasetSeedCmd)
	rootCmd.AddCommand(datasetCmd)
}

func runDatasetInfo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Recipes: %d (source: %s)\n", ds.Len(), app.cfg.Dataset.Source)

	cuisines := make([]string, 0)
	for _, c := range ds.Cuisines() {
		cuisines = append(cuisines, string(c))
	}
	fmt.Printf("Cuisines: %s\n", strings.Join(cuisines, ", "))

	tags := make([]string, 0)
	for _, t := range ds.DietaryTags() {
		tags = append(tags, string(t))
	}
	if len(tags) > 0 {
		fmt.Printf("Dietary tags: %s\n", strings.Join(tags, ", "))
	}
	return nil
}

func runDatasetSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonPath := seedFrom
	if jsonPath == "" {
		jsonPath = app.cfg.Dataset.JSONPath
	}

	ds, err := dataset.NewJSONSource(jsonPath, app.logger).Load(ctx)
	if err != nil {
		return err
	}

	sink, err := dataset.OpenSQLite(app.cfg.Dataset.SQLitePath, app.logger)
	if err != nil {
		return err
	}
	if err := sink.Store(ctx, ds); err != nil {
		return err
	}

	fmt.Printf("Seeded %d recipes into %s\n", ds.Len(), app.cfg.Dataset.SQLitePath)
	return nil
}
