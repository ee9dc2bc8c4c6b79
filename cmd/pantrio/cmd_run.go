package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantrio/pantrio/internal/application/recommend"
	"github.com/pantrio/pantrio/internal/ports/inbound"
)

var (
	runDiet     string
	runCuisine  string
	runSkill    string
	runLimit    int
	runPersonal bool
)

// runCmd matches the user's ingredients against the dataset
var runCmd = &cobra.Command{
	Use:   "run <ingredients...>",
	Short: "Rank recipes by how many of their ingredients you have",
	Long: `Rank recipes by the fraction of their required ingredients present in
the given list. Ingredients are case-insensitive and may be passed as
separate arguments or comma-separated.

Examples:
  pantrio run egg flour
  pantrio run egg,flour,milk --diet vegetarian
  pantrio run tofu,rice --diet vegan --cuisine thai --limit 5`,
	Args: cobra.ArbitraryArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().StringVar(&runDiet, "diet", "", "dietary filter (vegan, vegetarian, ...)")
	runCmd.Flags().StringVar(&runCuisine, "cuisine", "", "cuisine filter")
	runCmd.Flags().StringVar(&runSkill, "skill", "", "skill filter (beginner, intermediate, advanced)")
	runCmd.Flags().IntVar(&runLimit, "limit", 0, "maximum number of results")
	runCmd.Flags().BoolVar(&runPersonal, "personal", false, "apply profile boosts to the ranking")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	service := recommend.NewService(ds, app.logger)

	query := inbound.RecommendationQuery{
		Ingredients: splitIngredients(args),
		Diet:        runDiet,
		Cuisine:     runCuisine,
		Skill:       runSkill,
		Limit:       resolveLimit(runLimit),
	}

	var results []inbound.RecommendationResult
	if runPersonal {
		prof, err := newProfileStore().LoadProfile(ctx)
		if err != nil {
			return err
		}
		results, err = service.RankPersonalized(ctx, prof, query)
		if err != nil {
			return err
		}
	} else {
		results, err = service.Rank(ctx, query)
		if err != nil {
			return err
		}
	}

	printResults(results)
	return nil
}

func resolveLimit(flag int) int {
	if flag > 0 {
		return flag
	}
	return app.cfg.Recommend.Limit
}

func printResults(results []inbound.RecommendationResult) {
	if len(results) == 0 {
		fmt.Println("No matching recipes found.")
		return
	}
	for _, res := range results {
		fmt.Printf("%-40s %.2f\n", res.Name, res.Score)
	}
}
