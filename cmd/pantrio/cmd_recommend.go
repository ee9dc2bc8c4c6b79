package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantrio/pantrio/internal/application/recommend"
)

var recommendLimit int

// recommendCmd ranks recipes by similarity to the user's liked recipes
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend recipes based on what you have liked",
	Long: `Recommend recipes by their ingredient similarity to the recipes you
have liked, boosted by your favorite ingredients and preferred
cuisines. Like some recipes first with 'pantrio rate'.`,
	Args: cobra.NoArgs,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "maximum number of results")
	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}
	prof, err := newProfileStore().LoadProfile(ctx)
	if err != nil {
		return err
	}
	if len(prof.LikedRecipes()) == 0 {
		fmt.Println("Like some recipes first to get recommendations.")
		return nil
	}

	service := recommend.NewService(ds, app.logger)
	results, err := service.RecommendFromProfile(ctx, prof, resolveLimit(recommendLimit))
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}
