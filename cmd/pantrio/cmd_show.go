package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pantrio/pantrio/internal/domain/recipe"
	apperrors "github.com/pantrio/pantrio/pkg/errors"
)

// showCmd prints the full detail of one recipe
var showCmd = &cobra.Command{
	Use:   "show <recipe-id>",
	Short: "Show a recipe's ingredients, instructions and nutrition",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	r, err := ds.ByID(args[0])
	if err != nil {
		if errors.Is(err, recipe.ErrRecipeNotFound) {
			return apperrors.NewRecipeNotFoundError(args[0])
		}
		return err
	}

	fmt.Printf("%s (%s)\n", r.Name(), r.ID())
	fmt.Printf("  cuisine:    %s\n", r.Cuisine())
	fmt.Printf("  difficulty: %s\n", r.Difficulty())
	if r.CookTime() > 0 {
		fmt.Printf("  cook time:  %s\n", r.CookTime())
	}
	if r.Servings() > 0 {
		fmt.Printf("  servings:   %d\n", r.Servings())
	}
	if tags := r.DietaryTags(); len(tags) > 0 {
		labels := make([]string, len(tags))
		for i, tag := range tags {
			labels[i] = string(tag)
		}
		fmt.Printf("  dietary:    %s\n", strings.Join(labels, ", "))
	}

	fmt.Println("\nIngredients:")
	for i, ing := range r.Ingredients() {
		fmt.Printf("  %d. %s\n", i+1, ing)
	}

	if r.Instructions() != "" {
		fmt.Printf("\nInstructions:\n%s\n", r.Instructions())
	}

	if n := r.Nutrition(); n != nil {
		fmt.Println("\nNutrition (per serving):")
		fmt.Printf("  calories:      %d\n", n.Calories)
		fmt.Printf("  protein:       %.1fg\n", n.Protein)
		fmt.Printf("  carbohydrates: %.1fg\n", n.Carbohydrates)
		fmt.Printf("  fat:           %.1fg\n", n.Fat)
	}

	return nil
}
