package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// favoritesCmd lists liked recipes, most recent first
var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List the recipes you have liked",
	Args:  cobra.NoArgs,
	RunE:  runFavorites,
}

func init() {
	rootCmd.AddCommand(favoritesCmd)
}

func runFavorites(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	prof, err := newProfileStore().LoadProfile(ctx)
	if err != nil {
		return err
	}
	liked := prof.LikedRecipes()
	if len(liked) == 0 {
		fmt.Println("You haven't liked any recipes yet.")
		return nil
	}

	ds, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	// Most recently liked first.
	for i := len(liked) - 1; i >= 0; i-- {
		if r, err := ds.ByID(liked[i]); err == nil {
			fmt.Printf("%-40s (%s)\n", r.Name(), r.ID())
		} else {
			fmt.Printf("%-40s (no longer in dataset)\n", liked[i])
		}
	}
	return nil
}
