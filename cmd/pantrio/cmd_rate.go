package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantrio/pantrio/internal/domain/recipe"
	apperrors "github.com/pantrio/pantrio/pkg/errors"
)

var (
	rateLike    bool
	rateDislike bool
)

// rateCmd records like/dislike feedback and folds it into the profile
var rateCmd = &cobra.Command{
	Use:   "rate <recipe-id>",
	Short: "Record a like or dislike for a recipe",
	Long: `Record feedback for a recipe. Liking a recipe withdraws a standing
dislike, adds its ingredients to your favorite ingredients and its
cuisine to your preferred cuisines. Feedback feeds the --personal
ranking and the recommend command.`,
	Args: cobra.ExactArgs(1),
	RunE: runRate,
}

func init() {
	rateCmd.Flags().BoolVar(&rateLike, "like", false, "record a like")
	rateCmd.Flags().BoolVar(&rateDislike, "dislike", false, "record a dislike")
	rateCmd.MarkFlagsOneRequired("like", "dislike")
	rateCmd.MarkFlagsMutuallyExclusive("like", "dislike")
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
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

	store := newProfileStore()
	prof, err := store.LoadProfile(ctx)
	if err != nil {
		return err
	}
	ledger, err := store.LoadLedger(ctx)
	if err != nil {
		return err
	}

	if rateLike {
		hadDislike := prof.IsDisliked(r.ID())
		if !prof.Like(r) {
			fmt.Printf("Already liked %q.\n", r.Name())
			return nil
		}
		ledger.RecordLike(r.ID(), hadDislike)
		fmt.Printf("Liked %q.\n", r.Name())
	} else {
		hadLike := prof.IsLiked(r.ID())
		if !prof.Dislike(r) {
			fmt.Printf("Already disliked %q.\n", r.Name())
			return nil
		}
		ledger.RecordDislike(r.ID(), hadLike)
		fmt.Printf("Disliked %q.\n", r.Name())
	}

	if err := store.SaveProfile(ctx, prof); err != nil {
		return err
	}
	return store.SaveLedger(ctx, ledger)
}
