// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to reach storage.
package outbound

import (
	"context"

	"github.com/pantrio/pantrio/internal/domain/profile"
	"github.com/pantrio/pantrio/internal/domain/recipe"
)

// RecipeSource loads the read-only recipe dataset. Implementations load
// once; the returned dataset is immutable.
type RecipeSource interface {
	Load(ctx context.Context) (*recipe.Dataset, error)
}

// RecipeSink receives a full dataset, used for seeding one backend from
// another.
type RecipeSink interface {
	Store(ctx context.Context, dataset *recipe.Dataset) error
}

// ProfileStore persists the user profile and the feedback ledger as
// flat files. A missing file yields an empty profile, not an error.
type ProfileStore interface {
	LoadProfile(ctx context.Context) (*profile.Profile, error)
	SaveProfile(ctx context.Context, prof *profile.Profile) error
	LoadLedger(ctx context.Context) (*profile.Ledger, error)
	SaveLedger(ctx context.Context, ledger *profile.Ledger) error
}
