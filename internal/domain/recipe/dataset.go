package recipe

import "sort"

// Dataset is the immutable, in-memory recipe collection. It is loaded
// once at startup and passed explicitly to the services that need it.
type Dataset struct {
	recipes []*Recipe
	byID    map[string]*Recipe
}

// NewDataset builds a dataset from recipes, rejecting duplicate ids.
// Recipes are kept sorted by id so iteration order is deterministic.
func NewDataset(recipes []*Recipe) (*Dataset, error) {
	byID := make(map[string]*Recipe, len(recipes))
	ordered := make([]*Recipe, 0, len(recipes))
	for _, r := range recipes {
		if _, exists := byID[r.ID()]; exists {
			return nil, ErrDuplicateRecipeID
		}
		byID[r.ID()] = r
		ordered = append(ordered, r)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID() < ordered[j].ID() })
	return &Dataset{recipes: ordered, byID: byID}, nil
}

// Len returns the number of recipes in the dataset
func (d *Dataset) Len() int {
	return len(d.recipes)
}

// All returns the recipes ordered by id
func (d *Dataset) All() []*Recipe {
	out := make([]*Recipe, len(d.recipes))
	copy(out, d.recipes)
	return out
}

// ByID looks up a recipe by its id
func (d *Dataset) ByID(id string) (*Recipe, error) {
	r, ok := d.byID[Normalize(id)]
	if !ok {
		return nil, ErrRecipeNotFound
	}
	return r, nil
}

// Cuisines returns the distinct cuisines present, sorted
func (d *Dataset) Cuisines() []CuisineType {
	seen := make(map[CuisineType]struct{})
	for _, r := range d.recipes {
		seen[r.Cuisine()] = struct{}{}
	}
	out := make([]CuisineType, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// DietaryTags returns the distinct dietary tags present, sorted
func (d *Dataset) DietaryTags() []DietaryTag {
	seen := make(map[DietaryTag]struct{})
	for _, r := range d.recipes {
		for _, tag := range r.DietaryTags() {
			seen[tag] = struct{}{}
		}
	}
	out := make([]DietaryTag, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
