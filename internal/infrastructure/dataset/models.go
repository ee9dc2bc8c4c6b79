package dataset

import (
	"time"

	"github.com/pantrio/pantrio/internal/domain/recipe"
)

// GORM models for the SQLite dataset backend. Ingredients and tags live
// in child tables so the recipe row stays flat.

// RecipeModel is the recipes table
type RecipeModel struct {
	ID              string `gorm:"primaryKey"`
	Name            string `gorm:"not null"`
	Cuisine         string
	Difficulty      string
	CookTimeMinutes int
	Servings        int
	Instructions    string

	HasNutrition  bool
	Calories      int
	Protein       float64
	Carbohydrates float64
	Fat           float64
	Fiber         float64
	Sugar         float64
	Sodium        float64

	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Tags        []RecipeTagModel        `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name
func (RecipeModel) TableName() string { return "recipes" }

// RecipeIngredientModel is the recipe_ingredients table
type RecipeIngredientModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	RecipeID string `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Position int    `gorm:"not null"`
}

// TableName overrides the table name
func (RecipeIngredientModel) TableName() string { return "recipe_ingredients" }

// RecipeTagModel is the recipe_tags table
type RecipeTagModel struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	RecipeID string `gorm:"index;not null"`
	Tag      string `gorm:"not null"`
}

// TableName overrides the table name
func (RecipeTagModel) TableName() string { return "recipe_tags" }

// toModel maps a domain recipe onto the GORM model
func toModel(r *recipe.Recipe) RecipeModel {
	model := RecipeModel{
		ID:              r.ID(),
		Name:            r.Name(),
		Cuisine:         string(r.Cuisine()),
		Difficulty:      string(r.Difficulty()),
		CookTimeMinutes: int(r.CookTime() / time.Minute),
		Servings:        r.Servings(),
		Instructions:    r.Instructions(),
	}
	for i, ing := range r.Ingredients() {
		model.Ingredients = append(model.Ingredients, RecipeIngredientModel{
			RecipeID: r.ID(),
			Name:     ing,
			Position: i,
		})
	}
	for _, tag := range r.DietaryTags() {
		model.Tags = append(model.Tags, RecipeTagModel{
			RecipeID: r.ID(),
			Tag:      string(tag),
		})
	}
	if n := r.Nutrition(); n != nil {
		model.HasNutrition = true
		model.Calories = n.Calories
		model.Protein = n.Protein
		model.Carbohydrates = n.Carbohydrates
		model.Fat = n.Fat
		model.Fiber = n.Fiber
		model.Sugar = n.Sugar
		model.Sodium = n.Sodium
	}
	return model
}

// toRecord maps a GORM model back onto the flat record shape shared
// with the JSON source, so both backends build the domain entity through
// the same path.
func toRecord(model RecipeModel) recipeRecord {
	record := recipeRecord{
		ID:              model.ID,
		Name:            model.Name,
		Cuisine:         model.Cuisine,
		Difficulty:      model.Difficulty,
		CookTimeMinutes: model.CookTimeMinutes,
		Servings:        model.Servings,
		Instructions:    model.Instructions,
	}
	for _, ing := range model.Ingredients {
		record.Ingredients = append(record.Ingredients, ing.Name)
	}
	for _, tag := range model.Tags {
		record.DietaryTags = append(record.DietaryTags, tag.Tag)
	}
	if model.HasNutrition {
		record.Nutrition = &nutritionRecord{
			Calories:      model.Calories,
			Protein:       model.Protein,
			Carbohydrates: model.Carbohydrates,
			Fat:           model.Fat,
			Fiber:         model.Fiber,
			Sugar:         model.Sugar,
			Sodium:        model.Sodium,
		}
	}
	return record
}
