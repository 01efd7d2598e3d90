package model

import (
	"time"

	"gorm.io/gorm"
)

// ShortCodeIndex is the unique index arbitrating short code collisions.
const ShortCodeIndex = "idx_recipe_short_code"

type Recipe struct {
	gorm.Model
	Name        string `gorm:"size:256;not null"`
	Text        string `gorm:"not null"`
	Image       *string
	AuthorID    uint   `gorm:"index;not null"`
	CookingTime uint   `gorm:"not null;check:chk_recipe_cooking_time,cooking_time >= 1"`
	ShortCode   string `gorm:"uniqueIndex:idx_recipe_short_code;size:32;not null"`

	Author      User               `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE;"`
	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Tags        []Tag              `gorm:"many2many:recipe_tags;"`
}

// RecipeIngredient is one (ingredient, amount) line of a recipe. The composite
// primary key keeps an ingredient from appearing twice in the same recipe.
type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey;autoIncrement:false"`
	IngredientID uint `gorm:"primaryKey;autoIncrement:false"`
	Amount       uint `gorm:"not null;check:chk_recipe_ingredient_amount,amount >= 1"`

	Recipe     Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE;"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:RESTRICT;"`
}

type RecipeTag struct {
	RecipeID  uint `gorm:"primaryKey;autoIncrement:false"`
	TagID     uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}

// IngredientAmount is an ingredient reference as supplied by an author.
type IngredientAmount struct {
	IngredientID uint
	Amount       int
}

// RecipePreview is the short projection returned by favorites, cart and subscriptions.
type RecipePreview struct {
	ID          uint
	Name        string
	Image       *string
	CookingTime uint
}

func (r *Recipe) Preview() RecipePreview {
	return RecipePreview{ID: r.ID, Name: r.Name, Image: r.Image, CookingTime: r.CookingTime}
}

// RecipeFilter narrows a recipe listing. Zero values leave a dimension open;
// several tag slugs match recipes carrying any of them.
type RecipeFilter struct {
	AuthorID    uint
	TagSlugs    []string
	FavoritedBy uint
	InCartOf    uint
}
