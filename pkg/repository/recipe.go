package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

// CreateRecipe stores the recipe, its ingredient lines and its tag links in a
// single transaction. The lines are taken from recipe.Ingredients and the tag
// ids from recipe.Tags.
func (r *Repository) CreateRecipe(ctx context.Context, recipe *model.Recipe) error {
	lines := recipe.Ingredients
	tagIDs := make([]uint, 0, len(recipe.Tags))

	for _, tag := range recipe.Tags {
		tagIDs = append(tagIDs, tag.ID)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if result := tx.Omit(clause.Associations).Create(recipe); result.Error != nil {
			return result.Error
		}

		if err := insertLines(tx, recipe.ID, lines); err != nil {
			return err
		}

		return insertTags(tx, recipe.ID, tagIDs)
	})
	if err != nil {
		recipe.ID = 0

		return translate(err)
	}

	return nil
}

// UpdateRecipe applies the scalar fields and replaces the tag and ingredient
// sets that are present in update, all in one transaction.
func (r *Repository) UpdateRecipe(ctx context.Context, recipeID uint, update model.RecipeUpdate) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(update.Fields) > 0 {
			result := tx.Model(&model.Recipe{}).Where("id = ?", recipeID).Updates(update.Fields)
			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		if update.TagIDs != nil {
			if result := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeTag{}); result.Error != nil {
				return result.Error
			}

			if err := insertTags(tx, recipeID, update.TagIDs); err != nil {
				return err
			}
		}

		if update.Lines != nil {
			if result := tx.Where("recipe_id = ?", recipeID).Delete(&model.RecipeIngredient{}); result.Error != nil {
				return result.Error
			}

			return insertLines(tx, recipeID, update.Lines)
		}

		return nil
	})

	return translate(err)
}

func insertLines(tx *gorm.DB, recipeID uint, lines []model.RecipeIngredient) error {
	if len(lines) == 0 {
		return nil
	}

	rows := make([]model.RecipeIngredient, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, model.RecipeIngredient{RecipeID: recipeID, IngredientID: line.IngredientID, Amount: line.Amount})
	}

	return tx.Omit(clause.Associations).Create(&rows).Error
}

func insertTags(tx *gorm.DB, recipeID uint, tagIDs []uint) error {
	if len(tagIDs) == 0 {
		return nil
	}

	rows := make([]model.RecipeTag, 0, len(tagIDs))
	for _, tagID := range tagIDs {
		rows = append(rows, model.RecipeTag{RecipeID: recipeID, TagID: tagID})
	}

	return tx.Create(&rows).Error
}

// DeleteRecipe removes the recipe together with everything that references it.
func (r *Repository) DeleteRecipe(ctx context.Context, recipeID uint) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dependent := range []any{&model.Favorite{}, &model.CartEntry{}, &model.RecipeTag{}, &model.RecipeIngredient{}} {
			if result := tx.Where("recipe_id = ?", recipeID).Delete(dependent); result.Error != nil {
				return result.Error
			}
		}

		result := tx.Unscoped().Delete(&model.Recipe{}, recipeID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		return nil
	})

	return translate(err)
}

func (r *Repository) GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).
		Joins("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		First(&recipe, recipeID)
	if result.Error != nil {
		return nil, translate(result.Error)
	}

	return &recipe, nil
}

// ListRecipes returns one page of recipes matching filter, newest first, plus
// the number of matching recipes. A negative limit returns every remaining recipe.
func (r *Repository) ListRecipes(ctx context.Context, filter model.RecipeFilter, limit int, offset int) ([]*model.Recipe, int64, error) {
	var (
		recipes []*model.Recipe
		total   int64
	)

	matching := func() *gorm.DB {
		db := r.DB.WithContext(ctx).Model(&model.Recipe{})

		if filter.AuthorID != 0 {
			db = db.Where("recipes.author_id = ?", filter.AuthorID)
		}

		if len(filter.TagSlugs) > 0 {
			tagged := r.DB.Table("recipe_tags AS rt").
				Select("rt.recipe_id").
				Joins("INNER JOIN tags t ON t.id = rt.tag_id").
				Where("t.slug IN ?", filter.TagSlugs)
			db = db.Where("recipes.id IN (?)", tagged)
		}

		if filter.FavoritedBy != 0 {
			db = db.Where("recipes.id IN (?)", r.DB.Table("favorites").Select("recipe_id").Where("user_id = ?", filter.FavoritedBy))
		}

		if filter.InCartOf != 0 {
			db = db.Where("recipes.id IN (?)", r.DB.Table("cart_entries").Select("recipe_id").Where("user_id = ?", filter.InCartOf))
		}

		return db
	}

	if result := matching().Count(&total); result.Error != nil {
		r.Logger.Error("error counting recipes", zap.Error(result.Error))

		return nil, 0, result.Error
	}

	result := matching().
		Joins("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Ingredients").
		Preload("Ingredients.Ingredient").
		Order("recipes.created_at DESC, recipes.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recipes)
	if result.Error != nil {
		r.Logger.Error("error listing recipes", zap.Error(result.Error))

		return nil, 0, result.Error
	}

	return recipes, total, nil
}

func (r *Repository) GetRecipeByShortCode(ctx context.Context, code string) (*model.Recipe, error) {
	var recipe model.Recipe

	result := r.DB.WithContext(ctx).Where("short_code = ?", code).First(&recipe)
	if result.Error != nil {
		err := translate(result.Error)
		if !errors.Is(err, ErrRecordNotFound) {
			r.Logger.Error("error resolving short code", zap.String("code", code), zap.Error(err))
		}

		return nil, err
	}

	return &recipe, nil
}
