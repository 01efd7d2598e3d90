package repository

import (
	"context"
	"strings"

	"gorm.io/gorm/clause"

	"droscher.com/Foodgram/pkg/model"
)

const seedBatchSize = 500

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// SearchIngredients returns ingredients whose name starts with prefix, ignoring case.
func (r *Repository) SearchIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	query := r.DB.WithContext(ctx)
	if prefix != "" {
		query = query.Where("name ILIKE ?", likeEscaper.Replace(prefix)+"%")
	}

	if result := query.Order("name").Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

func (r *Repository) GetIngredientsByIDs(ctx context.Context, ids []uint) ([]*model.Ingredient, error) {
	var ingredients []*model.Ingredient

	if result := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients); result.Error != nil {
		return nil, result.Error
	}

	return ingredients, nil
}

// SeedIngredients inserts the given ingredients, skipping those already present.
// It returns the number of rows actually created.
func (r *Repository) SeedIngredients(ctx context.Context, ingredients []model.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&ingredients, seedBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (r *Repository) GetTags(ctx context.Context) ([]*model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Order("name").Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) GetTagsByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error) {
	var tags []*model.Tag

	if result := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&tags); result.Error != nil {
		return nil, result.Error
	}

	return tags, nil
}

func (r *Repository) SeedTags(ctx context.Context, tags []model.Tag) (int64, error) {
	if len(tags) == 0 {
		return 0, nil
	}

	result := r.DB.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&tags, seedBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
