package repository

import (
	"context"

	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
)

func (r *Repository) AddSubscription(ctx context.Context, followerID uint, authorID uint) error {
	result := r.DB.WithContext(ctx).Create(&model.Subscription{FollowerID: followerID, AuthorID: authorID})

	return translate(result.Error)
}

func (r *Repository) RemoveSubscription(ctx context.Context, followerID uint, authorID uint) error {
	result := r.DB.WithContext(ctx).
		Where("follower_id = ? AND author_id = ?", followerID, authorID).
		Delete(&model.Subscription{})
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// GetFollowedAuthors returns one page of the authors followed by followerID,
// ordered by id, plus the total number of followed authors. A negative limit
// returns every remaining author.
func (r *Repository) GetFollowedAuthors(ctx context.Context, followerID uint, limit int, offset int) ([]*model.User, int64, error) {
	var (
		authors []*model.User
		total   int64
	)

	followed := func() *gorm.DB {
		return r.DB.WithContext(ctx).Model(&model.User{}).
			Joins("INNER JOIN subscriptions s ON s.author_id = users.id").
			Where("s.follower_id = ?", followerID)
	}

	if result := followed().Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	result := followed().Order("users.id").Limit(limit).Offset(offset).Find(&authors)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return authors, total, nil
}

// GetRecipePreviews returns the newest recipes of an author; a negative limit returns all of them.
func (r *Repository) GetRecipePreviews(ctx context.Context, authorID uint, limit int) ([]model.RecipePreview, error) {
	var previews []model.RecipePreview

	result := r.DB.WithContext(ctx).Model(&model.Recipe{}).
		Select("id", "name", "image", "cooking_time").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&previews)
	if result.Error != nil {
		return nil, result.Error
	}

	return previews, nil
}

func (r *Repository) CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error) {
	var count int64

	if result := r.DB.WithContext(ctx).Model(&model.Recipe{}).Where("author_id = ?", authorID).Count(&count); result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
