package repository

import (
	"context"

	"droscher.com/Foodgram/pkg/model"
)

// AddMembership puts the recipe into the user's set of the given kind. The
// composite primary key makes a second insert fail with ErrDuplicate.
func (r *Repository) AddMembership(ctx context.Context, kind model.MembershipKind, userID uint, recipeID uint) error {
	result := r.DB.WithContext(ctx).Create(kind.Entry(userID, recipeID))

	return translate(result.Error)
}

func (r *Repository) RemoveMembership(ctx context.Context, kind model.MembershipKind, userID uint, recipeID uint) error {
	result := r.DB.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(kind.Entry(0, 0))
	if result.Error != nil {
		return translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *Repository) GetMembershipFlags(ctx context.Context, userID uint, recipeID uint) (*model.MembershipFlags, error) {
	var favorites, carts, subscriptions int64

	result := r.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&favorites)
	if result.Error != nil {
		return nil, result.Error
	}

	result = r.DB.WithContext(ctx).Model(&model.CartEntry{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&carts)
	if result.Error != nil {
		return nil, result.Error
	}

	result = r.DB.WithContext(ctx).Table("subscriptions AS s").
		Joins("INNER JOIN recipes r ON r.author_id = s.author_id").
		Where("s.follower_id = ? AND r.id = ?", userID, recipeID).
		Count(&subscriptions)
	if result.Error != nil {
		return nil, result.Error
	}

	return &model.MembershipFlags{
		IsFavorited:      favorites > 0,
		IsInShoppingCart: carts > 0,
		IsSubscribed:     subscriptions > 0,
	}, nil
}

// GetMembershipFlagsForRecipes resolves the flags of several recipes for one
// user. Recipes without any membership are absent from the map.
func (r *Repository) GetMembershipFlagsForRecipes(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]model.MembershipFlags, error) {
	flags := make(map[uint]model.MembershipFlags, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return flags, nil
	}

	var favorited, carted, followed []uint

	result := r.DB.WithContext(ctx).Model(&model.Favorite{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &favorited)
	if result.Error != nil {
		return nil, result.Error
	}

	result = r.DB.WithContext(ctx).Model(&model.CartEntry{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &carted)
	if result.Error != nil {
		return nil, result.Error
	}

	result = r.DB.WithContext(ctx).Table("recipes AS r").
		Joins("INNER JOIN subscriptions s ON s.author_id = r.author_id").
		Where("s.follower_id = ? AND r.id IN ?", userID, recipeIDs).
		Pluck("r.id", &followed)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, id := range favorited {
		entry := flags[id]
		entry.IsFavorited = true
		flags[id] = entry
	}

	for _, id := range carted {
		entry := flags[id]
		entry.IsInShoppingCart = true
		flags[id] = entry
	}

	for _, id := range followed {
		entry := flags[id]
		entry.IsSubscribed = true
		flags[id] = entry
	}

	return flags, nil
}

// GetCartLines returns every ingredient line of every recipe in the user's cart.
func (r *Repository) GetCartLines(ctx context.Context, userID uint) ([]model.CartLine, error) {
	var lines []model.CartLine

	result := r.DB.WithContext(ctx).Table("cart_entries AS ce").
		Select("ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount").
		Joins("INNER JOIN recipe_ingredients ri ON ri.recipe_id = ce.recipe_id").
		Joins("INNER JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("ce.user_id = ?", userID).
		Scan(&lines)
	if result.Error != nil {
		return nil, result.Error
	}

	return lines, nil
}
