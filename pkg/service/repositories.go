package service

import (
	"context"

	"droscher.com/Foodgram/pkg/model"
)

type CatalogRepository interface {
	GetIngredientsByIDs(ctx context.Context, ids []uint) ([]*model.Ingredient, error)
	GetTagsByIDs(ctx context.Context, ids []uint) ([]*model.Tag, error)
	GetTags(ctx context.Context) ([]*model.Tag, error)
	SearchIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error)
}

type RecipeRepository interface {
	CreateRecipe(ctx context.Context, recipe *model.Recipe) error
	UpdateRecipe(ctx context.Context, recipeID uint, update model.RecipeUpdate) error
	DeleteRecipe(ctx context.Context, recipeID uint) error
	GetRecipeByID(ctx context.Context, recipeID uint) (*model.Recipe, error)
	GetRecipeByShortCode(ctx context.Context, code string) (*model.Recipe, error)
	ListRecipes(ctx context.Context, filter model.RecipeFilter, limit int, offset int) ([]*model.Recipe, int64, error)
}

type MembershipRepository interface {
	AddMembership(ctx context.Context, kind model.MembershipKind, userID uint, recipeID uint) error
	RemoveMembership(ctx context.Context, kind model.MembershipKind, userID uint, recipeID uint) error
	GetMembershipFlags(ctx context.Context, userID uint, recipeID uint) (*model.MembershipFlags, error)
	GetMembershipFlagsForRecipes(ctx context.Context, userID uint, recipeIDs []uint) (map[uint]model.MembershipFlags, error)
	GetCartLines(ctx context.Context, userID uint) ([]model.CartLine, error)
}

type SubscriptionRepository interface {
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	AddSubscription(ctx context.Context, followerID uint, authorID uint) error
	RemoveSubscription(ctx context.Context, followerID uint, authorID uint) error
	GetFollowedAuthors(ctx context.Context, followerID uint, limit int, offset int) ([]*model.User, int64, error)
	GetRecipePreviews(ctx context.Context, authorID uint, limit int) ([]model.RecipePreview, error)
	CountRecipesByAuthor(ctx context.Context, authorID uint) (int64, error)
}

// ImageStore keeps uploaded recipe images and hands back a stable reference.
type ImageStore interface {
	Save(ctx context.Context, data string) (string, error)
	Delete(ctx context.Context, ref string) error
}

// Recorder receives recipe authoring events for metrics.
type Recorder interface {
	RecipeCreated()
	ShortCodeCollision()
}

type noopRecorder struct{}

func (noopRecorder) RecipeCreated()      {}
func (noopRecorder) ShortCodeCollision() {}
