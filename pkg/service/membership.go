package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

// MembershipService manages the favorites and shopping cart sets of a user.
type MembershipService struct {
	recipes     RecipeRepository
	memberships MembershipRepository
	logger      *zap.Logger
}

func NewMembershipService(recipes RecipeRepository, memberships MembershipRepository, logger *zap.Logger) *MembershipService {
	return &MembershipService{recipes: recipes, memberships: memberships, logger: logger}
}

// Add puts a recipe into one of the user's sets and returns its preview.
// Adding a recipe already in the set is a conflict.
func (s *MembershipService) Add(ctx context.Context, user *model.User, kind model.MembershipKind, recipeID uint) (*model.RecipePreview, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	recipe, err := s.recipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	err = s.memberships.AddMembership(ctx, kind, user.ID, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("recipe %d is already in your %s", recipeID, kind)
		}

		s.logger.Error("error adding membership", zap.Stringer("kind", kind), zap.Uint("user_id", user.ID), zap.Uint("recipe_id", recipeID), zap.Error(err))

		return nil, err
	}

	preview := recipe.Preview()

	return &preview, nil
}

// Remove takes a recipe out of one of the user's sets. Removing a recipe that
// is not in the set is a conflict.
func (s *MembershipService) Remove(ctx context.Context, user *model.User, kind model.MembershipKind, recipeID uint) error {
	if user == nil {
		return ErrAuthenticationRequired
	}

	if _, err := s.recipe(ctx, recipeID); err != nil {
		return err
	}

	err := s.memberships.RemoveMembership(ctx, kind, user.ID, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return conflict("recipe %d is not in your %s", recipeID, kind)
		}

		return err
	}

	return nil
}

func (s *MembershipService) recipe(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", ErrNotFound, recipeID)
		}

		return nil, err
	}

	return recipe, nil
}
