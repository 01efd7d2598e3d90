package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

const DefaultPageSize = 6

// FollowingPage is one page of followed authors with the total count.
type FollowingPage struct {
	Count   int64
	Results []model.Following
}

type SubscriptionService struct {
	subscriptions SubscriptionRepository
	logger        *zap.Logger
}

func NewSubscriptionService(subscriptions SubscriptionRepository, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{subscriptions: subscriptions, logger: logger}
}

// Follow subscribes user to the author's recipes. Following yourself or an
// author you already follow is a conflict.
func (s *SubscriptionService) Follow(ctx context.Context, user *model.User, authorID uint, recipesLimit *int) (*model.Following, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	if user.ID == authorID {
		return nil, conflict("you cannot subscribe to yourself")
	}

	author, err := s.author(ctx, authorID)
	if err != nil {
		return nil, err
	}

	err = s.subscriptions.AddSubscription(ctx, user.ID, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, conflict("you are already subscribed to %s", author.Username)
		}

		return nil, err
	}

	s.logger.Info("subscribed", zap.Uint("follower_id", user.ID), zap.Uint("author_id", authorID))

	return s.following(ctx, author, recipesLimit)
}

func (s *SubscriptionService) Unfollow(ctx context.Context, user *model.User, authorID uint) error {
	if user == nil {
		return ErrAuthenticationRequired
	}

	author, err := s.author(ctx, authorID)
	if err != nil {
		return err
	}

	err = s.subscriptions.RemoveSubscription(ctx, user.ID, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return conflict("you are not subscribed to %s", author.Username)
		}

		return err
	}

	return nil
}

// ListFollowing pages through the authors user follows. recipesLimit caps the
// previews of each author; the recipe count is always the full total.
func (s *SubscriptionService) ListFollowing(ctx context.Context, user *model.User, limit int, offset int, recipesLimit *int) (*FollowingPage, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	if limit < 1 {
		limit = DefaultPageSize
	}

	if offset < 0 {
		offset = 0
	}

	authors, total, err := s.subscriptions.GetFollowedAuthors(ctx, user.ID, limit, offset)
	if err != nil {
		s.logger.Error("error listing subscriptions", zap.Uint("user_id", user.ID), zap.Error(err))

		return nil, err
	}

	page := &FollowingPage{Count: total, Results: make([]model.Following, 0, len(authors))}

	for _, author := range authors {
		following, err := s.following(ctx, author, recipesLimit)
		if err != nil {
			return nil, err
		}

		page.Results = append(page.Results, *following)
	}

	return page, nil
}

func (s *SubscriptionService) following(ctx context.Context, author *model.User, recipesLimit *int) (*model.Following, error) {
	limit := -1
	if recipesLimit != nil && *recipesLimit >= 0 {
		limit = *recipesLimit
	}

	previews := []model.RecipePreview{}

	if limit != 0 {
		found, err := s.subscriptions.GetRecipePreviews(ctx, author.ID, limit)
		if err != nil {
			return nil, err
		}

		if found != nil {
			previews = found
		}
	}

	count, err := s.subscriptions.CountRecipesByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}

	return &model.Following{Author: *author, Recipes: previews, RecipesCount: count}, nil
}

func (s *SubscriptionService) author(ctx context.Context, authorID uint) (*model.User, error) {
	author, err := s.subscriptions.GetUserByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", ErrNotFound, authorID)
		}

		return nil, err
	}

	return author, nil
}
