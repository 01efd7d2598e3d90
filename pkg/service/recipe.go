package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

const (
	DefaultShortCodeLength   = 6
	DefaultShortCodeAttempts = 32
)

// RecipeView is a recipe as seen by one caller.
type RecipeView struct {
	Recipe *model.Recipe
	model.MembershipFlags
}

// RecipeService validates and persists recipe aggregates and owns their short codes.
type RecipeService struct {
	recipes     RecipeRepository
	catalog     CatalogRepository
	memberships MembershipRepository
	images      ImageStore
	logger      *zap.Logger
	shortCodes  ShortCodeGenerator
	maxAttempts int
	recorder    Recorder
}

type RecipeOption func(*RecipeService)

// WithShortCodes replaces the short code source and the number of draws
// attempted before giving up.
func WithShortCodes(generator ShortCodeGenerator, maxAttempts int) RecipeOption {
	return func(s *RecipeService) {
		s.shortCodes = generator
		s.maxAttempts = maxAttempts
	}
}

func WithRecorder(recorder Recorder) RecipeOption {
	return func(s *RecipeService) {
		s.recorder = recorder
	}
}

// NewRecipeService builds the service. A nil image store keeps image values
// as given, treating them as references produced elsewhere.
func NewRecipeService(recipes RecipeRepository, catalog CatalogRepository, memberships MembershipRepository, images ImageStore, logger *zap.Logger, opts ...RecipeOption) *RecipeService {
	s := &RecipeService{
		recipes:     recipes,
		catalog:     catalog,
		memberships: memberships,
		images:      images,
		logger:      logger,
		shortCodes:  NanoIDShortCodes(DefaultShortCodeLength),
		maxAttempts: DefaultShortCodeAttempts,
		recorder:    noopRecorder{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Create validates the input and stores the recipe aggregate for author.
func (s *RecipeService) Create(ctx context.Context, author *model.User, input RecipeInput) (*RecipeView, error) {
	if author == nil {
		return nil, ErrAuthenticationRequired
	}

	if err := s.validate(ctx, input, true); err != nil {
		return nil, err
	}

	recipe := &model.Recipe{
		Name:        *input.Name,
		Text:        *input.Text,
		AuthorID:    author.ID,
		CookingTime: uint(*input.CookingTime), //nolint:gosec // validated positive
		Ingredients: recipeLines(input.Ingredients),
		Tags:        tagRefs(input.Tags),
	}

	if input.Image != nil && *input.Image != "" {
		ref, err := s.storeImage(ctx, *input.Image)
		if err != nil {
			return nil, err
		}

		recipe.Image = &ref
	}

	if err := s.insertWithShortCode(ctx, recipe); err != nil {
		s.discardImage(ctx, recipe.Image)

		return nil, err
	}

	s.recorder.RecipeCreated()
	s.logger.Info("recipe created", zap.Uint("recipe_id", recipe.ID), zap.Uint("author_id", author.ID), zap.String("short_code", recipe.ShortCode))

	created, err := s.recipes.GetRecipeByID(ctx, recipe.ID)
	if err != nil {
		return nil, err
	}

	return &RecipeView{Recipe: created}, nil
}

// insertWithShortCode draws short codes until the store accepts one. The
// unique index on short codes decides collisions, so every attempt is checked
// against committed state.
func (s *RecipeService) insertWithShortCode(ctx context.Context, recipe *model.Recipe) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		code, err := s.shortCodes()
		if err != nil {
			return fmt.Errorf("generate short code: %w", err)
		}

		recipe.ShortCode = code

		err = s.recipes.CreateRecipe(ctx, recipe)
		if err == nil {
			return nil
		}

		if !errors.Is(err, repository.ErrShortCodeTaken) {
			return err
		}

		s.recorder.ShortCodeCollision()
		s.logger.Warn("short code collision", zap.String("code", code), zap.Int("attempt", attempt))
	}

	s.logger.Error("no free short code found", zap.Int("attempts", s.maxAttempts))

	return fmt.Errorf("%w: %d attempts", ErrShortCodesExhausted, s.maxAttempts)
}

// Update applies a partial update. Supplied tags or ingredients replace the
// current sets entirely.
func (s *RecipeService) Update(ctx context.Context, caller *model.User, recipeID uint, input RecipeInput) (*RecipeView, error) {
	recipe, err := s.owned(ctx, caller, recipeID)
	if err != nil {
		return nil, err
	}

	if err = s.validate(ctx, input, false); err != nil {
		return nil, err
	}

	update := model.RecipeUpdate{Fields: map[string]any{}}

	if input.Name != nil {
		update.Fields["name"] = *input.Name
	}

	if input.Text != nil {
		update.Fields["text"] = *input.Text
	}

	if input.CookingTime != nil {
		update.Fields["cooking_time"] = uint(*input.CookingTime) //nolint:gosec // validated positive
	}

	if input.Tags != nil {
		update.TagIDs = input.Tags
	}

	if input.Ingredients != nil {
		update.Lines = recipeLines(input.Ingredients)
	}

	var newImage *string

	if input.Image != nil && *input.Image != "" {
		ref, err := s.storeImage(ctx, *input.Image)
		if err != nil {
			return nil, err
		}

		newImage = &ref
		update.Fields["image"] = ref
	}

	if err = s.recipes.UpdateRecipe(ctx, recipeID, update); err != nil {
		s.discardImage(ctx, newImage)

		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", ErrNotFound, recipeID)
		}

		return nil, err
	}

	if newImage != nil {
		s.discardImage(ctx, recipe.Image)
	}

	return s.Get(ctx, caller, recipeID)
}

// Delete removes a recipe owned by caller.
func (s *RecipeService) Delete(ctx context.Context, caller *model.User, recipeID uint) error {
	recipe, err := s.owned(ctx, caller, recipeID)
	if err != nil {
		return err
	}

	if err = s.recipes.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return fmt.Errorf("%w: recipe %d", ErrNotFound, recipeID)
		}

		return err
	}

	s.discardImage(ctx, recipe.Image)
	s.logger.Info("recipe deleted", zap.Uint("recipe_id", recipeID), zap.Uint("author_id", caller.ID))

	return nil
}

// Get returns the recipe with the caller's favorite and cart flags. Anonymous
// callers always see both flags unset.
func (s *RecipeService) Get(ctx context.Context, caller *model.User, recipeID uint) (*RecipeView, error) {
	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	view := &RecipeView{Recipe: recipe}

	if caller != nil {
		flags, err := s.memberships.GetMembershipFlags(ctx, caller.ID, recipeID)
		if err != nil {
			return nil, err
		}

		view.MembershipFlags = *flags
	}

	return view, nil
}

// RecipeQuery selects the recipes of a listing. The favorite and cart filters
// only narrow the listing for an authenticated caller.
type RecipeQuery struct {
	AuthorID       uint
	TagSlugs       []string
	Favorited      bool
	InShoppingCart bool
}

type RecipePage struct {
	Count   int64
	Results []RecipeView
}

// List returns one page of recipes, newest first, flagged for the caller.
func (s *RecipeService) List(ctx context.Context, caller *model.User, query RecipeQuery, limit int, offset int) (*RecipePage, error) {
	if limit < 1 {
		limit = DefaultPageSize
	}

	if offset < 0 {
		offset = 0
	}

	filter := model.RecipeFilter{AuthorID: query.AuthorID, TagSlugs: query.TagSlugs}

	if caller != nil {
		if query.Favorited {
			filter.FavoritedBy = caller.ID
		}

		if query.InShoppingCart {
			filter.InCartOf = caller.ID
		}
	}

	recipes, total, err := s.recipes.ListRecipes(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	flags := map[uint]model.MembershipFlags{}

	if caller != nil && len(recipes) > 0 {
		ids := make([]uint, 0, len(recipes))
		for _, recipe := range recipes {
			ids = append(ids, recipe.ID)
		}

		flags, err = s.memberships.GetMembershipFlagsForRecipes(ctx, caller.ID, ids)
		if err != nil {
			return nil, err
		}
	}

	page := &RecipePage{Count: total, Results: make([]RecipeView, 0, len(recipes))}
	for _, recipe := range recipes {
		page.Results = append(page.Results, RecipeView{Recipe: recipe, MembershipFlags: flags[recipe.ID]})
	}

	return page, nil
}

// ResolveShortCode finds the recipe a public short link points to.
func (s *RecipeService) ResolveShortCode(ctx context.Context, code string) (*model.Recipe, error) {
	recipe, err := s.recipes.GetRecipeByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: short code %q", ErrNotFound, code)
		}

		return nil, err
	}

	return recipe, nil
}

// ShortLink returns the public link of a recipe under baseURL.
func (s *RecipeService) ShortLink(ctx context.Context, recipeID uint, baseURL string) (string, error) {
	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return "", err
	}

	return PublicLink(recipe, baseURL), nil
}

func (s *RecipeService) find(ctx context.Context, recipeID uint) (*model.Recipe, error) {
	recipe, err := s.recipes.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", ErrNotFound, recipeID)
		}

		return nil, err
	}

	return recipe, nil
}

func (s *RecipeService) owned(ctx context.Context, caller *model.User, recipeID uint) (*model.Recipe, error) {
	if caller == nil {
		return nil, ErrAuthenticationRequired
	}

	recipe, err := s.find(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	if recipe.AuthorID != caller.ID {
		return nil, fmt.Errorf("%w: recipe %d belongs to another author", ErrPermissionDenied, recipeID)
	}

	return recipe, nil
}

// validate runs tags, then ingredients, then scalar fields, collecting every
// stage's validation errors. Storage failures abort the pipeline.
func (s *RecipeService) validate(ctx context.Context, input RecipeInput, create bool) error {
	var errs error

	if create || input.Tags != nil {
		var existing []*model.Tag

		if len(input.Tags) > 0 {
			tags, err := s.catalog.GetTagsByIDs(ctx, input.Tags)
			if err != nil {
				return err
			}

			existing = tags
		}

		errs = multierr.Append(errs, ValidateTagIDs(input.Tags, existing))
	}

	if create || input.Ingredients != nil {
		var existing []*model.Ingredient

		if len(input.Ingredients) > 0 {
			ingredients, err := s.catalog.GetIngredientsByIDs(ctx, ingredientIDs(input.Ingredients))
			if err != nil {
				return err
			}

			existing = ingredients
		}

		errs = multierr.Append(errs, ValidateIngredientLines(input.Ingredients, existing))
	}

	return multierr.Append(errs, ValidateScalars(input, create))
}

func (s *RecipeService) storeImage(ctx context.Context, data string) (string, error) {
	if s.images == nil {
		return data, nil
	}

	ref, err := s.images.Save(ctx, data)
	if err != nil {
		s.logger.Warn("rejected recipe image", zap.Error(err))

		return "", invalid(FieldImage, "image could not be stored: %v", err)
	}

	return ref, nil
}

func (s *RecipeService) discardImage(ctx context.Context, ref *string) {
	if s.images == nil || ref == nil || *ref == "" {
		return
	}

	if err := s.images.Delete(ctx, *ref); err != nil {
		s.logger.Warn("error removing recipe image", zap.String("image", *ref), zap.Error(err))
	}
}

func recipeLines(amounts []model.IngredientAmount) []model.RecipeIngredient {
	lines := make([]model.RecipeIngredient, 0, len(amounts))
	for _, amount := range amounts {
		lines = append(lines, model.RecipeIngredient{IngredientID: amount.IngredientID, Amount: uint(amount.Amount)}) //nolint:gosec // validated positive
	}

	return lines
}

func tagRefs(ids []uint) []model.Tag {
	tags := make([]model.Tag, 0, len(ids))
	for _, id := range ids {
		tags = append(tags, model.Tag{Model: gorm.Model{ID: id}})
	}

	return tags
}

func ingredientIDs(amounts []model.IngredientAmount) []uint {
	ids := make([]uint, 0, len(amounts))
	for _, amount := range amounts {
		ids = append(ids, amount.IngredientID)
	}

	return ids
}
