package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/service"
)

type RecipeTestSuite struct {
	suite.Suite
	recipes      *mocks.RecipeRepository
	catalog      *mocks.CatalogRepository
	memberships  *mocks.MembershipRepository
	images       *mocks.ImageStore
	recorder     *mocks.Recorder
	codes        []string
	service      *service.RecipeService
	logger       *zap.Logger
	observedLogs *observer.ObservedLogs
}

func TestRecipeTestSuite(t *testing.T) {
	suite.Run(t, new(RecipeTestSuite))
}

func (suite *RecipeTestSuite) SetupTest() {
	suite.recipes = mocks.NewRecipeRepository(suite.T())
	suite.catalog = mocks.NewCatalogRepository(suite.T())
	suite.memberships = mocks.NewMembershipRepository(suite.T())
	suite.images = mocks.NewImageStore(suite.T())
	suite.recorder = mocks.NewRecorder(suite.T())
	suite.codes = []string{"abc123", "def456", "ghi789"}

	observedZapCore, observedLogs := observer.New(zap.InfoLevel)
	suite.observedLogs = observedLogs
	suite.logger = zap.New(observedZapCore)

	suite.service = suite.newService(3)
}

func (suite *RecipeTestSuite) newService(attempts int) *service.RecipeService {
	next := 0
	generator := func() (string, error) {
		code := suite.codes[next%len(suite.codes)]
		next++

		return code, nil
	}

	return service.NewRecipeService(suite.recipes, suite.catalog, suite.memberships, suite.images,
		suite.logger,
		service.WithShortCodes(generator, attempts),
		service.WithRecorder(suite.recorder))
}

func teaInput() service.RecipeInput {
	return service.RecipeInput{
		Name:        pointy.String("Tea"),
		Text:        pointy.String("Steep for five minutes."),
		CookingTime: pointy.Int(5),
		Tags:        []uint{1},
		Ingredients: []model.IngredientAmount{{IngredientID: 7, Amount: 1}},
	}
}

func storedTea(authorID uint) *model.Recipe {
	return &model.Recipe{
		Model:       gorm.Model{ID: 10},
		Name:        "Tea",
		Text:        "Steep for five minutes.",
		AuthorID:    authorID,
		Author:      model.User{Model: gorm.Model{ID: authorID}},
		CookingTime: 5,
		ShortCode:   "abc123",
	}
}

func (suite *RecipeTestSuite) expectCatalog(tagIDs []uint, ingredientIDs []uint) {
	tags := make([]*model.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tags = append(tags, &model.Tag{Model: gorm.Model{ID: id}})
	}

	ingredients := make([]*model.Ingredient, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		ingredients = append(ingredients, &model.Ingredient{Model: gorm.Model{ID: id}})
	}

	suite.catalog.EXPECT().GetTagsByIDs(mock.Anything, mock.Anything).Return(tags, nil).Maybe()
	suite.catalog.EXPECT().GetIngredientsByIDs(mock.Anything, mock.Anything).Return(ingredients, nil).Maybe()
}

func (suite *RecipeTestSuite) TestCreate_RequiresAuthor() {
	view, err := suite.service.Create(context.Background(), nil, teaInput())
	suite.Require().ErrorIs(err, service.ErrAuthenticationRequired)
	suite.Nil(view)
}

func (suite *RecipeTestSuite) TestCreate_ThenForeignUpdateIsDenied() {
	ctx := context.Background()
	author := &model.User{Model: gorm.Model{ID: 42}}
	stranger := &model.User{Model: gorm.Model{ID: 99}}

	suite.expectCatalog([]uint{1}, []uint{7})
	suite.recipes.EXPECT().CreateRecipe(ctx, mock.MatchedBy(func(recipe *model.Recipe) bool {
		return recipe.Name == "Tea" && recipe.AuthorID == 42 && recipe.CookingTime == 5 &&
			len(recipe.Tags) == 1 && recipe.Tags[0].ID == 1 &&
			len(recipe.Ingredients) == 1 && recipe.Ingredients[0].IngredientID == 7 && recipe.Ingredients[0].Amount == 1
	})).Run(func(_ context.Context, recipe *model.Recipe) {
		recipe.ID = 10
	}).Return(nil).Once()
	suite.recorder.EXPECT().RecipeCreated().Return().Once()
	suite.recipes.EXPECT().GetRecipeByID(ctx, uint(10)).Return(storedTea(42), nil)

	view, err := suite.service.Create(ctx, author, teaInput())
	suite.Require().NoError(err)
	suite.NotEmpty(view.Recipe.ShortCode)
	suite.Equal(uint(42), view.Recipe.AuthorID)
	suite.False(view.IsFavorited)

	_, err = suite.service.Update(ctx, stranger, 10, service.RecipeInput{Name: pointy.String("Stolen tea")})
	suite.Require().ErrorIs(err, service.ErrPermissionDenied)
}

func (suite *RecipeTestSuite) TestCreate_UnknownIngredientWritesNothing() {
	input := teaInput()
	input.Tags = []uint{1, 2}
	input.Ingredients = []model.IngredientAmount{{IngredientID: 999, Amount: 1}}

	suite.expectCatalog([]uint{1, 2}, nil)

	_, err := suite.service.Create(context.Background(), &model.User{Model: gorm.Model{ID: 42}}, input)
	suite.Require().ErrorIs(err, service.ErrValidation)
	suite.Equal(map[string][]string{"ingredients": {"ingredient 999 does not exist"}}, service.FieldErrors(err))
	suite.recipes.AssertNotCalled(suite.T(), "CreateRecipe", mock.Anything, mock.Anything)
}

func (suite *RecipeTestSuite) TestCreate_ReportsEveryStage() {
	input := service.RecipeInput{
		Text:        pointy.String("Mix."),
		CookingTime: pointy.Int(0),
		Tags:        []uint{},
		Ingredients: []model.IngredientAmount{{IngredientID: 7, Amount: 0}},
	}

	suite.expectCatalog(nil, []uint{7})

	_, err := suite.service.Create(context.Background(), &model.User{Model: gorm.Model{ID: 1}}, input)
	suite.Require().ErrorIs(err, service.ErrValidation)

	fields := service.FieldErrors(err)
	suite.Equal([]string{"at least one tag is required"}, fields[service.FieldTags])
	suite.Equal([]string{"amount of ingredient 7 must be at least 1"}, fields[service.FieldAmount])
	suite.Equal([]string{"must be at least 1"}, fields[service.FieldCookingTime])
	suite.Equal([]string{"this field is required"}, fields[service.FieldName])
	suite.catalog.AssertNotCalled(suite.T(), "GetTagsByIDs", mock.Anything, mock.Anything)
}

func (suite *RecipeTestSuite) TestCreate_DuplicateTagReportsFirstOffender() {
	input := teaInput()
	input.Tags = []uint{1, 3, 1, 3}

	suite.expectCatalog([]uint{1, 3}, []uint{7})

	_, err := suite.service.Create(context.Background(), &model.User{Model: gorm.Model{ID: 1}}, input)
	suite.Require().ErrorIs(err, service.ErrValidation)
	suite.Equal(map[string][]string{"tags": {"tag 1 is listed more than once"}}, service.FieldErrors(err))
}

func (suite *RecipeTestSuite) TestCreate_RetriesShortCodeCollisions() {
	ctx := context.Background()
	var attempted []string

	suite.expectCatalog([]uint{1}, []uint{7})
	suite.recipes.EXPECT().CreateRecipe(ctx, mock.Anything).Run(func(_ context.Context, recipe *model.Recipe) {
		attempted = append(attempted, recipe.ShortCode)
	}).Return(repository.ErrShortCodeTaken).Once()
	suite.recipes.EXPECT().CreateRecipe(ctx, mock.Anything).Run(func(_ context.Context, recipe *model.Recipe) {
		attempted = append(attempted, recipe.ShortCode)
		recipe.ID = 10
	}).Return(nil).Once()
	suite.recorder.EXPECT().ShortCodeCollision().Return().Once()
	suite.recorder.EXPECT().RecipeCreated().Return().Once()
	suite.recipes.EXPECT().GetRecipeByID(ctx, uint(10)).Return(storedTea(42), nil).Once()

	_, err := suite.service.Create(ctx, &model.User{Model: gorm.Model{ID: 42}}, teaInput())
	suite.Require().NoError(err)
	suite.Equal([]string{"abc123", "def456"}, attempted)
	suite.Equal(1, suite.observedLogs.FilterMessage("short code collision").Len())
}

func (suite *RecipeTestSuite) TestCreate_ExhaustedShortCodesDiscardImage() {
	ctx := context.Background()
	input := teaInput()
	input.Image = pointy.String("data:image/png;base64,AAAA")

	suite.expectCatalog([]uint{1}, []uint{7})
	suite.images.EXPECT().Save(ctx, "data:image/png;base64,AAAA").Return("/media/tea.png", nil).Once()
	suite.recipes.EXPECT().CreateRecipe(ctx, mock.Anything).Return(repository.ErrShortCodeTaken).Times(3)
	suite.recorder.EXPECT().ShortCodeCollision().Return().Times(3)
	suite.images.EXPECT().Delete(ctx, "/media/tea.png").Return(nil).Once()

	_, err := suite.service.Create(ctx, &model.User{Model: gorm.Model{ID: 42}}, input)
	suite.Require().ErrorIs(err, service.ErrShortCodesExhausted)
	suite.NotErrorIs(err, service.ErrValidation)
}

func (suite *RecipeTestSuite) TestCreate_RejectedImage() {
	ctx := context.Background()
	input := teaInput()
	input.Image = pointy.String("not an image")

	suite.expectCatalog([]uint{1}, []uint{7})
	suite.images.EXPECT().Save(ctx, "not an image").Return("", errors.New("expected a base64 data URI")).Once()

	_, err := suite.service.Create(ctx, &model.User{Model: gorm.Model{ID: 42}}, input)
	suite.Require().ErrorIs(err, service.ErrValidation)
	suite.Contains(service.FieldErrors(err), service.FieldImage)
}

func (suite *RecipeTestSuite) TestCreate_StorageErrorIsNotValidation() {
	suite.catalog.EXPECT().GetTagsByIDs(mock.Anything, []uint{1}).Return(nil, gorm.ErrInvalidDB).Once()

	_, err := suite.service.Create(context.Background(), &model.User{Model: gorm.Model{ID: 42}}, teaInput())
	suite.Require().ErrorIs(err, gorm.ErrInvalidDB)
	suite.NotErrorIs(err, service.ErrValidation)
}

func (suite *RecipeTestSuite) TestUpdate_PartialScalarUpdate() {
	ctx := context.Background()
	author := &model.User{Model: gorm.Model{ID: 42}}

	suite.recipes.EXPECT().GetRecipeByID(ctx, uint(10)).Return(storedTea(42), nil)
	suite.recipes.EXPECT().UpdateRecipe(ctx, uint(10), model.RecipeUpdate{Fields: map[string]any{"name": "Green tea"}}).Return(nil).Once()
	suite.memberships.EXPECT().GetMembershipFlags(ctx, uint(42), uint(10)).Return(&model.MembershipFlags{IsInShoppingCart: true}, nil).Once()

	view, err := suite.service.Update(ctx, author, 10, service.RecipeInput{Name: pointy.String("Green tea")})
	suite.Require().NoError(err)
	suite.True(view.IsInShoppingCart)
	suite.catalog.AssertNotCalled(suite.T(), "GetTagsByIDs", mock.Anything, mock.Anything)
}

func (suite *RecipeTestSuite) TestUpdate_ReplacesTagsAndIngredients() {
	ctx := context.Background()
	author := &model.User{Model: gorm.Model{ID: 42}}

	suite.expectCatalog([]uint{3}, []uint{8})
	suite.recipes.EXPECT().GetRecipeByID(ctx, uint(10)).Return(storedTea(42), nil)
	suite.recipes.EXPECT().UpdateRecipe(ctx, uint(10), model.RecipeUpdate{
		Fields: map[string]any{},
		TagIDs: []uint{3},
		Lines:  []model.RecipeIngredient{{IngredientID: 8, Amount: 2}},
	}).Return(nil).Once()
	suite.memberships.EXPECT().GetMembershipFlags(ctx, uint(42), uint(10)).Return(&model.MembershipFlags{}, nil).Once()

	_, err := suite.service.Update(ctx, author, 10, service.RecipeInput{
		Tags:        []uint{3},
		Ingredients: []model.IngredientAmount{{IngredientID: 8, Amount: 2}},
	})
	suite.Require().NoError(err)
}

func (suite *RecipeTestSuite) TestUpdate_EmptyTagListRejected() {
	ctx := context.Background()

	suite.recipes.EXPECT().GetRecipeByID(ctx, uint(10)).Return(storedTea(42), nil)

	_, err := suite.service.Update(ctx, &model.User{Model: gorm.Model{ID: 42}}, 10, service.RecipeInput{Tags: []uint{}})
	suite.Require().ErrorIs(err, service.ErrValidation)
	suite.Contains(service.FieldErrors(err), service.FieldTags)
	suite.recipes.AssertNotCalled(suite.T(), "UpdateRecipe", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecipeTestSuite) TestUpdate_MissingRecipe() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(5)).Return(nil, repository.ErrRecordNotFound)

	_, err := suite.service.Update(context.Background(), &model.User{Model: gorm.Model{ID: 42}}, 5, service.RecipeInput{})
	suite.Require().ErrorIs(err, service.ErrNotFound)
}

func (suite *RecipeTestSuite) TestDelete() {
	ctx := context.Background()
	recipe := storedTea(42)
	recipe.Image = pointy.String("/media/tea.png")

	suite.recipes.EXPECT().GetRecipeByID(ctx, uint(10)).Return(recipe, nil)

	err := suite.service.Delete(ctx, &model.User{Model: gorm.Model{ID: 7}}, 10)
	suite.Require().ErrorIs(err, service.ErrPermissionDenied)

	suite.recipes.EXPECT().DeleteRecipe(ctx, uint(10)).Return(nil).Once()
	suite.images.EXPECT().Delete(ctx, "/media/tea.png").Return(nil).Once()

	suite.Require().NoError(suite.service.Delete(ctx, &model.User{Model: gorm.Model{ID: 42}}, 10))
}

func (suite *RecipeTestSuite) TestGet_AnonymousHasNoFlags() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(10)).Return(storedTea(42), nil)

	view, err := suite.service.Get(context.Background(), nil, 10)
	suite.Require().NoError(err)
	suite.False(view.IsFavorited)
	suite.False(view.IsInShoppingCart)
	suite.memberships.AssertNotCalled(suite.T(), "GetMembershipFlags", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RecipeTestSuite) TestList_FlagsEveryRecipeForCaller() {
	ctx := context.Background()
	caller := &model.User{Model: gorm.Model{ID: 5}}
	soup := storedTea(8)
	soup.ID = 11

	suite.recipes.EXPECT().ListRecipes(ctx, model.RecipeFilter{AuthorID: 8, TagSlugs: []string{"lunch"}, FavoritedBy: 5}, 2, 4).
		Return([]*model.Recipe{storedTea(8), soup}, int64(7), nil).Once()
	suite.memberships.EXPECT().GetMembershipFlagsForRecipes(ctx, uint(5), []uint{10, 11}).
		Return(map[uint]model.MembershipFlags{11: {IsFavorited: true, IsSubscribed: true}}, nil).Once()

	page, err := suite.service.List(ctx, caller, service.RecipeQuery{AuthorID: 8, TagSlugs: []string{"lunch"}, Favorited: true}, 2, 4)
	suite.Require().NoError(err)
	suite.Equal(int64(7), page.Count)
	suite.Require().Len(page.Results, 2)
	suite.Equal(model.MembershipFlags{}, page.Results[0].MembershipFlags)
	suite.Equal(model.MembershipFlags{IsFavorited: true, IsSubscribed: true}, page.Results[1].MembershipFlags)
}

func (suite *RecipeTestSuite) TestList_AnonymousIgnoresMembershipFilters() {
	ctx := context.Background()

	suite.recipes.EXPECT().ListRecipes(ctx, model.RecipeFilter{}, service.DefaultPageSize, 0).
		Return([]*model.Recipe{storedTea(8)}, int64(1), nil).Once()

	page, err := suite.service.List(ctx, nil, service.RecipeQuery{Favorited: true, InShoppingCart: true}, 0, -3)
	suite.Require().NoError(err)
	suite.Require().Len(page.Results, 1)
	suite.False(page.Results[0].IsFavorited)
}

func (suite *RecipeTestSuite) TestList_StorageError() {
	suite.recipes.EXPECT().ListRecipes(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, int64(0), gorm.ErrInvalidDB).Once()

	page, err := suite.service.List(context.Background(), nil, service.RecipeQuery{}, 6, 0)
	suite.Require().ErrorIs(err, gorm.ErrInvalidDB)
	suite.Nil(page)
}

func (suite *RecipeTestSuite) TestShortLink_IsStable() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(10)).Return(storedTea(42), nil)

	first, err := suite.service.ShortLink(context.Background(), 10, "https://foodgram.example/")
	suite.Require().NoError(err)

	second, err := suite.service.ShortLink(context.Background(), 10, "https://foodgram.example/")
	suite.Require().NoError(err)

	suite.Equal("https://foodgram.example/s/abc123/", first)
	suite.Equal(first, second)
}

func (suite *RecipeTestSuite) TestResolveShortCode() {
	suite.recipes.EXPECT().GetRecipeByShortCode(mock.Anything, "abc123").Return(storedTea(42), nil).Once()
	suite.recipes.EXPECT().GetRecipeByShortCode(mock.Anything, "nope").Return(nil, repository.ErrRecordNotFound).Once()

	recipe, err := suite.service.ResolveShortCode(context.Background(), "abc123")
	suite.Require().NoError(err)
	suite.Equal(uint(10), recipe.ID)

	_, err = suite.service.ResolveShortCode(context.Background(), "nope")
	suite.Require().ErrorIs(err, service.ErrNotFound)
}

func TestNanoIDShortCodes(t *testing.T) {
	generate := service.NanoIDShortCodes(8)
	seen := map[string]bool{}

	for range 100 {
		code, err := generate()
		if err != nil {
			t.Fatal(err)
		}

		if len(code) != 8 || seen[code] {
			t.Fatalf("unexpected code %q", code)
		}

		seen[code] = true
	}

	if got := service.PublicLink(&model.Recipe{ShortCode: "xyz"}, "http://localhost:8080"); got != "http://localhost:8080/s/xyz/" {
		t.Fatalf("unexpected link %q", got)
	}
}
