package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
	"droscher.com/Foodgram/pkg/service"
)

type MembershipTestSuite struct {
	suite.Suite
	recipes     *mocks.RecipeRepository
	memberships *mocks.MembershipRepository
	service     *service.MembershipService
	user        *model.User
}

func TestMembershipTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipTestSuite))
}

func (suite *MembershipTestSuite) SetupTest() {
	suite.recipes = mocks.NewRecipeRepository(suite.T())
	suite.memberships = mocks.NewMembershipRepository(suite.T())
	suite.service = service.NewMembershipService(suite.recipes, suite.memberships, zap.NewNop())
	suite.user = &model.User{Model: gorm.Model{ID: 3}}
}

func (suite *MembershipTestSuite) TestAdd_TwiceConflicts() {
	ctx := context.Background()

	suite.recipes.EXPECT().GetRecipeByID(ctx, uint(10)).Return(storedTea(42), nil)
	suite.memberships.EXPECT().AddMembership(ctx, model.KindFavorite, uint(3), uint(10)).Return(nil).Once()
	suite.memberships.EXPECT().AddMembership(ctx, model.KindFavorite, uint(3), uint(10)).Return(repository.ErrDuplicate).Once()

	preview, err := suite.service.Add(ctx, suite.user, model.KindFavorite, 10)
	suite.Require().NoError(err)
	suite.Equal(model.RecipePreview{ID: 10, Name: "Tea", CookingTime: 5}, *preview)

	_, err = suite.service.Add(ctx, suite.user, model.KindFavorite, 10)
	suite.Require().ErrorIs(err, service.ErrConflict)
	suite.Require().ErrorContains(err, "already in your favorite")
}

func (suite *MembershipTestSuite) TestRemoveAddRemove() {
	ctx := context.Background()

	suite.recipes.EXPECT().GetRecipeByID(ctx, uint(10)).Return(storedTea(42), nil)
	suite.memberships.EXPECT().RemoveMembership(ctx, model.KindCart, uint(3), uint(10)).Return(nil).Twice()
	suite.memberships.EXPECT().AddMembership(ctx, model.KindCart, uint(3), uint(10)).Return(nil).Once()

	suite.Require().NoError(suite.service.Remove(ctx, suite.user, model.KindCart, 10))
	_, err := suite.service.Add(ctx, suite.user, model.KindCart, 10)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.service.Remove(ctx, suite.user, model.KindCart, 10))
}

func (suite *MembershipTestSuite) TestRemove_NotPresentConflicts() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(10)).Return(storedTea(42), nil)
	suite.memberships.EXPECT().RemoveMembership(mock.Anything, model.KindCart, uint(3), uint(10)).Return(repository.ErrRecordNotFound).Once()

	err := suite.service.Remove(context.Background(), suite.user, model.KindCart, 10)
	suite.Require().ErrorIs(err, service.ErrConflict)
	suite.Require().ErrorContains(err, "not in your shopping_cart")
}

func (suite *MembershipTestSuite) TestAdd_UnknownRecipe() {
	suite.recipes.EXPECT().GetRecipeByID(mock.Anything, uint(77)).Return(nil, repository.ErrRecordNotFound).Once()

	_, err := suite.service.Add(context.Background(), suite.user, model.KindFavorite, 77)
	suite.Require().ErrorIs(err, service.ErrNotFound)
}

func (suite *MembershipTestSuite) TestAnonymousRejected() {
	_, err := suite.service.Add(context.Background(), nil, model.KindFavorite, 10)
	suite.Require().ErrorIs(err, service.ErrAuthenticationRequired)

	err = suite.service.Remove(context.Background(), nil, model.KindCart, 10)
	suite.Require().ErrorIs(err, service.ErrAuthenticationRequired)
}
