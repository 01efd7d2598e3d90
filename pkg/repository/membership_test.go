package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"

	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type MembershipTestSuite struct {
	RepositorySuite
}

func TestMembershipTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipTestSuite))
}

func (suite *MembershipTestSuite) TestAddMembership_Favorite() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "favorites" ("user_id","recipe_id","created_at") VALUES ($1,$2,$3)`)).
		WithArgs(1, 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.Require().NoError(suite.repository.AddMembership(context.Background(), model.KindFavorite, 1, 2))
}

func (suite *MembershipTestSuite) TestAddMembership_DuplicateCartEntry() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO "cart_entries"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "cart_entries_pkey"})
	suite.mock.ExpectRollback()

	err := suite.repository.AddMembership(context.Background(), model.KindCart, 1, 2)
	suite.Require().ErrorIs(err, repository.ErrDuplicate)
}

func (suite *MembershipTestSuite) TestRemoveMembership_MissingEntry() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "cart_entries" WHERE user_id = $1 AND recipe_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.RemoveMembership(context.Background(), model.KindCart, 1, 2)
	suite.Require().ErrorIs(err, repository.ErrRecordNotFound)
}

func (suite *MembershipTestSuite) TestRemoveMembership_Favorite() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "favorites" WHERE user_id = $1 AND recipe_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	suite.mock.ExpectCommit()

	suite.Require().NoError(suite.repository.RemoveMembership(context.Background(), model.KindFavorite, 1, 2))
}

func (suite *MembershipTestSuite) TestGetMembershipFlags() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "favorites" WHERE user_id = $1 AND recipe_id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "cart_entries" WHERE user_id = $1 AND recipe_id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM subscriptions AS s INNER JOIN recipes r ON r.author_id = s.author_id WHERE s.follower_id = $1 AND r.id = $2`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	flags, err := suite.repository.GetMembershipFlags(context.Background(), 1, 2)
	suite.Require().NoError(err)
	suite.True(flags.IsFavorited)
	suite.False(flags.IsInShoppingCart)
	suite.True(flags.IsSubscribed)
}

func (suite *MembershipTestSuite) TestGetMembershipFlagsForRecipes() {
	suite.mock.ExpectQuery(`SELECT (.+) FROM "favorites" WHERE user_id = \$1 AND recipe_id IN \(\$2,\$3\)`).
		WithArgs(1, 10, 11).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id"}).AddRow(10))
	suite.mock.ExpectQuery(`SELECT (.+) FROM "cart_entries" WHERE user_id = \$1 AND recipe_id IN \(\$2,\$3\)`).
		WithArgs(1, 10, 11).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id"}).AddRow(11))
	suite.mock.ExpectQuery(`SELECT r.id FROM recipes AS r INNER JOIN subscriptions s ON s.author_id = r.author_id WHERE s.follower_id = \$1 AND r.id IN \(\$2,\$3\)`).
		WithArgs(1, 10, 11).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10).AddRow(11))

	flags, err := suite.repository.GetMembershipFlagsForRecipes(context.Background(), 1, []uint{10, 11})
	suite.Require().NoError(err)
	suite.Equal(map[uint]model.MembershipFlags{
		10: {IsFavorited: true, IsSubscribed: true},
		11: {IsInShoppingCart: true, IsSubscribed: true},
	}, flags)
}

func (suite *MembershipTestSuite) TestGetMembershipFlagsForRecipes_NoRecipes() {
	flags, err := suite.repository.GetMembershipFlagsForRecipes(context.Background(), 1, nil)
	suite.Require().NoError(err)
	suite.Empty(flags)
}

func (suite *MembershipTestSuite) TestGetCartLines() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount FROM cart_entries AS ce INNER JOIN recipe_ingredients ri ON ri.recipe_id = ce.recipe_id INNER JOIN ingredients i ON i.id = ri.ingredient_id WHERE ce.user_id = $1`)).
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"recipe_id", "ingredient_id", "name", "measurement_unit", "amount"}).
			AddRow(1, 7, "Flour", "g", 200).
			AddRow(2, 7, "Flour", "g", 300))

	lines, err := suite.repository.GetCartLines(context.Background(), 3)
	suite.Require().NoError(err)
	suite.Require().Len(lines, 2)
	suite.Equal(model.CartLine{RecipeID: 2, IngredientID: 7, Name: "Flour", MeasurementUnit: "g", Amount: 300}, lines[1])
}
