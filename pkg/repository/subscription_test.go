package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"

	"droscher.com/Foodgram/pkg/repository"
)

type SubscriptionTestSuite struct {
	RepositorySuite
}

func TestSubscriptionTestSuite(t *testing.T) {
	suite.Run(t, new(SubscriptionTestSuite))
}

func (suite *SubscriptionTestSuite) TestAddSubscription_Duplicate() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`INSERT INTO "subscriptions"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "subscriptions_pkey"})
	suite.mock.ExpectRollback()

	err := suite.repository.AddSubscription(context.Background(), 1, 2)
	suite.Require().ErrorIs(err, repository.ErrDuplicate)
}

func (suite *SubscriptionTestSuite) TestRemoveSubscription_NotFollowing() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "subscriptions" WHERE follower_id = $1 AND author_id = $2`)).
		WithArgs(1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.RemoveSubscription(context.Background(), 1, 2)
	suite.Require().ErrorIs(err, repository.ErrRecordNotFound)
}

func (suite *SubscriptionTestSuite) TestGetFollowedAuthors() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" INNER JOIN subscriptions s ON s.author_id = users.id WHERE s.follower_id = $1`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(8))
	suite.mock.ExpectQuery(`SELECT (.+) FROM "users" INNER JOIN subscriptions s ON s.author_id = users.id WHERE s.follower_id = \$1 (.+) ORDER BY users.id LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(2, "alice").AddRow(3, "bob"))

	authors, total, err := suite.repository.GetFollowedAuthors(context.Background(), 1, 2, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(8), total)
	suite.Require().Len(authors, 2)
	suite.Equal("bob", authors[1].Username)
}

func (suite *SubscriptionTestSuite) TestGetRecipePreviews() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id","name","image","cooking_time" FROM "recipes" WHERE author_id = $1 AND "recipes"."deleted_at" IS NULL ORDER BY created_at DESC LIMIT $2`)).
		WithArgs(2, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "image", "cooking_time"}).AddRow(9, "Soup", nil, 40))

	previews, err := suite.repository.GetRecipePreviews(context.Background(), 2, 3)
	suite.Require().NoError(err)
	suite.Require().Len(previews, 1)
	suite.Equal("Soup", previews[0].Name)
	suite.Nil(previews[0].Image)
}

func (suite *SubscriptionTestSuite) TestCountRecipesByAuthor() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "recipes" WHERE author_id = $1 AND "recipes"."deleted_at" IS NULL`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := suite.repository.CountRecipesByAuthor(context.Background(), 2)
	suite.Require().NoError(err)
	suite.Equal(int64(12), count)
}
