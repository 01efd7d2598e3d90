package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"

	"droscher.com/Foodgram/pkg/model"
)

type CatalogTestSuite struct {
	RepositorySuite
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (suite *CatalogTestSuite) TestSearchIngredients_ByPrefix() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ingredients" WHERE name ILIKE $1 AND "ingredients"."deleted_at" IS NULL ORDER BY name`)).
		WithArgs("fl%").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "measurement_unit"}).
			AddRow(1, "Flour", "g").
			AddRow(2, "Flax seeds", "g"))

	ingredients, err := suite.repository.SearchIngredients(context.Background(), "fl")
	suite.Require().NoError(err)
	suite.Len(ingredients, 2)
	suite.Equal("Flour", ingredients[0].Name)
}

func (suite *CatalogTestSuite) TestSearchIngredients_EscapesWildcards() {
	suite.mock.ExpectQuery(`SELECT \* FROM "ingredients" WHERE name ILIKE \$1`).
		WithArgs(`50\%\_%`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ingredients, err := suite.repository.SearchIngredients(context.Background(), "50%_")
	suite.Require().NoError(err)
	suite.Empty(ingredients)
}

func (suite *CatalogTestSuite) TestSearchIngredients_EmptyPrefixListsAll() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "ingredients" WHERE "ingredients"."deleted_at" IS NULL ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Apple"))

	ingredients, err := suite.repository.SearchIngredients(context.Background(), "")
	suite.Require().NoError(err)
	suite.Len(ingredients, 1)
}

func (suite *CatalogTestSuite) TestGetTagsByIDs() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "tags" WHERE id IN ($1,$2) AND "tags"."deleted_at" IS NULL`)).
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug"}).AddRow(1, "Breakfast", "breakfast"))

	tags, err := suite.repository.GetTagsByIDs(context.Background(), []uint{1, 2})
	suite.Require().NoError(err)
	suite.Len(tags, 1)
}

func (suite *CatalogTestSuite) TestSeedIngredients_SkipsExisting() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`INSERT INTO "ingredients" (.+) ON CONFLICT DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	suite.mock.ExpectCommit()

	created, err := suite.repository.SeedIngredients(context.Background(), []model.Ingredient{
		{Name: "Flour", MeasurementUnit: "g"},
		{Name: "Milk", MeasurementUnit: "ml"},
	})
	suite.Require().NoError(err)
	suite.Equal(int64(1), created)
}

func (suite *CatalogTestSuite) TestSeedTags_Nothing() {
	created, err := suite.repository.SeedTags(context.Background(), nil)
	suite.Require().NoError(err)
	suite.Zero(created)
}
