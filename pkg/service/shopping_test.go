package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"droscher.com/Foodgram/mocks"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/service"
)

func TestAggregateCart_SumsPerIngredient(t *testing.T) {
	items := service.AggregateCart([]model.CartLine{
		{RecipeID: 1, IngredientID: 7, Name: "Flour", MeasurementUnit: "g", Amount: 200},
		{RecipeID: 1, IngredientID: 3, Name: "Eggs", MeasurementUnit: "pcs", Amount: 2},
		{RecipeID: 2, IngredientID: 7, Name: "Flour", MeasurementUnit: "g", Amount: 300},
	})

	assert.Equal(t, []model.ShoppingListItem{
		{IngredientID: 3, Name: "Eggs", MeasurementUnit: "pcs", TotalAmount: 2},
		{IngredientID: 7, Name: "Flour", MeasurementUnit: "g", TotalAmount: 500},
	}, items)
}

func TestAggregateCart_KeepsSameNamedIngredientsApart(t *testing.T) {
	items := service.AggregateCart([]model.CartLine{
		{RecipeID: 1, IngredientID: 9, Name: "Salt", MeasurementUnit: "g", Amount: 5},
		{RecipeID: 2, IngredientID: 4, Name: "Salt", MeasurementUnit: "pinch", Amount: 1},
	})

	require.Len(t, items, 2)
	assert.Equal(t, uint(4), items[0].IngredientID)
	assert.Equal(t, uint(9), items[1].IngredientID)
}

func TestRenderShoppingList(t *testing.T) {
	report := service.RenderShoppingList([]model.ShoppingListItem{{Name: "Flour", MeasurementUnit: "g", TotalAmount: 500}})
	assert.Equal(t, "Shopping list:\n\nFlour - 500 g\n", string(report))

	assert.Equal(t, "Shopping list:\n\n", string(service.RenderShoppingList(nil)))
}

func TestShoppingListService_Report(t *testing.T) {
	ctx := context.Background()
	memberships := mocks.NewMembershipRepository(t)
	shopping := service.NewShoppingListService(memberships, zap.NewNop())

	memberships.EXPECT().GetCartLines(ctx, uint(5)).Return([]model.CartLine{
		{RecipeID: 1, IngredientID: 7, Name: "Flour", MeasurementUnit: "g", Amount: 200},
		{RecipeID: 2, IngredientID: 7, Name: "Flour", MeasurementUnit: "g", Amount: 300},
	}, nil).Once()

	report, err := shopping.Report(ctx, &model.User{Model: gorm.Model{ID: 5}})
	require.NoError(t, err)
	assert.Equal(t, "Shopping list:\n\nFlour - 500 g\n", string(report))

	_, err = shopping.Report(ctx, nil)
	require.ErrorIs(t, err, service.ErrAuthenticationRequired)
}
