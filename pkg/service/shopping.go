package service

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/model"
)

const (
	ShoppingListHeader   = "Shopping list:"
	ShoppingListFilename = "shop_list.txt"
)

// AggregateCart sums cart lines per ingredient. Items are ordered by name and
// then by ingredient id.
func AggregateCart(lines []model.CartLine) []model.ShoppingListItem {
	totals := make(map[uint]*model.ShoppingListItem, len(lines))

	for _, line := range lines {
		item, ok := totals[line.IngredientID]
		if !ok {
			item = &model.ShoppingListItem{
				IngredientID:    line.IngredientID,
				Name:            line.Name,
				MeasurementUnit: line.MeasurementUnit,
			}
			totals[line.IngredientID] = item
		}

		item.TotalAmount += uint64(line.Amount)
	}

	items := make([]model.ShoppingListItem, 0, len(totals))
	for _, item := range totals {
		items = append(items, *item)
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}

		return items[i].IngredientID < items[j].IngredientID
	})

	return items
}

// RenderShoppingList writes the plain text report: a header, a blank line and
// one "name - total unit" line per item.
func RenderShoppingList(items []model.ShoppingListItem) []byte {
	var buf bytes.Buffer

	buf.WriteString(ShoppingListHeader)
	buf.WriteString("\n\n")

	for _, item := range items {
		fmt.Fprintf(&buf, "%s - %d %s\n", item.Name, item.TotalAmount, item.MeasurementUnit)
	}

	return buf.Bytes()
}

type ShoppingListService struct {
	memberships MembershipRepository
	logger      *zap.Logger
}

func NewShoppingListService(memberships MembershipRepository, logger *zap.Logger) *ShoppingListService {
	return &ShoppingListService{memberships: memberships, logger: logger}
}

// Build aggregates the ingredients of every recipe in the user's cart.
func (s *ShoppingListService) Build(ctx context.Context, user *model.User) ([]model.ShoppingListItem, error) {
	if user == nil {
		return nil, ErrAuthenticationRequired
	}

	lines, err := s.memberships.GetCartLines(ctx, user.ID)
	if err != nil {
		s.logger.Error("error loading cart lines", zap.Uint("user_id", user.ID), zap.Error(err))

		return nil, err
	}

	return AggregateCart(lines), nil
}

func (s *ShoppingListService) Report(ctx context.Context, user *model.User) ([]byte, error) {
	items, err := s.Build(ctx, user)
	if err != nil {
		return nil, err
	}

	return RenderShoppingList(items), nil
}
