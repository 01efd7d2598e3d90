package service

import (
	"context"
	"strings"

	"droscher.com/Foodgram/pkg/model"
)

type CatalogService struct {
	catalog CatalogRepository
}

func NewCatalogService(catalog CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// SearchIngredients lists ingredients whose name starts with prefix; an empty
// prefix lists them all.
func (s *CatalogService) SearchIngredients(ctx context.Context, prefix string) ([]*model.Ingredient, error) {
	return s.catalog.SearchIngredients(ctx, strings.TrimSpace(prefix))
}

func (s *CatalogService) Tags(ctx context.Context) ([]*model.Tag, error) {
	return s.catalog.GetTags(ctx)
}
