package server

import (
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/service"
)

type userResponse struct {
	ID           uint    `json:"id"`
	Email        string  `json:"email"`
	Username     string  `json:"username"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	IsSubscribed bool    `json:"is_subscribed"`
	Avatar       *string `json:"avatar"`
}

type tagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ingredientResponse struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type recipeIngredientResponse struct {
	ingredientResponse
	Amount uint `json:"amount"`
}

type recipeResponse struct {
	ID               uint                       `json:"id"`
	Tags             []tagResponse              `json:"tags"`
	Author           userResponse               `json:"author"`
	Ingredients      []recipeIngredientResponse `json:"ingredients"`
	IsFavorited      bool                       `json:"is_favorited"`
	IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
	Name             string                     `json:"name"`
	Image            *string                    `json:"image"`
	Text             string                     `json:"text"`
	CookingTime      uint                       `json:"cooking_time"`
}

type previewResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Image       *string `json:"image"`
	CookingTime uint    `json:"cooking_time"`
}

type followingResponse struct {
	userResponse
	Recipes      []previewResponse `json:"recipes"`
	RecipesCount int64             `json:"recipes_count"`
}

type pageResponse[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}

type shortLinkResponse struct {
	ShortLink string `json:"short-link"`
}

// userFromModel renders a user; subscribed tells whether the caller follows them.
func userFromModel(user model.User, subscribed bool) userResponse {
	return userResponse{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: subscribed,
		Avatar:       user.Avatar,
	}
}

func tagsFromModel(tags []*model.Tag) []tagResponse {
	result := make([]tagResponse, 0, len(tags))
	for _, tag := range tags {
		result = append(result, tagResponse{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}

	return result
}

func ingredientsFromModel(ingredients []*model.Ingredient) []ingredientResponse {
	result := make([]ingredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, ingredientResponse{ID: ingredient.ID, Name: ingredient.Name, MeasurementUnit: ingredient.MeasurementUnit})
	}

	return result
}

func previewFromModel(preview model.RecipePreview) previewResponse {
	return previewResponse{ID: preview.ID, Name: preview.Name, Image: preview.Image, CookingTime: preview.CookingTime}
}

func recipeFromView(view *service.RecipeView) recipeResponse {
	recipe := view.Recipe

	response := recipeResponse{
		ID:               recipe.ID,
		Tags:             make([]tagResponse, 0, len(recipe.Tags)),
		Author:           userFromModel(recipe.Author, view.IsSubscribed),
		Ingredients:      make([]recipeIngredientResponse, 0, len(recipe.Ingredients)),
		IsFavorited:      view.IsFavorited,
		IsInShoppingCart: view.IsInShoppingCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}

	for _, tag := range recipe.Tags {
		response.Tags = append(response.Tags, tagResponse{ID: tag.ID, Name: tag.Name, Slug: tag.Slug})
	}

	for _, line := range recipe.Ingredients {
		response.Ingredients = append(response.Ingredients, recipeIngredientResponse{
			ingredientResponse: ingredientResponse{
				ID:              line.IngredientID,
				Name:            line.Ingredient.Name,
				MeasurementUnit: line.Ingredient.MeasurementUnit,
			},
			Amount: line.Amount,
		})
	}

	return response
}

func followingFromModel(following model.Following) followingResponse {
	response := followingResponse{
		userResponse: userFromModel(following.Author, true),
		Recipes:      make([]previewResponse, 0, len(following.Recipes)),
		RecipesCount: following.RecipesCount,
	}

	for _, preview := range following.Recipes {
		response.Recipes = append(response.Recipes, previewFromModel(preview))
	}

	return response
}
