package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/service"
)

type ingredientAmountRequest struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

type recipeRequest struct {
	Ingredients []ingredientAmountRequest `json:"ingredients"`
	Tags        []uint                    `json:"tags"`
	Image       *string                   `json:"image"`
	Name        *string                   `json:"name"`
	Text        *string                   `json:"text"`
	CookingTime *int                      `json:"cooking_time"`
}

func (req recipeRequest) input() service.RecipeInput {
	input := service.RecipeInput{
		Name:        req.Name,
		Text:        req.Text,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		Tags:        req.Tags,
	}

	if req.Ingredients != nil {
		input.Ingredients = make([]model.IngredientAmount, 0, len(req.Ingredients))
		for _, line := range req.Ingredients {
			input.Ingredients = append(input.Ingredients, model.IngredientAmount{IngredientID: line.ID, Amount: line.Amount})
		}
	}

	return input
}

type RecipeHandler struct {
	recipes *service.RecipeService
	baseURL string
	logger  *zap.Logger
}

// NewRecipeHandler serves recipe authoring and public links. An empty baseURL
// builds links from the incoming request's host.
func NewRecipeHandler(recipes *service.RecipeService, baseURL string, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, baseURL: baseURL, logger: logger}
}

// CreateRecipe handles POST /api/recipes.
func (h *RecipeHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)

		return
	}

	view, err := h.recipes.Create(r.Context(), auth.UserFromContext(r.Context()), req.input())
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	writeJSON(w, http.StatusCreated, recipeFromView(view))
}

// ListRecipes handles GET /api/recipes?limit=&offset=&page=&author=&tags=&is_favorited=&is_in_shopping_cart=.
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	query, err := recipeQuery(r)
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	page, err := h.recipes.List(r.Context(), auth.UserFromContext(r.Context()), query, limit, offset)
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	response := pageResponse[recipeResponse]{Count: page.Count, Results: make([]recipeResponse, 0, len(page.Results))}
	for i := range page.Results {
		response.Results = append(response.Results, recipeFromView(&page.Results[i]))
	}

	writeJSON(w, http.StatusOK, response)
}

func recipeQuery(r *http.Request) (service.RecipeQuery, error) {
	query := service.RecipeQuery{TagSlugs: r.URL.Query()["tags"]}

	author, err := queryInt(r, "author")
	if err != nil {
		return query, err
	}

	if author != nil {
		if *author < 1 {
			return query, fmt.Errorf("%w: author must be a positive integer", ErrBadRequest)
		}

		query.AuthorID = uint(*author)
	}

	if query.Favorited, err = queryBool(r, "is_favorited"); err != nil {
		return query, err
	}

	if query.InShoppingCart, err = queryBool(r, "is_in_shopping_cart"); err != nil {
		return query, err
	}

	return query, nil
}

// GetRecipe handles GET /api/recipes/{id}.
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	view, err := h.recipes.Get(r.Context(), auth.UserFromContext(r.Context()), recipeID)
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, recipeFromView(view))
}

// UpdateRecipe handles PATCH /api/recipes/{id}.
func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	var req recipeRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, h.logger, err)

		return
	}

	view, err := h.recipes.Update(r.Context(), auth.UserFromContext(r.Context()), recipeID, req.input())
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, recipeFromView(view))
}

// ReplaceRecipe rejects PUT; recipes only accept partial updates.
func (h *RecipeHandler) ReplaceRecipe(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, PATCH, DELETE")
	writeDetail(w, http.StatusMethodNotAllowed, fmt.Sprintf("Method %q not allowed.", r.Method))
}

// DeleteRecipe handles DELETE /api/recipes/{id}.
func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	if err = h.recipes.Delete(r.Context(), auth.UserFromContext(r.Context()), recipeID); err != nil {
		writeError(w, h.logger, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLink handles GET /api/recipes/{id}/get-link, answering {"short-link": ...}.
func (h *RecipeHandler) GetLink(w http.ResponseWriter, r *http.Request) {
	h.writeLink(w, r, func(link string) any { return shortLinkResponse{ShortLink: link} })
}

// ShortLink handles GET /api/recipes/{id}/short-link, answering {"short_link": ...}.
func (h *RecipeHandler) ShortLink(w http.ResponseWriter, r *http.Request) {
	h.writeLink(w, r, func(link string) any { return map[string]string{"short_link": link} })
}

func (h *RecipeHandler) writeLink(w http.ResponseWriter, r *http.Request, body func(link string) any) {
	recipeID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	link, err := h.recipes.ShortLink(r.Context(), recipeID, h.base(r))
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, body(link))
}

// FollowShortLink handles GET /s/{code} by redirecting to the recipe page.
func (h *RecipeHandler) FollowShortLink(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.recipes.ResolveShortCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	http.Redirect(w, r, fmt.Sprintf("/recipes/%d/", recipe.ID), http.StatusFound)
}

func (h *RecipeHandler) base(r *http.Request) string {
	if h.baseURL != "" {
		return h.baseURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	if forwarded := r.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	return scheme + "://" + r.Host
}
