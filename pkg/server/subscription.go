package server

import (
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/service"
)

type SubscriptionHandler struct {
	subscriptions *service.SubscriptionService
	logger        *zap.Logger
}

func NewSubscriptionHandler(subscriptions *service.SubscriptionService, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions, logger: logger}
}

// ListSubscriptions handles GET /api/users/subscriptions?limit=&offset=&page=&recipes_limit=.
func (h *SubscriptionHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := pagination(r)
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	recipesLimit, err := queryInt(r, "recipes_limit")
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	page, err := h.subscriptions.ListFollowing(r.Context(), auth.UserFromContext(r.Context()), limit, offset, recipesLimit)
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	response := pageResponse[followingResponse]{Count: page.Count, Results: make([]followingResponse, 0, len(page.Results))}
	for _, following := range page.Results {
		response.Results = append(response.Results, followingFromModel(following))
	}

	writeJSON(w, http.StatusOK, response)
}

// Subscribe handles POST /api/users/{id}/subscribe?recipes_limit=.
func (h *SubscriptionHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	recipesLimit, err := queryInt(r, "recipes_limit")
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	following, err := h.subscriptions.Follow(r.Context(), auth.UserFromContext(r.Context()), authorID, recipesLimit)
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	writeJSON(w, http.StatusCreated, followingFromModel(*following))
}

func (h *SubscriptionHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathID(r, "id")
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	if err = h.subscriptions.Unfollow(r.Context(), auth.UserFromContext(r.Context()), authorID); err != nil {
		writeError(w, h.logger, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// pagination reads limit and offset, accepting page as an alternative to offset.
func pagination(r *http.Request) (int, int, error) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		return 0, 0, err
	}

	offset, err := queryInt(r, "offset")
	if err != nil {
		return 0, 0, err
	}

	page, err := queryInt(r, "page")
	if err != nil {
		return 0, 0, err
	}

	size := service.DefaultPageSize
	if limit != nil && *limit > 0 {
		size = *limit
	}

	switch {
	case offset != nil:
		return size, *offset, nil
	case page != nil && *page > 1:
		return size, (*page - 1) * size, nil
	default:
		return size, 0, nil
	}
}
