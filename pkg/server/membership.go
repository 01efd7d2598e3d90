package server

import (
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/auth"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/service"
)

type MembershipHandler struct {
	memberships *service.MembershipService
	shopping    *service.ShoppingListService
	logger      *zap.Logger
}

func NewMembershipHandler(memberships *service.MembershipService, shopping *service.ShoppingListService, logger *zap.Logger) *MembershipHandler {
	return &MembershipHandler{memberships: memberships, shopping: shopping, logger: logger}
}

// Add returns the handler putting recipe {id} into the caller's set of kind.
func (h *MembershipHandler) Add(kind model.MembershipKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, "id")
		if err != nil {
			writeError(w, h.logger, err)

			return
		}

		preview, err := h.memberships.Add(r.Context(), auth.UserFromContext(r.Context()), kind, recipeID)
		if err != nil {
			writeError(w, h.logger, err)

			return
		}

		writeJSON(w, http.StatusCreated, previewFromModel(*preview))
	}
}

func (h *MembershipHandler) Remove(kind model.MembershipKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID, err := pathID(r, "id")
		if err != nil {
			writeError(w, h.logger, err)

			return
		}

		if err = h.memberships.Remove(r.Context(), auth.UserFromContext(r.Context()), kind, recipeID); err != nil {
			writeError(w, h.logger, err)

			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DownloadShoppingList handles GET /api/recipes/download_shopping_cart.
func (h *MembershipHandler) DownloadShoppingList(w http.ResponseWriter, r *http.Request) {
	report, err := h.shopping.Report(r.Context(), auth.UserFromContext(r.Context()))
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+service.ShoppingListFilename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(report)
}
