package server

import (
	"net/http"

	"go.uber.org/zap"

	"droscher.com/Foodgram/pkg/service"
)

type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *zap.Logger
}

func NewCatalogHandler(catalog *service.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// ListIngredients handles GET /api/ingredients?name=<prefix>.
func (h *CatalogHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.catalog.SearchIngredients(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, ingredientsFromModel(ingredients))
}

func (h *CatalogHandler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.catalog.Tags(r.Context())
	if err != nil {
		writeError(w, h.logger, err)

		return
	}

	writeJSON(w, http.StatusOK, tagsFromModel(tags))
}
