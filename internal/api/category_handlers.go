package api

import (
	"net/http"
	"strings"
)

// ListCategories returns the catalog categories with their product counts
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.queryHandler.ListCategories())
}

// GetProductsByCategory returns the products of one category, optionally filtered by q
func (h *Handlers) GetProductsByCategory(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(extractPathParam(r.URL.Path, "/categories/"), "/products")

	known := false
	for _, c := range h.queryHandler.ListCategories() {
		if c.Name == name {
			known = true
			break
		}
	}
	if !known {
		respondJSONError(w, "Category not found", http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, h.queryHandler.SearchProducts(r.URL.Query().Get("q"), name))
}
