package api

import (
	"net/http"

	"studioops/internal/catalog"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) listFormCategories(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"categories": catalog.FeedbackCategories(),
	})
}

func (d Dependencies) listFormTemplates(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"templates": catalog.FormTemplates(),
	})
}

// getFormTemplate resolves a category to its form schema. Unknown categories
// get the general form rather than a 404; submissions for them still work.
func (d Dependencies) getFormTemplate(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"category": category,
		"known":    catalog.KnownCategory(category),
		"template": catalog.FormTemplate(category),
	})
}
