package api

import (
	"net/http"

	"studioops/internal/catalog"

	"github.com/go-chi/chi/v5"
)

func (d Dependencies) listPhases(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"phases": catalog.Phases(),
	})
}

func (d Dependencies) getStep(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	step, ok := catalog.Step(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "not_found", "Step not found", d.Log)
		return
	}

	phase, _ := catalog.PhaseForStep(id)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"step":    step,
		"phaseId": phase.ID,
	})
}

func (d Dependencies) getStepTemplates(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	step, ok := catalog.Step(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "not_found", "Step not found", d.Log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"stepId":    step.ID,
		"templates": catalog.ResolveTemplates(step),
	})
}

func (d Dependencies) listMessageTemplates(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"templates": catalog.MessageTemplates(),
	})
}

func (d Dependencies) getMessageTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, ok := catalog.MessageTemplateByID(id)
	if !ok {
		WriteError(w, http.StatusNotFound, "not_found", "Template not found", d.Log)
		return
	}
	WriteJSON(w, http.StatusOK, t)
}
