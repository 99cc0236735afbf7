package api

import (
	"encoding/json"
	"net/http"
)

type BuilderRequest struct {
	Input string `json:"input" validate:"required"`
}

// parseStructure runs only the heuristic parser and reports whether the
// input was accepted as a form structure.
func (d Dependencies) parseStructure(w http.ResponseWriter, r *http.Request) {
	var req BuilderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if err := d.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), d.Log)
		return
	}

	suggestion, ok := d.Builder.ParseStructure(req.Input)
	if !ok {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"parsed": false,
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"parsed":     true,
		"suggestion": suggestion,
	})
}

// generateTemplate always produces a suggestion: parser, then AI, then the
// generic fallback. The source field reports which path won.
func (d Dependencies) generateTemplate(w http.ResponseWriter, r *http.Request) {
	var req BuilderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if err := d.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), d.Log)
		return
	}

	suggestion, source := d.Builder.Generate(r.Context(), req.Input)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"suggestion": suggestion,
		"source":     source,
	})
}
