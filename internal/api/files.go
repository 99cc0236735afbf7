package api

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"studioops/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

type SignFileRequest struct {
	Name        string `json:"name" validate:"required"`
	ContentType string `json:"contentType" validate:"required"`
	Size        int64  `json:"size" validate:"gte=0"`
	FieldID     string `json:"fieldId,omitempty"`
}

// signFile issues an upload URL for a feedback attachment after checking it
// against the attachment policy.
func (d Dependencies) signFile(w http.ResponseWriter, r *http.Request) {
	var req SignFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid request body", d.Log)
		return
	}
	if err := d.validate.Struct(req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", err.Error(), d.Log)
		return
	}

	policy := storage.FeedbackPolicy()
	if err := policy.ValidateFile(req.Name, req.ContentType, req.Size); err != nil {
		WriteError(w, http.StatusBadRequest, "policy_violation", err.Error(), d.Log)
		return
	}

	objectName := ulid.Make().String() + filepath.Ext(req.Name)
	uploadURL, err := d.Store.PresignPut(r.Context(), objectName, req.ContentType, 15*time.Minute)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "sign_failed", err.Error(), d.Log)
		return
	}
	downloadURL, err := d.Store.PresignGet(r.Context(), objectName, 15*time.Minute)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, "sign_failed", err.Error(), d.Log)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"objectName":  objectName,
		"uploadUrl":   uploadURL,
		"downloadUrl": downloadURL,
	})
}

// validObjectName rejects anything that could escape the storage directory.
func validObjectName(name string) bool {
	return name != "" &&
		!strings.Contains(name, "/") &&
		!strings.Contains(name, "\\") &&
		!strings.Contains(name, "..")
}

// uploadFile receives the body of a presigned PUT and stores it.
func (d Dependencies) uploadFile(w http.ResponseWriter, r *http.Request) {
	objectName := chi.URLParam(r, "objectName")
	if !validObjectName(objectName) {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid object name", d.Log)
		return
	}

	if err := d.Store.Put(r.Context(), objectName, r.Body); err != nil {
		WriteError(w, http.StatusInternalServerError, "upload_failed", err.Error(), d.Log)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]string{"objectName": objectName})
}

func (d Dependencies) downloadFile(w http.ResponseWriter, r *http.Request) {
	objectName := chi.URLParam(r, "objectName")
	if !validObjectName(objectName) {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid object name", d.Log)
		return
	}

	reader, err := d.Store.Get(r.Context(), objectName)
	if err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Object not found", d.Log)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, reader); err != nil {
		d.Log.Warn("Failed to stream object", zap.String("object", objectName), zap.Error(err))
	}
}

func (d Dependencies) deleteFile(w http.ResponseWriter, r *http.Request) {
	objectName := chi.URLParam(r, "objectName")
	if !validObjectName(objectName) {
		WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid object name", d.Log)
		return
	}

	if err := d.Store.Delete(r.Context(), objectName); err != nil {
		WriteError(w, http.StatusNotFound, "not_found", "Object not found", d.Log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
