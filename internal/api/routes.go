package api

import (
	"net/http"

	"studioops/internal/ai"
	"studioops/internal/auth"
	"studioops/internal/db"
	"studioops/internal/pubsub"
	"studioops/internal/service"
	"studioops/internal/storage"
	"studioops/internal/ws"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Dependencies struct {
	DB        *db.Pool
	Bus       *pubsub.Bus
	Hub       *ws.Hub
	Log       *zap.Logger
	JobClient service.JobClient
	Analyzer  ai.Analyzer
	Feedback  *service.FeedbackService
	Builder   *service.BuilderService
	History   *service.HistoryService
	Store     storage.Storage
	JWTSecret string

	validate *validator.Validate
}

func Routes(d Dependencies) http.Handler {
	d.validate = validator.New()

	r := chi.NewRouter()

	r.Use(RequestLogger(d.Log))

	jwtConfig := auth.NewJWTConfig(d.JWTSecret)
	r.Use(jwtConfig.Middleware)

	r.Get("/healthz", d.healthz)

	r.Route("/v1", func(r chi.Router) {
		// Outreach playbook (static catalog)
		r.Get("/playbook/phases", d.listPhases)
		r.Get("/playbook/steps/{id}", d.getStep)
		r.Get("/playbook/steps/{id}/templates", d.getStepTemplates)
		r.Get("/playbook/templates", d.listMessageTemplates)
		r.Get("/playbook/templates/{id}", d.getMessageTemplate)

		// Feedback form catalog
		r.Get("/forms/categories", d.listFormCategories)
		r.Get("/forms/templates", d.listFormTemplates)
		r.Get("/forms/templates/{category}", d.getFormTemplate)

		// Template builder
		r.Post("/builder/parse", d.parseStructure)
		r.Post("/builder/generate", d.generateTemplate)

		// Feedback submission and history
		r.Post("/feedback", d.submitFeedback)
		r.Post("/feedback/preview", d.previewFeedback)
		r.Post("/feedback/analyze", d.analyzeFeedback)
		r.Get("/feedback/recent", d.listRecentFeedback)
		r.Get("/feedback/{id}", d.getFeedbackTicket)
		r.Get("/trainers", d.listTrainers)
		r.Get("/trainers/{id}/history", d.trainerHistory)
		r.Get("/trainers/{id}/stats", d.trainerStats)

		// Lookup collections
		r.Get("/lookups/categories", d.listLookupCategories)
		r.Get("/lookups/studios", d.listStudios)

		// Attachments
		r.Post("/files/sign", d.signFile)
	})

	// Attachment objects: the URLs handed out by POST /v1/files/sign resolve
	// here for the local storage backend.
	r.Put("/files/{objectName}", d.uploadFile)
	r.Get("/files/{objectName}", d.downloadFile)
	r.Delete("/files/{objectName}", d.deleteFile)

	// WebSocket endpoint
	r.Get("/ws", d.wsHandler)

	return r
}

func (d Dependencies) healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
