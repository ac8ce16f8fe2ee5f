package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Post("/api/auth/anonymous", h.bootstrapAnonymous)
		r.Post("/api/auth/resume", h.resume)
	})

	// everything else requires a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/allergens", h.getAllergens)
		r.Get("/api/allergens/{allergenID}", h.getAllergen)
		r.Get("/api/educational-resources", h.getResources)

		r.Get("/api/user/profile", h.getProfile)
		r.Post("/api/user/profile", h.createProfile)
		r.Put("/api/user/profile", h.updateProfile)

		r.Get("/api/user/logs", h.getLogs)
		r.Post("/api/user/logs", h.appendLog)

		r.Post("/api/analyze-text", h.analyzeText)
		r.Get("/api/predictive-analytics", h.predictiveAnalytics)
		r.Get("/api/predict-allergen", h.predictAllergen)
		r.Get("/api/alerts", h.getAlerts)

		r.Get("/api/subscribe", h.subscribe)
	})

	return router
}
