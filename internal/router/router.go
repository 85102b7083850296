// Package router sets up all HTTP routes and middleware chains for the
// greenpress API. Routes are grouped by concern: generation, lookups,
// lifecycle mutations, publishing, and exports.
package router

import (
	"github.com/go-chi/chi/v5"

	"greenpress/internal/handlers"
	"greenpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(h *handlers.Handlers) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check — liveness plus dependency flags.
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		// Content generation and lookups.
		r.Route("/content", func(r chi.Router) {
			r.Post("/generate", h.GenerateContent)
			r.Get("/range", h.GetRange)
			r.Get("/week/{weekID}", h.GetWeek)
			r.Get("/{id}", h.GetContent)
			r.Put("/{id}/status", h.UpdateStatus)
			r.Post("/{id}/publish", h.Publish)
		})

		// Weekly package listing.
		r.Get("/weeks", h.ListWeeks)

		// Manual distribution exports.
		r.Route("/export", func(r chi.Router) {
			r.Post("/csv", h.ExportCSV)
			r.Post("/html", h.ExportHTML)
		})
	})

	return r
}
