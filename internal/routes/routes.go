package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodmate/moodmate-backend/internal/handlers"
)

// SetupRoutes registers all routes. Every /moods route sits behind the
// auth middleware so handlers always see a resolved user id.
func SetupRoutes(r *chi.Mux, requireAuth func(http.Handler) http.Handler, moods *handlers.MoodHandler, content *handlers.ContentHandler) {
	// Auth routes
	r.Post("/auth/signup", handlers.Signup)
	r.Post("/auth/signin", handlers.Signin)
	r.With(requireAuth).Get("/auth/me", handlers.Me)

	// Mood journal + mood-matched content
	r.Route("/moods", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", moods.Record)
		r.Get("/", moods.List)
		r.Get("/range", moods.ListRange)
		r.Get("/quote/{moodRating}", content.Quote)
		r.Get("/gif/{moodRating}", content.Gif)
		r.Get("/{id}", moods.Get)
		r.Delete("/{id}", moods.Delete)
	})
}
