package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts every route. CORS is open to any origin, on /api only.
func NewRouter(health *HealthHandler, auth *AuthHandler, assessment *AssessmentHandler) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", health.Home)
	r.Get("/health", health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))

		r.Post("/auth/signup", auth.Signup)
		r.Post("/auth/login", auth.Login)

		r.Post("/assessment/save", assessment.Save)
		r.Get("/assessment/latest", assessment.GetLatest)
	})

	return r
}
