package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-itinerary-gen/internal/api/itinerary"
)

// Config contains dependencies needed for the router setup.
type Config struct {
	ItineraryHandler *itinerary.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		h := cfg.ItineraryHandler

		r.Route("/itineraries", func(r chi.Router) {
			r.Post("/generate", h.Generate)
			r.Post("/translate", h.Translate)
			r.Post("/price", h.Price)
			r.Post("/preview", h.Preview)
			r.Post("/export", h.Export)
			r.Post("/share", h.Share)

			r.Route("/days", func(r chi.Router) {
				r.Post("/append", h.AppendDay)
				r.Post("/delete", h.DeleteDay)
				r.Post("/move", h.MoveDay)
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", h.ListTemplates)
			r.Get("/{templateID}", h.GetTemplate)
		})

		r.Get("/share/{shareCode}", h.GetShared)
	})

	return r
}
