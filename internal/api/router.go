package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/triviaswwe/tw-database-web-sub000/internal/api/handlers"
	"github.com/triviaswwe/tw-database-web-sub000/internal/api/middleware"
	"github.com/triviaswwe/tw-database-web-sub000/internal/config"
	"github.com/triviaswwe/tw-database-web-sub000/internal/repository"
	"github.com/triviaswwe/tw-database-web-sub000/internal/service"
)

func NewRouter(services *service.Services, repos *repository.Repositories, cfg *config.Config, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestID(logger))
	r.Use(cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}).Handler)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	championshipHandler := handlers.NewChampionshipHandler(services.Championship, logger)
	titleHistoryHandler := handlers.NewTitleHistoryHandler(services.History, logger)
	rosterHandler := handlers.NewRosterHandler(services.Roster, cfg.DefaultPageSize, cfg.MaxPageSize, logger)
	eventHandler := handlers.NewEventHandler(repos.Event, repos.Match, cfg.DefaultPageSize, cfg.MaxPageSize, logger)

	// API v1 routes; the whole surface is read-only
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/championships", func(r chi.Router) {
			r.Get("/", championshipHandler.List)
			r.Get("/{id}", championshipHandler.Get)
			r.Get("/{id}/timeline", titleHistoryHandler.Timeline)
			r.Get("/{id}/stats", titleHistoryHandler.Stats)
			r.Get("/{id}/reigns/{reignId}/defenses", titleHistoryHandler.Defenses)
		})

		r.Route("/wrestlers", func(r chi.Router) {
			r.Get("/", rosterHandler.ListWrestlers)
			r.Get("/{id}", rosterHandler.GetWrestler)
		})

		r.Get("/tag-teams", rosterHandler.ListTagTeams)

		r.Route("/events", func(r chi.Router) {
			r.Get("/", eventHandler.List)
			r.Get("/{id}", eventHandler.Get)
		})
	})

	return r
}
