package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"wordpace/internal/config"
	"wordpace/internal/dataset"
	"wordpace/internal/selector"
)

type RouterDeps struct {
	Words    *dataset.Dataset
	Selector *selector.Selector
	CORS     config.CORSConfig
	Version  string
	Logger   *slog.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
	if deps.Selector == nil {
		deps.Selector = selector.New(nil)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}

	game := NewGameHandler(deps.Words, deps.Selector, deps.Logger)
	health := NewHealthHandler(deps.Words, deps.Version)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(deps.Logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   config.SplitList(deps.CORS.AllowedOrigins),
		AllowedMethods:   config.SplitList(deps.CORS.AllowedMethods),
		AllowedHeaders:   config.SplitList(deps.CORS.AllowedHeaders),
		AllowCredentials: deps.CORS.AllowCredentials,
		MaxAge:           deps.CORS.MaxAge,
	}).Handler)
	r.Use(middleware.Recoverer)

	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)

	r.Route("/game", func(r chi.Router) {
		r.Get("/next_word", game.NextWord)
	})
	return r
}
