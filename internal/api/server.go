// Package api exposes the card pipeline over HTTP.
//
// The API wraps the same pipeline.Runner the CLI uses, adds history
// persistence for share links, and serves rendered artifacts:
//
//	POST /api/cards             compose, lay out, and render a card
//	GET  /api/cards             list recent cards
//	GET  /api/cards/{id}        card record with its layout plan
//	GET  /api/cards/{id}/{fmt}  download an artifact (svg, png, pdf, json)
//	GET  /api/health            liveness check
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cardfold/pkg/history"
	"github.com/matzehuels/cardfold/pkg/pipeline"
)

const requestTimeout = 180 * time.Second

// Server handles HTTP requests for card composition and retrieval.
type Server struct {
	runner  *pipeline.Runner
	store   history.Store
	logger  *log.Logger
	baseURL string
}

// NewServer creates an API server. baseURL is the externally visible
// prefix used to build share links (e.g. "https://cards.example.com").
func NewServer(runner *pipeline.Runner, store history.Store, logger *log.Logger, baseURL string) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner:  runner,
		store:   store,
		logger:  logger,
		baseURL: baseURL,
	}
}

// Router builds the HTTP handler with standard middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Route("/cards", func(r chi.Router) {
			r.Post("/", s.handleCreateCard)
			r.Get("/", s.handleListCards)
			r.Route("/{cardID}", func(r chi.Router) {
				r.Get("/", s.handleGetCard)
				r.Get("/{format}", s.handleDownload)
			})
		})
	})
	return r
}
