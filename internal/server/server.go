package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/desertthunder/farewell/internal/models"
	"github.com/desertthunder/farewell/internal/shared"
	"github.com/desertthunder/farewell/internal/store"
	"github.com/desertthunder/farewell/internal/web"
)

// Server wires the REST API, QR endpoint, and server-rendered pages onto a
// single router and owns the underlying [http.Server].
type Server struct {
	store      store.Storage
	logger     *log.Logger
	baseURL    string
	router     *mux.Router
	httpServer *http.Server
}

// Opts contains configuration options for creating a [Server].
type Opts struct {
	Store   store.Storage
	Logger  *log.Logger
	Addr    string
	BaseURL string
	// RateLimit caps /api requests per second. Zero disables limiting,
	// which tests rely on.
	RateLimit float64
	Burst     int
}

// New creates a Server with the full middleware and route stack mounted.
func New(opts Opts) *Server {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	s := &Server{
		store:   opts.Store,
		logger:  opts.Logger,
		baseURL: opts.BaseURL,
		router:  mux.NewRouter(),
	}

	s.router.Use(RequestID, Logging(s.logger), Recover(s.logger))

	api := s.router.PathPrefix("/api").Subrouter()
	if opts.RateLimit > 0 {
		api.Use(RateLimit(opts.RateLimit, opts.Burst))
	}
	api.HandleFunc("/persons", s.handleListPersons).Methods(http.MethodGet)
	api.HandleFunc("/persons", s.handleCreatePerson).Methods(http.MethodPost)
	api.HandleFunc("/persons/{id}", s.handleGetPerson).Methods(http.MethodGet)
	api.HandleFunc("/persons/{id}", s.handleUpdatePerson).Methods(http.MethodPatch)
	api.HandleFunc("/persons/{id}", s.handleDeletePerson).Methods(http.MethodDelete)
	api.HandleFunc("/persons/{id}/qr", s.handlePersonQR).Methods(http.MethodGet)

	pages := web.New(s.store, s.logger, s.baseURL)
	pages.RegisterRoutes(s.router)

	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// Handler exposes the router, primarily for httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe blocks serving HTTP until Shutdown is called or the listener
// fails.
func (s *Server) ListenAndServe() error {
	s.logger.Info("server listening", "addr", s.httpServer.Addr, "base_url", s.baseURL)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondMessage writes the {"message": ...} error body shared by every
// failure response.
func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

// respondValidation writes the 400 validation body with field-keyed issues.
func respondValidation(w http.ResponseWriter, fe models.FieldErrors) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"message": "Validation error",
		"errors":  fe,
	})
}
