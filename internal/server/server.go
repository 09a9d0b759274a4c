// Package server is a development implementation of the sandbox API. It
// serves a preset catalog and keeps created sandboxes in memory.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/api"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
)

// APIPrefix is where the API is mounted.
const APIPrefix = "/api/v1"

// Config holds server configuration
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// Catalog is the preset catalog to serve
	Catalog *preset.Catalog

	// Author is attached to created sandboxes; empty means anonymous
	Author string

	// Logger for server operations
	Logger *slog.Logger
}

// Server serves the sandbox API.
type Server struct {
	config *Config
	store  *Store
	logger *slog.Logger
}

// New creates a server. A nil catalog serves the default one.
func New(cfg *Config) *Server {
	if cfg.Catalog == nil {
		cfg.Catalog = preset.DefaultCatalog()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		config: cfg,
		store:  NewStore(cfg.Catalog.Presets),
		logger: logger,
	}
}

// Store returns the server's sandbox store.
func (s *Server) Store() *Store {
	return s.store
}

// Handler returns the HTTP handler for the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Get(api.PresetsPath, s.getPresets)
		r.Post(api.SandboxesPath, s.createSandbox)
		r.Get(api.SandboxesPath+"/{id}", s.getSandbox)
	})

	return r
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("sandbox api listening", "addr", s.config.ListenAddr, "presets", len(s.config.Catalog.Presets))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) getPresets(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, s.config.Catalog.List())
}

func (s *Server) createSandbox(w http.ResponseWriter, r *http.Request) {
	var req api.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sb, err := s.store.Create(req.Sandbox.Title, req.Sandbox.ForkedFrom, s.config.Author)
	switch {
	case errors.Is(err, ErrTitleRequired):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, ErrForkNotFound):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "failed to create sandbox")
		return
	}

	s.logger.Info("sandbox created", "id", sb.ID, "title", sb.Title, "forked_from", sb.ForkedFrom)
	writeData(w, http.StatusCreated, sb)
}

func (s *Server) getSandbox(w http.ResponseWriter, r *http.Request) {
	sb, err := s.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeData(w, http.StatusOK, sb)
}

func writeData(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
