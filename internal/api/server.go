package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/kumarlokesh/autocomplete/internal/autocomplete"
)

// ErrEmptyWord is returned when a request carries a blank word
var ErrEmptyWord = errors.New("word must not be blank")

// Server represents the HTTP API server
type Server struct {
	svc    *autocomplete.Service
	server *http.Server
	logger zerolog.Logger
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger used for request and lifecycle logging
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a new API server
func NewServer(addr string, svc *autocomplete.Service, opts ...Option) *Server {
	s := &Server{
		svc:    svc,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/health", s.health).Methods(http.MethodGet)
	r.HandleFunc("/suggest", s.suggest).Methods(http.MethodGet)
	r.HandleFunc("/words", s.addWords).Methods(http.MethodPost)
	r.HandleFunc("/words/{word:.+}", s.getWord).Methods(http.MethodGet)
	r.HandleFunc("/words/{word:.+}", s.putWord).Methods(http.MethodPut)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.respondError(w, http.StatusNotFound, fmt.Errorf("no route for %s %s", r.Method, r.URL.Path))
	})

	s.server = &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for the server
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Addr returns the address the server is configured to listen on
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start listens on the configured address and serves until Shutdown is called
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.server.Addr, err)
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener until Shutdown is called
func (s *Server) Serve(listener net.Listener) error {
	s.logger.Info().Str("addr", listener.Addr().String()).Msg("Server listening")
	if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("Shutting down server")
	return s.server.Shutdown(ctx)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("Handled request")
	})
}

// Helper functions for HTTP responses
func (s *Server) respond(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.Error().Err(err).Msg("Failed to encode response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respond(w, status, map[string]string{"error": err.Error()})
}

// health handles GET /health
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"words":  s.svc.Len(),
	})
}

// suggest handles GET /suggest?prefix=P
func (s *Server) suggest(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	s.respond(w, http.StatusOK, map[string]interface{}{
		"prefix":      prefix,
		"suggestions": s.svc.Suggest(prefix),
	})
}

// getWord handles GET /words/{word}
func (s *Server) getWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	found := s.svc.Contains(word)

	status := http.StatusOK
	if !found {
		status = http.StatusNotFound
	}
	s.respond(w, status, map[string]interface{}{
		"word":  word,
		"found": found,
	})
}

// putWord handles PUT /words/{word}
func (s *Server) putWord(w http.ResponseWriter, r *http.Request) {
	word := mux.Vars(r)["word"]
	if strings.TrimSpace(word) == "" {
		s.respondError(w, http.StatusBadRequest, ErrEmptyWord)
		return
	}

	s.respond(w, http.StatusOK, map[string]interface{}{
		"word":  word,
		"added": s.svc.Add(word) > 0,
	})
}

type addWordsRequest struct {
	Words []string `json:"words"`
}

// addWords handles POST /words with a JSON body {"words": [...]}
func (s *Server) addWords(w http.ResponseWriter, r *http.Request) {
	var req addWordsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("failed to decode request body: %w", err))
		return
	}

	added := s.svc.Add(req.Words...)
	s.respond(w, http.StatusOK, map[string]int{
		"added": added,
		"total": s.svc.Len(),
	})
}
