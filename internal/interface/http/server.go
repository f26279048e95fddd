// Package http implements the JSON presentation shell over the core
// operations. It contains no business logic: structured field sets come
// in, entity records and report bodies go out, and the error taxonomy is
// mapped onto status codes.
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/passit-driving/school-hub/pkg/logger"
)

// Config contains HTTP server configuration.
type Config struct {
	Host string
	Port int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns sensible defaults for a local deployment.
func DefaultConfig() Config {
	return Config{
		Host:         "0.0.0.0",
		Port:         8080,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// Server wraps the stdlib HTTP server and the route table.
type Server struct {
	cfg      Config
	log      *logger.Logger
	handlers *Handlers
	srv      *http.Server
}

// NewServer creates a Server around the given handlers.
func NewServer(cfg Config, h *Handlers, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}

	s := &Server{cfg: cfg, log: log, handlers: h}

	mux := http.NewServeMux()
	s.routes(mux)

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      s.recoverPanics(s.logRequests(mux)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return s
}

func (s *Server) routes(mux *http.ServeMux) {
	h := s.handlers

	mux.HandleFunc("GET /health", h.health)

	mux.HandleFunc("POST /api/students", h.enrollStudent)
	mux.HandleFunc("GET /api/students", h.searchStudents)
	mux.HandleFunc("GET /api/students/{id}", h.getStudent)
	mux.HandleFunc("PUT /api/students/{id}", h.updateStudent)
	mux.HandleFunc("DELETE /api/students/{id}", h.removeStudent)
	mux.HandleFunc("GET /api/students/{id}/progress", h.studentProgress)
	mux.HandleFunc("GET /api/students/{id}/level-progress", h.levelProgress)
	mux.HandleFunc("GET /api/students/{id}/payments", h.listPayments)

	mux.HandleFunc("POST /api/instructors", h.registerInstructor)
	mux.HandleFunc("GET /api/instructors", h.searchInstructors)
	mux.HandleFunc("GET /api/instructors/{id}", h.getInstructor)
	mux.HandleFunc("PUT /api/instructors/{id}", h.updateInstructor)
	mux.HandleFunc("DELETE /api/instructors/{id}", h.removeInstructor)

	mux.HandleFunc("POST /api/lessons", h.bookLesson)
	mux.HandleFunc("GET /api/lessons", h.searchLessons)
	mux.HandleFunc("GET /api/lessons/price", h.lessonPrice)
	mux.HandleFunc("GET /api/lessons/{id}", h.getLesson)
	mux.HandleFunc("PUT /api/lessons/{id}", h.updateLesson)
	mux.HandleFunc("DELETE /api/lessons/{id}", h.cancelLesson)

	mux.HandleFunc("POST /api/payments", h.recordPayment)
	mux.HandleFunc("DELETE /api/payments/{id}", h.removePayment)

	mux.HandleFunc("GET /api/reports/summary", h.summary)
	mux.HandleFunc("GET /api/reports/snapshot", h.snapshot)
	mux.HandleFunc("GET /api/reports/export", h.exportDocument)
}

// Start begins serving and blocks until the listener stops.
func (s *Server) Start() error {
	s.log.Info("http server listening", logger.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http: server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Duration("took", time.Since(start)),
		)
	})
}

// recoverPanics converts a handler panic into a 500 instead of killing
// the process.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error("panic in handler", logger.F("panic", fmt.Sprint(rec)))
				http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
