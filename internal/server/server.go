// Package server exposes the assistant over a small HTTP surface, so the
// chat can be driven by a frontend instead of the terminal.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/finchat-dev/finchat/internal/chat"
	"github.com/finchat-dev/finchat/internal/ledger"
)

// Server handles HTTP requests for the chat assistant.
type Server struct {
	assistant *chat.Assistant
	ledger    *ledger.Service
	logger    *log.Logger
	mux       *http.ServeMux
}

// New creates a new HTTP server around an assistant.
func New(assistant *chat.Assistant, svc *ledger.Service, logger *log.Logger) *Server {
	s := &Server{
		assistant: assistant,
		ledger:    svc,
		logger:    logger,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	s.logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, s.mux)
}

// Handler returns the route mux, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/message", s.withLogging(s.handleMessage))
	s.mux.HandleFunc("/api/summary", s.withLogging(s.handleSummary))
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if req.Message == "" {
		s.respondError(w, r, http.StatusBadRequest, "message required", nil)
		return
	}

	reply, err := s.assistant.Reply(req.Message)
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to process message", err)
		return
	}

	if err := s.writeJSON(w, http.StatusOK, map[string]string{"reply": reply}); err != nil {
		s.logger.Warn("failed to write response", "err", err)
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	sum, err := s.ledger.Summary()
	if err != nil {
		s.respondError(w, r, http.StatusInternalServerError, "failed to compute summary", err)
		return
	}

	if err := s.writeJSON(w, http.StatusOK, sum); err != nil {
		s.logger.Warn("failed to write response", "err", err)
	}
}

// writeJSON encodes v as JSON with the given status and writes headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// respondError logs the error and returns a minimal JSON error body.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		s.logger.Warn("request error", "status", status, "msg", message, "err", err, "method", r.Method, "path", r.URL.Path)
	} else {
		s.logger.Warn("request error", "status", status, "msg", message, "method", r.Method, "path", r.URL.Path)
	}
	_ = s.writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// withLogging wraps a handler to log requests and recover panics.
func (s *Server) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("http request", "method", r.Method, "path", r.URL.Path, "remote", r.RemoteAddr)
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", "panic", rec, "method", r.Method, "path", r.URL.Path)
				s.respondError(w, r, http.StatusInternalServerError, "internal server error", fmt.Errorf("panic: %v", rec))
			}
		}()
		next(w, r)
	}
}
