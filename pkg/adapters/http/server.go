package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aretw0/taproom"
	"github.com/aretw0/taproom/internal/logging"
	"github.com/aretw0/taproom/internal/presentation/tree"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
	"github.com/aretw0/taproom/pkg/runner"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes bounds request bodies independently of the prompt limit.
const maxBodyBytes = 1 << 20

// GenerateRequest is the body of POST /api/generate.
type GenerateRequest struct {
	Prompt  any                   `json:"prompt"`
	Context domain.SessionContext `json:"context"`
}

// PayRequest is the body of POST /api/pay.
type PayRequest struct {
	Table int `json:"table"`
}

// ErrorResponse is the envelope for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Server serves the resolver over HTTP.
type Server struct {
	Resolver ports.Resolver
	Logger   *slog.Logger

	metrics  http.Handler
	maxInput int
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.Logger = logger
		}
	}
}

// WithMetricsHandler mounts h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// WithMaxInputSize overrides the prompt size limit.
func WithMaxInputSize(limit int) Option {
	return func(s *Server) {
		s.maxInput = limit
	}
}

// NewHandler creates a new HTTP handler for the resolver.
func NewHandler(resolver ports.Resolver, opts ...Option) http.Handler {
	s := &Server{
		Resolver: resolver,
		Logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.recoverer)

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.Generate)
		r.Post("/pay", s.Pay)
		r.Get("/menu", s.GetMenu)
	})
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// recoverer turns panics into the error envelope.
func (s *Server) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				s.Logger.Error("request panicked", "panic", rec, "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()))
				s.writeError(w, http.StatusInternalServerError, fmt.Sprint(rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Generate handles POST /api/generate. Every resolved turn, including clarifications and the
// empty order, answers 200 with a UI tree.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	var body GenerateRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.Logger.Warn("generate: invalid request body", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	prompt, err := runner.SanitizeInput(promptText(body.Prompt), s.maxInput)
	if err != nil {
		s.Logger.Warn("generate: input rejected", "error", err)
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	outcome, err := s.Resolver.Resolve(r.Context(), domain.Turn{Text: prompt, Context: body.Context})
	if err != nil {
		s.Logger.Error("generate: resolve failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.Logger.Debug("generate", "kind", outcome.Kind, "request_id", middleware.GetReqID(r.Context()))
	s.writeJSON(w, http.StatusOK, tree.FromOutcome(outcome))
}

// Pay handles POST /api/pay and answers with the confirmation card.
func (s *Server) Pay(w http.ResponseWriter, r *http.Request) {
	var body PayRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Table < domain.MinTable || body.Table > domain.MaxTable {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("table must be between %d and %d", domain.MinTable, domain.MaxTable))
		return
	}
	s.Logger.Info("order paid", "table", body.Table)
	s.writeJSON(w, http.StatusOK, tree.Confirmation(body.Table))
}

// GetMenu handles GET /api/menu.
func (s *Server) GetMenu(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Resolver.Menu())
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "taproom-http",
		"version": strings.TrimSpace(taproom.Version),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, ErrorResponse{Error: msg})
}

// promptText mirrors a lenient string conversion: absent is empty, scalars are printed.
func promptText(v any) string {
	switch p := v.(type) {
	case nil:
		return ""
	case string:
		return p
	case float64:
		return strconv.FormatFloat(p, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(p)
	default:
		return ""
	}
}
