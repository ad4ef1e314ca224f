package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/assembly"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/scoring"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/suggest"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/internal/websocket"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/config"
	"github.com/cryptodoran/DefiAppXStrategy-sub000/pkg/models"
)

// Server is the HTTP surface of the content intelligence pipeline.
type Server struct {
	cfg        *config.Config
	logger     *logrus.Logger
	router     *mux.Router
	httpServer *http.Server

	scorer    *scoring.Scorer
	assembler *assembly.Assembler
	generator *suggest.Generator
	hub       *websocket.Hub
	health    func(ctx context.Context) map[string]bool
}

// NewServer creates the API server. The health function reports the
// status of backing services (redis, nats) and may be nil.
func NewServer(
	cfg *config.Config,
	logger *logrus.Logger,
	scorer *scoring.Scorer,
	assembler *assembly.Assembler,
	generator *suggest.Generator,
	hub *websocket.Hub,
	health func(ctx context.Context) map[string]bool,
) *Server {
	s := &Server{
		cfg:       cfg,
		logger:    logger,
		scorer:    scorer,
		assembler: assembler,
		generator: generator,
		hub:       hub,
		health:    health,
	}

	s.setupRoutes()

	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	s.router = mux.NewRouter()

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)

	if s.cfg.Security.CORSEnabled {
		s.router.Use(s.corsMiddleware)
	}

	apiV1 := s.router.PathPrefix("/api/v1").Subrouter()

	apiV1.HandleFunc("/health", s.handleHealth).Methods("GET")
	apiV1.HandleFunc("/score", s.handleScore).Methods("POST")
	apiV1.HandleFunc("/suggestions", s.handleSuggestions).Methods("GET")
	apiV1.HandleFunc("/context", s.handleContext).Methods("GET")
	apiV1.HandleFunc("/trends", s.handleTrends).Methods("GET")
	apiV1.HandleFunc("/viral", s.handleViral).Methods("GET")

	if s.cfg.WebSocket.Enabled && s.hub != nil {
		apiV1.HandleFunc("/ws", s.handleWebSocket).Methods("GET")
	}

	if s.cfg.Monitoring.MetricsEnabled {
		s.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := s.cfg.GetServerAddr()

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
	}

	s.logger.WithField("address", addr).Info("Starting HTTP server")

	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// Handler functions

// scoreRequest is the POST /score body.
type scoreRequest struct {
	Content string                   `json:"content"`
	Config  *models.BrandVoiceConfig `json:"config,omitempty"`
}

// handleScore scores a piece of candidate text. Pure and synchronous:
// any string is accepted, including empty.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	score := s.scorer.Score(req.Content, nil, req.Config)
	s.respondJSON(w, http.StatusOK, score)
}

// handleSuggestions runs a generation cycle and returns the batch.
func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.Assembly.SuggestionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.respondError(w, http.StatusBadRequest, fmt.Errorf("invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	suggestions, err := s.generator.Generate(r.Context(), limit)
	if err != nil {
		if errors.Is(err, assembly.ErrAllSourcesFailed) {
			s.respondError(w, http.StatusServiceUnavailable, err)
			return
		}
		s.respondError(w, http.StatusInternalServerError, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// handleContext assembles and returns the current context snapshot.
// The degraded flag tells the dashboard to show its sample-data banner.
func (s *Server) handleContext(w http.ResponseWriter, r *http.Request) {
	block, err := s.assembler.Assemble(r.Context())
	if err != nil {
		s.respondError(w, http.StatusServiceUnavailable, err)
		return
	}

	s.respondJSON(w, http.StatusOK, block)
}

// handleTrends returns the current trending topics.
func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	block, err := s.assembler.Assemble(r.Context())
	if err != nil {
		s.respondError(w, http.StatusServiceUnavailable, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"trends":   block.Twitter.TopTrends,
		"degraded": block.Degraded,
	})
}

// handleViral returns the current viral posts.
func (s *Server) handleViral(w http.ResponseWriter, r *http.Request) {
	block, err := s.assembler.Assemble(r.Context())
	if err != nil {
		s.respondError(w, http.StatusServiceUnavailable, err)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"viral_posts": block.Twitter.ViralPosts,
		"degraded":    block.Degraded,
	})
}

// handleHealth checks the health status of backing services.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	services := map[string]bool{}
	if s.health != nil {
		services = s.health(r.Context())
	}

	status := "healthy"
	for _, ok := range services {
		if !ok {
			status = "degraded"
			break
		}
	}

	payload := map[string]interface{}{
		"status":    status,
		"services":  services,
		"timestamp": time.Now().Unix(),
	}
	if s.hub != nil {
		payload["websocket_clients"] = s.hub.ClientCount()
	}

	s.respondJSON(w, http.StatusOK, payload)
}

// handleWebSocket upgrades the connection for live dashboard pushes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.HandleUpgrade(w, r)
}

// Middleware functions

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   wrapped.statusCode,
			"duration": time.Since(start),
			"remote":   r.RemoteAddr,
		}).Info("HTTP request")
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.WithFields(logrus.Fields{
					"error": err,
					"path":  r.URL.Path,
				}).Error("Panic recovered")

				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(s.cfg.Security.CORSOrigins),
		handlers.AllowedMethods(s.cfg.Security.CORSMethods),
		handlers.AllowedHeaders(s.cfg.Security.CORSHeaders),
	)(next)
}

// Response helpers

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Failed to encode response")
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, err error) {
	s.respondJSON(w, status, map[string]string{"error": err.Error()})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
