// Package server exposes the primer as a read-only JSON API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/patrickmn/go-cache"

	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/logging"
	"github.com/san-kum/linprimer/internal/metrics"
)

const (
	DefaultCacheTTL = 5 * time.Minute
	MaxFrames       = 600
	MaxFrom         = 10000
	MaxCanvasCols   = 200

	// advanceChunk is how many ticks run between request context checks.
	advanceChunk = 256
)

type Options struct {
	CacheTTL  time.Duration
	Precision int
	Logger    *slog.Logger
	Metrics   *metrics.Collectors
}

type Server struct {
	docs      *cache.Cache
	precision int
	logger    *slog.Logger
	metrics   *metrics.Collectors
}

func New(opts Options) *Server {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	s := &Server{
		docs:      cache.New(ttl, 2*ttl),
		precision: opts.Precision,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.metrics == nil {
		s.metrics = metrics.NewCollectors(nil)
	}
	return s
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.count)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", s.listSections)
		r.Get("/sections/{id}", s.getSection)
		r.Get("/sections/{id}/animations/{index}/frames", s.getFrames)
		r.Get("/tex", s.getTeX)
		r.Get("/truncate", s.getTruncate)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, errors.New("not found"))
	})
	return r
}

// count records every request by route pattern and status code.
func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.logger.Debug("request", "method", r.Method, "route", route, "status", status, "took", time.Since(start))
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, errorResponse{Error: err.Error()})
}

// statusFor maps lookup failures to 404 and everything else to 400.
func statusFor(err error) int {
	if errors.Is(err, lesson.ErrUnknownSection) || errors.Is(err, lesson.ErrNoAnimation) {
		return http.StatusNotFound
	}
	return http.StatusBadRequest
}
