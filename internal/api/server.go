// Package api serves the bricklayer pipeline over HTTP.
//
// All responses are JSON. Errors carry the machine-readable code of
// pkg/errors:
//
//	{"code": "INVALID_PATTERN", "message": "invalid pattern: \"herringbone\" (...)"}
//
// The /stream endpoint upgrades to a websocket and replays a plan stride by
// stride so that an external viewer can animate the build.
package api

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/bricklayer/pkg/observability"
	"github.com/matzehuels/bricklayer/pkg/pipeline"
)

// DefaultTimeout bounds the pipeline work of one request.
const DefaultTimeout = 30 * time.Second

// maxBodyBytes bounds uploaded layouts.
const maxBodyBytes = 16 << 20

// Option configures a [Server].
type Option func(*Server)

// WithTimeout sets the per-request pipeline timeout.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithOriginPatterns allows websocket connections from other origins. Each
// pattern is matched against the Origin host with [path.Match]. Without it
// only same-origin clients may stream.
func WithOriginPatterns(patterns ...string) Option {
	return func(s *Server) { s.origins = append(s.origins, patterns...) }
}

// Server is the HTTP API. It is an [http.Handler].
type Server struct {
	runner   *pipeline.Runner
	defaults pipeline.Options
	timeout  time.Duration
	origins  []string
	logger   *log.Logger
	router   chi.Router
}

// New creates a server. Requests start from defaults (typically loaded from
// the config file) and override them with their query parameters.
func New(runner *pipeline.Runner, defaults pipeline.Options, opts ...Option) *Server {
	s := &Server{
		runner:   runner,
		defaults: defaults,
		timeout:  DefaultTimeout,
		logger:   runner.Logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Get("/patterns", s.handlePatterns)
	r.Get("/strategies", s.handleStrategies)
	r.Get("/layouts/{pattern}", s.handleLayout)
	r.Get("/plans/{strategy}", s.handleGeneratePlan)
	r.Post("/plans/{strategy}", s.handlePlanLayout)
	r.Get("/compare", s.handleCompare)
	r.Get("/stream/{strategy}", s.handleStream)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, errNotFound(r.URL.Path))
	})
	return r
}

// observe reports every request to the HTTP hooks and the logger.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, d)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration", d,
			"request_id", middleware.GetReqID(r.Context()))
	})
}
