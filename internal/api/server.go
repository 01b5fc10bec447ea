// Package api exposes the token directory, signals and strategy comparison
// over HTTP.
package api

import (
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"solana-signal-lab/internal/observability"
	"solana-signal-lab/internal/reporting"
	"solana-signal-lab/internal/signals"
	"solana-signal-lab/internal/strategies"
	"solana-signal-lab/internal/tokens"
)

// Server serves the HTTP API.
type Server struct {
	strategies  *strategies.Service
	signals     *signals.Service
	metadata    *tokens.MetadataResolver
	reports     *reporting.Generator
	corsOrigins []string
	logger      *log.Logger
}

// Options contains configuration for creating a Server.
type Options struct {
	Strategies *strategies.Service
	Signals    *signals.Service
	// Metadata is optional. Without it the metadata route returns 503.
	Metadata *tokens.MetadataResolver
	Reports  *reporting.Generator
	// CORSOrigins lists allowed origins. Empty allows all.
	CORSOrigins []string
	Logger      *log.Logger
}

// NewServer creates an API server.
func NewServer(opts Options) *Server {
	s := &Server{
		strategies:  opts.Strategies,
		signals:     opts.Signals,
		metadata:    opts.Metadata,
		reports:     opts.Reports,
		corsOrigins: opts.CORSOrigins,
		logger:      opts.Logger,
	}
	if s.reports == nil {
		s.reports = reporting.NewGenerator()
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}
	return s
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: s.logger, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(recordMetrics)

	allowedOrigins := s.corsOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", observability.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/tokens", s.listTokens)
		r.Get("/tokens/{mint}/metadata", s.tokenMetadata)
		r.Get("/intervals", s.listIntervals)
		r.Get("/presets", s.listPresets)

		r.Get("/signals", s.listSignals)
		r.Get("/signals/{id}", s.signalDetail)
		r.Get("/signals/{id}/chart", s.signalChart)

		r.Get("/strategies", s.listStrategies)
		r.Post("/strategies", s.addStrategy)
		r.Delete("/strategies", s.clearStrategies)
		r.Get("/strategies/comparison", s.compareStrategies)
		r.Get("/strategies/chart", s.strategiesChart)
		r.Delete("/strategies/{id}", s.removeStrategy)
	})

	return r
}

// recordMetrics observes request duration by route pattern, so path
// parameters do not explode label cardinality.
func recordMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		observability.RecordHTTPRequest(r.Method, route, strconv.Itoa(status), time.Since(start).Seconds())
	})
}
