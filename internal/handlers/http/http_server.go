package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MUTHU-SANJAI/Crypto-Upgrade-Monitor/internal/domain/useCases"
)

// Server represents an HTTP server with all routes configured
type Server struct {
	log         *slog.Logger
	events      useCases.EventService
	predictions useCases.PredictionProvider
	router      *chi.Mux
	server      *http.Server

	// metrics
	registry *prometheus.Registry
	reqTotal *prometheus.CounterVec
	reqDur   *prometheus.SummaryVec
}

// NewServer creates a new HTTP server with configured routes
func NewServer(addr string, log *slog.Logger, events useCases.EventService, predictions useCases.PredictionProvider) *Server {
	router := chi.NewRouter()

	s := &Server{
		log:         log,
		events:      events,
		predictions: predictions,
		router:      router,
		server: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	// Register metrics on a server-local registry
	s.registry = prometheus.NewRegistry()
	s.reqTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "upgrade_monitor",
		Name:      "http_requests_total",
		Help:      "Requests handled, by endpoint and status code",
	}, []string{"endpoint", "status"})
	s.reqDur = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: "upgrade_monitor",
		Name:      "http_request_duration_seconds",
		Help:      "Request handling time, by endpoint",
	}, []string{"endpoint"})
	s.registry.MustRegister(s.reqTotal, s.reqDur)

	// Register routes
	s.registerRoutes()

	return s
}

// registerRoutes configures all HTTP routes
func (s *Server) registerRoutes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(s.requestID)
	s.router.Use(s.requestLogger)

	// CORS for frontend access
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	s.router.Route("/api", func(r chi.Router) {
		r.Post("/blockchain-events", s.instrument("blockchain-events", s.handleBlockchainEvents))
		r.Post("/volatility-prediction", s.instrument("volatility-prediction", s.handleVolatilityPrediction))
		r.Post("/liquidity-prediction", s.instrument("liquidity-prediction", s.handleLiquidityPrediction))
		r.Post("/sentiment-analysis", s.instrument("sentiment-analysis", s.handleSentimentAnalysis))
		r.Post("/risk-score", s.instrument("risk-score", s.handleRiskScore))
	})

	// Health check endpoint
	s.router.Get("/health", s.handleHealth)

	// Prometheus metrics endpoint
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
}

// requestID attaches a generated id to every request and response.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), id)))
	})
}

// requestLogger logs every request with method, path and duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.log.Info("request handled",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.String("request_id", requestIDFrom(r.Context())),
			slog.Duration("duration", time.Since(start)))
	})
}

// instrument wraps a handler with per-endpoint counters and timings.
func (s *Server) instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		h(ww, r)
		s.reqTotal.WithLabelValues(endpoint, strconv.Itoa(ww.Status())).Inc()
		s.reqDur.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// Router exposes the configured handler for tests and embedding.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins listening for HTTP requests
func (s *Server) Start() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

type ctxKey int

const requestIDKey ctxKey = 0

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
