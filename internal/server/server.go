package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"itemforge/internal/handler"
	"itemforge/internal/logger"
	"itemforge/internal/metrics"
	"itemforge/internal/rng"
)

// Server wires the HTTP surface over the item database and player sessions.
type Server struct {
	httpServer *http.Server
	db         handler.Database
	sessions   handler.Sessions
}

// Options carries the server's construction parameters.
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	ServiceName    string
	Version        string
}

// NewServer creates a new Server instance
func NewServer(opts Options, db handler.Database, sessions handler.Sessions, src rng.Source) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(db))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion(opts.ServiceName, opts.Version))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(db))
			r.Get("/{id}", handler.HandleGetItem(db))
			r.Get("/{id}/icon", handler.HandleGetItemIcon(db))
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/", handler.HandleListRecipes(db))
			r.Get("/{id}", handler.HandleGetRecipe(db))
		})

		r.Route("/loot", func(r chi.Router) {
			r.Get("/", handler.HandleListLootTables(db))
			r.Post("/{table}/roll", handler.HandleRollLoot(db, sessions, src))
		})

		r.Route("/database", func(r chi.Router) {
			r.Get("/", handler.HandleDatabaseInfo(db))
			r.Post("/reload", handler.HandleReloadDatabase(db))
			r.Get("/validate", handler.HandleValidateDatabase(db))
		})

		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", handler.HandleGetInventory(sessions))
				r.Post("/items", handler.HandleAddItem(db, sessions))
				r.Post("/items/remove", handler.HandleRemoveItem(sessions))
				r.Post("/move", handler.HandleMoveItem(sessions))
				r.Post("/sort", handler.HandleSortInventory(sessions))
				r.Post("/save", handler.HandleSaveInventory(sessions))
				r.Post("/load", handler.HandleLoadInventory(sessions))
			})

			r.Route("/craft", func(r chi.Router) {
				r.Post("/", handler.HandleCraft(sessions))
				r.Get("/queue", handler.HandleGetQueue(sessions))
				r.Post("/cancel", handler.HandleCancelCraft(sessions))
				r.Post("/clear", handler.HandleClearQueue(sessions))
				r.Get("/check/{id}", handler.HandleCanCraft(db, sessions))
			})
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		db:       db,
		sessions: sessions,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health checks and metrics scrapes stay out of the logs.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
