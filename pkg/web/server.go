package web

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/fern-ui/fern/pkg/render"
	"github.com/fern-ui/fern/pkg/vdom"
)

const defaultTracerName = "fern"

// Server serves an application component over HTTP: an index shell, the
// browser runtime script, live WebSocket sessions, and Prometheus metrics.
type Server struct {
	addr      string
	title     string
	component vdom.ComponentFunc
	log       *slog.Logger

	metricsConfig MetricsConfig
	tracerName    string

	metrics  *metrics
	tracer   trace.Tracer
	router   chi.Router
	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithAddr sets the listen address (default ":8420").
func WithAddr(addr string) Option {
	return func(s *Server) { s.addr = addr }
}

// WithTitle sets the index page title.
func WithTitle(title string) Option {
	return func(s *Server) { s.title = title }
}

// WithLogger sets the server logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) { s.log = log }
}

// WithMetricsConfig overrides the Prometheus metrics configuration.
func WithMetricsConfig(config MetricsConfig) Option {
	return func(s *Server) { s.metricsConfig = config }
}

// WithTracerName sets the OpenTelemetry tracer name (default "fern").
func WithTracerName(name string) Option {
	return func(s *Server) { s.tracerName = name }
}

// NewServer builds a server for the given root component.
func NewServer(component vdom.ComponentFunc, opts ...Option) *Server {
	s := &Server{
		addr:          ":8420",
		title:         "fern",
		component:     component,
		log:           slog.Default(),
		metricsConfig: defaultMetricsConfig(),
		tracerName:    defaultTracerName,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.metrics = newMetrics(s.metricsConfig)
	s.tracer = otel.Tracer(s.tracerName)
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/app.js", s.handleScript)
	r.Get("/ws", s.handleWS)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", s.metricsHandler())
	return r
}

func (s *Server) metricsHandler() http.Handler {
	if g, ok := s.metricsConfig.Registry.(prometheus.Gatherer); ok {
		return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
	}
	return promhttp.Handler()
}

// handleIndex serves the page shell. The app div stays empty; the browser
// runtime builds the tree from the session's patch stream.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := render.Page{
		Title:   s.title,
		Body:    vdom.Div(vdom.ID("app")),
		Scripts: []string{"/app.js"},
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.WritePage(w, page, render.Config{}); err != nil {
		s.log.Error("render index", "error", err)
	}
}

func (s *Server) handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write([]byte(clientScript))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}

	id := fmt.Sprintf("s%d", s.nextID.Add(1))
	sess := NewSession(id, conn, s.component, s.log, s.metrics, s.tracer)
	if err := sess.Run(r.Context()); err != nil {
		s.log.Warn("session ended with error", "session", id, "error", err)
	}
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.addr)
		errc <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}
