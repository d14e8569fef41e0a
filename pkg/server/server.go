// Package server hosts Loom applications over HTTP and WebSocket.
//
// Each connected client gets a Session: its own in-memory host tree with
// a root component mounted into it. The initial render is delivered as a
// mount journal the client replays; after that, every event the client
// reports is dispatched into the component tree and the resulting host
// mutations are streamed back as a protocol frame.
package server

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/internal/config"
	"github.com/loom-ui/loom/pkg/comp"
	"github.com/loom-ui/loom/pkg/metrics"
	"github.com/loom-ui/loom/pkg/middleware"
)

// Options configures a Server.
type Options struct {
	// Config is the server configuration. Nil means defaults.
	Config *config.Config

	// Root is the runtime for the root component mounted into every
	// session. Required.
	Root *comp.Runtime

	// RootProps are the initial properties for the root component.
	RootProps any

	// Logger is the structured logger. Nil means slog.Default().
	Logger *slog.Logger

	// Metrics is the collector set. Nil disables metrics recording.
	Metrics *metrics.Metrics

	// TracerName names the OpenTelemetry tracer (default "loom").
	TracerName string

	// HTTPMiddleware are additional middlewares applied to every route,
	// after the built-in tracing middleware.
	HTTPMiddleware []func(http.Handler) http.Handler
}

// Server is the HTTP/WebSocket server for Loom applications.
type Server struct {
	cfg       *config.Config
	root      *comp.Runtime
	rootProps any

	router   chi.Router
	upgrader websocket.Upgrader

	sessions   map[string]*Session
	sessionsMu sync.Mutex

	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer

	httpServer *http.Server
}

// New creates a server.
func New(opts Options) *Server {
	if opts.Root == nil {
		panic("server: Options.Root is required")
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracerName := opts.TracerName
	if tracerName == "" {
		tracerName = "loom"
	}

	s := &Server{
		cfg:       cfg,
		root:      opts.Root,
		rootProps: opts.RootProps,
		sessions:  make(map[string]*Session),
		logger:    logger,
		metrics:   opts.Metrics,
		tracer:    otel.Tracer(tracerName),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	s.router = s.routes(tracerName, opts.HTTPMiddleware)
	return s
}

// routes builds the HTTP surface.
func (s *Server) routes(tracerName string, extra []func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.OpenTelemetry(middleware.WithTracerName(tracerName)))
	for _, mw := range extra {
		r.Use(mw)
	}
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleWebSocket)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:    s.cfg.Server.Address,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info("server listening", "address", s.cfg.Server.Address)

	select {
	case <-ctx.Done():
		return s.Shutdown()
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Shutdown closes all sessions and stops the HTTP server.
func (s *Server) Shutdown() error {
	s.sessionsMu.Lock()
	for _, sess := range s.sessions {
		sess.Close()
	}
	s.sessionsMu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Close()
	}
	return nil
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWebSocket upgrades the connection and runs a session.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	sess := s.newSession(conn)
	s.addSession(sess)
	defer s.removeSession(sess)

	if err := sess.start(); err != nil {
		s.logger.Error("session start failed", "session", sess.ID, "error", err)
		sess.Close()
		return
	}
	sess.readLoop()
}

func (s *Server) addSession(sess *Session) {
	s.sessionsMu.Lock()
	s.sessions[sess.ID] = sess
	s.sessionsMu.Unlock()
	if s.metrics != nil {
		s.metrics.SessionOpened()
	}
	s.logger.Info("session opened", "session", sess.ID)
}

func (s *Server) removeSession(sess *Session) {
	s.sessionsMu.Lock()
	delete(s.sessions, sess.ID)
	s.sessionsMu.Unlock()
	if s.metrics != nil {
		s.metrics.SessionClosed()
	}
	s.logger.Info("session closed", "session", sess.ID)
	sess.Close()
}

// SessionCount returns the number of connected sessions.
func (s *Server) SessionCount() int {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	return len(s.sessions)
}

// NewHeadlessSession creates a session with no transport attached: the
// root component is mounted into a fresh host tree and outgoing frames
// are dropped. Tests and server-side rendering embeddings use it to drive
// the component tree directly through Dispatch.
func (s *Server) NewHeadlessSession() *Session {
	sess := s.newSession(nil)
	sess.start()
	return sess
}

// baseContext is the root context for per-event spans.
func (s *Server) baseContext() context.Context {
	return context.Background()
}

// newSessionID generates a random session ID.
func newSessionID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}
