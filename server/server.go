// Package server serves a document root over HTTP with permissive CORS
// headers on every response.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"orchea/config"
	"orchea/logger"

	"github.com/gorilla/mux"
)

// ShutdownTimeout bounds how long in-flight requests get after a stop signal
const ShutdownTimeout = 10 * time.Second

// Server represents the static file server
type Server struct {
	router   *mux.Router
	server   *http.Server
	listener net.Listener
	cfg      *config.Config
	log      logger.LoggerInterface

	shutdownTimeout time.Duration
}

// Option customises a Server built by New
type Option func(*Server)

// WithLogger replaces the process-wide logger
func WithLogger(l logger.LoggerInterface) Option {
	return func(s *Server) {
		s.log = l
	}
}

// WithShutdownTimeout changes how long Shutdown waits before dropping
// connections that are still busy
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.shutdownTimeout = d
	}
}

// New creates a server for cfg. Nothing is bound until Listen or Serve.
func New(cfg *config.Config, opts ...Option) *Server {
	s := &Server{
		// http.FileServer cleans paths itself; mux's clean-and-redirect
		// would turn preflights on unclean paths into 301s.
		router:          mux.NewRouter().SkipClean(true),
		cfg:             cfg,
		log:             logger.GetLogger(),
		shutdownTimeout: ShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()

	// "OPTIONS *" goes to Handler as well, so it gets the CORS headers
	s.server = &http.Server{
		Handler:                      s.Handler(),
		ReadHeaderTimeout:            30 * time.Second,
		IdleTimeout:                  120 * time.Second,
		DisableGeneralOptionsHandler: true,
	}

	return s
}

// Handler returns the complete request handler: CORS headers are applied
// at the server level so that every response, routed or not, carries them.
func (s *Server) Handler() http.Handler {
	return CORSMiddleware(s.router)
}

// Listen binds the TCP listener on all interfaces. Failures are returned as
// *BindError.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return &BindError{Port: s.cfg.Port, Err: err}
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Port returns the bound port. It differs from the configured one only when
// port 0 was requested.
func (s *Server) Port() int {
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return s.cfg.Port
}

// URL is the local address a browser should open
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%d", s.Port())
}

// Serve accepts connections until ctx is cancelled, then shuts down
// gracefully. It binds first if Listen has not been called.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	s.log.Info("Starting file server", map[string]interface{}{
		"addr": s.listener.Addr().String(),
		"root": s.cfg.Root,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve failed: %w", err)
	case <-ctx.Done():
		return s.Shutdown()
	}
}

// Shutdown gracefully shuts down the server. Connections still busy when
// the shutdown timeout expires are closed; that is not an error.
func (s *Server) Shutdown() error {
	s.log.Info("Shutting down file server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		s.log.Warn("Closing connections still active after shutdown timeout", map[string]interface{}{
			"timeout": s.shutdownTimeout.String(),
		})
		if err := s.server.Close(); err != nil {
			s.log.Error("Failed to close connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
