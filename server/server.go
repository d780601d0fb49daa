package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"

	"github.com/brettbedarf/webshell"
	"github.com/brettbedarf/webshell/config"
	"github.com/brettbedarf/webshell/internal/util"
	"github.com/brettbedarf/webshell/shell"
	"github.com/labstack/echo/v4"
)

// Server exposes console sessions over HTTP. Each session is an independent
// interpreter; all of them share one command grammar.
type Server struct {
	cfg      *config.Config
	echo     *echo.Echo
	sessions *Sessions

	mu   sync.Mutex
	stop context.CancelFunc // Stops the sweeper; set by Serve
}

// New creates a Server instance given your config.
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	registry := shell.NewBuiltinRegistry(cfg.Banner)
	sessions := NewSessions(func() webshell.Console {
		return shell.NewSessionWithRegistry(cfg, registry)
	})

	return &Server{
		cfg:      cfg,
		echo:     SetupRouter(NewHandler(sessions, cfg.Banner), cfg.Server),
		sessions: sessions,
	}
}

// Handler returns the HTTP handler without starting a listener
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Sessions returns the live session registry
func (s *Server) Sessions() *Sessions {
	return s.sessions
}

// Addr returns the listening address, or nil before the listener is up
func (s *Server) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

// Serve starts the idle session sweeper and serves HTTP on addr until
// [Server.Shutdown] is called.
func (s *Server) Serve(addr string) error {
	logger := util.GetLogger("Server.Serve")

	ctx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	s.stop = cancel
	s.mu.Unlock()
	s.sessions.StartSweeper(ctx, s.cfg.Server.SessionIdleTTL, s.cfg.Server.SweepInterval)

	logger.Info().Str("addr", addr).Msg("Starting server")
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		cancel()
		return err
	}
	return nil
}

func (s *Server) ServeAsync(addr string) <-chan error {
	done := make(chan error, 1)

	go func() {
		done <- s.Serve(addr)
		close(done)
	}()

	return done
}

// Shutdown stops accepting requests, waits for in-flight ones within ctx and
// stops the sweeper.
func (s *Server) Shutdown(ctx context.Context) error {
	logger := util.GetLogger("Server.Shutdown")

	err := s.echo.Shutdown(ctx)

	s.mu.Lock()
	stop := s.stop
	s.mu.Unlock()
	if stop != nil {
		stop()
		s.sessions.Wait()
	}
	logger.Info().Int("sessions", s.sessions.Len()).Msg("Server stopped")
	return err
}
