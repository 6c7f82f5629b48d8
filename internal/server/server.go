// Package server assembles the showcase HTTP handler and runs it.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackielii/showcase"
	"github.com/jackielii/showcase/chirouter"
	"github.com/jackielii/showcase/guard"
	"github.com/jackielii/showcase/internal/config"
	"github.com/jackielii/showcase/internal/metrics"
	"github.com/jackielii/showcase/pages"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

type Server struct {
	cfg     config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics
	handler http.Handler
}

// New builds the handler for cfg. Requests pass request id, access log, metrics and the
// path guard before chi resolves a page.
func New(cfg config.Config, logger zerolog.Logger) (*Server, error) {
	s := &Server{cfg: cfg, log: logger, metrics: metrics.New()}

	g, err := guard.New(cfg.Guard.Pattern,
		guard.WithTarget(cfg.Guard.Target),
		guard.WithOnRedirect(s.metrics.RecordGuardRedirect),
	)
	if err != nil {
		return nil, fmt.Errorf("configure guard: %w", err)
	}

	r := chi.NewRouter()
	r.Use(
		hlog.NewHandler(logger),
		hlog.RequestIDHandler("req_id", "X-Request-Id"),
		middleware.Recoverer,
		hlog.AccessHandler(accessLog),
		s.metrics.Middleware,
		g.Middleware,
	)
	r.Handle("/metrics", s.metrics.Handler())
	r.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))

	opts := []func(*showcase.StructPages){
		showcase.WithLayout(pages.Layout(cfg.Metadata)),
	}
	if cfg.Minify {
		opts = append(opts, showcase.WithMinify())
	}
	if err := showcase.New(opts...).MountPages(chirouter.NewChiRouter(r), pages.Pages{}, "/"); err != nil {
		return nil, err
	}
	s.handler = r
	return s, nil
}

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

func staticHandler() http.Handler {
	fileServer := http.FileServerFS(pages.Static())
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}

// Handler returns the assembled handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.log.Info().Str("addr", ln.Addr().String()).Msg("serving")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
