// Package server exposes projections and user accounts over HTTP.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/retirmentaudit/retirement-audit-launch/internal/calculation"
	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/retirmentaudit/retirement-audit-launch/internal/identity"
	"github.com/retirmentaudit/retirement-audit-launch/internal/session"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

// Server routes API requests to the projection engine and the identity provider.
type Server struct {
	engine   *calculation.ProjectionEngine
	parser   *config.InputParser
	users    identity.Provider
	sessions *session.Issuer
	log      *zap.Logger
	baseCtx  context.Context
}

// New creates a Server. A nil logger disables request logging.
func New(engine *calculation.ProjectionEngine, users identity.Provider, sessions *session.Issuer, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		engine:   engine,
		parser:   config.NewInputParser(),
		users:    users,
		sessions: sessions,
		log:      log,
		baseCtx:  context.Background(),
	}
}

// Handler returns the routed, logged request handler.
func (s *Server) Handler() fasthttp.RequestHandler {
	return s.withLogging(s.route)
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	switch path {
	case "/healthz":
		s.only(ctx, fasthttp.MethodGet, s.handleHealth)
	case "/api/signup":
		s.only(ctx, fasthttp.MethodPost, s.handleSignup)
	case "/api/login":
		s.only(ctx, fasthttp.MethodPost, s.handleLogin)
	case "/api/me":
		s.only(ctx, fasthttp.MethodGet, s.handleMe)
	case "/api/projection":
		s.only(ctx, fasthttp.MethodPost, s.handleProjection)
	case "/api/projection/report":
		s.only(ctx, fasthttp.MethodPost, s.handleReport)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (s *Server) only(ctx *fasthttp.RequestCtx, method string, h fasthttp.RequestHandler) {
	if string(ctx.Method()) != method {
		ctx.Response.Header.Set(fasthttp.HeaderAllow, method)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	h(ctx)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string, settings config.ServerSettings) error {
	s.baseCtx = ctx
	srv := &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "retirement-audit",
		ReadTimeout:        time.Duration(settings.ReadTimeoutSecs) * time.Second,
		MaxRequestBodySize: settings.MaxBodyBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
		s.log.Info("server shutting down")
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) withLogging(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		next(ctx)
		status := ctx.Response.StatusCode()
		fields := []zap.Field{
			zap.String("method", string(ctx.Method())),
			zap.String("path", string(ctx.Path())),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		}
		if status >= fasthttp.StatusInternalServerError {
			s.log.Error("request", fields...)
			return
		}
		s.log.Info("request", fields...)
	}
}
