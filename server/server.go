// Package server is the HTTP API for team proposals.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"

	"go.aira.dev/staffing/config"
	"go.aira.dev/staffing/logger"
	"go.aira.dev/staffing/selector"
)

const serviceName = "aira-api"

// Pinger reports whether the database is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	log  *slog.Logger
	cfg  config.ServerConfig
	sl   *selector.Selector
	src  selector.Source
	db   Pinger
	auth *JWTAuthenticator
	echo *echo.Echo
}

// NewServer sets up the API. db is only used for health checks and may
// be nil. Bearer authentication is enabled when cfg.JWTSecret is set.
func NewServer(ctx context.Context, log *slog.Logger, cfg config.ServerConfig, sl *selector.Selector, src selector.Source, db Pinger) (*Server, error) {
	srv := &Server{
		log: log,
		cfg: cfg,
		sl:  sl,
		src: src,
		db:  db,
	}

	if cfg.JWTSecret != "" {
		auth, err := NewJWTAuthenticator(cfg.JWTSecret)
		if err != nil {
			return nil, err
		}
		srv.auth = auth
	} else {
		log.WarnContext(ctx, "jwt_secret not configured, the API is unauthenticated")
	}

	srv.echo = srv.setupEcho()

	return srv, nil
}

func (srv *Server) setupEcho() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(otelecho.Middleware(serviceName))
	e.Use(slogecho.New(srv.log))
	e.Use(middleware.Recover())

	e.GET("/healthz", srv.healthz)

	api := e.Group("/api/v1")
	if srv.auth != nil {
		api.Use(srv.auth.Middleware())
	}
	api.POST("/proposals", srv.createProposal)
	api.GET("/roster/pool", srv.rosterPool)

	return e
}

// ServeHTTP lets the server be mounted or tested without a listener
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	srv.echo.ServeHTTP(w, r)
}

// Run serves the API on cfg.Listen until ctx is cancelled
func (srv *Server) Run(ctx context.Context) error {
	log := srv.log

	httpServer := &http.Server{
		Addr:     srv.cfg.Listen,
		Handler:  srv.echo,
		ErrorLog: logger.NewStdLog("http server", slog.LevelWarn, log),

		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       240 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.InfoContext(ctx, "starting api server", "listen", srv.cfg.Listen)
		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), srv.cfg.ShutdownTimeout)
		defer cancel()

		log.InfoContext(shutdownCtx, "shutting down api server")
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
