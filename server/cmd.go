package server

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.ntppool.org/common/logger"
	"go.ntppool.org/common/metricsserver"
	"go.ntppool.org/common/tracing"
	"go.ntppool.org/common/version"
	"golang.org/x/sync/errgroup"

	"go.aira.dev/staffing/airadb"
	"go.aira.dev/staffing/config"
	"go.aira.dev/staffing/selector"
)

type (
	ServerCmd struct{}
	TokenCmd  struct {
		Subject string        `arg:"" help:"Token subject (who the token is for)"`
		TTL     time.Duration `default:"720h" help:"Token lifetime"`
	}
)

func (cmd *ServerCmd) Run(ctx context.Context, cfg *config.Config) error {
	log := logger.FromContext(ctx)

	log.InfoContext(ctx, "aira api starting", "version", version.Version())

	if ep := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); len(ep) > 0 {
		tpShutdownFn, err := tracing.InitTracer(ctx, &tracing.TracerConfig{
			ServiceName: serviceName,
		})
		if err != nil {
			return fmt.Errorf("tracing setup: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := tpShutdownFn(shutdownCtx); err != nil {
				log.Warn("trace provider shutdown", "err", err)
			}
		}()
	}

	settings, err := selector.SettingsFromConfig(cfg)
	if err != nil {
		return err
	}

	dbconn, err := airadb.OpenConfig(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbconn.Close()

	metricssrv := metricsserver.New()
	version.RegisterMetric("aira", metricssrv.Registry())
	metrics := selector.NewMetrics(metricssrv.Registry(), cfg.Selection.MetricCategories...)

	sl := selector.NewSelector(log, settings, metrics)

	db := airadb.NewWrappedQuerier(airadb.New(dbconn))

	srv, err := NewServer(ctx, log, cfg.Server, sl, selector.NewDBSource(db), dbconn)
	if err != nil {
		return fmt.Errorf("srv setup: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	if cfg.Server.MetricsPort > 0 {
		g.Go(func() error {
			return metricssrv.ListenAndServe(ctx, cfg.Server.MetricsPort)
		})
	}

	g.Go(func() error {
		return srv.Run(ctx)
	})

	err = g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Error("server error", "err", err)
		return err
	}

	return nil
}

func (cmd *TokenCmd) Run(ctx context.Context, cfg *config.Config) error {
	if cfg.Server.JWTSecret == "" {
		return errors.New("server.jwt_secret is not configured")
	}

	auth, err := NewJWTAuthenticator(cfg.Server.JWTSecret)
	if err != nil {
		return err
	}

	token, err := auth.NewToken(cmd.Subject, cmd.TTL)
	if err != nil {
		return fmt.Errorf("could not sign token: %w", err)
	}

	fmt.Println(token)
	return nil
}
