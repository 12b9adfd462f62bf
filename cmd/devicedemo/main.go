// Package main runs a demo server that renders a page per device view.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/mobiledetect"
	"github.com/dmitrymomot/mobiledetect/pkg/collector"
	"github.com/dmitrymomot/mobiledetect/pkg/config"
	"github.com/dmitrymomot/mobiledetect/pkg/devicedetect"
	"github.com/dmitrymomot/mobiledetect/pkg/deviceview"
	"github.com/dmitrymomot/mobiledetect/pkg/httpserver"
	"github.com/dmitrymomot/mobiledetect/pkg/logger"
	"github.com/dmitrymomot/mobiledetect/pkg/requestid"
	"github.com/dmitrymomot/mobiledetect/pkg/telemetry"
)

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("demo server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var logCfg logger.Config
	if err := config.Load(&logCfg); err != nil {
		return err
	}
	log, err := logger.NewFromConfig(logCfg,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			deviceview.LoggerExtractor(),
		),
	)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	var otelCfg telemetry.Config
	if err := config.Load(&otelCfg); err != nil {
		return err
	}
	shutdownTracing, err := telemetry.Setup(ctx, otelCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.WithoutCancel(ctx)); err != nil {
			log.Error("failed to flush traces", logger.Error(err))
		}
	}()

	cfg, err := mobiledetect.LoadConfig()
	if err != nil {
		return err
	}

	var checks []httpserver.Check
	opts := []mobiledetect.Option{mobiledetect.WithLogger(log)}

	if cfg.ProfilerEnabled && cfg.ProfilerRedis.URL != "" {
		client, err := collector.ConnectRedis(ctx, cfg.ProfilerRedis)
		if err != nil {
			return err
		}
		defer client.Close()

		checks = append(checks, collector.RedisHealthcheck(client))
		opts = append(opts, mobiledetect.WithProfileStore(
			collector.NewRedisStore(client, cfg.ProfilerRedis.KeyPrefix, cfg.ProfilerRedis.TTL),
		))
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP, middleware.Recoverer)
	r.Use(telemetry.Middleware(nil), requestid.Middleware)

	bundle, err := mobiledetect.New(cfg, append(opts,
		mobiledetect.WithRouteMatcher(devicedetect.ChiMatcher{Routes: r}),
		mobiledetect.WithRouteOptions(devicedetect.RouteOptions{
			"/articles/{slug}": {deviceview.ViewTablet: deviceview.ActionRedirectWithoutPath},
		}),
	)...)
	if err != nil {
		return err
	}

	r.Get("/health/live", httpserver.Liveness())
	r.Get("/health/ready", httpserver.Readiness(log, checks...))
	r.Mount("/_profiler", bundle.ProfilerHandler())

	r.Group(func(r chi.Router) {
		r.Use(bundle.Middleware)
		r.Get("/", pageHandler(bundle, log))
		r.Get("/articles/{slug}", pageHandler(bundle, log))
	})

	var srvCfg httpserver.Config
	if err := config.Load(&srvCfg); err != nil {
		return err
	}

	return httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log)).Run(ctx, r)
}
