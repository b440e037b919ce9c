package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	leadhandler "leadgen/internal/lead/handler"
	leadmetrics "leadgen/internal/lead/metrics"
	leadservice "leadgen/internal/lead/service"
	"leadgen/internal/lead/synth"
	"leadgen/internal/platform/config"
	"leadgen/internal/platform/health"
	"leadgen/internal/platform/httpserver"
	"leadgen/internal/platform/metrics"
	"leadgen/internal/platform/tracer"
	httptransport "leadgen/internal/transport/http"
	request "leadgen/pkg/platform/middleware/request"
)

type app struct {
	router  http.Handler
	metrics http.Handler
}

func buildApp(cfg config.Server, log *slog.Logger) (*app, error) {
	pools, err := synth.LoadPools(cfg.PoolsFile)
	if err != nil {
		return nil, fmt.Errorf("load pools: %w", err)
	}
	synthesizer, err := synth.New(pools)
	if err != nil {
		return nil, fmt.Errorf("create synthesizer: %w", err)
	}

	reg := metrics.NewRegistry(health.Version, cfg.Environment)
	leadMetrics := leadmetrics.New(reg)

	svc, err := leadservice.New(synthesizer,
		leadservice.WithLogger(log),
		leadservice.WithMetrics(leadMetrics),
		leadservice.WithTracer(tracer.NewOTel()),
	)
	if err != nil {
		return nil, fmt.Errorf("create lead service: %w", err)
	}

	healthHandler := health.New(cfg.Environment)
	healthHandler.RegisterCheck("pools", func(context.Context) error {
		return synthesizer.Pools().Validate()
	})
	healthHandler.RegisterDetail("pools", func() any {
		return synthesizer.Pools().Sizes()
	})

	router := httptransport.NewRouter(
		httptransport.Config{MaxBodyBytes: cfg.MaxBodyBytes, RequestTimeout: cfg.RequestTimeout},
		log,
		request.NewMetrics(reg),
		leadhandler.New(svc, log, leadhandler.WithMetrics(leadMetrics)),
		healthHandler,
	)

	metricsRouter := chi.NewRouter()
	metricsRouter.Handle("/metrics", metrics.Handler(reg))

	return &app{router: router, metrics: metricsRouter}, nil
}

// run serves the API, and /metrics on its own listener when enabled, until
// ctx is cancelled or either server fails.
func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	a, err := buildApp(cfg, log)
	if err != nil {
		return err
	}

	log.Info("initializing leadgen",
		"addr", cfg.Addr,
		"metrics_addr", cfg.MetricsAddr,
		"environment", cfg.Environment,
		"pools_file", cfg.PoolsFile,
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		return httpserver.Run(ctx, httpserver.New(cfg.Addr, a.router), cfg.ShutdownTimeout)
	})
	if cfg.MetricsEnabled() {
		g.Go(func() error {
			log.Info("starting metrics server", "addr", cfg.MetricsAddr)
			return httpserver.Run(ctx, httpserver.New(cfg.MetricsAddr, a.metrics), cfg.ShutdownTimeout)
		})
	}
	return g.Wait()
}
