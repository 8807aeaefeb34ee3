package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"skinatlas/internal/bootstrap"
	"skinatlas/internal/platform/config"
	"skinatlas/internal/platform/httpserver"
	"skinatlas/internal/platform/logger"
	"skinatlas/internal/platform/metrics"
	"skinatlas/internal/regions"
	"skinatlas/internal/selection"
	selectionhandler "skinatlas/internal/selection/handler"
	selectionmetrics "skinatlas/internal/selection/metrics"
	httptransport "skinatlas/internal/transport/http"
	"skinatlas/internal/web"
)

// main loads the fact table, wires the HTTP router, and keeps the server
// lifecycle small. Lookup logic lives in internal/selection.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.IsProduction(), cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := bootstrap.LoadStore(ctx, cfg)
	if err != nil {
		log.Error("failed to load fact table", "source", cfg.Facts.Source, "error", err)
		os.Exit(bootstrap.ExitCode(err))
	}
	mapRegions := regions.Default()
	bootstrap.ReportStore(ctx, log, cfg.Facts.Source, store, mapRegions)

	m := metrics.New()
	m.SetFactsLoaded(store.Len())

	svc := selection.New(store)
	router := httptransport.NewRouter(log, m,
		httptransport.NewCatalogHandler(store, mapRegions),
		selectionhandler.New(svc, log, selectionmetrics.New(m.Registry())),
		web.New(svc, mapRegions, cfg.PlotlyURL, log),
	)
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting skinatlas", "addr", cfg.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
