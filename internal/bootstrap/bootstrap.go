// Package bootstrap builds the fact source named by configuration and loads
// the fact table. The server and the CLI share it.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"skinatlas/internal/facts"
	"skinatlas/internal/platform/config"
	"skinatlas/internal/platform/postgres"
	"skinatlas/internal/platform/redis"
	"skinatlas/internal/regions"
	dErrors "skinatlas/pkg/domain-errors"
	"skinatlas/pkg/platform/sentinel"
)

// Process exit statuses for startup failures, from sysexits.h.
const (
	ExitFailure     = 1
	ExitDataErr     = 65
	ExitNoInput     = 66
	ExitUnavailable = 69
)

// OpenSource connects to the configured backend. The returned close function
// releases any connection and is never nil.
func OpenSource(ctx context.Context, cfg config.Server) (facts.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Facts.Source {
	case config.SourceEmbedded:
		return facts.EmbeddedSource{}, noop, nil
	case config.SourceFile:
		return facts.FileSource{Path: cfg.Facts.File}, noop, nil
	case config.SourcePostgres:
		db, err := postgres.Open(ctx, cfg.Facts.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
		}
		return facts.NewPostgresSource(db), db.Close, nil
	case config.SourceRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
		}
		if client == nil {
			return nil, noop, fmt.Errorf("redis fact source requires REDIS_URL")
		}
		return facts.NewRedisSource(client.Client, cfg.Facts.RedisPrefix), client.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown fact source %q", cfg.Facts.Source)
	}
}

// LoadStore opens the configured source, loads the table, and releases the
// connection; the store lives in memory for the rest of the process. Errors
// come back classified by Classify.
func LoadStore(ctx context.Context, cfg config.Server) (*facts.Store, error) {
	src, closeSource, err := OpenSource(ctx, cfg)
	if err != nil {
		return nil, Classify(err)
	}
	defer func() { _ = closeSource() }()

	store, err := facts.Load(ctx, src)
	if err != nil {
		return nil, Classify(err)
	}
	return store, nil
}

// Classify translates source sentinels into coded errors. Already coded
// errors and nil pass through.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var de *dErrors.Error
	if errors.As(err, &de) {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "fact source unavailable")
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.Wrap(err, dErrors.CodeNotFound, "fact dataset not found")
	case errors.Is(err, facts.ErrEmptyDataset), errors.Is(err, facts.ErrMalformedDataset):
		return dErrors.Wrap(err, dErrors.CodeValidation, "fact dataset rejected")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "fact source failed")
	}
}

// ExitCode picks the process exit status for a startup error.
func ExitCode(err error) int {
	switch {
	case dErrors.HasCode(err, dErrors.CodeUnavailable):
		return ExitUnavailable
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		return ExitNoInput
	case dErrors.HasCode(err, dErrors.CodeValidation):
		return ExitDataErr
	default:
		return ExitFailure
	}
}

// ReportStore logs the loaded table and how it lines up with the map.
func ReportStore(ctx context.Context, logger *slog.Logger, source string, store *facts.Store, mapRegions []regions.Region) regions.Coverage {
	logger.InfoContext(ctx, "fact table loaded",
		"source", source,
		"countries", store.Len(),
	)
	if dups := store.Duplicates(); len(dups) > 0 {
		logger.WarnContext(ctx, "repeated countries in fact source; later entries replaced earlier ones",
			"count", len(dups),
			"countries", dups,
		)
	}

	cov := regions.CheckCoverage(mapRegions, store.Countries())
	if len(cov.Unlabeled) > 0 {
		logger.WarnContext(ctx, "countries with facts that no map region produces",
			"count", len(cov.Unlabeled),
			"countries", cov.Unlabeled,
		)
	}
	logger.InfoContext(ctx, "map coverage",
		"matched", len(cov.Matched),
		"uncovered_regions", len(cov.Uncovered),
	)
	return cov
}
