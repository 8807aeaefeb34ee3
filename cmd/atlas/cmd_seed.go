package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"skinatlas/internal/bootstrap"
	"skinatlas/internal/facts"
	"skinatlas/internal/platform/config"
	"skinatlas/internal/platform/postgres"
	"skinatlas/internal/platform/redis"
	dErrors "skinatlas/pkg/domain-errors"
	"skinatlas/pkg/platform/sentinel"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Copy a dataset file (or the bundled dataset) into the Postgres or Redis source",
		Long: `Writes every entry, repeats included, into the backend selected with --source.
Postgres keeps entry order; Redis keeps only the last entry for each country.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var src facts.Source = facts.EmbeddedSource{}
			if from != "" {
				src = facts.FileSource{Path: from}
			}
			entries, err := src.Load(ctx)
			if err != nil {
				return bootstrap.Classify(err)
			}

			if err := seed(ctx, opts.cfg, entries); err != nil {
				return bootstrap.Classify(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d entries into %s\n", len(entries), opts.cfg.Facts.Source)
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "dataset file to seed from (default: bundled dataset)")
	return cmd
}

func seed(ctx context.Context, cfg config.Server, entries []facts.Entry) error {
	switch cfg.Facts.Source {
	case config.SourcePostgres:
		db, err := postgres.Open(ctx, cfg.Facts.DatabaseURL)
		if err != nil {
			return fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
		}
		defer db.Close()
		return facts.NewPostgresSource(db).Seed(ctx, entries)
	case config.SourceRedis:
		client, err := redis.New(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("%w: %w", sentinel.ErrUnavailable, err)
		}
		defer client.Close()
		return facts.NewRedisSource(client.Client, cfg.Facts.RedisPrefix).Seed(ctx, entries)
	default:
		return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("seed needs --source=postgres or --source=redis, got %q", cfg.Facts.Source))
	}
}
