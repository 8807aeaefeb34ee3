// Command atlas looks up skin pigmentation adaptation facts from a terminal
// and manages the backends the server can load them from.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"skinatlas/internal/bootstrap"
	"skinatlas/internal/facts"
	"skinatlas/internal/platform/config"
)

type rootOptions struct {
	cfg config.Server
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(bootstrap.ExitCode(err))
	}
}

// newRootCmd writes results to out and diagnostics, including cobra's error
// line, to errOut.
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	opts := &rootOptions{cfg: config.FromEnv()}

	root := &cobra.Command{
		Use:           "atlas",
		Short:         "Query the skin pigmentation adaptation fact table",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.cfg.Validate()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfg.Facts.Source, "source", opts.cfg.Facts.Source, "fact source: embedded, file, postgres or redis")
	flags.StringVar(&opts.cfg.Facts.File, "file", opts.cfg.Facts.File, "dataset file for --source=file")
	flags.StringVar(&opts.cfg.Facts.DatabaseURL, "database-url", opts.cfg.Facts.DatabaseURL, "Postgres URL for --source=postgres")
	flags.StringVar(&opts.cfg.Redis.URL, "redis-url", opts.cfg.Redis.URL, "Redis URL for --source=redis")
	flags.StringVar(&opts.cfg.Facts.RedisPrefix, "redis-prefix", opts.cfg.Facts.RedisPrefix, "key prefix of the fact hashes")

	root.AddCommand(
		newLookupCmd(opts),
		newCountriesCmd(opts),
		newCoverageCmd(opts),
		newSeedCmd(opts),
	)
	return root
}

func (o *rootOptions) loadStore(ctx context.Context) (*facts.Store, error) {
	store, err := bootstrap.LoadStore(ctx, o.cfg)
	if err != nil {
		return nil, fmt.Errorf("%s source: %w", o.cfg.Facts.Source, err)
	}
	return store, nil
}
