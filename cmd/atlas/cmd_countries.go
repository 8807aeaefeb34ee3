package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skinatlas/internal/regions"
)

func newCountriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "countries",
		Short: "List every country in the fact table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range store.Countries() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newCoverageCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Compare fact keys with the map's region labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			cov := regions.CheckCoverage(regions.Default(), store.Countries())
			r := newRenderer(cmd.OutOrStdout())
			r.list(fmt.Sprintf("Matched (%d)", len(cov.Matched)), cov.Matched)
			r.list(fmt.Sprintf("Facts without a map region (%d)", len(cov.Unlabeled)), cov.Unlabeled)
			r.list(fmt.Sprintf("Map regions without facts (%d)", len(cov.Uncovered)), cov.Uncovered)
			return nil
		},
	}
}
