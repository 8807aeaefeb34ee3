package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"skinatlas/internal/selection"
	platformstrings "skinatlas/pkg/platform/strings"
)

func newLookupCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup [country...]",
		Short: "Print the panel for each country, or the prompt when none is given",
		Long: `Prints exactly what the map's side panel shows after a click.
Country names must match the map labels exactly, including case.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.loadStore(cmd.Context())
			if err != nil {
				return err
			}
			svc := selection.New(store)
			r := newRenderer(cmd.OutOrStdout())

			countries := platformstrings.Dedupe(args)
			if len(countries) == 0 {
				r.payload(svc.OnCountryClicked(nil))
				return nil
			}
			for i, c := range countries {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				r.payload(svc.OnCountryClicked(&c))
			}
			return nil
		},
	}
}
