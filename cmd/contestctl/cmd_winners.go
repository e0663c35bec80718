package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okian/chefcontest/internal/adapters/ledger"
	"github.com/okian/chefcontest/internal/domain/standings"
)

func newWinnersCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "winners",
		Short: "Print the daily, weekly and monthly winners from the ledger",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := flags.ledgerPath(cmd)
			if err != nil {
				return err
			}
			table, err := ledger.NewCSV(path).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load ledger: %w", err)
			}

			out := cmd.OutOrStdout()
			w, ok := standings.Compute(table)
			if !ok {
				if flags.json {
					return printJSON(out, map[string]string{"message": "no data"})
				}
				fmt.Fprintln(out, "No data.")
				return nil
			}
			if flags.json {
				return printJSON(out, w)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "Granularity\tPeriod\tChef Name\tRecipe Name\tScore")
			for _, group := range []struct {
				g    standings.Granularity
				rows []standings.Winner
			}{
				{standings.Daily, w.Daily},
				{standings.Weekly, w.Weekly},
				{standings.Monthly, w.Monthly},
			} {
				for _, r := range group.rows {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\n", group.g, r.Period, r.ChefName, r.RecipeName, r.Score)
				}
			}
			return tw.Flush()
		},
	}
}
