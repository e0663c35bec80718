package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okian/chefcontest/internal/adapters/ledger"
	"github.com/okian/chefcontest/internal/domain/model"
)

func newShowCmd(flags *rootFlags) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the ledger in file order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := flags.ledgerPath(cmd)
			if err != nil {
				return err
			}
			table, err := ledger.NewCSV(path).Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load ledger: %w", err)
			}
			if limit > 0 && table.Len() > limit {
				table.Rows = table.Rows[:limit]
			}
			if flags.json {
				return printJSON(cmd.OutOrStdout(), table)
			}
			return printTable(cmd, table)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most N rows (0 = all)")
	return cmd
}

func printTable(cmd *cobra.Command, t model.Table) error {
	out := cmd.OutOrStdout()
	if t.Empty() {
		fmt.Fprintln(out, "No entries yet.")
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Columns, "\t"))
	for _, e := range t.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			e.ChefName, e.RecipeName, e.Score, oneLine(e.Reason), e.Ingredients, e.Date)
	}
	return tw.Flush()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
