package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLeftoversCmd(flags *rootFlags) *cobra.Command {
	var chef string
	cmd := &cobra.Command{
		Use:   "leftovers INGREDIENT[, INGREDIENT...]",
		Short: "Ask a running server for dishes built from leftovers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := flags.client().Leftovers(cmd.Context(), chef, strings.Join(args, ","))
			if err != nil {
				return fmt.Errorf("leftovers: %w", err)
			}
			if flags.json {
				return printJSON(cmd.OutOrStdout(), out)
			}
			w := cmd.OutOrStdout()
			for i, s := range out {
				fmt.Fprintf(w, "%d. %s\n   %s\n", i+1, s.Name, oneLine(s.Recipe))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&chef, "chef", "", "Chef name")
	return cmd
}
