package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newIngredientsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ingredients",
		Short: "Draw a random ingredient list from a running server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := flags.client().Ingredients(cmd.Context())
			if err != nil {
				return fmt.Errorf("ingredients: %w", err)
			}
			if flags.json {
				return printJSON(cmd.OutOrStdout(), map[string]string{"ingredients": list})
			}
			fmt.Fprintln(cmd.OutOrStdout(), list)
			return nil
		},
	}
}
