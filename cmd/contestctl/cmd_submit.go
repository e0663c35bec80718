package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okian/chefcontest/internal/client"
)

func newSubmitCmd(flags *rootFlags) *cobra.Command {
	var s client.Submission
	cmd := &cobra.Command{
		Use:   "submit RECIPE_NAME",
		Short: "Submit a recipe name to a running server for scoring",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.RecipeName = strings.Join(args, " ")
			out, err := flags.client().Submit(cmd.Context(), s)

			var se *client.StatusError
			if errors.As(err, &se) && out.Result != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: scored but not recorded: %s\n", se.Message)
			} else if err != nil {
				return fmt.Errorf("submit: %w", err)
			}

			w := cmd.OutOrStdout()
			if flags.json {
				if perr := printJSON(w, out); perr != nil {
					return perr
				}
				return err
			}
			if out.Duplicate {
				fmt.Fprintf(w, "Submission %s was already recorded.\n", out.SubmissionID)
				return nil
			}
			fmt.Fprintf(w, "Score:  %d/10\n", out.Result.Score)
			fmt.Fprintf(w, "Reason: %s\n", out.Result.Reason)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVar(&s.ChefName, "chef", "", "Chef name (required)")
	f.StringVar(&s.Ingredients, "ingredients", "", "Ingredients the name was invented for")
	f.StringVar(&s.SubmissionID, "id", "", "Submission id for safe retries (default: generated by the server)")
	_ = cmd.MarkFlagRequired("chef")
	return cmd
}
