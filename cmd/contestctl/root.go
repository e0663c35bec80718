package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/okian/chefcontest/internal/client"
	"github.com/okian/chefcontest/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	ledger  string
	server  string
	timeout time.Duration
	json    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "contestctl",
		Short: "Inspect and feed the recipe naming contest",
		Long: "contestctl reads the contest ledger directly (show, winners) or\n" +
			"talks to a running contest server (submit, ingredients, leftovers).",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.ledger, "ledger", "", "Ledger CSV path (default: ledger_path from config)")
	pf.StringVar(&flags.server, "server", "http://localhost:9080", "Base URL of the contest server")
	pf.DurationVar(&flags.timeout, "timeout", 2*time.Minute, "HTTP request timeout")
	pf.BoolVar(&flags.json, "json", false, "Print JSON instead of a table")

	root.AddCommand(
		newShowCmd(flags),
		newWinnersCmd(flags),
		newSubmitCmd(flags),
		newIngredientsCmd(flags),
		newLeftoversCmd(flags),
	)
	return root
}

// ledgerPath resolves the ledger from the flag or the layered config.
func (f *rootFlags) ledgerPath(cmd *cobra.Command) (string, error) {
	if f.ledger != "" {
		return f.ledger, nil
	}
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return "", err
	}
	return cfg.LedgerPath, nil
}

func (f *rootFlags) client() *client.Client {
	return client.New(f.server, client.WithTimeout(f.timeout))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
