package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	patfmt "github.com/reportkit/go-patfmt"
	"github.com/reportkit/go-patfmt/token"
)

func newTokenizeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "tokenize <pattern>",
		Short: "Dump a pattern's token stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeTokens(cmd.OutOrStdout(), patfmt.Tokenize(args[0]), output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table or json")
	return cmd
}

// writeTokens renders a token stream in the chosen output format.
func writeTokens(w io.Writer, toks []token.Token, output string) error {
	switch output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toks)
	case "table":
		for _, tok := range toks {
			if _, err := fmt.Fprintf(w, "%3d  %-16s  %q\n", tok.Pos, tok.Kind, tok.Text); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}
