package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	patfmt "github.com/reportkit/go-patfmt"
	"github.com/reportkit/go-patfmt/diag"
)

func newFormatCmd() *cobra.Command {
	var (
		typeFlag string
		locale   string
		cur      string
	)

	cmd := &cobra.Command{
		Use:   "format <pattern> <value>",
		Short: "Compile a pattern and format one value with it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			opts := patfmt.FormatOptions{
				Type:     patfmt.FormatType(typeFlag),
				Locale:   locale,
				Currency: cur,
			}

			spec, err := patfmt.Parse(pattern, opts)
			if err != nil {
				var perr *diag.ParseError
				if errors.As(err, &perr) {
					printDiagnostic(os.Stderr, pattern, perr)
					return err
				}
				return err
			}

			out, err := spec.Format(parseValue(args[1]))
			if err != nil {
				return fmt.Errorf("format: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeFlag, "type", "t", "", "assert the pattern family")
	cmd.Flags().StringVarP(&locale, "locale", "l", "", "BCP 47 locale tag")
	cmd.Flags().StringVarP(&cur, "currency", "c", "", "ISO 4217 code or literal symbol")
	return cmd
}

// parseValue maps a command-line argument to the closed runtime variant set:
// timestamp, date, number, boolean, or string (in that order of preference).
func parseValue(arg string) any {
	if t, err := time.Parse(time.RFC3339, arg); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", arg); err == nil {
		return t
	}
	if f, err := strconv.ParseFloat(arg, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(arg); err == nil {
		return b
	}
	return arg
}
