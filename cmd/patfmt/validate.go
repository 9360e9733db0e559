package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	patfmt "github.com/reportkit/go-patfmt"
	"github.com/reportkit/go-patfmt/diag"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <pattern>",
		Short: "Check a pattern's structural well-formedness",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			err := patfmt.Validate(pattern)
			if err == nil {
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(),
					"ok: %q is a valid %s pattern\n", pattern, patfmt.DetectType(pattern))
				return nil
			}
			var perr *diag.ParseError
			if errors.As(err, &perr) {
				printDiagnostic(os.Stderr, pattern, perr)
				return err
			}
			return fmt.Errorf("validate: %w", err)
		},
	}
}
