// Command patfmt is a developer tool for inspecting format patterns: it
// detects a pattern's family, dumps its token stream, validates it with
// full diagnostics, formats sample values, and checks YAML pattern
// manifests used by report templates.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	patfmt "github.com/reportkit/go-patfmt"
	"github.com/reportkit/go-patfmt/diag"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "patfmt",
		Short:         "Inspect and test report format patterns",
		Version:       patfmt.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newDetectCmd(),
		newTokenizeCmd(),
		newValidateCmd(),
		newFormatCmd(),
		newCheckCmd(),
	)
	return root
}

func newDetectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "detect <pattern>",
		Short: "Print the detected pattern family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), patfmt.DetectType(args[0]))
			return nil
		},
	}
}

// printDiagnostic renders a ParseError with its context snippet and
// suggestions.
func printDiagnostic(w *os.File, pattern string, perr *diag.ParseError) {
	errColor := color.New(color.FgRed, color.Bold)
	hintColor := color.New(color.FgYellow)

	errColor.Fprintf(w, "error: %s\n", perr.Message)
	fmt.Fprintf(w, "  pattern:  %s\n", pattern)
	fmt.Fprintf(w, "  position: %d\n", perr.Position)
	fmt.Fprintf(w, "  context:  %s\n", perr.Context)
	for _, s := range perr.Suggestions {
		hintColor.Fprintf(w, "  hint: %s\n", s)
	}
}
