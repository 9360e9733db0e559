package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	patfmt "github.com/reportkit/go-patfmt"
	"github.com/reportkit/go-patfmt/diag"
)

// manifest is the YAML shape report templates use to declare their cell
// patterns:
//
//	patterns:
//	  total:    "#,##0.00"
//	  due_date: "yyyy-MM-dd"
type manifest struct {
	Patterns map[string]string `yaml:"patterns"`
}

func newCheckCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check <manifest.yaml>",
		Short: "Validate every pattern declared in a YAML manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			failures, err := checkManifest(cmd.OutOrStdout(), data, strict)
			if err != nil {
				return err
			}
			if failures > 0 {
				return fmt.Errorf("%d invalid pattern(s)", failures)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "apply strict validation rules")
	return cmd
}

// checkManifest validates each named pattern and reports per-pattern
// results.  It returns the number of failures.
func checkManifest(w io.Writer, data []byte, strict bool) (int, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return 0, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Patterns) == 0 {
		return 0, errors.New("manifest declares no patterns")
	}

	names := make([]string, 0, len(m.Patterns))
	for name := range m.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	okColor := color.New(color.FgGreen)
	badColor := color.New(color.FgRed)

	failures := 0
	for _, name := range names {
		pattern := m.Patterns[name]
		_, err := patfmt.Parse(pattern, patfmt.FormatOptions{ValidateOnly: true, Strict: strict})
		if err == nil {
			okColor.Fprintf(w, "ok    %-20s %q (%s)\n", name, pattern, patfmt.DetectType(pattern))
			continue
		}
		failures++
		var perr *diag.ParseError
		if errors.As(err, &perr) {
			badColor.Fprintf(w, "fail  %-20s %q: %s\n", name, pattern, perr.Message)
			fmt.Fprintf(w, "      %s\n", diag.JoinSuggestions(perr.Suggestions))
			continue
		}
		badColor.Fprintf(w, "fail  %-20s %q: %v\n", name, pattern, err)
	}
	return failures, nil
}
