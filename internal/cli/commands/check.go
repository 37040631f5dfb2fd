package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"mrm2dfdl/internal/config"
	"mrm2dfdl/internal/pipeline"
)

// ErrDrift is returned when an existing schema is out of date.
var ErrDrift = errors.New("schema is out of date")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "check <input> <existing-output>",
		Short: "Check that a generated schema is up to date",
		Long: `Regenerate a schema and compare it with the one on disk.

The generation timestamp is taken from the existing schema, so only real
changes are reported. The command fails when the schemas differ, which makes
it suitable for CI.`,
		Example: `  mrm2dfdl check accounts.mxsd schemas/accounts.xsd`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			job, err := newJob(cfg, args[0], args[1])
			if err != nil {
				return err
			}

			drift, err := pipeline.New(config.GetLogger(cmd.Context())).Check(cmd.Context(), job)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if !drift.Changed() {
				_, _ = fmt.Fprintf(out, "%s is up to date\n", drift.Path)
				return nil
			}

			printDrift(out, drift, !noColor && isTerminal(out))

			return fmt.Errorf("%s: %w", drift.Path, ErrDrift)
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	addConversionFlags(cmd)

	return cmd
}

// printDrift writes the changed lines of drift, "-" for lines only in the
// existing schema and "+" for lines only in the regenerated one.
func printDrift(w io.Writer, drift *pipeline.Drift, colored bool) {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	head := color.New(color.Bold)

	for _, c := range []*color.Color{del, ins, head} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	_, _ = head.Fprintf(w, "--- %s (existing)\n+++ %s (regenerated)\n", drift.Path, drift.Path)

	for _, d := range drift.Diffs {
		var (
			c      *color.Color
			prefix string
		)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			c, prefix = del, "-"
		case diffmatchpatch.DiffInsert:
			c, prefix = ins, "+"
		case diffmatchpatch.DiffEqual:
			continue
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			_, _ = c.Fprint(w, prefix+strings.TrimSuffix(line, "\n")+"\n")
		}
	}

	inserted, deleted := drift.Stats()
	_, _ = fmt.Fprintf(w, "%s, %s\n", plural(inserted, "insertion"), plural(deleted, "deletion"))
}
