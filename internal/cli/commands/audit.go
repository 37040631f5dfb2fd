package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mrm2dfdl/internal/config"
	"mrm2dfdl/internal/pipeline"
)

// NewAuditCommand creates the audit command.
func NewAuditCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <input>",
		Short: "Report every unmapped type in a message set",
		Long: `Check every field of a message set against the type table without
writing anything. Unlike convert, which stops at the first unmapped type,
audit lists them all with suggestions for likely intended types.`,
		Example: `  mrm2dfdl audit accounts.mxsd
  mrm2dfdl audit accounts.mxsd --type-map types.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			job, err := newJob(cfg, args[0], "")
			if err != nil {
				return err
			}

			diags, err := pipeline.New(config.GetLogger(cmd.Context())).Audit(cmd.Context(), job)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if len(diags.Errors)+len(diags.Warnings) > 0 {
				t := table.NewWriter()
				t.SetOutputMirror(out)
				t.SetStyle(table.StyleLight)
				t.AppendHeader(table.Row{"Severity", "Field", "Type", "Suggestions"})

				for _, d := range diags.All() {
					if d.FieldPath == "" {
						continue
					}

					t.AppendRow(table.Row{d.Severity, d.FieldPath, d.Type, strings.Join(d.Suggestions, ", ")})
				}

				t.Render()
			}

			for _, info := range diags.Infos {
				_, _ = fmt.Fprintln(out, info.Message)
			}

			if diags.HasErrors() {
				return fmt.Errorf("%s unresolved", plural(len(diags.Errors), "field type"))
			}

			return nil
		},
	}

	addTypeFlags(cmd)

	return cmd
}
