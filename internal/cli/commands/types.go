package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mrm2dfdl/internal/config"
	"mrm2dfdl/internal/typemap"
)

// NewTypesCommand creates the types command.
func NewTypesCommand() *cobra.Command {
	var (
		export string
		filter string
	)

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the effective type table",
		Long: `List the MRM to XSD type table used for conversions: the built-in
entries with any --type-map file applied.

With --export the table is written as a type mapping file that can be
edited and passed back with --type-map.`,
		Example: `  mrm2dfdl types
  mrm2dfdl types --filter CHAR
  mrm2dfdl types --export types.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			tbl := cfg.Table()
			out := cmd.OutOrStdout()

			if export != "" {
				if err := typemap.WriteFile(typemap.FromTable(tbl, cfg.Override()), export); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(out, "Wrote %s to %s\n", plural(tbl.Len(), "type mapping"), export)

				return nil
			}

			t := table.NewWriter()
			t.SetOutputMirror(out)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"MRM Type", "XSD Type"})

			shown := 0

			for _, e := range tbl.Entries() {
				if filter != "" && !strings.Contains(strings.ToLower(e.Source), strings.ToLower(filter)) {
					continue
				}

				t.AppendRow(table.Row{e.Source, e.Target})
				shown++
			}

			if override := cfg.Override(); override != "" {
				t.AppendFooter(table.Row{"(other)", override})
			}

			t.Render()
			_, _ = fmt.Fprintf(out, "(%s)\n", plural(shown, "type"))

			return nil
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "Write the table to a YAML type mapping file")
	cmd.Flags().StringVar(&filter, "filter", "", "Only list MRM types containing this text")
	addTypeFlags(cmd)

	return cmd
}
