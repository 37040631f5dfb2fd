package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"mrm2dfdl/internal/config"
	"mrm2dfdl/internal/pipeline"
)

// NewConvertCommand creates the convert command.
func NewConvertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert an MRM message set into a DFDL schema",
		Long: `Convert an IBM MRM message set definition into a DFDL schema.

Every field type is looked up in the type table. A type missing from the
table fails the conversion unless --type-override is set, and no output is
written on failure.`,
		Example: `  mrm2dfdl convert accounts.mxsd accounts.xsd
  mrm2dfdl convert accounts.mxsd out/accounts.xsd -n accounts -c AccountsType
  mrm2dfdl convert accounts.mxsd accounts.xsd --type-override xsd:string`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			job, err := newJob(cfg, args[0], args[1])
			if err != nil {
				return err
			}

			res, err := pipeline.New(config.GetLogger(cmd.Context())).Run(cmd.Context(), job)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s)\n", res.Job.Output, plural(res.Fields, "field"))

			return nil
		},
	}

	addConversionFlags(cmd)

	return cmd
}
