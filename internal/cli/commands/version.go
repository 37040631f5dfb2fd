package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the mrm2dfdl version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mrm2dfdl v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "IBM MRM message set to DFDL schema converter")
		},
	}
}
