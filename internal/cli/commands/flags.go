// Package commands implements the mrm2dfdl subcommands.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mrm2dfdl/internal/config"
	"mrm2dfdl/internal/pipeline"
)

// addConversionFlags registers the flags that shape a conversion. Their
// values reach the command through the loaded config, not through the
// flag variables.
func addConversionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("target-namespace", "t", config.DefaultTargetNamespace, "Target namespace URI")
	f.StringP("schema-name", "n", config.DefaultModelName, "Name of the generated DFDL model")
	f.StringP("prefix", "p", config.DefaultNamespacePrefix, "Namespace prefix bound on every element (empty for none)")
	f.StringP("complex-type-name", "c", "", "Wrap groups in complex types with this name")
	f.StringP("root-element-name", "r", "", "Rename the top-level element")
	f.String("field-naming-convention", config.DefaultFieldNamingConvention, "Field naming convention recorded in the model")
	f.Int("max-occurs-unbounded", config.DefaultMaxOccursUnbounded, "Threshold used for unbounded occurrences")
	f.String("timestamp", "", `Pin the generation timestamp ("2006-01-02 15:04:05" or RFC 3339)`)
	addTypeFlags(cmd)
}

// addTypeFlags registers the flags that shape the type table.
func addTypeFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("type-override", "", "Target type for MRM types missing from the table")
	f.String("type-map", "", "YAML type mapping file layered over the built-in table")
}

// newJob builds a pipeline job from the loaded config.
func newJob(cfg *config.Config, input, output string) (pipeline.Job, error) {
	dctx, err := cfg.Context(input)
	if err != nil {
		return pipeline.Job{}, err
	}

	return pipeline.Job{
		Input:   input,
		Output:  output,
		Context: dctx,
		Table:   cfg.Table(),
	}, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}
