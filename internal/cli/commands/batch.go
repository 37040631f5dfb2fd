package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"mrm2dfdl/internal/config"
	"mrm2dfdl/internal/pipeline"
)

// NewBatchCommand creates the batch command.
func NewBatchCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "batch <input>... --out-dir DIR",
		Short: "Convert several message sets concurrently",
		Long: `Convert several message sets with the same settings.

Each input is written to DIR under its base name with an .xsd extension.
Conversions are independent: a failing input does not stop the others, and
the command fails if any input failed.`,
		Example: `  mrm2dfdl batch sets/*.mxsd --out-dir schemas
  mrm2dfdl batch a.mxsd b.mxsd --out-dir schemas --jobs 2`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())

			jobs, err := batchJobs(cfg, args, outDir)
			if err != nil {
				return err
			}

			results, runErr := pipeline.New(config.GetLogger(cmd.Context())).
				RunBatch(cmd.Context(), jobs, cfg.Jobs)

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Input", "Output", "Fields", "Status"})

			failed := 0

			for i, res := range results {
				if res == nil {
					failed++

					t.AppendRow(table.Row{jobs[i].Input, jobs[i].Output, "-", "failed"})

					continue
				}

				t.AppendRow(table.Row{res.Job.Input, res.Job.Output, res.Fields, "ok"})
			}

			t.Render()

			if runErr != nil {
				return fmt.Errorf("%s of %d failed:\n%w", plural(failed, "conversion"), len(jobs), runErr)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory receiving the generated schemas")
	cmd.Flags().IntP("jobs", "j", 0, "Maximum concurrent conversions (default: number of CPUs)")
	_ = cmd.MarkFlagRequired("out-dir")

	addConversionFlags(cmd)

	return cmd
}

// batchJobs builds one job per input and rejects inputs that would write
// the same output file.
func batchJobs(cfg *config.Config, inputs []string, outDir string) ([]pipeline.Job, error) {
	jobs := make([]pipeline.Job, 0, len(inputs))
	seen := make(map[string]string, len(inputs))

	for _, input := range inputs {
		output := filepath.Join(outDir, outputName(input))

		if prev, ok := seen[output]; ok {
			return nil, fmt.Errorf("inputs %s and %s both write %s", prev, input, output)
		}

		seen[output] = input

		job, err := newJob(cfg, input, output)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, job)
	}

	return jobs, nil
}

// outputName maps an input path to its schema file name.
func outputName(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base)) + ".xsd"
}
