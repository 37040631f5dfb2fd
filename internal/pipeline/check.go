package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"mrm2dfdl/internal/render"
)

// Drift is the line diff between an existing schema and a fresh one.
type Drift struct {
	Path  string
	Diffs []diffmatchpatch.Diff
}

// Changed reports whether the two documents differ.
func (d *Drift) Changed() bool {
	for _, diff := range d.Diffs {
		if diff.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}

	return false
}

// Stats counts inserted and deleted lines.
func (d *Drift) Stats() (inserted, deleted int) {
	for _, diff := range d.Diffs {
		n := countLines(diff.Text)

		switch diff.Type {
		case diffmatchpatch.DiffInsert:
			inserted += n
		case diffmatchpatch.DiffDelete:
			deleted += n
		case diffmatchpatch.DiffEqual:
		}
	}

	return inserted, deleted
}

// Check regenerates job.Output from job.Input and compares it with the file
// already on disk. The generation timestamp is taken from the existing
// file so that only real changes show up.
func (r *Runner) Check(ctx context.Context, job Job) (*Drift, error) {
	existing, err := os.ReadFile(job.Output)
	if err != nil {
		return nil, fmt.Errorf("failed to read existing schema: %w", err)
	}

	ts, err := render.GeneratedAt(existing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", job.Output, err)
	}

	job.Context.GeneratedAt = ts

	fresh, err := r.Generate(ctx, job)
	if err != nil {
		return nil, err
	}

	drift := &Drift{Path: job.Output, Diffs: lineDiff(string(existing), string(fresh))}

	inserted, deleted := drift.Stats()
	r.logger.Debug("checked DFDL schema",
		"output", job.Output,
		"changed", drift.Changed(),
		"inserted", inserted,
		"deleted", deleted)

	return drift, nil
}

func lineDiff(a, b string) []diffmatchpatch.Diff {
	dmp := diffmatchpatch.New()

	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(ca, cb, false)

	return dmp.DiffCharsToLines(diffs, lines)
}

func countLines(s string) int {
	n := strings.Count(s, "\n")

	if len(s) > 0 && s[len(s)-1] != '\n' {
		n++
	}

	return n
}
