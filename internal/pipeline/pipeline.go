package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/sync/errgroup"

	"mrm2dfdl/internal/dfdl"
	"mrm2dfdl/internal/diagnostic"
	"mrm2dfdl/internal/msgset"
	"mrm2dfdl/internal/render"
	"mrm2dfdl/internal/typemap"
)

// Job describes one conversion.
type Job struct {
	Input  string
	Output string
	// Context is used as is, except that an empty SourcePath is filled with
	// Input and a zero GeneratedAt with the current time.
	Context dfdl.Context
	Table   *typemap.Table
}

// Result reports a finished conversion.
type Result struct {
	Job    Job
	Fields int
	Size   int
}

// Runner executes jobs.
type Runner struct {
	logger *slog.Logger
	now    func() time.Time
}

// New creates a runner logging to logger. A nil logger discards output.
func New(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Runner{logger: logger, now: time.Now}
}

// Run converts a single job and writes its output. Nothing is written when
// any stage fails.
func (r *Runner) Run(ctx context.Context, job Job) (*Result, error) {
	data, fields, err := r.generate(ctx, job)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := render.WriteBytes(data, job.Output); err != nil {
		return nil, err
	}

	r.logger.Info("wrote DFDL schema",
		"input", job.Input,
		"output", job.Output,
		"fields", fields,
		"bytes", len(data))

	return &Result{Job: job, Fields: fields, Size: len(data)}, nil
}

// Generate converts a job and returns the rendered document without
// writing it.
func (r *Runner) Generate(ctx context.Context, job Job) ([]byte, error) {
	data, _, err := r.generate(ctx, job)
	return data, err
}

// RunBatch runs jobs concurrently with at most workers in flight. Results
// are returned in job order; a failed job leaves a nil entry and its error
// is joined into the returned error. One failure does not cancel the rest.
func (r *Runner) RunBatch(ctx context.Context, jobs []Job, workers int) ([]*Result, error) {
	results := make([]*Result, len(jobs))
	errs := make([]error, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, job := range jobs {
		g.Go(func() error {
			res, err := r.Run(gctx, job)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", job.Input, err)
				return nil
			}

			results[i] = res

			return nil
		})
	}

	// Workers never return errors; failures are collected per job.
	_ = g.Wait()

	return results, errors.Join(errs...)
}

// Audit loads the job's message set and reports every type resolution
// issue instead of stopping at the first.
func (r *Runner) Audit(ctx context.Context, job Job) (*diagnostic.Diagnostics, error) {
	root, err := r.load(ctx, job.Input)
	if err != nil {
		return nil, err
	}

	resolver := typemap.NewResolver(job.Table, job.Context.TypeOverride)

	return typemap.Audit(root, resolver), nil
}

func (r *Runner) generate(ctx context.Context, job Job) ([]byte, int, error) {
	root, err := r.load(ctx, job.Input)
	if err != nil {
		return nil, 0, err
	}

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	dctx := job.Context
	if dctx.SourcePath == "" {
		dctx.SourcePath = job.Input
	}

	if dctx.GeneratedAt.IsZero() {
		dctx.GeneratedAt = r.now()
	}

	model, err := dfdl.Assemble(root, job.Table, dctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to convert message set: %w", err)
	}

	data, err := render.Bytes(model)
	if err != nil {
		return nil, 0, err
	}

	return data, msgset.CountFields(root), nil
}

func (r *Runner) load(ctx context.Context, path string) (*msgset.Group, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root, err := msgset.LoadFile(path)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("loaded message set",
		"input", path,
		"fields", msgset.CountFields(root))

	if r.logger.Enabled(ctx, slog.LevelDebug) {
		r.logger.Debug("message set tree", "input", path, "dump", spew.Sdump(root))
	}

	return root, nil
}
