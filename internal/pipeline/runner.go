// Package pipeline runs the data pipeline stages sequentially, each as a
// child process of the current binary. A failing stage is logged and counted
// but never stops the stages after it.
package pipeline

import (
	"context"
	"log/slog"
	"os/exec"
	"time"

	"github.com/couchcryptid/launch-data-pipeline/internal/observability"
)

// Stage is one pipeline step: a subcommand of the pipeline binary.
type Stage struct {
	Name string
	Args []string
}

// StageResult records one stage execution.
type StageResult struct {
	Stage    string
	Err      error
	Duration time.Duration
	Output   string // combined stdout and stderr
}

// Runner executes stages in order via the given executable.
type Runner struct {
	exe     string
	stages  []Stage
	logger  *slog.Logger
	metrics *observability.Metrics
}

func NewRunner(exe string, stages []Stage, logger *slog.Logger, metrics *observability.Metrics) *Runner {
	return &Runner{exe: exe, stages: stages, logger: logger, metrics: metrics}
}

// Run executes every stage and returns all results. Cancelling ctx stops the
// current stage and skips the rest.
func (r *Runner) Run(ctx context.Context) []StageResult {
	results := make([]StageResult, 0, len(r.stages))
	for _, stage := range r.stages {
		if ctx.Err() != nil {
			r.logger.Warn("pipeline cancelled", "remaining_from", stage.Name)
			break
		}
		results = append(results, r.runStage(ctx, stage))
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	r.logger.Info("pipeline finished", "stages", len(results), "failed", failed)
	return results
}

func (r *Runner) runStage(ctx context.Context, stage Stage) StageResult {
	r.logger.Info("running stage", "stage", stage.Name, "args", stage.Args)
	start := time.Now()

	cmd := exec.CommandContext(ctx, r.exe, stage.Args...)
	out, err := cmd.CombinedOutput()

	res := StageResult{
		Stage:    stage.Name,
		Err:      err,
		Duration: time.Since(start),
		Output:   string(out),
	}
	r.metrics.StageDuration.WithLabelValues(stage.Name).Observe(res.Duration.Seconds())

	if err != nil {
		r.metrics.StageRuns.WithLabelValues(stage.Name, "failure").Inc()
		r.logger.Error("stage failed",
			"stage", stage.Name,
			"error", err,
			"output", res.Output,
			"duration", res.Duration,
		)
		return res
	}

	r.metrics.StageRuns.WithLabelValues(stage.Name, "success").Inc()
	r.logger.Info("stage completed", "stage", stage.Name, "duration", res.Duration)
	return res
}
