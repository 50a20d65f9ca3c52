package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"
)

// Runner executes pipeline stages.
// Both CLI and API use it so that defaults and logging stay identical.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner logging to logger, or to the default logger
// when logger is nil.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete generate → plan → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{
		RunID:     uuid.NewString(),
		Artifacts: make(map[string][]byte),
	}
	r.Logger.Debug("pipeline run", "run_id", result.RunID)

	// Stage 1: Generate
	generateStart := time.Now()
	l, err := r.Generate(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	result.Layout = l
	result.Seed = opts.Seed
	result.Stats.GenerateTime = time.Since(generateStart)
	result.Stats.Bricks = l.TotalBricks
	result.Stats.Courses = l.CourseCount()

	// Stage 2: Plan
	planStart := time.Now()
	p, err := r.Plan(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	result.Plan = p
	result.Stats.PlanTime = time.Since(planStart)
	result.Stats.Placed = len(p.Placements)
	result.Stats.Strides = p.Strides

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, err := r.Render(ctx, l, &p, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Generate lays out a wall. A zero seed is replaced by a random one and
// written back to opts so callers can report it.
func (r *Runner) Generate(ctx context.Context, opts *Options) (wall.Layout, error) {
	if err := opts.ValidateForGenerate(); err != nil {
		return wall.Layout{}, err
	}
	pattern := bond.Pattern(opts.Pattern)

	var wild *bond.WildOptions
	if !pattern.Deterministic() {
		r.Logger.Debug("wild bond seed", "seed", opts.ResolveSeed())
		wild = opts.WildOptions()
	}

	start := time.Now()
	l, err := bond.Generate(ctx, pattern, opts.Width, opts.Height, wild)
	if err != nil {
		return wall.Layout{}, err
	}
	if l.Width != opts.Width {
		r.Logger.Warn("wall width snapped", "requested", opts.Width, "width", l.Width)
	}

	r.Logger.Info("generated layout",
		"pattern", l.Pattern,
		"bricks", l.TotalBricks,
		"courses", l.CourseCount(),
		"duration", time.Since(start))

	return l, nil
}

// Plan orders the bricks of l with the configured strategy. An incomplete
// plan is not an error; it is logged and returned with its status.
func (r *Runner) Plan(ctx context.Context, l wall.Layout, opts Options) (plan.Plan, error) {
	if err := opts.ValidateForPlan(); err != nil {
		return plan.Plan{}, err
	}
	planner, err := opts.Planner()
	if err != nil {
		return plan.Plan{}, err
	}

	start := time.Now()
	p, err := planner.Plan(ctx, l)
	if err != nil {
		return plan.Plan{}, err
	}

	if !p.Complete(l) {
		r.Logger.Warn("plan incomplete",
			"strategy", p.Strategy,
			"status", p.Status,
			"placed", len(p.Placements),
			"total", l.TotalBricks)
	}
	r.Logger.Info("planned build",
		"strategy", p.Strategy,
		"strides", p.Strides,
		"duration", time.Since(start))

	return p, nil
}

// Comparison is one strategy's outcome in [Runner.Compare].
type Comparison struct {
	Strategy string        `json:"strategy"`
	Plan     plan.Plan     `json:"plan"`
	Duration time.Duration `json:"duration"`
}

// Compare plans l with every strategy concurrently. Results are returned
// in [plan.Strategies] order. opts supplies the per-strategy parameters;
// its Strategy field is ignored.
func (r *Runner) Compare(ctx context.Context, l wall.Layout, opts Options) ([]Comparison, error) {
	strategies := plan.Strategies()
	out := make([]Comparison, len(strategies))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range strategies {
		o := opts
		o.Strategy = name
		planner, err := o.Planner()
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			start := time.Now()
			p, err := planner.Plan(ctx, l)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out[i] = Comparison{Strategy: name, Plan: p, Duration: time.Since(start)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	r.Logger.Info("compared strategies", "strategies", len(out), "bricks", l.TotalBricks)
	return out, nil
}
