// Package pipeline wires wall generation, build planning, and rendering
// into one configurable run.
//
// This package implements the generate → plan → render pipeline shared by
// the CLI and the HTTP API. Centralizing it keeps defaults, validation, and
// logging identical across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: Lay out a wall in the requested bond pattern
//  2. Plan: Order the bricks with one of the planning strategies
//  3. Render: Produce output in various formats (SVG, JSON, DOT, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    Pattern:  "flemish",
//	    Width:    2300,
//	    Height:   2000,
//	    Strategy: "greedy",
//	    Formats:  []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	l, err := runner.Generate(ctx, opts)
//	p, err := runner.Plan(ctx, l, opts)
//	artifacts, err := runner.Render(ctx, l, &p, opts)
//
// # Configuration
//
// [Options] can be loaded from a TOML file with [LoadConfig]; command-line
// flags are then applied on top.
package pipeline

import (
	"io"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/reach"
	"github.com/matzehuels/bricklayer/pkg/wall"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultPattern is the bond pattern used when none is given.
	DefaultPattern = string(bond.PatternStretcher)

	// DefaultWidth is the default wall width in mm.
	DefaultWidth = 2300.0

	// DefaultHeight is the default wall height in mm.
	DefaultHeight = 2000.0

	// DefaultStrategy is the planning strategy used when none is given.
	DefaultStrategy = plan.StrategyGreedy

	// DefaultVizType is the default visualization type.
	DefaultVizType = VizTypeElevation

	// DefaultPNGScale is the resolution multiplier for PNG output.
	DefaultPNGScale = 2.0
)

// Visualization types.
const (
	VizTypeElevation = "elevation"
	VizTypeNodelink  = "nodelink"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// Formats returns every supported output format.
func Formats() []string {
	return []string{FormatSVG, FormatPNG, FormatPDF, FormatJSON, FormatDOT}
}

// VizTypes returns every supported visualization type.
func VizTypes() []string {
	return []string{VizTypeElevation, VizTypeNodelink}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for a pipeline run.
// It supports JSON for API requests and TOML for config files.
type Options struct {
	// Generate options
	Pattern string           `json:"pattern,omitempty" toml:"pattern"`
	Width   float64          `json:"width,omitempty" toml:"width"`
	Height  float64          `json:"height,omitempty" toml:"height"`
	Seed    uint64           `json:"seed,omitempty" toml:"seed"` // 0 picks a random seed
	Wild    bond.WildOptions `json:"wild,omitempty" toml:"wild"`

	// Plan options
	Strategy string        `json:"strategy,omitempty" toml:"strategy"`
	Sweep    plan.Sweep    `json:"sweep,omitempty" toml:"sweep"`
	Greedy   GreedyOptions `json:"greedy,omitempty" toml:"greedy"`

	// Render options
	VizType  string   `json:"viz_type,omitempty" toml:"viz_type"`
	Formats  []string `json:"formats,omitempty" toml:"formats"`
	Labels   bool     `json:"labels,omitempty" toml:"labels"`
	Stations bool     `json:"stations,omitempty" toml:"stations"`
	UpTo     *int     `json:"up_to,omitempty" toml:"up_to"` // last stride to shade; nil shades all

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-" toml:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// GreedyOptions configures the greedy planner. Nil weights take the
// defaults so that an explicit zero can disable a term.
type GreedyOptions struct {
	FutureWeight *float64      `json:"future_weight,omitempty" toml:"future_weight"`
	TravelWeight *float64      `json:"travel_weight,omitempty" toml:"travel_weight"`
	Reach        reach.Options `json:"reach,omitempty" toml:"reach"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in logs and API responses.
	RunID string

	// Seed is the seed the layout was generated with.
	Seed uint64

	// Layout is the generated wall.
	Layout wall.Layout

	// Plan is the build order.
	Plan plan.Plan

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Bricks       int
	Courses      int
	Placed       int
	Strides      int
	GenerateTime time.Duration
	PlanTime     time.Duration
	RenderTime   time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	return apperrors.ValidateChoice(apperrors.ErrCodeInvalidFormat, "format", format, Formats())
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	return apperrors.ValidateChoice(apperrors.ErrCodeInvalidInput, "viz_type", vizType, VizTypes())
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every stage's options and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForPlan(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGenerateDefaults sets default values for wall generation.
func (o *Options) SetGenerateDefaults() {
	if o.Pattern == "" {
		o.Pattern = DefaultPattern
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	o.setLogger()
}

// ValidateForGenerate validates and sets defaults for wall generation.
// The pattern name is normalized (e.g. "english" becomes "english-cross").
func (o *Options) ValidateForGenerate() error {
	o.SetGenerateDefaults()
	p, err := bond.ParsePattern(o.Pattern)
	if err != nil {
		return err
	}
	o.Pattern = string(p)
	if err := o.Wild.Validate(); err != nil {
		return err
	}
	return apperrors.ValidateDimensions(o.Width, o.Height)
}

// SetPlanDefaults sets default values for planning.
func (o *Options) SetPlanDefaults() {
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	o.setLogger()
}

// ValidateForPlan validates and sets defaults for planning.
func (o *Options) ValidateForPlan() error {
	o.SetPlanDefaults()
	_, err := o.Planner()
	return err
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.IsElevation() && slices.Contains(o.Formats, FormatDOT) {
		return apperrors.New(apperrors.ErrCodeInvalidFormat, "format %q requires viz_type %q", FormatDOT, VizTypeNodelink)
	}
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// IsElevation returns true if this is an elevation visualization.
func (o *Options) IsElevation() bool {
	return o.VizType == "" || o.VizType == VizTypeElevation
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// ResolveSeed fixes a random seed when none was given and returns it.
func (o *Options) ResolveSeed() uint64 {
	for o.Seed == 0 {
		o.Seed = rand.Uint64()
	}
	return o.Seed
}

// WildOptions returns the wild bond options seeded from o.Seed.
func (o *Options) WildOptions() *bond.WildOptions {
	w := o.Wild
	w.Rand = bond.NewRand(o.Seed)
	return &w
}

// Planner returns the configured planner for o.Strategy.
func (o *Options) Planner() (plan.Planner, error) {
	p, err := plan.ByName(o.Strategy)
	if err != nil {
		return nil, err
	}
	switch p.(type) {
	case plan.Sweep:
		return o.Sweep, nil
	case plan.Greedy:
		g := plan.DefaultGreedy()
		if o.Greedy.FutureWeight != nil {
			g.FutureWeight = *o.Greedy.FutureWeight
		}
		if o.Greedy.TravelWeight != nil {
			g.TravelWeight = *o.Greedy.TravelWeight
		}
		g.Reach = o.Greedy.Reach
		return g, nil
	}
	return p, nil
}

