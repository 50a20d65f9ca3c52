package plan

import (
	"context"
	"math"

	"github.com/matzehuels/bricklayer/pkg/geometry"
	"github.com/matzehuels/bricklayer/pkg/reach"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// DefaultSweepStepX is the horizontal envelope move per stride: two full
// brick modules.
const DefaultSweepStepX = 2 * wall.FullBrickModule

// Sweep moves one build envelope across the wall.
//
// Each stride places everything the envelope can saturate. If the bottom
// third of the envelope then holds nothing placeable across the whole wall
// width, the envelope climbs by StepY. It then moves StepX sideways,
// bouncing off the wall edges.
type Sweep struct {
	Envelope reach.Envelope `json:"envelope" toml:"envelope"`

	// StepX is the horizontal move per stride. Zero means DefaultSweepStepX.
	StepX float64 `json:"step_x,omitempty" toml:"step_x"`

	// StepY is the vertical move. Zero means a third of the envelope height.
	StepY float64 `json:"step_y,omitempty" toml:"step_y"`

	// MaxStrides bounds the strides tried. Zero means the brick count.
	MaxStrides int `json:"max_strides,omitempty" toml:"max_strides"`
}

// DefaultSweep returns a sweep with the default envelope and steps.
func DefaultSweep() Sweep { return Sweep{}.withDefaults() }

func (s Sweep) withDefaults() Sweep {
	if s.Envelope.IsZero() {
		s.Envelope = reach.DefaultEnvelope()
	}
	if s.StepX <= 0 {
		s.StepX = DefaultSweepStepX
	}
	if s.StepY <= 0 {
		s.StepY = s.Envelope.Height / 3
	}
	return s
}

func (Sweep) Name() string { return StrategySweep }

func (s Sweep) Plan(ctx context.Context, l wall.Layout) (Plan, error) {
	if err := checkLayout(l); err != nil {
		return Plan{}, err
	}
	s = s.withDefaults()
	budget := s.MaxStrides
	if budget <= 0 {
		budget = l.TotalBricks
	}

	st := newState(ctx, StrategySweep, l)
	env := s.Envelope.At(geometry.Point{})
	dir := 1.0
	for stride := 0; ; stride++ {
		if stride > budget {
			return st.finish(ctx, StatusBudgetExhausted), nil
		}
		if ctx.Err() != nil {
			return st.finish(ctx, StatusCanceled), nil
		}

		if ids := saturate(st.graph, l.InBounds(env), st.isPlaced); len(ids) > 0 {
			st.commit(ctx, ids, stride)
		}
		if st.done() {
			return st.finish(ctx, StatusComplete), nil
		}

		band := geometry.Bounds{Y: env.Y, Width: l.Width, Height: s.StepY}
		if len(saturate(st.graph, l.InBounds(band), st.isPlaced)) == 0 {
			env.Y = s.climb(env.Y, l.Height)
		}
		env.X, dir = s.slide(env.X, dir, l.Width)
	}
}

// climb moves the envelope up one band, keeping the band inside the wall,
// and snaps it down to a course boundary so no course straddles two
// envelope positions.
func (s Sweep) climb(y, height float64) float64 {
	y += s.StepY
	if y+s.StepY > height {
		y = height - s.StepY
	}
	return wall.SnapToCourse(y)
}

// slide moves the envelope sideways, bouncing off either wall edge.
func (s Sweep) slide(x, dir, width float64) (float64, float64) {
	x += dir * s.StepX
	switch {
	case x < 0:
		return 0, 1
	case x+s.Envelope.Width > width:
		return math.Max(0, width-s.Envelope.Width), -1
	}
	return x, dir
}
