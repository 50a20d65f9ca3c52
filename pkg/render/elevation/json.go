package elevation

import (
	"encoding/json"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	plan *plan.Plan
}

// WithJSONPlan adds the plan summary and per-brick strides.
func WithJSONPlan(p plan.Plan) JSONOption { return func(r *jsonRenderer) { r.plan = &p } }

type jsonOutput struct {
	Pattern  string      `json:"pattern,omitempty"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	Courses  int         `json:"courses"`
	Strategy string      `json:"strategy,omitempty"`
	Status   plan.Status `json:"status,omitempty"`
	Strides  int         `json:"strides,omitempty"`
	Bricks   []jsonBrick `json:"bricks"`
}

type jsonBrick struct {
	ID     wall.BrickID `json:"id"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Course int          `json:"course"`
	Kind   wall.Kind    `json:"kind"`
	Order  *int         `json:"order,omitempty"`
	Stride *int         `json:"stride,omitempty"`
}

// RenderJSON encodes l, and optionally a plan, as a flat brick list with
// absolute coordinates.
func RenderJSON(l wall.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Pattern: l.Pattern,
		Width:   l.Width,
		Height:  l.Height,
		Courses: l.CourseCount(),
		Bricks:  make([]jsonBrick, 0, l.TotalBricks),
	}

	type placement struct {
		order  int
		stride *int
	}
	placed := map[wall.BrickID]placement{}
	if r.plan != nil {
		out.Strategy = r.plan.Strategy
		out.Status = r.plan.Status
		out.Strides = r.plan.Strides
		for i, pl := range r.plan.Placements {
			placed[pl.ID] = placement{order: i, stride: pl.Stride}
		}
	}

	for _, b := range l.Bricks() {
		bounds := b.Bounds()
		jb := jsonBrick{
			ID:     b.ID,
			X:      bounds.X,
			Y:      bounds.Y,
			Width:  bounds.Width,
			Height: bounds.Height,
			Course: b.Course,
			Kind:   b.Kind(),
		}
		if p, ok := placed[b.ID]; ok {
			order := p.order
			jb.Order, jb.Stride = &order, p.stride
		}
		out.Bricks = append(out.Bricks, jb)
	}

	return json.MarshalIndent(out, "", "  ")
}
