package elevation

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/reach"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// DefaultMargin is the space around the wall in SVG units (mm).
const DefaultMargin = 40.0

const (
	unplacedFill   = "#f4f1ec"
	unplacedStroke = "#b8b2a7"
	placedStroke   = "#4a4038"
	stationStroke  = "#2b7bb9"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	plan     *plan.Plan
	upTo     int
	margin   float64
	labels   bool
	stations []reach.Station
	envelope reach.Envelope
}

// WithPlan colors bricks by the step they are placed in.
func WithPlan(p plan.Plan) SVGOption { return func(r *svgRenderer) { r.plan = &p } }

// WithUpTo shades only bricks placed at or before step. Negative means all.
func WithUpTo(step int) SVGOption { return func(r *svgRenderer) { r.upTo = step } }

// WithMargin sets the space around the wall.
func WithMargin(m float64) SVGOption { return func(r *svgRenderer) { r.margin = m } }

// WithLabels writes brick identifiers on the bricks.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithStations outlines the envelope of every station.
func WithStations(stations []reach.Station, env reach.Envelope) SVGOption {
	return func(r *svgRenderer) { r.stations, r.envelope = stations, env }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{upTo: -1, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws l as a standalone SVG document.
func RenderSVG(l wall.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	frameW, frameH := l.Width+2*r.margin, l.Height+2*r.margin

	var steps map[wall.BrickID]int
	last := 0
	if r.plan != nil {
		steps = r.plan.StepIndex()
		last = r.plan.Steps() - 1
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		frameW, frameH, frameW, frameH)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="white"/>`+"\n", frameW, frameH)

	for _, b := range l.Bricks() {
		x, y := r.toSVG(l, b.X, wall.CourseY(b.Course)+wall.BrickHeight)
		fill, stroke := unplacedFill, unplacedStroke
		step, placed := steps[b.ID]
		if placed && (r.upTo < 0 || step <= r.upTo) {
			fill, stroke = strideColor(step, last), placedStroke
		}
		fmt.Fprintf(&buf, `  <rect id="brick-%d" class="brick brick-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"`,
			b.ID, b.Kind(), x, y, b.Width, wall.BrickHeight, fill, stroke)
		if placed {
			fmt.Fprintf(&buf, ` data-stride="%d"`, step)
		}
		buf.WriteString("/>\n")

		if r.labels {
			fmt.Fprintf(&buf, `  <text x="%.1f" y="%.1f" font-family="monospace" font-size="18" text-anchor="middle" dominant-baseline="central">%d</text>`+"\n",
				x+b.Width/2, y+wall.BrickHeight/2, b.ID)
		}
	}

	for _, s := range r.stations {
		x, y := r.toSVG(l, s.Position.X, s.Position.Y+r.envelope.Height)
		fmt.Fprintf(&buf, `  <rect id="station-%d" class="station" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-dasharray="12 8" stroke-opacity="0.5"/>`+"\n",
			s.ID, x, y, r.envelope.Width, r.envelope.Height, stationStroke)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// toSVG flips wall coordinates (origin bottom-left) into SVG coordinates.
func (r svgRenderer) toSVG(l wall.Layout, x, top float64) (float64, float64) {
	return r.margin + x, r.margin + l.Height - top
}

// strideColor maps step 0..last onto a blue to red hue ramp.
func strideColor(step, last int) string {
	t := 0.0
	if last > 0 {
		t = float64(step) / float64(last)
	}
	return fmt.Sprintf("hsl(%.0f, 65%%, 55%%)", 220-220*t)
}
