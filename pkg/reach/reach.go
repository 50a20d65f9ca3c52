// Package reach models the discrete build stations a platform can occupy
// and which bricks each station can reach.
package reach

import (
	"math"

	"github.com/matzehuels/bricklayer/pkg/geometry"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// Default build envelope and station spacing.
const (
	DefaultEnvelopeWidth  = 800.0
	DefaultEnvelopeHeight = 1300.0
	DefaultStepX          = wall.FullBrickModule
)

// Envelope is the rectangle a platform can reach from one station.
type Envelope struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// DefaultEnvelope returns the 800x1300 envelope.
func DefaultEnvelope() Envelope {
	return Envelope{Width: DefaultEnvelopeWidth, Height: DefaultEnvelopeHeight}
}

// At returns the envelope rectangle with its lower-left corner at p.
func (e Envelope) At(p geometry.Point) geometry.Bounds {
	return geometry.Bounds{X: p.X, Y: p.Y, Width: e.Width, Height: e.Height}
}

// IsZero reports whether the envelope is unset.
func (e Envelope) IsZero() bool { return e.Width == 0 && e.Height == 0 }

// Station is one platform location together with the bricks it can reach.
type Station struct {
	ID        int            `json:"id"`
	Position  geometry.Point `json:"position"`
	Reachable []wall.BrickID `json:"reachable"`
}

// Options configures station enumeration. Zero fields take the defaults.
type Options struct {
	Envelope Envelope `json:"envelope" toml:"envelope"`
	StepX    float64  `json:"step_x,omitempty" toml:"step_x"`
}

// WithDefaults returns o with unset fields filled in.
func (o Options) WithDefaults() Options {
	if o.Envelope.IsZero() {
		o.Envelope = DefaultEnvelope()
	}
	if o.StepX <= 0 {
		o.StepX = DefaultStepX
	}
	return o
}

// Stations enumerates the platform locations for l, x-major.
//
// Horizontal offsets run from 0 in steps of StepX while the envelope still
// has room, followed by the offset that aligns the envelope with the right
// edge. Vertically the envelope sits on the floor and, when the wall is
// taller than the envelope, against the top. Walls taller than two
// envelopes get intermediate rows every third of an envelope, snapped down
// to a course boundary, so every course is reachable from some station.
func Stations(l wall.Layout, o Options) []Station {
	o = o.WithDefaults()
	xs := Columns(l.Width, o.Envelope.Width, o.StepX)
	ys := Rows(l.Height, o.Envelope.Height)

	stations := make([]Station, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			p := geometry.Point{X: x, Y: y}
			stations = append(stations, Station{
				ID:        len(stations),
				Position:  p,
				Reachable: l.InBounds(o.Envelope.At(p)),
			})
		}
	}
	return stations
}

// Columns returns the horizontal station offsets for a wall of the given
// width.
func Columns(width, envelope, step float64) []float64 {
	var xs []float64
	for x := 0.0; x < width-envelope; x += step {
		xs = append(xs, x)
	}
	last := math.Max(0, width-envelope)
	if len(xs) == 0 || xs[len(xs)-1] != last {
		xs = append(xs, last)
	}
	return xs
}

// Rows returns the vertical station offsets for a wall of the given height.
func Rows(height, envelope float64) []float64 {
	top := math.Max(0, height-envelope)
	ys := []float64{0}
	if height > 2*envelope {
		for y := 0.0; ; {
			next := wall.SnapToCourse(y + envelope/3)
			if next <= y {
				next = y + wall.CourseHeight
			}
			if next >= top {
				break
			}
			ys = append(ys, next)
			y = next
		}
	}
	if top > 0 {
		ys = append(ys, top)
	}
	return ys
}
