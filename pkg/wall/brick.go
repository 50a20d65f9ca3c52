package wall

import (
	"fmt"
	"math"

	"github.com/matzehuels/bricklayer/pkg/geometry"
)

// BrickID is an opaque brick identifier, unique within a layout.
type BrickID int

// Kind classifies a brick by its width.
type Kind string

const (
	KindFull         Kind = "full"
	KindThreeQuarter Kind = "three-quarter"
	KindHalf         Kind = "half"
	KindQuarter      Kind = "quarter"
	// KindCut is any other width, typically the remainder closing a course.
	KindCut Kind = "cut"
)

// Brick is a single brick placed in a course.
type Brick struct {
	ID     BrickID `json:"id"`
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Course int     `json:"course"`
}

// Bounds returns the brick's rectangle in wall coordinates.
func (b Brick) Bounds() geometry.Bounds {
	return geometry.Bounds{
		X:      b.X,
		Y:      CourseY(b.Course),
		Width:  b.Width,
		Height: BrickHeight,
	}
}

// Right returns the x coordinate of the brick's right edge.
func (b Brick) Right() float64 { return b.X + b.Width }

// Kind reports which standard brick this is, or KindCut.
func (b Brick) Kind() Kind {
	switch {
	case sameWidth(b.Width, FullBrickWidth):
		return KindFull
	case sameWidth(b.Width, ThreeQuarterBrickWidth):
		return KindThreeQuarter
	case sameWidth(b.Width, HalfBrickWidth):
		return KindHalf
	case sameWidth(b.Width, QuarterBrickWidth):
		return KindQuarter
	default:
		return KindCut
	}
}

func (b Brick) String() string {
	return fmt.Sprintf("brick %d (course %d, x=%g, w=%g)", b.ID, b.Course, b.X, b.Width)
}

func sameWidth(a, b float64) bool { return math.Abs(a-b) < epsilon }

// Allocator hands out brick identifiers in increasing order.
// It is a value: Next returns the identifier together with the advanced
// allocator, so callers thread it through explicitly.
type Allocator struct {
	next BrickID
}

// Next returns the next identifier and the allocator that follows it.
func (a Allocator) Next() (BrickID, Allocator) {
	return a.next, Allocator{next: a.next + 1}
}

// Count returns how many identifiers have been allocated.
func (a Allocator) Count() int { return int(a.next) }
