package geometry

import "math"

// Bounds is an axis-aligned rectangle anchored at its bottom-left corner.
type Bounds struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a position in wall coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Right returns the x coordinate of the right edge.
func (b Bounds) Right() float64 { return b.X + b.Width }

// Top returns the y coordinate of the top edge.
func (b Bounds) Top() float64 { return b.Y + b.Height }

// Origin returns the bottom-left corner.
func (b Bounds) Origin() Point { return Point{X: b.X, Y: b.Y} }

// Center returns the midpoint of the rectangle.
func (b Bounds) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains reports whether inner lies entirely within outer.
// Shared edges count as contained.
func Contains(outer, inner Bounds) bool {
	return inner.X >= outer.X &&
		inner.Right() <= outer.Right() &&
		inner.Y >= outer.Y &&
		inner.Top() <= outer.Top()
}

// OverlapsHorizontally reports whether the half-open x-intervals
// [a.X, a.Right()) and [b.X, b.Right()) intersect.
func OverlapsHorizontally(a, b Bounds) bool {
	return a.X < b.Right() && a.Right() > b.X
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}
