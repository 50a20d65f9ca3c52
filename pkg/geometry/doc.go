// Package geometry provides the axis-aligned rectangle and point primitives
// shared by wall generation, support analysis, and build planning.
//
// All coordinates are in millimetres with the origin at the bottom-left corner
// of the wall: x grows to the right, y grows upward. Every predicate in this
// package is a pure, total function with no error conditions.
//
// # Predicates
//
//   - [Contains] reports closed containment (edges may touch).
//   - [OverlapsHorizontally] compares half-open x-intervals and ignores y, so
//     two bricks that merely touch at an edge do not overlap.
//   - [Distance] is the Euclidean distance between two points.
package geometry
