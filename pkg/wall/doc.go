// Package wall defines the brick, course, and layout model shared by the bond
// generators and the build planners.
//
// A [Layout] is plain value data: courses are ordered bottom to top, bricks
// within a course are ordered left to right, and nothing in this package
// mutates a layout after it is constructed. Brick identifiers are opaque
// integers handed out by an [Allocator]; they are unique within a layout and
// carry no positional meaning.
//
// # Dimensions
//
// All dimensions are millimetres and fixed for reproducibility. A course is a
// brick height plus one bed joint (62.5 mm); bricks in a course are separated by
// one head joint (10 mm). The final brick of a course may be a clipped remainder
// that ends exactly on the wall edge.
//
// # Validation
//
// [Layout.Validate] checks the structural invariants that every generator must
// uphold: unique identifiers, a matching brick count, whole courses, and joint
// spacing. Violations are reported with the sentinel errors below so callers
// can test for them with errors.Is.
package wall
