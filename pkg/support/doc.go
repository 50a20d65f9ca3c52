// Package support derives the structural dependencies between bricks.
//
// # Overview
//
// A brick can only be laid once everything directly beneath it is in place.
// [Analyze] turns a [wall.Layout] into a [Graph] whose edges point from a
// brick to each brick in the course below whose horizontal extent overlaps
// it. Bottom-course bricks have no dependencies.
//
// Like a layered graph, every edge connects two consecutive courses. This is
// checked by [Graph.Validate] and is what lets planners reason course by
// course.
//
// # Usage
//
//	g := support.Analyze(layout)
//	for _, id := range g.Dependencies(brickID) {
//	    // id must be placed first
//	}
//
//	ok := g.Satisfied(brickID, func(id wall.BrickID) bool { return placed[id] })
//
// [Graph] is not safe for concurrent mutation, but a graph returned by
// [Analyze] is never mutated afterwards and may be shared between goroutines.
package support
