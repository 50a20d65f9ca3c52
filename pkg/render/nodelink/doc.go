// Package nodelink renders the support graph of a wall as a node-link
// diagram.
//
// # Overview
//
// Each brick becomes a box, each course a rank, and every support edge an
// arrow from a brick down to the brick it rests on. The diagram makes it easy
// to see why a planner could not place a brick yet.
//
// # Usage
//
//	g := support.Analyze(l)
//	dot := nodelink.ToDOT(l, g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
