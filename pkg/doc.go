// Package pkg provides the core libraries for Bricklayer wall simulation.
//
// # Overview
//
// Bricklayer lays out a rectangular wall in one of several masonry bonds and
// plans the order in which a bricklaying robot places the bricks. The pkg
// directory is organized into four main areas:
//
//  1. [wall] - Domain model (brick sizes, courses, bond generators)
//  2. [support] and [reach] - Analysis (which bricks rest on which, what the
//     robot can reach from a station)
//  3. [plan] - Build-order planners (naive, sweep, greedy) and plan verification
//  4. [pipeline] - Orchestration (generate → plan → render)
//
// # Architecture
//
// The typical data flow through Bricklayer:
//
//	Pattern + wall dimensions
//	         ↓
//	    [wall/bond] package (generate courses of bricks)
//	         ↓
//	    [support] package (support graph between courses)
//	         ↓
//	    [plan] package (order bricks into strides)
//	         ↓
//	    [render] package (elevation SVG, support graph, JSON)
//
// # Quick Start
//
// Generate an English cross bond wall and plan it greedily:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/bricklayer/pkg/plan"
//	    "github.com/matzehuels/bricklayer/pkg/render/elevation"
//	    "github.com/matzehuels/bricklayer/pkg/wall/bond"
//	)
//
//	// 1. Generate the layout
//	ctx := context.Background()
//	l, _ := bond.Generate(ctx, bond.PatternEnglishCross, 2300, 2000, nil)
//
//	// 2. Plan the build order
//	p, _ := plan.DefaultGreedy().Plan(ctx, l)
//
//	// 3. Render to SVG
//	svg := elevation.RenderSVG(l, elevation.WithPlan(p))
//
// # Main Packages
//
// [geometry] - Axis-aligned rectangles with the overlap and containment tests
// used by support analysis and reach checks.
//
// [wall] - Brick kinds (full, three-quarter, half, quarter, cut), courses, and the
// [wall.Layout] produced by every bond generator.
//
// [wall/bond] - Bond generators. Stretcher, English cross and Flemish bonds
// are deterministic. Wild bond runs a seeded backtracking search.
//
// [plan] - Planners turning a layout into a sequence of strides, where each
// stride is the set of bricks placed from one robot station.
//
// [io] - JSON import and export for layouts, plans and support graphs.
//
// [render/elevation] - Front elevation drawings shaded by stride.
//
// [render/nodelink] - Support graph diagrams using Graphviz.
//
// [pipeline] - Complete generate → plan → render pipeline used by the CLI and
// the HTTP API. Ensures consistent behavior across both entry points.
//
// [observability] - Hook interfaces for generation, planning, pipeline and
// HTTP events, with no-op defaults.
//
// [errors] - Error codes shared by the CLI and the HTTP API.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/plan/...      # Specific package
//	go test -run Example ./...  # Examples only
//
// [geometry]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/geometry
// [wall]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/wall
// [wall.Layout]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/wall#Layout
// [wall/bond]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/wall/bond
// [support]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/support
// [reach]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/reach
// [plan]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/plan
// [io]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/render
// [render/elevation]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/render/elevation
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/bricklayer/pkg/errors
package pkg
