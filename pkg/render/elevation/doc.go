// Package elevation renders brick layouts and build plans.
//
// [RenderSVG] draws every brick of a layout in wall coordinates (course 0 at
// the bottom). With [WithPlan] placed bricks are colored by stride, from
// blue for the first stride to red for the last, and unplaced bricks are
// left as outlines. [WithUpTo] limits the shading to the first strides so a
// build can be shown step by step.
//
//	svg := elevation.RenderSVG(l, elevation.WithPlan(p), elevation.WithUpTo(10))
//
// [RenderJSON] writes the same information as a flat JSON document:
//
//	{
//	  "pattern": "flemish",
//	  "width": 2300, "height": 2000,
//	  "strategy": "greedy", "status": "complete", "strides": 43,
//	  "bricks": [{"id": 0, "x": 0, "y": 0, "width": 210, "height": 50,
//	              "course": 0, "kind": "full", "stride": 0}, ...]
//	}
package elevation
