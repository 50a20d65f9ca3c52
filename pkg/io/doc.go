// Package io provides JSON import and export for wall layouts, build plans,
// and support graphs.
//
// # Layout Format
//
// A layout is written exactly as [wall.Layout] marshals:
//
//	{
//	  "pattern": "stretcher",
//	  "width": 2300,
//	  "height": 2000,
//	  "total_bricks": 352,
//	  "courses": [
//	    {"index": 0, "bricks": [{"id": 0, "x": 0, "width": 100, "course": 0}, ...]},
//	    ...
//	  ]
//	}
//
// [ReadLayout] and [ImportLayout] validate the decoded layout with
// [wall.Layout.Validate], so a layout that imports cleanly can be planned.
//
// # Plan Format
//
//	{
//	  "strategy": "greedy",
//	  "status": "complete",
//	  "strides": 27,
//	  "bricks": [{"id": 0, "stride": 0}, {"id": 1, "stride": 0}, ...]
//	}
//
// The stride field is omitted for unconstrained plans. Plans are decoded as
// is; check them against their layout with [plan.Verify].
//
// # Support Graph Format
//
// [WriteGraph] exports a [support.Graph] as nodes and edges for external
// graph tools:
//
//	{
//	  "nodes": [{"id": 0, "course": 0}, ...],
//	  "edges": [{"from": 6, "to": 0}, ...]
//	}
//
// Edges point from a brick to the brick it rests on.
package io
