// Package render provides visualization output for wall layouts and plans.
//
// # Overview
//
//   - [elevation] draws a layout as SVG, shading bricks by the stride they are
//     placed in, and exports a combined JSON document for external viewers
//   - [nodelink] draws the support graph as a Graphviz diagram
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg):
//
//	svg := elevation.RenderSVG(layout, elevation.WithPlan(p))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [elevation]: github.com/matzehuels/bricklayer/pkg/render/elevation
// [nodelink]: github.com/matzehuels/bricklayer/pkg/render/nodelink
package render
