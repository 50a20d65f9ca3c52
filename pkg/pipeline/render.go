package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/bricklayer/pkg/io"
	"github.com/matzehuels/bricklayer/pkg/observability"
	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/reach"
	"github.com/matzehuels/bricklayer/pkg/render"
	"github.com/matzehuels/bricklayer/pkg/render/elevation"
	"github.com/matzehuels/bricklayer/pkg/render/nodelink"
	"github.com/matzehuels/bricklayer/pkg/support"
	"github.com/matzehuels/bricklayer/pkg/wall"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// Render produces every format in opts.Formats. The plan may be nil, in
// which case elevations are drawn unshaded.
func (r *Runner) Render(ctx context.Context, l wall.Layout, p *plan.Plan, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	var (
		artifacts map[string][]byte
		err       error
	)
	if opts.IsNodelink() {
		artifacts, err = r.renderNodelink(ctx, l, opts)
	} else {
		artifacts, err = r.renderElevation(l, p, opts)
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	return artifacts, err
}

func (r *Runner) renderElevation(l wall.Layout, p *plan.Plan, opts Options) (map[string][]byte, error) {
	var (
		svgOpts  []elevation.SVGOption
		jsonOpts []elevation.JSONOption
	)
	if p != nil {
		svgOpts = append(svgOpts, elevation.WithPlan(*p))
		jsonOpts = append(jsonOpts, elevation.WithJSONPlan(*p))
	}
	if opts.UpTo != nil {
		svgOpts = append(svgOpts, elevation.WithUpTo(*opts.UpTo))
	}
	if opts.Labels {
		svgOpts = append(svgOpts, elevation.WithLabels())
	}
	if opts.Stations {
		ro := opts.Greedy.Reach.WithDefaults()
		svgOpts = append(svgOpts, elevation.WithStations(reach.Stations(l, ro), ro.Envelope))
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	var svg []byte
	for _, format := range opts.Formats {
		switch format {
		case FormatJSON:
			data, err := elevation.RenderJSON(l, jsonOpts...)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatSVG, FormatPNG, FormatPDF:
			if svg == nil {
				svg = elevation.RenderSVG(l, svgOpts...)
			}
			data, err := convertSVG(svg, format)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		default:
			return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "format %q is not available for %s", format, VizTypeElevation)
		}
	}
	return artifacts, nil
}

func (r *Runner) renderNodelink(ctx context.Context, l wall.Layout, opts Options) (map[string][]byte, error) {
	g := support.Analyze(l)
	dot := nodelink.ToDOT(l, g, nodelink.Options{Detailed: opts.Labels})
	r.Logger.Debug("analyzed supports", "bricks", g.BrickCount(), "edges", g.EdgeCount())

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		switch format {
		case FormatDOT:
			artifacts[format] = []byte(dot)
		case FormatJSON:
			var buf bytes.Buffer
			if err := io.WriteGraph(g, &buf); err != nil {
				return nil, err
			}
			artifacts[format] = buf.Bytes()
		case FormatSVG:
			data, err := nodelink.RenderSVG(ctx, dot)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatPNG:
			data, err := nodelink.RenderPNG(ctx, dot, DefaultPNGScale)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		case FormatPDF:
			data, err := nodelink.RenderPDF(ctx, dot)
			if err != nil {
				return nil, err
			}
			artifacts[format] = data
		}
	}
	return artifacts, nil
}

func convertSVG(svg []byte, format string) ([]byte, error) {
	switch format {
	case FormatPNG:
		return render.ToPNG(svg, DefaultPNGScale)
	case FormatPDF:
		return render.ToPDF(svg)
	}
	return svg, nil
}
