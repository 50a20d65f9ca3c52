package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	bio "github.com/matzehuels/bricklayer/pkg/io"
	"github.com/matzehuels/bricklayer/pkg/pipeline"
	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// renderFlags hold the render command's flags.
type renderFlags struct {
	output   string
	formats  string
	planFile string
	noPlan   bool
	labels   bool
	stations bool
	upTo     int
}

// renderCommand creates the render command for drawing walls.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		gen generateFlags
		f   renderFlags
	)

	cmd := &cobra.Command{
		Use:   "render [layout.json]",
		Short: "Draw a wall elevation, shaded by build order",
		Long: `Draw a wall elevation, shaded by build order.

Bricks are colored by the stride they are placed in. The plan is read from
--plan, or computed with --strategy when no plan file is given. Use
--up-to to draw a partially built wall and --stations to outline every
platform station.

PNG and PDF output require librsvg (rsvg-convert).`,
		Args: cobra.MaximumNArgs(1),
	}
	applyStrategy := strategyFlag(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		opts, err := c.options()
		if err != nil {
			return err
		}
		gen.apply(cmd, &opts)
		applyStrategy(&opts)
		opts.VizType = pipeline.VizTypeElevation
		opts.Formats = parseFormats(f.formats)
		opts.Labels = opts.Labels || f.labels
		opts.Stations = opts.Stations || f.stations
		if cmd.Flags().Changed("up-to") {
			opts.UpTo = &f.upTo
		}
		if err := opts.ValidateForRender(); err != nil {
			return err
		}
		return c.runRender(cmd.Context(), args, opts, f)
	}

	gen.register(cmd)
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&f.planFile, "plan", "", "plan file to shade by (default: plan with --strategy)")
	cmd.Flags().BoolVar(&f.noPlan, "no-plan", false, "draw the bare layout")
	cmd.Flags().BoolVar(&f.labels, "labels", false, "write brick ids on the bricks")
	cmd.Flags().BoolVar(&f.stations, "stations", false, "outline the platform stations")
	cmd.Flags().IntVar(&f.upTo, "up-to", -1, "shade only bricks placed up to this stride")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, args []string, opts pipeline.Options, f renderFlags) error {
	l, base, err := c.loadOrGenerate(ctx, args, &opts)
	if err != nil {
		return err
	}

	p, err := c.resolvePlan(ctx, l, opts, f)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, "Rendering...")
	spinner.Start()

	artifacts, err := c.newRunner().Render(ctx, l, p, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	paths, err := writeArtifacts(artifacts, opts.Formats, outputBase(f.output, base), f.output)
	if err != nil {
		return err
	}

	printSuccess("Render complete")
	for _, path := range paths {
		printFile(path)
	}
	if p != nil {
		printPlanStats(p.Strategy, string(p.Status), len(p.Placements), l.TotalBricks, p.Strides)
	}
	return nil
}

// resolvePlan returns the plan to shade by: the --plan file, a fresh plan,
// or nil with --no-plan.
func (c *CLI) resolvePlan(ctx context.Context, l wall.Layout, opts pipeline.Options, f renderFlags) (*plan.Plan, error) {
	if f.noPlan {
		return nil, nil
	}
	if f.planFile != "" {
		p, err := bio.ImportPlan(f.planFile)
		if err != nil {
			return nil, fmt.Errorf("load plan %s: %w", f.planFile, err)
		}
		if err := plan.Verify(l, p); err != nil {
			return nil, fmt.Errorf("plan %s does not fit the layout: %w", f.planFile, err)
		}
		return &p, nil
	}
	p, err := c.newRunner().Plan(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}
	return &p, nil
}
