package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/pipeline"
)

// graphCommand creates the graph command for drawing support graphs.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		gen      generateFlags
		output   string
		formats  string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "graph [layout.json]",
		Short: "Draw the support graph of a wall",
		Long: `Draw the support graph of a wall.

Every brick is a node, ranked by course, with an edge to each brick of the
course below that it rests on. SVG, PNG, and PDF output are laid out with
Graphviz; dot writes the raw graph and json the node and edge lists.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}
			gen.apply(cmd, &opts)
			opts.VizType = pipeline.VizTypeNodelink
			opts.Formats = parseFormats(formats)
			opts.Labels = detailed
			if err := opts.ValidateForRender(); err != nil {
				return err
			}
			return c.runGraph(cmd.Context(), args, opts, output)
		},
	}

	gen.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formats, "format", "f", "", "output format(s): svg (default), dot, json, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "label nodes with course, position, and width")

	return cmd
}

func (c *CLI) runGraph(ctx context.Context, args []string, opts pipeline.Options, output string) error {
	l, base, err := c.loadOrGenerate(ctx, args, &opts)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Drawing support graph of %d bricks...", l.TotalBricks))
	spinner.Start()

	artifacts, err := c.newRunner().Render(ctx, l, nil, opts)
	if err != nil {
		spinner.StopWithError("Graph failed")
		return fmt.Errorf("graph: %w", err)
	}
	spinner.Stop()

	paths, err := writeArtifacts(artifacts, opts.Formats, outputBase(output, base+".graph"), output)
	if err != nil {
		return err
	}

	printSuccess("Graph complete")
	for _, path := range paths {
		printFile(path)
	}
	return nil
}
