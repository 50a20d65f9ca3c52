package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	bio "github.com/matzehuels/bricklayer/pkg/io"
	"github.com/matzehuels/bricklayer/pkg/pipeline"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"
)

// layoutCommand creates the layout command for generating walls.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		gen    generateFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Lay out a wall in a bond pattern",
		Long: `Lay out a wall in a bond pattern.

The stretcher, english-cross, and flemish bonds are deterministic. The wild
bond is a randomized search; pass --seed to reproduce a wall. Its width is
snapped down to the nearest width wild courses can fill exactly.

The layout is written as JSON and can be fed to 'plan', 'render', 'graph',
'compare', and 'view'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}
			gen.apply(cmd, &opts)
			return c.runLayout(cmd.Context(), opts, output)
		},
	}

	gen.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <pattern>.layout.json)")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, output string) error {
	spinner := newSpinner(ctx, "Laying out wall...")
	spinner.Start()

	l, err := c.newRunner().Generate(ctx, &opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("generate: %w", err)
	}
	spinner.Stop()

	if output == "" {
		output = l.Pattern + ".layout.json"
	}
	if err := bio.ExportLayout(l, output); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(output)
	printLayoutStats(l.Pattern, l.TotalBricks, l.CourseCount(), l.Width)
	if !bond.Pattern(opts.Pattern).Deterministic() {
		printKeyValue("seed", fmt.Sprint(opts.Seed))
	}
	printNewline()
	printNextStep("Plan", appName+" plan "+output)

	return nil
}
