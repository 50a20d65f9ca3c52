package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	bio "github.com/matzehuels/bricklayer/pkg/io"
	"github.com/matzehuels/bricklayer/pkg/pipeline"
)

// planCommand creates the plan command for ordering the bricks of a wall.
func (c *CLI) planCommand() *cobra.Command {
	var (
		gen          generateFlags
		output       string
		layoutOutput string
	)

	cmd := &cobra.Command{
		Use:   "plan [layout.json]",
		Short: "Plan the build order of a wall",
		Long: `Plan the build order of a wall.

Strategies:
  naive    course by course, left to right, no platform moves
  sweep    one envelope sweeping sideways and climbing when the lower band is done
  greedy   the best platform station each stride, with one stride of lookahead

Without a layout file a wall is generated from the pattern flags. A plan that
cannot place every brick is still written; its status says why it stopped.`,
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
		return c.runPlan(cmd.Context(), args, opts, output, layoutOutput)
	}

	gen.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.plan.json)")
	cmd.Flags().StringVar(&layoutOutput, "layout-output", "", "also write the generated layout to this file")

	return cmd
}

func (c *CLI) runPlan(ctx context.Context, args []string, opts pipeline.Options, output, layoutOutput string) error {
	l, base, err := c.loadOrGenerate(ctx, args, &opts)
	if err != nil {
		return err
	}
	if layoutOutput != "" {
		if err := bio.ExportLayout(l, layoutOutput); err != nil {
			return err
		}
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Planning %d bricks...", l.TotalBricks))
	spinner.Start()

	p, err := c.newRunner().Plan(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Planning failed")
		return fmt.Errorf("plan: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if output == "" {
		output = base + ".plan.json"
	}
	if err := bio.ExportPlan(p, output); err != nil {
		return err
	}

	if p.Complete(l) {
		printSuccess("Plan complete")
	} else {
		printWarning("Plan stopped early: %s", p.Status)
	}
	printFile(output)
	if layoutOutput != "" {
		printFile(layoutOutput)
	}
	printPlanStats(p.Strategy, string(p.Status), len(p.Placements), l.TotalBricks, p.Strides)
	printNewline()
	if len(args) > 0 {
		printNextStep("Render", fmt.Sprintf("%s render %s --plan %s", appName, args[0], output))
	} else if layoutOutput != "" {
		printNextStep("Render", fmt.Sprintf("%s render %s --plan %s", appName, layoutOutput, output))
	}

	return nil
}
