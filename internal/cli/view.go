package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	bio "github.com/matzehuels/bricklayer/pkg/io"
	"github.com/matzehuels/bricklayer/pkg/pipeline"
	"github.com/matzehuels/bricklayer/pkg/plan"
)

// viewCommand creates the view command, an interactive plan viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var (
		gen      generateFlags
		planFile string
	)

	cmd := &cobra.Command{
		Use:   "view [layout.json]",
		Short: "Step through a build plan in the terminal",
		Long: `Step through a build plan in the terminal.

Keys:
  →, l      next stride
  ←, h      previous stride
  home, g   empty wall
  end, G    finished wall
  space     play / pause
  q         quit`,
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
		return c.runView(cmd.Context(), args, opts, planFile)
	}

	gen.register(cmd)
	cmd.Flags().StringVar(&planFile, "plan", "", "plan file to view (default: plan with --strategy)")

	return cmd
}

func (c *CLI) runView(ctx context.Context, args []string, opts pipeline.Options, planFile string) error {
	l, _, err := c.loadOrGenerate(ctx, args, &opts)
	if err != nil {
		return err
	}

	var p plan.Plan
	if planFile != "" {
		if p, err = bio.ImportPlan(planFile); err != nil {
			return fmt.Errorf("load plan %s: %w", planFile, err)
		}
		if err := plan.Verify(l, p); err != nil {
			return fmt.Errorf("plan %s does not fit the layout: %w", planFile, err)
		}
	} else if p, err = c.newRunner().Plan(ctx, l, opts); err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	prog := tea.NewProgram(NewPlanViewModel(l, p), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := prog.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("viewer: %w", err)
	}
	return ctx.Err()
}
