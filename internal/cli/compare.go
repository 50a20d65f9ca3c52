package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/bricklayer/pkg/pipeline"
)

// compareCommand creates the compare command that runs every strategy.
func (c *CLI) compareCommand() *cobra.Command {
	var gen generateFlags

	cmd := &cobra.Command{
		Use:   "compare [layout.json]",
		Short: "Plan a wall with every strategy and compare the results",
		Long: `Plan a wall with every strategy and compare the results.

The strategies run concurrently. Fewer strides means fewer platform moves.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options()
			if err != nil {
				return err
			}
			gen.apply(cmd, &opts)
			return c.runCompare(cmd.Context(), args, opts)
		},
	}

	gen.register(cmd)

	return cmd
}

func (c *CLI) runCompare(ctx context.Context, args []string, opts pipeline.Options) error {
	l, _, err := c.loadOrGenerate(ctx, args, &opts)
	if err != nil {
		return err
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Planning %d bricks with every strategy...", l.TotalBricks))
	spinner.Start()

	results, err := c.newRunner().Compare(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Compare failed")
		return err
	}
	spinner.Stop()

	fmt.Println(StyleTitle.Render(fmt.Sprintf("%s wall, %gx%gmm", l.Pattern, l.Width, l.Height)))
	printLayoutStats(l.Pattern, l.TotalBricks, l.CourseCount(), l.Width)
	fmt.Println(compareTable(results, l.TotalBricks))
	return nil
}

// compareTable renders one row per strategy.
func compareTable(results []pipeline.Comparison, total int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(results))
	for i, r := range results {
		strides := "-"
		if r.Plan.Strided() {
			strides = strconv.Itoa(r.Plan.Strides)
		}
		rows[i] = []string{
			r.Strategy,
			string(r.Plan.Status),
			fmt.Sprintf("%d/%d", len(r.Plan.Placements), total),
			strides,
			r.Duration.Round(time.Microsecond).String(),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Strategy", "Status", "Bricks", "Strides", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < 0 || row >= len(results) {
				return base
			}
			switch col {
			case 1:
				if len(results[row].Plan.Placements) < total {
					return base.Foreground(colorYellow)
				}
				return base.Foreground(colorGreen)
			case 3:
				return base.Foreground(colorCyan)
			case 4:
				return base.Foreground(colorDim)
			}
			return base
		})

	return t.Render()
}
