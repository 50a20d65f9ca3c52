package plan

import (
	"context"
	"time"

	"github.com/matzehuels/bricklayer/pkg/observability"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// Naive lays bricks in layout order, course by course from left to right.
// It assigns no strides.
type Naive struct{}

func (Naive) Name() string { return StrategyNaive }

func (Naive) Plan(ctx context.Context, l wall.Layout) (Plan, error) {
	if err := checkLayout(l); err != nil {
		return Plan{}, err
	}
	hooks := observability.Planning()
	hooks.OnPlanStart(ctx, StrategyNaive, l.TotalBricks)
	start := time.Now()

	placements := make([]Placement, 0, l.TotalBricks)
	for _, b := range l.Bricks() {
		placements = append(placements, Placement{ID: b.ID})
	}

	hooks.OnPlanComplete(ctx, StrategyNaive, len(placements), 0, string(StatusComplete), time.Since(start))
	return Plan{Strategy: StrategyNaive, Status: StatusComplete, Placements: placements}, nil
}
