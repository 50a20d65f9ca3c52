package plan

import (
	"context"

	"github.com/matzehuels/bricklayer/pkg/wall"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// Status describes how a planner finished.
type Status string

const (
	// StatusComplete means every brick was placed.
	StatusComplete Status = "complete"
	// StatusBudgetExhausted means the stride budget ran out first.
	StatusBudgetExhausted Status = "budget_exhausted"
	// StatusStalled means no station could place another brick.
	StatusStalled Status = "stalled"
	// StatusCanceled means the context was canceled mid-plan.
	StatusCanceled Status = "canceled"
)

// Placement is one brick of a plan. Stride is nil for unconstrained plans.
type Placement struct {
	ID     wall.BrickID `json:"id"`
	Stride *int         `json:"stride,omitempty"`
}

// HasStride reports whether the placement was assigned a stride.
func (p Placement) HasStride() bool { return p.Stride != nil }

// at returns a placement of id at stride.
func at(id wall.BrickID, stride int) Placement {
	return Placement{ID: id, Stride: &stride}
}

// Plan is an ordered build sequence for one layout.
type Plan struct {
	Strategy   string      `json:"strategy"`
	Status     Status      `json:"status"`
	Strides    int         `json:"strides"`
	Placements []Placement `json:"bricks"`
}

// Complete reports whether the plan places every brick of l.
func (p Plan) Complete(l wall.Layout) bool {
	return len(p.Placements) == l.TotalBricks
}

// Strided reports whether the placements carry strides.
func (p Plan) Strided() bool {
	return len(p.Placements) > 0 && p.Placements[0].HasStride()
}

// ByStride groups the placed bricks into steps. For strided plans step i
// holds the bricks of stride i, possibly empty. Unstrided plans get one step
// per brick.
func (p Plan) ByStride() [][]wall.BrickID {
	if !p.Strided() {
		steps := make([][]wall.BrickID, len(p.Placements))
		for i, pl := range p.Placements {
			steps[i] = []wall.BrickID{pl.ID}
		}
		return steps
	}
	steps := make([][]wall.BrickID, max(p.Strides, countStrides(p.Placements)))
	for _, pl := range p.Placements {
		steps[*pl.Stride] = append(steps[*pl.Stride], pl.ID)
	}
	return steps
}

// StepIndex maps every placed brick to its step in [Plan.ByStride].
func (p Plan) StepIndex() map[wall.BrickID]int {
	idx := make(map[wall.BrickID]int, len(p.Placements))
	for i, pl := range p.Placements {
		if pl.HasStride() {
			idx[pl.ID] = *pl.Stride
		} else {
			idx[pl.ID] = i
		}
	}
	return idx
}

// Steps returns the number of steps in [Plan.ByStride].
func (p Plan) Steps() int {
	if p.Strided() {
		return p.Strides
	}
	return len(p.Placements)
}

// Planner computes a plan for a layout.
type Planner interface {
	Name() string
	Plan(ctx context.Context, l wall.Layout) (Plan, error)
}

// Strategy names.
const (
	StrategyNaive  = "naive"
	StrategySweep  = "sweep"
	StrategyGreedy = "greedy"
)

// Strategies returns the strategy names in order of sophistication.
func Strategies() []string {
	return []string{StrategyNaive, StrategySweep, StrategyGreedy}
}

// ByName returns the planner for name with default settings. "greedy-lookahead"
// is accepted as an alias for greedy.
func ByName(name string) (Planner, error) {
	switch name {
	case StrategyNaive:
		return Naive{}, nil
	case StrategySweep:
		return DefaultSweep(), nil
	case StrategyGreedy, "greedy-lookahead":
		return DefaultGreedy(), nil
	}
	if err := apperrors.ValidateChoice(apperrors.ErrCodeInvalidStrategy, "strategy", name, Strategies()); err != nil {
		return nil, err
	}
	return nil, apperrors.New(apperrors.ErrCodeInvalidStrategy, "unknown strategy: %q", name)
}

// checkLayout rejects layouts that planners cannot reason about.
func checkLayout(l wall.Layout) error {
	if err := l.Validate(); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidLayout, err, "cannot plan an invalid layout")
	}
	return nil
}

// countStrides returns one past the highest stride in placements.
func countStrides(placements []Placement) int {
	n := 0
	for _, pl := range placements {
		if pl.HasStride() {
			n = max(n, *pl.Stride+1)
		}
	}
	return n
}
