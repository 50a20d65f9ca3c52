package plan

import (
	"context"
	"time"

	"github.com/matzehuels/bricklayer/pkg/observability"
	"github.com/matzehuels/bricklayer/pkg/support"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// state tracks the bricks committed so far by a constrained planner.
type state struct {
	strategy   string
	total      int
	graph      *support.Graph
	placed     map[wall.BrickID]int
	placements []Placement
	start      time.Time
}

func newState(ctx context.Context, strategy string, l wall.Layout) *state {
	observability.Planning().OnPlanStart(ctx, strategy, l.TotalBricks)
	return &state{
		strategy:   strategy,
		total:      l.TotalBricks,
		graph:      support.Analyze(l),
		placed:     make(map[wall.BrickID]int, l.TotalBricks),
		placements: make([]Placement, 0, l.TotalBricks),
		start:      time.Now(),
	}
}

func (s *state) isPlaced(id wall.BrickID) bool {
	_, ok := s.placed[id]
	return ok
}

func (s *state) done() bool { return len(s.placed) == s.total }

// commit places ids at stride and reports the stride to the hooks.
func (s *state) commit(ctx context.Context, ids []wall.BrickID, stride int) {
	for _, id := range ids {
		s.placed[id] = stride
		s.placements = append(s.placements, at(id, stride))
	}
	observability.Planning().OnStride(ctx, s.strategy, stride, len(s.placed), s.total)
}

// finish builds the plan and reports completion.
func (s *state) finish(ctx context.Context, status Status) Plan {
	p := Plan{
		Strategy:   s.strategy,
		Status:     status,
		Strides:    countStrides(s.placements),
		Placements: s.placements,
	}
	observability.Planning().OnPlanComplete(ctx, s.strategy, len(s.placements), p.Strides, string(status), time.Since(s.start))
	return p
}

// saturate returns the bricks among reachable that can be placed on top of
// placed, repeating until no more qualify. Each round takes every qualifying
// brick at once, so the result is ordered round by round.
func saturate(g *support.Graph, reachable []wall.BrickID, placed func(wall.BrickID) bool) []wall.BrickID {
	added := make(map[wall.BrickID]struct{})
	isPlaced := func(id wall.BrickID) bool {
		if _, ok := added[id]; ok {
			return true
		}
		return placed(id)
	}

	var out []wall.BrickID
	for {
		var round []wall.BrickID
		for _, id := range reachable {
			if !isPlaced(id) && g.Satisfied(id, isPlaced) {
				round = append(round, id)
			}
		}
		if len(round) == 0 {
			return out
		}
		for _, id := range round {
			added[id] = struct{}{}
		}
		out = append(out, round...)
	}
}
