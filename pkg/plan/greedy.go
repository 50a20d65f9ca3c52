package plan

import (
	"context"

	"github.com/matzehuels/bricklayer/pkg/geometry"
	"github.com/matzehuels/bricklayer/pkg/reach"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

// Default greedy weights.
const (
	DefaultFutureWeight = 0.8
	DefaultTravelWeight = 0.001
)

// Greedy picks the best station every stride with one step of lookahead.
//
// A station scores
//
//	added + FutureWeight*next - TravelWeight*distance
//
// where added is what it can saturate now, next is the best any station
// could saturate afterwards, and distance is measured from the previously
// chosen station. Only stations that place at least one brick compete, and
// the first station with the highest score wins. If none can place anything
// the plan ends with [StatusStalled].
//
// The zero value plans without lookahead or travel cost; use
// [DefaultGreedy] for the standard weights.
type Greedy struct {
	FutureWeight float64       `json:"future_weight" toml:"future_weight"`
	TravelWeight float64       `json:"travel_weight" toml:"travel_weight"`
	Reach        reach.Options `json:"reach" toml:"reach"`
}

// DefaultGreedy returns a greedy planner with the standard weights.
func DefaultGreedy() Greedy {
	return Greedy{FutureWeight: DefaultFutureWeight, TravelWeight: DefaultTravelWeight}
}

func (Greedy) Name() string { return StrategyGreedy }

// candidate is one scored station for the current stride.
type candidate struct {
	station *reach.Station
	score   float64
	added   []wall.BrickID
}

func (g Greedy) Plan(ctx context.Context, l wall.Layout) (Plan, error) {
	if err := checkLayout(l); err != nil {
		return Plan{}, err
	}

	st := newState(ctx, StrategyGreedy, l)
	stations := reach.Stations(l, g.Reach)
	var prev *geometry.Point
	for stride := 0; !st.done(); stride++ {
		if ctx.Err() != nil {
			return st.finish(ctx, StatusCanceled), nil
		}

		var best *candidate
		for i := range stations {
			c := g.score(ctx, st, stations, &stations[i], prev)
			if ctx.Err() != nil {
				return st.finish(ctx, StatusCanceled), nil
			}
			if c == nil {
				continue
			}
			if best == nil || c.score > best.score {
				best = c
			}
		}
		if best == nil {
			return st.finish(ctx, StatusStalled), nil
		}

		st.commit(ctx, best.added, stride)
		prev = &best.station.Position
	}
	return st.finish(ctx, StatusComplete), nil
}

// score evaluates s against the committed state, or returns nil when s
// cannot place anything or ctx is done.
func (g Greedy) score(ctx context.Context, st *state, stations []reach.Station, s *reach.Station, prev *geometry.Point) *candidate {
	added := saturate(st.graph, s.Reachable, st.isPlaced)
	if len(added) == 0 {
		return nil
	}

	after := make(map[wall.BrickID]struct{}, len(added))
	for _, id := range added {
		after[id] = struct{}{}
	}
	placedAfter := func(id wall.BrickID) bool {
		if _, ok := after[id]; ok {
			return true
		}
		return st.isPlaced(id)
	}
	next := 0
	for i := range stations {
		if ctx.Err() != nil {
			return nil
		}
		next = max(next, len(saturate(st.graph, stations[i].Reachable, placedAfter)))
	}

	travel := 0.0
	if prev != nil {
		travel = g.TravelWeight * geometry.Distance(*prev, s.Position)
	}
	return &candidate{
		station: s,
		score:   float64(len(added)) + g.FutureWeight*float64(next) - travel,
		added:   added,
	}
}
