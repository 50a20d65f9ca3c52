package support

import (
	"cmp"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/bricklayer/pkg/geometry"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

var (
	// ErrDuplicateBrick is returned by [Graph.AddBrick] when the brick is
	// already part of the graph.
	ErrDuplicateBrick = errors.New("duplicate brick")

	// ErrUnknownBrick is returned by [Graph.AddSupport] when either endpoint
	// has not been added.
	ErrUnknownBrick = errors.New("unknown brick")

	// ErrNonConsecutiveCourses is returned by [Graph.Validate] when a support
	// edge does not connect a brick to the course directly below it.
	ErrNonConsecutiveCourses = errors.New("support must come from the course directly below")
)

// Edge records that From rests on To.
type Edge struct {
	From wall.BrickID `json:"from"`
	To   wall.BrickID `json:"to"`
}

// Graph is the support relation of a layout. Nodes are bricks, organized by
// course; edges point from a brick to the bricks it rests on.
//
// The zero value is not usable. Use [New] or [Analyze].
type Graph struct {
	bricks     map[wall.BrickID]wall.Brick
	deps       map[wall.BrickID][]wall.BrickID // brick -> supports below, by x
	dependents map[wall.BrickID][]wall.BrickID // brick -> bricks resting on it
	courses    map[int][]wall.BrickID
	edges      []Edge
}

// New creates an empty support graph.
func New() *Graph {
	return &Graph{
		bricks:     make(map[wall.BrickID]wall.Brick),
		deps:       make(map[wall.BrickID][]wall.BrickID),
		dependents: make(map[wall.BrickID][]wall.BrickID),
		courses:    make(map[int][]wall.BrickID),
	}
}

// Analyze builds the support graph of l. Every brick above the bottom course
// depends on the bricks directly below whose half-open x-intervals overlap it.
func Analyze(l wall.Layout) *Graph {
	g := New()
	for _, c := range l.Courses {
		for _, b := range c.Bricks {
			_ = g.AddBrick(b)
		}
	}
	for ci := 1; ci < len(l.Courses); ci++ {
		below := l.Courses[ci-1].Bricks
		lo := 0
		for _, b := range l.Courses[ci].Bricks {
			// Courses are sorted by x, so the first candidate only moves right.
			for lo < len(below) && below[lo].Right() <= b.X {
				lo++
			}
			for k := lo; k < len(below) && below[k].X < b.Right(); k++ {
				if geometry.OverlapsHorizontally(b.Bounds(), below[k].Bounds()) {
					_ = g.AddSupport(b.ID, below[k].ID)
				}
			}
		}
	}
	return g
}

// AddBrick adds b as a node.
func (g *Graph) AddBrick(b wall.Brick) error {
	if _, ok := g.bricks[b.ID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateBrick, b.ID)
	}
	g.bricks[b.ID] = b
	g.courses[b.Course] = append(g.courses[b.Course], b.ID)
	return nil
}

// AddSupport records that brick rests on support. Both must already exist.
// Course adjacency is not checked here; see [Graph.Validate].
func (g *Graph) AddSupport(brick, support wall.BrickID) error {
	if _, ok := g.bricks[brick]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBrick, brick)
	}
	below, ok := g.bricks[support]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownBrick, support)
	}

	deps := g.deps[brick]
	i, _ := slices.BinarySearchFunc(deps, below.X, func(id wall.BrickID, x float64) int {
		return cmp.Compare(g.bricks[id].X, x)
	})
	g.deps[brick] = slices.Insert(deps, i, support)
	g.dependents[support] = append(g.dependents[support], brick)
	g.edges = append(g.edges, Edge{From: brick, To: support})
	return nil
}

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id wall.BrickID) bool {
	_, ok := g.bricks[id]
	return ok
}

// Brick returns the brick stored for id.
func (g *Graph) Brick(id wall.BrickID) (wall.Brick, bool) {
	b, ok := g.bricks[id]
	return b, ok
}

// Bricks returns every brick in the graph ordered by identifier.
func (g *Graph) Bricks() []wall.Brick {
	out := slices.Collect(maps.Values(g.bricks))
	slices.SortFunc(out, func(a, b wall.Brick) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// BrickCount returns the number of bricks in the graph.
func (g *Graph) BrickCount() int { return len(g.bricks) }

// EdgeCount returns the number of support edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Edges returns a copy of every support edge in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Dependencies returns the bricks id rests on, ordered by x. The result is
// empty for bottom-course bricks and unknown ids.
func (g *Graph) Dependencies(id wall.BrickID) []wall.BrickID {
	return slices.Clone(g.deps[id])
}

// Dependents returns the bricks resting on id.
func (g *Graph) Dependents(id wall.BrickID) []wall.BrickID {
	return slices.Clone(g.dependents[id])
}

// Course returns the bricks of course index in insertion order.
func (g *Graph) Course(index int) []wall.BrickID {
	return slices.Clone(g.courses[index])
}

// Roots returns the bricks with no dependencies, in insertion order within
// each course.
func (g *Graph) Roots() []wall.BrickID {
	var roots []wall.BrickID
	for _, ci := range slices.Sorted(maps.Keys(g.courses)) {
		for _, id := range g.courses[ci] {
			if len(g.deps[id]) == 0 {
				roots = append(roots, id)
			}
		}
	}
	return roots
}

// Satisfied reports whether every dependency of id is placed.
func (g *Graph) Satisfied(id wall.BrickID, placed func(wall.BrickID) bool) bool {
	for _, d := range g.deps[id] {
		if !placed(d) {
			return false
		}
	}
	return true
}

// Validate checks that every edge connects a brick to the course directly
// below it.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		from, to := g.bricks[e.From], g.bricks[e.To]
		if from.Course != to.Course+1 {
			return fmt.Errorf("%w: %d (course %d) -> %d (course %d)",
				ErrNonConsecutiveCourses, e.From, from.Course, e.To, to.Course)
		}
	}
	return nil
}
