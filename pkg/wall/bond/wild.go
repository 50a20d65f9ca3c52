package bond

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/matzehuels/bricklayer/pkg/observability"
	"github.com/matzehuels/bricklayer/pkg/wall"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// Wild bond search limits and rules.
const (
	// DefaultMaxAttempts bounds how many whole-wall attempts are made before
	// generation fails.
	DefaultMaxAttempts = 100_000

	// DefaultMaxSteps bounds the depth-first steps spent on a single course.
	DefaultMaxSteps = 10_000_000

	// DefaultMaxStaggeredRun is the number of consecutive courses that may
	// not form a staggered step.
	DefaultMaxStaggeredRun = 8

	// MaxFullRun is the longest allowed run of consecutive full bricks.
	MaxFullRun = 5

	// MaxInteriorHalfRun is the longest allowed run of half bricks away from
	// the course edges.
	MaxInteriorHalfRun = 1

	// StaggeredStep is the joint offset between courses that forms a step.
	StaggeredStep = wall.QuarterBrickWidth + wall.HeadJoint
)

// wildModule is the joint pitch every wild course is built on.
const wildModule = wall.HalfBrickModule

// Smallest widths a wild course can fill for each residue modulo the half
// brick module, covering both half-brick and three-quarter leaders.
const (
	minWildWidthQuarter = 265.0 // leader, joint, closing three-quarter or half
	minWildWidthHalf    = 320.0 // three-quarter leader, joint, three-quarter closer
)

var (
	// ErrSearchExhausted is matched by errors.Is for a [SearchExhaustedError].
	ErrSearchExhausted = errors.New("course search exhausted its step budget")

	// ErrDeadEnd reports that every candidate sequence for a course was tried
	// without satisfying the wild bond rules.
	ErrDeadEnd = errors.New("no course satisfies the wild bond rules")
)

// SearchExhaustedError reports that a course search hit its step budget.
type SearchExhaustedError struct {
	Course int // course index being searched
	Steps  int // steps spent before giving up
}

func (e *SearchExhaustedError) Error() string {
	return fmt.Sprintf("course %d: search exhausted after %d steps", e.Course, e.Steps)
}

// Is makes errors.Is(err, ErrSearchExhausted) match.
func (e *SearchExhaustedError) Is(target error) bool { return target == ErrSearchExhausted }

// WildOptions configures the wild bond search. The zero value uses the
// defaults and a randomly seeded source.
type WildOptions struct {
	// Rand supplies the candidate shuffle order. Nil means a random seed.
	Rand *rand.Rand `json:"-" toml:"-"`

	// MaxAttempts bounds whole-wall retries.
	MaxAttempts int `json:"max_attempts,omitempty" toml:"max_attempts"`

	// MaxSteps bounds the search steps spent on one course in one attempt.
	MaxSteps int `json:"max_steps,omitempty" toml:"max_steps"`

	// MaxStaggeredRun is the run length of staggered courses that is rejected.
	// Zero selects DefaultMaxStaggeredRun. A run always spans at least two
	// courses, so other values below 2 are invalid.
	MaxStaggeredRun int `json:"max_staggered_run,omitempty" toml:"max_staggered_run"`
}

// NewRand returns a PCG-backed source for seed. Seed 0 selects a random seed.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

func (o *WildOptions) withDefaults() WildOptions {
	var out WildOptions
	if o != nil {
		out = *o
	}
	if out.Rand == nil {
		out.Rand = NewRand(0)
	}
	if out.MaxAttempts <= 0 {
		out.MaxAttempts = DefaultMaxAttempts
	}
	if out.MaxSteps <= 0 {
		out.MaxSteps = DefaultMaxSteps
	}
	if out.MaxStaggeredRun == 0 {
		out.MaxStaggeredRun = DefaultMaxStaggeredRun
	}
	return out
}

// Validate rejects negative budgets and staggered run limits below 2.
// Zero fields are valid and select the defaults.
func (o *WildOptions) Validate() error {
	if o == nil {
		return nil
	}
	if o.MaxAttempts < 0 || o.MaxSteps < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"wild search budgets must not be negative (max_attempts %d, max_steps %d)", o.MaxAttempts, o.MaxSteps)
	}
	if o.MaxStaggeredRun != 0 && o.MaxStaggeredRun < 2 {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"max_staggered_run must be at least 2 (got %d)", o.MaxStaggeredRun)
	}
	return nil
}

// WildWidth returns the widest wall no wider than width that wild courses
// can fill exactly, or 0 if none exists.
//
// Every wild joint falls on the half brick module, so a course closes exactly
// only when the width is 45 or 100 mm past a multiple of 110 mm.
func WildWidth(width float64) float64 {
	w := math.Floor(width + epsilon)
	for ; w >= minWildWidthQuarter; w-- {
		switch math.Mod(w, wildModule) {
		case wall.QuarterBrickWidth:
			return w
		case wall.HalfBrickWidth:
			if w >= minWildWidthHalf {
				return w
			}
		}
	}
	return 0
}

// Wild generates a wild bond layout by randomized backtracking search.
//
// The rules are:
//   - even courses start with a half brick, odd courses with a three-quarter
//   - no joint lines up with a joint in the course directly below
//   - at most five consecutive full bricks
//   - no two consecutive half bricks away from the course edges
//   - no staggered step (joints offset by a quarter brick plus a joint in the
//     same direction) across MaxStaggeredRun consecutive courses
//
// The width is snapped down with [WildWidth]. Each attempt builds courses
// bottom to top; a course that cannot be completed discards the whole attempt.
// When every attempt fails the error has code GENERATION_FAILED and wraps the
// last course failure.
func Wild(ctx context.Context, width, height float64, opts *WildOptions) (wall.Layout, error) {
	if err := opts.Validate(); err != nil {
		return wall.Layout{}, err
	}
	o := opts.withDefaults()

	snapped := WildWidth(width)
	if snapped == 0 {
		return wall.Layout{}, apperrors.New(apperrors.ErrCodeInvalidDimensions,
			"wall too narrow for a wild bond (width %g, minimum %g)", width, minWildWidthQuarter)
	}
	n := wall.CourseCount(height)

	hooks := observability.Generation()
	var lastErr error
	for attempt := range o.MaxAttempts {
		if err := ctx.Err(); err != nil {
			return wall.Layout{}, apperrors.Wrap(apperrors.ErrCodeTimeout, err, "wild bond generation interrupted")
		}
		courses, ids, err := wildAttempt(ctx, snapped, n, o)
		if err == nil {
			return wall.Layout{
				Pattern:     string(PatternWild),
				Width:       snapped,
				Height:      wall.CourseY(n),
				TotalBricks: ids.Count(),
				Courses:     courses,
			}, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return wall.Layout{}, apperrors.Wrap(apperrors.ErrCodeTimeout, ctxErr, "wild bond generation interrupted")
		}
		course := -1
		var (
			exhausted *SearchExhaustedError
			deadEnd   *courseError
		)
		switch {
		case errors.As(err, &exhausted):
			course = exhausted.Course
		case errors.As(err, &deadEnd):
			course = deadEnd.course
		}
		hooks.OnAttemptFailed(ctx, string(PatternWild), attempt, course, err)
		lastErr = err
	}
	return wall.Layout{}, apperrors.Wrap(apperrors.ErrCodeGenerationFailed, lastErr,
		"no wild bond found after %d attempts", o.MaxAttempts)
}

// courseError reports a dead end at a specific course.
type courseError struct {
	course int
	err    error
}

func (e *courseError) Error() string { return fmt.Sprintf("course %d: %v", e.course, e.err) }
func (e *courseError) Unwrap() error { return e.err }

// wildAttempt builds every course of one wall attempt. Identifiers are only
// allocated once a course has been accepted.
func wildAttempt(ctx context.Context, width float64, n int, o WildOptions) ([]wall.Course, wall.Allocator, error) {
	var (
		ids     wall.Allocator
		courses = make([]wall.Course, 0, n)
		history = make([]jointSet, 0, n)
		hooks   = observability.Generation()
	)
	for i := range n {
		s := &courseSearch{
			index:    i,
			width:    width,
			rng:      o.Rand,
			maxSteps: o.MaxSteps,
			stagger:  o.MaxStaggeredRun,
			history:  history,
		}
		widths, err := s.run(ctx)
		if err != nil {
			return nil, ids, err
		}

		b := newCourseBuilder(i, width, ids)
		for _, w := range widths {
			b.add(w)
		}
		var c wall.Course
		c, ids = b.done()
		courses = append(courses, c)
		history = append(history, newJointSet(c.Joints()))
		hooks.OnCourseGenerated(ctx, string(PatternWild), i, len(c.Bricks))
	}
	return courses, ids, nil
}

// move is one candidate brick together with the gap that follows it.
type move struct {
	width float64
	joint float64
}

// frame is one level of the depth-first search: the shuffled moves available
// at pos and the next one to try.
type frame struct {
	moves []move
	next  int
	pos   float64
}

// courseSearch finds brick widths for one course with an explicit stack.
// widths holds the current partial course; popping a frame truncates it back
// to that frame's depth.
type courseSearch struct {
	index    int
	width    float64
	rng      *rand.Rand
	maxSteps int
	stagger  int
	history  []jointSet
	widths   []float64
}

// ctxCheckInterval is how many search steps pass between context checks.
const ctxCheckInterval = 1 << 12

func (s *courseSearch) leader() float64 {
	if s.index%2 == 0 {
		return wall.HalfBrickWidth
	}
	return wall.ThreeQuarterBrickWidth
}

func (s *courseSearch) run(ctx context.Context) ([]float64, error) {
	lead := s.leader()
	s.widths = append(s.widths[:0], lead)

	stack := []frame{{moves: s.candidates(lead + wall.HeadJoint), pos: lead + wall.HeadJoint}}
	for steps := 1; len(stack) > 0; steps++ {
		if steps > s.maxSteps {
			return nil, &SearchExhaustedError{Course: s.index, Steps: steps - 1}
		}
		if steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		top := &stack[len(stack)-1]
		if top.next >= len(top.moves) {
			stack = stack[:len(stack)-1]
			s.widths = s.widths[:len(stack)+1]
			continue
		}
		m := top.moves[top.next]
		top.next++

		s.widths = append(s.widths[:len(stack)], m.width)
		pos := top.pos + m.width + m.joint
		if m.joint == 0 {
			if s.accept() {
				return s.widths, nil
			}
			continue
		}
		stack = append(stack, frame{moves: s.candidates(pos), pos: pos})
	}
	return nil, &courseError{course: s.index, err: ErrDeadEnd}
}

// candidates returns the shuffled moves that fit at pos: an exact fit closes
// the course without a joint, anything else must leave room for its joint.
// Three-quarter bricks only appear as exact-fit closers.
func (s *courseSearch) candidates(pos float64) []move {
	rem := s.width - pos
	widths := []float64{wall.HalfBrickWidth, wall.FullBrickWidth}
	if math.Abs(rem-wall.ThreeQuarterBrickWidth) < epsilon {
		widths = append(widths, wall.ThreeQuarterBrickWidth)
	}
	s.rng.Shuffle(len(widths), func(i, j int) { widths[i], widths[j] = widths[j], widths[i] })

	moves := make([]move, 0, len(widths)+1)
	for _, w := range widths {
		if math.Abs(w-rem) < epsilon {
			moves = append(moves, move{width: w})
		}
		if w != wall.ThreeQuarterBrickWidth && w+wall.HeadJoint <= rem+epsilon {
			moves = append(moves, move{width: w, joint: wall.HeadJoint})
		}
	}
	return moves
}

// accept checks a complete course against the wild bond rules.
func (s *courseSearch) accept() bool {
	joints := jointsOf(s.widths)
	if len(s.history) > 0 && s.history[len(s.history)-1].sharesAny(joints) {
		return false
	}
	if !maxRun(s.widths, wall.FullBrickWidth, MaxFullRun) {
		return false
	}
	if len(s.widths) > 2 && !maxRun(s.widths[1:len(s.widths)-1], wall.HalfBrickWidth, MaxInteriorHalfRun) {
		return false
	}
	return !staggered(joints, s.history, s.stagger)
}
