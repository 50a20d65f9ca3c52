package wall

import (
	"errors"
	"fmt"
	"math"

	"github.com/matzehuels/bricklayer/pkg/geometry"
)

var (
	// ErrDuplicateBrickID is returned by [Layout.Validate] when two bricks
	// share an identifier.
	ErrDuplicateBrickID = errors.New("duplicate brick ID")

	// ErrCountMismatch is returned by [Layout.Validate] when TotalBricks does
	// not equal the number of bricks in the courses.
	ErrCountMismatch = errors.New("total brick count does not match courses")

	// ErrHeightMismatch is returned by [Layout.Validate] when the height is
	// not a whole number of courses.
	ErrHeightMismatch = errors.New("height must equal course count times course height")

	// ErrCourseMismatch is returned by [Layout.Validate] when a brick's course
	// index disagrees with the course that holds it.
	ErrCourseMismatch = errors.New("brick course index does not match its course")

	// ErrJointSpacing is returned by [Layout.Validate] when bricks in a course
	// are not laid from x=0 with exactly one head joint between neighbours.
	ErrJointSpacing = errors.New("bricks must be separated by exactly one head joint")

	// ErrOutOfBounds is returned by [Layout.Validate] when a brick extends past
	// the wall width.
	ErrOutOfBounds = errors.New("brick extends past wall edge")

	// ErrUnknownBrick is returned when a brick ID is not part of the layout.
	ErrUnknownBrick = errors.New("unknown brick")
)

// Course is one horizontal row of bricks ordered by increasing x.
type Course struct {
	Index  int     `json:"index"`
	Bricks []Brick `json:"bricks"`
}

// Joints returns the x coordinates of the head joints in the course, measured
// at the right edge of every brick except the last.
func (c Course) Joints() []float64 {
	if len(c.Bricks) < 2 {
		return nil
	}
	joints := make([]float64, 0, len(c.Bricks)-1)
	for _, b := range c.Bricks[:len(c.Bricks)-1] {
		joints = append(joints, b.Right())
	}
	return joints
}

// Widths returns the brick widths in course order.
func (c Course) Widths() []float64 {
	widths := make([]float64, len(c.Bricks))
	for i, b := range c.Bricks {
		widths[i] = b.Width
	}
	return widths
}

// Layout is a complete wall: courses ordered bottom to top.
type Layout struct {
	Pattern     string   `json:"pattern,omitempty"`
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	TotalBricks int      `json:"total_bricks"`
	Courses     []Course `json:"courses"`
}

// CourseCount returns the number of courses.
func (l Layout) CourseCount() int { return len(l.Courses) }

// Bounds returns the rectangle covered by the wall.
func (l Layout) Bounds() geometry.Bounds {
	return geometry.Bounds{Width: l.Width, Height: l.Height}
}

// Bricks returns every brick in course-major, left-to-right order.
func (l Layout) Bricks() []Brick {
	out := make([]Brick, 0, l.TotalBricks)
	for _, c := range l.Courses {
		out = append(out, c.Bricks...)
	}
	return out
}

// Brick looks up a brick by identifier.
func (l Layout) Brick(id BrickID) (Brick, bool) {
	for _, c := range l.Courses {
		for _, b := range c.Bricks {
			if b.ID == id {
				return b, true
			}
		}
	}
	return Brick{}, false
}

// Index returns a lookup table from identifier to brick.
func (l Layout) Index() map[BrickID]Brick {
	idx := make(map[BrickID]Brick, l.TotalBricks)
	for _, c := range l.Courses {
		for _, b := range c.Bricks {
			idx[b.ID] = b
		}
	}
	return idx
}

// InBounds returns the bricks whose full rectangle lies inside r, in
// course-major order.
func (l Layout) InBounds(r geometry.Bounds) []BrickID {
	var ids []BrickID
	for _, c := range l.Courses {
		y := CourseY(c.Index)
		if y+BrickHeight < r.Y || y > r.Top() {
			continue
		}
		for _, b := range c.Bricks {
			if geometry.Contains(r, b.Bounds()) {
				ids = append(ids, b.ID)
			}
		}
	}
	return ids
}

// Validate checks the structural invariants of the layout.
func (l Layout) Validate() error {
	if math.Abs(l.Height-CourseY(len(l.Courses))) > epsilon {
		return fmt.Errorf("%w: height %g with %d courses", ErrHeightMismatch, l.Height, len(l.Courses))
	}

	seen := make(map[BrickID]struct{}, l.TotalBricks)
	count := 0
	for ci, c := range l.Courses {
		if c.Index != ci {
			return fmt.Errorf("course %d: %w (index %d)", ci, ErrCourseMismatch, c.Index)
		}
		x := 0.0
		for _, b := range c.Bricks {
			if _, dup := seen[b.ID]; dup {
				return fmt.Errorf("brick %d: %w", b.ID, ErrDuplicateBrickID)
			}
			seen[b.ID] = struct{}{}
			count++

			if b.Course != ci {
				return fmt.Errorf("%s: %w", b, ErrCourseMismatch)
			}
			if math.Abs(b.X-x) > epsilon {
				return fmt.Errorf("%s: %w (expected x=%g)", b, ErrJointSpacing, x)
			}
			if b.Right() > l.Width+epsilon {
				return fmt.Errorf("%s: %w", b, ErrOutOfBounds)
			}
			x = b.Right() + HeadJoint
		}
	}

	if count != l.TotalBricks {
		return fmt.Errorf("%w: %d bricks, total %d", ErrCountMismatch, count, l.TotalBricks)
	}
	return nil
}
