package bond

import "github.com/matzehuels/bricklayer/pkg/wall"

// epsilon absorbs float noise when fitting bricks against the wall edge.
const epsilon = 1e-6

// courseBuilder lays bricks left to right within one course. It owns the id
// allocator for the duration of the course and hands it back from done.
type courseBuilder struct {
	index  int
	width  float64
	x      float64
	ids    wall.Allocator
	bricks []wall.Brick
}

func newCourseBuilder(index int, width float64, ids wall.Allocator) *courseBuilder {
	return &courseBuilder{index: index, width: width, ids: ids}
}

// fits reports whether a brick of width w fits before the wall edge.
func (b *courseBuilder) fits(w float64) bool {
	return b.x+w <= b.width+epsilon
}

// add places a brick at the cursor and advances past its head joint.
func (b *courseBuilder) add(w float64) {
	var id wall.BrickID
	id, b.ids = b.ids.Next()
	b.bricks = append(b.bricks, wall.Brick{ID: id, X: b.x, Width: w, Course: b.index})
	b.x += w + wall.HeadJoint
}

// done closes the course with a remainder brick when span is left over.
func (b *courseBuilder) done() (wall.Course, wall.Allocator) {
	if rem := b.width - b.x; rem > epsilon {
		b.add(rem)
	}
	return wall.Course{Index: b.index, Bricks: b.bricks}, b.ids
}

// courseFunc lays the pattern-specific bricks of one course.
type courseFunc func(b *courseBuilder)

// procedural builds a layout by applying lay to every course.
func procedural(p Pattern, width, height float64, lay courseFunc) wall.Layout {
	n := wall.CourseCount(height)
	courses := make([]wall.Course, 0, n)
	var ids wall.Allocator
	for i := range n {
		b := newCourseBuilder(i, width, ids)
		lay(b)
		var c wall.Course
		c, ids = b.done()
		courses = append(courses, c)
	}
	return wall.Layout{
		Pattern:     string(p),
		Width:       width,
		Height:      wall.CourseY(n),
		TotalBricks: ids.Count(),
		Courses:     courses,
	}
}

// fill places bricks of width w until the next one would cross the edge.
func (b *courseBuilder) fill(w float64) {
	for b.fits(w) {
		b.add(w)
	}
}

// lead places the course's leading brick if it fits. A wall narrower than
// the leader is closed by the remainder brick alone.
func (b *courseBuilder) lead(w float64) bool {
	if !b.fits(w) {
		return false
	}
	b.add(w)
	return true
}
