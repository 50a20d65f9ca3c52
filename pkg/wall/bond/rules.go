package bond

import "github.com/matzehuels/bricklayer/pkg/wall"

// jointSet holds the joint positions of one course for constant-time lookup.
type jointSet map[float64]struct{}

func newJointSet(joints []float64) jointSet {
	s := make(jointSet, len(joints))
	for _, j := range joints {
		s[j] = struct{}{}
	}
	return s
}

func (s jointSet) has(x float64) bool {
	_, ok := s[x]
	return ok
}

func (s jointSet) sharesAny(joints []float64) bool {
	for _, j := range joints {
		if s.has(j) {
			return true
		}
	}
	return false
}

// jointsOf returns the joint positions of a course laid from x=0 with the
// given brick widths. The last brick ends on the wall edge and has no joint.
func jointsOf(widths []float64) []float64 {
	if len(widths) < 2 {
		return nil
	}
	joints := make([]float64, 0, len(widths)-1)
	x := 0.0
	for _, w := range widths[:len(widths)-1] {
		x += w
		joints = append(joints, x)
		x += wall.HeadJoint
	}
	return joints
}

// maxRun reports whether widths never holds more than limit consecutive
// bricks of width w.
func maxRun(widths []float64, w float64, limit int) bool {
	run := 0
	for _, b := range widths {
		if b != w {
			run = 0
			continue
		}
		run++
		if run > limit {
			return false
		}
	}
	return true
}

// staggered reports whether a joint in the candidate course completes a
// diagonal of k courses, each joint offset from the one below by exactly
// StaggeredStep in the same direction. history is ordered bottom to top and
// the candidate sits directly above its last entry.
func staggered(candidate []float64, history []jointSet, k int) bool {
	if len(history) < k-1 {
		return false
	}
	below := history[len(history)-(k-1):]
	for _, j := range candidate {
		for _, step := range [2]float64{StaggeredStep, -StaggeredStep} {
			if diagonal(j, step, below) {
				return true
			}
		}
	}
	return false
}

// diagonal follows a joint at x downward through courses (nearest first),
// stepping back by step each course.
func diagonal(x, step float64, courses []jointSet) bool {
	for i := len(courses) - 1; i >= 0; i-- {
		x -= step
		if !courses[i].has(x) {
			return false
		}
	}
	return true
}
