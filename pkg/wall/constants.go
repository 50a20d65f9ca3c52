package wall

// Brick and joint dimensions in millimetres.
const (
	BrickHeight            = 50.0
	FullBrickWidth         = 210.0
	HalfBrickWidth         = 100.0
	ThreeQuarterBrickWidth = 155.0
	QuarterBrickWidth      = 45.0
	HeadJoint              = 10.0
	BedJoint               = 12.5

	// CourseHeight is the vertical pitch of one course.
	CourseHeight = BrickHeight + BedJoint

	// FullBrickModule is a full brick plus its trailing head joint.
	FullBrickModule = FullBrickWidth + HeadJoint

	// HalfBrickModule is a half brick plus its trailing head joint.
	HalfBrickModule = HalfBrickWidth + HeadJoint
)

// epsilon absorbs float noise when comparing accumulated positions.
const epsilon = 1e-6

// CourseCount returns the number of whole courses that fit in height.
func CourseCount(height float64) int {
	if height <= 0 {
		return 0
	}
	return int((height + epsilon) / CourseHeight)
}

// CourseY returns the bottom y coordinate of the course at index.
func CourseY(index int) float64 { return float64(index) * CourseHeight }

// SnapToCourse rounds y down to the nearest course boundary.
func SnapToCourse(y float64) float64 {
	if y <= 0 {
		return 0
	}
	return CourseY(int((y + epsilon) / CourseHeight))
}
