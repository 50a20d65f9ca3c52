package wall

import (
	"errors"
	"testing"

	"github.com/matzehuels/bricklayer/pkg/geometry"
)

// twoCourses is a hand-built 320 mm wide wall of two courses.
func twoCourses() Layout {
	return Layout{
		Width:       320,
		Height:      2 * CourseHeight,
		TotalBricks: 4,
		Courses: []Course{
			{Index: 0, Bricks: []Brick{
				{ID: 0, X: 0, Width: 100, Course: 0},
				{ID: 1, X: 110, Width: 210, Course: 0},
			}},
			{Index: 1, Bricks: []Brick{
				{ID: 2, X: 0, Width: 210, Course: 1},
				{ID: 3, X: 220, Width: 100, Course: 1},
			}},
		},
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Layout)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*Layout) {},
		},
		{
			name:    "duplicate id",
			mutate:  func(l *Layout) { l.Courses[1].Bricks[0].ID = 0 },
			wantErr: ErrDuplicateBrickID,
		},
		{
			name:    "count mismatch",
			mutate:  func(l *Layout) { l.TotalBricks = 5 },
			wantErr: ErrCountMismatch,
		},
		{
			name:    "partial course height",
			mutate:  func(l *Layout) { l.Height = 100 },
			wantErr: ErrHeightMismatch,
		},
		{
			name:    "wrong course index",
			mutate:  func(l *Layout) { l.Courses[1].Bricks[1].Course = 0 },
			wantErr: ErrCourseMismatch,
		},
		{
			name:    "missing head joint",
			mutate:  func(l *Layout) { l.Courses[0].Bricks[1].X = 100 },
			wantErr: ErrJointSpacing,
		},
		{
			name:    "past wall edge",
			mutate:  func(l *Layout) { l.Width = 300 },
			wantErr: ErrOutOfBounds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := twoCourses()
			tt.mutate(&l)
			err := l.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLayoutBricksOrder(t *testing.T) {
	l := twoCourses()
	bricks := l.Bricks()
	if len(bricks) != 4 {
		t.Fatalf("Bricks() len = %d, want 4", len(bricks))
	}
	for i, b := range bricks {
		if b.ID != BrickID(i) {
			t.Errorf("Bricks()[%d].ID = %d, want %d", i, b.ID, i)
		}
	}
}

func TestLayoutBrickLookup(t *testing.T) {
	l := twoCourses()

	b, ok := l.Brick(3)
	if !ok {
		t.Fatal("Brick(3) not found")
	}
	if b.X != 220 || b.Course != 1 {
		t.Errorf("Brick(3) = %+v", b)
	}

	if _, ok := l.Brick(99); ok {
		t.Error("Brick(99) should not be found")
	}

	idx := l.Index()
	if len(idx) != 4 || idx[1].Width != 210 {
		t.Errorf("Index() = %v", idx)
	}
}

func TestLayoutInBounds(t *testing.T) {
	l := twoCourses()

	tests := []struct {
		name   string
		bounds geometry.Bounds
		want   []BrickID
	}{
		{
			name:   "whole wall",
			bounds: l.Bounds(),
			want:   []BrickID{0, 1, 2, 3},
		},
		{
			name:   "bottom course only",
			bounds: geometry.Bounds{Width: 320, Height: BrickHeight},
			want:   []BrickID{0, 1},
		},
		{
			name:   "left column",
			bounds: geometry.Bounds{Width: 215, Height: 200},
			want:   []BrickID{0, 2},
		},
		{
			name:   "nothing fits",
			bounds: geometry.Bounds{X: 50, Width: 100, Height: 200},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.InBounds(tt.bounds)
			if len(got) != len(tt.want) {
				t.Fatalf("InBounds() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("InBounds() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestCourseJoints(t *testing.T) {
	l := twoCourses()

	joints := l.Courses[0].Joints()
	if len(joints) != 1 || joints[0] != 100 {
		t.Errorf("Joints() = %v, want [100]", joints)
	}

	if got := (Course{Bricks: []Brick{{Width: 210}}}).Joints(); got != nil {
		t.Errorf("single brick Joints() = %v, want nil", got)
	}
}

func TestBrickKind(t *testing.T) {
	tests := []struct {
		width float64
		want  Kind
	}{
		{FullBrickWidth, KindFull},
		{ThreeQuarterBrickWidth, KindThreeQuarter},
		{HalfBrickWidth, KindHalf},
		{QuarterBrickWidth, KindQuarter},
		{90, KindCut},
	}

	for _, tt := range tests {
		t.Run(string(tt.want), func(t *testing.T) {
			if got := (Brick{Width: tt.width}).Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBrickBounds(t *testing.T) {
	b := Brick{ID: 7, X: 110, Width: 210, Course: 2}
	want := geometry.Bounds{X: 110, Y: 125, Width: 210, Height: 50}
	if got := b.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestAllocator(t *testing.T) {
	var a Allocator
	first, a := a.Next()
	second, a := a.Next()

	if first != 0 || second != 1 {
		t.Errorf("Next() = %d, %d, want 0, 1", first, second)
	}
	if a.Count() != 2 {
		t.Errorf("Count() = %d, want 2", a.Count())
	}

	// A saved allocator is unaffected by later allocations.
	saved := a
	_, _ = a.Next()
	if id, _ := saved.Next(); id != 2 {
		t.Errorf("saved.Next() = %d, want 2", id)
	}
}

func TestCourseHelpers(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		want   int
	}{
		{"zero", 0, 0},
		{"below one course", 60, 0},
		{"exact", 125, 2},
		{"spec wall", 2000, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CourseCount(tt.height); got != tt.want {
				t.Errorf("CourseCount(%v) = %d, want %d", tt.height, got, tt.want)
			}
		})
	}

	if got := SnapToCourse(433.33); got != 375 {
		t.Errorf("SnapToCourse(433.33) = %v, want 375", got)
	}
	if got := SnapToCourse(-5); got != 0 {
		t.Errorf("SnapToCourse(-5) = %v, want 0", got)
	}
}
