package plan

import (
	"errors"
	"testing"

	"github.com/matzehuels/bricklayer/pkg/wall"
	"github.com/matzehuels/bricklayer/pkg/wall/bond"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

func TestVerify(t *testing.T) {
	// Stretcher(1000, 200): course 0 holds bricks 0-5, course 1 holds 6-10.
	// Brick 6 rests on bricks 0 and 1.
	l := bond.Stretcher(1000, 200)

	tests := []struct {
		name     string
		plan     []Placement
		code     apperrors.Code
		sentinel error
	}{
		{"empty", nil, "", nil},
		{"bottom course", []Placement{at(0, 0), at(1, 0)}, "", nil},
		{"same stride as support", []Placement{at(0, 0), at(1, 0), at(6, 0)}, "", nil},
		{"unstrided in order", []Placement{{ID: 0}, {ID: 1}, {ID: 6}}, "", nil},
		{"unknown brick", []Placement{at(99, 0)}, apperrors.ErrCodeUnknownBrick, wall.ErrUnknownBrick},
		{"duplicate", []Placement{at(0, 0), at(0, 1)}, apperrors.ErrCodeInvalidInput, ErrDuplicatePlacement},
		{"missing support", []Placement{at(0, 0), at(6, 1)}, apperrors.ErrCodeInvalidInput, ErrUnsupported},
		{"unstrided out of order", []Placement{{ID: 6}, {ID: 0}, {ID: 1}}, apperrors.ErrCodeInvalidInput, ErrUnsupported},
		{"decreasing stride", []Placement{at(0, 1), at(1, 0)}, apperrors.ErrCodeInvalidInput, ErrStrideOrder},
		{"negative stride", []Placement{at(0, -1)}, apperrors.ErrCodeInvalidInput, ErrStrideOrder},
		{"mixed", []Placement{at(0, 0), {ID: 1}}, apperrors.ErrCodeInvalidInput, ErrMixedStrides},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(l, Plan{Placements: tt.plan, Strides: countStrides(tt.plan)})
			if tt.sentinel == nil {
				if err != nil {
					t.Errorf("Verify() = %v, want nil", err)
				}
				return
			}
			if !apperrors.Is(err, tt.code) {
				t.Errorf("Verify() = %v, want code %s", err, tt.code)
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("Verify() = %v, want it to wrap %v", err, tt.sentinel)
			}
		})
	}
}
