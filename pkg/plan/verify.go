package plan

import (
	"errors"
	"fmt"

	"github.com/matzehuels/bricklayer/pkg/support"
	"github.com/matzehuels/bricklayer/pkg/wall"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

var (
	// ErrDuplicatePlacement is returned by [Verify] when a brick is placed
	// twice.
	ErrDuplicatePlacement = errors.New("brick placed more than once")

	// ErrUnsupported is returned by [Verify] when a brick is placed before
	// one of its supports.
	ErrUnsupported = errors.New("brick placed before its support")

	// ErrStrideOrder is returned by [Verify] when a brick's stride is lower
	// than a support's stride, or strides decrease along the plan.
	ErrStrideOrder = errors.New("stride lower than a support's stride")

	// ErrMixedStrides is returned by [Verify] when only some placements carry
	// a stride.
	ErrMixedStrides = errors.New("plan mixes strided and unstrided placements")
)

// Verify checks p against l. Every placed brick must exist in l and appear
// once, after all of its supports. For strided plans strides must never
// decrease and no brick may have a lower stride than a support. Incomplete
// plans are accepted; use [Plan.Complete] to require every brick.
//
// Unknown bricks yield an UNKNOWN_BRICK error; all other violations are
// INVALID_INPUT errors wrapping the sentinels above.
func Verify(l wall.Layout, p Plan) error {
	g := support.Analyze(l)
	strided := p.Strided()
	placed := make(map[wall.BrickID]int, len(p.Placements))
	last := 0

	for i, pl := range p.Placements {
		if !g.Has(pl.ID) {
			return apperrors.Wrap(apperrors.ErrCodeUnknownBrick, wall.ErrUnknownBrick,
				"placement %d: brick %d is not in the layout", i, pl.ID)
		}
		if _, dup := placed[pl.ID]; dup {
			return invalid(i, pl.ID, ErrDuplicatePlacement)
		}
		if pl.HasStride() != strided {
			return invalid(i, pl.ID, ErrMixedStrides)
		}

		stride := i
		if strided {
			stride = *pl.Stride
			if stride < last {
				return invalid(i, pl.ID, ErrStrideOrder)
			}
			last = stride
		}
		for _, dep := range g.Dependencies(pl.ID) {
			depStride, ok := placed[dep]
			if !ok {
				return invalid(i, pl.ID, fmt.Errorf("%w %d", ErrUnsupported, dep))
			}
			if depStride > stride {
				return invalid(i, pl.ID, ErrStrideOrder)
			}
		}
		placed[pl.ID] = stride
	}
	return nil
}

func invalid(i int, id wall.BrickID, err error) error {
	return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "placement %d (brick %d)", i, id)
}
