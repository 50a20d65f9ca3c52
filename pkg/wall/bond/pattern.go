package bond

import (
	"context"
	"time"

	"github.com/matzehuels/bricklayer/pkg/observability"
	"github.com/matzehuels/bricklayer/pkg/wall"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// Pattern names a bond pattern.
type Pattern string

const (
	PatternStretcher    Pattern = "stretcher"
	PatternEnglishCross Pattern = "english-cross"
	PatternFlemish      Pattern = "flemish"
	PatternWild         Pattern = "wild"
)

// Patterns returns every supported pattern in display order.
func Patterns() []Pattern {
	return []Pattern{PatternStretcher, PatternEnglishCross, PatternFlemish, PatternWild}
}

// PatternNames returns the pattern names as strings.
func PatternNames() []string {
	ps := Patterns()
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = string(p)
	}
	return names
}

// ParsePattern converts a name into a Pattern. "english" is accepted as an
// alias for english-cross.
func ParsePattern(name string) (Pattern, error) {
	if name == "english" {
		return PatternEnglishCross, nil
	}
	if err := apperrors.ValidateChoice(apperrors.ErrCodeInvalidPattern, "pattern", name, PatternNames()); err != nil {
		return "", err
	}
	return Pattern(name), nil
}

// Deterministic reports whether the pattern always yields the same layout
// for the same dimensions.
func (p Pattern) Deterministic() bool { return p != PatternWild }

// Generate builds a layout for pattern p. The options are only consulted for
// the wild bond and may be nil.
func Generate(ctx context.Context, p Pattern, width, height float64, opts *WildOptions) (wall.Layout, error) {
	if err := apperrors.ValidateDimensions(width, height); err != nil {
		return wall.Layout{}, err
	}

	hooks := observability.Generation()
	hooks.OnGenerateStart(ctx, string(p), width, height)
	start := time.Now()

	var (
		l   wall.Layout
		err error
	)
	switch p {
	case PatternStretcher:
		l = Stretcher(width, height)
	case PatternEnglishCross:
		l = EnglishCross(width, height)
	case PatternFlemish:
		l = Flemish(width, height)
	case PatternWild:
		l, err = Wild(ctx, width, height, opts)
	default:
		err = apperrors.New(apperrors.ErrCodeInvalidPattern, "unknown pattern: %q", p)
	}

	if err == nil && p.Deterministic() {
		for _, c := range l.Courses {
			hooks.OnCourseGenerated(ctx, string(p), c.Index, len(c.Bricks))
		}
	}
	hooks.OnGenerateComplete(ctx, string(p), l.TotalBricks, time.Since(start), err)
	return l, err
}
