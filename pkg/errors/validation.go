package errors

import (
	"math"
	"slices"
	"strings"
)

// Dimension limits for generated walls, in millimetres.
const (
	// MinWallHeight is one course (brick plus bed joint).
	MinWallHeight = 62.5

	// MaxWallDimension bounds width and height so a single request cannot
	// ask for an unbounded number of bricks.
	MaxWallDimension = 100_000.0
)

// ValidateDimensions checks that a requested wall size is usable.
//
// Validation rules:
//   - Width and height must be finite numbers
//   - Width must be positive
//   - Height must fit at least one course
//   - Neither may exceed MaxWallDimension
func ValidateDimensions(width, height float64) error {
	if math.IsNaN(width) || math.IsInf(width, 0) || math.IsNaN(height) || math.IsInf(height, 0) {
		return New(ErrCodeInvalidDimensions, "dimensions must be finite numbers")
	}
	if width <= 0 {
		return New(ErrCodeInvalidDimensions, "width must be positive (got %g)", width)
	}
	if height < MinWallHeight {
		return New(ErrCodeInvalidDimensions, "height must fit at least one course of %gmm (got %g)", MinWallHeight, height)
	}
	if width > MaxWallDimension || height > MaxWallDimension {
		return New(ErrCodeInvalidDimensions, "dimensions too large (max %gmm)", MaxWallDimension)
	}
	return nil
}

// ValidateChoice checks that name is one of valid, reporting failures with code.
// The what argument names the option in the error message (e.g. "pattern").
func ValidateChoice(code Code, what, name string, valid []string) error {
	if name == "" {
		return New(code, "%s cannot be empty", what)
	}
	if !slices.Contains(valid, name) {
		return New(code, "invalid %s: %q (must be one of: %s)", what, name, strings.Join(valid, ", "))
	}
	return nil
}
