package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/wall"

	apperrors "github.com/matzehuels/bricklayer/pkg/errors"
)

// ReadLayout decodes a layout from r and validates it.
//
// Malformed JSON yields an INVALID_FORMAT error; a well-formed layout that
// breaks a wall invariant yields INVALID_LAYOUT wrapping the matching
// sentinel from package wall. ReadLayout does not close r.
func ReadLayout(r io.Reader) (wall.Layout, error) {
	var l wall.Layout
	if err := json.NewDecoder(r).Decode(&l); err != nil {
		return wall.Layout{}, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode layout")
	}
	if err := l.Validate(); err != nil {
		return wall.Layout{}, apperrors.Wrap(apperrors.ErrCodeInvalidLayout, err, "layout")
	}
	return l, nil
}

// ImportLayout reads and validates the layout file at path.
func ImportLayout(path string) (wall.Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return wall.Layout{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}

// ReadPlan decodes a plan from r. A missing status is taken as complete.
// ReadPlan does not close r.
func ReadPlan(r io.Reader) (plan.Plan, error) {
	var p plan.Plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return plan.Plan{}, apperrors.Wrap(apperrors.ErrCodeInvalidFormat, err, "decode plan")
	}
	if p.Status == "" {
		p.Status = plan.StatusComplete
	}
	return p, nil
}

// ImportPlan reads the plan file at path.
func ImportPlan(path string) (plan.Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadPlan(f)
}
