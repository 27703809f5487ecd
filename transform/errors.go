// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Fast paths report contract violations through contract.Check with these
// sentinels. Try… functions return them wrapped with the operation tag;
// callers match with errors.Is. Singular transforms reuse matrix.ErrSingular.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroScale indicates a scale factor (or a block row length) of zero.
	ErrZeroScale = errors.New("transform: zero scale factor")

	// ErrZeroAxis indicates a rotation axis of zero length.
	ErrZeroAxis = errors.New("transform: zero rotation axis")

	// ErrNotOrthogonal indicates a matrix that is not a proper rotation:
	// R·Rᵗ differs from I, or det(R) differs from 1.
	ErrNotOrthogonal = errors.New("transform: matrix is not a rotation")

	// ErrNotDiagonal indicates a non-zero off-diagonal entry where a scale
	// matrix was expected.
	ErrNotDiagonal = errors.New("transform: matrix is not diagonal")

	// ErrShear indicates a transform block whose rows are not mutually
	// orthogonal, so it cannot be split into scale and rotation.
	ErrShear = errors.New("transform: block contains shear")
)

// Operation name constants for uniform error wrapping and reporting.
const (
	opRotationFromAxisAngle    = "RotationFromAxisAngle"
	opTryRotationFromAxisAngle = "TryRotationFromAxisAngle"
	opTryRotationFromMatrix    = "TryRotationFromMatrix"

	opScaleInvert        = "Scale3x3.Invert"
	opScaleTryInvert     = "Scale3x3.TryInvert"
	opTryScaleFromMatrix = "TryScaleFromMatrix"

	opInvert4x3       = "Transform4x3.Invert"
	opTryInvert4x3    = "Transform4x3.TryInvert"
	opDecompose4x3    = "Transform4x3.Decompose"
	opTryDecompose4x3 = "Transform4x3.TryDecompose"
	opSwitchHand4x3   = "Transform4x3.SwitchHandConvention"

	opInvert4x4       = "Transform4x4.Invert"
	opTryInvert4x4    = "Transform4x4.TryInvert"
	opDecompose4x4    = "Transform4x4.Decompose"
	opTryDecompose4x4 = "Transform4x4.TryDecompose"
	opSwitchHand4x4   = "Transform4x4.SwitchHandConvention"
)

// transformErrorf wraps err with an operation tag, preserving it for errors.Is.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
