// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors and their operation
// tags. Fast-path methods report contract violations through contract.Check
// with these sentinels; Try… and …FromSlice return them wrapped with the
// operation tag. Callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrSingular indicates an inversion of a matrix whose determinant is zero
	// within tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivideByZero indicates a scalar division by exactly zero.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrBadShape indicates a flat slice whose length does not match the
	// matrix shape (9, 12 or 16 elements).
	ErrBadShape = errors.New("matrix: invalid shape")
)

// Operation name constants for uniform error wrapping and reporting.
const (
	opDiv3x3       = "Matrix3x3.Div"
	opInvert3x3    = "Matrix3x3.Invert"
	opTryInvert3x3 = "Matrix3x3.TryInvert"
	opFromSlice3x3 = "Matrix3x3FromSlice"

	opDiv4x4       = "Matrix4x4.Div"
	opInvert4x4    = "Matrix4x4.Invert"
	opTryInvert4x4 = "Matrix4x4.TryInvert"
	opFromSlice4x4 = "Matrix4x4FromSlice"

	opDiv4x3       = "Matrix4x3.Div"
	opFromSlice4x3 = "Matrix4x3FromSlice"

	opDiv3x4       = "Matrix3x4.Div"
	opFromSlice3x4 = "Matrix3x4FromSlice"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf reports a flat slice of the wrong length.
func shapeErrorf(tag string, want, got int) error {
	return fmt.Errorf("%s: want %d elements, got %d: %w", tag, want, got, ErrBadShape)
}
