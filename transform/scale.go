// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Scale3x3 is an axis-aligned scale. Only the diagonal is stored, so the
// off-diagonal entries of Matrix() are exactly zero.
type Scale3x3[T scalar.Float] struct {
	s vector.Vec3[T]
}

// NewScale returns the scale with factors x, y, z.
func NewScale[T scalar.Float](x, y, z T) Scale3x3[T] {
	return Scale3x3[T]{s: vector.Vec3[T]{X: x, Y: y, Z: z}}
}

// ScaleFromVector returns the scale with factors v.X, v.Y, v.Z.
func ScaleFromVector[T scalar.Float](v vector.Vec3[T]) Scale3x3[T] {
	return Scale3x3[T]{s: v}
}

// ScaleIdentity returns the unit scale.
func ScaleIdentity[T scalar.Float]() Scale3x3[T] {
	return NewScale[T](1, 1, 1)
}

// TryScaleFromMatrix reads the diagonal of m after ValidateDiagonal accepts it.
func TryScaleFromMatrix[T scalar.Float](m matrix.Matrix3x3[T]) (Scale3x3[T], error) {
	if err := ValidateDiagonal(m); err != nil {
		return Scale3x3[T]{}, transformErrorf(opTryScaleFromMatrix, err)
	}

	return NewScale(m[0][0], m[1][1], m[2][2]), nil
}

// Factors returns the diagonal.
func (s Scale3x3[T]) Factors() vector.Vec3[T] { return s.s }

// Matrix returns the diagonal matrix.
func (s Scale3x3[T]) Matrix() matrix.Matrix3x3[T] {
	var m matrix.Matrix3x3[T]
	m[0][0], m[1][1], m[2][2] = s.s.X, s.s.Y, s.s.Z

	return m
}

// Determinant returns x·y·z.
func (s Scale3x3[T]) Determinant() T {
	return s.s.X * s.s.Y * s.s.Z
}

// HasInverse reports whether every factor is non-zero within tolerance.
func (s Scale3x3[T]) HasInverse() bool {
	return scalar.IsNotZero(s.s.X) && scalar.IsNotZero(s.s.Y) && scalar.IsNotZero(s.s.Z)
}

// Invert returns the reciprocal factors.
// A zero factor violates the contract (ErrZeroScale); it then becomes ±Inf.
func (s Scale3x3[T]) Invert() Scale3x3[T] {
	contract.Check(opScaleInvert, s.HasInverse(), ErrZeroScale)

	return s.reciprocal()
}

// TryInvert is Invert returning ErrZeroScale instead of consulting the mode.
func (s Scale3x3[T]) TryInvert() (Scale3x3[T], error) {
	if !s.HasInverse() {
		return Scale3x3[T]{}, transformErrorf(opScaleTryInvert, ErrZeroScale)
	}

	return s.reciprocal(), nil
}

func (s Scale3x3[T]) reciprocal() Scale3x3[T] {
	return NewScale(1/s.s.X, 1/s.s.Y, 1/s.s.Z)
}

// Apply scales the row vector v component-wise.
func (s Scale3x3[T]) Apply(v vector.Vec3[T]) vector.Vec3[T] { return v.Mul(s.s) }

// Equal compares the factors within tolerance.
func (s Scale3x3[T]) Equal(o Scale3x3[T]) bool { return s.s.Equal(o.s) }

// IsIdentity reports whether every factor is 1 within tolerance.
func (s Scale3x3[T]) IsIdentity() bool { return s.Equal(ScaleIdentity[T]()) }

// String renders the matrix layout M3x3(...).
func (s Scale3x3[T]) String() string { return s.Matrix().String() }

// Mul returns the component-wise product of the factors.
func (s Scale3x3[T]) Mul(o Scale3x3[T]) Scale3x3[T] {
	return Scale3x3[T]{s: s.s.Mul(o.s)}
}

// MulRotation returns s followed by r: row i of r times s_i.
func (s Scale3x3[T]) MulRotation(r Rotation3x3[T]) Transform4x4[T] {
	return Transform4x4[T]{a: composeAffine(vector.Vec3[T]{}, r.m, s.s)}
}

// MulTranslation returns s followed by t.
func (s Scale3x3[T]) MulTranslation(t Translation4x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: affine[T]{block: s.Matrix(), t: t.offset}}
}

// MulTranslation4x4 returns s followed by t.
func (s Scale3x3[T]) MulTranslation4x4(t Translation4x4[T]) Transform4x4[T] {
	return Transform4x4[T]{a: affine[T]{block: s.Matrix(), t: t.offset}}
}

// MulTransform returns s followed by m: block rows scaled, translation kept.
func (s Scale3x3[T]) MulTransform(m Transform4x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: m.a.preScaled(s.s)}
}

// MulTransform4x4 returns s followed by m.
func (s Scale3x3[T]) MulTransform4x4(m Transform4x4[T]) Transform4x4[T] {
	return Transform4x4[T]{a: m.a.preScaled(s.s)}
}
