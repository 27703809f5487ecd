// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Transform4x4 is the homogeneous 4x4 layout of a scale · rotation ·
// translation transform. Column 3 is (0,0,0,1) by construction and is not
// stored; results are identical to Transform4x3 except for the shape of
// Matrix and Apply.
type Transform4x4[T scalar.Float] struct {
	a affine[T]
}

// Transform4x4Identity returns the identity transform.
func Transform4x4Identity[T scalar.Float]() Transform4x4[T] {
	return Transform4x4[T]{a: identityAffine[T]()}
}

// NewTransform4x4 composes s, then r, then t.
func NewTransform4x4[T scalar.Float](t Translation[T], r Rotation3x3[T], s Scale3x3[T]) Transform4x4[T] {
	return Transform4x4[T]{a: composeAffine(t.Offset(), r.m, s.s)}
}

// ComposeTransform4x4 is NewTransform4x4 taking the offset and factors as
// plain vectors.
func ComposeTransform4x4[T scalar.Float](offset vector.Vec3[T], r Rotation3x3[T], scale vector.Vec3[T]) Transform4x4[T] {
	return Transform4x4[T]{a: composeAffine(offset, r.m, scale)}
}

// Transform4x4FromMatrix wraps the first three columns of m without checks;
// column 3 is discarded and reads back as (0,0,0,1).
func Transform4x4FromMatrix[T scalar.Float](m matrix.Matrix4x4[T]) Transform4x4[T] {
	return Transform4x4[T]{a: fromRows4(m[0][:], m[1][:], m[2][:], m[3][:])}
}

func (m Transform4x4[T]) core() affine[T] { return m.a }

// Matrix returns the 4x4 matrix form.
func (m Transform4x4[T]) Matrix() matrix.Matrix4x4[T] { return m.a.matrix4x4() }

// Matrix4x4 is Matrix.
func (m Transform4x4[T]) Matrix4x4() matrix.Matrix4x4[T] { return m.a.matrix4x4() }

// Transform4x3 narrows m to the 4x3 layout.
func (m Transform4x4[T]) Transform4x3() Transform4x3[T] { return Transform4x3[T](m) }

// Mul returns m followed by o.
func (m Transform4x4[T]) Mul(o Transformation[T]) Transform4x4[T] {
	return Transform4x4[T]{a: m.a.mul(o.core())}
}

// MulTranslation returns m followed by t.
func (m Transform4x4[T]) MulTranslation(t Translation[T]) Transform4x4[T] {
	return Transform4x4[T]{a: m.a.translated(t.Offset())}
}

// MulRotation returns m followed by r.
func (m Transform4x4[T]) MulRotation(r Rotation3x3[T]) Transform4x4[T] {
	return Transform4x4[T]{a: m.a.rotated(r.m)}
}

// MulScale returns m followed by s.
func (m Transform4x4[T]) MulScale(s Scale3x3[T]) Transform4x4[T] {
	return Transform4x4[T]{a: m.a.scaled(s.s)}
}

// Determinant returns the determinant of the upper 3x3 block.
func (m Transform4x4[T]) Determinant() T { return m.a.determinant() }

// HasInverse reports whether the determinant is non-zero within tolerance.
func (m Transform4x4[T]) HasInverse() bool { return scalar.IsNotZero(m.a.determinant()) }

// Invert returns m⁻¹. A singular m violates the contract (matrix.ErrSingular).
func (m Transform4x4[T]) Invert() Transform4x4[T] {
	if m.a == identityAffine[T]() {
		return m
	}
	det := m.a.determinant()
	contract.Check(opInvert4x4, scalar.IsNotZero(det), matrix.ErrSingular)

	return Transform4x4[T]{a: m.a.inverse(1 / det)}
}

// TryInvert is Invert returning matrix.ErrSingular.
func (m Transform4x4[T]) TryInvert() (Transform4x4[T], error) {
	det := m.a.determinant()
	if scalar.IsZero(det) {
		return Transform4x4[T]{}, transformErrorf(opTryInvert4x4, matrix.ErrSingular)
	}

	return Transform4x4[T]{a: m.a.inverse(1 / det)}, nil
}

// ScaleFactors returns the length of each block row.
func (m Transform4x4[T]) ScaleFactors() vector.Vec3[T] { return m.a.scaleFactors() }

// Scale returns ScaleFactors as a Scale3x3.
func (m Transform4x4[T]) Scale() Scale3x3[T] { return Scale3x3[T]{s: m.a.scaleFactors()} }

// Rotation returns the block rows divided by their lengths.
func (m Transform4x4[T]) Rotation() Rotation3x3[T] {
	_, r, _ := m.Decompose()
	return r
}

// Translation returns row 3.
func (m Transform4x4[T]) Translation() Translation4x4[T] {
	return Translation4x4[T]{offset: m.a.t}
}

// Euler returns RotationFromEuler angles of the rotation part.
func (m Transform4x4[T]) Euler() (x, y, z T) { return m.Rotation().Euler() }

// AxisAngle returns the axis and angle of the rotation part.
func (m Transform4x4[T]) AxisAngle() (vector.Vec3[T], T) { return m.Rotation().AxisAngle() }

// Decompose splits m into translation, rotation and scale the same way as
// Transform4x3.Decompose, with the same positive-scale assumption.
func (m Transform4x4[T]) Decompose() (Translation4x4[T], Rotation3x3[T], Scale3x3[T]) {
	s := m.a.scaleFactors()
	contract.Check(opDecompose4x4, nonZero(s), ErrZeroScale)

	return Translation4x4[T]{offset: m.a.t}, Rotation3x3[T]{m: m.a.rotationWith(s)}, Scale3x3[T]{s: s}
}

// TryDecompose is Decompose with the block checked by ValidateNoShear first:
// a zero-length row returns ErrZeroScale, non-orthogonal rows ErrShear.
func (m Transform4x4[T]) TryDecompose() (Translation4x4[T], Rotation3x3[T], Scale3x3[T], error) {
	if err := ValidateNoShear(m.a.block); err != nil {
		return Translation4x4[T]{}, Rotation3x3[T]{}, Scale3x3[T]{}, transformErrorf(opTryDecompose4x4, err)
	}
	s := m.a.scaleFactors()

	return Translation4x4[T]{offset: m.a.t}, Rotation3x3[T]{m: m.a.rotationWith(s)}, Scale3x3[T]{s: s}, nil
}

// DecomposeTransforms returns the factors of Decompose as transforms, such
// that scale.Mul(rotation).Mul(translation) ≈ m.
func (m Transform4x4[T]) DecomposeTransforms() (translation, rotation, scale Transform4x4[T]) {
	t3, r3, s3 := m.Transform4x3().DecomposeTransforms()
	return t3.Transform4x4(), r3.Transform4x4(), s3.Transform4x4()
}

// SwitchHandConvention converts between left- and right-handed coordinate
// systems. A zero scale factor violates the contract (ErrZeroScale).
func (m Transform4x4[T]) SwitchHandConvention() Transform4x4[T] {
	s := m.a.scaleFactors()
	contract.Check(opSwitchHand4x4, nonZero(s), ErrZeroScale)

	return Transform4x4[T]{a: m.a.switchHand(s)}
}

// ApplyPoint returns p·M with an implicit W = 1.
func (m Transform4x4[T]) ApplyPoint(p vector.Vec3[T]) vector.Vec3[T] { return m.a.applyPoint(p) }

// ApplyVector returns v·M with an implicit W = 0.
func (m Transform4x4[T]) ApplyVector(v vector.Vec3[T]) vector.Vec3[T] { return m.a.applyVector(v) }

// Apply returns v·M for a homogeneous v; W passes through unchanged.
func (m Transform4x4[T]) Apply(v vector.Vec4[T]) vector.Vec4[T] {
	return m.a.applyVector(v.XYZ()).Add(m.a.t.Scale(v.W)).Vec4(v.W)
}

// Equal compares element-wise within tolerance.
func (m Transform4x4[T]) Equal(o Transform4x4[T]) bool { return m.a.equal(o.a) }

// IsIdentity reports whether m is the identity within tolerance.
func (m Transform4x4[T]) IsIdentity() bool { return m.a.isIdentity() }

// String renders the matrix layout M4x4(...).
func (m Transform4x4[T]) String() string { return m.Matrix().String() }
