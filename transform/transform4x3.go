// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Transform4x3 is a scale · rotation · translation transform laid out as a
// 4x3 matrix. The fourth column is implicitly (0,0,0,1).
// The zero value maps every point to the origin; start from
// Transform4x3Identity or a constructor.
type Transform4x3[T scalar.Float] struct {
	a affine[T]
}

// Transform4x3Identity returns the identity transform.
func Transform4x3Identity[T scalar.Float]() Transform4x3[T] {
	return Transform4x3[T]{a: identityAffine[T]()}
}

// NewTransform4x3 composes s, then r, then t:
// row_i(block) = s_i · row_i(r), row 3 = t.Offset().
func NewTransform4x3[T scalar.Float](t Translation[T], r Rotation3x3[T], s Scale3x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: composeAffine(t.Offset(), r.m, s.s)}
}

// ComposeTransform4x3 is NewTransform4x3 taking the offset and factors as
// plain vectors.
func ComposeTransform4x3[T scalar.Float](offset vector.Vec3[T], r Rotation3x3[T], scale vector.Vec3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: composeAffine(offset, r.m, scale)}
}

// Transform4x3FromMatrix wraps m without checks. The result is meaningful
// only if m really is a scale · rotation · translation product; Decompose
// and SwitchHandConvention are undefined otherwise.
func Transform4x3FromMatrix[T scalar.Float](m matrix.Matrix4x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: fromRows4(m[0][:], m[1][:], m[2][:], m[3][:])}
}

func (m Transform4x3[T]) core() affine[T] { return m.a }

// Matrix returns the 4x3 matrix form.
func (m Transform4x3[T]) Matrix() matrix.Matrix4x3[T] { return m.a.matrix4x3() }

// Matrix4x4 returns the homogeneous 4x4 form.
func (m Transform4x3[T]) Matrix4x4() matrix.Matrix4x4[T] { return m.a.matrix4x4() }

// Transform4x4 widens m to the 4x4 layout.
func (m Transform4x3[T]) Transform4x4() Transform4x4[T] { return Transform4x4[T](m) }

// Mul returns m followed by o: block product, translation m.t·o.block + o.t.
func (m Transform4x3[T]) Mul(o Transformation[T]) Transform4x3[T] {
	return Transform4x3[T]{a: m.a.mul(o.core())}
}

// MulTranslation returns m followed by t: offsets add.
func (m Transform4x3[T]) MulTranslation(t Translation[T]) Transform4x3[T] {
	return Transform4x3[T]{a: m.a.translated(t.Offset())}
}

// MulRotation returns m followed by r: block and translation rotated.
func (m Transform4x3[T]) MulRotation(r Rotation3x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: m.a.rotated(r.m)}
}

// MulScale returns m followed by s: each column, translation included,
// times its factor.
func (m Transform4x3[T]) MulScale(s Scale3x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: m.a.scaled(s.s)}
}

// Determinant returns the determinant of the upper 3x3 block, which equals
// the determinant of the full homogeneous matrix.
func (m Transform4x3[T]) Determinant() T { return m.a.determinant() }

// HasInverse reports whether the determinant is non-zero within tolerance.
func (m Transform4x3[T]) HasInverse() bool { return scalar.IsNotZero(m.a.determinant()) }

// Invert returns m⁻¹ from twelve shared products, never computing the
// constant column. A singular m violates the contract (matrix.ErrSingular).
func (m Transform4x3[T]) Invert() Transform4x3[T] {
	if m.a == identityAffine[T]() {
		return m
	}
	det := m.a.determinant()
	contract.Check(opInvert4x3, scalar.IsNotZero(det), matrix.ErrSingular)

	return Transform4x3[T]{a: m.a.inverse(1 / det)}
}

// TryInvert is Invert returning matrix.ErrSingular instead of consulting
// the contract mode.
func (m Transform4x3[T]) TryInvert() (Transform4x3[T], error) {
	det := m.a.determinant()
	if scalar.IsZero(det) {
		return Transform4x3[T]{}, transformErrorf(opTryInvert4x3, matrix.ErrSingular)
	}

	return Transform4x3[T]{a: m.a.inverse(1 / det)}, nil
}

// ScaleFactors returns the length of each block row.
func (m Transform4x3[T]) ScaleFactors() vector.Vec3[T] { return m.a.scaleFactors() }

// Scale returns ScaleFactors as a Scale3x3.
func (m Transform4x3[T]) Scale() Scale3x3[T] { return Scale3x3[T]{s: m.a.scaleFactors()} }

// Rotation returns the block rows divided by their lengths.
// A zero-length row violates the contract (ErrZeroScale).
func (m Transform4x3[T]) Rotation() Rotation3x3[T] {
	_, r, _ := m.Decompose()
	return r
}

// Translation returns row 3.
func (m Transform4x3[T]) Translation() Translation4x3[T] {
	return Translation4x3[T]{offset: m.a.t}
}

// Euler returns RotationFromEuler angles of the rotation part.
func (m Transform4x3[T]) Euler() (x, y, z T) { return m.Rotation().Euler() }

// AxisAngle returns the axis and angle of the rotation part.
func (m Transform4x3[T]) AxisAngle() (vector.Vec3[T], T) { return m.Rotation().AxisAngle() }

// Decompose splits m into translation, rotation and scale.
// Implementation:
//   - Stage 1: scale = Euclidean length of each block row.
//   - Stage 2: rotation = each block row divided by its scale; a zero
//     factor violates the contract (ErrZeroScale).
//   - Stage 3: translation = row 3.
//
// Behavior highlights:
//   - Assumes no shear and positive scale. A negative factor comes back
//     positive with the sign folded into the rotation, which is then
//     improper (det −1).
func (m Transform4x3[T]) Decompose() (Translation4x3[T], Rotation3x3[T], Scale3x3[T]) {
	s := m.a.scaleFactors()
	contract.Check(opDecompose4x3, nonZero(s), ErrZeroScale)

	return Translation4x3[T]{offset: m.a.t}, Rotation3x3[T]{m: m.a.rotationWith(s)}, Scale3x3[T]{s: s}
}

// TryDecompose is Decompose with the block checked by ValidateNoShear first:
// a zero-length row returns ErrZeroScale and non-orthogonal rows return
// ErrShear. Negative scale still goes undetected.
func (m Transform4x3[T]) TryDecompose() (Translation4x3[T], Rotation3x3[T], Scale3x3[T], error) {
	if err := ValidateNoShear(m.a.block); err != nil {
		return Translation4x3[T]{}, Rotation3x3[T]{}, Scale3x3[T]{}, transformErrorf(opTryDecompose4x3, err)
	}
	s := m.a.scaleFactors()

	return Translation4x3[T]{offset: m.a.t}, Rotation3x3[T]{m: m.a.rotationWith(s)}, Scale3x3[T]{s: s}, nil
}

// DecomposeTransforms returns the factors of Decompose, each as a
// Transform4x3, such that scale.Mul(rotation).Mul(translation) ≈ m.
func (m Transform4x3[T]) DecomposeTransforms() (translation, rotation, scale Transform4x3[T]) {
	t, r, s := m.Decompose()
	id := identityAffine[T]()

	translation = Transform4x3[T]{a: id.translated(t.offset)}
	rotation = Transform4x3[T]{a: affine[T]{block: r.m}}
	scale = Transform4x3[T]{a: id.preScaled(s.s)}

	return translation, rotation, scale
}

// SwitchHandConvention converts between left- and right-handed coordinate
// systems: the rotation is transposed while every row keeps its scale, and
// the z translation changes sign. Applying it twice restores m.
// A zero scale factor violates the contract (ErrZeroScale).
func (m Transform4x3[T]) SwitchHandConvention() Transform4x3[T] {
	s := m.a.scaleFactors()
	contract.Check(opSwitchHand4x3, nonZero(s), ErrZeroScale)

	return Transform4x3[T]{a: m.a.switchHand(s)}
}

// ApplyPoint returns p·M with an implicit W = 1.
func (m Transform4x3[T]) ApplyPoint(p vector.Vec3[T]) vector.Vec3[T] { return m.a.applyPoint(p) }

// ApplyVector returns v·M with an implicit W = 0; translation is ignored.
func (m Transform4x3[T]) ApplyVector(v vector.Vec3[T]) vector.Vec3[T] { return m.a.applyVector(v) }

// Apply returns v·M for a homogeneous v.
func (m Transform4x3[T]) Apply(v vector.Vec4[T]) vector.Vec3[T] {
	return m.a.applyVector(v.XYZ()).Add(m.a.t.Scale(v.W))
}

// Equal compares element-wise within tolerance.
func (m Transform4x3[T]) Equal(o Transform4x3[T]) bool { return m.a.equal(o.a) }

// IsIdentity reports whether m is the identity within tolerance.
func (m Transform4x3[T]) IsIdentity() bool { return m.a.isIdentity() }

// String renders the matrix layout M4x3(...).
func (m Transform4x3[T]) String() string { return m.Matrix().String() }

func nonZero[T scalar.Float](s vector.Vec3[T]) bool {
	return scalar.IsNotZero(s.X) && scalar.IsNotZero(s.Y) && scalar.IsNotZero(s.Z)
}
