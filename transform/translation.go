// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Translation is implemented by Translation4x3 and Translation4x4 only.
type Translation[T scalar.Float] interface {
	Transformation[T]

	// Offset returns (tx, ty, tz), the row 3 of the matrix form.
	Offset() vector.Vec3[T]

	isTranslation()
}

// Translation4x3 is a pure translation laid out as a 4x3 matrix:
// identity upper block, offset in row 3.
type Translation4x3[T scalar.Float] struct {
	offset vector.Vec3[T]
}

// Translation4x4 is a pure translation laid out as a 4x4 matrix:
// identity upper block, offset in row 3, column 3 = (0,0,0,1).
type Translation4x4[T scalar.Float] struct {
	offset vector.Vec3[T]
}

// NewTranslation4x3 returns the translation by (x, y, z).
func NewTranslation4x3[T scalar.Float](x, y, z T) Translation4x3[T] {
	return Translation4x3[T]{offset: vector.Vec3[T]{X: x, Y: y, Z: z}}
}

// Translation4x3FromVector returns the translation by v.
func Translation4x3FromVector[T scalar.Float](v vector.Vec3[T]) Translation4x3[T] {
	return Translation4x3[T]{offset: v}
}

// NewTranslation4x4 returns the translation by (x, y, z).
func NewTranslation4x4[T scalar.Float](x, y, z T) Translation4x4[T] {
	return Translation4x4[T]{offset: vector.Vec3[T]{X: x, Y: y, Z: z}}
}

// Translation4x4FromVector returns the translation by v.
func Translation4x4FromVector[T scalar.Float](v vector.Vec3[T]) Translation4x4[T] {
	return Translation4x4[T]{offset: v}
}

func (Translation4x3[T]) isTranslation() {}
func (Translation4x4[T]) isTranslation() {}

func (t Translation4x3[T]) core() affine[T] {
	return identityAffine[T]().translated(t.offset)
}

func (t Translation4x4[T]) core() affine[T] {
	return identityAffine[T]().translated(t.offset)
}

// Offset returns the translation vector.
func (t Translation4x3[T]) Offset() vector.Vec3[T] { return t.offset }

// Offset returns the translation vector.
func (t Translation4x4[T]) Offset() vector.Vec3[T] { return t.offset }

// Matrix returns the 4x3 matrix form.
func (t Translation4x3[T]) Matrix() matrix.Matrix4x3[T] { return t.core().matrix4x3() }

// Matrix returns the 4x4 matrix form.
func (t Translation4x4[T]) Matrix() matrix.Matrix4x4[T] { return t.core().matrix4x4() }

// Matrix4x4 returns the 4x4 matrix form.
func (t Translation4x3[T]) Matrix4x4() matrix.Matrix4x4[T] { return t.core().matrix4x4() }

// Matrix4x4 returns the 4x4 matrix form.
func (t Translation4x4[T]) Matrix4x4() matrix.Matrix4x4[T] { return t.core().matrix4x4() }

// Invert returns the opposite translation.
func (t Translation4x3[T]) Invert() Translation4x3[T] {
	return Translation4x3[T]{offset: t.offset.Neg()}
}

// Invert returns the opposite translation.
func (t Translation4x4[T]) Invert() Translation4x4[T] {
	return Translation4x4[T]{offset: t.offset.Neg()}
}

// Determinant is 1 for every translation.
func (Translation4x3[T]) Determinant() T { return 1 }

// Determinant is 1 for every translation.
func (Translation4x4[T]) Determinant() T { return 1 }

// HasInverse is always true.
func (Translation4x3[T]) HasInverse() bool { return true }

// HasInverse is always true.
func (Translation4x4[T]) HasInverse() bool { return true }

// ApplyPoint translates p.
func (t Translation4x3[T]) ApplyPoint(p vector.Vec3[T]) vector.Vec3[T] { return p.Add(t.offset) }

// ApplyPoint translates p.
func (t Translation4x4[T]) ApplyPoint(p vector.Vec3[T]) vector.Vec3[T] { return p.Add(t.offset) }

// Apply returns v·M for a homogeneous v; W scales the offset.
func (t Translation4x3[T]) Apply(v vector.Vec4[T]) vector.Vec3[T] {
	return v.XYZ().Add(t.offset.Scale(v.W))
}

// Apply returns v·M for a homogeneous v.
func (t Translation4x4[T]) Apply(v vector.Vec4[T]) vector.Vec4[T] {
	return v.XYZ().Add(t.offset.Scale(v.W)).Vec4(v.W)
}

// Equal compares offsets within tolerance.
func (t Translation4x3[T]) Equal(o Translation4x3[T]) bool { return t.offset.Equal(o.offset) }

// Equal compares offsets within tolerance.
func (t Translation4x4[T]) Equal(o Translation4x4[T]) bool { return t.offset.Equal(o.offset) }

// IsIdentity reports whether the offset is zero within tolerance.
func (t Translation4x3[T]) IsIdentity() bool { return t.offset.IsZero() }

// IsIdentity reports whether the offset is zero within tolerance.
func (t Translation4x4[T]) IsIdentity() bool { return t.offset.IsZero() }

// String renders the matrix layout M4x3(...).
func (t Translation4x3[T]) String() string { return t.Matrix().String() }

// String renders the matrix layout M4x4(...).
func (t Translation4x4[T]) String() string { return t.Matrix().String() }

// Mul adds the offsets. Translations commute.
func (t Translation4x3[T]) Mul(o Translation[T]) Translation4x3[T] {
	return Translation4x3[T]{offset: t.offset.Add(o.Offset())}
}

// Mul adds the offsets. Translations commute.
func (t Translation4x4[T]) Mul(o Translation[T]) Translation4x4[T] {
	return Translation4x4[T]{offset: t.offset.Add(o.Offset())}
}

// MulScale returns t followed by s: block diag(s), offset t∘s.
func (t Translation4x3[T]) MulScale(s Scale3x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: t.core().scaled(s.s)}
}

// MulScale returns t followed by s: block diag(s), offset t∘s.
func (t Translation4x4[T]) MulScale(s Scale3x3[T]) Transform4x4[T] {
	return Transform4x4[T]{a: t.core().scaled(s.s)}
}

// MulRotation returns t followed by r: block r, offset t·r.
func (t Translation4x3[T]) MulRotation(r Rotation3x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: affine[T]{block: r.m, t: r.m.Apply(t.offset)}}
}

// MulRotation returns t followed by r: block r, offset t·r.
func (t Translation4x4[T]) MulRotation(r Rotation3x3[T]) Transform4x4[T] {
	return Transform4x4[T]{a: affine[T]{block: r.m, t: r.m.Apply(t.offset)}}
}

// MulTransform returns t followed by m: block kept, offset t·block + m.t.
func (t Translation4x3[T]) MulTransform(m Transform4x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: affine[T]{block: m.a.block, t: m.a.applyPoint(t.offset)}}
}

// MulTransform returns t followed by m: block kept, offset t·block + m.t.
func (t Translation4x4[T]) MulTransform(m Transform4x4[T]) Transform4x4[T] {
	return Transform4x4[T]{a: affine[T]{block: m.a.block, t: m.a.applyPoint(t.offset)}}
}
