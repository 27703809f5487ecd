// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Rotation3x3 is a pure rotation: orthogonal with determinant 1.
// The zero value is not a rotation; start from RotationIdentity or one of
// the constructors.
type Rotation3x3[T scalar.Float] struct {
	m matrix.Matrix3x3[T]
}

// RotationIdentity returns the rotation by zero radians.
func RotationIdentity[T scalar.Float]() Rotation3x3[T] {
	return Rotation3x3[T]{m: matrix.Identity3x3[T]()}
}

// RotationFromEuler builds a rotation from angles in radians about X
// (pitch), Y (yaw) and Z (roll).
//
// The geometric rotation is Rz·Rx·Ry in column-vector notation. Stored for
// row vectors, a vector is rotated about Y first, then X, then Z:
//
//	RotationFromEuler(x, y, z) == Ry(y).Mul(Rx(x)).Mul(Rz(z))
func RotationFromEuler[T scalar.Float](x, y, z T) Rotation3x3[T] {
	cx, sx := scalar.Cos(x), scalar.Sin(x)
	cy, sy := scalar.Cos(y), scalar.Sin(y)
	cz, sz := scalar.Cos(z), scalar.Sin(z)

	return Rotation3x3[T]{m: matrix.Matrix3x3[T]{
		{cz*cy - sz*sx*sy, sz*cy + cz*sx*sy, -cx * sy},
		{-cx * sz, cx * cz, sx},
		{cz*sy + sz*sx*cy, sz*sy - cz*sx*cy, cx * cy},
	}}
}

// RotationFromAxisAngle builds the rotation of angle radians about axis
// using Rodrigues' formula
//
//	R = cosθ·I + (1−cosθ)·eeᵗ + sinθ·K,   v·K = e×v,
//
// where e is axis normalised. Positive angles are counter-clockwise when
// looking down the axis towards the origin:
//
//	RotationFromAxisAngle(V3(0, 0, 1), π/2).Apply(V3(1, 0, 0)) ≈ V3(0, 1, 0)
//
// A zero axis violates the contract (ErrZeroAxis); the result is then NaN.
func RotationFromAxisAngle[T scalar.Float](axis vector.Vec3[T], angle T) Rotation3x3[T] {
	contract.Check(opRotationFromAxisAngle, !axis.IsZero(), ErrZeroAxis)

	return rotationFromUnitAxis(axis.Scale(1/axis.Length()), angle)
}

// TryRotationFromAxisAngle is RotationFromAxisAngle returning ErrZeroAxis
// instead of consulting the contract mode.
func TryRotationFromAxisAngle[T scalar.Float](axis vector.Vec3[T], angle T) (Rotation3x3[T], error) {
	if axis.IsZero() {
		return Rotation3x3[T]{}, transformErrorf(opTryRotationFromAxisAngle, ErrZeroAxis)
	}

	return rotationFromUnitAxis(axis.Scale(1/axis.Length()), angle), nil
}

func rotationFromUnitAxis[T scalar.Float](e vector.Vec3[T], angle T) Rotation3x3[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	k := 1 - c
	x, y, z := e.X, e.Y, e.Z

	return Rotation3x3[T]{m: matrix.Matrix3x3[T]{
		{c + k*x*x, k*x*y + z*s, k*z*x - y*s},
		{k*x*y - z*s, c + k*y*y, k*y*z + x*s},
		{k*z*x + y*s, k*y*z - x*s, c + k*z*z},
	}}
}

// RotationFromMatrix wraps m without any check. The caller guarantees that
// m is orthogonal with determinant 1; every Rotation3x3 method relies on it.
func RotationFromMatrix[T scalar.Float](m matrix.Matrix3x3[T]) Rotation3x3[T] {
	return Rotation3x3[T]{m: m}
}

// TryRotationFromMatrix wraps m after ValidateOrthogonal accepts it.
func TryRotationFromMatrix[T scalar.Float](m matrix.Matrix3x3[T]) (Rotation3x3[T], error) {
	if err := ValidateOrthogonal(m); err != nil {
		return Rotation3x3[T]{}, transformErrorf(opTryRotationFromMatrix, err)
	}

	return Rotation3x3[T]{m: m}, nil
}

// Matrix returns the rotation as a plain 3x3 matrix.
func (r Rotation3x3[T]) Matrix() matrix.Matrix3x3[T] { return r.m }

// Transpose returns rᵗ, which is also r⁻¹.
func (r Rotation3x3[T]) Transpose() Rotation3x3[T] {
	return Rotation3x3[T]{m: r.m.Transpose()}
}

// Invert returns the inverse rotation, i.e. the transpose.
func (r Rotation3x3[T]) Invert() Rotation3x3[T] { return r.Transpose() }

// Determinant is 1 for every rotation.
func (r Rotation3x3[T]) Determinant() T { return 1 }

// Apply rotates the row vector v.
func (r Rotation3x3[T]) Apply(v vector.Vec3[T]) vector.Vec3[T] { return r.m.Apply(v) }

// Equal compares element-wise within tolerance.
func (r Rotation3x3[T]) Equal(o Rotation3x3[T]) bool { return r.m.Equal(o.m) }

// IsIdentity reports whether r is the zero rotation within tolerance.
func (r Rotation3x3[T]) IsIdentity() bool { return r.m.IsIdentity() }

// String renders the matrix layout M3x3(...).
func (r Rotation3x3[T]) String() string { return r.m.String() }

// Mul returns the rotation r followed by o.
func (r Rotation3x3[T]) Mul(o Rotation3x3[T]) Rotation3x3[T] {
	return Rotation3x3[T]{m: r.m.Mul(o.m)}
}

// MulScale returns r followed by s: column j of r times s_j.
func (r Rotation3x3[T]) MulScale(s Scale3x3[T]) Transform4x4[T] {
	return Transform4x4[T]{a: affine[T]{block: r.m}.scaled(s.s)}
}

// MulTranslation returns r followed by t.
func (r Rotation3x3[T]) MulTranslation(t Translation4x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: affine[T]{block: r.m, t: t.offset}}
}

// MulTranslation4x4 returns r followed by t.
func (r Rotation3x3[T]) MulTranslation4x4(t Translation4x4[T]) Transform4x4[T] {
	return Transform4x4[T]{a: affine[T]{block: r.m, t: t.offset}}
}

// MulTransform returns r followed by m.
func (r Rotation3x3[T]) MulTransform(m Transform4x3[T]) Transform4x3[T] {
	return Transform4x3[T]{a: m.a.preRotated(r.m)}
}

// MulTransform4x4 returns r followed by m.
func (r Rotation3x3[T]) MulTransform4x4(m Transform4x4[T]) Transform4x4[T] {
	return Transform4x4[T]{a: m.a.preRotated(r.m)}
}

// Euler returns angles (x, y, z) in radians such that
// RotationFromEuler(x, y, z) reproduces r.
//
// Ranges: x in [−π/2, π/2], y and z in [−π, π]. When |x| = π/2 (gimbal
// lock) only z−y or z+y is determined; y is reported as 0.
func (r Rotation3x3[T]) Euler() (x, y, z T) {
	m := &r.m
	limit := 1 - scalar.Epsilon[T]()

	switch sx := m[1][2]; {
	case sx < limit && sx > -limit:
		x = scalar.Asin(sx)
		y = scalar.Atan2(-m[0][2], m[2][2])
		z = scalar.Atan2(-m[1][0], m[1][1])
	case sx >= limit:
		x = scalar.HalfPi
		z = scalar.Atan2(m[0][1], m[0][0])
	default:
		x = -scalar.HalfPi
		z = scalar.Atan2(m[0][1], m[0][0])
	}

	return x, y, z
}

// AxisAngle returns a unit axis and an angle in [0, π] describing r.
// Implementation:
//   - Stage 1: cosθ = (trace − 1) / 2 and the skew part
//     (m12 − m21, m20 − m02, m01 − m10) = 2·sinθ·axis.
//   - Stage 2: angle = atan2(sinθ, cosθ), accurate across the whole range.
//   - Stage 3: angle ≈ 0 returns the zero axis.
//   - Stage 4: past a quarter turn the skew part shrinks towards zero, so
//     the axis comes from the symmetric part, signed to agree with the skew.
//   - Stage 5: otherwise the axis is the skew part divided by 2·sinθ.
func (r Rotation3x3[T]) AxisAngle() (axis vector.Vec3[T], angle T) {
	m := &r.m
	c := scalar.Clamp((m[0][0]+m[1][1]+m[2][2]-1)/2, -1, 1)
	skew := vector.Vec3[T]{
		X: m[1][2] - m[2][1],
		Y: m[2][0] - m[0][2],
		Z: m[0][1] - m[1][0],
	}
	sin := skew.Length() / 2
	angle = scalar.Atan2(sin, c)

	if scalar.IsZero(angle) {
		return vector.Vec3[T]{}, 0
	}
	if c < 0 {
		axis = r.symmetricAxis(c).Normalize()
		if axis.Dot(skew) < 0 {
			axis = axis.Scale(-1)
		}
		return axis, angle
	}

	return skew.Scale(1 / (2 * sin)), angle
}

// symmetricAxis reads the axis off the symmetric part
// (m + mᵀ)/2 = cosθ·I + (1 − cosθ)·axis·axisᵀ, starting from the largest
// diagonal term. The sign is arbitrary. Requires cosθ < 0.
func (r Rotation3x3[T]) symmetricAxis(c T) vector.Vec3[T] {
	m := &r.m
	k := 1 - c

	xx := (m[0][0] - c) / k
	yy := (m[1][1] - c) / k
	zz := (m[2][2] - c) / k
	xy := (m[0][1] + m[1][0]) / (2 * k)
	xz := (m[0][2] + m[2][0]) / (2 * k)
	yz := (m[1][2] + m[2][1]) / (2 * k)

	switch {
	case xx >= yy && xx >= zz:
		x := scalar.Sqrt(xx)
		return vector.Vec3[T]{X: x, Y: xy / x, Z: xz / x}
	case yy >= zz:
		y := scalar.Sqrt(yy)
		return vector.Vec3[T]{X: xy / y, Y: y, Z: yz / y}
	default:
		z := scalar.Sqrt(zz)
		return vector.Vec3[T]{X: xz / z, Y: yz / z, Z: z}
	}
}
