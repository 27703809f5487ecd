// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/qmath/scalar"
)

// Vec4 is a homogeneous vector. Points carry W = 1, directions W = 0.
type Vec4[T scalar.Float] struct {
	X, Y, Z, W T
}

// V4 is a convenience constructor for Vec4.
func V4[T scalar.Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{X: x, Y: y, Z: z, W: w}
}

// Point returns the homogeneous point (p, 1).
func Point[T scalar.Float](p Vec3[T]) Vec4[T] {
	return p.Vec4(1)
}

// Add returns v + u.
func (v Vec4[T]) Add(u Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X + u.X, Y: v.Y + u.Y, Z: v.Z + u.Z, W: v.W + u.W}
}

// Sub returns v - u.
func (v Vec4[T]) Sub(u Vec4[T]) Vec4[T] {
	return Vec4[T]{X: v.X - u.X, Y: v.Y - u.Y, Z: v.Z - u.Z, W: v.W - u.W}
}

// Scale returns v multiplied by s.
func (v Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Dot returns the four-component dot product.
func (v Vec4[T]) Dot(u Vec4[T]) T {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z + v.W*u.W
}

// XYZ drops the W component.
func (v Vec4[T]) XYZ() Vec3[T] {
	return Vec3[T]{X: v.X, Y: v.Y, Z: v.Z}
}

// Equal compares component-wise with scalar.AreEqual.
func (v Vec4[T]) Equal(u Vec4[T]) bool {
	return v.XYZ().Equal(u.XYZ()) && scalar.AreEqual(v.W, u.W)
}

// Array returns the components in x, y, z, w order.
func (v Vec4[T]) Array() [4]T {
	return [4]T{v.X, v.Y, v.Z, v.W}
}

// String formats the vector as V4(x,y,z,w).
func (v Vec4[T]) String() string {
	return "V4(" + scalar.Format(v.X) + "," + scalar.Format(v.Y) + "," +
		scalar.Format(v.Z) + "," + scalar.Format(v.W) + ")"
}
