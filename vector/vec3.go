// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/qmath/scalar"
)

// Vec3 is a three-component vector or point.
type Vec3[T scalar.Float] struct {
	X, Y, Z T
}

// V3 is a convenience constructor for Vec3.
func V3[T scalar.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns v + w.
func (v Vec3[T]) Add(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3[T]) Sub(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v multiplied by s.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Mul returns the component-wise product.
func (v Vec3[T]) Mul(w Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X * w.X, Y: v.Y * w.Y, Z: v.Z * w.Z}
}

// Dot returns the dot product.
func (v Vec3[T]) Dot(w Vec3[T]) T {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the right-handed cross product v × w.
func (v Vec3[T]) Cross(w Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the Euclidean length.
func (v Vec3[T]) Length() T {
	return scalar.Hypot3(v.X, v.Y, v.Z)
}

// LengthSq returns the squared length.
func (v Vec3[T]) LengthSq() T {
	return v.Dot(v)
}

// Normalize returns a unit vector in the same direction.
// The zero vector (within tolerance) normalizes to itself.
func (v Vec3[T]) Normalize() Vec3[T] {
	l := v.Length()
	if scalar.IsZero(l) {
		return v
	}

	return v.Scale(1 / l)
}

// IsZero reports whether every component is zero within tolerance.
func (v Vec3[T]) IsZero() bool {
	return scalar.IsZero(v.X) && scalar.IsZero(v.Y) && scalar.IsZero(v.Z)
}

// Equal compares component-wise with scalar.AreEqual.
func (v Vec3[T]) Equal(w Vec3[T]) bool {
	return scalar.AreEqual(v.X, w.X) && scalar.AreEqual(v.Y, w.Y) && scalar.AreEqual(v.Z, w.Z)
}

// Vec4 extends v with the given w component.
func (v Vec3[T]) Vec4(w T) Vec4[T] {
	return Vec4[T]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Array returns the components in x, y, z order.
func (v Vec3[T]) Array() [3]T {
	return [3]T{v.X, v.Y, v.Z}
}

// String formats the vector as V3(x,y,z).
func (v Vec3[T]) String() string {
	return "V3(" + scalar.Format(v.X) + "," + scalar.Format(v.Y) + "," + scalar.Format(v.Z) + ")"
}
