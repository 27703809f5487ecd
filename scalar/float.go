// SPDX-License-Identifier: MIT

package scalar

import (
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the set of element types accepted by vectors and matrices.
type Float interface {
	constraints.Float
}

// Tolerances per precision.
const (
	Epsilon32 = 1e-6  // tolerance for 32-bit element types
	Epsilon64 = 1e-12 // tolerance for 64-bit element types
)

// Frequently used literals.
const (
	HalfPi = math.Pi / 2
	Pi     = math.Pi
	TwoPi  = 2 * math.Pi
)

// bitSize reports 32 or 64 for the underlying representation of T.
func bitSize[T Float]() int {
	var z T
	return int(unsafe.Sizeof(z)) * 8
}

// Epsilon returns the comparison tolerance for T.
func Epsilon[T Float]() T {
	if bitSize[T]() == 32 {
		return Epsilon32
	}

	return Epsilon64
}

// Abs returns |v| without a float64 round-trip for the sign test.
func Abs[T Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// AreEqual reports whether a and b differ by at most Epsilon[T]().
func AreEqual[T Float](a, b T) bool { return AreEqualWithin(a, b, Epsilon[T]()) }

// AreEqualWithin reports whether a and b differ by at most tol.
func AreEqualWithin[T Float](a, b, tol T) bool {
	return Abs(a-b) <= tol
}

// AreNotEqual is the negation of AreEqual.
func AreNotEqual[T Float](a, b T) bool { return !AreEqual(a, b) }

// IsZero reports whether v lies in [-eps, +eps].
func IsZero[T Float](v T) bool { return IsZeroWithin(v, Epsilon[T]()) }

// IsZeroWithin reports whether v lies in [-tol, +tol].
func IsZeroWithin[T Float](v, tol T) bool { return v <= tol && v >= -tol }

// IsNotZero is the negation of IsZero.
func IsNotZero[T Float](v T) bool { return !IsZero(v) }

// IsGreaterThan reports a > b by more than the tolerance.
func IsGreaterThan[T Float](a, b T) bool { return a-b > Epsilon[T]() }

// IsLessThan reports a < b by more than the tolerance.
func IsLessThan[T Float](a, b T) bool { return b-a > Epsilon[T]() }

// IsGreaterOrEqual reports a >= b allowing for the tolerance.
func IsGreaterOrEqual[T Float](a, b T) bool { return b-a <= Epsilon[T]() }

// IsLessOrEqual reports a <= b allowing for the tolerance.
func IsLessOrEqual[T Float](a, b T) bool { return a-b <= Epsilon[T]() }

// IsNaNOrInf reports whether v is NaN or ±Inf.
func IsNaNOrInf[T Float](v T) bool {
	f := float64(v)
	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Clamp limits v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Sqrt evaluates in float64 and converts back to T.
func Sqrt[T Float](v T) T { return T(math.Sqrt(float64(v))) }

// Sin evaluates in float64 and converts back to T.
func Sin[T Float](v T) T { return T(math.Sin(float64(v))) }

// Cos evaluates in float64 and converts back to T.
func Cos[T Float](v T) T { return T(math.Cos(float64(v))) }

// Acos evaluates in float64 and converts back to T.
func Acos[T Float](v T) T { return T(math.Acos(float64(v))) }

// Asin evaluates in float64 and converts back to T.
func Asin[T Float](v T) T { return T(math.Asin(float64(v))) }

// Atan2 evaluates in float64 and converts back to T.
func Atan2[T Float](y, x T) T { return T(math.Atan2(float64(y), float64(x))) }

// Hypot3 returns the Euclidean length of (x, y, z).
func Hypot3[T Float](x, y, z T) T { return Sqrt(x*x + y*y + z*z) }

// DegreesToRadians converts an angle in degrees to radians.
func DegreesToRadians[T Float](deg T) T { return deg * T(math.Pi/180) }

// RadiansToDegrees converts an angle in radians to degrees.
func RadiansToDegrees[T Float](rad T) T { return rad * T(180/math.Pi) }

// Format renders v in the shortest form that round-trips at T's precision.
// Negative zero is printed as "0" so identical matrices print identically.
func Format[T Float](v T) string {
	if v == 0 {
		return "0"
	}

	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[T]())
}
