// SPDX-License-Identifier: MIT

// Package qmath is a fixed-size matrix and 3D transformation library for
// engines and tools that need predictable, allocation-free linear algebra.
//
// Everything is organized under five subpackages:
//
//	scalar/     Float constraint, build-time Real precision, tolerance predicates
//	vector/     Vec3 and Vec4 carriers
//	contract/   contract-check mode (ignore, log, panic) and slog logger
//	matrix/     Matrix3x3, Matrix4x4, Matrix4x3, Matrix3x4
//	transform/  Rotation3x3, Scale3x3, Translation4x3/4x4, Transform4x3/4x4
//
// Conventions shared by every package:
//   - Row vectors on the left: p' = p · M. Row 3 of a four-row matrix holds
//     the translation.
//   - A.Mul(B) applies A first, then B.
//   - Comparisons are absolute, with scalar.Epsilon: 1e-6 for float32 and
//     1e-12 for float64.
//   - All types are values. Operations return new values and never mutate
//     their operands.
//
// Quick example:
//
//	m := transform.NewTransform4x3[float64](
//		transform.NewTranslation4x3(1.0, 2, 3),
//		transform.RotationFromAxisAngle(vector.V3(0.0, 0, 1), math.Pi/2),
//		transform.NewScale(2.0, 2, 2),
//	)
//	p := m.ApplyPoint(vector.V3(1.0, 0, 0)) // (1, 4, 3)
//	q := m.Invert().ApplyPoint(p)           // (1, 0, 0)
//
// Build tags:
//   - qmath_single: scalar.Real is float32 instead of float64.
//   - qmath_debug:  contract violations panic by default.
//
// See examples/ for a runnable walkthrough.
package qmath
