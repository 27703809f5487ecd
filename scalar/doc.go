// SPDX-License-Identifier: MIT

// Package scalar holds the floating-point vocabulary shared by every qmath
// package: the Float constraint, the build-time Real precision, and the
// tolerance predicates used instead of exact == on floats.
//
// Tolerance policy:
//   - Epsilon[T]() is 1e-6 for 32-bit types and 1e-12 for 64-bit types.
//   - All comparisons are absolute: |a-b| <= eps counts as equal.
//   - Within variants accept an explicit non-negative tolerance.
//
// Precision:
//
//	go build                    // scalar.Real == float64
//	go build -tags qmath_single // scalar.Real == float32
package scalar
