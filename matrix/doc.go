// SPDX-License-Identifier: MIT

// Package matrix provides fixed-size dense matrices for 3D math:
// Matrix3x3, Matrix4x4, Matrix4x3 and Matrix3x4.
//
// Every type is a named Go array, generic over scalar.Float:
//
//	type Matrix3x3[T scalar.Float] [3][3]T
//
// so matrices are plain values: the zero value is the zero matrix, assignment
// copies, and m[i][j] addresses row i, column j. Shapes are fixed by type;
// only the products the shapes allow exist as methods, so there is no runtime
// dimension check and no dimension error.
//
// Conventions:
//   - Row vectors on the left: Apply computes v · M.
//   - A.Mul(B) is the ordinary product A·B; applied to a row vector it means
//     "apply A first, then B".
//   - Equal, IsZero and IsIdentity compare with scalar.AreEqual / scalar.IsZero,
//     never with bitwise ==.
//
// Determinant & inverse:
//   - Matrix3x3 uses the direct six-term expansion and the adjugate.
//   - Matrix4x4 shares twelve 2x2 minors (24 binary products) between the
//     determinant and every cofactor.
//   - Invert takes the fast path and reports a singular input through
//     contract.Check (ErrSingular); the result is then ±Inf/NaN.
//     TryInvert returns ErrSingular instead.
//
// Errors:
//   - ErrSingular, ErrDivideByZero, ErrBadShape; match them with errors.Is.
package matrix
