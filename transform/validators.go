// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// ValidateOrthogonal returns ErrNotOrthogonal unless m·mᵗ ≈ I and
// det(m) ≈ 1. Reflections (det −1) are rejected.
func ValidateOrthogonal[T scalar.Float](m matrix.Matrix3x3[T]) error {
	if !m.Mul(m.Transpose()).IsIdentity() || scalar.AreNotEqual(m.Determinant(), 1) {
		return ErrNotOrthogonal
	}

	return nil
}

// ValidateDiagonal returns ErrNotDiagonal if any off-diagonal entry of m is
// non-zero within tolerance.
func ValidateDiagonal[T scalar.Float](m matrix.Matrix3x3[T]) error {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j && scalar.IsNotZero(m[i][j]) {
				return ErrNotDiagonal
			}
		}
	}

	return nil
}

// ValidateNoShear checks that block splits into scale · rotation.
// It returns ErrZeroScale for a zero-length row and ErrShear when the
// normalised rows are not pairwise orthogonal.
func ValidateNoShear[T scalar.Float](block matrix.Matrix3x3[T]) error {
	var rows [3]vector.Vec3[T]
	for i := range rows {
		r := block.Row(i)
		if scalar.IsZero(r.Length()) {
			return ErrZeroScale
		}
		rows[i] = r.Normalize()
	}
	if scalar.IsNotZero(rows[0].Dot(rows[1])) ||
		scalar.IsNotZero(rows[0].Dot(rows[2])) ||
		scalar.IsNotZero(rows[1].Dot(rows[2])) {
		return ErrShear
	}

	return nil
}
