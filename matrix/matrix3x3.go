// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Matrix3x3 is a row-major 3x3 matrix. The zero value is the zero matrix.
type Matrix3x3[T scalar.Float] [3][3]T

// Identity3x3 returns the 3x3 identity matrix.
func Identity3x3[T scalar.Float]() Matrix3x3[T] {
	return Matrix3x3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Fill3x3 returns a matrix with every element set to v.
func Fill3x3[T scalar.Float](v T) Matrix3x3[T] {
	return Matrix3x3[T]{{v, v, v}, {v, v, v}, {v, v, v}}
}

// New3x3 builds a matrix from its nine elements in row-major order.
func New3x3[T scalar.Float](
	a00, a01, a02,
	a10, a11, a12,
	a20, a21, a22 T,
) Matrix3x3[T] {
	return Matrix3x3[T]{
		{a00, a01, a02},
		{a10, a11, a12},
		{a20, a21, a22},
	}
}

// Matrix3x3FromSlice copies nine row-major elements from s.
// Returns ErrBadShape when len(s) != 9.
func Matrix3x3FromSlice[T scalar.Float](s []T) (Matrix3x3[T], error) {
	var m Matrix3x3[T]
	if len(s) != 9 {
		return m, shapeErrorf(opFromSlice3x3, 9, len(s))
	}
	for i := 0; i < 3; i++ {
		copy(m[i][:], s[i*3:i*3+3])
	}

	return m, nil
}

// Slice returns the nine elements in row-major order.
func (m Matrix3x3[T]) Slice() []T {
	out := make([]T, 0, 9)
	for i := 0; i < 3; i++ {
		out = append(out, m[i][:]...)
	}

	return out
}

// Row returns row i as a vector.
func (m Matrix3x3[T]) Row(i int) vector.Vec3[T] {
	return vector.Vec3[T]{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

// SetRow replaces row i.
func (m *Matrix3x3[T]) SetRow(i int, v vector.Vec3[T]) {
	m[i] = v.Array()
}

// Add returns m + n.
func (m Matrix3x3[T]) Add(n Matrix3x3[T]) Matrix3x3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += n[i][j]
		}
	}

	return m
}

// Sub returns m - n.
func (m Matrix3x3[T]) Sub(n Matrix3x3[T]) Matrix3x3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= n[i][j]
		}
	}

	return m
}

// Scale returns m multiplied by s.
func (m Matrix3x3[T]) Scale(s T) Matrix3x3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}

	return m
}

// Div returns m divided by s. The reciprocal is computed once.
// s == 0 violates the contract (ErrDivideByZero); the result is ±Inf/NaN.
func (m Matrix3x3[T]) Div(s T) Matrix3x3[T] {
	contract.Check(opDiv3x3, s != 0, ErrDivideByZero)

	return m.Scale(1 / s)
}

// Mul returns the product m·n.
func (m Matrix3x3[T]) Mul(n Matrix3x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}

	return out
}

// MulMatrix3x4 returns the product m·n.
func (m Matrix3x3[T]) MulMatrix3x4(n Matrix3x4[T]) Matrix3x4[T] {
	var out Matrix3x4[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}

	return out
}

// Transpose returns mᵗ.
func (m Matrix3x3[T]) Transpose() Matrix3x3[T] {
	return Matrix3x3[T]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Apply returns the row vector v·m.
func (m Matrix3x3[T]) Apply(v vector.Vec3[T]) vector.Vec3[T] {
	return vector.Vec3[T]{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}

// Equal reports whether every element matches within tolerance.
func (m Matrix3x3[T]) Equal(n Matrix3x3[T]) bool {
	for i := range m {
		for j := range m[i] {
			if scalar.AreNotEqual(m[i][j], n[i][j]) {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every element is zero within tolerance.
func (m Matrix3x3[T]) IsZero() bool {
	return m.Equal(Matrix3x3[T]{})
}

// IsIdentity reports whether m equals the identity within tolerance.
func (m Matrix3x3[T]) IsIdentity() bool {
	return m.Equal(Identity3x3[T]())
}

// Determinant returns the direct six-term expansion
//
//	a00·a11·a22 + a01·a12·a20 + a02·a10·a21 − a02·a11·a20 − a00·a12·a21 − a01·a10·a22.
func (m Matrix3x3[T]) Determinant() T {
	return m[0][0]*m[1][1]*m[2][2] +
		m[0][1]*m[1][2]*m[2][0] +
		m[0][2]*m[1][0]*m[2][1] -
		m[0][2]*m[1][1]*m[2][0] -
		m[0][0]*m[1][2]*m[2][1] -
		m[0][1]*m[1][0]*m[2][2]
}

// HasInverse reports whether the determinant is non-zero within tolerance.
func (m Matrix3x3[T]) HasInverse() bool {
	return scalar.IsNotZero(m.Determinant())
}

// Invert returns m⁻¹ computed as adjugate(m) / det(m).
// Implementation:
//   - Stage 1: the exact identity short-circuits to itself.
//   - Stage 2: check det ≠ 0 through contract.Check (ErrSingular).
//   - Stage 3: scale the transposed cofactor matrix by 1/det.
//
// Behavior highlights:
//   - A singular input proceeds in ModeIgnore/ModeLog and yields ±Inf/NaN.
//
// Complexity:
//   - Time O(1): 9 cofactors, one division.
func (m Matrix3x3[T]) Invert() Matrix3x3[T] {
	if m == Identity3x3[T]() {
		return m
	}
	det := m.Determinant()
	contract.Check(opInvert3x3, scalar.IsNotZero(det), ErrSingular)

	return m.Adjugate().Scale(1 / det)
}

// TryInvert is Invert with an explicit error instead of a contract check.
// Returns the zero matrix and ErrSingular when det(m) is zero within tolerance.
func (m Matrix3x3[T]) TryInvert() (Matrix3x3[T], error) {
	if !m.HasInverse() {
		return Matrix3x3[T]{}, matrixErrorf(opTryInvert3x3, ErrSingular)
	}
	if m == Identity3x3[T]() {
		return m, nil
	}

	return m.Adjugate().Scale(1 / m.Determinant()), nil
}

// Adjugate returns the transpose of the cofactor matrix, so that
// m·Adjugate(m) = det(m)·I.
func (m Matrix3x3[T]) Adjugate() Matrix3x3[T] {
	return Matrix3x3[T]{
		{
			m[1][1]*m[2][2] - m[1][2]*m[2][1],
			-(m[0][1]*m[2][2] - m[0][2]*m[2][1]),
			m[0][1]*m[1][2] - m[0][2]*m[1][1],
		},
		{
			-(m[1][0]*m[2][2] - m[1][2]*m[2][0]),
			m[0][0]*m[2][2] - m[0][2]*m[2][0],
			-(m[0][0]*m[1][2] - m[0][2]*m[1][0]),
		},
		{
			m[1][0]*m[2][1] - m[1][1]*m[2][0],
			-(m[0][0]*m[2][1] - m[0][1]*m[2][0]),
			m[0][0]*m[1][1] - m[0][1]*m[1][0],
		},
	}
}

// String renders M3x3((a00,a01,a02)(a10,a11,a12)(a20,a21,a22)).
func (m Matrix3x3[T]) String() string {
	return formatRows("M3x3", m[0][:], m[1][:], m[2][:])
}
