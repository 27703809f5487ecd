// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Matrix4x4 is a row-major 4x4 matrix. The zero value is the zero matrix.
type Matrix4x4[T scalar.Float] [4][4]T

// Identity4x4 returns the 4x4 identity matrix.
func Identity4x4[T scalar.Float]() Matrix4x4[T] {
	return Matrix4x4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}
}

// Fill4x4 returns a matrix with every element set to v.
func Fill4x4[T scalar.Float](v T) Matrix4x4[T] {
	return Matrix4x4[T]{{v, v, v, v}, {v, v, v, v}, {v, v, v, v}, {v, v, v, v}}
}

// New4x4 builds a matrix from its sixteen elements in row-major order.
func New4x4[T scalar.Float](
	a00, a01, a02, a03,
	a10, a11, a12, a13,
	a20, a21, a22, a23,
	a30, a31, a32, a33 T,
) Matrix4x4[T] {
	return Matrix4x4[T]{
		{a00, a01, a02, a03},
		{a10, a11, a12, a13},
		{a20, a21, a22, a23},
		{a30, a31, a32, a33},
	}
}

// Matrix4x4FromSlice copies sixteen row-major elements from s.
// Returns ErrBadShape when len(s) != 16.
func Matrix4x4FromSlice[T scalar.Float](s []T) (Matrix4x4[T], error) {
	var m Matrix4x4[T]
	if len(s) != 16 {
		return m, shapeErrorf(opFromSlice4x4, 16, len(s))
	}
	for i := 0; i < 4; i++ {
		copy(m[i][:], s[i*4:i*4+4])
	}

	return m, nil
}

// Slice returns the sixteen elements in row-major order.
func (m Matrix4x4[T]) Slice() []T {
	out := make([]T, 0, 16)
	for i := 0; i < 4; i++ {
		out = append(out, m[i][:]...)
	}

	return out
}

// Row returns row i as a vector.
func (m Matrix4x4[T]) Row(i int) vector.Vec4[T] {
	return vector.Vec4[T]{X: m[i][0], Y: m[i][1], Z: m[i][2], W: m[i][3]}
}

// Add returns m + n.
func (m Matrix4x4[T]) Add(n Matrix4x4[T]) Matrix4x4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += n[i][j]
		}
	}

	return m
}

// Sub returns m - n.
func (m Matrix4x4[T]) Sub(n Matrix4x4[T]) Matrix4x4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= n[i][j]
		}
	}

	return m
}

// Scale returns m multiplied by s.
func (m Matrix4x4[T]) Scale(s T) Matrix4x4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}

	return m
}

// Div returns m divided by s; s == 0 violates the contract (ErrDivideByZero).
func (m Matrix4x4[T]) Div(s T) Matrix4x4[T] {
	contract.Check(opDiv4x4, s != 0, ErrDivideByZero)

	return m.Scale(1 / s)
}

// Mul returns the product m·n.
func (m Matrix4x4[T]) Mul(n Matrix4x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j] + m[i][3]*n[3][j]
		}
	}

	return out
}

// MulMatrix4x3 returns the product m·n.
func (m Matrix4x4[T]) MulMatrix4x3(n Matrix4x3[T]) Matrix4x3[T] {
	var out Matrix4x3[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j] + m[i][3]*n[3][j]
		}
	}

	return out
}

// Transpose returns mᵗ.
func (m Matrix4x4[T]) Transpose() Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// Apply returns the row vector v·m.
func (m Matrix4x4[T]) Apply(v vector.Vec4[T]) vector.Vec4[T] {
	return vector.Vec4[T]{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + v.W*m[3][3],
	}
}

// Equal reports whether every element matches within tolerance.
func (m Matrix4x4[T]) Equal(n Matrix4x4[T]) bool {
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
func (m Matrix4x4[T]) IsZero() bool {
	return m.Equal(Matrix4x4[T]{})
}

// IsIdentity reports whether m equals the identity within tolerance.
func (m Matrix4x4[T]) IsIdentity() bool {
	return m.Equal(Identity4x4[T]())
}

// Upper3x3 returns the upper-left 3x3 block.
func (m Matrix4x4[T]) Upper3x3() Matrix3x3[T] {
	return Matrix3x3[T]{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

// minors4x4 holds the 2x2 minors of rows 0-1 (s) and rows 2-3 (c).
// Index k enumerates the column pairs 01, 02, 03, 12, 13, 23 for s and
// the reverse order for c, so s[k] and c[5-k] are complementary.
type minors4x4[T scalar.Float] struct {
	s, c [6]T
}

func (m *Matrix4x4[T]) minors() minors4x4[T] {
	var r minors4x4[T]
	r.s[0] = m[0][0]*m[1][1] - m[1][0]*m[0][1]
	r.s[1] = m[0][0]*m[1][2] - m[1][0]*m[0][2]
	r.s[2] = m[0][0]*m[1][3] - m[1][0]*m[0][3]
	r.s[3] = m[0][1]*m[1][2] - m[1][1]*m[0][2]
	r.s[4] = m[0][1]*m[1][3] - m[1][1]*m[0][3]
	r.s[5] = m[0][2]*m[1][3] - m[1][2]*m[0][3]

	r.c[5] = m[2][2]*m[3][3] - m[3][2]*m[2][3]
	r.c[4] = m[2][1]*m[3][3] - m[3][1]*m[2][3]
	r.c[3] = m[2][1]*m[3][2] - m[3][1]*m[2][2]
	r.c[2] = m[2][0]*m[3][3] - m[3][0]*m[2][3]
	r.c[1] = m[2][0]*m[3][2] - m[3][0]*m[2][2]
	r.c[0] = m[2][0]*m[3][1] - m[3][0]*m[2][1]

	return r
}

func (r *minors4x4[T]) det() T {
	return r.s[0]*r.c[5] - r.s[1]*r.c[4] + r.s[2]*r.c[3] +
		r.s[3]*r.c[2] - r.s[4]*r.c[1] + r.s[5]*r.c[0]
}

// Determinant returns the general 4x4 determinant by Laplace expansion over
// rows 0-1, sharing twelve 2x2 minors.
func (m Matrix4x4[T]) Determinant() T {
	r := m.minors()
	return r.det()
}

// HasInverse reports whether the determinant is non-zero within tolerance.
func (m Matrix4x4[T]) HasInverse() bool {
	return scalar.IsNotZero(m.Determinant())
}

// Invert returns m⁻¹.
// Implementation:
//   - Stage 1: the exact identity short-circuits to itself.
//   - Stage 2: compute the twelve shared 2x2 minors (24 binary products) and
//     the determinant from them; det ≠ 0 is checked through contract.Check.
//   - Stage 3: each inverse entry is one cofactor, three terms over the
//     minors, scaled by 1/det.
//
// Behavior highlights:
//   - A singular input proceeds in ModeIgnore/ModeLog and yields ±Inf/NaN.
//
// Complexity:
//   - Time O(1): 24 products for minors, 48 for cofactors, one division.
func (m Matrix4x4[T]) Invert() Matrix4x4[T] {
	if m == Identity4x4[T]() {
		return m
	}
	r := m.minors()
	det := r.det()
	contract.Check(opInvert4x4, scalar.IsNotZero(det), ErrSingular)

	return m.inverseFrom(&r, 1/det)
}

// TryInvert is Invert with an explicit error instead of a contract check.
func (m Matrix4x4[T]) TryInvert() (Matrix4x4[T], error) {
	r := m.minors()
	det := r.det()
	if scalar.IsZero(det) {
		return Matrix4x4[T]{}, matrixErrorf(opTryInvert4x4, ErrSingular)
	}
	if m == Identity4x4[T]() {
		return m, nil
	}

	return m.inverseFrom(&r, 1/det), nil
}

func (m *Matrix4x4[T]) inverseFrom(r *minors4x4[T], d T) Matrix4x4[T] {
	s, c := &r.s, &r.c

	return Matrix4x4[T]{
		{
			(m[1][1]*c[5] - m[1][2]*c[4] + m[1][3]*c[3]) * d,
			(-m[0][1]*c[5] + m[0][2]*c[4] - m[0][3]*c[3]) * d,
			(m[3][1]*s[5] - m[3][2]*s[4] + m[3][3]*s[3]) * d,
			(-m[2][1]*s[5] + m[2][2]*s[4] - m[2][3]*s[3]) * d,
		},
		{
			(-m[1][0]*c[5] + m[1][2]*c[2] - m[1][3]*c[1]) * d,
			(m[0][0]*c[5] - m[0][2]*c[2] + m[0][3]*c[1]) * d,
			(-m[3][0]*s[5] + m[3][2]*s[2] - m[3][3]*s[1]) * d,
			(m[2][0]*s[5] - m[2][2]*s[2] + m[2][3]*s[1]) * d,
		},
		{
			(m[1][0]*c[4] - m[1][1]*c[2] + m[1][3]*c[0]) * d,
			(-m[0][0]*c[4] + m[0][1]*c[2] - m[0][3]*c[0]) * d,
			(m[3][0]*s[4] - m[3][1]*s[2] + m[3][3]*s[0]) * d,
			(-m[2][0]*s[4] + m[2][1]*s[2] - m[2][3]*s[0]) * d,
		},
		{
			(-m[1][0]*c[3] + m[1][1]*c[1] - m[1][2]*c[0]) * d,
			(m[0][0]*c[3] - m[0][1]*c[1] + m[0][2]*c[0]) * d,
			(-m[3][0]*s[3] + m[3][1]*s[1] - m[3][2]*s[0]) * d,
			(m[2][0]*s[3] - m[2][1]*s[1] + m[2][2]*s[0]) * d,
		},
	}
}

// String renders M4x4((a00,a01,a02,a03)(a10,...)(a20,...)(a30,...)).
func (m Matrix4x4[T]) String() string {
	return formatRows("M4x4", m[0][:], m[1][:], m[2][:], m[3][:])
}
