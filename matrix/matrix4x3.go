// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Matrix4x3 is a row-major matrix of four rows and three columns.
// In a transformation context row 3 holds the translation and the implicit
// fourth column is (0,0,0,1).
type Matrix4x3[T scalar.Float] [4][3]T

// Identity4x3 returns ones on the main diagonal and zeros elsewhere.
func Identity4x3[T scalar.Float]() Matrix4x3[T] {
	return Matrix4x3[T]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {0, 0, 0}}
}

// Fill4x3 returns a matrix with every element set to v.
func Fill4x3[T scalar.Float](v T) Matrix4x3[T] {
	return Matrix4x3[T]{{v, v, v}, {v, v, v}, {v, v, v}, {v, v, v}}
}

// New4x3 builds a matrix from its twelve elements in row-major order.
func New4x3[T scalar.Float](
	a00, a01, a02,
	a10, a11, a12,
	a20, a21, a22,
	a30, a31, a32 T,
) Matrix4x3[T] {
	return Matrix4x3[T]{
		{a00, a01, a02},
		{a10, a11, a12},
		{a20, a21, a22},
		{a30, a31, a32},
	}
}

// Matrix4x3FromSlice copies twelve row-major elements from s.
func Matrix4x3FromSlice[T scalar.Float](s []T) (Matrix4x3[T], error) {
	var m Matrix4x3[T]
	if len(s) != 12 {
		return m, shapeErrorf(opFromSlice4x3, 12, len(s))
	}
	for i := 0; i < 4; i++ {
		copy(m[i][:], s[i*3:i*3+3])
	}

	return m, nil
}

// Slice returns the twelve elements in row-major order.
func (m Matrix4x3[T]) Slice() []T {
	out := make([]T, 0, 12)
	for i := 0; i < 4; i++ {
		out = append(out, m[i][:]...)
	}

	return out
}

// Row returns row i as a vector.
func (m Matrix4x3[T]) Row(i int) vector.Vec3[T] {
	return vector.Vec3[T]{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

// Add returns m + n.
func (m Matrix4x3[T]) Add(n Matrix4x3[T]) Matrix4x3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += n[i][j]
		}
	}

	return m
}

// Sub returns m - n.
func (m Matrix4x3[T]) Sub(n Matrix4x3[T]) Matrix4x3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= n[i][j]
		}
	}

	return m
}

// Scale returns m multiplied by s.
func (m Matrix4x3[T]) Scale(s T) Matrix4x3[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}

	return m
}

// Div returns m divided by s; s == 0 violates the contract (ErrDivideByZero).
func (m Matrix4x3[T]) Div(s T) Matrix4x3[T] {
	contract.Check(opDiv4x3, s != 0, ErrDivideByZero)

	return m.Scale(1 / s)
}

// MulMatrix3x3 returns the product m·n.
func (m Matrix4x3[T]) MulMatrix3x3(n Matrix3x3[T]) Matrix4x3[T] {
	var out Matrix4x3[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}

	return out
}

// MulMatrix3x4 returns the product m·n.
func (m Matrix4x3[T]) MulMatrix3x4(n Matrix3x4[T]) Matrix4x4[T] {
	var out Matrix4x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j]
		}
	}

	return out
}

// Transpose returns mᵗ.
func (m Matrix4x3[T]) Transpose() Matrix3x4[T] {
	var out Matrix3x4[T]
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// Apply returns the row vector v·m.
func (m Matrix4x3[T]) Apply(v vector.Vec4[T]) vector.Vec3[T] {
	return vector.Vec3[T]{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + v.W*m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + v.W*m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + v.W*m[3][2],
	}
}

// Equal reports whether every element matches within tolerance.
func (m Matrix4x3[T]) Equal(n Matrix4x3[T]) bool {
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
func (m Matrix4x3[T]) IsZero() bool {
	return m.Equal(Matrix4x3[T]{})
}

// IsIdentity reports whether m has ones on the main diagonal and zeros
// elsewhere, within tolerance.
func (m Matrix4x3[T]) IsIdentity() bool {
	return m.Equal(Identity4x3[T]())
}

// Upper3x3 returns the upper 3x3 block (rows 0-2).
func (m Matrix4x3[T]) Upper3x3() Matrix3x3[T] {
	return Matrix3x3[T]{m[0], m[1], m[2]}
}

// String renders M4x3((a00,a01,a02)(a10,...)(a20,...)(a30,...)).
func (m Matrix4x3[T]) String() string {
	return formatRows("M4x3", m[0][:], m[1][:], m[2][:], m[3][:])
}
