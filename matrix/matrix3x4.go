// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// Matrix3x4 is a row-major matrix of three rows and four columns.
type Matrix3x4[T scalar.Float] [3][4]T

// Identity3x4 returns ones on the main diagonal and zeros elsewhere.
func Identity3x4[T scalar.Float]() Matrix3x4[T] {
	return Matrix3x4[T]{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}}
}

// Fill3x4 returns a matrix with every element set to v.
func Fill3x4[T scalar.Float](v T) Matrix3x4[T] {
	return Matrix3x4[T]{{v, v, v, v}, {v, v, v, v}, {v, v, v, v}}
}

// New3x4 builds a matrix from its twelve elements in row-major order.
func New3x4[T scalar.Float](
	a00, a01, a02, a03,
	a10, a11, a12, a13,
	a20, a21, a22, a23 T,
) Matrix3x4[T] {
	return Matrix3x4[T]{
		{a00, a01, a02, a03},
		{a10, a11, a12, a13},
		{a20, a21, a22, a23},
	}
}

// Matrix3x4FromSlice copies twelve row-major elements from s.
func Matrix3x4FromSlice[T scalar.Float](s []T) (Matrix3x4[T], error) {
	var m Matrix3x4[T]
	if len(s) != 12 {
		return m, shapeErrorf(opFromSlice3x4, 12, len(s))
	}
	for i := 0; i < 3; i++ {
		copy(m[i][:], s[i*4:i*4+4])
	}

	return m, nil
}

// Slice returns the twelve elements in row-major order.
func (m Matrix3x4[T]) Slice() []T {
	out := make([]T, 0, 12)
	for i := 0; i < 3; i++ {
		out = append(out, m[i][:]...)
	}

	return out
}

// Add returns m + n.
func (m Matrix3x4[T]) Add(n Matrix3x4[T]) Matrix3x4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] += n[i][j]
		}
	}

	return m
}

// Sub returns m - n.
func (m Matrix3x4[T]) Sub(n Matrix3x4[T]) Matrix3x4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] -= n[i][j]
		}
	}

	return m
}

// Scale returns m multiplied by s.
func (m Matrix3x4[T]) Scale(s T) Matrix3x4[T] {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= s
		}
	}

	return m
}

// Div returns m divided by s; s == 0 violates the contract (ErrDivideByZero).
func (m Matrix3x4[T]) Div(s T) Matrix3x4[T] {
	contract.Check(opDiv3x4, s != 0, ErrDivideByZero)

	return m.Scale(1 / s)
}

// MulMatrix4x4 returns the product m·n.
func (m Matrix3x4[T]) MulMatrix4x4(n Matrix4x4[T]) Matrix3x4[T] {
	var out Matrix3x4[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j] + m[i][3]*n[3][j]
		}
	}

	return out
}

// MulMatrix4x3 returns the product m·n.
func (m Matrix3x4[T]) MulMatrix4x3(n Matrix4x3[T]) Matrix3x3[T] {
	var out Matrix3x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[i][0]*n[0][j] + m[i][1]*n[1][j] + m[i][2]*n[2][j] + m[i][3]*n[3][j]
		}
	}

	return out
}

// Transpose returns mᵗ.
func (m Matrix3x4[T]) Transpose() Matrix4x3[T] {
	var out Matrix4x3[T]
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			out[j][i] = m[i][j]
		}
	}

	return out
}

// Apply returns the row vector v·m.
func (m Matrix3x4[T]) Apply(v vector.Vec3[T]) vector.Vec4[T] {
	return vector.Vec4[T]{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
		W: v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3],
	}
}

// Equal reports whether every element matches within tolerance.
func (m Matrix3x4[T]) Equal(n Matrix3x4[T]) bool {
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
func (m Matrix3x4[T]) IsZero() bool {
	return m.Equal(Matrix3x4[T]{})
}

// IsIdentity reports whether m has ones on the main diagonal and zeros
// elsewhere, within tolerance.
func (m Matrix3x4[T]) IsIdentity() bool {
	return m.Equal(Identity3x4[T]())
}

// String renders M3x4((a00,a01,a02,a03)(a10,...)(a20,...)).
func (m Matrix3x4[T]) String() string {
	return formatRows("M3x4", m[0][:], m[1][:], m[2][:])
}
