// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/vector"
	"github.com/stretchr/testify/require"
)

// TestIdentity4x4 covers identity laws and the identity pattern.
func TestIdentity4x4(t *testing.T) {
	id := matrix.Identity4x4[float64]()
	a := a4()

	require.True(t, id.IsIdentity())
	require.Equal(t, 1.0, id.Determinant())
	require.Equal(t, a, a.Mul(id)) // A·I = A
	require.Equal(t, a, id.Mul(a)) // I·A = A
	require.Equal(t, id, id.Invert())
	require.False(t, a.IsIdentity())
}

// TestArithmetic4x4 covers the elementwise operations.
func TestArithmetic4x4(t *testing.T) {
	a := a4()
	require.True(t, a.Sub(a).IsZero())
	require.Equal(t, a.Scale(2), a.Add(a))
	require.Equal(t, a, a.Scale(4).Div(4))
	require.Equal(t, matrix.Fill4x4(3.0), matrix.Fill4x4(1.0).Add(matrix.Fill4x4(2.0)))
}

// TestDeterminant4x4 checks the shared-minor expansion.
func TestDeterminant4x4(t *testing.T) {
	a := a4()
	b := matrix.New4x4(
		1.0, 2, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 3,
		0, 0, 0, 1,
	)
	c := matrix.New4x4(
		3.0, 0, 0, 0,
		0, -2, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 5,
	)

	require.Equal(t, 119.0, a.Determinant())
	require.Equal(t, 1.0, b.Determinant())
	require.Equal(t, -30.0, c.Determinant())                   // diagonal product
	require.Equal(t, 119.0, a.Transpose().Determinant())       // det(Aᵗ) = det(A)
	require.Equal(t, 119.0*-30.0, a.Mul(c).Determinant())      // det(AC) = det(A)·det(C)
	require.Equal(t, 119.0, b.Mul(a).Determinant())            // unit-determinant factor
	require.Equal(t, 0.0, matrix.Fill4x4(2.0).Determinant())   // rank 1
}

// TestInvert4x4 verifies the inverse against the exact adjugate.
func TestInvert4x4(t *testing.T) {
	a := a4()
	inv := a.Invert()

	requireApprox(t, a4Adj(), inv.Scale(119)) // A⁻¹ = adj(A) / det(A)
	require.True(t, a.Mul(inv).IsIdentity())  // A·A⁻¹ = I
	require.True(t, inv.Mul(a).IsIdentity())  // A⁻¹·A = I

	tried, err := a.TryInvert()
	require.NoError(t, err)
	require.Equal(t, inv, tried) // same arithmetic on both paths

	near := matrix.Identity4x4[float64]()
	near[3][1] = 1e-13
	require.True(t, near.IsIdentity())
	require.InDelta(t, -1e-13, near.Invert()[3][1], 1e-20)
	tried, err = near.TryInvert()
	require.NoError(t, err)
	require.InDelta(t, -1e-13, tried[3][1], 1e-20)
}

// TestTryInvert4x4 reports singular input.
func TestTryInvert4x4(t *testing.T) {
	useMode(t, contract.ModePanic)

	_, err := matrix.Fill4x4(1.0).TryInvert()
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.False(t, matrix.Fill4x4(1.0).HasInverse())
	require.Panics(t, func() { _ = matrix.Fill4x4(1.0).Invert() })
}

// TestMul4x4Shapes covers 4x4·4x4 and 4x4·4x3.
func TestMul4x4Shapes(t *testing.T) {
	want := matrix.New4x3(
		12.0, 15, 18,
		13, 17, 21,
		32, 37, 42,
		57, 63, 69,
	)
	require.Equal(t, want, a4().MulMatrix4x3(m43()))
	require.Equal(t, a4().Transpose().Transpose(), a4())
}

// TestApply4x4 multiplies a homogeneous row vector from the left.
func TestApply4x4(t *testing.T) {
	got := a4().Apply(vector.V4(1.0, 2.0, 3.0, 1.0))
	require.Equal(t, vector.V4(4.0, 9.0, 13.0, 6.0), got)
}

// TestUpper3x3 extracts the rotation-scale block.
func TestUpper3x3(t *testing.T) {
	require.Equal(t, matrix.New3x3(2.0, 0, 0, 1, 3, 0, 0, 1, 4), a4().Upper3x3())
	require.Equal(t, 24.0, a4().Upper3x3().Determinant())
}

// TestSlice4x4 round-trips the flat form.
func TestSlice4x4(t *testing.T) {
	s := a4().Slice()
	require.Len(t, s, 16)

	back, err := matrix.Matrix4x4FromSlice(s)
	require.NoError(t, err)
	require.Equal(t, a4(), back)
	require.Equal(t, vector.V4(0.0, 0.0, 1.0, 5.0), back.Row(3))

	_, err = matrix.Matrix4x4FromSlice(s[:15])
	require.ErrorIs(t, err, matrix.ErrBadShape)
	require.EqualError(t, err, "Matrix4x4FromSlice: want 16 elements, got 15: matrix: invalid shape")
}

// TestString4x4 checks the fixed textual layout.
func TestString4x4(t *testing.T) {
	require.Equal(t,
		"M4x4((1,0,0,0)(0,1,0,0)(0,0,1,0)(0,0,0,1))",
		matrix.Identity4x4[float64]().String())
}
