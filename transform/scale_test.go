// SPDX-License-Identifier: MIT

package transform_test

import (
	"testing"

	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/transform"
	"github.com/katalvlaran/qmath/vector"
	"github.com/stretchr/testify/require"
)

// TestScaleInvert is the canonical scale scenario.
func TestScaleInvert(t *testing.T) {
	s := sampleScale()
	require.Equal(t, 24.0, s.Determinant())
	require.True(t, s.HasInverse())

	inv := s.Invert()
	require.True(t, inv.Equal(transform.NewScale(0.5, 1.0/3, 0.25)), "got %v", inv)
	require.True(t, s.Mul(inv).IsIdentity())

	m := inv.Matrix()
	require.Equal(t, [3]float64{0.5, 0, 0}, m[0]) // off-diagonal exactly zero
	require.Equal(t, [3]float64{0, 0, 0.25}, m[2])
}

// TestScaleZeroFactor covers TryInvert and the panicking fast path.
func TestScaleZeroFactor(t *testing.T) {
	s := transform.NewScale(1.0, 0, 2)
	require.False(t, s.HasInverse())

	_, err := s.TryInvert()
	require.ErrorIs(t, err, transform.ErrZeroScale)
	require.EqualError(t, err, "Scale3x3.TryInvert: transform: zero scale factor")

	useMode(t, contract.ModePanic)
	require.Panics(t, func() { s.Invert() })
}

// TestTryScaleFromMatrix accepts diagonals only.
func TestTryScaleFromMatrix(t *testing.T) {
	s, err := transform.TryScaleFromMatrix(matrix.New3x3(2.0, 0, 0, 0, 3, 0, 0, 0, 4))
	require.NoError(t, err)
	require.Equal(t, sampleScale(), s)

	_, err = transform.TryScaleFromMatrix(matrix.New3x3(2.0, 0, 0, 0.5, 3, 0, 0, 0, 4))
	require.ErrorIs(t, err, transform.ErrNotDiagonal)
}

// TestScaleApply checks component-wise scaling and the product.
func TestScaleApply(t *testing.T) {
	s := sampleScale()
	require.Equal(t, vector.V3(2.0, 6, 12), s.Apply(vector.V3(1.0, 2, 3)))
	require.Equal(t, transform.NewScale(4.0, 9, 16), s.Mul(s))
	require.Equal(t, vector.V3(2.0, 3, 4), transform.ScaleFromVector(vector.V3(2.0, 3, 4)).Factors())
	require.True(t, transform.ScaleIdentity[float32]().IsIdentity())
	require.Equal(t, "M3x3((2,0,0)(0,3,0)(0,0,4))", s.String())
}
