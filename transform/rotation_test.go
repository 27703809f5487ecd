// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/transform"
	"github.com/katalvlaran/qmath/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	axisX = vector.V3(1.0, 0, 0)
	axisY = vector.V3(0.0, 1, 0)
	axisZ = vector.V3(0.0, 0, 1)
)

// TestRotationQuarterTurnZ is the canonical axis-angle scenario.
func TestRotationQuarterTurnZ(t *testing.T) {
	r := transform.RotationFromAxisAngle(axisZ, math.Pi/2)
	require.True(t, r.Apply(axisX).Equal(axisY), "got %v", r.Apply(axisX))

	r32 := transform.RotationFromAxisAngle(vector.V3[float32](0, 0, 1), float32(math.Pi/2))
	require.True(t, r32.Apply(vector.V3[float32](1, 0, 0)).Equal(vector.V3[float32](0, 1, 0)))
}

// TestRotationCounterClockwise fixes the direction about each axis.
func TestRotationCounterClockwise(t *testing.T) {
	cases := []struct {
		axis, in, want vector.Vec3[float64]
	}{
		{axisX, axisY, axisZ},
		{axisY, axisZ, axisX},
		{axisZ, axisX, axisY},
	}
	for _, c := range cases {
		got := transform.RotationFromAxisAngle(c.axis, math.Pi/2).Apply(c.in)
		assert.True(t, got.Equal(c.want), "axis %v: got %v", c.axis, got)
	}
}

// TestRotationOrthogonal checks R·Rᵗ = I and det = 1 for every constructor.
func TestRotationOrthogonal(t *testing.T) {
	rs := []transform.Rotation3x3[float64]{
		transform.RotationIdentity[float64](),
		sampleRotation(),
		transform.RotationFromAxisAngle(vector.V3(1.0, 2, 2), 1.2),
		transform.RotationFromAxisAngle(vector.V3(-3.0, 0.5, 7), -2.5),
	}
	for _, r := range rs {
		require.NoError(t, transform.ValidateOrthogonal(r.Matrix()))
		require.InDelta(t, 1.0, r.Matrix().Determinant(), 1e-12)
		require.True(t, r.Mul(r.Invert()).IsIdentity())
		require.Equal(t, r.Transpose(), r.Invert())
	}
}

// TestRotationFromEulerOrder checks the documented composition order.
func TestRotationFromEulerOrder(t *testing.T) {
	ry := transform.RotationFromAxisAngle(axisY, yaw)
	rx := transform.RotationFromAxisAngle(axisX, pitch)
	rz := transform.RotationFromAxisAngle(axisZ, roll)

	want := ry.Mul(rx).Mul(rz)
	require.True(t, sampleRotation().Equal(want), "got %v\nwant %v", sampleRotation(), want)
}

// TestEulerRoundTrip covers the regular range and both gimbal-lock poles.
func TestEulerRoundTrip(t *testing.T) {
	x, y, z := sampleRotation().Euler()
	assert.InDelta(t, pitch, x, 1e-9)
	assert.InDelta(t, yaw, y, 1e-9)
	assert.InDelta(t, roll, z, 1e-9)

	for _, pole := range []float64{math.Pi / 2, -math.Pi / 2} {
		x, y, z := transform.RotationFromEuler(pole, 0, 0.4).Euler()
		assert.InDelta(t, pole, x, 1e-9)
		assert.Zero(t, y)
		assert.InDelta(t, 0.4, z, 1e-9)
	}

	// Under gimbal lock the angles differ but the rotation is the same.
	r := transform.RotationFromEuler(math.Pi/2, 0.25, 0.4)
	x, y, z = r.Euler()
	assert.Zero(t, y)
	require.True(t, transform.RotationFromEuler(x, y, z).Equal(r))
}

// TestAxisAngleRoundTrip covers a generic angle, half turns and zero.
func TestAxisAngleRoundTrip(t *testing.T) {
	axis, angle := transform.RotationFromAxisAngle(vector.V3(1.0, 2, 2), 1.2).AxisAngle()
	require.InDelta(t, 1.2, angle, 1e-9)
	requireApprox(t, vector.V3(1.0/3, 2.0/3, 2.0/3).Array(), axis.Array())

	axis, angle = transform.RotationFromAxisAngle(axisY, math.Pi).AxisAngle()
	require.InDelta(t, math.Pi, angle, 1e-9)
	requireApprox(t, axisY.Array(), axis.Array())

	diag := vector.V3(1.0, 1, 0).Normalize()
	axis, angle = transform.RotationFromAxisAngle(diag, math.Pi).AxisAngle()
	require.InDelta(t, math.Pi, angle, 1e-9)
	requireApprox(t, diag.Array(), axis.Array())

	// A half turn about an oblique axis; the sign of the axis is arbitrary.
	half := transform.RotationFromAxisAngle(vector.V3(1.0, 2, -3), math.Pi)
	axis, angle = half.AxisAngle()
	require.InDelta(t, math.Pi, angle, 1e-9)
	require.InDelta(t, 1, axis.Length(), 1e-12)
	require.InDelta(t, 1, math.Abs(axis.Dot(vector.V3(1.0, 2, -3).Normalize())), 1e-12)
	require.True(t, transform.RotationFromAxisAngle(axis, angle).Equal(half))

	// Just short of a half turn the skew part still fixes the sign.
	near := vector.V3(-2.0, 1, 0.5).Normalize()
	axis, angle = transform.RotationFromAxisAngle(near, math.Pi-1e-7).AxisAngle()
	require.InDelta(t, math.Pi-1e-7, angle, 1e-12)
	require.InDelta(t, 1, axis.Dot(near), 1e-12)

	axis, angle = transform.RotationIdentity[float64]().AxisAngle()
	require.Zero(t, angle)
	require.True(t, axis.IsZero())
}

// TestZeroAxis covers the three contract outcomes and the Try variant.
func TestZeroAxis(t *testing.T) {
	var zero vector.Vec3[float64]

	_, err := transform.TryRotationFromAxisAngle(zero, 1)
	require.ErrorIs(t, err, transform.ErrZeroAxis)

	useMode(t, contract.ModeIgnore)
	r := transform.RotationFromAxisAngle(zero, 1)
	require.True(t, scalar.IsNaNOrInf(r.Matrix()[0][0]))

	contract.SetMode(contract.ModePanic)
	require.PanicsWithError(t, "contract violation: RotationFromAxisAngle: transform: zero rotation axis", func() {
		transform.RotationFromAxisAngle(zero, 1)
	})
}

// TestTryRotationFromMatrix accepts rotations and rejects scale and mirrors.
func TestTryRotationFromMatrix(t *testing.T) {
	r, err := transform.TryRotationFromMatrix(sampleRotation().Matrix())
	require.NoError(t, err)
	require.True(t, r.Equal(sampleRotation()))

	_, err = transform.TryRotationFromMatrix(matrix.New3x3(2.0, 0, 0, 0, 1, 0, 0, 0, 1))
	require.ErrorIs(t, err, transform.ErrNotOrthogonal)

	_, err = transform.TryRotationFromMatrix(matrix.New3x3(1.0, 0, 0, 0, 1, 0, 0, 0, -1))
	require.ErrorIs(t, err, transform.ErrNotOrthogonal)

	// Unchecked wrapping keeps whatever it is given.
	m := matrix.Fill3x3(5.0)
	require.Equal(t, m, transform.RotationFromMatrix(m).Matrix())
}
