// SPDX-License-Identifier: MIT

package transform_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/qmath/transform"
	"github.com/katalvlaran/qmath/vector"
	"github.com/stretchr/testify/require"
)

const (
	randomSeed   = 20240611
	randomTrials = 200
)

// randomAxis draws a non-degenerate axis with components in [-1, 1].
func randomAxis(r *rand.Rand) vector.Vec3[float64] {
	for {
		v := vector.V3(2*r.Float64()-1, 2*r.Float64()-1, 2*r.Float64()-1)
		if v.Length() > 0.1 {
			return v.Normalize()
		}
	}
}

func randomIn(r *rand.Rand, lo, hi float64) float64 { return lo + (hi-lo)*r.Float64() }

// randomTransform draws a rotation, a scale in [0.5, 3] and a translation in
// [-10, 10] per component.
func randomTransform(r *rand.Rand) (transform.Transform4x3[float64], transform.Rotation3x3[float64], vector.Vec3[float64]) {
	rot := transform.RotationFromAxisAngle(randomAxis(r), randomIn(r, 0, math.Pi))
	scale := vector.V3(randomIn(r, 0.5, 3), randomIn(r, 0.5, 3), randomIn(r, 0.5, 3))
	offset := vector.V3(randomIn(r, -10, 10), randomIn(r, -10, 10), randomIn(r, -10, 10))

	return transform.ComposeTransform4x3(offset, rot, scale), rot, scale
}

// TestRandomInvert checks the closed-form inverse against the general 4x4
// inverse and against a point round trip.
func TestRandomInvert(t *testing.T) {
	r := rand.New(rand.NewSource(randomSeed))
	for i := 0; i < randomTrials; i++ {
		m, _, _ := randomTransform(r)
		inv := m.Invert()

		require.True(t, inv.Matrix4x4().Equal(m.Matrix4x4().Invert()), "trial %d: %v", i, m)
		require.True(t, inv.Transform4x4().Equal(m.Transform4x4().Invert()), "trial %d", i)

		p := vector.V3(randomIn(r, -5, 5), randomIn(r, -5, 5), randomIn(r, -5, 5))
		back := inv.ApplyPoint(m.ApplyPoint(p))
		require.InDelta(t, 0, back.Sub(p).Length(), 1e-10, "trial %d", i)
	}
}

// TestRandomSwitchHandConvention covers non-uniform scale with arbitrary
// rotations: the scale survives, the rotation is transposed, and a second
// switch restores the transform.
func TestRandomSwitchHandConvention(t *testing.T) {
	r := rand.New(rand.NewSource(randomSeed + 1))
	for i := 0; i < randomTrials; i++ {
		m, rot, scale := randomTransform(r)
		sw := m.SwitchHandConvention()

		require.True(t, sw.ScaleFactors().Equal(scale), "trial %d: %v", i, sw.ScaleFactors())
		require.True(t, sw.Rotation().Equal(rot.Transpose()), "trial %d", i)
		require.True(t, sw.SwitchHandConvention().Equal(m), "trial %d", i)
		require.True(t, m.Transform4x4().SwitchHandConvention().Transform4x3().Equal(sw), "trial %d", i)
	}
}

// TestRandomAxisAngle rebuilds each rotation from its extracted axis and
// angle. Half turns are included; their axis sign is arbitrary, so the
// rebuilt rotation is compared rather than the axis.
func TestRandomAxisAngle(t *testing.T) {
	r := rand.New(rand.NewSource(randomSeed + 2))
	for i := 0; i < randomTrials; i++ {
		angle := randomIn(r, 0.01, math.Pi)
		if i%4 == 0 {
			angle = math.Pi
		}
		rot := transform.RotationFromAxisAngle(randomAxis(r), angle)

		axis, got := rot.AxisAngle()
		require.InDelta(t, angle, got, 1e-9, "trial %d", i)
		require.InDelta(t, 1, axis.Length(), 1e-12, "trial %d: %v", i, axis)
		require.True(t, transform.RotationFromAxisAngle(axis, got).Equal(rot), "trial %d", i)
	}
}
