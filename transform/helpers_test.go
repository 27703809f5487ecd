// SPDX-License-Identifier: MIT
// Package transform_test contains fixtures shared by the transform tests.

package transform_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/transform"
	"github.com/katalvlaran/qmath/vector"
)

const (
	pitch = 0.3
	yaw   = -0.7
	roll  = 1.1
)

func sampleRotation() transform.Rotation3x3[float64] {
	return transform.RotationFromEuler(pitch, yaw, roll)
}

func sampleScale() transform.Scale3x3[float64] {
	return transform.NewScale(2.0, 3, 4)
}

func sampleTranslation() transform.Translation4x3[float64] {
	return transform.NewTranslation4x3(1.0, 2, 3)
}

// sample applies scale (2,3,4), then sampleRotation, then (1,2,3).
func sample() transform.Transform4x3[float64] {
	return transform.NewTransform4x3[float64](sampleTranslation(), sampleRotation(), sampleScale())
}

// lift embeds a 3x3 block into a homogeneous 4x4 matrix.
func lift(m matrix.Matrix3x3[float64]) matrix.Matrix4x4[float64] {
	return matrix.New4x4(
		m[0][0], m[0][1], m[0][2], 0,
		m[1][0], m[1][1], m[1][2], 0,
		m[2][0], m[2][1], m[2][2], 0,
		0, 0, 0, 1,
	)
}

// translation4 is the homogeneous matrix translating by v.
func translation4(v vector.Vec3[float64]) matrix.Matrix4x4[float64] {
	m := matrix.Identity4x4[float64]()
	m[3] = [4]float64{v.X, v.Y, v.Z, 1}

	return m
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func requireApprox(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func useMode(t *testing.T, m contract.Mode) {
	t.Helper()
	prev := contract.SetMode(m)
	t.Cleanup(func() { contract.SetMode(prev) })
}
