// SPDX-License-Identifier: MIT
// Package matrix_test contains test fixtures and helpers.
//
// Purpose:
//   - Provide small integer-valued fixtures so determinants are exact.
//   - Keep inverse fixtures well-conditioned so the default tolerance holds.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/qmath/contract"
	"github.com/katalvlaran/qmath/matrix"
)

// a3 has determinant 18.
func a3() matrix.Matrix3x3[float64] {
	return matrix.New3x3(
		2.0, 1, 0,
		1, 3, 1,
		0, 1, 4,
	)
}

// b3 has determinant 1 and an integer inverse (see b3Inv).
func b3() matrix.Matrix3x3[float64] {
	return matrix.New3x3(
		1.0, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)
}

func b3Inv() matrix.Matrix3x3[float64] {
	return matrix.New3x3(
		-24.0, 18, 5,
		20, -15, -4,
		-5, 4, 1,
	)
}

// a4 has determinant 119; adjugate(a4) is a4Adj.
func a4() matrix.Matrix4x4[float64] {
	return matrix.New4x4(
		2.0, 0, 0, 1,
		1, 3, 0, 0,
		0, 1, 4, 0,
		0, 0, 1, 5,
	)
}

func a4Adj() matrix.Matrix4x4[float64] {
	return matrix.New4x4(
		60.0, -1, 3, -12,
		-20, 40, -1, 4,
		5, -10, 30, -1,
		-1, 2, -6, 24,
	)
}

func m43() matrix.Matrix4x3[float64] {
	return matrix.New4x3(
		1.0, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	)
}

func m34() matrix.Matrix3x4[float64] {
	return matrix.New3x4(
		1.0, 0, 2, 1,
		0, 1, 1, 0,
		3, 1, 0, 2,
	)
}

// approx compares whole arrays with an absolute tolerance.
var approx = cmpopts.EquateApprox(0, 1e-9)

// requireApprox fails the test when want and got differ beyond approx.
func requireApprox(t *testing.T, want, got any) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

// useMode installs a contract mode for the duration of the test.
func useMode(t *testing.T, m contract.Mode) {
	t.Helper()
	prev := contract.SetMode(m)
	t.Cleanup(func() { contract.SetMode(prev) })
}
