// SPDX-License-Identifier: MIT

package transform

import (
	geommatrix "seehuhn.de/go/geom/matrix"

	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// AffineXY projects m onto the XY plane as a 2D affine matrix
// [a b c d e f], which maps (x, y) to (a·x + c·y + e, b·x + d·y + f).
// Both libraries use row vectors, so m.AffineXY().Mul(n.AffineXY()) equals
// m.Mul(n).AffineXY() whenever neither transform mixes z into x or y.
func (m Transform4x3[T]) AffineXY() geommatrix.Matrix { return m.a.affineXY() }

// AffineXY projects m onto the XY plane; see Transform4x3.AffineXY.
func (m Transform4x4[T]) AffineXY() geommatrix.Matrix { return m.a.affineXY() }

// Transform4x3FromAffineXY lifts a 2D affine matrix into 3D with z left
// untouched.
func Transform4x3FromAffineXY[T scalar.Float](g geommatrix.Matrix) Transform4x3[T] {
	return Transform4x3[T]{a: affine[T]{
		block: matrix.Matrix3x3[T]{
			{T(g[0]), T(g[1]), 0},
			{T(g[2]), T(g[3]), 0},
			{0, 0, 1},
		},
		t: vector.Vec3[T]{X: T(g[4]), Y: T(g[5])},
	}}
}

func (a affine[T]) affineXY() geommatrix.Matrix {
	b := &a.block
	return geommatrix.Matrix{
		float64(b[0][0]), float64(b[0][1]),
		float64(b[1][0]), float64(b[1][1]),
		float64(a.t.X), float64(a.t.Y),
	}
}
