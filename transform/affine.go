// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
	"github.com/katalvlaran/qmath/vector"
)

// affine is the representation shared by every four-row transformation:
// the upper 3x3 block and the translation row. The fourth column is
// implicitly (0,0,0,1) and never stored.
type affine[T scalar.Float] struct {
	block matrix.Matrix3x3[T]
	t     vector.Vec3[T]
}

func identityAffine[T scalar.Float]() affine[T] {
	return affine[T]{block: matrix.Identity3x3[T]()}
}

// composeAffine lays out scale · rotation · translation:
// row_i(block) = s_i · row_i(r), translation = t.
func composeAffine[T scalar.Float](t vector.Vec3[T], r matrix.Matrix3x3[T], s vector.Vec3[T]) affine[T] {
	return affine[T]{block: r, t: t}.preScaled(s)
}

// fromRows4 reads the block and the translation from the first three
// columns of four rows.
func fromRows4[T scalar.Float](r0, r1, r2, r3 []T) affine[T] {
	var a affine[T]
	copy(a.block[0][:], r0[:3])
	copy(a.block[1][:], r1[:3])
	copy(a.block[2][:], r2[:3])
	a.t = vector.Vec3[T]{X: r3[0], Y: r3[1], Z: r3[2]}

	return a
}

// mul returns a·b: the block product, and a's translation carried through
// b's block before b's translation is added.
func (a affine[T]) mul(b affine[T]) affine[T] {
	return affine[T]{
		block: a.block.Mul(b.block),
		t:     b.block.Apply(a.t).Add(b.t),
	}
}

// translated returns a·T(off).
func (a affine[T]) translated(off vector.Vec3[T]) affine[T] {
	a.t = a.t.Add(off)
	return a
}

// rotated returns a·R; the translation is rotated too.
func (a affine[T]) rotated(r matrix.Matrix3x3[T]) affine[T] {
	return affine[T]{block: a.block.Mul(r), t: r.Apply(a.t)}
}

// scaled returns a·S: column j, translation included, times s_j.
func (a affine[T]) scaled(s vector.Vec3[T]) affine[T] {
	for i := 0; i < 3; i++ {
		a.block[i][0] *= s.X
		a.block[i][1] *= s.Y
		a.block[i][2] *= s.Z
	}
	a.t = a.t.Mul(s)

	return a
}

// preScaled returns S·a: block row i times s_i, translation untouched.
func (a affine[T]) preScaled(s vector.Vec3[T]) affine[T] {
	f := s.Array()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a.block[i][j] *= f[i]
		}
	}

	return a
}

// preRotated returns R·a: the block becomes R·block, translation untouched.
func (a affine[T]) preRotated(r matrix.Matrix3x3[T]) affine[T] {
	a.block = r.Mul(a.block)
	return a
}

func (a affine[T]) determinant() T {
	return a.block.Determinant()
}

func (a affine[T]) isIdentity() bool {
	return a.block.IsIdentity() && a.t.IsZero()
}

func (a affine[T]) equal(b affine[T]) bool {
	return a.block.Equal(b.block) && a.t.Equal(b.t)
}

// inverse returns a⁻¹ given d = 1/det(block).
// Implementation:
//   - Stage 1: twelve binary products shared between the block's
//     cofactors and the translation row.
//   - Stage 2: block = adjugate · d; translation = −t · block⁻¹, expanded
//     over the same products.
//
// The constant fourth column is never computed.
func (a affine[T]) inverse(d T) affine[T] {
	m := &a.block
	t0, t1, t2 := a.t.X, a.t.Y, a.t.Z

	pA := m[0][0] * m[1][1]
	pD := m[2][1] * t0
	pE := m[0][1] * m[1][0]
	pH := m[2][0] * t1
	pJ := m[2][1] * t2
	pK := m[2][2] * t1
	pN := m[2][0] * t2
	pO := m[2][2] * t0
	pQ := m[0][1] * m[1][2]
	pT := m[0][2] * m[1][1]
	pU := m[0][0] * m[1][2]
	pX := m[0][2] * m[1][0]

	var out affine[T]
	out.block = matrix.Matrix3x3[T]{
		{
			d * (m[1][1]*m[2][2] - m[1][2]*m[2][1]),
			-d * (m[0][1]*m[2][2] - m[0][2]*m[2][1]),
			d * (pQ - pT),
		},
		{
			-d * (m[1][0]*m[2][2] - m[1][2]*m[2][0]),
			d * (m[0][0]*m[2][2] - m[0][2]*m[2][0]),
			-d * (pU - pX),
		},
		{
			d * (m[1][0]*m[2][1] - m[1][1]*m[2][0]),
			-d * (m[0][0]*m[2][1] - m[0][1]*m[2][0]),
			d * (pA - pE),
		},
	}
	out.t = vector.Vec3[T]{
		X: -d * (m[1][0]*pJ + m[1][1]*pO + m[1][2]*pH - m[1][2]*pD - m[1][0]*pK - m[1][1]*pN),
		Y: d * (m[0][0]*pJ + m[0][1]*pO + m[0][2]*pH - m[0][2]*pD - m[0][0]*pK - m[0][1]*pN),
		Z: -d * (pA*t2 + pQ*t0 + pX*t1 - pT*t0 - pU*t1 - pE*t2),
	}

	return out
}

// scaleFactors returns the Euclidean length of each block row.
func (a affine[T]) scaleFactors() vector.Vec3[T] {
	return vector.Vec3[T]{
		X: a.block.Row(0).Length(),
		Y: a.block.Row(1).Length(),
		Z: a.block.Row(2).Length(),
	}
}

// rotationWith divides block row i by s_i.
func (a affine[T]) rotationWith(s vector.Vec3[T]) matrix.Matrix3x3[T] {
	inv := vector.Vec3[T]{X: 1 / s.X, Y: 1 / s.Y, Z: 1 / s.Z}
	return a.preScaled(inv).block
}

// switchHand transposes the rotation while keeping each row's scale, and
// mirrors the z translation. Entry [i][j] of the result is entry [j][i]
// times s_i/s_j.
func (a affine[T]) switchHand(s vector.Vec3[T]) affine[T] {
	m := &a.block
	m[0][1], m[1][0] = m[1][0], m[0][1]
	m[0][2], m[2][0] = m[2][0], m[0][2]
	m[2][1], m[1][2] = m[1][2], m[2][1]

	m[0][1] *= s.X / s.Y
	m[1][0] *= s.Y / s.X
	m[0][2] *= s.X / s.Z
	m[2][0] *= s.Z / s.X
	m[2][1] *= s.Z / s.Y
	m[1][2] *= s.Y / s.Z

	a.t.Z = -a.t.Z

	return a
}

func (a affine[T]) applyPoint(p vector.Vec3[T]) vector.Vec3[T] {
	return a.block.Apply(p).Add(a.t)
}

func (a affine[T]) applyVector(v vector.Vec3[T]) vector.Vec3[T] {
	return a.block.Apply(v)
}

func (a affine[T]) matrix4x3() matrix.Matrix4x3[T] {
	return matrix.Matrix4x3[T]{a.block[0], a.block[1], a.block[2], a.t.Array()}
}

func (a affine[T]) matrix4x4() matrix.Matrix4x4[T] {
	b := &a.block
	return matrix.Matrix4x4[T]{
		{b[0][0], b[0][1], b[0][2], 0},
		{b[1][0], b[1][1], b[1][2], 0},
		{b[2][0], b[2][1], b[2][2], 0},
		{a.t.X, a.t.Y, a.t.Z, 1},
	}
}
