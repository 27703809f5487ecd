// SPDX-License-Identifier: MIT

// Package transform builds, composes and decomposes 3D transformations on
// top of package matrix.
//
// Types:
//   - Rotation3x3: orthogonal, determinant 1. Inverse is the transpose.
//   - Scale3x3: diagonal. Only the three factors are stored, so off-diagonal
//     entries of Matrix() are exactly zero.
//   - Translation4x3 / Translation4x4: only the offset (row 3) is stored.
//   - Transform4x3 / Transform4x4: scale-premultiplied rotation in the upper
//     3x3 block, translation in row 3, implicit fourth column (0,0,0,1).
//
// Conventions:
//   - Row vectors on the left: p' = p · M.
//   - A.Mul(B) applies A first, then B. A transform composed from
//     (t, r, s) applies scale, then rotation, then translation:
//     row_i(block) = s_i · row_i(r), row 3 = t.
//   - Mixed products (Rotation·Scale, Translation·Transform, ...) use
//     closed forms and return the type able to hold the result.
//
// Decomposition:
//
//	t, r, s := m.Decompose()
//
// recovers scale as the lengths of the block rows and rotation as the rows
// divided by their length. It assumes the block has no shear and positive
// scale. A negative factor combined with a 180° rotation about the same axis
// is indistinguishable from neither; this ambiguity is inherent to the
// representation and is preserved. TryDecompose rejects zero scale and shear,
// but cannot detect negative scale.
//
// AffineXY projects a transform onto the XY plane as a
// seehuhn.de/go/geom/matrix.Matrix for PDF and other 2D consumers.
//
// Contract violations (zero axis, zero scale factor, singular transform)
// go through package contract; Try… variants return the sentinel instead.
package transform
