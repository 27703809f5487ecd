// SPDX-License-Identifier: MIT

package transform

import (
	"github.com/katalvlaran/qmath/matrix"
	"github.com/katalvlaran/qmath/scalar"
)

// Transformation is the closed set of four-row transforms: Transform4x3,
// Transform4x4, Translation4x3 and Translation4x4. Any of them can be the
// right operand of Transform4x3.Mul and Transform4x4.Mul.
type Transformation[T scalar.Float] interface {
	// Matrix4x4 returns the homogeneous 4x4 form.
	Matrix4x4() matrix.Matrix4x4[T]

	core() affine[T]
}

var (
	_ Transformation[float64] = Transform4x3[float64]{}
	_ Transformation[float64] = Transform4x4[float64]{}
	_ Translation[float64]    = Translation4x3[float64]{}
	_ Translation[float64]    = Translation4x4[float64]{}
)
