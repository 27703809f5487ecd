// SPDX-License-Identifier: MIT

//go:build qmath_single

package scalar

// Real is the library-wide default precision (32-bit build).
type Real = float32
