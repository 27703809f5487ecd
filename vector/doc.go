// SPDX-License-Identifier: MIT

// Package vector provides the small value types consumed by qmath matrices:
// Vec3 (x, y, z) and Vec4 (x, y, z, w).
//
// Vectors are row vectors. A matrix transforms a vector from the right:
//
//	v' = v · M
//
// so the Apply methods live on the matrix types, not here.
package vector
