// SPDX-License-Identifier: MIT

//go:build qmath_debug

package contract

const defaultMode = ModePanic
