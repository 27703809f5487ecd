// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/qmath/scalar"
)

// formatRows renders rows as name((r0c0,r0c1,...)(r1c0,...)...).
func formatRows[T scalar.Float](name string, rows ...[]T) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for _, row := range rows {
		b.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(scalar.Format(v))
		}
		b.WriteByte(')')
	}
	b.WriteByte(')')

	return b.String()
}
