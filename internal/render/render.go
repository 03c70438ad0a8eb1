// Package render formats a Number as text, per spec.md §6.3.
package render

import (
	"strconv"
	"strings"

	"github.com/jbjava/padic/internal/digit"
	"github.com/jbjava/padic/internal/stream"
)

// Render prints n's integer digits from index viewSize-1 down to 0,
// most-significant first. If n's scale is negative, it then appends a
// '.' followed by the fractional digits from index -1 down to scale,
// with leading (most-significant-end) zeros of that fractional run
// stripped; if every fractional digit strips away, no '.' is printed.
func Render(n stream.Number, viewSize int) string {
	var sb strings.Builder
	for i := int64(viewSize) - 1; i >= 0; i-- {
		sb.WriteString(digitString(n.Base(), n.Digit(i)))
	}

	if s := n.Scale(); s < 0 {
		frac := make([]digit.Digit, 0, -s)
		for i := int64(-1); i >= s; i-- {
			frac = append(frac, n.Digit(i))
		}
		for len(frac) > 0 && frac[0] == 0 {
			frac = frac[1:]
		}
		if len(frac) > 0 {
			sb.WriteByte('.')
			for _, d := range frac {
				sb.WriteString(digitString(n.Base(), d))
			}
		}
	}
	return sb.String()
}

func digitString(base digit.Base, d digit.Digit) string {
	if base > 10 {
		return "(" + strconv.FormatUint(uint64(d), 10) + ")"
	}
	return strconv.FormatUint(uint64(d), 10)
}
