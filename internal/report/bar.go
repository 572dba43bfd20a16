package report

import (
	"math"
	"strings"
)

const (
	barFilled     = '█'
	barTransition = '▓'
	barEmpty      = '░'
)

// Bar renders percent as a bracketed glyph bar of exactly width+2 runes.
//
// The cell at the fill boundary gets a transition glyph, so a 0% bar
// starts with a transition cell and a 100% bar has no transition cell at
// all (the boundary falls past the last index). Percent is clamped to
// [0, 100] before rounding.
func Bar(percent float64, width int) string {
	if width < 0 {
		width = 0
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	filled := int(math.Round(percent / 100 * float64(width)))

	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			b.WriteRune(barFilled)
		case i == filled:
			b.WriteRune(barTransition)
		default:
			b.WriteRune(barEmpty)
		}
	}
	b.WriteByte(']')
	return b.String()
}
