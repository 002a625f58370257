package banner

import "strings"

// RenderStatic renders block once, without scrolling. When colored, column i
// of every row is painted with the i-th sample drawn from colors.
func RenderStatic(block Glyph, colors *ColorCycle, colored bool) []string {
	out := make([]string, block.Height())
	if !colored {
		for i := range out {
			out[i] = string(block.rows[i])
		}
		return out
	}

	palette := colors.Take(block.Width())
	for i, row := range block.rows {
		var sb strings.Builder
		for col, r := range row {
			sb.WriteString(palette[col].ANSI())
			sb.WriteRune(r)
		}
		sb.WriteString(Reset)
		out[i] = sb.String()
	}
	return out
}

// SkipRandom moves the sweep to a random point of its cycle so the static
// banner does not always start on the same hue. intn must return a value in
// [0, n), as rand.IntN does. The number of skipped samples is returned.
func (c *ColorCycle) SkipRandom(intn func(n int) int) int {
	n := intn(c.Period())
	c.Skip(n)
	return n
}
