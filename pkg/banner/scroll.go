package banner

import (
	"fmt"
	"strings"
)

// colorsPerColumn is how many hue steps are consumed for every column the
// window advances. The sweep therefore moves faster than the text scrolls.
const colorsPerColumn = 8

// ScrollBuffer is the visible window of the animation. Its height is fixed
// by the pattern; its width follows the target passed to Update.
type ScrollBuffer struct {
	source  *PatternSource
	colors  *ColorCycle
	colored bool

	rows    [][]rune
	palette []RGB
}

// NewScrollBuffer creates an empty window over source. colors is only
// consulted when colored is true and may be nil otherwise.
func NewScrollBuffer(source *PatternSource, colors *ColorCycle, colored bool) *ScrollBuffer {
	if colored && colors == nil {
		panic("banner: colored scroll buffer needs a color cycle")
	}
	return &ScrollBuffer{
		source:  source,
		colors:  colors,
		colored: colored,
		rows:    make([][]rune, source.Height()),
	}
}

// Height returns the number of rows in the window.
func (b *ScrollBuffer) Height() int {
	return len(b.rows)
}

// Width returns the current number of columns in the window.
func (b *ScrollBuffer) Width() int {
	if len(b.rows) == 0 {
		return 0
	}
	return len(b.rows[0])
}

// Update advances the animation by at least one column, fits the window to
// target and returns the rendered rows. target must be positive.
//
// Columns are appended until the window is at least target wide, then
// evicted from the front until it is narrower than target, so a completed
// update always leaves target-1 columns on screen.
func (b *ScrollBuffer) Update(target int) []string {
	if target <= 0 {
		panic(fmt.Sprintf("banner: target width must be positive, got %d", target))
	}

	for b.push() < target {
	}
	for b.pop() >= target {
	}

	return b.Render()
}

// push appends one column and returns the new width.
func (b *ScrollBuffer) push() int {
	slice := b.source.Next()
	for i := range b.rows {
		b.rows[i] = append(b.rows[i], slice[i])
	}

	if b.colored {
		keep := len(b.palette) + 1
		b.palette = append(b.palette, b.colors.Take(colorsPerColumn)...)
		b.palette = b.palette[len(b.palette)-keep:]
	}

	return b.Width()
}

// pop evicts the oldest column and returns the new width.
func (b *ScrollBuffer) pop() int {
	if b.Width() == 0 {
		panic("banner: cannot evict a column from an empty window")
	}
	for i := range b.rows {
		b.rows[i] = b.rows[i][1:]
	}
	if b.colored {
		b.palette = b.palette[1:]
	}
	return b.Width()
}

// checkInvariants panics if rows or colors have drifted out of alignment.
func (b *ScrollBuffer) checkInvariants() {
	width := b.Width()
	for i, row := range b.rows {
		if len(row) != width {
			panic(fmt.Sprintf("banner: row %d has %d columns, row 0 has %d", i, len(row), width))
		}
	}
	if b.colored && len(b.palette) != width {
		panic(fmt.Sprintf("banner: %d colors for %d columns", len(b.palette), width))
	}
}

// Render serializes the window without advancing it. Blank cells are never
// painted; each colored row ends with Reset.
func (b *ScrollBuffer) Render() []string {
	b.checkInvariants()

	out := make([]string, len(b.rows))
	for i, row := range b.rows {
		if !b.colored {
			out[i] = string(row)
			continue
		}

		var sb strings.Builder
		for col, r := range row {
			if r != Blank {
				sb.WriteString(b.palette[col].ANSI())
			}
			sb.WriteRune(r)
		}
		sb.WriteString(Reset)
		out[i] = sb.String()
	}
	return out
}
