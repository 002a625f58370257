// Package banner implements the scrolling "AFK" banner: a cyclic source of
// glyph columns, a hue sweep that paints them, and the sliding window that
// fits the animation to the terminal width on every frame.
package banner

import (
	"errors"
	"fmt"
)

// Blank is the rune used for padding and for the gap between loops.
const Blank = ' '

// DefaultGap is the number of blank columns between two passes of the
// animated banner.
const DefaultGap = 20

// ErrDegeneratePattern is returned when a glyph block cannot be animated.
var ErrDegeneratePattern = errors.New("degenerate pattern")

// Glyph is an immutable block of ASCII-art rows. Rows may have different
// lengths; missing cells read as Blank.
type Glyph struct {
	rows  [][]rune
	width int
}

// NewGlyph builds a glyph block from its rows.
func NewGlyph(rows []string) Glyph {
	g := Glyph{rows: make([][]rune, len(rows))}
	for i, row := range rows {
		g.rows[i] = []rune(row)
		if len(g.rows[i]) > g.width {
			g.width = len(g.rows[i])
		}
	}
	return g
}

// Height returns the number of rows.
func (g Glyph) Height() int {
	return len(g.rows)
}

// Width returns the length of the longest row.
func (g Glyph) Width() int {
	return g.width
}

// At returns the rune at the given row and column, or Blank outside the row.
func (g Glyph) At(row, col int) rune {
	if row < 0 || row >= len(g.rows) || col < 0 || col >= len(g.rows[row]) {
		return Blank
	}
	return g.rows[row][col]
}

// Slice is one column of a glyph block, top to bottom.
type Slice []rune

// IsBlank reports whether every cell in the slice is Blank.
func (s Slice) IsBlank() bool {
	for _, r := range s {
		if r != Blank {
			return false
		}
	}
	return true
}

// PatternSource turns a glyph block into an endless sequence of vertical
// slices, followed by gap blank slices before the block repeats.
type PatternSource struct {
	columns []Slice
	blank   Slice
	gap     int
	idx     int
}

// NewPatternSource extracts the columns of block once. It fails when the
// block has no rows, no columns, or the gap is negative.
func NewPatternSource(block Glyph, gap int) (*PatternSource, error) {
	if block.Height() == 0 {
		return nil, fmt.Errorf("%w: glyph block has no rows", ErrDegeneratePattern)
	}
	if block.Width() == 0 {
		return nil, fmt.Errorf("%w: glyph block has no columns", ErrDegeneratePattern)
	}
	if gap < 0 {
		return nil, fmt.Errorf("%w: gap must not be negative, got %d", ErrDegeneratePattern, gap)
	}

	columns := make([]Slice, block.Width())
	for col := range columns {
		s := make(Slice, block.Height())
		for row := range s {
			s[row] = block.At(row, col)
		}
		columns[col] = s
	}

	blank := make(Slice, block.Height())
	for i := range blank {
		blank[i] = Blank
	}

	return &PatternSource{
		columns: columns,
		blank:   blank,
		gap:     gap,
	}, nil
}

// Height returns the row count of the underlying glyph block.
func (p *PatternSource) Height() int {
	return len(p.blank)
}

// Width returns the column count of the underlying glyph block.
func (p *PatternSource) Width() int {
	return len(p.columns)
}

// Period returns the number of slices before the sequence repeats.
func (p *PatternSource) Period() int {
	return len(p.columns) + p.gap
}

// Next returns the current slice and advances by one column.
// The returned slice is owned by the caller.
func (p *PatternSource) Next() Slice {
	src := p.blank
	if p.idx < len(p.columns) {
		src = p.columns[p.idx]
	}
	p.idx = (p.idx + 1) % p.Period()

	out := make(Slice, len(src))
	copy(out, src)
	return out
}
