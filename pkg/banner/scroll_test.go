package banner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuffer(t *testing.T, colored bool) *ScrollBuffer {
	t.Helper()
	src, err := NewPatternSource(testGlyph(), 2)
	require.NoError(t, err)
	return NewScrollBuffer(src, newTestCycle(t), colored)
}

func TestScrollBuffer_Height(t *testing.T) {
	b := newTestBuffer(t, false)
	assert.Equal(t, 3, b.Height())
	assert.Equal(t, 0, b.Width())
}

func TestScrollBuffer_ScrollsWithPeriod(t *testing.T) {
	b := newTestBuffer(t, false)

	want := []string{"bcde", "cde ", "de  ", "e  a", "  ab", " abc", "abcd"}
	var frames [][]string
	for i := 0; i < 3*len(want); i++ {
		frames = append(frames, b.Update(5))
	}

	for i, w := range want {
		assert.Equal(t, w, frames[i][0], "frame %d", i)
	}
	assert.Equal(t, []string{"bcde", "ghij", "lmno"}, frames[0])
	assert.Equal(t, []string{" abc", " fgh", " klm"}, frames[5])

	for i := 0; i+7 < len(frames); i++ {
		assert.Equal(t, frames[i], frames[i+7], "frame %d vs %d", i, i+7)
	}
}

func TestScrollBuffer_WidthAfterUpdate(t *testing.T) {
	b := newTestBuffer(t, true)

	for _, target := range []int{5, 5, 10, 40, 40, 3, 3, 1, 1, 12, 7, 80} {
		rows := b.Update(target)
		require.Equal(t, target-1, b.Width(), "target %d", target)
		require.Len(t, rows, 3)
		require.Len(t, b.palette, b.Width(), "target %d", target)
		for i, row := range b.rows {
			require.Len(t, row, b.Width(), "row %d at target %d", i, target)
		}
	}
}

func TestScrollBuffer_Narrowing(t *testing.T) {
	b := newTestBuffer(t, false)

	b.Update(20)
	require.Equal(t, 19, b.Width())

	rows := b.Update(3)
	assert.Equal(t, 2, b.Width())
	for _, row := range rows {
		assert.Len(t, row, 2)
	}

	b.Update(3)
	assert.Equal(t, 2, b.Width())
}

func TestScrollBuffer_Widening(t *testing.T) {
	b := newTestBuffer(t, false)

	b.Update(5)
	rows := b.Update(10)

	// Six columns were appended and the oldest one evicted.
	assert.Equal(t, 9, b.Width())
	assert.Equal(t, "cde  abcd", rows[0])
}

func TestScrollBuffer_TargetOne(t *testing.T) {
	b := newTestBuffer(t, true)

	for i := 0; i < 10; i++ {
		rows := b.Update(1)
		assert.Equal(t, 0, b.Width())
		for _, row := range rows {
			assert.Equal(t, Reset, row)
		}
	}
}

func TestScrollBuffer_SameWidthAdvances(t *testing.T) {
	b := newTestBuffer(t, false)

	first := b.Update(8)
	second := b.Update(8)

	assert.Equal(t, b.Width(), len(second[0]))
	assert.NotEqual(t, first, second)
}

func TestScrollBuffer_InvalidTargetPanics(t *testing.T) {
	b := newTestBuffer(t, false)

	assert.Panics(t, func() { b.Update(0) })
	assert.Panics(t, func() { b.Update(-3) })
}

func TestScrollBuffer_EvictEmptyPanics(t *testing.T) {
	b := newTestBuffer(t, false)
	assert.Panics(t, func() { b.pop() })
}

func TestScrollBuffer_InvariantViolationsPanic(t *testing.T) {
	t.Run("ragged rows", func(t *testing.T) {
		b := newTestBuffer(t, false)
		b.Update(6)
		b.rows[1] = append(b.rows[1], 'x')
		assert.Panics(t, func() { b.Render() })
	})

	t.Run("short palette", func(t *testing.T) {
		b := newTestBuffer(t, true)
		b.Update(6)
		b.palette = b.palette[1:]
		assert.Panics(t, func() { b.Render() })
	})
}

func TestScrollBuffer_UncoloredHasNoEscapes(t *testing.T) {
	b := newTestBuffer(t, false)

	for _, target := range []int{4, 12, 30, 2} {
		for _, row := range b.Update(target) {
			assert.NotContains(t, row, "\x1b")
		}
	}
}

func TestScrollBuffer_ColorRetention(t *testing.T) {
	src, err := NewPatternSource(NewGlyph([]string{"a b"}), 0)
	require.NoError(t, err)
	b := NewScrollBuffer(src, newTestCycle(t), true)

	rows := b.Update(4)
	require.Equal(t, 3, b.Width())

	// Four pushes consumed 32 samples; each push keeps the buffer tail, so the
	// window ends with samples 30, 31 and 32, and the first one was evicted.
	ref := newTestCycle(t).Take(32)
	assert.Equal(t, []RGB{ref[29], ref[30], ref[31]}, b.palette)

	want := " " + ref[30].ANSI() + "b" + ref[31].ANSI() + "a" + Reset
	assert.Equal(t, want, rows[0])
}

func TestScrollBuffer_ColoredSkipsBlanks(t *testing.T) {
	b := newTestBuffer(t, true)

	for i := 0; i < 20; i++ {
		rows := b.Update(9)
		for r, row := range rows {
			assert.True(t, strings.HasSuffix(row, Reset), "row %d", r)

			plain := b.rows[r]
			var painted int
			for _, ch := range plain {
				if ch != Blank {
					painted++
				}
			}
			assert.Equal(t, painted, strings.Count(row, "\x1b[38;2;"), "row %d", r)
		}
	}
}

func TestScrollBuffer_Render_DoesNotAdvance(t *testing.T) {
	b := newTestBuffer(t, true)

	rows := b.Update(6)
	assert.Equal(t, rows, b.Render())
	assert.Equal(t, 5, b.Width())
}

func TestNewScrollBuffer_ColoredNeedsCycle(t *testing.T) {
	src, err := NewPatternSource(testGlyph(), 2)
	require.NoError(t, err)

	assert.Panics(t, func() { NewScrollBuffer(src, nil, true) })
	assert.NotPanics(t, func() { NewScrollBuffer(src, nil, false) })
}
