package banner

import (
	"errors"
	"fmt"
)

// Reset restores the terminal's default foreground color.
const Reset = "\x1b[0m"

// ErrColorBounds is returned when a hue sweep cannot close its cycle.
var ErrColorBounds = errors.New("invalid color bounds")

// RGB is a 24-bit color sample.
type RGB struct {
	R, G, B uint8
}

// ANSI returns the 24-bit foreground escape sequence for c.
func (c RGB) ANSI() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Bounds limits every channel of the sweep to [Min, Max], moving Step per sample.
type Bounds struct {
	Min  uint8
	Max  uint8
	Step uint8
}

// DefaultBounds keeps the sweep away from both black and white.
var DefaultBounds = Bounds{Min: 30, Max: 200, Step: 5}

// Validate checks that the sweep can reach Max from Min in whole steps.
func (b Bounds) Validate() error {
	if b.Min >= b.Max {
		return fmt.Errorf("%w: min %d must be below max %d", ErrColorBounds, b.Min, b.Max)
	}
	if b.Step == 0 {
		return fmt.Errorf("%w: step must be positive", ErrColorBounds)
	}
	if (b.Max-b.Min)%b.Step != 0 {
		return fmt.Errorf("%w: range %d-%d is not a multiple of step %d", ErrColorBounds, b.Min, b.Max, b.Step)
	}
	return nil
}

// ColorCycle sweeps through hues by ramping one channel up while the next
// one ramps down, handing off round-robin between R, G and B.
type ColorCycle struct {
	bounds Bounds
	rgb    [3]uint8
	active int
}

// NewColorCycle validates bounds and returns a sweep starting at (min, max, max).
func NewColorCycle(bounds Bounds) (*ColorCycle, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &ColorCycle{
		bounds: bounds,
		rgb:    [3]uint8{bounds.Min, bounds.Max, bounds.Max},
	}, nil
}

// Next advances the sweep by one step and returns the new color.
func (c *ColorCycle) Next() RGB {
	if c.rgb[c.active] == c.bounds.Max {
		c.active = (c.active + 1) % 3
	}
	c.rgb[c.active] += c.bounds.Step
	c.rgb[(c.active+1)%3] -= c.bounds.Step
	return RGB{R: c.rgb[0], G: c.rgb[1], B: c.rgb[2]}
}

// Skip advances the sweep n steps, discarding the samples.
func (c *ColorCycle) Skip(n int) {
	for i := 0; i < n; i++ {
		c.Next()
	}
}

// Take returns the next n samples.
func (c *ColorCycle) Take(n int) []RGB {
	out := make([]RGB, n)
	for i := range out {
		out[i] = c.Next()
	}
	return out
}

// Period returns the number of samples after which the sweep repeats.
func (c *ColorCycle) Period() int {
	return 3 * int(c.bounds.Max-c.bounds.Min) / int(c.bounds.Step)
}
