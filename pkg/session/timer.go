package session

import (
	"fmt"
	"time"
)

// TimeFormat is the layout used for the start and end stamps in the footer.
const TimeFormat = "01/02 15:04:05"

// Clock returns the current time. Tests replace it to freeze time.
type Clock func() time.Time

// Timer measures how long the user has been away.
type Timer struct {
	clock    Clock
	start    time.Time
	end      time.Time
	finished bool
}

// StartTimer starts measuring at clock().
func StartTimer(clock Clock) *Timer {
	if clock == nil {
		clock = time.Now
	}
	return &Timer{clock: clock, start: clock()}
}

// Finish stops the timer. Calling it again moves the end to the current time.
func (t *Timer) Finish() {
	t.end = t.clock()
	t.finished = true
}

// Measuring reports whether the timer is still running.
func (t *Timer) Measuring() bool {
	return !t.finished
}

// Start returns when the timer started.
func (t *Timer) Start() time.Time {
	return t.start
}

// End returns when the timer finished, or now while it is still running.
func (t *Timer) End() time.Time {
	if t.finished {
		return t.end
	}
	return t.clock()
}

// Elapsed returns the measured duration so far.
func (t *Timer) Elapsed() time.Duration {
	return t.End().Sub(t.start)
}

// FormatStart formats the start time with TimeFormat.
func (t *Timer) FormatStart() string {
	return t.start.Format(TimeFormat)
}

// FormatEnd formats the end time with TimeFormat.
func (t *Timer) FormatEnd() string {
	return t.End().Format(TimeFormat)
}

// FormatDuration formats the elapsed time.
func (t *Timer) FormatDuration() string {
	return FormatDuration(t.Elapsed())
}

// FormatDuration renders d as "5h3m", "3m10s" or "49.11s" depending on its size.
func FormatDuration(d time.Duration) string {
	hours := int64(d / time.Hour)
	minutes := int64(d / time.Minute)
	seconds := int64(d / time.Second)

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes%60)
	case minutes > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds%60)
	default:
		centis := int64(d/time.Millisecond) % 1000 / 10
		return fmt.Sprintf("%d.%02ds", seconds, centis)
	}
}
