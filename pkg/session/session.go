// Package session tracks one away period: when it started, why, and how
// long it lasted.
package session

import (
	"strings"

	"github.com/google/uuid"
)

// Session is a single away period.
type Session struct {
	ID     string
	Reason string
	Timer  *Timer
}

// New starts a session with a fresh ID.
func New(reason string, clock Clock) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Reason: reason,
		Timer:  StartTimer(clock),
	}
}

// Footer returns the metadata line printed under the banner. The timing part
// is omitted when showTimestamp is false; ok is false when there is nothing
// to print at all.
func (s *Session) Footer(showTimestamp bool) (line string, ok bool) {
	var parts []string

	if showTimestamp {
		if s.Timer.Measuring() {
			parts = append(parts, "left from "+s.Timer.FormatStart())
		} else {
			parts = append(parts, "left from "+s.Timer.FormatStart()+
				" to "+s.Timer.FormatEnd()+
				" ("+s.Timer.FormatDuration()+")")
		}
	}
	if s.Reason != "" {
		parts = append(parts, "reason: "+s.Reason)
	}

	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, " | "), true
}
