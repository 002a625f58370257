package animate

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/afkctl/afk/pkg/banner"
	"github.com/afkctl/afk/pkg/logging"
	"github.com/afkctl/afk/pkg/session"
	"github.com/afkctl/afk/pkg/terminal"
)

// WidthFunc reports the current terminal width in columns.
type WidthFunc func() (int, error)

// Options wires a Loop to its collaborators.
type Options struct {
	Buffer        *banner.ScrollBuffer
	Session       *session.Session
	Out           io.Writer
	Width         WidthFunc
	Ticker        Ticker
	Keys          <-chan struct{}
	Reasons       <-chan string
	ShowTimestamp bool
	Logger        *slog.Logger
}

// Loop redraws the banner on every tick until a key is pressed or the
// context is cancelled. Each frame is one column narrower than the terminal,
// so the last column stays free and the cursor never wraps. It is not safe
// for concurrent use.
type Loop struct {
	buffer        *banner.ScrollBuffer
	session       *session.Session
	out           io.Writer
	width         WidthFunc
	ticker        Ticker
	keys          <-chan struct{}
	reasons       <-chan string
	showTimestamp bool
	logger        *slog.Logger

	lastLines int
	lastWidth int
	frames    int
}

// NewLoop creates a loop. Keys and Reasons may be nil.
func NewLoop(opts Options) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Loop{
		buffer:        opts.Buffer,
		session:       opts.Session,
		out:           opts.Out,
		width:         opts.Width,
		ticker:        opts.Ticker,
		keys:          opts.Keys,
		reasons:       opts.Reasons,
		showTimestamp: opts.ShowTimestamp,
		logger:        logger,
	}
}

// Frames returns how many frames have been drawn.
func (l *Loop) Frames() int {
	return l.frames
}

// Run draws the first frame immediately, then one frame per tick. It
// returns nil when stopped by a key press or by ctx.
func (l *Loop) Run(ctx context.Context) error {
	defer l.ticker.Stop()

	if err := l.draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("animation interrupted", "frames", l.frames)
			return nil

		case _, ok := <-l.keys:
			if !ok {
				// Input is gone; only a signal can stop us now.
				l.logger.Warn("key input closed")
				l.keys = nil
				continue
			}
			l.logger.Info("key pressed", "frames", l.frames)
			return nil

		case reason, ok := <-l.reasons:
			if !ok {
				l.reasons = nil
				continue
			}
			if reason != l.session.Reason {
				l.logger.Info("reason updated", "reason", reason)
				l.session.Reason = reason
			}

		case <-l.ticker.C():
			if err := l.draw(); err != nil {
				return err
			}
		}
	}
}

// draw fits the window to the terminal and repaints it over the previous frame.
func (l *Loop) draw() error {
	width, err := l.width()
	if err != nil {
		return fmt.Errorf("reading terminal width: %w", err)
	}
	if width < 1 {
		width = 1
	}
	if width != l.lastWidth {
		l.logger.Debug("terminal resized", "from", l.lastWidth, "to", width)
		l.lastWidth = width
	}

	rows := l.buffer.Update(width)

	var sb strings.Builder
	sb.WriteString(terminal.CursorPrevLine(l.lastLines))
	for _, row := range rows {
		sb.WriteString(row)
		sb.WriteString(terminal.ClearToEOL)
		sb.WriteString(terminal.Newline)
	}
	lines := len(rows)

	if footer, ok := l.session.Footer(l.showTimestamp); ok {
		sb.WriteString(footer)
		sb.WriteString(terminal.ClearToEOL)
		sb.WriteString(terminal.Newline)
		lines++
	}

	// The footer may have vanished since the last frame; blank its old line.
	for i := lines; i < l.lastLines; i++ {
		sb.WriteString(terminal.ClearLine)
		sb.WriteString(terminal.Newline)
		lines++
	}

	if _, err := io.WriteString(l.out, sb.String()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	l.lastLines = lines
	l.frames++
	return nil
}
