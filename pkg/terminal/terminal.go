// Package terminal wraps the controlling terminal: raw key input, width
// queries and the escape sequences used to draw in place.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not a TTY.
var ErrNotTerminal = errors.New("not a terminal")

// Terminal is the raw-mode input and the output the banner is drawn on.
type Terminal struct {
	in    *os.File
	out   *os.File
	state *term.State
}

// IsTerminal checks if the file is a TTY.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Open puts in into raw mode so single key presses can be read without
// echo. Both files must be terminals. Close must be called to restore the
// previous mode.
func Open(in, out *os.File) (*Terminal, error) {
	if !IsTerminal(in) {
		return nil, fmt.Errorf("stdin: %w", ErrNotTerminal)
	}
	if !IsTerminal(out) {
		return nil, fmt.Errorf("stdout: %w", ErrNotTerminal)
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}

	return &Terminal{in: in, out: out, state: state}, nil
}

// Close restores the terminal mode saved by Open.
func (t *Terminal) Close() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.state)
	t.state = nil
	if err != nil {
		return fmt.Errorf("disabling raw mode: %w", err)
	}
	return nil
}

// Out returns the writer frames are drawn to.
func (t *Terminal) Out() io.Writer {
	return t.out
}

// Width returns the current column count of the output terminal.
func (t *Terminal) Width() (int, error) {
	width, _, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, fmt.Errorf("querying terminal size: %w", err)
	}
	return width, nil
}

// Keys signals once per read from the input. Any byte counts as a key
// press, including Ctrl+C, which raw mode delivers as input rather than a
// signal.
func (t *Terminal) Keys(ctx context.Context) <-chan struct{} {
	return WatchKeys(ctx, t.in)
}

// WatchKeys reads r in the background and sends on the returned channel
// for every non-empty read. The channel is closed when r fails. A pending
// Read cannot be interrupted, so the goroutine may outlive ctx until the
// next byte or process exit.
func WatchKeys(ctx context.Context, r io.Reader) <-chan struct{} {
	keys := make(chan struct{}, 1)
	go func() {
		defer close(keys)
		buf := make([]byte, 32)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				select {
				case keys <- struct{}{}:
				case <-ctx.Done():
					return
				default:
				}
			}
			if err != nil || ctx.Err() != nil {
				return
			}
		}
	}()
	return keys
}
