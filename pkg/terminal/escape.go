package terminal

import "fmt"

// Escape sequences used to take over and give back the screen.
const (
	HideCursor      = "\x1b[?25l"
	ShowCursor      = "\x1b[?25h"
	EnterAltScreen  = "\x1b[?1049h"
	LeaveAltScreen  = "\x1b[?1049l"
	DisableAutowrap = "\x1b[?7l"
	EnableAutowrap  = "\x1b[?7h"
	ClearToEOL      = "\x1b[K"
	ClearLine       = "\x1b[2K"
)

// Newline moves to the start of the next line. Raw mode turns off output
// post-processing, so a bare "\n" would not return the carriage.
const Newline = "\r\n"

// CursorPrevLine moves the cursor to the first column n lines up.
func CursorPrevLine(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dF", n)
}
