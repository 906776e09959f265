package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Session owns best-effort terminal state signals for an animation run:
// alternate screen, cursor visibility, clearing. It never queries the
// terminal, so calls are safe in any order.
type Session struct {
	out         io.Writer
	inAltScreen bool
}

// NewSession creates a session writing control sequences to out.
func NewSession(out io.Writer) *Session {
	return &Session{out: out}
}

// Begin prepares the terminal for animation: enters the alternate
// screen when requested, hides the cursor and clears the screen.
func (s *Session) Begin(useAltScreen bool) error {
	if useAltScreen {
		if _, err := s.out.Write(csiAltScreenEnter); err != nil {
			return err
		}
		s.inAltScreen = true
	}
	if _, err := s.out.Write(csiCursorHide); err != nil {
		return err
	}
	_, err := s.out.Write(csiClear)
	return err
}

// End restores the terminal: shows the cursor and leaves the alternate
// screen if Begin entered it. Safe to call without a prior Begin.
func (s *Session) End() error {
	if _, err := s.out.Write(csiCursorShow); err != nil {
		return err
	}
	if s.inAltScreen {
		s.inAltScreen = false
		if _, err := s.out.Write(csiAltScreenExit); err != nil {
			return err
		}
	}
	return nil
}

// EmergencyReset restores the terminal to a sane state from crash
// handlers: shows cursor, exits alternate screen, resets state.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiRIS)
}

// Size returns the terminal dimensions, reserving one row for the
// shell prompt. Falls back to 80x24 when not attached to a tty.
func Size() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	if h > 1 {
		h--
	}
	return w, h
}
