// Package tty renders the VM in a terminal and reads the keypad from raw
// terminal input.
package tty

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/mnafees/chopper/v2/internal/keypad"
	"github.com/mnafees/chopper/v2/internal/runner"
	"github.com/pkg/term"
	"github.com/retroenv/retrogolib/log"
)

// DefaultDevice is the controlling terminal
const DefaultDevice = "/dev/tty"

const (
	keyCtrlC = 3
	keyEsc   = 27

	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearScreen = "\x1b[2J"
	bell        = "\a"
)

// IO is the terminal frontend
type IO struct {
	term    *term.Term
	session *runner.Session
	keys    *Keys
	input   chan byte
	out     bytes.Buffer
	beeping bool
}

// NewIO returns a terminal frontend for session
func NewIO(session *runner.Session) *IO {
	return &IO{
		session: session,
		keys:    NewKeys(session.VM.SetKey),
		input:   make(chan byte, 64),
	}
}

// Open puts the terminal device into raw mode
func (io *IO) Open(device string) error {
	t, err := term.Open(device, term.RawMode)
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	io.term = t
	if _, err := t.Write([]byte(hideCursor + clearScreen)); err != nil {
		io.Destroy()
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}

// Destroy restores the terminal state
func (io *IO) Destroy() {
	if io.term == nil {
		return
	}
	_, _ = io.term.Write([]byte(resetColor + showCursor + "\r\n"))
	_ = io.term.Restore()
	_ = io.term.Close()
	io.term = nil
}

// Loop runs the program until Ctrl-C or Esc is pressed, ctx is cancelled or
// the VM faults
func (io *IO) Loop(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go readInput(io.term, io.input, done)

	fb := io.session.Present()
	Render(&io.out, &fb, io.session.Palette)
	if err := io.flush(); err != nil {
		return err
	}

	return io.session.Run(ctx, func(frame runner.Frame) error {
		if quit := io.handleInput(); quit {
			return runner.ErrQuit
		}
		io.keys.Tick()

		on := io.session.Tone.On()
		if on && !io.beeping {
			io.out.WriteString(bell)
		}
		io.beeping = on

		if frame.Redraw {
			fb := io.session.Present()
			Render(&io.out, &fb, io.session.Palette)
		}
		return io.flush()
	})
}

// readInput forwards bytes read from r to input until r fails or done is
// closed. input is closed on return.
func readInput(r io.Reader, input chan<- byte, done <-chan struct{}) {
	defer close(input)
	buf := make([]byte, 16)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			select {
			case input <- b:
			case <-done:
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// handleInput drains the pending input and returns whether to quit
func (io *IO) handleInput() bool {
	for {
		select {
		case b, ok := <-io.input:
			if !ok {
				return true
			}
			if b == keyCtrlC || b == keyEsc {
				return true
			}
			if code, ok := keypad.FromRune(rune(b)); ok {
				io.keys.Press(code)
			} else {
				io.session.Logger.Debug("unmapped key", log.Uint8("byte", b))
			}
		default:
			return false
		}
	}
}

func (io *IO) flush() error {
	if io.out.Len() == 0 {
		return nil
	}
	_, err := io.term.Write(io.out.Bytes())
	io.out.Reset()
	if err != nil {
		return fmt.Errorf("writing to terminal: %w", err)
	}
	return nil
}
