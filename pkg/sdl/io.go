package sdl

import (
	"context"
	"fmt"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/internal/runner"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

// IO is the input/output abstraction layer for the VM
type IO struct {
	window  *sdl.Window
	surface *sdl.Surface
	audio   *Audio

	pixelSize   int32
	screenColor uint32
	spriteColor uint32

	session *runner.Session
}

// NewIO returns a new I/O instance for the SDL frontend
func NewIO(session *runner.Session) *IO {
	display := session.Config.Display
	return &IO{
		pixelSize:   int32(display.Scale),
		screenColor: uint32(display.Background),
		spriteColor: uint32(display.Foreground),
		session:     session,
	}
}

// SetupWindow initialises and sets up the main SDL window and the audio
// device
func (io *IO) SetupWindow(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initialising SDL: %w", err)
	}

	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		internal.ScreenWidth*io.pixelSize, internal.ScreenHeight*io.pixelSize, sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	io.window = window
	io.surface, err = window.GetSurface()
	if err != nil {
		io.Destroy()
		return fmt.Errorf("getting window surface: %w", err)
	}
	if err := io.surface.FillRect(nil, io.screenColor); err != nil {
		io.Destroy()
		return fmt.Errorf("clearing window surface: %w", err)
	}

	io.audio, err = NewAudio(io.session.Tone.SampleRate())
	if err != nil {
		// the emulator stays usable without sound
		io.session.Logger.Warn("audio unavailable", log.Err(err))
	}
	return nil
}

// Destroy should be called before quitting the application
func (io *IO) Destroy() {
	if io.audio != nil {
		io.audio.Close()
	}
	if io.window != nil {
		_ = io.window.Destroy()
	}
	sdl.Quit()
}

// Loop is the main application loop. It returns when the window is closed,
// ctx is cancelled or the VM faults.
func (io *IO) Loop(ctx context.Context) error {
	return io.session.Run(ctx, func(frame runner.Frame) error {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch t := event.(type) {
			case *sdl.KeyboardEvent:
				if t.Repeat != 0 {
					continue
				}
				code, ok := keymap(t.Keysym.Scancode)
				if !ok {
					continue
				}
				io.session.VM.SetKey(code, t.GetType() == sdl.KEYDOWN)
			case *sdl.QuitEvent:
				return runner.ErrQuit
			}
		}

		if io.audio != nil {
			if err := io.audio.Queue(frame.Samples); err != nil {
				return err
			}
		}

		if frame.Redraw {
			return io.draw()
		}
		return nil
	})
}

// Draws the current sprite configuration on screen
func (io *IO) draw() error {
	pixels := io.session.Present()
	if err := io.surface.FillRect(nil, io.screenColor); err != nil {
		return fmt.Errorf("clearing window surface: %w", err)
	}
	for w := int32(0); w < internal.ScreenWidth; w++ {
		for h := int32(0); h < internal.ScreenHeight; h++ {
			if pixels.At(int(w), int(h)) {
				rect := &sdl.Rect{X: w * io.pixelSize, Y: h * io.pixelSize, W: io.pixelSize, H: io.pixelSize}
				if err := io.surface.FillRect(rect, io.spriteColor); err != nil {
					return fmt.Errorf("drawing pixel: %w", err)
				}
			}
		}
	}
	return io.window.UpdateSurface()
}

// Maps keys from a QWERTY keyboard to the keypad used by CHIP-8
// Below we have a mapping QWERTY keyboard to the CHIP-8 keypad
// +--------+--------+--------+--------+
// | 1 -> 1 | 2 -> 2 | 3 -> 3 | 4 -> C |
// +--------+--------+--------+--------+
// | Q -> 4 | W -> 5 | E -> 6 | R -> D |
// +--------+--------+--------+--------+
// | A -> 7 | S -> 8 | D -> 9 | F -> E |
// +--------+--------+--------+--------+
// | Z -> A | X -> 0 | C -> B | V -> F |
// +--------+--------+--------+--------+
// Scancodes are used so that the keypad keeps its position on other layouts.
func keymap(code sdl.Scancode) (uint8, bool) {
	switch code {
	case sdl.SCANCODE_1:
		return 0x1, true
	case sdl.SCANCODE_2:
		return 0x2, true
	case sdl.SCANCODE_3:
		return 0x3, true
	case sdl.SCANCODE_4:
		return 0xC, true
	case sdl.SCANCODE_Q:
		return 0x4, true
	case sdl.SCANCODE_W:
		return 0x5, true
	case sdl.SCANCODE_E:
		return 0x6, true
	case sdl.SCANCODE_R:
		return 0xD, true
	case sdl.SCANCODE_A:
		return 0x7, true
	case sdl.SCANCODE_S:
		return 0x8, true
	case sdl.SCANCODE_D:
		return 0x9, true
	case sdl.SCANCODE_F:
		return 0xE, true
	case sdl.SCANCODE_Z:
		return 0xA, true
	case sdl.SCANCODE_X:
		return 0x0, true
	case sdl.SCANCODE_C:
		return 0xB, true
	case sdl.SCANCODE_V:
		return 0xF, true
	default:
		return 0, false
	}
}
