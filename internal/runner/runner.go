// Package runner wires a loaded CHIP-8 program to its configuration, sound
// and pacing. Frontends only render frames and forward key events.
package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/mnafees/chopper/v2/internal/config"
	"github.com/mnafees/chopper/v2/internal/snapshot"
	"github.com/mnafees/chopper/v2/internal/tone"
	"github.com/retroenv/retrogolib/log"
)

// ErrQuit is returned by a frame callback to stop Run without an error
var ErrQuit = errors.New("quit")

// Session is a loaded program ready to be driven by a frontend
type Session struct {
	Config  config.Config
	Options Options
	Logger  *log.Logger
	VM      *internal.C8VM
	Tone    *tone.Generator
	Palette snapshot.Palette

	recorder *tone.Recorder
}

// Frame is the outcome of one 60Hz frame
type Frame struct {
	// Redraw is set when the display changed since it was last presented
	Redraw bool
	// Samples holds the audio covering the frame, reused by the next frame
	Samples []int
}

// New loads the configuration and the ROM named in opts
func New(opts Options, logger *log.Logger) (*Session, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, err
	}
	if opts.Cycles != 0 {
		cfg.CPU.CyclesPerFrame = opts.Cycles
	}
	if opts.Scale != 0 {
		cfg.Display.Scale = opts.Scale
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(opts.ROM)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}

	gen := tone.New(cfg.Audio.ToneHz, cfg.Audio.SampleRate, cfg.Audio.Volume)
	vm := internal.NewC8VM(
		internal.WithLogger(logger),
		internal.WithSound(gen),
		internal.WithQuirks(internal.Quirks{
			LoadStoreKeepsIndex: cfg.Quirks.LoadStoreKeepsIndex,
		}),
	)
	vm.Initialize(uint16(cfg.CPU.StartAddress))
	if err := vm.LoadProgram(data); err != nil {
		return nil, err
	}

	s := &Session{
		Config:  cfg,
		Options: opts,
		Logger:  logger,
		VM:      vm,
		Tone:    gen,
		Palette: snapshot.NewPalette(cfg.Display.Foreground, cfg.Display.Background),
	}
	if opts.Record != "" {
		if s.recorder, err = tone.NewRecorder(opts.Record, cfg.Audio.SampleRate); err != nil {
			return nil, err
		}
	}

	logger.Info("program loaded",
		log.String("rom", opts.ROM),
		log.Int("size", len(data)),
		log.Int("cycles_per_frame", cfg.CPU.CyclesPerFrame),
	)
	return s, nil
}

// Frame executes the instructions of one frame, then ticks the timers once
// and renders the frame's audio
func (s *Session) Frame() (Frame, error) {
	for range s.Config.CPU.CyclesPerFrame {
		if _, err := s.VM.Step(); err != nil {
			s.dumpDisplay()
			return Frame{}, err
		}
		if s.VM.State() == internal.WaitingForKey {
			break
		}
	}
	s.VM.TickTimers()

	samples := s.Tone.Next(s.Tone.SamplesPerFrame(internal.TimerFrequency))
	if s.recorder != nil {
		if err := s.recorder.Write(samples); err != nil {
			return Frame{}, err
		}
	}
	return Frame{Redraw: s.VM.IsDrawFlagSet(), Samples: samples}, nil
}

// dumpDisplay logs the screen contents at the time of a fault
func (s *Session) dumpDisplay() {
	if !s.Logger.Enabled(context.Background(), log.DebugLevel) {
		return
	}
	fb := s.VM.Display()
	s.Logger.Debug("display at fault", log.String("screen", "\n"+fb.String()))
}

// Present returns the framebuffer to render and unsets the draw flag
func (s *Session) Present() internal.Framebuffer {
	fb := s.VM.Display()
	s.VM.UnsetDrawFlag()
	return fb
}

// Run calls Frame at 60Hz and passes every frame to fn, until ctx is
// cancelled, the VM faults or fn returns an error. ErrQuit and cancellation
// end the loop without an error.
func (s *Session) Run(ctx context.Context, fn func(Frame) error) error {
	ticker := time.NewTicker(time.Second / internal.TimerFrequency)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		frame, err := s.Frame()
		if err != nil {
			return err
		}
		if err := fn(frame); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}

// Close writes the requested screenshot and finalises the audio recording
func (s *Session) Close() error {
	var errs []error
	if s.Options.Screenshot != "" {
		fb := s.VM.Display()
		if err := snapshot.SaveBMP(s.Options.Screenshot, &fb, s.Palette, s.Config.Display.Scale); err != nil {
			errs = append(errs, err)
		} else {
			s.Logger.Info("screenshot saved", log.String("file", s.Options.Screenshot))
		}
	}
	if s.recorder != nil {
		if err := s.recorder.Close(); err != nil {
			errs = append(errs, err)
		}
		s.recorder = nil
	}
	s.Tone.Beep(false)
	return errors.Join(errs...)
}
