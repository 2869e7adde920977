// Package config contains the emulator settings read from a configuration
// file. Every setting has a default so that running without a file works.
//
// Example file:
//
//	[cpu]
//	cycles_per_frame = 10
//	start_address = 0x200
//
//	[quirks]
//	load_store_keeps_index = false
//
//	[display]
//	scale = 20
//	foreground = 0x9FA8DA
//	background = 0x1A237E
//
//	[audio]
//	tone_hz = 440
//	volume = 0.2
//	sample_rate = 44100
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/retrogolib/config"
)

// Config is the complete emulator configuration
type Config struct {
	CPU     CPU     `config:"cpu"`
	Quirks  Quirks  `config:"quirks"`
	Display Display `config:"display"`
	Audio   Audio   `config:"audio"`
}

// CPU contains the instruction pacing settings
type CPU struct {
	// CyclesPerFrame is the number of instructions executed per 60Hz frame
	CyclesPerFrame int `config:"cycles_per_frame,default=10"`
	StartAddress   int `config:"start_address,default=0x200"`
}

// Quirks mirrors internal.Quirks
type Quirks struct {
	LoadStoreKeepsIndex bool `config:"load_store_keeps_index,default=false"`
}

// Display contains the frontend rendering settings. Colours are 0xRRGGBB.
type Display struct {
	Scale      int `config:"scale,default=20"`
	Foreground int `config:"foreground,default=0x9FA8DA"`
	Background int `config:"background,default=0x1A237E"`
}

// Audio contains the beep tone settings
type Audio struct {
	ToneHz     int     `config:"tone_hz,default=440"`
	Volume     float64 `config:"volume,default=0.2"`
	SampleRate int     `config:"sample_rate,default=44100"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	cfg, err := Parse(strings.NewReader(""))
	if err != nil {
		// defaults are compile-time constants
		panic(err)
	}
	return cfg
}

// Load reads a configuration file. An empty filename returns Default().
func Load(filename string) (Config, error) {
	if filename == "" {
		return Default(), nil
	}
	doc, err := config.Open(filename, config.Options{})
	if err != nil {
		return Config{}, fmt.Errorf("opening config: %w", err)
	}
	return unmarshal(doc)
}

// Parse reads a configuration from r
func Parse(r io.Reader) (Config, error) {
	doc, err := config.Parse(r, config.Options{})
	if err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return unmarshal(doc)
}

func unmarshal(doc *config.Config) (Config, error) {
	var cfg Config
	if err := doc.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ErrInvalid is returned for out of range settings
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that all settings are in range
func (c Config) Validate() error {
	switch {
	case c.CPU.CyclesPerFrame < 1 || c.CPU.CyclesPerFrame > 10000:
		return fmt.Errorf("%w: cpu.cycles_per_frame %d not in 1-10000", ErrInvalid, c.CPU.CyclesPerFrame)
	case c.CPU.StartAddress < 0 || c.CPU.StartAddress > 0xFFE:
		return fmt.Errorf("%w: cpu.start_address %#x not in 0x000-0xFFE", ErrInvalid, c.CPU.StartAddress)
	case c.Display.Scale < 1 || c.Display.Scale > 64:
		return fmt.Errorf("%w: display.scale %d not in 1-64", ErrInvalid, c.Display.Scale)
	case !isColor(c.Display.Foreground):
		return fmt.Errorf("%w: display.foreground %#x is not a 0xRRGGBB colour", ErrInvalid, c.Display.Foreground)
	case !isColor(c.Display.Background):
		return fmt.Errorf("%w: display.background %#x is not a 0xRRGGBB colour", ErrInvalid, c.Display.Background)
	case c.Audio.ToneHz < 20 || c.Audio.ToneHz > 20000:
		return fmt.Errorf("%w: audio.tone_hz %d not in 20-20000", ErrInvalid, c.Audio.ToneHz)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume %g not in 0-1", ErrInvalid, c.Audio.Volume)
	case c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 192000:
		return fmt.Errorf("%w: audio.sample_rate %d not in 8000-192000", ErrInvalid, c.Audio.SampleRate)
	}
	return nil
}

func isColor(c int) bool {
	return c >= 0 && c <= 0xFFFFFF
}
