package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10, cfg.CPU.CyclesPerFrame)
	assert.Equal(t, 0x200, cfg.CPU.StartAddress)
	assert.False(t, cfg.Quirks.LoadStoreKeepsIndex)
	assert.Equal(t, 20, cfg.Display.Scale)
	assert.Equal(t, 0x9FA8DA, cfg.Display.Foreground)
	assert.Equal(t, 0x1A237E, cfg.Display.Background)
	assert.Equal(t, 440, cfg.Audio.ToneHz)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
}

func TestParse(t *testing.T) {
	data := `# chopper
[cpu]
cycles_per_frame = 25

[quirks]
load_store_keeps_index = true

[display]
background = 0x000000
`
	cfg, err := Parse(strings.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 25, cfg.CPU.CyclesPerFrame)
	assert.Equal(t, 0x200, cfg.CPU.StartAddress)
	assert.True(t, cfg.Quirks.LoadStoreKeepsIndex)
	assert.Equal(t, 0, cfg.Display.Background)
	assert.Equal(t, 0x9FA8DA, cfg.Display.Foreground)
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"[cpu]\ncycles_per_frame = 0\n",
		"[cpu]\nstart_address = 0x1000\n",
		"[display]\nscale = 0\n",
		"[display]\nforeground = 0x1000000\n",
		"[audio]\nvolume = 1.5\n",
		"[audio]\ntone_hz = 5\n",
	}
	for _, data := range tests {
		_, err := Parse(strings.NewReader(data))
		assert.ErrorIs(t, err, ErrInvalid, data)
	}
}

func TestParseTypeMismatch(t *testing.T) {
	_, err := Parse(strings.NewReader("[cpu]\ncycles_per_frame = \"fast\"\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	assert.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "chopper.conf")
	assert.NoError(t, os.WriteFile(path, []byte("[display]\nscale = 8\n"), 0o644))
	cfg, err = Load(path)
	assert.NoError(t, err)
	assert.Equal(t, 8, cfg.Display.Scale)

	_, err = Load(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)
}
