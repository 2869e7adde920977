package tone

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/retroenv/retrogolib/assert"
)

func TestSilentByDefault(t *testing.T) {
	g := New(440, 44100, 0.5)
	assert.False(t, g.On())
	for _, s := range g.Next(128) {
		assert.Equal(t, 0, s)
	}
}

func TestSquareWave(t *testing.T) {
	g := New(1000, 8000, 1)
	g.Beep(true)
	assert.True(t, g.On())

	samples := g.Next(16)
	want := []int{
		maxAmplitude, maxAmplitude, maxAmplitude, maxAmplitude,
		-maxAmplitude, -maxAmplitude, -maxAmplitude, -maxAmplitude,
	}
	assert.Equal(t, want, samples[:8])
	assert.Equal(t, want, samples[8:])

	g.Beep(false)
	assert.Equal(t, 0, g.Next(1)[0])
}

func TestBeepRestartsPhase(t *testing.T) {
	g := New(1000, 8000, 1)
	g.Beep(true)
	g.Next(5)
	g.Beep(false)
	g.Beep(true)
	assert.Equal(t, maxAmplitude, g.Next(1)[0])
}

func TestSamplesPerFrame(t *testing.T) {
	g := New(440, 44100, 0.2)
	assert.Equal(t, 735, g.SamplesPerFrame(60))
	assert.Equal(t, 44100, g.SampleRate())
}

func TestS16LE(t *testing.T) {
	data := S16LE(nil, []int{1, -1, 0x1234})
	assert.Equal(t, []byte{0x01, 0x00, 0xFF, 0xFF, 0x34, 0x12}, data)
}

func TestRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	r, err := NewRecorder(path, 8000)
	assert.NoError(t, err)

	g := New(1000, 8000, 0.5)
	g.Beep(true)
	assert.NoError(t, r.Write(g.Next(800)))
	assert.NoError(t, r.Close())

	f, err := os.Open(path)
	assert.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	assert.True(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	assert.NoError(t, err)
	assert.Equal(t, 8000, buf.Format.SampleRate)
	assert.Equal(t, 1, buf.Format.NumChannels)
	assert.Len(t, buf.Data, 800)
}
