// Package tone generates the square wave played while the CHIP-8 sound timer
// is running.
package tone

// BitDepth is the sample resolution produced by Generator
const BitDepth = 16

const maxAmplitude = 1<<(BitDepth-1) - 1

// Generator is a square wave oscillator that is switched on and off by the
// VM's sound timer. It implements internal.Sound. It is not safe for
// concurrent use, frontends call it from their frame loop.
type Generator struct {
	on         bool
	sampleRate int
	period     float64 // samples per cycle
	phase      float64
	amplitude  int
	buf        []int
}

// New returns a silent generator for a tone of hz at volume (0-1)
func New(hz, sampleRate int, volume float64) *Generator {
	return &Generator{
		sampleRate: sampleRate,
		period:     float64(sampleRate) / float64(hz),
		amplitude:  int(volume * maxAmplitude),
	}
}

// Beep switches the tone on or off
func (g *Generator) Beep(on bool) {
	if on && !g.on {
		g.phase = 0
	}
	g.on = on
}

// On reports whether the tone is currently sounding
func (g *Generator) On() bool {
	return g.on
}

// SampleRate returns the output rate in Hz
func (g *Generator) SampleRate() int {
	return g.sampleRate
}

// Next returns the next n signed 16-bit mono samples. The returned slice is
// reused by the following call.
func (g *Generator) Next(n int) []int {

	if cap(g.buf) < n {
		g.buf = make([]int, n)
	}
	buf := g.buf[:n]

	if !g.on {
		clear(buf)
		return buf
	}
	half := g.period / 2
	for i := range buf {
		if g.phase < half {
			buf[i] = g.amplitude
		} else {
			buf[i] = -g.amplitude
		}
		g.phase++
		if g.phase >= g.period {
			g.phase -= g.period
		}
	}
	return buf
}

// SamplesPerFrame returns the number of samples covering one 60Hz frame
func (g *Generator) SamplesPerFrame(frameRate int) int {
	return g.sampleRate / frameRate
}

// S16LE encodes samples as little-endian signed 16-bit PCM, appending to dst
func S16LE(dst []byte, samples []int) []byte {
	for _, s := range samples {
		v := uint16(int16(s))
		dst = append(dst, byte(v), byte(v>>8))
	}
	return dst
}
