package tone

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const wavFormatPCM = 1

// Recorder writes the generated tone to a mono 16-bit WAV file
type Recorder struct {
	file *os.File
	enc  *wav.Encoder
	buf  audio.IntBuffer
}

// NewRecorder creates filename and prepares it for samples at sampleRate
func NewRecorder(filename string, sampleRate int) (*Recorder, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("creating recording: %w", err)
	}
	return &Recorder{
		file: f,
		enc:  wav.NewEncoder(f, sampleRate, BitDepth, 1, wavFormatPCM),
		buf: audio.IntBuffer{
			Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
			SourceBitDepth: BitDepth,
		},
	}, nil
}

// Write appends samples to the recording
func (r *Recorder) Write(samples []int) error {
	r.buf.Data = samples
	if err := r.enc.Write(&r.buf); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}

// Close finalises the WAV header and closes the file
func (r *Recorder) Close() error {
	if err := r.enc.Close(); err != nil {
		_ = r.file.Close()
		return fmt.Errorf("finalising recording: %w", err)
	}
	return r.file.Close()
}
