package sdl

import (
	"fmt"

	"github.com/mnafees/chopper/v2/internal/tone"
	"github.com/veandco/go-sdl2/sdl"
)

const bufferLength = 512

// maxQueued caps the queued audio so that the beep does not lag behind the
// sound timer when frames are dropped
const maxQueued = 4 * bufferLength * 2

// Audio plays the beep tone through an SDL audio queue
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	buf  []byte
}

// NewAudio opens the default audio device for mono signed 16-bit samples
func NewAudio(sampleRate int) (*Audio, error) {
	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  bufferLength,
	}

	aud := &Audio{}
	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}

	sdl.PauseAudioDevice(aud.id, false)
	return aud, nil
}

// Queue appends the samples of one frame to the device queue
func (aud *Audio) Queue(samples []int) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueued {
		sdl.ClearQueuedAudio(aud.id)
	}
	aud.buf = tone.S16LE(aud.buf[:0], samples)
	if err := sdl.QueueAudio(aud.id, aud.buf); err != nil {
		return fmt.Errorf("queueing audio: %w", err)
	}
	return nil
}

// Close stops playback and releases the device
func (aud *Audio) Close() {
	sdl.ClearQueuedAudio(aud.id)
	sdl.CloseAudioDevice(aud.id)
}
