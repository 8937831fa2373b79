// Package audio emits the CHIP-8 beep tone while the sound timer runs.
package audio

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 48000
	toneHz     = 440
	volume     = 0.25

	bytesPerSample = 4 // one float32 channel
	period         = sampleRate / toneHz
)

// Beeper plays a square wave tone while active. The driver loop gates it
// with SetActive after each machine cycle; the audio device pulls samples
// on its own goroutine, so the gate is an atomic flag.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player
	active atomic.Bool
	phase  int
}

// NewBeeper opens the audio device and starts the sample stream.
func NewBeeper() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("opening audio context: %w", err)
	}
	<-ready

	b := &Beeper{ctx: ctx}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// SetActive starts or stops the tone.
func (b *Beeper) SetActive(active bool) {
	b.active.Store(active)
}

// Read produces the next chunk of samples: a square wave while active,
// silence otherwise. Called by the audio device.
func (b *Beeper) Read(p []byte) (int, error) {
	samples := len(p) / bytesPerSample
	active := b.active.Load()

	for i := 0; i < samples; i++ {
		var sample float32
		if active {
			if b.phase < period/2 {
				sample = volume
			} else {
				sample = -volume
			}
			b.phase = (b.phase + 1) % period
		} else {
			b.phase = 0
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(sample))
	}

	return samples * bytesPerSample, nil
}

// Close stops playback and releases the audio device.
func (b *Beeper) Close() error {
	if b.player != nil {
		if err := b.player.Close(); err != nil {
			return fmt.Errorf("closing audio player: %w", err)
		}
		b.player = nil
	}
	return nil
}

// Nop is the fallback when no audio device is available.
type Nop struct{}

// SetActive implements the beeper contract and does nothing.
func (Nop) SetActive(bool) {}

// Close implements the beeper contract and does nothing.
func (Nop) Close() error { return nil }
