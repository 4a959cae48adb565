// Package audio plays the short tone that marks a split boundary.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    beep.SampleRate = 44100
	toneFrequency                 = 880.0
	toneLength                    = 120 * time.Millisecond
	toneVolume                    = -1.5
)

// Chime holds a pre-rendered tone and plays it on demand.
type Chime struct {
	buffer *beep.Buffer
}

// NewChime initialises the speaker and renders the tone. A failure here means
// no audio device is usable.
func NewChime() (*Chime, error) {
	buf, err := renderTone(sampleRate, toneFrequency, toneLength)
	if err != nil {
		return nil, err
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initialize speaker: %w", err)
	}
	return &Chime{buffer: buf}, nil
}

// Play starts the tone and returns immediately. speaker.Play does its own
// locking, so concurrent calls are safe.
func (c *Chime) Play() {
	speaker.Play(c.buffer.Streamer(0, c.buffer.Len()))
}

// renderTone synthesizes a sine tone of the given length into a buffer.
func renderTone(sr beep.SampleRate, freq float64, length time.Duration) (*beep.Buffer, error) {
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("generate tone: %w", err)
	}
	quiet := &effects.Volume{
		Streamer: beep.Take(sr.N(length), tone),
		Base:     2,
		Volume:   toneVolume,
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(quiet)
	return buf, nil
}
