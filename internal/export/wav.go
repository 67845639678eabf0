// Package export writes a sampled signal to a 16-bit mono PCM WAV file.
// This is an offline file render; nothing here touches a sound device.
package export

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	werrors "github.com/dygy/wavegen/internal/errors"
	"github.com/dygy/wavegen/internal/sequence"
)

// Options controls one WAV render.
type Options struct {
	SampleRate int     // samples per second
	Cycles     int     // number of periods to write
	Scale      float64 // peak amplitude mapped to full scale; 0 treated as 1
}

// DefaultOptions returns the default render settings
func DefaultOptions() Options {
	return Options{SampleRate: 44100, Cycles: 1, Scale: 1}
}

// WriteWAV samples src over opts.Cycles periods and encodes the result.
func WriteWAV(path string, src sequence.Source, period float64, opts Options) error {
	if opts.SampleRate <= 0 || opts.Cycles <= 0 {
		return fmt.Errorf("export: sample rate and cycles must be > 0")
	}
	if period <= 0 {
		return fmt.Errorf("export: %w", werrors.ErrNonPositiveFrequency)
	}
	scale := opts.Scale
	if scale == 0 {
		scale = 1
	}

	n := int(float64(opts.SampleRate) * period * float64(opts.Cycles))
	if n == 0 {
		return fmt.Errorf("export: %w", werrors.ErrEmptySequence)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: opts.SampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, n),
	}
	for i := range buf.Data {
		t := float64(i) / float64(opts.SampleRate)
		v := src(t) / scale
		if v > 1 {
			v = 1
		}
		if v < -1 {
			v = -1
		}
		buf.Data[i] = int(v * 32767)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, opts.SampleRate, 16, 1, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("export: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("export: finalize: %w", err)
	}
	return nil
}
