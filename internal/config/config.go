// Package config loads named waveform presets from a YAML file. Presets
// are read-only input: the tool never writes configuration back to disk.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	werrors "github.com/dygy/wavegen/internal/errors"
	"github.com/dygy/wavegen/internal/modulation"
	"github.com/dygy/wavegen/internal/wave"
)

// File is one parsed preset file.
type File struct {
	Presets []Preset `yaml:"presets"`
}

// Preset names a complete waveform setup, optionally with modulation.
type Preset struct {
	Name      string  `yaml:"name"`
	Waveform  string  `yaml:"waveform"` // sine | square | triangle | sawtooth
	Frequency float64 `yaml:"frequency"`
	Amplitude float64 `yaml:"amplitude"`
	Phase     float64 `yaml:"phase"`      // sine only, radians
	Duty      float64 `yaml:"duty_cycle"` // square only
	Slope     float64 `yaml:"slope"`      // sawtooth only

	Modulation *ModulationPreset `yaml:"modulation,omitempty"`
}

// ModulationPreset configures an optional modulation stage on top of a
// preset's base waveform.
type ModulationPreset struct {
	Scheme      string  `yaml:"scheme"` // am | fm | pwm
	CarrierAmp  float64 `yaml:"carrier_amplitude"`
	CarrierFreq float64 `yaml:"carrier_frequency"`
	Index       float64 `yaml:"index"` // AM gain or FM beta
}

// Load reads and parses a preset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return &f, nil
}

// Find returns the preset with the given name.
func (f *File) Find(name string) (*Preset, error) {
	for i := range f.Presets {
		if f.Presets[i].Name == name {
			return &f.Presets[i], nil
		}
	}
	return nil, fmt.Errorf("preset %q: %w", name, werrors.ErrPresetNotFound)
}

// Build constructs the preset's base waveform.
func (p *Preset) Build() (wave.Waveform, error) {
	switch p.Waveform {
	case "sine":
		return wave.Sine{Freq: p.Frequency, Amp: p.Amplitude, Phase: p.Phase}, nil
	case "square":
		return wave.NewSquare(p.Frequency, p.Amplitude, p.Duty), nil
	case "triangle":
		return wave.Triangle{Freq: p.Frequency, Amp: p.Amplitude}, nil
	case "sawtooth":
		return wave.Sawtooth{Freq: p.Frequency, Amp: p.Amplitude, Slope: p.Slope}, nil
	default:
		return nil, fmt.Errorf("waveform %q: %w", p.Waveform, werrors.ErrUnknownKind)
	}
}

// BuildModulator constructs the preset's modulation stage over base, or
// returns nil when the preset has none.
func (p *Preset) BuildModulator(base wave.Waveform) (modulation.Modulator, error) {
	if p.Modulation == nil {
		return nil, nil
	}
	m := p.Modulation
	switch m.Scheme {
	case "am":
		return modulation.AM{
			CarrierAmp:  m.CarrierAmp,
			CarrierFreq: m.CarrierFreq,
			Index:       m.Index,
			Base:        base,
		}, nil
	case "fm":
		return modulation.FM{
			CarrierAmp:  m.CarrierAmp,
			CarrierFreq: m.CarrierFreq,
			Beta:        m.Index,
			Base:        base,
		}, nil
	case "pwm":
		return modulation.PWM{
			SwitchFreq: m.CarrierFreq,
			Amp:        m.CarrierAmp,
			Base:       base,
		}, nil
	default:
		return nil, fmt.Errorf("scheme %q: %w", m.Scheme, werrors.ErrUnknownScheme)
	}
}
