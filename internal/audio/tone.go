// Package audio synthesizes the game's sound cues and plays them through
// pluggable backends. Everything here is fire-and-forget: a backend that
// cannot play stays silent instead of failing the game.
package audio

import (
	"math"
	"time"
)

// SampleRate is the output rate of synthesized PCM.
const SampleRate = 44100

// MasterGain scales the final mix.
const MasterGain = 0.35

// envelopeFloor is the near-silent level envelopes start from and decay to.
const envelopeFloor = 0.0001

// tail keeps the oscillator running briefly after the release ends.
const tail = 20 * time.Millisecond

// Waveform is the oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Sawtooth
)

// String returns the waveform name.
func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Sawtooth:
		return "sawtooth"
	default:
		return "unknown"
	}
}

// sample evaluates the waveform at phase p in [0, 1).
func (w Waveform) sample(p float64) float64 {
	switch w {
	case Square:
		if p < 0.5 {
			return 1
		}
		return -1
	case Triangle:
		return 1 - 4*math.Abs(p-0.5)
	case Sawtooth:
		return 2*p - 1
	default:
		return math.Sin(2 * math.Pi * p)
	}
}

// Tone is one oscillator note with a pitch glide and an
// attack / exponential-release envelope.
type Tone struct {
	Frequency float64 // Hz at the start
	PitchEnd  float64 // Hz at the end of Duration; 0 keeps Frequency
	Duration  time.Duration
	Waveform  Waveform
	Volume    float64
	Attack    time.Duration
	Release   time.Duration
}

// withDefaults fills the envelope defaults used by every cue.
func (t Tone) withDefaults() Tone {
	if t.Volume == 0 {
		t.Volume = 0.3
	}
	if t.Attack == 0 {
		t.Attack = 10 * time.Millisecond
	}
	if t.Release == 0 {
		t.Release = 120 * time.Millisecond
	}
	if t.PitchEnd == 0 {
		t.PitchEnd = t.Frequency
	}
	return t
}

// Length returns how long the tone sounds, including its release.
func (t Tone) Length() time.Duration {
	t = t.withDefaults()
	return t.Duration + t.Release + tail
}

// frequencyAt returns the glide frequency at time s seconds.
func (t Tone) frequencyAt(s float64) float64 {
	d := t.Duration.Seconds()
	if d <= 0 || s >= d {
		return t.PitchEnd
	}
	return t.Frequency + (t.PitchEnd-t.Frequency)*s/d
}

// gainAt returns the envelope gain at time s seconds.
func (t Tone) gainAt(s float64) float64 {
	attack := t.Attack.Seconds()
	end := (t.Duration + t.Release).Seconds()

	if s < attack {
		return envelopeFloor + (t.Volume-envelopeFloor)*s/attack
	}
	if s >= end {
		return envelopeFloor
	}
	// Exponential ramp from Volume at the attack peak to the floor at end.
	ratio := (s - attack) / (end - attack)
	return t.Volume * math.Pow(envelopeFloor/t.Volume, ratio)
}

// render writes the tone into a mono float buffer, mixing with what is there.
func (t Tone) render(buf []float64, sampleRate int) {
	t = t.withDefaults()
	length := t.Length().Seconds()
	phase := 0.0
	for i := range buf {
		s := float64(i) / float64(sampleRate)
		if s >= length {
			break
		}
		buf[i] += t.Waveform.sample(phase) * t.gainAt(s)
		phase += t.frequencyAt(s) / float64(sampleRate)
		phase -= math.Floor(phase)
	}
}

// Synthesize mixes tones into 16-bit little-endian stereo PCM at sampleRate,
// the format ebiten's audio context plays.
func Synthesize(sampleRate int, tones ...Tone) []byte {
	var length time.Duration
	for _, t := range tones {
		length = max(length, t.Length())
	}
	frames := int(length.Seconds() * float64(sampleRate))

	mix := make([]float64, frames)
	for _, t := range tones {
		t.render(mix, sampleRate)
	}

	pcm := make([]byte, frames*4)
	for i, v := range mix {
		v = math.Max(-1, math.Min(1, v*MasterGain))
		s := int16(v * 32767)
		// Same sample on both channels.
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}
