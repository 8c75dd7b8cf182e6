package audio

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/vovakirdan/dash/internal/runner"
)

// samplesL decodes the left channel of 16-bit stereo PCM.
func samplesL(pcm []byte) []int16 {
	out := make([]int16, len(pcm)/4)
	for i := range out {
		out[i] = int16(uint16(pcm[4*i]) | uint16(pcm[4*i+1])<<8)
	}
	return out
}

func TestToneLength(t *testing.T) {
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueStart, 320 * time.Millisecond}, // 180 + 120 release + 20 tail
		{CueJump, 360 * time.Millisecond},
		{CueHit, 440 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			pcm := tt.cue.PCM(SampleRate)
			wantFrames := int(tt.want.Seconds() * SampleRate)
			if got := len(pcm) / 4; got != wantFrames {
				t.Errorf("frames = %d, want %d", got, wantFrames)
			}
		})
	}
}

func TestSynthesizeStereoAndBounded(t *testing.T) {
	pcm := CueHit.PCM(SampleRate)
	if len(pcm)%4 != 0 {
		t.Fatalf("PCM length %d is not whole stereo frames", len(pcm))
	}
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("channels differ at frame %d", i/4)
		}
	}

	limit := int16(math.Floor(0.32*MasterGain*32767)) + 1
	peak := int16(0)
	for _, s := range samplesL(pcm) {
		if s > peak {
			peak = s
		}
		if s > limit || s < -limit {
			t.Fatalf("sample %d exceeds volume limit %d", s, limit)
		}
	}
	if peak < limit/2 {
		t.Errorf("peak %d too quiet for volume 0.32", peak)
	}
}

func TestEnvelope(t *testing.T) {
	tone := Tone{Frequency: 440, Duration: 200 * time.Millisecond, Volume: 0.5}.withDefaults()

	if g := tone.gainAt(0); math.Abs(g-envelopeFloor) > 1e-12 {
		t.Errorf("gain at 0 = %v, want floor", g)
	}
	if g := tone.gainAt(tone.Attack.Seconds()); math.Abs(g-0.5) > 1e-9 {
		t.Errorf("gain at attack peak = %v, want 0.5", g)
	}
	if g := tone.gainAt(0.15); g >= 0.5 || g <= envelopeFloor {
		t.Errorf("gain during release = %v, want between floor and volume", g)
	}
	if g := tone.gainAt(1); g != envelopeFloor {
		t.Errorf("gain after end = %v, want floor", g)
	}
}

func TestPitchGlide(t *testing.T) {
	tone := Tone{Frequency: 220, PitchEnd: 90, Duration: 300 * time.Millisecond}.withDefaults()

	if f := tone.frequencyAt(0); f != 220 {
		t.Errorf("start frequency = %v", f)
	}
	if f := tone.frequencyAt(0.15); math.Abs(f-155) > 1e-9 {
		t.Errorf("mid frequency = %v, want 155", f)
	}
	if f := tone.frequencyAt(0.4); f != 90 {
		t.Errorf("frequency after glide = %v, want 90", f)
	}
}

func TestWaveforms(t *testing.T) {
	tests := []struct {
		w    Waveform
		p    float64
		want float64
	}{
		{Sine, 0.25, 1},
		{Square, 0.1, 1},
		{Square, 0.6, -1},
		{Triangle, 0.5, 1},
		{Triangle, 0, -1},
		{Sawtooth, 0, -1},
		{Sawtooth, 0.75, 0.5},
	}

	for _, tt := range tests {
		if got := tt.w.sample(tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%v(%v) = %v, want %v", tt.w, tt.p, got, tt.want)
		}
	}
}

func TestCuesDiffer(t *testing.T) {
	start, jump := CueStart.PCM(SampleRate), CueJump.PCM(SampleRate)
	if bytes.Equal(start, jump) {
		t.Error("start and jump cues should sound different")
	}
}

type recordingPlayer struct {
	played []Cue
}

func (r *recordingPlayer) Play(c Cue) {
	r.played = append(r.played, c)
}

func TestSinkMapsEvents(t *testing.T) {
	rec := &recordingPlayer{}
	sink := NewSink(rec)

	sink.OnEvent(runner.Event{Kind: runner.EventRunStarted})
	sink.OnEvent(runner.Event{Kind: runner.EventJumped})
	sink.OnEvent(runner.Event{Kind: runner.EventRunEnded})
	sink.OnEvent(runner.Event{Kind: runner.EventKind(99)})

	want := []Cue{CueStart, CueJump, CueHit}
	if len(rec.played) != len(want) {
		t.Fatalf("played %v, want %v", rec.played, want)
	}
	for i := range want {
		if rec.played[i] != want[i] {
			t.Errorf("cue %d = %v, want %v", i, rec.played[i], want[i])
		}
	}

	NewSink(nil).OnEvent(runner.Event{Kind: runner.EventJumped}) // must not panic
}

func TestBell(t *testing.T) {
	var buf bytes.Buffer
	bell := NewBell(&buf)

	bell.Play(CueStart)
	bell.Play(CueJump)
	bell.Play(CueHit)
	if buf.String() != "\a" {
		t.Errorf("default bell wrote %q, want one BEL", buf.String())
	}

	buf.Reset()
	Multi{NewBell(&buf, CueStart, CueHit), Nop{}, nil}.Play(CueStart)
	if buf.String() != "\a" {
		t.Errorf("multi wrote %q", buf.String())
	}
}
