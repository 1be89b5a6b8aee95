package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/tomz197/firedodge/internal/object"
)

// TestSynthesizeKnownClips verifies every game clip produces bounded samples
func TestSynthesizeKnownClips(t *testing.T) {
	clips := []object.Clip{
		object.ClipFire1, object.ClipFire2, object.ClipFire3, object.ClipFire4, object.ClipFire5,
		object.ClipWater, object.ClipExtinguish,
	}
	for _, clip := range clips {
		t.Run(string(clip), func(t *testing.T) {
			s, ok := Synthesize(clip, beep.SampleRate(44100), 1)
			if !ok {
				t.Fatalf("Expected clip %q to be known", clip)
			}
			samples := make([][2]float64, 256)
			n, _ := s.Stream(samples)
			if n == 0 {
				t.Fatal("Expected samples from a fresh clip")
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
				}
			}
		})
	}
}

// TestSynthesizeUnknownClip verifies unknown clips are rejected
func TestSynthesizeUnknownClip(t *testing.T) {
	if _, ok := Synthesize("thunder", beep.SampleRate(44100), 1); ok {
		t.Error("Expected unknown clip to be rejected")
	}
}

// TestOscillatorFinite verifies the oscillator stops after its duration
func TestOscillatorFinite(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 0, 50*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok {
		t.Error("Expected first read to succeed")
	}
	if n != 50 {
		t.Errorf("Expected 50 samples, got %d", n)
	}

	n, ok = osc.Stream(samples)
	if ok || n != 0 {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n, ok)
	}
}

// TestPlayWithoutSpeaker verifies cues are silent before Init
func TestPlayWithoutSpeaker(t *testing.T) {
	c := NewCues(nil, 0.5)
	c.Play(object.ClipWater)
	c.Play("missing")
	c.Close()
}
