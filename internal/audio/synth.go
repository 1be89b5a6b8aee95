package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/tomz197/firedodge/internal/object"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveNoise
)

type oscillator struct {
	freq     float64
	sweep    float64 // Hz added per second
	phase    float64
	position int
	total    int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a finite streamer of the given wave. sweep bends the
// frequency linearly over time.
func NewOscillator(freq, sweep float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:  freq,
		sweep: sweep,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// decay fades a streamer out linearly over its length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

func withDecay(s beep.Streamer, dur time.Duration, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, total: max(rate.N(dur), 1)}
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// fireTones are the base pitches of the five fire cues, low to high.
var fireTones = map[object.Clip]float64{
	object.ClipFire1: 110,
	object.ClipFire2: 147,
	object.ClipFire3: 196,
	object.ClipFire4: 262,
	object.ClipFire5: 330,
}

// Synthesize builds the streamer for a clip. It returns false for clips it
// does not know.
func Synthesize(clip object.Clip, rate beep.SampleRate, volume float64) (beep.Streamer, bool) {
	var s beep.Streamer
	switch clip {
	case object.ClipFire1, object.ClipFire2, object.ClipFire3, object.ClipFire4, object.ClipFire5:
		d := 250 * time.Millisecond
		s = beep.Mix(
			withVolume(NewOscillator(0, 0, d, WaveNoise, rate), 0.3),
			withVolume(NewOscillator(fireTones[clip], -80, d, WaveSine, rate), 0.5),
		)
		s = withDecay(s, d, rate)
	case object.ClipWater:
		d := 400 * time.Millisecond
		s = withDecay(NewOscillator(300, 1200, d, WaveSine, rate), d, rate)
	case object.ClipExtinguish:
		d := 300 * time.Millisecond
		s = withDecay(withVolume(NewOscillator(0, 0, d, WaveNoise, rate), 0.5), d, rate)
	default:
		return nil, false
	}
	return withVolume(s, volume), true
}
