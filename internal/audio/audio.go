// Package audio synthesizes the game's sound cues and plays them through the
// system speaker.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/tomz197/firedodge/internal/object"
)

const sampleRate = beep.SampleRate(44100)

// Cues implements object.AudioCue on top of a beep mixer.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	log         *log.Logger
}

// NewCues creates a cue player. volume is in [0, 1].
func NewCues(logger *log.Logger, volume float64) *Cues {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Cues{
		mixer:  &beep.Mixer{},
		volume: volume,
		log:    logger.WithPrefix("audio"),
	}
}

// Init opens the speaker. On failure the cues stay silent.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play implements object.AudioCue.
func (c *Cues) Play(clip object.Clip) {
	s, ok := Synthesize(clip, sampleRate, c.volume)
	if !ok {
		c.log.Warn("unknown clip", "clip", clip)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every playing cue.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
