package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// duckHoldDuration covers the terminal's key-repeat delay, so holding the
// duck key reads as one continuous press.
const duckHoldDuration = 550 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Left  bool
	Right bool
	Jump  bool
	Duck  bool
	Reset bool // reset the stored high score
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	jump  time.Time
	duck  time.Time
	reset time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// A closed stream reads as Quit.
func ReadInput(s *Stream) Input {
	now := time.Now()
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.state.apply(buf, now)
	in := s.state.input(now)
	if closed {
		in.Quit = true
	}
	return in
}

// apply parses the collected bytes and updates key state timestamps.
// Arrow keys arrive as CSI sequences: ESC [ <code>.
func (st *keyState) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				st.jump = now
				i += 2
				continue
			case 'B': // Down arrow
				st.duck = now
				i += 2
				continue
			case 'C': // Right arrow
				st.right = now
				i += 2
				continue
			case 'D': // Left arrow
				st.left = now
				i += 2
				continue
			}
		}
		st.applyByte(b, now)
	}
}

func (st *keyState) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03':
		st.quit = now
	case 'a', 'A', 'j', 'J':
		st.left = now
	case 'd', 'D', 'l', 'L':
		st.right = now
	case 'w', 'W', 'i', 'I', ' ':
		st.jump = now
	case 's', 'S', 'k', 'K':
		st.duck = now
	case 'r', 'R':
		st.reset = now
	}
}

// input builds the frame's Input; keys are pressed if seen within their hold duration.
func (st *keyState) input(now time.Time) Input {
	return Input{
		Quit:  now.Sub(st.quit) < keyHoldDuration,
		Left:  now.Sub(st.left) < keyHoldDuration,
		Right: now.Sub(st.right) < keyHoldDuration,
		Jump:  now.Sub(st.jump) < keyHoldDuration,
		Duck:  now.Sub(st.duck) < duckHoldDuration,
		Reset: now.Sub(st.reset) < keyHoldDuration,
	}
}
