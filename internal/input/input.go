package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals only report presses (plus auto-repeat), never releases.
const keyHoldDuration = 60 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	Quit  bool
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool // Fire key currently held

	// FirePressed is true only on the frame the fire key went from
	// released to held.
	FirePressed bool
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit  time.Time
	left  time.Time
	right time.Time
	up    time.Time
	down  time.Time
	fire  time.Time
}

// Stream delivers input bytes via a channel and tracks key state for combinations.
type Stream struct {
	ch       chan byte
	state    keyState
	prevFire bool
	closed   bool
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

// Closed reports whether the underlying reader has ended (EOF or error).
// A closed stream reads as a quit request.
func (s *Stream) Closed() bool {
	return s.closed
}

// Read drains all available bytes from the stream (non-blocking) and
// returns the key state as of now.
func (s *Stream) Read(now time.Time) Input {
	var buf []byte

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				s.ch = nil
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	return s.snapshot(now)
}

// apply parses the collected bytes and updates key state timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// Check for escape sequences (arrow keys, etc.)
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			// CSI sequence: ESC [ <code>
			switch buf[i+2] {
			case 'A': // Up arrow
				s.state.up = now
				i += 2
				continue
			case 'B': // Down arrow
				s.state.down = now
				i += 2
				continue
			case 'C': // Right arrow
				s.state.right = now
				i += 2
				continue
			case 'D': // Left arrow
				s.state.left = now
				i += 2
				continue
			}
		}

		applyByteToState(&s.state, b, now)
	}
}

// snapshot builds input from key state: keys are "pressed" if seen within hold duration.
func (s *Stream) snapshot(now time.Time) Input {
	in := Input{
		Quit:  s.closed || now.Sub(s.state.quit) < keyHoldDuration,
		Left:  now.Sub(s.state.left) < keyHoldDuration,
		Right: now.Sub(s.state.right) < keyHoldDuration,
		Up:    now.Sub(s.state.up) < keyHoldDuration,
		Down:  now.Sub(s.state.down) < keyHoldDuration,
		Fire:  now.Sub(s.state.fire) < keyHoldDuration,
	}
	in.FirePressed = in.Fire && !s.prevFire
	s.prevFire = in.Fire
	return in
}

// applyByteToState updates the key state timestamps based on the pressed byte.
func applyByteToState(state *keyState, b byte, now time.Time) {
	switch b {
	case 'q', 'Q', '\x03': // q or Ctrl-C
		state.quit = now
	case 'a', 'A', 'h', 'H':
		state.left = now
	case 'd', 'D', 'l', 'L':
		state.right = now
	case 'w', 'W', 'k', 'K':
		state.up = now
	case 's', 'S', 'j', 'J':
		state.down = now
	case ' ':
		state.fire = now
	}
}
