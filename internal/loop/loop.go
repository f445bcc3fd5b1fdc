// Package loop provides the main game loop and session state.
package loop

import (
	"context"
	"fmt"
	"time"

	"github.com/tomz197/spaceshooter/internal/object"
)

// InputSource is polled once per frame. input.Stream implements it.
type InputSource interface {
	Read(now time.Time) object.Input
}

// Renderer presents a composed frame. Errors end the loop.
type Renderer interface {
	Present(f Frame) error
}

// Run starts the session and drives it with the standard
// Input → Update → Draw cycle until it stops or ctx is cancelled.
// The final frame is always presented.
func (s *Session) Run(ctx context.Context, src InputSource, r Renderer) error {
	clock := s.opts.Clock
	frameTime := time.Duration(0)
	if s.opts.TargetFPS > 0 {
		frameTime = time.Second / time.Duration(s.opts.TargetFPS)
	}

	s.Start(clock.Now())

	for {
		frameStart := clock.Now()

		// ===== INPUT + UPDATE =====
		var state State
		select {
		case <-ctx.Done():
			s.Stop(frameStart, StopCancelled)
			state = StateStopped
		default:
			state = s.Step(frameStart, src.Read(frameStart))
		}

		// ===== DRAW =====
		if err := r.Present(s.Frame(frameStart)); err != nil {
			s.Stop(frameStart, StopCancelled)
			return fmt.Errorf("present frame %d: %w", s.frames, err)
		}

		if state == StateStopped {
			return nil
		}

		// ===== FRAME TIMING =====
		if frameTime > 0 {
			elapsed := clock.Now().Sub(frameStart)
			if elapsed < frameTime {
				sleep(ctx, frameTime-elapsed)
			}
		}
	}
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
