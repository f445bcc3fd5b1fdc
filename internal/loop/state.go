package loop

import (
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
)

// State is the session phase. Stopped is terminal.
type State int

const (
	StateRunning State = iota // Simulating
	StateStopped              // Quit or player hit; nothing updates any more
)

// String returns the state name.
func (s State) String() string {
	if s == StateStopped {
		return "stopped"
	}
	return "running"
}

// StopReason records why a session stopped.
type StopReason int

const (
	StopNone      StopReason = iota
	StopQuit                 // Quit signal from the input source
	StopPlayerHit            // Player struck by a meteor
	StopCancelled            // Context cancelled or input closed
)

// String returns the reason name.
func (r StopReason) String() string {
	switch r {
	case StopQuit:
		return "quit"
	case StopPlayerHit:
		return "player hit"
	case StopCancelled:
		return "cancelled"
	default:
		return "none"
	}
}

// Frame is everything a renderer needs for one presented frame.
type Frame struct {
	View    physics.Rect    // Logical view area
	Visuals []object.Visual // Draw order: first drawn first
	Score   int
	Over    bool // Set on the final frame of a session
}

// ScoreLayout places a score text of the given size: centred on the view's
// bottom edge lifted by a margin, framed by a padded box shifted slightly up.
func ScoreLayout(view physics.Rect, textW, textH float64) (text, box physics.Rect) {
	anchor := physics.Vec{
		X: view.X + view.W/2,
		Y: view.Bottom() - config.ScoreBottomMargin,
	}
	text = physics.RectFromMidBottom(anchor, textW, textH)
	box = physics.Rect{
		X: text.X - config.ScoreBoxPadX/2,
		Y: text.Y - config.ScoreBoxPadY/2 - config.ScoreBoxLift,
		W: text.W + config.ScoreBoxPadX,
		H: text.H + config.ScoreBoxPadY,
	}
	return text, box
}
