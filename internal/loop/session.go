package loop

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/spaceshooter/internal/asset"
	"github.com/tomz197/spaceshooter/internal/audio"
	"github.com/tomz197/spaceshooter/internal/loop/config"
	"github.com/tomz197/spaceshooter/internal/object"
	"github.com/tomz197/spaceshooter/internal/physics"
	"github.com/tomz197/spaceshooter/internal/timer"
)

// Options configures a Session. Zero values select defaults.
type Options struct {
	Assets        *asset.Assets // Default: asset.Load()
	Rand          *rand.Rand    // Default: seeded from the clock
	Clock         timer.Clock   // Default: timer.SystemClock; only Run reads it
	Audio         audio.Sink    // Default: audio.Nop
	Logger        *log.Logger   // Default: discards everything
	SpawnInterval time.Duration // Default: config.SpawnInterval
	StarCount     int           // Default: config.StarCount; negative means none
	TargetFPS     int           // Run's frame cap. Default: config.DefaultTargetFPS; negative means uncapped
}

func (o Options) withDefaults() Options {
	if o.Assets == nil {
		o.Assets = asset.Load()
	}
	if o.Clock == nil {
		o.Clock = timer.SystemClock{}
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(o.Clock.Now().UnixNano()))
	}
	if o.Audio == nil {
		o.Audio = audio.Nop{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.SpawnInterval <= 0 {
		o.SpawnInterval = config.SpawnInterval
	}
	if o.StarCount == 0 {
		o.StarCount = config.StarCount
	}
	if o.TargetFPS == 0 {
		o.TargetFPS = config.DefaultTargetFPS
	}
	return o
}

// Session is one game from start to game over. It owns the registry and the
// random source; every collaborator is passed in through Options.
//
// A Session is not safe for concurrent use. Each SSH connection gets its own.
type Session struct {
	opts   Options
	view   physics.Rect
	log    *log.Logger
	reg    *Registry
	coll   *resolver
	spawn  *object.MeteorSpawner
	player ID

	state  State
	reason StopReason
	start  time.Time // Score origin
	last   time.Time // Previous Step
	end    time.Time // Time of the stop transition
	frames uint64
}

// NewSession creates a session. Call Start before stepping it.
func NewSession(opts Options) *Session {
	opts = opts.withDefaults()
	view := physics.Rect{W: config.ViewWidth, H: config.ViewHeight}
	a := opts.Assets

	return &Session{
		opts: opts,
		view: view,
		log:  opts.Logger,
		reg:  NewRegistry(),
		coll: newResolver(view, a.Meteor, a.Laser, a.Explosion, opts.Audio),
	}
}

// Start populates the stars and the player and starts the score and spawn
// clocks at now.
func (s *Session) Start(now time.Time) {
	a := s.opts.Assets

	for _, star := range object.NewStarField(max(s.opts.StarCount, 0), s.view, a.Star, s.opts.Rand) {
		s.reg.Add(star)
	}
	s.player = s.reg.Add(object.NewPlayer(s.view.Center(), a.Player, a.Laser))
	s.spawn = object.NewMeteorSpawner(s.view, s.opts.SpawnInterval, a.Meteor, s.opts.Rand, now)

	s.state = StateRunning
	s.start = now
	s.last = now

	s.log.Info("Session started", "view", s.view, "stars", max(s.opts.StarCount, 0))
}

// Step advances the session by one frame at now. Once stopped it does nothing.
func (s *Session) Step(now time.Time, in object.Input) State {
	if s.state == StateStopped {
		return s.state
	}

	delta := now.Sub(s.last)
	s.last = now
	s.frames++

	// Events
	if in.Quit {
		s.Stop(now, StopQuit)
		return s.state
	}
	if m, ok := s.spawn.Tick(now); ok {
		s.reg.Add(m)
	}

	// Update
	s.reg.Update(object.UpdateContext{
		Delta:   delta,
		Now:     now,
		Input:   in,
		Bounds:  s.view,
		Spawner: s.reg,
		Audio:   s.opts.Audio,
	})
	s.reg.FlushSpawned()

	// Collisions
	if s.coll.resolve(s.reg, s.Player()) {
		s.Stop(now, StopPlayerHit)
	}
	s.reg.Sweep()

	return s.state
}

// Stop ends the session at now. Stopping twice keeps the first reason.
func (s *Session) Stop(now time.Time, reason StopReason) {
	if s.state == StateStopped {
		return
	}
	s.state = StateStopped
	s.reason = reason
	s.end = now
	s.log.Info("Game over", "reason", reason, "score", s.Score(now), "frames", s.frames)
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Reason returns why the session stopped, or StopNone while running.
func (s *Session) Reason() StopReason {
	return s.reason
}

// Score returns the points earned by now: one per full ScoreTick survived.
// The score freezes when the session stops.
func (s *Session) Score(now time.Time) int {
	if s.state == StateStopped {
		now = s.end
	}
	if now.Before(s.start) {
		return 0
	}
	return int(now.Sub(s.start) / config.ScoreTick)
}

// Player returns the ship, or nil before Start.
func (s *Session) Player() *object.Player {
	obj, ok := s.reg.Lookup(s.player)
	if !ok {
		return nil
	}
	p, _ := obj.(*object.Player)
	return p
}

// Registry exposes the entity registry.
func (s *Session) Registry() *Registry {
	return s.reg
}

// View returns the logical view area.
func (s *Session) View() physics.Rect {
	return s.view
}

// Frame composes the visuals of every live entity in draw order with the
// score at now.
func (s *Session) Frame(now time.Time) Frame {
	objs := s.reg.Objects()
	visuals := make([]object.Visual, 0, len(objs))
	for _, obj := range objs {
		visuals = append(visuals, obj.Visual())
	}
	return Frame{
		View:    s.view,
		Visuals: visuals,
		Score:   s.Score(now),
		Over:    s.state == StateStopped,
	}
}
