// Package hopper implements the charge-and-launch platform jumping game.
// The session is the single mutable aggregate: it owns the player, the
// retained platform window and the score, and drives the integrator,
// landing detector, generator and window manager in a fixed order each tick.
package hopper

import (
	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// SessionState is the authoritative state of a session.
// Exactly one of Idle, Playing, GameOver holds at any time.
type SessionState int

const (
	StateIdle SessionState = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable name for the state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session owns all mutable game state. It is single-threaded: Tick and the
// press handlers must be called from one logical thread of control.
type Session struct {
	cfg config.HopperConfig
	gen *generator

	platforms []Platform
	currentID int
	targetID  int
	player    Player
	score     int
	state     SessionState

	clock        float64  // Simulation seconds accumulated from Tick
	pressStartMs *float64 // Charge start on the simulation clock; nil when not charging
}

// NewSession creates an idle session. Start begins play.
func NewSession(cfg config.HopperConfig, seed int64) *Session {
	return &Session{
		cfg:   cfg,
		gen:   newGenerator(seed, cfg.Platforms, cfg.World),
		state: StateIdle,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// NowMs returns the simulation clock in milliseconds. Press timestamps are
// expressed on this clock, which keeps seeded runs deterministic.
func (s *Session) NowMs() float64 {
	return s.clock * 1000
}

// Charging reports whether a press is currently being held.
func (s *Session) Charging() bool {
	return s.pressStartMs != nil
}

// ChargeSeconds returns how long the current press has been held, or 0 when
// no press is active.
func (s *Session) ChargeSeconds() float64 {
	if s.pressStartMs == nil {
		return 0
	}
	return (s.NowMs() - *s.pressStartMs) / 1000
}

// Start transitions Idle -> Playing with a fresh world. Calling Start on a
// session that has already started is a no-op.
func (s *Session) Start() {
	if s.state != StateIdle {
		return
	}
	s.resetWorld()
}

// Restart transitions GameOver -> Playing (or abandons a running game) with
// a world reset identical to the initial start. A press straddling the
// restart is voided: the reset clears the charge so a later release cannot
// apply a stale launch velocity.
func (s *Session) Restart() {
	if s.state == StateIdle {
		return
	}
	s.resetWorld()
}

// resetWorld seeds platforms 0 and 1, seats the player on platform 0 and
// clears score and charge.
func (s *Session) resetWorld() {
	first := s.gen.base(s.cfg.Window.AnchorFrac)
	second := s.gen.Next(first)

	s.platforms = []Platform{first, second}
	s.currentID = first.ID
	s.targetID = second.ID

	s.player = Player{
		Pos:      core.Vec2{X: first.Pos.X, Y: first.Top() - s.cfg.Player.Radius},
		Radius:   s.cfg.Player.Radius,
		OnGround: true,
	}

	s.score = 0
	s.clock = 0
	s.pressStartMs = nil
	s.state = StatePlaying
}

// PressStart begins charging a jump. Ignored unless the session is playing
// and the player is grounded; a second press-start during an active charge
// is also ignored.
func (s *Session) PressStart(atMs float64) {
	if s.state != StatePlaying || !s.player.OnGround || s.pressStartMs != nil {
		return
	}
	t := atMs
	s.pressStartMs = &t
}

// PressEnd releases the charge and launches the player toward the target
// platform. Ignored when no charge is active or the session stopped playing
// since the press began.
func (s *Session) PressEnd(atMs float64) {
	if s.pressStartMs == nil {
		return
	}
	startMs := *s.pressStartMs
	s.pressStartMs = nil

	if s.state != StatePlaying || !s.player.OnGround {
		return
	}

	durSeconds := (atMs - startMs) / 1000
	if durSeconds < 0 {
		durSeconds = 0
	}

	current := s.platformByID(s.currentID)
	target := s.platformByID(s.targetID)
	if current == nil || target == nil {
		return
	}

	s.player.Vel = computeLaunch(durSeconds, current.Pos, target.Pos, s.cfg.World.Width, s.cfg.Launch)
	s.player.OnGround = false
}

// Tick advances the simulation by dt seconds. The step is clamped to the
// configured maximum so a slow frame cannot tunnel the player through a
// platform. Order per frame: integrate, classify, then on touchdown
// generate the next platform and recenter the window.
func (s *Session) Tick(dt float64) {
	if s.state != StatePlaying {
		return
	}

	dt = core.ClampF(dt, 0, s.cfg.Physics.MaxStepSeconds)
	s.clock += dt

	if s.player.OnGround {
		return
	}

	integrate(&s.player, dt, s.cfg.Physics.Gravity)

	target := s.platformByID(s.targetID)
	if target == nil {
		return
	}

	switch classify(s.player, *target, s.cfg.World.Height, s.cfg.Physics.FallMargin) {
	case Grounded:
		s.land(*target)
	case Fell:
		s.state = StateGameOver
	case StillAirborne:
	}
}

// land snaps the player onto the target platform, advances the platform
// chain and runs the window manager.
func (s *Session) land(target Platform) {
	s.player.OnGround = true
	s.player.Vel = core.Vec2{}
	s.player.Pos.Y = target.Top() - s.player.Radius

	s.currentID = target.ID
	s.targetID = target.ID + 1

	s.platforms = append(s.platforms, s.gen.Next(target))
	s.score++

	s.recenter()
}

// platformByID returns the retained platform with the given id, or nil.
func (s *Session) platformByID(id int) *Platform {
	for i := range s.platforms {
		if s.platforms[i].ID == id {
			return &s.platforms[i]
		}
	}
	return nil
}
