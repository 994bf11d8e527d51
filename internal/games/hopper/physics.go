package hopper

import "github.com/vovakirdan/tui-hopper/internal/core"

// Player is the circular body the session simulates. Position is the center
// of the circle.
type Player struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Radius   float64
	OnGround bool
}

// integrate advances the player one explicit Euler step under gravity.
// Grounded players are not integrated. dt is clamped by the caller, which
// bounds integration error and prevents tunneling through thin platforms.
func integrate(p *Player, dt, gravity float64) {
	if p.OnGround {
		return
	}
	p.Vel.Y += gravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}
