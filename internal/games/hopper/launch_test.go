package hopper

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

func launchCfg() config.LaunchConfig {
	return config.LaunchConfig{
		ChargeFactor:     4.2,
		HorizontalFactor: 0.6,
		MaxChargeSeconds: 1.2,
	}
}

func TestComputeLaunchScenario(t *testing.T) {
	// 400x800 viewport, 500 ms press, current (120, 560) -> target (260, 540)
	cfg := launchCfg()
	from := core.Vec2{X: 120, Y: 560}
	to := core.Vec2{X: 260, Y: 540}

	v := computeLaunch(0.5, from, to, 400, cfg)

	power := 0.5 * 4.2 * 400 // 840
	d := to.Sub(from)
	length := d.Len()
	wantX := d.X / length * power * 0.6
	wantY := d.Y/length*power*verticalAimFactor - power*upwardImpulseFactor

	if math.Abs(v.X-wantX) > 1e-9 {
		t.Errorf("velocity.x = %f, expected %f", v.X, wantX)
	}
	if math.Abs(v.Y-wantY) > 1e-9 {
		t.Errorf("velocity.y = %f, expected %f", v.Y, wantY)
	}

	// Aimed toward +x and launched upward
	if v.X <= 0 {
		t.Errorf("velocity.x = %f, expected positive (target is to the right)", v.X)
	}
	if v.Y >= 0 {
		t.Errorf("velocity.y = %f, expected negative (upward impulse)", v.Y)
	}
}

func TestComputeLaunchChargeSaturates(t *testing.T) {
	cfg := launchCfg()
	from := core.Vec2{X: 100, Y: 500}
	to := core.Vec2{X: 250, Y: 480}

	atMax := computeLaunch(1.2, from, to, 400, cfg)
	beyond := computeLaunch(5.0, from, to, 400, cfg)

	if atMax != beyond {
		t.Errorf("charge should saturate at %f s: %+v vs %+v", cfg.MaxChargeSeconds, atMax, beyond)
	}

	// A shorter press yields strictly less power
	short := computeLaunch(0.3, from, to, 400, cfg)
	if math.Abs(short.X) >= math.Abs(atMax.X) {
		t.Error("shorter press should produce a smaller horizontal velocity")
	}
}

func TestComputeLaunchCoincidentPlatforms(t *testing.T) {
	cfg := launchCfg()
	p := core.Vec2{X: 200, Y: 500}

	v := computeLaunch(0.5, p, p, 400, cfg)

	// The direction floor prevents NaN; only the fixed upward impulse remains.
	if math.IsNaN(v.X) || math.IsNaN(v.Y) {
		t.Fatalf("launch velocity must be finite, got %+v", v)
	}
	if v.X != 0 {
		t.Errorf("velocity.x = %f, expected 0 for coincident platforms", v.X)
	}
	if v.Y >= 0 {
		t.Errorf("velocity.y = %f, expected upward impulse", v.Y)
	}
}

func TestComputeLaunchLeftwardTarget(t *testing.T) {
	cfg := launchCfg()
	from := core.Vec2{X: 260, Y: 540}
	to := core.Vec2{X: 120, Y: 560}

	v := computeLaunch(0.5, from, to, 400, cfg)

	if v.X >= 0 {
		t.Errorf("velocity.x = %f, expected negative (target is to the left)", v.X)
	}
	if v.Y >= 0 {
		t.Errorf("velocity.y = %f, expected negative even when the target is lower", v.Y)
	}
}

func TestIntegrateEuler(t *testing.T) {
	p := Player{
		Pos:    core.Vec2{X: 100, Y: 200},
		Vel:    core.Vec2{X: 50, Y: -10},
		Radius: 14,
	}

	integrate(&p, 0.01, 2000)

	// velocity.y += g*dt first, then position += velocity*dt
	if math.Abs(p.Vel.Y-10) > 1e-9 {
		t.Errorf("velocity.y = %f, expected 10", p.Vel.Y)
	}
	if math.Abs(p.Pos.X-100.5) > 1e-9 {
		t.Errorf("position.x = %f, expected 100.5", p.Pos.X)
	}
	if math.Abs(p.Pos.Y-200.1) > 1e-9 {
		t.Errorf("position.y = %f, expected 200.1", p.Pos.Y)
	}
}

func TestIntegrateSkipsGrounded(t *testing.T) {
	p := Player{
		Pos:      core.Vec2{X: 100, Y: 200},
		Radius:   14,
		OnGround: true,
	}

	integrate(&p, 0.01, 2000)

	if p.Pos.Y != 200 || p.Vel.Y != 0 {
		t.Error("grounded players must not be integrated")
	}
}
