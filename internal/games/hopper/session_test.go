package hopper

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

func testSession(seed int64) *Session {
	return NewSession(config.DefaultHopperConfig(), seed)
}

// forceLanding teleports the airborne player into the target's landing band
// and ticks once so the regular landing path runs.
func forceLanding(t *testing.T, s *Session) {
	t.Helper()

	target := s.platformByID(s.targetID)
	if target == nil {
		t.Fatal("target platform not retained")
	}

	s.player.OnGround = false
	s.player.Pos = core.Vec2{X: target.Pos.X, Y: target.Top() - s.player.Radius}
	s.player.Vel = core.Vec2{Y: 1}

	s.Tick(0.01)

	if !s.player.OnGround {
		t.Fatal("expected forced landing to ground the player")
	}
}

func TestSessionStartsIdle(t *testing.T) {
	s := testSession(1)

	if s.State() != StateIdle {
		t.Errorf("new session state = %v, expected Idle", s.State())
	}
	if len(s.Snapshot().Platforms) != 0 {
		t.Error("idle session should have no platforms")
	}

	// Physics and input are inert while idle
	s.Tick(0.016)
	s.PressStart(0)
	if s.Charging() || s.NowMs() != 0 {
		t.Error("idle session must ignore ticks and presses")
	}
}

func TestSessionStartSeedsWorld(t *testing.T) {
	s := testSession(1)
	s.Start()

	if s.State() != StatePlaying {
		t.Fatalf("state = %v, expected Playing", s.State())
	}

	snap := s.Snapshot()
	if len(snap.Platforms) != 2 {
		t.Fatalf("platform count = %d, expected 2", len(snap.Platforms))
	}
	if snap.CurrentID != 0 || snap.TargetID != 1 {
		t.Errorf("current/target = %d/%d, expected 0/1", snap.CurrentID, snap.TargetID)
	}
	if !snap.Player.OnGround {
		t.Error("player should start seated on platform 0")
	}
	if snap.Score != 0 {
		t.Errorf("score = %d, expected 0", snap.Score)
	}

	// Player bottom rests on the first platform's top edge
	first := snap.Platforms[0]
	bottom := snap.Player.Pos.Y + snap.Player.Radius
	if math.Abs(bottom-first.Top()) > 1e-9 {
		t.Errorf("player bottom %f, expected platform top %f", bottom, first.Top())
	}
}

func TestSessionStartTwiceIsNoop(t *testing.T) {
	s := testSession(1)
	s.Start()

	before := s.Snapshot()
	s.Start()
	after := s.Snapshot()

	if len(before.Platforms) != len(after.Platforms) {
		t.Fatal("second Start must not reseed the world")
	}
	for i := range before.Platforms {
		if before.Platforms[i] != after.Platforms[i] {
			t.Fatal("second Start must not alter platforms")
		}
	}
}

func TestSessionRestartFromIdleIsNoop(t *testing.T) {
	s := testSession(1)
	s.Restart()

	if s.State() != StateIdle {
		t.Errorf("Restart before Start should stay Idle, got %v", s.State())
	}
}

func TestSessionTargetInvariant(t *testing.T) {
	s := testSession(9)
	s.Start()

	for i := 0; i < 6; i++ {
		if s.targetID != s.currentID+1 {
			t.Fatalf("before landing %d: target %d != current %d + 1", i, s.targetID, s.currentID)
		}
		forceLanding(t, s)
		if s.targetID != s.currentID+1 {
			t.Fatalf("after landing %d: target %d != current %d + 1", i, s.targetID, s.currentID)
		}
		if s.platformByID(s.currentID) == nil || s.platformByID(s.targetID) == nil {
			t.Fatal("current and target platforms must stay retained")
		}
	}
}

func TestSessionScorePerLanding(t *testing.T) {
	s := testSession(4)
	s.Start()

	for i := 1; i <= 5; i++ {
		forceLanding(t, s)
		if s.Score() != i {
			t.Fatalf("score = %d after %d landings", s.Score(), i)
		}
	}

	s.Restart()
	if s.Score() != 0 {
		t.Errorf("score after restart = %d, expected 0", s.Score())
	}
	if s.State() != StatePlaying {
		t.Errorf("state after restart = %v, expected Playing", s.State())
	}
}

func TestSessionRecenterAnchorsCurrentPlatform(t *testing.T) {
	s := testSession(11)
	s.Start()

	forceLanding(t, s)

	anchor := s.cfg.Window.AnchorFrac * s.cfg.World.Width
	current := s.platformByID(s.currentID)
	if math.Abs(current.Pos.X-anchor) > 1e-9 {
		t.Errorf("current platform x = %f, expected anchor %f", current.Pos.X, anchor)
	}
}

func TestSessionRecenterTranslatesPlayerWithWorld(t *testing.T) {
	s := testSession(11)
	s.Start()

	target := *s.platformByID(s.targetID)
	offsetBefore := target.Pos.X // Player is forced to the target center when landing

	forceLanding(t, s)

	// After landing the player sits on the platform that was the target;
	// both were shifted by the same recenter delta.
	landed := s.platformByID(s.currentID)
	if landed.ID != target.ID {
		t.Fatalf("current platform id = %d, expected %d", landed.ID, target.ID)
	}
	shift := landed.Pos.X - offsetBefore
	if math.Abs(s.player.Pos.X-(offsetBefore+shift)) > 1e-9 {
		t.Errorf("player x = %f, expected %f", s.player.Pos.X, offsetBefore+shift)
	}
}

func TestSessionWindowEviction(t *testing.T) {
	s := testSession(21)
	s.Start()

	// 2 platforms at start, +1 per landing; the 7th landing pushes the
	// collection to 9 which exceeds the retain threshold of 8.
	for i := 0; i < 7; i++ {
		forceLanding(t, s)
	}

	if got := len(s.platforms); got != s.cfg.Window.TrimTo {
		t.Fatalf("retained platforms = %d, expected %d", got, s.cfg.Window.TrimTo)
	}
	if s.targetID != s.currentID+1 {
		t.Errorf("target %d != current %d + 1 after eviction", s.targetID, s.currentID)
	}
	if s.platformByID(s.currentID) == nil || s.platformByID(s.targetID) == nil {
		t.Error("eviction must keep current and target platforms")
	}

	// IDs stay monotonic in creation order
	for i := 1; i < len(s.platforms); i++ {
		if s.platforms[i].ID != s.platforms[i-1].ID+1 {
			t.Errorf("retained ids not consecutive: %d then %d", s.platforms[i-1].ID, s.platforms[i].ID)
		}
	}
}

func TestSessionPressLifecycle(t *testing.T) {
	s := testSession(30)
	s.Start()

	s.PressStart(s.NowMs())
	if !s.Charging() {
		t.Fatal("press-start while grounded and playing must arm the charge")
	}

	// Clock advances while charging; the player stays put
	for i := 0; i < 30; i++ {
		s.Tick(0.016)
	}
	if !s.player.OnGround {
		t.Fatal("charging must not move the player")
	}

	target := *s.platformByID(s.targetID)
	current := *s.platformByID(s.currentID)

	s.PressEnd(s.NowMs())

	if s.player.OnGround {
		t.Fatal("press-end must launch the player")
	}
	if s.Charging() {
		t.Error("charge must clear on release")
	}
	if s.player.Vel.Y >= 0 {
		t.Errorf("launch velocity.y = %f, expected upward", s.player.Vel.Y)
	}
	wantSign := target.Pos.X - current.Pos.X
	if wantSign > 0 && s.player.Vel.X <= 0 || wantSign < 0 && s.player.Vel.X >= 0 {
		t.Errorf("launch velocity.x = %f has wrong sign for dx %f", s.player.Vel.X, wantSign)
	}
}

func TestSessionPressIgnoredWhileAirborne(t *testing.T) {
	s := testSession(31)
	s.Start()

	s.player.OnGround = false
	s.PressStart(s.NowMs())

	if s.Charging() {
		t.Error("press-start while airborne must be ignored")
	}

	// Release without a charge is also a no-op
	vel := s.player.Vel
	s.PressEnd(s.NowMs())
	if s.player.Vel != vel {
		t.Error("press-end without a charge must not alter velocity")
	}
}

func TestSessionRestartVoidsStraddlingPress(t *testing.T) {
	s := testSession(32)
	s.Start()

	s.PressStart(s.NowMs())
	s.Restart()

	if s.Charging() {
		t.Fatal("restart must clear an in-flight charge")
	}

	s.PressEnd(s.NowMs() + 500)

	if !s.player.OnGround {
		t.Error("stale press-end after restart must not launch the player")
	}
	if s.player.Vel != (core.Vec2{}) {
		t.Errorf("stale press-end applied velocity %+v", s.player.Vel)
	}
}

func TestSessionFallEndsGame(t *testing.T) {
	s := testSession(40)
	s.Start()

	s.player.OnGround = false
	s.player.Pos = core.Vec2{X: 10, Y: s.cfg.World.Height + s.cfg.Physics.FallMargin + s.player.Radius + 1}
	s.player.Vel = core.Vec2{Y: 100}

	s.Tick(0.016)

	if s.State() != StateGameOver {
		t.Fatalf("state = %v, expected GameOver", s.State())
	}

	// Frozen after game over
	pos := s.player.Pos
	s.Tick(0.016)
	if s.player.Pos != pos {
		t.Error("physics must freeze after game over")
	}
	s.PressStart(s.NowMs())
	if s.Charging() {
		t.Error("input must be ignored after game over")
	}

	s.Restart()
	if s.State() != StatePlaying || s.Score() != 0 {
		t.Error("restart after game over must reset to a fresh playing state")
	}
}

func TestSessionTickClampsStep(t *testing.T) {
	s := testSession(50)
	s.Start()

	s.Tick(1.0) // Absurdly slow frame

	maxStep := s.cfg.Physics.MaxStepSeconds
	if math.Abs(s.clock-maxStep) > 1e-9 {
		t.Errorf("clock = %f after one clamped tick, expected %f", s.clock, maxStep)
	}
}

func TestSessionDeterminism(t *testing.T) {
	run := func() Snapshot {
		s := testSession(777)
		s.Start()
		s.PressStart(s.NowMs())
		for i := 0; i < 20; i++ {
			s.Tick(0.016)
		}
		s.PressEnd(s.NowMs())
		for i := 0; i < 120; i++ {
			s.Tick(0.016)
		}
		return s.Snapshot()
	}

	a := run()
	b := run()

	if a.Score != b.Score || a.State != b.State || a.Player != b.Player {
		t.Errorf("identical seeded runs diverged: %+v vs %+v", a, b)
	}
	if len(a.Platforms) != len(b.Platforms) {
		t.Fatalf("platform counts diverged: %d vs %d", len(a.Platforms), len(b.Platforms))
	}
	for i := range a.Platforms {
		if a.Platforms[i] != b.Platforms[i] {
			t.Errorf("platform %d diverged: %+v vs %+v", i, a.Platforms[i], b.Platforms[i])
		}
	}
}
