package hopper

// Snapshot is a read-only copy of the session state handed to the renderer
// and to determinism tests. The renderer never mutates session state; it
// draws from this copy only.
type Snapshot struct {
	State         SessionState
	Score         int
	Player        Player
	Platforms     []Platform
	CurrentID     int
	TargetID      int
	Charging      bool
	ChargeSeconds float64
	WorldW        float64
	WorldH        float64
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	platforms := make([]Platform, len(s.platforms))
	copy(platforms, s.platforms)

	return Snapshot{
		State:         s.state,
		Score:         s.score,
		Player:        s.player,
		Platforms:     platforms,
		CurrentID:     s.currentID,
		TargetID:      s.targetID,
		Charging:      s.Charging(),
		ChargeSeconds: s.ChargeSeconds(),
		WorldW:        s.cfg.World.Width,
		WorldH:        s.cfg.World.Height,
	}
}
