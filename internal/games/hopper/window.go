package hopper

// recenter translates the world so the current platform sits at the anchor
// fraction of the viewport, then evicts stale platforms to bound memory.
//
// Platform ids stay monotonic and are never renumbered: the just-landed
// platform and its successor are always the two newest entries, so trimming
// to the newest trimTo platforms can never evict them and the
// target = current + 1 invariant survives every trim.
func (s *Session) recenter() {
	current := s.platformByID(s.currentID)
	if current == nil {
		return
	}

	desired := s.cfg.Window.AnchorFrac * s.cfg.World.Width
	dx := desired - current.Pos.X
	if dx != 0 {
		for i := range s.platforms {
			s.platforms[i].Pos.X += dx
		}
		s.player.Pos.X += dx
	}

	if len(s.platforms) > s.cfg.Window.RetainMax {
		keep := s.platforms[len(s.platforms)-s.cfg.Window.TrimTo:]
		trimmed := make([]Platform, len(keep))
		copy(trimmed, keep)
		s.platforms = trimmed
	}
}
