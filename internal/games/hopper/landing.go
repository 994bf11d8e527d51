package hopper

// LandingOutcome classifies the player's relation to the target platform.
type LandingOutcome int

const (
	StillAirborne LandingOutcome = iota
	Grounded
	Fell
)

// String returns a human-readable name for the outcome.
func (o LandingOutcome) String() string {
	switch o {
	case StillAirborne:
		return "airborne"
	case Grounded:
		return "grounded"
	case Fell:
		return "fell"
	default:
		return "unknown"
	}
}

// Vertical tolerance around the platform's top band. The upper slack absorbs
// a step that ends slightly above the surface; the lower slack tolerates a
// step that carried the body slightly into it.
const (
	landSlackAbove = 2.0
	landSlackBelow = 4.0
)

// classify decides whether the player has touched down on the target
// platform, missed past the bottom of the world, or is still in flight.
// It is a pure function of its inputs: repeated calls with unchanged state
// return the same result.
//
// A body must be descending (velocity.y >= 0) for a touchdown; an ascending
// body grazing the band from below does not land.
func classify(p Player, target Platform, worldH, fallMargin float64) LandingOutcome {
	bottom := p.Pos.Y + p.Radius

	withinX := p.Pos.X >= target.Left() && p.Pos.X <= target.Right()
	withinY := bottom >= target.Pos.Y-target.Size.Y/2-landSlackAbove &&
		bottom <= target.Pos.Y+target.Size.Y/2+landSlackBelow &&
		p.Vel.Y >= 0

	if withinX && withinY {
		return Grounded
	}

	if p.Pos.Y-p.Radius > worldH+fallMargin {
		return Fell
	}

	return StillAirborne
}
