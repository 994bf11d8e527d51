package hopper

import (
	"math"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Launch shaping constants. The vertical component mixes a
// direction-proportional term with a fixed upward impulse so arcs stay
// launchable even when the target is level with or below the origin.
// Deliberately not "aim-accurate"; this is the tuned feel.
const (
	verticalAimFactor   = 0.4
	upwardImpulseFactor = 0.8
)

// computeLaunch converts a press duration into a launch velocity aimed from
// the current platform toward the target platform. Charge saturates at
// cfg.MaxChargeSeconds; the direction length is floored at 1 to avoid a
// division by zero when both platforms coincide.
func computeLaunch(pressSeconds float64, from, to core.Vec2, worldW float64, cfg config.LaunchConfig) core.Vec2 {
	charge := math.Min(pressSeconds, cfg.MaxChargeSeconds)
	power := charge * cfg.ChargeFactor * worldW

	d := to.Sub(from)
	length := math.Max(d.Len(), 1)
	dir := d.Scale(1 / length)

	return core.Vec2{
		X: dir.X * power * cfg.HorizontalFactor,
		Y: dir.Y*power*verticalAimFactor - power*upwardImpulseFactor,
	}
}
