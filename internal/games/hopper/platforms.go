package hopper

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Platform is a landable surface. Position is the center of the box.
// Platforms are created only by the generator and translated only during
// recentering; IDs increase monotonically in creation order.
type Platform struct {
	ID    int
	Pos   core.Vec2
	Size  core.Vec2 // Width, height in world units
	Color core.Color
}

// Top returns the y-coordinate of the platform's upper edge.
func (p Platform) Top() float64 {
	return p.Pos.Y - p.Size.Y/2
}

// Left returns the x-coordinate of the platform's left edge.
func (p Platform) Left() float64 {
	return p.Pos.X - p.Size.X/2
}

// Right returns the x-coordinate of the platform's right edge.
func (p Platform) Right() float64 {
	return p.Pos.X + p.Size.X/2
}

// palette holds the fixed set of platform colors the generator draws from.
var palette = []core.Color{
	core.ColorGreen,
	core.ColorCyan,
	core.ColorMagenta,
	core.ColorOrange,
}

// generator produces successive platforms under the placement constraints.
// Spacing guarantees every jump needs deliberate horizontal travel while
// keeping the next platform inside a reachable band.
type generator struct {
	rng   *rand.Rand
	cfg   config.PlatformConfig
	world config.WorldConfig
}

// newGenerator creates a seeded platform generator.
func newGenerator(seed int64, cfg config.PlatformConfig, world config.WorldConfig) *generator {
	return &generator{
		rng:   rand.New(rand.NewSource(seed)),
		cfg:   cfg,
		world: world,
	}
}

// randInt returns a uniform integer in [min, max] inclusive.
// min <= max is a caller precondition.
func (g *generator) randInt(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// Next generates the platform following prev.
func (g *generator) Next(prev Platform) Platform {
	w := g.world.Width
	h := g.world.Height

	// Horizontal offset with randomized sign
	dx := float64(g.randInt(int(g.cfg.MinGapFrac*w), int(g.cfg.MaxGapFrac*w)))
	if g.rng.Intn(2) == 0 {
		dx = -dx
	}

	width := float64(g.randInt(int(g.cfg.MinWidthFrac*w), int(g.cfg.MaxWidthFrac*w)))
	height := math.Max(g.cfg.MinHeight, g.cfg.HeightFrac*width)

	x := core.ClampF(prev.Pos.X+dx, g.cfg.BandMinXFrac*w, g.cfg.BandMaxXFrac*w)

	drift := int(g.cfg.DriftYFrac * h)
	dy := float64(g.randInt(-drift, drift))
	y := core.ClampF(prev.Pos.Y+dy, g.cfg.BandMinYFrac*h, g.cfg.BandMaxYFrac*h)

	return Platform{
		ID:    prev.ID + 1,
		Pos:   core.Vec2{X: x, Y: y},
		Size:  core.Vec2{X: width, Y: height},
		Color: palette[g.rng.Intn(len(palette))],
	}
}

// base returns the starting platform (id 0) the player is seated on.
// It sits at the window anchor so the first recenter is a no-op.
func (g *generator) base(anchorFrac float64) Platform {
	w := g.world.Width
	width := (g.cfg.MinWidthFrac + g.cfg.MaxWidthFrac) / 2 * w
	height := math.Max(g.cfg.MinHeight, g.cfg.HeightFrac*width)

	return Platform{
		ID:    0,
		Pos:   core.Vec2{X: anchorFrac * w, Y: 0.7 * g.world.Height},
		Size:  core.Vec2{X: width, Y: height},
		Color: palette[g.rng.Intn(len(palette))],
	}
}
