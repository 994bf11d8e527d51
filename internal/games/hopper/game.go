package hopper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-hopper/internal/config"
	"github.com/vovakirdan/tui-hopper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar      = '●'
	PlatformChar    = '▀'
	TargetMarkChar  = '▾'
	ChargeFillChar  = '█'
	ChargeEmptyChar = '░'
)

// HUD occupies the top rows; the world is projected below it.
const hudRows = 2

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	default:
		difficultyPreset = ""
	}
}

// Game adapts the session to the platform layer: it maps per-tick input
// frames onto press events, fixes the tick duration from the tick rate and
// projects world units onto screen cells for drawing.
type Game struct {
	session *Session
	gameCfg config.HopperConfig
	runtime core.RuntimeConfig
	paused  bool

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a new hopper game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "hopper"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platform Hopper"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg, err := config.LoadHopper(configPath)
	if err != nil {
		cfg = config.DefaultHopperConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHopperPreset(&cfg, difficultyPreset)
	}
	g.gameCfg = cfg

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.session = NewSession(cfg, runtime.Seed)
}

// Session exposes the underlying session for tests and the SSH scoreboard.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick. Input is applied before the tick so
// press events land atomically between simulation steps.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.State() == StateGameOver {
		g.session.Restart()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.session.State() == StatePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Terminals deliver no key-release events, so a jump is a two-tap
	// gesture: the first tap arms the charge, the second releases it.
	if in.Has(core.ActionJump) {
		switch g.session.State() {
		case StateIdle:
			g.session.Start()
		case StatePlaying:
			if g.session.Charging() {
				g.session.PressEnd(g.session.NowMs())
			} else {
				g.session.PressStart(g.session.NowMs())
			}
		case StateGameOver:
		}
	}

	g.session.Tick(g.tickSeconds())

	return core.StepResult{State: g.State()}
}

// tickSeconds returns the fixed simulation step for the configured rate.
func (g *Game) tickSeconds() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	snap := g.session.Snapshot()
	return core.GameState{
		Score:    snap.Score,
		GameOver: snap.State == StateGameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	snap := g.session.Snapshot()

	g.renderHUD(dst, snap)
	g.renderPlatforms(dst, snap)
	g.renderPlayer(dst, snap)
	g.renderOverlay(dst, snap)
}

// renderHUD draws the score line and the charge meter.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))

	if snap.Charging {
		g.renderChargeBar(dst, snap)
		return
	}
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 1, '─')
	}
}

// renderChargeBar draws the press charge as a proportional bar.
func (g *Game) renderChargeBar(dst *core.Screen, snap Snapshot) {
	maxCharge := g.gameCfg.Launch.MaxChargeSeconds
	frac := core.ClampF(snap.ChargeSeconds/maxCharge, 0, 1)

	barW := core.Min(24, dst.Width()-12)
	filled := int(frac * float64(barW))

	var sb strings.Builder
	sb.WriteString("Charge [")
	for i := 0; i < barW; i++ {
		if i < filled {
			sb.WriteRune(ChargeFillChar)
		} else {
			sb.WriteRune(ChargeEmptyChar)
		}
	}
	sb.WriteString("]")
	dst.DrawText(1, 1, sb.String())
}

// renderPlatforms draws every retained platform and marks the target.
func (g *Game) renderPlatforms(dst *core.Screen, snap Snapshot) {
	for _, p := range snap.Platforms {
		x0, y := g.toCell(dst, snap, p.Left(), p.Top())
		x1, _ := g.toCell(dst, snap, p.Right(), p.Top())
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y, PlatformChar, p.Color)
		}
		if p.ID == snap.TargetID {
			mx, _ := g.toCell(dst, snap, p.Pos.X, p.Top())
			dst.SetColored(mx, y-1, TargetMarkChar, core.ColorBrightYellow)
		}
	}
}

// renderPlayer draws the player body.
func (g *Game) renderPlayer(dst *core.Screen, snap Snapshot) {
	x, y := g.toCell(dst, snap, snap.Player.Pos.X, snap.Player.Pos.Y)
	dst.SetColored(x, y, PlayerChar, core.ColorBrightWhite)
}

// renderOverlay draws state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case snap.State == StateIdle:
		g.drawCenteredBox(dst, "PLATFORM HOPPER", "Press SPACE to start")
	case snap.State == StateGameOver:
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	case snap.State == StatePlaying && snap.Player.OnGround && !snap.Charging:
		dst.DrawTextCentered(dst.Height()-1, "SPACE to charge, SPACE again to jump")
	}
}

// toCell projects a world coordinate onto a screen cell below the HUD.
func (g *Game) toCell(dst *core.Screen, snap Snapshot, wx, wy float64) (int, int) {
	fieldH := dst.Height() - hudRows
	x := int(wx / snap.WorldW * float64(dst.Width()))
	y := hudRows + int(wy/snap.WorldH*float64(fieldH))
	return x, y
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
