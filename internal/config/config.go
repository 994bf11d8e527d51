// Package config provides YAML-based game configuration loading for the
// hopper platform.
package config

// HopperConfig contains all tuning for the hopper game.
type HopperConfig struct {
	World     WorldConfig    `yaml:"world"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Launch    LaunchConfig   `yaml:"launch"`
	Platforms PlatformConfig `yaml:"platforms"`
	Window    WindowConfig   `yaml:"window"`
	Player    PlayerConfig   `yaml:"player"`
}

// WorldConfig defines the simulation viewport in world units.
// The renderer projects world units onto terminal cells.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines integration parameters.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`          // World units per second squared, downward
	MaxStepSeconds float64 `yaml:"max_step_seconds"` // dt clamp per tick
	FallMargin     float64 `yaml:"fall_margin"`      // Distance below viewport before a miss is declared
}

// LaunchConfig defines how a press duration maps to launch velocity.
type LaunchConfig struct {
	ChargeFactor     float64 `yaml:"charge_factor"`
	HorizontalFactor float64 `yaml:"horizontal_factor"`
	MaxChargeSeconds float64 `yaml:"max_charge_seconds"` // Charge saturates here
}

// PlatformConfig defines procedural platform placement and sizing, all
// expressed as fractions of the world viewport.
type PlatformConfig struct {
	MinGapFrac   float64 `yaml:"min_gap_frac"`   // Minimum horizontal offset, fraction of world width
	MaxGapFrac   float64 `yaml:"max_gap_frac"`   // Maximum horizontal offset
	MinWidthFrac float64 `yaml:"min_width_frac"` // Minimum platform width
	MaxWidthFrac float64 `yaml:"max_width_frac"` // Maximum platform width
	HeightFrac   float64 `yaml:"height_frac"`    // Platform height as fraction of its own width
	MinHeight    float64 `yaml:"min_height"`     // Height floor in world units
	BandMinXFrac float64 `yaml:"band_min_x_frac"`
	BandMaxXFrac float64 `yaml:"band_max_x_frac"`
	DriftYFrac   float64 `yaml:"drift_y_frac"` // Vertical drift per platform, fraction of world height
	BandMinYFrac float64 `yaml:"band_min_y_frac"`
	BandMaxYFrac float64 `yaml:"band_max_y_frac"`
}

// WindowConfig defines the retained-platform window.
type WindowConfig struct {
	RetainMax  int     `yaml:"retain_max"`  // Trim once the collection exceeds this
	TrimTo     int     `yaml:"trim_to"`     // Number of platforms kept after a trim
	AnchorFrac float64 `yaml:"anchor_frac"` // Screen-relative x for the current platform
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	Radius float64 `yaml:"radius"`
}

// DifficultyPreset represents a named tuning preset.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
