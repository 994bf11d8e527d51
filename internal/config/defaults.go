package config

import (
	_ "embed"
)

//go:embed defaults/hopper.yaml
var defaultHopperYAML []byte

// DefaultHopperConfig returns the default hopper configuration.
func DefaultHopperConfig() HopperConfig {
	return HopperConfig{
		World: WorldConfig{
			Width:  400,
			Height: 800,
		},
		Physics: PhysicsConfig{
			Gravity:        2000,
			MaxStepSeconds: 0.033,
			FallMargin:     80,
		},
		Launch: LaunchConfig{
			ChargeFactor:     4.2,
			HorizontalFactor: 0.6,
			MaxChargeSeconds: 1.2,
		},
		Platforms: PlatformConfig{
			MinGapFrac:   0.22,
			MaxGapFrac:   0.45,
			MinWidthFrac: 0.16,
			MaxWidthFrac: 0.28,
			HeightFrac:   0.28,
			MinHeight:    12,
			BandMinXFrac: 0.18,
			BandMaxXFrac: 0.82,
			DriftYFrac:   0.06,
			BandMinYFrac: 0.35,
			BandMaxYFrac: 0.8,
		},
		Window: WindowConfig{
			RetainMax:  8,
			TrimTo:     6,
			AnchorFrac: 0.3,
		},
		Player: PlayerConfig{
			Radius: 14,
		},
	}
}
