package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the default engine tuning.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Grid: GridConfig{
			Width:       8,
			Height:      8,
			PaletteSize: 5,
		},
		Physics: PhysicsConfig{
			Gravity:     0.02,
			SpawnOffset: 1.25,
		},
		Fades: FadeConfig{
			TokenFadeIn:    0.08,
			Shrink:         0.07,
			TokenFadeOut:   0.03,
			OverlayFadeOut: 0.03,
			ColorFade:      0.015,
		},
		Reveal: RevealConfig{
			Threshold:  0.35,
			PauseTicks: 12,
		},
		Scoring: ScoringConfig{
			PointsPerToken: 10,
		},
		Particles: ParticleConfig{
			Max:          40,
			SpawnPerTick: 2,
			MinFall:      0.15,
			MaxFall:      0.50,
			MaxDrift:     0.10,
		},
	}
}
